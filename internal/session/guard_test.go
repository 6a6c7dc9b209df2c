package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecide(t *testing.T) {
	tests := []struct {
		name          string
		resetEmail    string
		class         RouteClass
		want          Decision
		authenticated bool
	}{
		{
			name:          "no token on dashboard redirects to login",
			class:         RouteProtected,
			authenticated: false,
			want:          RedirectLogin,
		},
		{
			name:          "token on dashboard allowed",
			class:         RouteProtected,
			authenticated: true,
			want:          Allow,
		},
		{
			name:          "token on login redirects home",
			class:         RouteAnonymous,
			authenticated: true,
			want:          RedirectHome,
		},
		{
			name:          "no token on login allowed",
			class:         RouteAnonymous,
			authenticated: false,
			want:          Allow,
		},
		{
			name:          "token on forgot-password redirects home",
			class:         RouteForgotPassword,
			authenticated: true,
			want:          RedirectHome,
		},
		{
			name:          "no token on forgot-password allowed",
			class:         RouteForgotPassword,
			authenticated: false,
			want:          Allow,
		},
		{
			name:          "reset-password without carried email redirects to login",
			class:         RouteResetPassword,
			authenticated: false,
			resetEmail:    "",
			want:          RedirectLogin,
		},
		{
			name:          "reset-password with carried email allowed",
			class:         RouteResetPassword,
			authenticated: false,
			resetEmail:    "user@example.com",
			want:          Allow,
		},
		{
			name:          "reset-password while authenticated redirects to login",
			class:         RouteResetPassword,
			authenticated: true,
			resetEmail:    "user@example.com",
			want:          RedirectLogin,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decide(tt.class, tt.authenticated, tt.resetEmail)
			assert.Equal(t, tt.want, got)
		})
	}
}
