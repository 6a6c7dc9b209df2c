package gateway

import (
	"context"

	"github.com/Sharma7422/fintrack/internal/model"
)

// RegisterRequest is the payload for creating an account.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is what login and register return: the bearer credential
// plus the denormalized profile snapshot.
type AuthResponse struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

// Register creates an account and returns a fresh session payload.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.post(ctx, "/users/register", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Login exchanges credentials for a session payload.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	body := map[string]string{"email": email, "password": password}
	var resp AuthResponse
	if err := c.post(ctx, "/users/login", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ForgotPassword asks the server to mail a reset code to email.
func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	return c.post(ctx, "/users/forgot-password", map[string]string{"email": email}, nil)
}

// ResetPassword completes the reset flow started by ForgotPassword.
func (c *Client) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	body := map[string]string{
		"email":       email,
		"code":        code,
		"newPassword": newPassword,
	}
	return c.post(ctx, "/users/reset-password", body, nil)
}

// CurrentUser fetches the authenticated user's profile. Used as the
// startup session check; an error here means "treat as logged out".
func (c *Client) CurrentUser(ctx context.Context) (*model.User, error) {
	var user model.User
	if err := c.get(ctx, "/users/profile", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
