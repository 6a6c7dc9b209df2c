package model

// User is the denormalized profile snapshot the backend returns on login
// and from the profile endpoints.
type User struct {
	ID     string `json:"_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone,omitempty"`
	Avatar string `json:"avatar,omitempty"`
}

// Session is the credential plus profile snapshot persisted locally. Its
// presence is the sole input to the route guard. Sessions are replaced
// wholesale, never refreshed in place.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Authenticated reports whether the session carries a credential.
func (s *Session) Authenticated() bool {
	return s != nil && s.Token != ""
}

// Notification is a server-generated message shown in the bell menu.
type Notification struct {
	ID      string `json:"_id"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Read    bool   `json:"read"`
}
