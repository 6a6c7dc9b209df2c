package gateway

import (
	"context"

	"github.com/Sharma7422/fintrack/internal/model"
)

// ProfileUpdate is the payload for editing profile fields. Empty fields
// are left unchanged by the server.
type ProfileUpdate struct {
	Name   string `json:"name,omitempty"`
	Email  string `json:"email,omitempty"`
	Phone  string `json:"phone,omitempty"`
	Avatar string `json:"avatar,omitempty"`
}

// Profile fetches the settings-page profile.
func (c *Client) Profile(ctx context.Context) (*model.User, error) {
	var user model.User
	if err := c.get(ctx, "/settings/profile", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile edits profile fields and returns the new snapshot.
func (c *Client) UpdateProfile(ctx context.Context, update ProfileUpdate) (*model.User, error) {
	var user model.User
	if err := c.put(ctx, "/settings/profile", update, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ChangePassword replaces the account password.
func (c *Client) ChangePassword(ctx context.Context, current, next string) error {
	body := map[string]string{
		"currentPassword": current,
		"newPassword":     next,
	}
	return c.put(ctx, "/settings/change-password", body, nil)
}

// DeleteAccount permanently removes the account. The caller is
// responsible for destroying the local session afterwards.
func (c *Client) DeleteAccount(ctx context.Context) error {
	return c.delete(ctx, "/settings/account", nil)
}

// Notifications fetches the bell-menu notification list.
func (c *Client) Notifications(ctx context.Context) ([]model.Notification, error) {
	var notifications []model.Notification
	if err := c.get(ctx, "/notifications", nil, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

// MarkNotificationRead marks one notification read. Callers refetch the
// list afterwards rather than patching it locally.
func (c *Client) MarkNotificationRead(ctx context.Context, id string) error {
	return c.patch(ctx, "/notifications/"+id+"/read", nil, nil)
}
