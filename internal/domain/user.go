package domain

import (
	"context"
)

// User represents the signed-in clinic staff member shown in the dashboard shell.
type User struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name,omitempty"`
}

// Authenticator resolves a session token into a User.
// It lives in the domain because the dashboard requires it, not because
// any particular session service implements it.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*User, error)
}
