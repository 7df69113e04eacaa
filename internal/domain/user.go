package domain

import (
	"context"
	"time"
)

// User represents a registered user of the application.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Identity is the decoded content of a session token. It is attached to the
// request context by the auth middleware; no user record is loaded for it.
type Identity struct {
	ID    string
	Email string
	Name  string
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
}
