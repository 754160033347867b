package domain

import (
	"context"
	"strings"
	"time"
)

// User represents a registered user of the application.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// UserRepository defines persistence operations for users.
// Email lookups expect an already normalized address (see NormalizeEmail).
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}

// NormalizeEmail trims and lowercases an email address so that uniqueness
// and lookups are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
