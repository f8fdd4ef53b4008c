package repository

import (
	"context"

	"github.com/google/uuid"

	"storefront/internal/domain/entity"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	// Create persists a new user. A duplicate email or phone number
	// surfaces as an AccountExists application error: the unique
	// constraint, not the caller's existence check, is the final arbiter.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail returns the user with the given email, or
	// ErrUserNotFound.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID returns the user with the given ID, or ErrUserNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
}
