package ports

import (
	"context"

	"github.com/feedbackhub/feedback-portal/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	// Create inserts a new user. Returns domain.ErrUserExists when the
	// username or email collides with an existing account; uniqueness is
	// detected at persistence time, never pre-checked.
	Create(ctx context.Context, u *domain.User) error
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// Delete removes the user record. Returns domain.ErrUserNotFound when
	// no such user exists. It does not touch the user's feedback; the
	// service layer orders the cascade.
	Delete(ctx context.Context, username string) error
}
