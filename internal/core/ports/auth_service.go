package ports

import (
	"context"

	"github.com/feedbackhub/feedback-portal/internal/core/domain"
)

// RegisterInput carries the validated registration form fields.
type RegisterInput struct {
	Username  string
	Password  string
	Email     string
	FirstName string
	LastName  string
}

type AuthService interface {
	// Register hashes the password and persists a new account.
	// Returns domain.ErrUserExists on username/email collision.
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Authenticate verifies a username/password pair. A missing user and a
	// wrong password both return domain.ErrInvalidCredentials; callers must
	// not be able to tell the two apart.
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
}
