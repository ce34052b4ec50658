package ports

import (
	"context"

	"github.com/feedbackhub/feedback-portal/internal/core/domain"
)

type UserService interface {
	Get(ctx context.Context, username string) (*domain.User, error)
	// ListFeedback returns the user's feedback entries for the profile page.
	ListFeedback(ctx context.Context, username string) ([]*domain.Feedback, error)
	// Delete removes the account and cascades to all feedback it owns.
	// Returns domain.ErrUserNotFound when the account does not exist.
	Delete(ctx context.Context, username string) error
}
