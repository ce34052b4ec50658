package ports

import (
	"context"

	"github.com/feedbackhub/feedback-portal/internal/core/domain"
)

// FeedbackRepository defines persistence operations for feedback entries.
type FeedbackRepository interface {
	// Create inserts a new entry and assigns it the next monotonic id.
	Create(ctx context.Context, f *domain.Feedback) error
	FindByID(ctx context.Context, id int64) (*domain.Feedback, error)
	// ListByOwner returns all entries owned by username, oldest first.
	ListByOwner(ctx context.Context, username string) ([]*domain.Feedback, error)
	Update(ctx context.Context, f *domain.Feedback) error
	Delete(ctx context.Context, id int64) error
	// DeleteByOwner removes every entry owned by username and reports how
	// many were deleted. Used by the account-deletion cascade.
	DeleteByOwner(ctx context.Context, username string) (int64, error)
}
