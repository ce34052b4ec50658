package ports

import (
	"context"

	"github.com/feedbackhub/feedback-portal/internal/core/domain"
)

type FeedbackService interface {
	Create(ctx context.Context, owner, title, content string) (*domain.Feedback, error)
	Get(ctx context.Context, id int64) (*domain.Feedback, error)
	// Update edits an entry on behalf of actor. An unknown id returns
	// domain.ErrFeedbackNotFound before any ownership check; a known entry
	// not owned by actor returns domain.ErrNotOwner.
	Update(ctx context.Context, id int64, actor, title, content string) (*domain.Feedback, error)
	// Delete follows the same precondition ordering as Update.
	Delete(ctx context.Context, id int64, actor string) (*domain.Feedback, error)
}
