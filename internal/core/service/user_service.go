package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/feedbackhub/feedback-portal/internal/core/domain"
	"github.com/feedbackhub/feedback-portal/internal/core/ports"
)

// UserService serves profile reads and account deletion.
type UserService struct {
	users    ports.UserRepository
	feedback ports.FeedbackRepository
	logger   zerolog.Logger
}

func NewUserService(users ports.UserRepository, feedback ports.FeedbackRepository, logger zerolog.Logger) *UserService {
	return &UserService{users: users, feedback: feedback, logger: logger}
}

func (s *UserService) Get(ctx context.Context, username string) (*domain.User, error) {
	return s.users.FindByUsername(ctx, username)
}

func (s *UserService) ListFeedback(ctx context.Context, username string) ([]*domain.Feedback, error) {
	return s.feedback.ListByOwner(ctx, username)
}

// Delete removes the account and all feedback it owns. Feedback goes
// first so an interruption between the two writes cannot leave entries
// pointing at a deleted user.
func (s *UserService) Delete(ctx context.Context, username string) error {
	if _, err := s.users.FindByUsername(ctx, username); err != nil {
		return err
	}

	removed, err := s.feedback.DeleteByOwner(ctx, username)
	if err != nil {
		s.logger.Error().Err(err).Str("username", username).Msg("cascade delete failed")
		return err
	}

	if err := s.users.Delete(ctx, username); err != nil {
		return err
	}

	s.logger.Info().Str("username", username).Int64("feedback_removed", removed).Msg("user deleted")
	return nil
}
