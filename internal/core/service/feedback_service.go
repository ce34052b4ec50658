package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/feedbackhub/feedback-portal/internal/core/domain"
	"github.com/feedbackhub/feedback-portal/internal/core/ports"
)

// FeedbackService implements feedback CRUD with ownership enforcement.
// Ownership is plain string equality between the acting identity and the
// entry's stored owner; there is no role hierarchy.
type FeedbackService struct {
	repo   ports.FeedbackRepository
	logger zerolog.Logger
}

func NewFeedbackService(repo ports.FeedbackRepository, logger zerolog.Logger) *FeedbackService {
	return &FeedbackService{repo: repo, logger: logger}
}

func (s *FeedbackService) Create(ctx context.Context, owner, title, content string) (*domain.Feedback, error) {
	now := time.Now().UTC()
	f := &domain.Feedback{
		Title:     title,
		Content:   content,
		Username:  owner,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, f); err != nil {
		s.logger.Error().Err(err).Str("username", owner).Msg("failed to create feedback")
		return nil, err
	}

	s.logger.Info().Int64("id", f.ID).Str("username", owner).Msg("feedback created")
	return f, nil
}

func (s *FeedbackService) Get(ctx context.Context, id int64) (*domain.Feedback, error) {
	return s.repo.FindByID(ctx, id)
}

// Update edits an entry on behalf of actor. The lookup happens first, so
// an unknown id is reported as not-found even to callers who would fail
// the ownership check.
func (s *FeedbackService) Update(ctx context.Context, id int64, actor, title, content string) (*domain.Feedback, error) {
	f, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if f.Username != actor {
		return nil, domain.ErrNotOwner
	}

	f.Title = title
	f.Content = content
	f.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, f); err != nil {
		s.logger.Error().Err(err).Int64("id", id).Msg("failed to update feedback")
		return nil, err
	}
	return f, nil
}

// Delete removes an entry on behalf of actor, with the same precondition
// ordering as Update.
func (s *FeedbackService) Delete(ctx context.Context, id int64, actor string) (*domain.Feedback, error) {
	f, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if f.Username != actor {
		return nil, domain.ErrNotOwner
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("id", id).Str("username", actor).Msg("feedback deleted")
	return f, nil
}
