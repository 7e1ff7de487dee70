package app

import (
	"context"
	"errors"

	"projecttracker/internal/domain"
)

// FeedbackService encapsulates feedback CRUD use cases.
type FeedbackService struct {
	repo domain.FeedbackRepository
}

// NewFeedbackService creates a FeedbackService backed by the given repository.
func NewFeedbackService(repo domain.FeedbackRepository) *FeedbackService {
	return &FeedbackService{repo: repo}
}

// List returns all feedback entries.
func (s *FeedbackService) List(ctx context.Context) ([]domain.Feedback, error) {
	return s.repo.ListFeedback(ctx)
}

// Create validates and stores a new feedback entry.
func (s *FeedbackService) Create(ctx context.Context, f domain.Feedback) (*domain.Feedback, error) {
	if f.ProjectID <= 0 {
		return nil, errors.New("project is required")
	}
	if f.Rating < 1 || f.Rating > 5 {
		return nil, errors.New("rating must be between 1 and 5")
	}
	return s.repo.CreateFeedback(ctx, f)
}

// Get returns the feedback entry with the given id.
func (s *FeedbackService) Get(ctx context.Context, id int64) (*domain.Feedback, error) {
	f, err := s.repo.GetFeedback(ctx, id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, ErrNotFound
	}
	return f, nil
}

// Update validates and stores changes to an existing feedback entry.
func (s *FeedbackService) Update(ctx context.Context, f domain.Feedback) (*domain.Feedback, error) {
	if f.ProjectID <= 0 {
		return nil, errors.New("project is required")
	}
	if f.Rating < 1 || f.Rating > 5 {
		return nil, errors.New("rating must be between 1 and 5")
	}
	updated, err := s.repo.UpdateFeedback(ctx, f)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrNotFound
	}
	return updated, nil
}

// Delete removes the feedback entry with the given id.
func (s *FeedbackService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.DeleteFeedback(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}
