package app

import (
	"context"
	"errors"

	"projecttracker/internal/domain"
)

// ManagerService encapsulates manager CRUD use cases.
type ManagerService struct {
	repo domain.ManagerRepository
}

// NewManagerService creates a ManagerService backed by the given repository.
func NewManagerService(repo domain.ManagerRepository) *ManagerService {
	return &ManagerService{repo: repo}
}

// List returns all managers.
func (s *ManagerService) List(ctx context.Context) ([]domain.Manager, error) {
	return s.repo.ListManagers(ctx)
}

// Create validates and stores a new manager.
func (s *ManagerService) Create(ctx context.Context, m domain.Manager) (*domain.Manager, error) {
	if m.Name == "" {
		return nil, errors.New("name is required")
	}
	return s.repo.CreateManager(ctx, m)
}

// Get returns the manager with the given id.
func (s *ManagerService) Get(ctx context.Context, id int64) (*domain.Manager, error) {
	m, err := s.repo.GetManager(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrNotFound
	}
	return m, nil
}

// Update validates and stores changes to an existing manager.
func (s *ManagerService) Update(ctx context.Context, m domain.Manager) (*domain.Manager, error) {
	if m.Name == "" {
		return nil, errors.New("name is required")
	}
	updated, err := s.repo.UpdateManager(ctx, m)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrNotFound
	}
	return updated, nil
}

// Delete removes the manager with the given id.
func (s *ManagerService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.DeleteManager(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}
