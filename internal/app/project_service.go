package app

import (
	"context"
	"errors"

	"projecttracker/internal/domain"
)

// ProjectService encapsulates project CRUD use cases.
type ProjectService struct {
	repo domain.ProjectRepository
}

// NewProjectService creates a ProjectService backed by the given repository.
func NewProjectService(repo domain.ProjectRepository) *ProjectService {
	return &ProjectService{repo: repo}
}

// List returns all projects.
func (s *ProjectService) List(ctx context.Context) ([]domain.Project, error) {
	return s.repo.ListProjects(ctx)
}

// Create validates and stores a new project.
func (s *ProjectService) Create(ctx context.Context, p domain.Project) (*domain.Project, error) {
	if p.Name == "" {
		return nil, errors.New("name is required")
	}
	return s.repo.CreateProject(ctx, p)
}

// Get returns the project with the given id.
func (s *ProjectService) Get(ctx context.Context, id int64) (*domain.Project, error) {
	p, err := s.repo.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}
	return p, nil
}

// Update validates and stores changes to an existing project.
func (s *ProjectService) Update(ctx context.Context, p domain.Project) (*domain.Project, error) {
	if p.Name == "" {
		return nil, errors.New("name is required")
	}
	updated, err := s.repo.UpdateProject(ctx, p)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrNotFound
	}
	return updated, nil
}

// Delete removes the project with the given id.
func (s *ProjectService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.DeleteProject(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}
