package app

import (
	"context"
	"errors"

	"projecttracker/internal/domain"
)

// TeamMemberService encapsulates tech-team CRUD use cases.
type TeamMemberService struct {
	repo domain.TeamMemberRepository
}

// NewTeamMemberService creates a TeamMemberService backed by the given repository.
func NewTeamMemberService(repo domain.TeamMemberRepository) *TeamMemberService {
	return &TeamMemberService{repo: repo}
}

// List returns all tech-team members.
func (s *TeamMemberService) List(ctx context.Context) ([]domain.TeamMember, error) {
	return s.repo.ListTeamMembers(ctx)
}

// Create validates and stores a new team member.
func (s *TeamMemberService) Create(ctx context.Context, m domain.TeamMember) (*domain.TeamMember, error) {
	if m.Name == "" {
		return nil, errors.New("name is required")
	}
	if m.ProjectID <= 0 {
		return nil, errors.New("project is required")
	}
	return s.repo.CreateTeamMember(ctx, m)
}

// Get returns the team member with the given id.
func (s *TeamMemberService) Get(ctx context.Context, id int64) (*domain.TeamMember, error) {
	m, err := s.repo.GetTeamMember(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrNotFound
	}
	return m, nil
}

// Update validates and stores changes to an existing team member.
func (s *TeamMemberService) Update(ctx context.Context, m domain.TeamMember) (*domain.TeamMember, error) {
	if m.Name == "" {
		return nil, errors.New("name is required")
	}
	if m.ProjectID <= 0 {
		return nil, errors.New("project is required")
	}
	updated, err := s.repo.UpdateTeamMember(ctx, m)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrNotFound
	}
	return updated, nil
}

// Delete removes the team member with the given id.
func (s *TeamMemberService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.DeleteTeamMember(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}
