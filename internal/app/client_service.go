package app

import (
	"context"
	"errors"

	"projecttracker/internal/domain"
)

// ClientService encapsulates client CRUD use cases.
type ClientService struct {
	repo domain.ClientRepository
}

// NewClientService creates a ClientService backed by the given repository.
func NewClientService(repo domain.ClientRepository) *ClientService {
	return &ClientService{repo: repo}
}

// List returns all clients.
func (s *ClientService) List(ctx context.Context) ([]domain.Client, error) {
	return s.repo.ListClients(ctx)
}

// Create validates and stores a new client.
func (s *ClientService) Create(ctx context.Context, c domain.Client) (*domain.Client, error) {
	if c.Name == "" {
		return nil, errors.New("name is required")
	}
	return s.repo.CreateClient(ctx, c)
}

// Get returns the client with the given id.
func (s *ClientService) Get(ctx context.Context, id int64) (*domain.Client, error) {
	c, err := s.repo.GetClient(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrNotFound
	}
	return c, nil
}

// Update validates and stores changes to an existing client.
func (s *ClientService) Update(ctx context.Context, c domain.Client) (*domain.Client, error) {
	if c.Name == "" {
		return nil, errors.New("name is required")
	}
	updated, err := s.repo.UpdateClient(ctx, c)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrNotFound
	}
	return updated, nil
}

// Delete removes the client with the given id.
func (s *ClientService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.DeleteClient(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}
