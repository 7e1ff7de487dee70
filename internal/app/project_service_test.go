package app

import (
	"context"
	"errors"
	"testing"

	"projecttracker/internal/domain"
)

type mockProjectRepo struct {
	listFn   func(ctx context.Context) ([]domain.Project, error)
	createFn func(ctx context.Context, p domain.Project) (*domain.Project, error)
	getFn    func(ctx context.Context, id int64) (*domain.Project, error)
	updateFn func(ctx context.Context, p domain.Project) (*domain.Project, error)
	deleteFn func(ctx context.Context, id int64) (bool, error)
}

func (m *mockProjectRepo) ListProjects(ctx context.Context) ([]domain.Project, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockProjectRepo) CreateProject(ctx context.Context, p domain.Project) (*domain.Project, error) {
	if m.createFn != nil {
		return m.createFn(ctx, p)
	}
	p.ID = 1
	return &p, nil
}

func (m *mockProjectRepo) GetProject(ctx context.Context, id int64) (*domain.Project, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return nil, nil
}

func (m *mockProjectRepo) UpdateProject(ctx context.Context, p domain.Project) (*domain.Project, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, p)
	}
	return nil, nil
}

func (m *mockProjectRepo) DeleteProject(ctx context.Context, id int64) (bool, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return false, nil
}

func TestProjectCreateRequiresName(t *testing.T) {
	t.Parallel()

	svc := NewProjectService(&mockProjectRepo{})
	if _, err := svc.Create(context.Background(), domain.Project{Status: "active"}); err == nil {
		t.Fatal("expected validation error for empty name")
	}
}

func TestProjectGetNotFound(t *testing.T) {
	t.Parallel()

	svc := NewProjectService(&mockProjectRepo{})
	if _, err := svc.Get(context.Background(), 42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestProjectUpdateNotFound(t *testing.T) {
	t.Parallel()

	svc := NewProjectService(&mockProjectRepo{})
	if _, err := svc.Update(context.Background(), domain.Project{ID: 42, Name: "CRM"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestProjectDelete(t *testing.T) {
	t.Parallel()

	svc := NewProjectService(&mockProjectRepo{
		deleteFn: func(ctx context.Context, id int64) (bool, error) { return id == 7, nil },
	})

	if err := svc.Delete(context.Background(), 7); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if err := svc.Delete(context.Background(), 8); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestProjectRepoErrorPropagates(t *testing.T) {
	t.Parallel()

	boom := errors.New("db down")
	svc := NewProjectService(&mockProjectRepo{
		listFn: func(ctx context.Context) ([]domain.Project, error) { return nil, boom },
	})

	if _, err := svc.List(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected repo error, got %v", err)
	}
}
