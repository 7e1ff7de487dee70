package domain

import "context"

// Project represents a tracked engagement for a client.
type Project struct {
	ID          int64  `json:"project_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      string `json:"status"`
	ClientID    int64  `json:"client"`
	ManagerID   int64  `json:"manager"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
}

// ProjectRepository is the port for project persistence.
type ProjectRepository interface {
	ListProjects(ctx context.Context) ([]Project, error)
	CreateProject(ctx context.Context, p Project) (*Project, error)
	GetProject(ctx context.Context, id int64) (*Project, error)
	UpdateProject(ctx context.Context, p Project) (*Project, error)
	DeleteProject(ctx context.Context, id int64) (bool, error)
}
