package domain

import "context"

// Manager represents a project manager.
type Manager struct {
	ID    int64  `json:"manager_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// ManagerRepository is the port for manager persistence.
type ManagerRepository interface {
	ListManagers(ctx context.Context) ([]Manager, error)
	CreateManager(ctx context.Context, m Manager) (*Manager, error)
	GetManager(ctx context.Context, id int64) (*Manager, error)
	UpdateManager(ctx context.Context, m Manager) (*Manager, error)
	DeleteManager(ctx context.Context, id int64) (bool, error)
}
