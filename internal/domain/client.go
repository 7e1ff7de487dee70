package domain

import "context"

// Client represents a customer a project is delivered for.
type Client struct {
	ID      int64  `json:"client_id"`
	Name    string `json:"name"`
	Company string `json:"company"`
	Email   string `json:"email"`
}

// ClientRepository is the port for client persistence.
type ClientRepository interface {
	ListClients(ctx context.Context) ([]Client, error)
	CreateClient(ctx context.Context, c Client) (*Client, error)
	GetClient(ctx context.Context, id int64) (*Client, error)
	UpdateClient(ctx context.Context, c Client) (*Client, error)
	DeleteClient(ctx context.Context, id int64) (bool, error)
}
