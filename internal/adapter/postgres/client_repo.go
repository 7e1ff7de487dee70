package postgres

import (
	"context"
	"database/sql"
	"errors"

	"projecttracker/internal/domain"
)

// ListClients returns all clients ordered by id.
func (d *DB) ListClients(ctx context.Context) ([]domain.Client, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT id, name, company, email FROM clients ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Client{}
	for rows.Next() {
		var c domain.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.Company, &c.Email); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// CreateClient inserts a new client.
func (d *DB) CreateClient(ctx context.Context, c domain.Client) (*domain.Client, error) {
	err := d.sql.QueryRowContext(ctx,
		"INSERT INTO clients (name, company, email) VALUES ($1, $2, $3) RETURNING id",
		c.Name, c.Company, c.Email,
	).Scan(&c.ID)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetClient retrieves a client by id.
func (d *DB) GetClient(ctx context.Context, id int64) (*domain.Client, error) {
	var c domain.Client
	err := d.sql.QueryRowContext(ctx,
		"SELECT id, name, company, email FROM clients WHERE id = $1", id,
	).Scan(&c.ID, &c.Name, &c.Company, &c.Email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// UpdateClient updates an existing client; returns nil if it does not exist.
func (d *DB) UpdateClient(ctx context.Context, c domain.Client) (*domain.Client, error) {
	res, err := d.sql.ExecContext(ctx,
		"UPDATE clients SET name = $1, company = $2, email = $3 WHERE id = $4",
		c.Name, c.Company, c.Email, c.ID,
	)
	if err != nil {
		return nil, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	return &c, nil
}

// DeleteClient deletes a client by id.
func (d *DB) DeleteClient(ctx context.Context, id int64) (bool, error) {
	res, err := d.sql.ExecContext(ctx, "DELETE FROM clients WHERE id = $1", id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
