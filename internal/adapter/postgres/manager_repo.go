package postgres

import (
	"context"
	"database/sql"
	"errors"

	"projecttracker/internal/domain"
)

// ListManagers returns all managers ordered by id.
func (d *DB) ListManagers(ctx context.Context) ([]domain.Manager, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT id, name, email, phone FROM managers ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Manager{}
	for rows.Next() {
		var m domain.Manager
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Phone); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// CreateManager inserts a new manager.
func (d *DB) CreateManager(ctx context.Context, m domain.Manager) (*domain.Manager, error) {
	err := d.sql.QueryRowContext(ctx,
		"INSERT INTO managers (name, email, phone) VALUES ($1, $2, $3) RETURNING id",
		m.Name, m.Email, m.Phone,
	).Scan(&m.ID)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// GetManager retrieves a manager by id.
func (d *DB) GetManager(ctx context.Context, id int64) (*domain.Manager, error) {
	var m domain.Manager
	err := d.sql.QueryRowContext(ctx,
		"SELECT id, name, email, phone FROM managers WHERE id = $1", id,
	).Scan(&m.ID, &m.Name, &m.Email, &m.Phone)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// UpdateManager updates an existing manager; returns nil if it does not exist.
func (d *DB) UpdateManager(ctx context.Context, m domain.Manager) (*domain.Manager, error) {
	res, err := d.sql.ExecContext(ctx,
		"UPDATE managers SET name = $1, email = $2, phone = $3 WHERE id = $4",
		m.Name, m.Email, m.Phone, m.ID,
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
	return &m, nil
}

// DeleteManager deletes a manager by id.
func (d *DB) DeleteManager(ctx context.Context, id int64) (bool, error) {
	res, err := d.sql.ExecContext(ctx, "DELETE FROM managers WHERE id = $1", id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
