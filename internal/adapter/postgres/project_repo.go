package postgres

import (
	"context"
	"database/sql"
	"errors"

	"projecttracker/internal/domain"
)

// Foreign keys are stored as nullable columns so projects can exist before
// a client or manager is assigned; zero ids map to NULL.
func nullableID(id int64) sql.NullInt64 {
	return sql.NullInt64{Int64: id, Valid: id > 0}
}

func scanProject(scan func(...any) error) (*domain.Project, error) {
	var p domain.Project
	var clientID, managerID sql.NullInt64
	err := scan(&p.ID, &p.Name, &p.Description, &p.Status, &clientID, &managerID, &p.StartDate, &p.EndDate)
	if err != nil {
		return nil, err
	}
	p.ClientID = clientID.Int64
	p.ManagerID = managerID.Int64
	return &p, nil
}

// ListProjects returns all projects ordered by id.
func (d *DB) ListProjects(ctx context.Context) ([]domain.Project, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT id, name, description, status, client_id, manager_id, start_date, end_date FROM projects ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Project{}
	for rows.Next() {
		p, err := scanProject(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

// CreateProject inserts a new project.
func (d *DB) CreateProject(ctx context.Context, p domain.Project) (*domain.Project, error) {
	err := d.sql.QueryRowContext(ctx,
		"INSERT INTO projects (name, description, status, client_id, manager_id, start_date, end_date) VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id",
		p.Name, p.Description, p.Status, nullableID(p.ClientID), nullableID(p.ManagerID), p.StartDate, p.EndDate,
	).Scan(&p.ID)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetProject retrieves a project by id.
func (d *DB) GetProject(ctx context.Context, id int64) (*domain.Project, error) {
	row := d.sql.QueryRowContext(ctx,
		"SELECT id, name, description, status, client_id, manager_id, start_date, end_date FROM projects WHERE id = $1", id)
	p, err := scanProject(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// UpdateProject updates an existing project; returns nil if it does not exist.
func (d *DB) UpdateProject(ctx context.Context, p domain.Project) (*domain.Project, error) {
	res, err := d.sql.ExecContext(ctx,
		"UPDATE projects SET name = $1, description = $2, status = $3, client_id = $4, manager_id = $5, start_date = $6, end_date = $7 WHERE id = $8",
		p.Name, p.Description, p.Status, nullableID(p.ClientID), nullableID(p.ManagerID), p.StartDate, p.EndDate, p.ID,
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
	return &p, nil
}

// DeleteProject deletes a project by id.
func (d *DB) DeleteProject(ctx context.Context, id int64) (bool, error) {
	res, err := d.sql.ExecContext(ctx, "DELETE FROM projects WHERE id = $1", id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
