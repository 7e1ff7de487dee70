package postgres

import (
	"context"
	"database/sql"
	"errors"

	"projecttracker/internal/domain"
)

// ListTeamMembers returns all tech-team members ordered by id.
func (d *DB) ListTeamMembers(ctx context.Context) ([]domain.TeamMember, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT id, name, roll, email, project_id FROM tech_team ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.TeamMember{}
	for rows.Next() {
		var m domain.TeamMember
		if err := rows.Scan(&m.ID, &m.Name, &m.Roll, &m.Email, &m.ProjectID); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// CreateTeamMember inserts a new tech-team member.
func (d *DB) CreateTeamMember(ctx context.Context, m domain.TeamMember) (*domain.TeamMember, error) {
	err := d.sql.QueryRowContext(ctx,
		"INSERT INTO tech_team (name, roll, email, project_id) VALUES ($1, $2, $3, $4) RETURNING id",
		m.Name, m.Roll, m.Email, m.ProjectID,
	).Scan(&m.ID)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// GetTeamMember retrieves a tech-team member by id.
func (d *DB) GetTeamMember(ctx context.Context, id int64) (*domain.TeamMember, error) {
	var m domain.TeamMember
	err := d.sql.QueryRowContext(ctx,
		"SELECT id, name, roll, email, project_id FROM tech_team WHERE id = $1", id,
	).Scan(&m.ID, &m.Name, &m.Roll, &m.Email, &m.ProjectID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// UpdateTeamMember updates an existing member; returns nil if it does not exist.
func (d *DB) UpdateTeamMember(ctx context.Context, m domain.TeamMember) (*domain.TeamMember, error) {
	res, err := d.sql.ExecContext(ctx,
		"UPDATE tech_team SET name = $1, roll = $2, email = $3, project_id = $4 WHERE id = $5",
		m.Name, m.Roll, m.Email, m.ProjectID, m.ID,
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

// DeleteTeamMember deletes a tech-team member by id.
func (d *DB) DeleteTeamMember(ctx context.Context, id int64) (bool, error) {
	res, err := d.sql.ExecContext(ctx, "DELETE FROM tech_team WHERE id = $1", id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
