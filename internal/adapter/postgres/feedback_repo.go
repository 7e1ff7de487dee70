package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"projecttracker/internal/domain"
)

// ListFeedback returns all feedback entries, newest first.
func (d *DB) ListFeedback(ctx context.Context) ([]domain.Feedback, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT id, project_id, client_id, message, rating, created_at FROM feedback ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Feedback{}
	for rows.Next() {
		f, err := scanFeedback(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, *f)
	}
	return out, rows.Err()
}

func scanFeedback(scan func(...any) error) (*domain.Feedback, error) {
	var f domain.Feedback
	var clientID sql.NullInt64
	if err := scan(&f.ID, &f.ProjectID, &clientID, &f.Message, &f.Rating, &f.CreatedAt); err != nil {
		return nil, err
	}
	f.ClientID = clientID.Int64
	return &f, nil
}

// CreateFeedback inserts a new feedback entry.
func (d *DB) CreateFeedback(ctx context.Context, f domain.Feedback) (*domain.Feedback, error) {
	f.CreatedAt = time.Now().UTC()
	err := d.sql.QueryRowContext(ctx,
		"INSERT INTO feedback (project_id, client_id, message, rating, created_at) VALUES ($1, $2, $3, $4, $5) RETURNING id",
		f.ProjectID, nullableID(f.ClientID), f.Message, f.Rating, f.CreatedAt,
	).Scan(&f.ID)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// GetFeedback retrieves a feedback entry by id.
func (d *DB) GetFeedback(ctx context.Context, id int64) (*domain.Feedback, error) {
	row := d.sql.QueryRowContext(ctx,
		"SELECT id, project_id, client_id, message, rating, created_at FROM feedback WHERE id = $1", id)
	f, err := scanFeedback(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return f, nil
}

// UpdateFeedback updates an existing entry; returns nil if it does not exist.
func (d *DB) UpdateFeedback(ctx context.Context, f domain.Feedback) (*domain.Feedback, error) {
	res, err := d.sql.ExecContext(ctx,
		"UPDATE feedback SET project_id = $1, client_id = $2, message = $3, rating = $4 WHERE id = $5",
		f.ProjectID, nullableID(f.ClientID), f.Message, f.Rating, f.ID,
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
	return d.GetFeedback(ctx, f.ID)
}

// DeleteFeedback deletes a feedback entry by id.
func (d *DB) DeleteFeedback(ctx context.Context, id int64) (bool, error) {
	res, err := d.sql.ExecContext(ctx, "DELETE FROM feedback WHERE id = $1", id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
