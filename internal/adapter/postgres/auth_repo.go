package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"projecttracker/internal/domain"
)

// GetByUsername retrieves a user by username.
func (d *DB) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	var u domain.User
	err := d.sql.QueryRowContext(ctx,
		"SELECT id, username, password_hash, created_at FROM users WHERE username = $1",
		username,
	).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByID retrieves a user by ID.
func (d *DB) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var u domain.User
	err := d.sql.QueryRowContext(ctx,
		"SELECT id, username, password_hash, created_at FROM users WHERE id = $1",
		id,
	).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create creates a new user.
func (d *DB) Create(ctx context.Context, username, passwordHash string) (*domain.User, error) {
	var u domain.User
	err := d.sql.QueryRowContext(ctx,
		"INSERT INTO users (username, password_hash, created_at) VALUES ($1, $2, $3) RETURNING id, username, password_hash, created_at",
		username, passwordHash, time.Now(),
	).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetOrCreateByExternalID maps an identity-provider subject id to a user,
// creating the record on first sight. The username uniqueness constraint
// arbitrates concurrent first logins: the losing insert is a no-op and the
// follow-up select returns the winner's row.
func (d *DB) GetOrCreateByExternalID(ctx context.Context, subjectID string) (*domain.User, error) {
	_, err := d.sql.ExecContext(ctx,
		"INSERT INTO users (username, password_hash, created_at) VALUES ($1, '', $2) ON CONFLICT (username) DO NOTHING",
		subjectID, time.Now(),
	)
	if err != nil {
		return nil, err
	}

	user, err := d.GetByUsername(ctx, subjectID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("user vanished after upsert")
	}
	return user, nil
}

// Count returns the total number of users.
func (d *DB) Count(ctx context.Context) (int, error) {
	var count int
	err := d.sql.QueryRowContext(ctx, "SELECT COUNT(*) FROM users").Scan(&count)
	return count, err
}
