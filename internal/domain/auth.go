// Package domain contains the core business entities and interfaces.
package domain

import (
	"context"
	"time"
)

// User represents an authenticated user in the system. Users provisioned
// through the identity provider carry an empty password hash and can only
// log in by presenting a provider token.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

// UserRepository defines the port for user persistence operations.
type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	Create(ctx context.Context, username, passwordHash string) (*User, error)
	// GetOrCreateByExternalID maps an identity-provider subject id to a
	// user record, creating one on first sight. Implementations must
	// guarantee at most one record per subject id under concurrent calls.
	GetOrCreateByExternalID(ctx context.Context, subjectID string) (*User, error)
	Count(ctx context.Context) (int, error)
}

// IdentityVerifier validates an externally-issued identity token and
// extracts the stable subject identifier asserted by the provider.
type IdentityVerifier interface {
	Verify(ctx context.Context, rawToken string) (string, error)
}
