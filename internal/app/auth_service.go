// Package app holds the application services and business logic.
package app

import (
	"context"
	"errors"

	"projecttracker/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials indicates that the provided username or password was incorrect.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrMissingToken indicates that no identity token was supplied.
	ErrMissingToken = errors.New("token is missing")
	// ErrInvalidIDToken indicates that the identity provider rejected the token.
	ErrInvalidIDToken = errors.New("authentication failed")
	// ErrInvalidSessionToken indicates that the session token failed verification.
	ErrInvalidSessionToken = errors.New("invalid session token")
	// ErrNotFound indicates that the requested record does not exist.
	ErrNotFound = errors.New("record not found")
)

// AuthService handles both login paths and session token validation.
type AuthService struct {
	users    domain.UserRepository
	verifier domain.IdentityVerifier
	tokens   *TokenIssuer
}

// NewAuthService creates a new authentication service.
func NewAuthService(users domain.UserRepository, verifier domain.IdentityVerifier, tokens *TokenIssuer) *AuthService {
	return &AuthService{
		users:    users,
		verifier: verifier,
		tokens:   tokens,
	}
}

// LoginWithPassword authenticates a local user and mints a session token.
// Users provisioned via the identity provider have no password hash and
// cannot pass this path.
func (s *AuthService) LoginWithPassword(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil || user == nil || user.PasswordHash == "" {
		return "", ErrInvalidCredentials
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.tokens.Issue(user.ID)
}

// LoginWithIDToken verifies an identity-provider token, provisions the user
// on first sight, and mints a session token.
func (s *AuthService) LoginWithIDToken(ctx context.Context, rawToken string) (string, error) {
	if rawToken == "" {
		return "", ErrMissingToken
	}
	if s.verifier == nil {
		return "", ErrInvalidIDToken
	}

	subject, err := s.verifier.Verify(ctx, rawToken)
	if err != nil {
		return "", ErrInvalidIDToken
	}

	user, err := s.users.GetOrCreateByExternalID(ctx, subject)
	if err != nil {
		return "", err
	}

	return s.tokens.Issue(user.ID)
}

// ValidateToken verifies a session token and resolves the embedded user id.
// Pure computation; safe to call on every request.
func (s *AuthService) ValidateToken(tokenString string) (int64, error) {
	return s.tokens.Verify(tokenString)
}

// SessionTTL returns the lifetime of issued session tokens.
func (s *AuthService) SessionTTL() int {
	return int(s.tokens.TTL().Seconds())
}

// CreateInitialUser creates the first local user if no users exist.
func (s *AuthService) CreateInitialUser(ctx context.Context, username, password string) error {
	count, err := s.users.Count(ctx)
	if err != nil {
		return err
	}

	if count > 0 {
		return errors.New("users already exist")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = s.users.Create(ctx, username, string(hash))
	return err
}
