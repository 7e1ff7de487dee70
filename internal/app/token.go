package app

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the signed payload carried by the session cookie.
type SessionClaims struct {
	jwt.RegisteredClaims
	UserID int64 `json:"user_id"`
}

// TokenIssuer mints and verifies the signed session credential. The secret
// is loaded once at startup and shared by reference; verification is a pure
// computation with no I/O.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenIssuer creates a TokenIssuer signing with the given secret.
// Tokens expire after ttl.
func NewTokenIssuer(secret []byte, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: secret, ttl: ttl}
}

// Issue mints a signed session token bound to the given user id.
func (t *TokenIssuer) Issue(userID int64) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
		UserID: userID,
	})
	return token.SignedString(t.secret)
}

// Verify checks the token signature and expiry and returns the embedded
// user id.
func (t *TokenIssuer) Verify(tokenString string) (int64, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(tok *jwt.Token) (any, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return 0, ErrInvalidSessionToken
	}
	if !token.Valid || claims.UserID == 0 {
		return 0, ErrInvalidSessionToken
	}
	return claims.UserID, nil
}

// TTL returns the configured token lifetime.
func (t *TokenIssuer) TTL() time.Duration {
	return t.ttl
}
