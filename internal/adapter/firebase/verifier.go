// Package firebase verifies Firebase-issued ID tokens via OIDC discovery.
package firebase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
)

const issuerBase = "https://securetoken.google.com/"

// verifyTimeout bounds each verification call so a slow key fetch cannot
// starve request handlers. Keys are cached by go-oidc after the first fetch.
const verifyTimeout = 10 * time.Second

// Verifier validates Firebase ID tokens for a single project and extracts
// the subject id. Implements domain.IdentityVerifier.
type Verifier struct {
	verifier *oidc.IDTokenVerifier
}

// New discovers the Firebase securetoken issuer for the given project id
// and returns a Verifier checking both issuer and audience against it.
func New(ctx context.Context, projectID string) (*Verifier, error) {
	if projectID == "" {
		return nil, errors.New("firebase project id is required")
	}

	provider, err := oidc.NewProvider(ctx, issuerBase+projectID)
	if err != nil {
		return nil, fmt.Errorf("oidc discovery: %w", err)
	}

	return &Verifier{
		verifier: provider.Verifier(&oidc.Config{ClientID: projectID}),
	}, nil
}

// Verify validates the raw ID token and returns the stable subject id
// asserted by Firebase.
func (v *Verifier) Verify(ctx context.Context, rawToken string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, verifyTimeout)
	defer cancel()

	idToken, err := v.verifier.Verify(ctx, rawToken)
	if err != nil {
		return "", err
	}

	if idToken.Subject == "" {
		return "", errors.New("token has no subject")
	}
	return idToken.Subject, nil
}
