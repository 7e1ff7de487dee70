package app

import (
	"strings"
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Parallel()

	issuer := NewTokenIssuer([]byte("super-secret"), time.Hour)

	tok, err := issuer.Issue(42)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	userID, err := issuer.Verify(tok)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if userID != 42 {
		t.Fatalf("user id mismatch: got %d want 42", userID)
	}
}

func TestTokenTamperedSignature(t *testing.T) {
	t.Parallel()

	issuer := NewTokenIssuer([]byte("super-secret"), time.Hour)
	tok, err := issuer.Issue(7)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	last := tok[len(tok)-1]
	repl := byte('A')
	if last == 'A' {
		repl = 'B'
	}
	tampered := tok[:len(tok)-1] + string(repl)

	if _, err := issuer.Verify(tampered); err == nil {
		t.Fatal("expected error for tampered signature, got nil")
	}
}

func TestTokenTamperedPayload(t *testing.T) {
	t.Parallel()

	issuer := NewTokenIssuer([]byte("super-secret"), time.Hour)
	tok, err := issuer.Issue(7)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	parts := strings.SplitN(tok, ".", 3)
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %q", tok)
	}

	payload := []byte(parts[1])
	if payload[0] == 'x' {
		payload[0] = 'y'
	} else {
		payload[0] = 'x'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	if _, err := issuer.Verify(tampered); err == nil {
		t.Fatal("expected error for tampered payload, got nil")
	}
}

func TestTokenWrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewTokenIssuer([]byte("right-secret"), time.Hour).Issue(7)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	if _, err := NewTokenIssuer([]byte("wrong-secret"), time.Hour).Verify(tok); err == nil {
		t.Fatal("expected error for wrong secret, got nil")
	}
}

func TestTokenExpired(t *testing.T) {
	t.Parallel()

	issuer := NewTokenIssuer([]byte("super-secret"), -time.Minute)
	tok, err := issuer.Issue(7)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	if _, err := issuer.Verify(tok); err == nil {
		t.Fatal("expected error for expired token, got nil")
	}
}

func TestTokenGarbage(t *testing.T) {
	t.Parallel()

	issuer := NewTokenIssuer([]byte("super-secret"), time.Hour)
	if _, err := issuer.Verify("not-a-token"); err == nil {
		t.Fatal("expected error for garbage token, got nil")
	}
}
