package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/tracker?sslmode=disable")
	t.Setenv("SECRET_KEY", "s3cret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Addr != ":8080" {
		t.Errorf("Addr = %q, want :8080", cfg.Addr)
	}
	if !cfg.SecureCookies {
		t.Error("SecureCookies should default to true")
	}
	if cfg.SessionTTL != 24*time.Hour {
		t.Errorf("SessionTTL = %v, want 24h", cfg.SessionTTL)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/tracker?sslmode=disable")
	t.Setenv("SECRET_KEY", "s3cret")
	t.Setenv("ADDR", ":9090")
	t.Setenv("SECURE_COOKIES", "false")
	t.Setenv("SESSION_TTL", "1h")
	t.Setenv("FIREBASE_PROJECT_ID", "tracker-prod")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Addr != ":9090" || cfg.SecureCookies || cfg.SessionTTL != time.Hour {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.FirebaseProjectID != "tracker-prod" {
		t.Errorf("FirebaseProjectID = %q", cfg.FirebaseProjectID)
	}
}
