package adapthttp_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	adapthttp "projecttracker/internal/adapter/http"
	"projecttracker/internal/adapter/memory"
	"projecttracker/internal/app"
	"projecttracker/internal/domain"
)

const testSecret = "test-secret"

type stubVerifier struct {
	subject string
	err     error
}

func (v stubVerifier) Verify(ctx context.Context, rawToken string) (string, error) {
	if v.err != nil {
		return "", v.err
	}
	return v.subject, nil
}

type env struct {
	t       *testing.T
	handler http.Handler
	db      *memory.DB
}

func newEnv(t *testing.T, verifier domain.IdentityVerifier, secureCookies bool) *env {
	t.Helper()
	db := memory.New()
	tokens := app.NewTokenIssuer([]byte(testSecret), time.Hour)
	auth := app.NewAuthService(db, verifier, tokens)
	srv := adapthttp.New(auth,
		app.NewManagerService(db), app.NewClientService(db), app.NewProjectService(db),
		app.NewTeamMemberService(db), app.NewFeedbackService(db), secureCookies)
	return &env{t: t, handler: srv.Handler(), db: db}
}

func (e *env) do(method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	e.t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			e.t.Fatalf("marshal body: %v", err)
		}
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	e.handler.ServeHTTP(w, req)
	return w
}

func (e *env) setup(username, password string) {
	e.t.Helper()
	w := e.do(http.MethodPost, "/setup/", map[string]string{"username": username, "password": password})
	if w.Code != http.StatusOK {
		e.t.Fatalf("setup returned %d: %s", w.Code, w.Body.String())
	}
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == "access_token" {
			return c
		}
	}
	t.Fatal("no access_token cookie in response")
	return nil
}

func (e *env) login(username, password string) *http.Cookie {
	e.t.Helper()
	w := e.do(http.MethodPost, "/login/", map[string]string{"username": username, "password": password})
	if w.Code != http.StatusOK {
		e.t.Fatalf("login returned %d: %s", w.Code, w.Body.String())
	}
	return sessionCookie(e.t, w)
}

func TestLocalLogin(t *testing.T) {
	t.Parallel()

	e := newEnv(t, stubVerifier{err: errors.New("unused")}, false)
	e.setup("alice", "correct")

	w := e.do(http.MethodPost, "/login/", map[string]string{"username": "alice", "password": "correct"})
	if w.Code != http.StatusOK {
		t.Fatalf("login returned %d: %s", w.Code, w.Body.String())
	}

	c := sessionCookie(t, w)
	if !c.HttpOnly {
		t.Error("cookie is not HttpOnly")
	}
	if c.SameSite != http.SameSiteLaxMode {
		t.Errorf("cookie SameSite = %v, want Lax", c.SameSite)
	}
	if c.Secure {
		t.Error("cookie Secure set despite SECURE_COOKIES=false")
	}

	userID, err := app.NewTokenIssuer([]byte(testSecret), time.Hour).Verify(c.Value)
	if err != nil {
		t.Fatalf("cookie token failed verification: %v", err)
	}
	user, err := e.db.GetByUsername(context.Background(), "alice")
	if err != nil || user == nil {
		t.Fatalf("GetByUsername = %v, %v", user, err)
	}
	if userID != user.ID {
		t.Fatalf("token bound to user %d, want %d", userID, user.ID)
	}
}

func TestLocalLoginWrongPassword(t *testing.T) {
	t.Parallel()

	e := newEnv(t, stubVerifier{err: errors.New("unused")}, false)
	e.setup("alice", "correct")

	w := e.do(http.MethodPost, "/login/", map[string]string{"username": "alice", "password": "wrong"})
	if w.Code != http.StatusForbidden {
		t.Fatalf("login returned %d, want 403", w.Code)
	}
	if len(w.Result().Cookies()) != 0 {
		t.Fatal("cookie set on failed login")
	}
}

func TestSecureCookieFlag(t *testing.T) {
	t.Parallel()

	e := newEnv(t, stubVerifier{err: errors.New("unused")}, true)
	e.setup("alice", "correct")

	w := e.do(http.MethodPost, "/login/", map[string]string{"username": "alice", "password": "correct"})
	if !sessionCookie(t, w).Secure {
		t.Error("cookie Secure flag not set")
	}
}

func TestFirebaseLogin(t *testing.T) {
	t.Parallel()

	e := newEnv(t, stubVerifier{subject: "uid-9"}, false)

	w := e.do(http.MethodPost, "/login/firebase/", map[string]string{"token": "valid-id-token"})
	if w.Code != http.StatusOK {
		t.Fatalf("login returned %d: %s", w.Code, w.Body.String())
	}

	c := sessionCookie(t, w)
	userID, err := app.NewTokenIssuer([]byte(testSecret), time.Hour).Verify(c.Value)
	if err != nil {
		t.Fatalf("cookie token failed verification: %v", err)
	}

	user, err := e.db.GetByUsername(context.Background(), "uid-9")
	if err != nil || user == nil {
		t.Fatalf("provisioned user not found: %v, %v", user, err)
	}
	if userID != user.ID {
		t.Fatalf("token bound to user %d, want %d", userID, user.ID)
	}

	// A repeat login maps to the same record.
	w2 := e.do(http.MethodPost, "/login/firebase/", map[string]string{"token": "valid-id-token"})
	if w2.Code != http.StatusOK {
		t.Fatalf("second login returned %d", w2.Code)
	}
	count, _ := e.db.Count(context.Background())
	if count != 1 {
		t.Fatalf("expected 1 user record after repeat login, got %d", count)
	}
}

func TestFirebaseLoginMissingToken(t *testing.T) {
	t.Parallel()

	e := newEnv(t, stubVerifier{subject: "uid-9"}, false)

	w := e.do(http.MethodPost, "/login/firebase/", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("login returned %d, want 400", w.Code)
	}
	if len(w.Result().Cookies()) != 0 {
		t.Fatal("cookie set for missing token")
	}
	count, _ := e.db.Count(context.Background())
	if count != 0 {
		t.Fatalf("user created for missing token: %d records", count)
	}
}

func TestFirebaseLoginInvalidToken(t *testing.T) {
	t.Parallel()

	e := newEnv(t, stubVerifier{err: errors.New("oidc: malformed jwt")}, false)

	w := e.do(http.MethodPost, "/login/firebase/", map[string]string{"token": "garbage"})
	if w.Code != http.StatusForbidden {
		t.Fatalf("login returned %d, want 403", w.Code)
	}

	// The verifier's internal error must not leak.
	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Error != "authentication failed" {
		t.Errorf("error body %q leaks verifier detail", body.Error)
	}

	if len(w.Result().Cookies()) != 0 {
		t.Fatal("cookie set for invalid token")
	}
	count, _ := e.db.Count(context.Background())
	if count != 0 {
		t.Fatalf("user created for invalid token: %d records", count)
	}
}

func TestSetupOnlyOnce(t *testing.T) {
	t.Parallel()

	e := newEnv(t, stubVerifier{err: errors.New("unused")}, false)
	e.setup("alice", "correct")

	w := e.do(http.MethodPost, "/setup/", map[string]string{"username": "bob", "password": "pw"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("second setup returned %d, want 400", w.Code)
	}
}
