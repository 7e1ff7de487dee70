package adapthttp

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
)

type contextKey string

const userContextKey contextKey = "user_id"

// UserID returns the authenticated user id attached by the auth middleware,
// or 0 when the request is unauthenticated.
func UserID(ctx context.Context) int64 {
	id, _ := ctx.Value(userContextKey).(int64)
	return id
}

// authMiddleware gates resource endpoints behind a valid session cookie.
// Missing and invalid tokens both surface as 401; the access log records
// which it was.
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(sessionCookieName)
		if err != nil {
			log.Printf("auth: no session cookie %s %s", r.Method, r.URL.Path)
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		userID, err := s.auth.ValidateToken(cookie.Value)
		if err != nil {
			log.Printf("auth: invalid session token %s %s", r.Method, r.URL.Path)
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(status int) {
	rec.status = status
	rec.ResponseWriter.WriteHeader(status)
}

// loggingMiddleware writes an access log line per request, tagged with a
// generated request id that is also echoed to the client.
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := uuid.NewString()
		w.Header().Set("X-Request-Id", reqID)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)

		log.Printf("%s %s %d %s request_id=%s", r.Method, r.URL.Path, rec.status, time.Since(start), reqID)
	})
}
