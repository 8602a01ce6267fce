package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"fooddash-be/internal/user"
)

type contextKey string

const SessionKey contextKey = "session"

// Auth resolves the bearer token into a session identity and stores it
// on the request context. Requests without a valid token pass through
// anonymously; RequireAuth is the gate.
func Auth(users user.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				next.ServeHTTP(w, r)
				return
			}

			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
			sess, err := users.Verify(tokenStr)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), SessionKey, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionFrom returns the authenticated session, or nil.
func SessionFrom(ctx context.Context) *user.Session {
	if sess, ok := ctx.Value(SessionKey).(*user.Session); ok {
		return sess
	}
	return nil
}

// RequireAuth rejects anonymous requests, pointing the client at the
// login surface instead of failing deeper in.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if SessionFrom(r.Context()) == nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{
				"error":    "login required",
				"redirect": "/login",
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}
