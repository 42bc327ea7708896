package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/ttkcys/milliyetciler/pkg/auth"
)

type contextKey string

const (
	// UserIDKey holds the authenticated user's id in the request context
	UserIDKey contextKey = "user_id"
	// EmailKey holds the authenticated user's email
	EmailKey contextKey = "email"
	// LevelKey holds the authenticated user's level
	LevelKey contextKey = "level"
)

// UserIDFromContext extracts the session user id, if any
func UserIDFromContext(ctx context.Context) (uint, bool) {
	id, ok := ctx.Value(UserIDKey).(uint)
	return id, ok
}

// Session resolves the uid cookie into a user identity in the request
// context. Requests without a valid cookie pass through anonymous;
// handlers that need an identity use RequireSession instead.
func Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(auth.SessionCookieName)
		if err != nil || cookie.Value == "" {
			next.ServeHTTP(w, r)
			return
		}

		claims, err := auth.ValidateToken(cookie.Value)
		if err != nil {
			// Expired or tampered cookie is treated as anonymous
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
		ctx = context.WithValue(ctx, EmailKey, claims.Email)
		ctx = context.WithValue(ctx, LevelKey, claims.Level)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireSession rejects requests that did not resolve to a user
func RequireSession(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := UserIDFromContext(r.Context()); !ok {
			respondError(w, http.StatusUnauthorized, "Oturum yok")
			return
		}
		next.ServeHTTP(w, r)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}
