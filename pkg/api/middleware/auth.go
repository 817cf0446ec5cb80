// Package middleware provides HTTP middleware for the storefront API.
package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/marmos91/storefront/internal/logger"
	"github.com/marmos91/storefront/pkg/api/auth"
	"github.com/marmos91/storefront/pkg/models"
	"github.com/marmos91/storefront/pkg/store"
)

// Context key type for storing the authenticated user
type contextKey string

const userContextKey contextKey = "user"

// UserFromContext retrieves the authenticated user from the request context.
// Returns nil if no user is present.
//
// A non-nil result means the presenting token was structurally valid,
// signature-verified, unexpired, and its claimed user id currently
// exists in the store. Handlers behind Authenticate may rely on this.
func UserFromContext(ctx context.Context) *models.User {
	user, ok := ctx.Value(userContextKey).(*models.User)
	if !ok {
		return nil
	}
	return user
}

// WithUser returns a context carrying the given user. Exposed for tests.
func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// extractBearerToken extracts the token from a Bearer Authorization header.
// Returns the token string and true if successful, or empty string and false if not.
func extractBearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	return parts[1], true
}

// Authenticate is the per-request authentication gate.
//
// A request without an Authorization header passes through
// unauthenticated; guest access is not an error. A request that does
// present a bearer token is held to full validation: an invalid,
// tampered, or expired token fails with 401, and so does a valid token
// whose user no longer exists. A presented-but-bad credential is never
// silently downgraded to guest access.
func Authenticate(jwtService *auth.JWTService, users store.UserStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, ok := extractBearerToken(r)
			if !ok {
				// No token presented - continue as guest
				next.ServeHTTP(w, r)
				return
			}

			claims, err := jwtService.Validate(tokenString)
			if err != nil {
				if errors.Is(err, auth.ErrExpiredToken) {
					logger.Debug("rejected expired token", "path", r.URL.Path)
				}
				http.Error(w, "Invalid or expired token", http.StatusUnauthorized)
				return
			}

			user, err := users.GetUserByID(r.Context(), claims.UserID)
			if err != nil {
				if errors.Is(err, models.ErrUserNotFound) {
					// Token outlived its user
					http.Error(w, "Invalid or expired token", http.StatusUnauthorized)
					return
				}
				http.Error(w, "Authentication failed", http.StatusInternalServerError)
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireUser is the authorization gate for routes that require a
// logged-in user. Must be used after Authenticate.
func RequireUser() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if UserFromContext(r.Context()) == nil {
				http.Error(w, "You must be logged in", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
