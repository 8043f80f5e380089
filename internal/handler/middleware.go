package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/mkendrick/inkwell/internal/auth"
	"github.com/mkendrick/inkwell/internal/domain"
	"github.com/mkendrick/inkwell/internal/service"
)

type contextKey string

const userContextKey contextKey = "user"

// UserFromContext extracts the authenticated user from the request context.
// Returns nil for anonymous requests.
func UserFromContext(ctx context.Context) *domain.User {
	user, _ := ctx.Value(userContextKey).(*domain.User)
	return user
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header. ok is false when no bearer credential was presented at all.
func bearerToken(r *http.Request) (token string, ok bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return "", false
	}
	return token, true
}

// ResolveIdentity establishes the acting identity for a request. A request
// with no bearer credential proceeds as anonymous and downstream policy
// decides whether that is enough. A presented-but-bad credential (invalid
// signature, malformed payload, expired, or unknown subject) is a hard 401
// and never degrades to anonymous. On success the user record is loaded
// fresh from the store, so the role seen downstream is current, and is
// attached to the request context as the sole source of "who is acting".
func ResolveIdentity(authSvc *service.AuthService, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		user, err := authSvc.UserFromToken(r.Context(), token)
		if err != nil {
			if errors.Is(err, auth.ErrTokenExpired) {
				writeError(w, http.StatusUnauthorized, "Token expired. Please log in again.")
				return
			}
			writeError(w, http.StatusUnauthorized, "Invalid authentication token.")
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SecurityHeaders sets baseline security headers on every response.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "no-referrer")
		next.ServeHTTP(w, r)
	})
}

// requireAction authorizes the request's resolved identity against the
// policy table, translating denials into the 401/403 split.
// Returns false after writing the response when the action is denied.
func requireAction(w http.ResponseWriter, r *http.Request, action auth.Action) bool {
	if err := auth.Authorize(action, UserFromContext(r.Context())); err != nil {
		if errors.Is(err, domain.ErrUnauthenticated) {
			writeError(w, http.StatusUnauthorized, "Authentication required.")
			return false
		}
		writeError(w, http.StatusForbidden, "Admin access required.")
		return false
	}
	return true
}
