// Package authz gates routes on the stored role of the authenticated
// identity. The role is read from the users collection on every request,
// never cached: a make-admin (or demotion) in one request must be
// visible to the very next one, and a stale grant here would be a
// security hole rather than a performance win.
package authz

import (
	"context"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/bistroboss/bistrohub/internal/app/system/auth"
	"github.com/bistroboss/bistrohub/internal/app/system/respond"
	"github.com/bistroboss/bistrohub/internal/app/system/timeouts"
	"github.com/bistroboss/bistrohub/internal/domain/models"
)

// RoleFinder is the point read the admin gate performs. The user store
// implements it; tests substitute a map.
type RoleFinder interface {
	// FindRole returns the stored role for the email, or "" when no
	// user document exists.
	FindRole(ctx context.Context, email string) (string, error)
}

// RequireAdmin allows the request through only when the identity
// attached by auth.RequireToken maps to a stored user with the admin
// role. Anything else answers 403. Must be chained after RequireToken.
func RequireAdmin(roles RoleFinder, log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := auth.CurrentClaims(r)
			if !ok || claims.Email == "" {
				respond.Forbidden(w)
				return
			}

			ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
			defer cancel()

			role, err := roles.FindRole(ctx, claims.Email)
			if err != nil {
				// Fail closed: an unreadable role is not an admin role.
				if log != nil {
					log.Error("role lookup failed", zap.String("email", claims.Email), zap.Error(err))
				}
				respond.Forbidden(w)
				return
			}
			if !IsAdminRole(role) {
				respond.Forbidden(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// IsAdminRole reports whether the stored role grants admin access.
func IsAdminRole(role string) bool {
	return strings.ToLower(strings.TrimSpace(role)) == models.RoleAdmin
}

// OwnsEmail reports whether the request's identity claim matches the
// target email. Handlers use it to keep user and cart operations scoped
// to the caller's own records.
func OwnsEmail(r *http.Request, email string) bool {
	claims, ok := auth.CurrentClaims(r)
	if !ok {
		return false
	}
	return claims.Email != "" && strings.EqualFold(claims.Email, email)
}
