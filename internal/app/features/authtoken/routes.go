// internal/app/features/authtoken/routes.go
package authtoken

import (
	"github.com/go-chi/chi/v5"
)

// Register attaches the token issue and logout routes to the API router.
// Both are reachable without a valid token: issue necessarily so, and
// logout so a client with an expired cookie can still clear it.
func Register(r chi.Router, h *Handler) {
	r.Post("/auth/access-token", h.HandleIssue)
	r.Get("/logout", h.HandleLogout)
}
