// internal/app/features/reviews/routes.go
package reviews

import (
	"github.com/go-chi/chi/v5"
)

// Register attaches the public review routes to the API router.
func Register(r chi.Router, h *Handler) {
	r.Get("/reviews", h.HandleList)
}
