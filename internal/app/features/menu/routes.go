// internal/app/features/menu/routes.go
package menu

import (
	"net/http"

	"github.com/bistroboss/bistrohub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Register attaches the menu routes to the API router. Reads are public;
// writes need a valid token and the admin role.
func Register(r chi.Router, h *Handler, tokens *auth.TokenManager, admin func(http.Handler) http.Handler) {
	r.Get("/menu-items", h.HandleList)
	r.Get("/menu-item/{id}", h.HandleGet)

	r.Group(func(pr chi.Router) {
		pr.Use(tokens.RequireToken, admin)
		pr.Post("/add-menu-item", h.HandleCreate)
		pr.Patch("/update-menu-item/{id}", h.HandleUpdate)
		pr.Delete("/delete-menu-item/{id}", h.HandleDelete)
	})
}
