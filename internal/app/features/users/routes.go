// internal/app/features/users/routes.go
package users

import (
	"net/http"

	"github.com/bistroboss/bistrohub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Register attaches the user routes to the API router. Self-service
// routes need a valid token; the management routes additionally need the
// admin role.
func Register(r chi.Router, h *Handler, tokens *auth.TokenManager, admin func(http.Handler) http.Handler) {
	r.Group(func(pr chi.Router) {
		pr.Use(tokens.RequireToken)
		pr.Put("/create-or-update-user/{email}", h.HandleUpsert)
		pr.Get("/get-user-data/{email}", h.HandleGet)
	})

	r.Group(func(pr chi.Router) {
		pr.Use(tokens.RequireToken, admin)
		pr.Get("/all-users", h.HandleList)
		pr.Patch("/make-admin/{id}", h.HandleMakeAdmin)
		pr.Delete("/delete-user/{id}", h.HandleDelete)
	})
}
