// internal/app/features/cart/routes.go
package cart

import (
	"github.com/bistroboss/bistrohub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Register attaches the cart routes to the API router. Every route needs
// a valid token.
func Register(r chi.Router, h *Handler, tokens *auth.TokenManager) {
	r.Group(func(pr chi.Router) {
		pr.Use(tokens.RequireToken)
		pr.Post("/add-cart-item", h.HandleAdd)
		pr.Get("/user/cart-Items", h.HandleList)
		pr.Delete("/delete-cart-item/{id}", h.HandleDelete)
	})
}
