// internal/app/features/payments/routes.go
package payments

import (
	"github.com/bistroboss/bistrohub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Register attaches the payment routes to the API router. Creating an
// intent needs a valid token.
func Register(r chi.Router, h *Handler, tokens *auth.TokenManager) {
	r.Group(func(pr chi.Router) {
		pr.Use(tokens.RequireToken)
		pr.Post("/create-payment-intent", h.HandleCreateIntent)
	})
}
