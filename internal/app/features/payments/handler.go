// internal/app/features/payments/handler.go
package payments

import (
	"context"
	"encoding/json"
	"math"
	"net/http"

	"github.com/bistroboss/bistrohub/internal/app/system/respond"
	"github.com/bistroboss/bistrohub/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// IntentCreator creates a payment intent with the processor and returns
// the client secret the browser needs to confirm it.
type IntentCreator interface {
	CreateIntent(ctx context.Context, amountCents int64, currency string) (clientSecret string, err error)
}

type Handler struct {
	Log     *zap.Logger
	Intents IntentCreator
}

func NewHandler(intents IntentCreator, logger *zap.Logger) *Handler {
	return &Handler{
		Log:     logger,
		Intents: intents,
	}
}

type intentInput struct {
	Price float64 `json:"price"`
}

// HandleCreateIntent handles POST /create-payment-intent. Price arrives
// in dollars and is charged in cents; anything that rounds below one
// cent is refused before it reaches the processor.
func (h *Handler) HandleCreateIntent(w http.ResponseWriter, r *http.Request) {
	var in intentInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.Invalid(w, "request body must be a JSON object")
		return
	}

	amount := int64(math.Round(in.Price * 100))
	if in.Price <= 0 || amount < 1 {
		respond.Invalid(w, "price must be a positive amount")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	secret, err := h.Intents.CreateIntent(ctx, amount, "usd")
	if err != nil {
		respond.Dependency(w, h.Log, "create payment intent", err)
		return
	}

	respond.JSON(w, http.StatusOK, map[string]any{"clientSecret": secret})
}
