// internal/app/features/cart/handler.go
package cart

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/bistroboss/bistrohub/internal/app/system/auth"
	"github.com/bistroboss/bistrohub/internal/app/system/authz"
	"github.com/bistroboss/bistrohub/internal/app/system/respond"
	"github.com/bistroboss/bistrohub/internal/app/system/sanitize"
	"github.com/bistroboss/bistrohub/internal/app/system/timeouts"
	"github.com/bistroboss/bistrohub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type CartStore interface {
	Insert(ctx context.Context, item models.CartItem) (primitive.ObjectID, error)
	ListByEmail(ctx context.Context, email string) ([]models.CartItem, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

type Handler struct {
	Log  *zap.Logger
	Cart CartStore
}

func NewHandler(store CartStore, logger *zap.Logger) *Handler {
	return &Handler{
		Log:  logger,
		Cart: store,
	}
}

// itemInput is the allow-list for cart writes. Price is a snapshot of the
// menu price at add time.
type itemInput struct {
	Email      string  `json:"email"`
	MenuItemID string  `json:"menuItemId"`
	Name       string  `json:"name"`
	Image      string  `json:"image"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
}

// HandleAdd handles POST /add-cart-item. The item lands in the caller's
// own cart: an omitted email falls back to the token's email, and a
// mismatched one is refused.
func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.CurrentClaims(r)
	if !ok {
		respond.Unauthorized(w)
		return
	}

	var in itemInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.Invalid(w, "request body must be a JSON object")
		return
	}

	if in.Email == "" {
		in.Email = claims.Email
	} else if !authz.OwnsEmail(r, in.Email) {
		respond.Forbidden(w)
		return
	}

	menuItemID, err := primitive.ObjectIDFromHex(in.MenuItemID)
	if err != nil {
		respond.Invalid(w, "invalid menu item id")
		return
	}
	if in.Quantity < 1 {
		in.Quantity = 1
	}
	if in.Price < 0 {
		respond.Invalid(w, "price must not be negative")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	id, err := h.Cart.Insert(ctx, models.CartItem{
		Email:      in.Email,
		MenuItemID: menuItemID,
		Name:       sanitize.Text(in.Name),
		Image:      sanitize.Text(in.Image),
		Price:      in.Price,
		Quantity:   in.Quantity,
	})
	if err != nil {
		respond.Dependency(w, h.Log, "add cart item", err)
		return
	}

	respond.JSON(w, http.StatusOK, map[string]any{"insertedId": id})
}

// HandleList handles GET /user/cart-Items. The email query parameter
// defaults to the token's email; asking for someone else's cart is
// refused.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.CurrentClaims(r)
	if !ok {
		respond.Unauthorized(w)
		return
	}

	email := r.URL.Query().Get("email")
	if email == "" {
		email = claims.Email
	} else if !authz.OwnsEmail(r, email) {
		respond.Forbidden(w)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	items, err := h.Cart.ListByEmail(ctx, email)
	if err != nil {
		respond.Dependency(w, h.Log, "list cart items", err)
		return
	}

	respond.JSON(w, http.StatusOK, items)
}

// HandleDelete handles DELETE /delete-cart-item/{id}.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respond.Invalid(w, "invalid cart item id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	deleted, err := h.Cart.Delete(ctx, id)
	if err != nil {
		respond.Dependency(w, h.Log, "delete cart item", err)
		return
	}

	respond.JSON(w, http.StatusOK, map[string]any{"deletedCount": deleted})
}
