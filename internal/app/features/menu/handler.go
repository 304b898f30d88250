// internal/app/features/menu/handler.go
package menu

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	menustore "github.com/bistroboss/bistrohub/internal/app/store/menuitems"
	"github.com/bistroboss/bistrohub/internal/app/system/respond"
	"github.com/bistroboss/bistrohub/internal/app/system/sanitize"
	"github.com/bistroboss/bistrohub/internal/app/system/timeouts"
	"github.com/bistroboss/bistrohub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// MenuStore is the slice of the menu items store this feature needs.
type MenuStore interface {
	Insert(ctx context.Context, item models.MenuItem) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.MenuItem, error)
	List(ctx context.Context) ([]models.MenuItem, error)
	Update(ctx context.Context, id primitive.ObjectID, p menustore.Patch) (matched, modified int64, err error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

type Handler struct {
	Log  *zap.Logger
	Menu MenuStore
}

func NewHandler(store MenuStore, logger *zap.Logger) *Handler {
	return &Handler{
		Log:  logger,
		Menu: store,
	}
}

// itemInput is the allow-list for menu item writes.
type itemInput struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
}

// HandleList handles GET /menu-items. Public.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	items, err := h.Menu.List(ctx)
	if err != nil {
		respond.Dependency(w, h.Log, "list menu items", err)
		return
	}

	respond.JSON(w, http.StatusOK, items)
}

// HandleGet handles GET /menu-item/{id}. Public.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respond.Invalid(w, "invalid menu item id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	item, err := h.Menu.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			respond.JSON(w, http.StatusOK, nil)
			return
		}
		respond.Dependency(w, h.Log, "get menu item", err)
		return
	}

	respond.JSON(w, http.StatusOK, item)
}

// HandleCreate handles POST /add-menu-item. Admin only.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in itemInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.Invalid(w, "request body must be a JSON object")
		return
	}

	in.Name = sanitize.Text(in.Name)
	if in.Name == "" {
		respond.Invalid(w, "name is required")
		return
	}
	if in.Price < 0 {
		respond.Invalid(w, "price must not be negative")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	id, err := h.Menu.Insert(ctx, models.MenuItem{
		Name:        in.Name,
		Category:    sanitize.Text(in.Category),
		Price:       in.Price,
		Description: sanitize.Text(in.Description),
		Image:       sanitize.Text(in.Image),
	})
	if err != nil {
		respond.Dependency(w, h.Log, "add menu item", err)
		return
	}

	respond.JSON(w, http.StatusOK, map[string]any{"insertedId": id})
}

// patchInput distinguishes absent fields from zero values so a partial
// update only touches what the caller sent.
type patchInput struct {
	Name        *string  `json:"name"`
	Category    *string  `json:"category"`
	Price       *float64 `json:"price"`
	Description *string  `json:"description"`
	Image       *string  `json:"image"`
}

// HandleUpdate handles PATCH /update-menu-item/{id}. Admin only.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respond.Invalid(w, "invalid menu item id")
		return
	}

	var in patchInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.Invalid(w, "request body must be a JSON object")
		return
	}
	if in.Price != nil && *in.Price < 0 {
		respond.Invalid(w, "price must not be negative")
		return
	}

	patch := menustore.Patch{Price: in.Price}
	if in.Name != nil {
		clean := sanitize.Text(*in.Name)
		patch.Name = &clean
	}
	if in.Category != nil {
		clean := sanitize.Text(*in.Category)
		patch.Category = &clean
	}
	if in.Description != nil {
		clean := sanitize.Text(*in.Description)
		patch.Description = &clean
	}
	if in.Image != nil {
		clean := sanitize.Text(*in.Image)
		patch.Image = &clean
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	matched, modified, err := h.Menu.Update(ctx, id, patch)
	if err != nil {
		respond.Dependency(w, h.Log, "update menu item", err)
		return
	}

	respond.JSON(w, http.StatusOK, map[string]any{
		"matchedCount":  matched,
		"modifiedCount": modified,
	})
}

// HandleDelete handles DELETE /delete-menu-item/{id}. Admin only.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respond.Invalid(w, "invalid menu item id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	deleted, err := h.Menu.Delete(ctx, id)
	if err != nil {
		respond.Dependency(w, h.Log, "delete menu item", err)
		return
	}

	respond.JSON(w, http.StatusOK, map[string]any{"deletedCount": deleted})
}
