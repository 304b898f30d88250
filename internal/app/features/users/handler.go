// internal/app/features/users/handler.go
package users

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	userstore "github.com/bistroboss/bistrohub/internal/app/store/users"
	"github.com/bistroboss/bistrohub/internal/app/system/authz"
	"github.com/bistroboss/bistrohub/internal/app/system/respond"
	"github.com/bistroboss/bistrohub/internal/app/system/sanitize"
	"github.com/bistroboss/bistrohub/internal/app/system/timeouts"
	"github.com/bistroboss/bistrohub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// UserStore is the slice of the users store this feature needs.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Upsert(ctx context.Context, email string, p userstore.ProfileFields) (userstore.UpsertResult, error)
	List(ctx context.Context) ([]models.User, error)
	SetRole(ctx context.Context, id primitive.ObjectID, role string) (matched, modified int64, err error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

type Handler struct {
	Log   *zap.Logger
	Users UserStore
}

func NewHandler(store UserStore, logger *zap.Logger) *Handler {
	return &Handler{
		Log:   logger,
		Users: store,
	}
}

// profileInput is the allow-list for self-service profile writes. Role is
// deliberately absent; it changes only through HandleMakeAdmin.
type profileInput struct {
	Name     string `json:"name"`
	PhotoURL string `json:"photoURL"`
}

// HandleUpsert handles PUT /create-or-update-user/{email}. A caller may
// only write their own profile. When the document already exists the
// handler answers with a sentinel instead of re-writing profile fields.
func (h *Handler) HandleUpsert(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	if !authz.OwnsEmail(r, email) {
		respond.Forbidden(w)
		return
	}

	var in profileInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.Invalid(w, "request body must be a JSON object")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	existing, err := h.Users.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		respond.Dependency(w, h.Log, "look up user", err)
		return
	}
	if existing != nil {
		respond.JSON(w, http.StatusOK, map[string]any{"message": "user already exists"})
		return
	}

	res, err := h.Users.Upsert(ctx, email, userstore.ProfileFields{
		Name:     sanitize.Text(in.Name),
		PhotoURL: sanitize.Text(in.PhotoURL),
	})
	if err != nil {
		// A concurrent request can insert the document between the existence
		// check and the upsert; treat the losing write like the pre-check.
		if errors.Is(err, userstore.ErrDuplicateEmail) {
			respond.JSON(w, http.StatusOK, map[string]any{"message": "user already exists"})
			return
		}
		respond.Dependency(w, h.Log, "create user", err)
		return
	}

	respond.JSON(w, http.StatusOK, res)
}

// HandleGet handles GET /get-user-data/{email}. Returns the stored
// document, or a JSON null when the user has never been persisted.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	if !authz.OwnsEmail(r, email) {
		respond.Forbidden(w)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	user, err := h.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			respond.JSON(w, http.StatusOK, nil)
			return
		}
		respond.Dependency(w, h.Log, "get user data", err)
		return
	}

	respond.JSON(w, http.StatusOK, user)
}

// HandleList handles GET /all-users. Admin only.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := h.Users.List(ctx)
	if err != nil {
		respond.Dependency(w, h.Log, "list users", err)
		return
	}

	respond.JSON(w, http.StatusOK, list)
}

// HandleMakeAdmin handles PATCH /make-admin/{id}. Admin only.
func (h *Handler) HandleMakeAdmin(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respond.Invalid(w, "invalid user id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	matched, modified, err := h.Users.SetRole(ctx, id, models.RoleAdmin)
	if err != nil {
		respond.Dependency(w, h.Log, "promote user", err)
		return
	}

	respond.JSON(w, http.StatusOK, map[string]any{
		"matchedCount":  matched,
		"modifiedCount": modified,
	})
}

// HandleDelete handles DELETE /delete-user/{id}. Admin only.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respond.Invalid(w, "invalid user id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	deleted, err := h.Users.Delete(ctx, id)
	if err != nil {
		respond.Dependency(w, h.Log, "delete user", err)
		return
	}

	respond.JSON(w, http.StatusOK, map[string]any{"deletedCount": deleted})
}
