// internal/app/features/reviews/handler.go
package reviews

import (
	"context"
	"net/http"

	"github.com/bistroboss/bistrohub/internal/app/system/respond"
	"github.com/bistroboss/bistrohub/internal/app/system/timeouts"
	"github.com/bistroboss/bistrohub/internal/domain/models"
	"go.uber.org/zap"
)

type ReviewStore interface {
	List(ctx context.Context) ([]models.Review, error)
}

type Handler struct {
	Log     *zap.Logger
	Reviews ReviewStore
}

func NewHandler(store ReviewStore, logger *zap.Logger) *Handler {
	return &Handler{
		Log:     logger,
		Reviews: store,
	}
}

// HandleList handles GET /reviews. Public.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := h.Reviews.List(ctx)
	if err != nil {
		respond.Dependency(w, h.Log, "list reviews", err)
		return
	}

	respond.JSON(w, http.StatusOK, list)
}
