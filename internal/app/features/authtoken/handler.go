// internal/app/features/authtoken/handler.go
package authtoken

import (
	"encoding/json"
	"net/http"

	"github.com/bistroboss/bistrohub/internal/app/system/auth"
	"github.com/bistroboss/bistrohub/internal/app/system/respond"
	"go.uber.org/zap"
)

type Handler struct {
	Log    *zap.Logger
	Tokens *auth.TokenManager
}

func NewHandler(tokens *auth.TokenManager, logger *zap.Logger) *Handler {
	return &Handler{
		Log:    logger,
		Tokens: tokens,
	}
}

// HandleIssue handles POST /auth/access-token. The submitted JSON object
// becomes the token's claim set; the signed token travels back only as an
// HttpOnly cookie, never in the response body.
func (h *Handler) HandleIssue(w http.ResponseWriter, r *http.Request) {
	var submitted map[string]any
	if err := json.NewDecoder(r.Body).Decode(&submitted); err != nil {
		respond.Invalid(w, "request body must be a JSON object")
		return
	}

	email, _ := submitted["email"].(string)
	if email == "" {
		respond.Invalid(w, "email is required")
		return
	}

	token, err := h.Tokens.Issue(submitted)
	if err != nil {
		respond.Dependency(w, h.Log, "issue access token", err)
		return
	}

	h.Tokens.SetCookie(w, token)
	respond.JSON(w, http.StatusOK, map[string]any{"success": true})
}

// HandleLogout handles GET /logout. The current token's id is revoked so
// the cookie cannot be replayed, then the cookie itself is cleared. Logout
// succeeds even when no usable cookie arrived.
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(auth.CookieName); err == nil && c.Value != "" {
		h.Tokens.Revoke(c.Value)
	}

	h.Tokens.ClearCookie(w)
	respond.JSON(w, http.StatusOK, map[string]any{"success": true})
}
