package menu_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bistroboss/bistrohub/internal/app/features/menu"
	"github.com/bistroboss/bistrohub/internal/app/system/auth"
	"github.com/bistroboss/bistrohub/internal/app/system/authz"
	"github.com/bistroboss/bistrohub/internal/app/system/revoke"
	"github.com/bistroboss/bistrohub/internal/domain/models"
	"github.com/bistroboss/bistrohub/internal/testutil"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// fakeRoles satisfies authz.RoleFinder for route wiring tests.
type fakeRoles map[string]string

func (f fakeRoles) FindRole(_ context.Context, email string) (string, error) {
	return f[email], nil
}

func newRouteTokens(t *testing.T) *auth.TokenManager {
	t.Helper()
	tokens, err := auth.NewTokenManager("route-test-secret-0123456789ABCDEF",
		time.Hour, false, revoke.NewSet(), zap.NewNop())
	if err != nil {
		t.Fatalf("NewTokenManager: %v", err)
	}
	return tokens
}

func loginCookie(t *testing.T, tokens *auth.TokenManager, email string) *http.Cookie {
	t.Helper()
	tok, err := tokens.Issue(map[string]any{"email": email})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	return &http.Cookie{Name: auth.CookieName, Value: tok}
}

func newMenuRouter(store *fakeMenuStore, tokens *auth.TokenManager, roles fakeRoles) chi.Router {
	r := chi.NewRouter()
	menu.Register(r, newTestHandler(store), tokens, authz.RequireAdmin(roles, zap.NewNop()))
	return r
}

func TestRegister_ReadsArePublic(t *testing.T) {
	store := newFakeMenuStore()
	router := newMenuRouter(store, newRouteTokens(t), fakeRoles{})

	req := httptest.NewRequest("GET", "/menu-items", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("GET /menu-items without cookie: got %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestRegister_WritesRejectMissingToken(t *testing.T) {
	store := newFakeMenuStore()
	router := newMenuRouter(store, newRouteTokens(t), fakeRoles{})

	for _, tc := range []struct{ method, target string }{
		{"POST", "/add-menu-item"},
		{"PATCH", "/update-menu-item/64f000000000000000000000"},
		{"DELETE", "/delete-menu-item/64f000000000000000000000"},
	} {
		req := httptest.NewRequest(tc.method, tc.target, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s %s without cookie: got %d, want %d",
				tc.method, tc.target, rec.Code, http.StatusUnauthorized)
		}
	}
	if store.calls != 0 {
		t.Errorf("store must not be reached without a token, got %d calls", store.calls)
	}
}

func TestRegister_WritesForbidGuests(t *testing.T) {
	store := newFakeMenuStore()
	tokens := newRouteTokens(t)
	router := newMenuRouter(store, tokens, fakeRoles{"guest@example.com": models.RoleGuest})

	req := testutil.NewJSONRequest(t, "POST", "/add-menu-item",
		map[string]any{"name": "Roast Duck", "category": "popular", "price": 14.9})
	req.AddCookie(loginCookie(t, tokens, "guest@example.com"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusForbidden)
	}
	if store.calls != 0 {
		t.Errorf("store must not be reached by a non-admin, got %d calls", store.calls)
	}
}

func TestRegister_WritesAllowAdmins(t *testing.T) {
	store := newFakeMenuStore()
	tokens := newRouteTokens(t)
	router := newMenuRouter(store, tokens, fakeRoles{"admin@example.com": models.RoleAdmin})

	req := testutil.NewJSONRequest(t, "POST", "/add-menu-item",
		map[string]any{"name": "Roast Duck", "category": "popular", "price": 14.9})
	req.AddCookie(loginCookie(t, tokens, "admin@example.com"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}
	if len(store.inserted) != 1 {
		t.Fatalf("inserted: got %d, want 1", len(store.inserted))
	}
	if store.inserted[0].Name != "Roast Duck" {
		t.Errorf("name: got %q, want %q", store.inserted[0].Name, "Roast Duck")
	}
}
