package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/bistroboss/bistrohub/internal/app/system/revoke"
)

const testSecret = "test-access-token-secret-0123456789AB"

func newManager(t *testing.T, secure bool, revoked *revoke.Set) *TokenManager {
	t.Helper()
	m, err := NewTokenManager(testSecret, DefaultTTL, secure, revoked, zap.NewNop())
	if err != nil {
		t.Fatalf("NewTokenManager failed: %v", err)
	}
	return m
}

func TestNewTokenManager_EmptySecret(t *testing.T) {
	if _, err := NewTokenManager("", DefaultTTL, false, nil, zap.NewNop()); err == nil {
		t.Error("expected error for empty secret")
	}
}

func TestIssueVerify_RoundTrip(t *testing.T) {
	m := newManager(t, false, nil)

	token, err := m.Issue(map[string]any{"email": "u@test.com", "name": "U"})
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	claims, err := m.Verify(token)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if claims.Email != "u@test.com" {
		t.Errorf("email: got %q, want %q", claims.Email, "u@test.com")
	}
	if got, _ := claims.Extra["name"].(string); got != "U" {
		t.Errorf("extra claim name: got %q, want %q", got, "U")
	}
	if claims.TokenID == "" {
		t.Error("expected a token ID to be assigned")
	}
	if claims.ExpiresAt.IsZero() {
		t.Error("expected an expiry to be set")
	}
}

func TestVerify_Expired(t *testing.T) {
	m := newManager(t, false, nil)

	issued := time.Now()
	m.now = func() time.Time { return issued }
	token, err := m.Issue(map[string]any{"email": "u@test.com"})
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	// One hour past the 10-day expiry.
	m.now = func() time.Time { return issued.Add(DefaultTTL + time.Hour) }
	if _, err := m.Verify(token); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestVerify_Tampered(t *testing.T) {
	m := newManager(t, false, nil)
	token, err := m.Issue(map[string]any{"email": "u@test.com"})
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	tampered := token[:len(token)-4] + "AAAA"
	if _, err := m.Verify(tampered); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken for tampered token, got %v", err)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	m := newManager(t, false, nil)
	other, err := NewTokenManager("another-secret-another-secret-123456", DefaultTTL, false, nil, zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}

	token, err := other.Issue(map[string]any{"email": "u@test.com"})
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if _, err := m.Verify(token); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken for foreign signature, got %v", err)
	}
}

func TestVerify_Garbage(t *testing.T) {
	m := newManager(t, false, nil)
	if _, err := m.Verify("not.a.token"); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken for malformed token, got %v", err)
	}
}

func TestRevoke_TokenStopsVerifying(t *testing.T) {
	set := revoke.NewSet()
	m := newManager(t, false, set)

	token, err := m.Issue(map[string]any{"email": "u@test.com"})
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if _, err := m.Verify(token); err != nil {
		t.Fatalf("Verify before revoke failed: %v", err)
	}

	m.Revoke(token)
	if _, err := m.Verify(token); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken after revoke, got %v", err)
	}

	// Revoking again is a no-op, not a panic or error.
	m.Revoke(token)
}

func TestSetCookie_DevFlags(t *testing.T) {
	m := newManager(t, false, nil)
	rec := httptest.NewRecorder()
	m.SetCookie(rec, "tok")

	c := findCookie(t, rec, CookieName)
	if !c.HttpOnly {
		t.Error("expected HttpOnly")
	}
	if c.Secure {
		t.Error("expected Secure to be off outside production")
	}
	if c.SameSite != http.SameSiteStrictMode {
		t.Errorf("SameSite: got %v, want Strict", c.SameSite)
	}
	if c.MaxAge != int(DefaultTTL.Seconds()) {
		t.Errorf("MaxAge: got %d, want %d", c.MaxAge, int(DefaultTTL.Seconds()))
	}
}

func TestSetCookie_ProdFlags(t *testing.T) {
	m := newManager(t, true, nil)
	rec := httptest.NewRecorder()
	m.SetCookie(rec, "tok")

	c := findCookie(t, rec, CookieName)
	if !c.Secure {
		t.Error("expected Secure in production")
	}
	if c.SameSite != http.SameSiteNoneMode {
		t.Errorf("SameSite: got %v, want None", c.SameSite)
	}
}

func TestClearCookie(t *testing.T) {
	m := newManager(t, false, nil)
	rec := httptest.NewRecorder()
	m.ClearCookie(rec)

	c := findCookie(t, rec, CookieName)
	if c.MaxAge != -1 {
		t.Errorf("MaxAge: got %d, want -1 (delete)", c.MaxAge)
	}
	if c.Value != "" {
		t.Errorf("value: got %q, want empty", c.Value)
	}
}

func TestRequireToken_NoCookie(t *testing.T) {
	m := newManager(t, false, nil)
	called := false
	h := m.RequireToken(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/protected", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusUnauthorized)
	}
	if called {
		t.Error("next handler should not run without a token")
	}
}

func TestRequireToken_BadToken(t *testing.T) {
	m := newManager(t, false, nil)
	h := m.RequireToken(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("next handler should not run with a bad token")
	}))

	req := httptest.NewRequest("GET", "/protected", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "garbage"})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestRequireToken_ValidTokenAttachesClaims(t *testing.T) {
	m := newManager(t, false, nil)
	token, err := m.Issue(map[string]any{"email": "u@test.com"})
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	var got *Claims
	h := m.RequireToken(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = CurrentClaims(r)
	}))

	req := httptest.NewRequest("GET", "/protected", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: token})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}
	if got == nil || got.Email != "u@test.com" {
		t.Errorf("claims: got %+v, want email u@test.com", got)
	}
}

func findCookie(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("cookie %q not set", name)
	return nil
}
