// Package auth issues and verifies the signed session token that rides
// in the accessToken cookie, and provides the middleware that turns a
// valid token into identity claims on the request context.
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bistroboss/bistrohub/internal/app/system/respond"
	"github.com/bistroboss/bistrohub/internal/app/system/revoke"
)

// CookieName is the cookie that carries the session token.
const CookieName = "accessToken"

// DefaultTTL is the token lifetime when none is configured.
const DefaultTTL = 240 * time.Hour // 10 days

// ErrInvalidToken covers every verification failure: bad signature,
// malformed token, expired, revoked. Callers must not learn which.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the decoded identity carried by a verified token. It is a
// view derived from the token, never loaded from the users collection.
type Claims struct {
	Email     string
	TokenID   string // jti
	ExpiresAt time.Time
	Extra     map[string]any // additional claims submitted at issuance
}

// TokenManager signs and verifies session tokens with a server-held
// HS256 secret.
type TokenManager struct {
	secret  []byte
	ttl     time.Duration
	secure  bool // prod cookies: Secure + SameSite=None
	revoked *revoke.Set
	now     func() time.Time
	log     *zap.Logger
}

// NewTokenManager builds a manager. The secret must be non-empty; 32+
// chars are expected in production. secure controls the cookie flags
// (see SetCookie). revoked may be nil to disable the revocation check.
func NewTokenManager(secret string, ttl time.Duration, secure bool, revoked *revoke.Set, logger *zap.Logger) (*TokenManager, error) {
	if secret == "" {
		return nil, fmt.Errorf("access token secret is empty; provide ≥32 random chars")
	}
	if len(secret) < 32 && logger != nil {
		logger.Warn("access token secret is short; 32+ chars recommended",
			zap.Int("length", len(secret)))
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &TokenManager{
		secret:  []byte(secret),
		ttl:     ttl,
		secure:  secure,
		revoked: revoked,
		now:     time.Now,
		log:     logger,
	}, nil
}

// TTL returns the configured token lifetime.
func (m *TokenManager) TTL() time.Duration { return m.ttl }

// Issue signs the submitted identity claims into a session token.
// Whatever the caller submits is embedded as-is; iat, exp, and jti are
// set here and shadow any submitted values of the same name.
func (m *TokenManager) Issue(submitted map[string]any) (string, error) {
	now := m.now()
	claims := jwt.MapClaims{}
	for k, v := range submitted {
		claims[k] = v
	}
	claims["iat"] = now.Unix()
	claims["exp"] = now.Add(m.ttl).Unix()
	claims["jti"] = uuid.NewString()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Verify recomputes the signature and checks expiry and revocation.
// Every failure collapses to ErrInvalidToken.
func (m *TokenManager) Verify(tokenStr string) (*Claims, error) {
	parsed, err := jwt.Parse(tokenStr,
		func(t *jwt.Token) (any, error) { return m.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	mc, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	c := &Claims{Extra: make(map[string]any)}
	for k, v := range mc {
		switch k {
		case "email":
			c.Email, _ = v.(string)
		case "jti":
			c.TokenID, _ = v.(string)
		case "iat", "exp":
			// reconstructed below
		default:
			c.Extra[k] = v
		}
	}
	if exp, err := mc.GetExpirationTime(); err == nil && exp != nil {
		c.ExpiresAt = exp.Time
	}

	if m.revoked != nil && m.revoked.Revoked(c.TokenID) {
		return nil, ErrInvalidToken
	}
	return c, nil
}

// Revoke marks the token's ID as invalid for the remainder of its
// lifetime. Tokens that no longer verify are ignored; there is nothing
// left to revoke.
func (m *TokenManager) Revoke(tokenStr string) {
	if m.revoked == nil || tokenStr == "" {
		return
	}
	// Bypass the revocation check itself so double logout is harmless.
	parsed, err := jwt.Parse(tokenStr,
		func(t *jwt.Token) (any, error) { return m.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil || !parsed.Valid {
		return
	}
	mc, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return
	}
	jti, _ := mc["jti"].(string)
	exp, err := mc.GetExpirationTime()
	if err != nil || exp == nil {
		return
	}
	m.revoked.Add(jti, exp.Time)
}

/* Cookie transport */

// SetCookie writes the token as the accessToken cookie. In production
// (secure=true) the cookie is Secure with SameSite=None so cross-site
// clients over HTTPS can send it; otherwise SameSite=Strict.
func (m *TokenManager) SetCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, m.cookie(token, int(m.ttl.Seconds())))
}

// ClearCookie tells the client to drop the accessToken cookie. The
// flags must match SetCookie or browsers keep the original.
func (m *TokenManager) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, m.cookie("", -1))
}

func (m *TokenManager) cookie(value string, maxAge int) *http.Cookie {
	c := &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   m.secure,
	}
	if m.secure {
		c.SameSite = http.SameSiteNoneMode
	} else {
		c.SameSite = http.SameSiteStrictMode
	}
	return c
}

/* Request context */

type ctxKey string

const claimsKey ctxKey = "identityClaims"

// CurrentClaims returns the verified identity attached by RequireToken.
func CurrentClaims(r *http.Request) (*Claims, bool) {
	c, ok := r.Context().Value(claimsKey).(*Claims)
	return c, ok
}

// WithClaims attaches claims to the request. Exported for handler tests
// that bypass the middleware.
func WithClaims(r *http.Request, c *Claims) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), claimsKey, c))
}

// RequireToken verifies the accessToken cookie and attaches the decoded
// claims to the request context. No cookie, or any verification
// failure, answers 401 without reaching the next handler.
func (m *TokenManager) RequireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(CookieName)
		if err != nil || cookie.Value == "" {
			respond.Unauthorized(w)
			return
		}
		claims, err := m.Verify(cookie.Value)
		if err != nil {
			respond.Unauthorized(w)
			return
		}
		next.ServeHTTP(w, WithClaims(r, claims))
	})
}
