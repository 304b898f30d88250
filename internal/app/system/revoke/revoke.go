// Package revoke tracks session tokens that were logged out before their
// natural expiry. Tokens are stateless, so deleting the cookie only stops
// the client that held it; the token itself would verify anywhere until
// it expires. Logout therefore records the token's ID here and the token
// middleware consults the set on every request.
//
// The set lives in process memory and entries are dropped at token
// expiry. A restart forgets revocations, which re-opens the residual
// window until the tokens expire on their own; that trade-off is accepted
// in place of a shared revocation store.
package revoke

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Set is a concurrency-safe collection of revoked token IDs.
type Set struct {
	mu      sync.RWMutex
	entries map[string]time.Time // token ID -> token expiry
	now     func() time.Time
}

// NewSet returns an empty revocation set.
func NewSet() *Set {
	return &Set{
		entries: make(map[string]time.Time),
		now:     time.Now,
	}
}

// Add records a token ID as revoked until the token's own expiry, after
// which the entry is eligible for pruning. IDs of already-expired tokens
// are ignored.
func (s *Set) Add(id string, expiry time.Time) {
	if id == "" || !expiry.After(s.now()) {
		return
	}
	s.mu.Lock()
	s.entries[id] = expiry
	s.mu.Unlock()
}

// Revoked reports whether the token ID has been revoked and is still
// inside its validity window.
func (s *Set) Revoked(id string) bool {
	if id == "" {
		return false
	}
	s.mu.RLock()
	expiry, ok := s.entries[id]
	s.mu.RUnlock()
	return ok && expiry.After(s.now())
}

// Len returns the number of entries currently held, expired or not.
func (s *Set) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Prune removes entries whose tokens have expired and returns how many
// were dropped.
func (s *Set) Prune() int {
	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()
	dropped := 0
	for id, expiry := range s.entries {
		if !expiry.After(now) {
			delete(s.entries, id)
			dropped++
		}
	}
	return dropped
}

// StartJanitor prunes the set on the given interval until ctx is
// canceled. Run once from startup.
func (s *Set) StartJanitor(ctx context.Context, interval time.Duration, log *zap.Logger) {
	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				if n := s.Prune(); n > 0 && log != nil {
					log.Debug("pruned revoked tokens", zap.Int("count", n))
				}
			}
		}
	}()
}
