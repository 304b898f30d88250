// Package timeouts provides centralized timeout values for handler operations.
//
// Handlers wrap r.Context() with these before calling a store so a slow
// Mongo operation cannot hold a request open indefinitely.
//
//   - Ping: health checks
//   - Short: single-document reads and point lookups (role checks, get by id)
//   - Medium: list queries and writes
package timeouts

import (
	"os"
	"sync"
	"time"
)

// Defaults used when no environment override is present.
const (
	DefaultPing   = 2 * time.Second
	DefaultShort  = 5 * time.Second
	DefaultMedium = 10 * time.Second
)

var mu sync.RWMutex

var (
	ping   = DefaultPing
	short  = DefaultShort
	medium = DefaultMedium
)

// Ping returns the timeout for connectivity checks.
func Ping() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return ping
}

// Short returns the timeout for single-document operations.
func Short() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return short
}

// Medium returns the timeout for list queries and writes.
func Medium() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return medium
}

// ConfigureFromEnv reads TIMEOUT_PING, TIMEOUT_SHORT, and TIMEOUT_MEDIUM
// (Go duration strings) and overrides the defaults for any that parse.
// Called once during startup, before handlers are registered.
func ConfigureFromEnv() int {
	mu.Lock()
	defer mu.Unlock()
	configured := 0

	for _, ent := range []struct {
		env string
		dst *time.Duration
	}{
		{"TIMEOUT_PING", &ping},
		{"TIMEOUT_SHORT", &short},
		{"TIMEOUT_MEDIUM", &medium},
	} {
		if v := os.Getenv(ent.env); v != "" {
			if d, err := time.ParseDuration(v); err == nil && d > 0 {
				*ent.dst = d
				configured++
			}
		}
	}

	return configured
}

// Reset restores the default values. Useful for tests.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	ping = DefaultPing
	short = DefaultShort
	medium = DefaultMedium
}
