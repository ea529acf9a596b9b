// Package timeouts provides centralized timeout values for dashboard I/O.
//
// Guidelines:
//   - Ping: health checks against MongoDB
//   - Fetch: a single request to the ticketing server
//   - Page: one full dashboard load (all fetches plus rendering)
//   - Store: fetch-log reads and writes
//
// Values can be overridden once at startup with Configure.
package timeouts

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Default timeout values (used if Configure is not called).
const (
	DefaultPing  = 2 * time.Second
	DefaultFetch = 5 * time.Second
	DefaultPage  = 10 * time.Second
	DefaultStore = 3 * time.Second
)

var mu sync.RWMutex

var (
	ping  = DefaultPing
	fetch = DefaultFetch
	page  = DefaultPage
	store = DefaultStore
)

// Ping returns the timeout for health checks.
func Ping() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return ping
}

// Fetch returns the timeout for one ticketing-server request.
func Fetch() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return fetch
}

// Page returns the timeout for a whole dashboard load.
func Page() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return page
}

// Store returns the timeout for fetch-log operations.
func Store() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return store
}

// Config holds timeout configuration values.
// Zero values are ignored (current values are kept).
type Config struct {
	Ping  time.Duration
	Fetch time.Duration
	Page  time.Duration
	Store time.Duration
}

// Configure sets custom timeout values. Call during startup before handlers
// are built.
func Configure(cfg Config) {
	mu.Lock()
	defer mu.Unlock()
	if cfg.Ping > 0 {
		ping = cfg.Ping
	}
	if cfg.Fetch > 0 {
		fetch = cfg.Fetch
	}
	if cfg.Page > 0 {
		page = cfg.Page
	}
	if cfg.Store > 0 {
		store = cfg.Store
	}
}

// Reset restores all timeouts to their default values.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	ping = DefaultPing
	fetch = DefaultFetch
	page = DefaultPage
	store = DefaultStore
}

// Current returns the current timeout configuration.
func Current() Config {
	mu.RLock()
	defer mu.RUnlock()
	return Config{Ping: ping, Fetch: fetch, Page: page, Store: store}
}

// WithTimeout creates a context with timeout and returns a cancel function that
// logs a warning if the deadline was hit.
//
//	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Page(), h.Log, "dashboard load")
//	defer cancel()
func WithTimeout(parent context.Context, timeout time.Duration, log *zap.Logger, operation string) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(parent, timeout)
	return ctx, func() {
		if ctx.Err() == context.DeadlineExceeded && log != nil {
			log.Warn("operation timed out",
				zap.String("operation", operation),
				zap.Duration("timeout", timeout),
			)
		}
		cancel()
	}
}
