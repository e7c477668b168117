// Package timeouts provides centralized timeout values for handler
// operations. Every external call (Mongo, identity provider, payment
// processor) runs under one of these so nothing can hang a request.
//
// Guidelines for choosing a timeout:
//   - Ping: health checks and connectivity verification
//   - Short: single-document reads and conditional writes
//   - Medium: list queries and multi-step reads
//   - External: calls that leave the process (payment processor)
package timeouts

import (
	"sync"
	"time"
)

// Default timeout values (used if Configure is not called).
const (
	DefaultPing     = 2 * time.Second
	DefaultShort    = 5 * time.Second
	DefaultMedium   = 10 * time.Second
	DefaultExternal = 15 * time.Second
)

// mu protects all timeout values from concurrent access.
var mu sync.RWMutex

var (
	ping     = DefaultPing
	short    = DefaultShort
	medium   = DefaultMedium
	external = DefaultExternal
)

// Ping returns the timeout for health checks and connectivity verification.
func Ping() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return ping
}

// Short returns the timeout for single-document reads and writes.
// Examples: get by ID, lookup by email, the conditional claim update.
func Short() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return short
}

// Medium returns the timeout for list queries and multi-step reads.
func Medium() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return medium
}

// External returns the timeout for calls that leave the process,
// such as creating a checkout session with the payment processor.
func External() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return external
}

// Config holds timeout configuration values.
// Zero values are ignored (defaults are kept).
type Config struct {
	Ping     time.Duration
	Short    time.Duration
	Medium   time.Duration
	External time.Duration
}

// Configure sets custom timeout values during startup, before handlers
// are registered. Zero values in the config keep the current values.
func Configure(cfg Config) {
	mu.Lock()
	defer mu.Unlock()
	if cfg.Ping > 0 {
		ping = cfg.Ping
	}
	if cfg.Short > 0 {
		short = cfg.Short
	}
	if cfg.Medium > 0 {
		medium = cfg.Medium
	}
	if cfg.External > 0 {
		external = cfg.External
	}
}

// Reset restores all timeouts to their default values. Useful for testing.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	ping = DefaultPing
	short = DefaultShort
	medium = DefaultMedium
	external = DefaultExternal
}
