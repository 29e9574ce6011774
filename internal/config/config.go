// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New(...) initializer to build a Config with defaults.
// - All future functions must accept context.Context as the first parameter.
// - External errors must be wrapped via this package's error helpers.
package config

import (
	"context"
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8000".
	Addr string `koanf:"addr"`

	// DefaultPageLimit is the limit applied to GET /users when none is given.
	DefaultPageLimit int `koanf:"default_page_limit"`

	// MaxPageLimit caps the limit query parameter on GET /users.
	MaxPageLimit int `koanf:"max_page_limit"`

	// RequestLog enables per-request access logging.
	RequestLog bool `koanf:"request_log"`
}

// New creates a Config with defaults. Context is accepted first to satisfy
// the project-wide convention; it is reserved for future use and is
// currently unused.
func New(_ context.Context) *Config {
	c := &Config{
		LogLevel:         "info",
		Addr:             ":8000",
		DefaultPageLimit: 10,
		MaxPageLimit:     100,
		RequestLog:       true,
	}
	return c
}
