package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New(ctx))
//  2. file (YAML) if SWAGGERAPI_CONFIG is set
//  3. env (prefix SWAGGERAPI_)
func Load(ctx context.Context) (*Config, error) {
	// Start with defaults
	base := New(ctx)

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("SWAGGERAPI_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: SWAGGERAPI_ADDR, SWAGGERAPI_LOG_LEVEL, ...
	// Map env keys like SWAGGERAPI_MAX_PAGE_LIMIT -> max_page_limit (flat keys)
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("SWAGGERAPI_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "swaggerapi_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Basic validation
	if cfg.Addr == "" {
		return nil, fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	if cfg.DefaultPageLimit < 1 {
		return nil, fmt.Errorf("%w: default_page_limit must be positive", ErrInvalidConfig)
	}
	if cfg.MaxPageLimit < cfg.DefaultPageLimit {
		return nil, fmt.Errorf("%w: max_page_limit must be >= default_page_limit", ErrInvalidConfig)
	}
	return &cfg, nil
}
