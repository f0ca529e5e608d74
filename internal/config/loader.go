package config

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"golang.org/x/text/language"
)

const (
	envPrefix = "TIERBOARD_"
	envFile   = "TIERBOARD_CONFIG"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New(ctx))
//  2. file (YAML) if TIERBOARD_CONFIG is set
//  3. env (prefix TIERBOARD_)
func Load(ctx context.Context) (*Config, error) {
	base := New(ctx)

	k := koanf.New(".")

	if path := os.Getenv(envFile); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrLoadConfig, path, err)
		}
	}

	// TIERBOARD_CACHE_TTL_MS -> cache_ttl_ms. Keys are flat, so underscores
	// are kept to match the koanf tags.
	envProvider := env.Provider(envPrefix, ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, strings.ToLower(envPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: env: %w", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field ranges and formats.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	if c.SourceURL != "" {
		u, err := url.Parse(c.SourceURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("%w: source_url must be an absolute http(s) url", ErrInvalidConfig)
		}
	}
	switch strings.ToLower(c.LogFormat) {
	case "", "text", "json":
	default:
		return fmt.Errorf("%w: log_format must be text or json", ErrInvalidConfig)
	}
	if _, err := language.Parse(c.Language); err != nil {
		return fmt.Errorf("%w: language: %w", ErrInvalidConfig, err)
	}
	if _, err := language.Parse(c.CollationLocale); err != nil {
		return fmt.Errorf("%w: collation_locale: %w", ErrInvalidConfig, err)
	}
	for name, v := range map[string]int{
		"cache_ttl_ms":        c.CacheTTLMS,
		"fetch_timeout_ms":    c.FetchTimeoutMS,
		"refresh_interval_ms": c.RefreshIntervalMS,
	} {
		if v < 0 {
			return fmt.Errorf("%w: %s must not be negative", ErrInvalidConfig, name)
		}
	}
	if c.CacheTTLMS == 0 {
		return fmt.Errorf("%w: cache_ttl_ms must be positive", ErrInvalidConfig)
	}
	if c.RefreshPerMinute <= 0 || c.RefreshBurst <= 0 {
		return fmt.Errorf("%w: refresh_per_minute and refresh_burst must be positive", ErrInvalidConfig)
	}
	if c.MaxLeaderboardLimit <= 0 {
		return fmt.Errorf("%w: max_leaderboard_limit must be positive", ErrInvalidConfig)
	}
	if c.ActiveWindowHours <= 0 {
		return fmt.Errorf("%w: active_window_hours must be positive", ErrInvalidConfig)
	}
	return nil
}
