// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New(...) initializer to build a Config with defaults.
// - Load layers defaults, an optional YAML file and TIERBOARD_* env vars.
// - Errors wrap ErrLoadConfig or ErrInvalidConfig.
package config

import (
	"context"
	"time"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the handler: text or json.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":9080".
	Addr string `koanf:"addr"`

	// SourceURL is an external configuration document. Empty selects the
	// bundled default unless SourcePath is set.
	SourceURL string `koanf:"source_url"`

	// SourcePath is a local document used when SourceURL is empty.
	SourcePath string `koanf:"source_path"`

	// Language is the BCP 47 tag for messages written to the error slot.
	Language string `koanf:"language"`

	// CollationLocale orders tied player names.
	CollationLocale string `koanf:"collation_locale"`

	// CacheTTLMS is the gateway cache window.
	CacheTTLMS int `koanf:"cache_ttl_ms"`

	// FetchTimeoutMS bounds remote fetches; 0 disables the bound.
	FetchTimeoutMS int `koanf:"fetch_timeout_ms"`

	// RefreshIntervalMS enables periodic background refreshes when > 0.
	RefreshIntervalMS int `koanf:"refresh_interval_ms"`

	// RefreshPerMinute and RefreshBurst throttle POST /refresh.
	RefreshPerMinute int `koanf:"refresh_per_minute"`
	RefreshBurst     int `koanf:"refresh_burst"`

	// MaxLeaderboardLimit caps GET /leaderboard?limit.
	MaxLeaderboardLimit int `koanf:"max_leaderboard_limit"`

	// ActiveWindowHours decides whether a player counts as active.
	ActiveWindowHours int `koanf:"active_window_hours"`
}

// New creates a Config with defaults. Context is accepted first to satisfy
// the project-wide convention and is currently unused.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:            "info",
		LogFormat:           "text",
		Addr:                ":9080",
		Language:            "en",
		CollationLocale:     "en",
		CacheTTLMS:          int((5 * time.Minute).Milliseconds()),
		FetchTimeoutMS:      0,
		RefreshIntervalMS:   0,
		RefreshPerMinute:    6,
		RefreshBurst:        2,
		MaxLeaderboardLimit: 100,
		ActiveWindowHours:   7 * 24,
	}
}

// CacheTTL returns the cache window as a duration.
func (c *Config) CacheTTL() time.Duration { return ms(c.CacheTTLMS) }

// FetchTimeout returns the remote fetch bound; zero means none.
func (c *Config) FetchTimeout() time.Duration { return ms(c.FetchTimeoutMS) }

// RefreshInterval returns the background refresh period; zero means disabled.
func (c *Config) RefreshInterval() time.Duration { return ms(c.RefreshIntervalMS) }

// ActiveWindow returns the activity window.
func (c *Config) ActiveWindow() time.Duration {
	return time.Duration(c.ActiveWindowHours) * time.Hour
}

func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }
