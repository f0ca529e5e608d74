package render

import (
	"io"
	"time"

	"golang.org/x/text/language"

	"github.com/okian/tierboard/internal/i18n"
	"github.com/okian/tierboard/pkg/logger"
)

// Option applies a configuration option to the Renderer.
type Option func(*Renderer)

// WithWriter sends output to w instead of stdout.
func WithWriter(w io.Writer) Option {
	return func(r *Renderer) {
		if w != nil {
			r.out = w
		}
	}
}

// WithTranslator sets the message catalog.
func WithTranslator(t *i18n.Translator) Option {
	return func(r *Renderer) {
		if t != nil {
			r.tr = t
		}
	}
}

// WithLanguage sets the display language.
func WithLanguage(tag language.Tag) Option {
	return func(r *Renderer) {
		if tag != language.Und {
			r.tag = tag
		}
	}
}

// WithColor toggles ANSI colors.
func WithColor(enabled bool) Option {
	return func(r *Renderer) {
		r.colored = enabled
	}
}

// WithLimit caps the rows printed by Leaderboard. Zero prints everyone.
func WithLimit(n int) Option {
	return func(r *Renderer) {
		if n >= 0 {
			r.limit = n
		}
	}
}

// WithTier restricts Leaderboard to one seniority level.
func WithTier(level string) Option {
	return func(r *Renderer) {
		r.tier = level
	}
}

// WithClock sets the clock used for the active marker.
func WithClock(now func() time.Time) Option {
	return func(r *Renderer) {
		if now != nil {
			r.now = now
		}
	}
}

// WithActiveWindow sets how recent activity must be to count as active.
func WithActiveWindow(d time.Duration) Option {
	return func(r *Renderer) {
		if d > 0 {
			r.window = d
		}
	}
}

// WithLogger sets a custom logger for listener failures.
func WithLogger(l logger.Logger) Option {
	return func(r *Renderer) {
		if l != nil {
			r.logger = l
		}
	}
}
