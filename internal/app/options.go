package service

import (
	"time"

	"golang.org/x/text/language"

	"github.com/okian/tierboard/internal/i18n"
	"github.com/okian/tierboard/internal/state"
	"github.com/okian/tierboard/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithStore sets the observable store, e.g. one a renderer already subscribed to.
func WithStore(st *state.Store) Option {
	return func(s *Service) {
		if st != nil {
			s.store = st
		}
	}
}

// WithTranslator sets the catalog used for user-facing messages.
func WithTranslator(t *i18n.Translator) Option {
	return func(s *Service) {
		if t != nil {
			s.translator = t
		}
	}
}

// WithLanguage sets the language of the error message written to the store.
func WithLanguage(tag language.Tag) Option {
	return func(s *Service) {
		if tag != language.Und {
			s.lang = tag
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithActiveWindow sets how recent a player's activity must be to count as active.
func WithActiveWindow(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.activeWindow = d
		}
	}
}

// WithVersion sets the version reported by Status.
func WithVersion(v string) Option {
	return func(s *Service) {
		if v != "" {
			s.version = v
		}
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}
