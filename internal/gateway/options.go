package gateway

import (
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/okian/tierboard/internal/adapters/repository"
	"github.com/okian/tierboard/internal/domain/ranking"
	"github.com/okian/tierboard/pkg/logger"
)

// Option configures a Gateway.
type Option func(*Gateway)

// WithCacheTTL sets how long a successful load is served from cache.
func WithCacheTTL(ttl time.Duration) Option {
	return func(g *Gateway) {
		if ttl > 0 {
			g.ttl = ttl
		}
	}
}

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(g *Gateway) {
		if now != nil {
			g.now = now
		}
	}
}

// WithRanker sets the ranker used after each fetch.
func WithRanker(r *ranking.Ranker) Option {
	return func(g *Gateway) {
		if r != nil {
			g.ranker = r
		}
	}
}

// WithWriter sets the write-back target for SavePlayer and UpdatePlayerPoints.
func WithWriter(w repository.Writer) Option {
	return func(g *Gateway) {
		if w != nil {
			g.writer = w
		}
	}
}

// WithTracer sets the tracer used for fetch spans.
func WithTracer(t trace.Tracer) Option {
	return func(g *Gateway) {
		if t != nil {
			g.tracer = t
		}
	}
}

// WithLogger sets a custom logger.
func WithLogger(l logger.Logger) Option {
	return func(g *Gateway) {
		if l != nil {
			g.logger = l
		}
	}
}
