// Package gateway turns a source document into a ranked leaderboard and
// caches the result for a fixed window.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/okian/tierboard/internal/adapters/repository"
	"github.com/okian/tierboard/internal/adapters/source"
	"github.com/okian/tierboard/internal/domain/model"
	"github.com/okian/tierboard/internal/domain/ranking"
	"github.com/okian/tierboard/internal/domain/seniority"
	"github.com/okian/tierboard/pkg/logger"
	"github.com/okian/tierboard/pkg/metrics"
)

// DefaultCacheTTL is the lifetime of a cached load.
const DefaultCacheTTL = 5 * time.Minute

const tracerName = "github.com/okian/tierboard/internal/gateway"

// Result is one successful load. A cached Result is shared between callers
// and must be treated as read-only.
type Result struct {
	Players      []model.Player
	Stats        model.Stats
	Presentation model.Presentation
	Source       string
	LoadedAt     time.Time
}

// Gateway owns a single cache slot for its fetcher. Concurrent loads on a
// cold cache each fetch; the last one to finish populates the slot.
type Gateway struct {
	fetcher source.Fetcher
	ranker  *ranking.Ranker
	writer  repository.Writer
	ttl     time.Duration
	now     func() time.Time
	tracer  trace.Tracer
	logger  logger.Logger

	mu     sync.Mutex
	cached *Result
	expiry time.Time
}

// New builds a Gateway over fetcher.
func New(fetcher source.Fetcher, opts ...Option) *Gateway {
	g := &Gateway{
		fetcher: fetcher,
		ranker:  ranking.New(),
		writer:  repository.Unimplemented{},
		ttl:     DefaultCacheTTL,
		now:     time.Now,
		tracer:  otel.Tracer(tracerName),
		logger:  logger.Nop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Load returns the cached result while it is fresh, otherwise fetches,
// ranks and caches a new one. Failures never touch the cache.
func (g *Gateway) Load(ctx context.Context) (*Result, error) {
	if res := g.fresh(); res != nil {
		metrics.RecordCacheHit()
		return res, nil
	}
	metrics.RecordCacheMiss()

	ctx, span := g.tracer.Start(ctx, "gateway.Load", trace.WithAttributes(
		attribute.String("source", g.fetcher.Name()),
	))
	defer span.End()

	res, err := g.fetch(ctx)
	if err != nil {
		metrics.RecordFetchError(failureReason(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "load failed")
		g.logger.Warn(ctx, "leaderboard load failed",
			logger.String("source", g.fetcher.Name()),
			logger.Error(err),
		)
		return nil, fmt.Errorf("%w: %w", ErrDataUnavailable, err)
	}
	span.SetAttributes(attribute.Int("players", len(res.Players)))

	g.mu.Lock()
	g.cached = res
	g.expiry = res.LoadedAt.Add(g.ttl)
	g.mu.Unlock()

	g.logger.Debug(ctx, "leaderboard loaded",
		logger.String("source", res.Source),
		logger.Int("players", len(res.Players)),
	)
	return res, nil
}

// ClearCache drops the cached result so the next Load fetches.
func (g *Gateway) ClearCache() {
	g.mu.Lock()
	g.cached = nil
	g.expiry = time.Time{}
	g.mu.Unlock()
}

// SourceName returns the label of the underlying fetcher.
func (g *Gateway) SourceName() string { return g.fetcher.Name() }

// SavePlayer forwards to the configured writer.
func (g *Gateway) SavePlayer(ctx context.Context, p model.Player) error {
	return g.writer.SavePlayer(ctx, p)
}

// UpdatePlayerPoints forwards to the configured writer.
func (g *Gateway) UpdatePlayerPoints(ctx context.Context, id string, points int64) error {
	return g.writer.UpdatePlayerPoints(ctx, id, points)
}

func (g *Gateway) fresh() *Result {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.cached != nil && g.now().Before(g.expiry) {
		return g.cached
	}
	return nil
}

func (g *Gateway) fetch(ctx context.Context) (*Result, error) {
	start := time.Now()
	payload, err := g.fetcher.Fetch(ctx)
	metrics.RecordFetchLatency(g.fetcher.Name(), float64(time.Since(start).Milliseconds()))
	if err != nil {
		return nil, err
	}

	rankStart := time.Now()
	players := make([]model.Player, 0, len(payload.Records))
	for _, rec := range payload.Records {
		p, err := model.NewPlayer(rec.ID, rec.Name, rec.Points, rec.LastActive, rec.Extra)
		if err != nil {
			return nil, err
		}
		players = append(players, p)
	}
	ranked := g.ranker.Rank(players)
	stats := ranking.ComputeStats(ranked)
	metrics.RecordRankLatency(float64(time.Since(rankStart).Microseconds()) / 1000)

	return &Result{
		Players:      ranked,
		Stats:        stats,
		Presentation: payload.Presentation,
		Source:       g.fetcher.Name(),
		LoadedAt:     g.now(),
	}, nil
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, source.ErrStatus):
		return "status"
	case errors.Is(err, source.ErrMalformed):
		return "malformed"
	case errors.Is(err, seniority.ErrInvalidScore):
		return "invalid_score"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "cancelled"
	default:
		return "transport"
	}
}
