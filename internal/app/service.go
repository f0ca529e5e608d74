// Package service coordinates loads into the observable store and answers
// read queries over the committed leaderboard.
package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/language"

	"github.com/okian/tierboard/internal/domain/model"
	"github.com/okian/tierboard/internal/gateway"
	"github.com/okian/tierboard/internal/i18n"
	"github.com/okian/tierboard/internal/state"
	"github.com/okian/tierboard/pkg/logger"
	"github.com/okian/tierboard/pkg/metrics"
)

// DefaultTopPlayers is used when TopPlayers is asked for a non-positive count.
const DefaultTopPlayers = 10

// Version is reported by Status unless overridden.
const Version = "1.0.0"

// Gateway is the data source the service loads from. *gateway.Gateway satisfies it.
type Gateway interface {
	Load(ctx context.Context) (*gateway.Result, error)
	ClearCache()
	SourceName() string
	SavePlayer(ctx context.Context, p model.Player) error
	UpdatePlayerPoints(ctx context.Context, id string, points int64) error
}

// Service drives the load sequence and exposes read-only views of the store.
type Service struct {
	gateway      Gateway
	store        *state.Store
	translator   *i18n.Translator
	lang         language.Tag
	activeWindow time.Duration
	version      string
	now          func() time.Time
	logger       logger.Logger

	mu           sync.RWMutex
	presentation model.Presentation
	initialized  bool
	started      bool
}

// New constructs a Service over gw.
func New(gw Gateway, opts ...Option) *Service {
	s := &Service{
		gateway:      gw,
		store:        state.New(),
		lang:         i18n.Fallback,
		activeWindow: model.DefaultActiveWindow,
		version:      Version,
		now:          time.Now,
		logger:       logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.translator == nil {
		s.translator = i18n.MustNew()
	}
	return s
}

// Start performs the initial load. Calling it twice is a no-op.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return nil
	}
	s.started = true
	s.mu.Unlock()

	s.logger.Info(ctx, "starting leaderboard service", logger.String("source", s.gateway.SourceName()))
	s.LoadLeaderboard(ctx)
	return nil
}

// Stop marks the service as stopped.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.started {
		return
	}
	s.started = false
	s.logger.Info(context.Background(), "leaderboard service stopped")
}

// Store returns the observable store renderers subscribe to.
func (s *Service) Store() *state.Store { return s.store }

// Translator returns the message catalog.
func (s *Service) Translator() *i18n.Translator { return s.translator }

// Language returns the language used for store messages.
func (s *Service) Language() language.Tag { return s.lang }

// ActiveWindow returns the activity window used by IsActive checks.
func (s *Service) ActiveWindow() time.Duration { return s.activeWindow }

// Now returns the service clock.
func (s *Service) Now() time.Time { return s.now() }

// LoadLeaderboard runs one load. Observers see Loading=true and a cleared
// Error first; on success Players then Stats; on failure only Error, with
// Players and Stats left as they were; Loading=false always comes last.
// Gateway failures are logged and surfaced through the Error slot only.
func (s *Service) LoadLeaderboard(ctx context.Context) {
	s.store.Loading.Set(true)
	defer s.store.Loading.Set(false)
	s.store.Error.Set("")

	res, err := s.gateway.Load(ctx)
	if err != nil {
		s.logger.Error(ctx, "failed to load leaderboard",
			logger.String("source", s.gateway.SourceName()),
			logger.Error(err),
		)
		metrics.RecordLoad(false)
		s.markInitialized(nil)
		s.store.Error.Set(s.translator.Text(s.lang, i18n.KeyError))
		return
	}

	s.markInitialized(&res.Presentation)
	s.store.Players.Set(res.Players)
	s.store.Stats.Set(&res.Stats)

	metrics.RecordLoad(true)
	metrics.UpdatePlayers(res.Stats.TotalPlayers, res.Stats.Distribution)
	s.logger.Info(ctx, "leaderboard loaded",
		logger.Int("players", res.Stats.TotalPlayers),
		logger.Int64("totalPoints", res.Stats.TotalPoints),
		logger.String("loadedAt", res.LoadedAt.Format(time.RFC3339)),
	)
}

// RefreshLeaderboard drops the gateway cache and loads again.
func (s *Service) RefreshLeaderboard(ctx context.Context) {
	s.gateway.ClearCache()
	s.LoadLeaderboard(ctx)
}

func (s *Service) markInitialized(p *model.Presentation) {
	s.mu.Lock()
	s.initialized = true
	if p != nil {
		s.presentation = *p
	}
	s.mu.Unlock()
}

// Players returns the committed leaderboard.
func (s *Service) Players() []model.Player {
	return s.store.Players.Get()
}

// PlayersBySeniority returns the players whose tier has the given level tag.
func (s *Service) PlayersBySeniority(level string) []model.Player {
	out := make([]model.Player, 0)
	for _, p := range s.store.Players.Get() {
		if p.Seniority.Level == level {
			out = append(out, p)
		}
	}
	return out
}

// TopPlayers returns the first n players; n <= 0 means DefaultTopPlayers.
func (s *Service) TopPlayers(n int) []model.Player {
	if n <= 0 {
		n = DefaultTopPlayers
	}
	players := s.store.Players.Get()
	if n > len(players) {
		n = len(players)
	}
	out := make([]model.Player, n)
	copy(out, players[:n])
	return out
}

// SearchPlayers returns players whose name contains term, ignoring case.
// A blank term returns everyone.
func (s *Service) SearchPlayers(term string) []model.Player {
	players := s.store.Players.Get()
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		out := make([]model.Player, len(players))
		copy(out, players)
		return out
	}
	out := make([]model.Player, 0)
	for _, p := range players {
		if strings.Contains(strings.ToLower(p.Name), term) {
			out = append(out, p)
		}
	}
	return out
}

// PlayerByID looks a player up on the committed leaderboard.
func (s *Service) PlayerByID(id string) (model.Player, error) {
	for _, p := range s.store.Players.Get() {
		if p.ID == id {
			return p, nil
		}
	}
	return model.Player{}, ErrPlayerNotFound
}

// HasData reports whether any player has been committed.
func (s *Service) HasData() bool {
	return len(s.store.Players.Get()) > 0
}

// Presentation returns the hints of the last successful load.
func (s *Service) Presentation() model.Presentation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.presentation
}

// SavePlayer forwards to the gateway's write-back placeholder.
func (s *Service) SavePlayer(ctx context.Context, p model.Player) error {
	return s.gateway.SavePlayer(ctx, p)
}

// UpdatePlayerPoints forwards to the gateway's write-back placeholder.
func (s *Service) UpdatePlayerPoints(ctx context.Context, id string, points int64) error {
	return s.gateway.UpdatePlayerPoints(ctx, id, points)
}
