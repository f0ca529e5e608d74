// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/time/rate"

	service "github.com/okian/tierboard/internal/app"
	"github.com/okian/tierboard/internal/domain/model"
	"github.com/okian/tierboard/internal/i18n"
	"github.com/okian/tierboard/internal/state"
	"github.com/okian/tierboard/pkg/logger"
)

// Dependencies required by HTTP handlers. *service.Service satisfies it.
type Dependencies interface {
	Players() []model.Player
	PlayersBySeniority(level string) []model.Player
	SearchPlayers(term string) []model.Player
	PlayerByID(id string) (model.Player, error)
	SeniorityLevels(tag language.Tag) []service.Level
	FormattedStats(tag language.Tag) *service.FormattedStats
	Presentation() model.Presentation
	Status() service.Status
	Store() *state.Store
	Translator() *i18n.Translator
	ActiveWindow() time.Duration
	Now() time.Time

	RefreshLeaderboard(ctx context.Context)
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler       *HealthHandler
	statsHandler        *StatsHandler
	leaderboardHandler  *LeaderboardHandler
	playerHandler       *PlayerHandler
	tiersHandler        *TiersHandler
	presentationHandler *PresentationHandler
	stateHandler        *StateHandler
	refreshHandler      *RefreshHandler
}

// Option configures a Server.
type Option func(*settings)

type settings struct {
	maxLimit  int
	perMinute int
	burst     int
	logger    logger.Logger
}

// WithMaxLimit caps GET /leaderboard?limit.
func WithMaxLimit(n int) Option {
	return func(s *settings) {
		if n > 0 {
			s.maxLimit = n
		}
	}
}

// WithRefreshRate throttles POST /refresh to perMinute with the given burst.
func WithRefreshRate(perMinute, burst int) Option {
	return func(s *settings) {
		if perMinute > 0 {
			s.perMinute = perMinute
		}
		if burst > 0 {
			s.burst = burst
		}
	}
}

// WithLogger sets the logger used by handlers.
func WithLogger(l logger.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, opts ...Option) *Server {
	cfg := settings{maxLimit: 100, perMinute: 6, burst: 2, logger: logger.Nop()}
	for _, opt := range opts {
		opt(&cfg)
	}
	limiter := rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.perMinute)), cfg.burst)

	return &Server{
		healthHandler:       NewHealthHandler(),
		statsHandler:        NewStatsHandler(deps),
		leaderboardHandler:  NewLeaderboardHandler(deps, cfg.maxLimit),
		playerHandler:       NewPlayerHandler(deps),
		tiersHandler:        NewTiersHandler(deps),
		presentationHandler: NewPresentationHandler(deps),
		stateHandler:        NewStateHandler(deps),
		refreshHandler:      NewRefreshHandler(deps, limiter, cfg.logger),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/leaderboard", MetricsMiddleware(s.leaderboardHandler.HandleGetLeaderboard, "leaderboard"))
	mux.HandleFunc("/players/", MetricsMiddleware(s.playerHandler.HandleGetPlayer, "players"))
	mux.HandleFunc("/tiers", MetricsMiddleware(s.tiersHandler.HandleGetTiers, "tiers"))
	mux.HandleFunc("/presentation", MetricsMiddleware(s.presentationHandler.HandleGetPresentation, "presentation"))
	mux.HandleFunc("/state", MetricsMiddleware(s.stateHandler.HandleGetState, "state"))
	mux.HandleFunc("/refresh", MetricsMiddleware(s.refreshHandler.HandleRefresh, "refresh"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// requestLanguage resolves ?lang first, then Accept-Language.
func requestLanguage(r *http.Request, tr *i18n.Translator) language.Tag {
	if lang := r.URL.Query().Get("lang"); lang != "" {
		return tr.Match(lang)
	}
	tags, _, err := language.ParseAcceptLanguage(r.Header.Get("Accept-Language"))
	if err != nil || len(tags) == 0 {
		return i18n.Fallback
	}
	return tr.Match(tags[0].String())
}

// playerView adds display fields to a player.
type playerView struct {
	model.Player
	FormattedPosition string `json:"formattedPosition"`
	SeniorityName     string `json:"seniorityName"`
	Active            bool   `json:"active"`
}

func viewPlayers(deps Dependencies, tag language.Tag, players []model.Player) []playerView {
	now, window, tr := deps.Now(), deps.ActiveWindow(), deps.Translator()
	out := make([]playerView, len(players))
	for i, p := range players {
		out[i] = playerView{
			Player:            p,
			FormattedPosition: p.FormattedPosition(),
			SeniorityName:     tr.SeniorityName(tag, p.Seniority.Level),
			Active:            p.IsActive(now, window),
		}
	}
	return out
}
