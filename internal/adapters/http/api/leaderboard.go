package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/okian/tierboard/internal/domain/model"
	"github.com/okian/tierboard/internal/domain/seniority"
)

// LeaderboardHandler handles leaderboard requests.
type LeaderboardHandler struct {
	deps     Dependencies
	maxLimit int
}

// NewLeaderboardHandler creates a new leaderboard handler.
func NewLeaderboardHandler(deps Dependencies, maxLimit int) *LeaderboardHandler {
	return &LeaderboardHandler{
		deps:     deps,
		maxLimit: maxLimit,
	}
}

// Total counts every match before the limit is applied.
type leaderboardResponse struct {
	Players []playerView `json:"players"`
	Count   int          `json:"count"`
	Total   int          `json:"total"`
	Loading bool         `json:"loading"`
}

// HandleGetLeaderboard handles GET /leaderboard?limit=N&tier=L&q=S requests.
// Filters apply in order: search, tier, limit.
func (h *LeaderboardHandler) HandleGetLeaderboard(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_leaderboard"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	query := r.URL.Query()

	n := h.maxLimit
	if limitStr := query.Get("limit"); limitStr != "" {
		var err error
		n, err = strconv.Atoi(limitStr)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
			return
		}
		if n > h.maxLimit {
			writeError(w, http.StatusBadRequest, "limit_exceeded", NewKind(op, ErrBadRequest))
			return
		}
	}

	tier := strings.ToLower(strings.TrimSpace(query.Get("tier")))
	if tier != "" {
		if _, err := seniority.ByLevel(tier); err != nil {
			writeError(w, http.StatusBadRequest, "unknown_tier", WrapKind(op, ErrBadRequest, err))
			return
		}
	}

	status := h.deps.Status()
	if !status.HasData && status.Error != "" {
		writeError(w, http.StatusServiceUnavailable, "data_unavailable",
			WrapKind(op, ErrUnavailable, errors.New(status.Error)))
		return
	}

	var players []model.Player
	q := strings.TrimSpace(query.Get("q"))
	switch {
	case q != "":
		players = h.deps.SearchPlayers(q)
		if tier != "" {
			players = filterTier(players, tier)
		}
	case tier != "":
		players = h.deps.PlayersBySeniority(tier)
	default:
		players = h.deps.Players()
	}
	total := len(players)
	if len(players) > n {
		players = players[:n]
	}

	tag := requestLanguage(r, h.deps.Translator())
	writeJSON(w, http.StatusOK, leaderboardResponse{
		Players: viewPlayers(h.deps, tag, players),
		Count:   len(players),
		Total:   total,
		Loading: status.Loading,
	})
}

func filterTier(players []model.Player, level string) []model.Player {
	out := make([]model.Player, 0, len(players))
	for _, p := range players {
		if p.Seniority.Level == level {
			out = append(out, p)
		}
	}
	return out
}
