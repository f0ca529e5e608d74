package api

import (
	"errors"
	"net/http"

	"github.com/okian/tierboard/internal/i18n"
)

// StatsHandler handles stats requests.
type StatsHandler struct {
	deps Dependencies
}

// NewStatsHandler creates a new stats handler.
func NewStatsHandler(deps Dependencies) *StatsHandler {
	return &StatsHandler{deps: deps}
}

// HandleStats handles GET /stats?lang=L requests.
func (h *StatsHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_stats"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	tag := requestLanguage(r, h.deps.Translator())
	stats := h.deps.FormattedStats(tag)
	if stats == nil {
		msg := h.deps.Status().Error
		if msg == "" {
			msg = h.deps.Translator().Text(tag, i18n.KeyLoading)
		}
		writeError(w, http.StatusServiceUnavailable, "data_unavailable", WrapKind(op, ErrUnavailable, errors.New(msg)))
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
