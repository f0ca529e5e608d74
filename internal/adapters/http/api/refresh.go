package api

import (
	"errors"
	"net/http"

	"golang.org/x/time/rate"

	"github.com/okian/tierboard/pkg/logger"
	"github.com/okian/tierboard/pkg/metrics"
)

// RefreshHandler forces a cache-bypassing reload.
type RefreshHandler struct {
	deps    Dependencies
	limiter *rate.Limiter
	logger  logger.Logger
}

// NewRefreshHandler creates a new refresh handler.
func NewRefreshHandler(deps Dependencies, limiter *rate.Limiter, l logger.Logger) *RefreshHandler {
	return &RefreshHandler{deps: deps, limiter: limiter, logger: l}
}

// HandleRefresh handles POST /refresh requests. Each accepted request runs a
// full load on the request goroutine.
func (h *RefreshHandler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	const op = "api.refresh"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	if !h.limiter.Allow() {
		metrics.RecordRefreshRejected()
		h.logger.Warn(r.Context(), "refresh throttled")
		writeError(w, http.StatusTooManyRequests, "rate_limited", NewKind(op, ErrBackpressure))
		return
	}

	h.deps.RefreshLeaderboard(r.Context())

	status := h.deps.Status()
	if status.Error != "" {
		writeError(w, http.StatusServiceUnavailable, "data_unavailable",
			WrapKind(op, ErrUnavailable, errors.New(status.Error)))
		return
	}
	writeJSON(w, http.StatusOK, status)
}
