package api

import (
	"errors"
	"net/http"
	"strings"

	service "github.com/okian/tierboard/internal/app"
	"github.com/okian/tierboard/internal/domain/model"
)

// PlayerHandler handles single-player lookups.
type PlayerHandler struct {
	deps Dependencies
}

// NewPlayerHandler creates a new player handler.
func NewPlayerHandler(deps Dependencies) *PlayerHandler {
	return &PlayerHandler{deps: deps}
}

// HandleGetPlayer handles GET /players/{id} requests.
func (h *PlayerHandler) HandleGetPlayer(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_player"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	id := strings.TrimPrefix(r.URL.Path, "/players/")
	if id == "" || strings.Contains(id, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}
	p, err := h.deps.PlayerByID(id)
	if err != nil {
		if errors.Is(err, service.ErrPlayerNotFound) {
			writeError(w, http.StatusNotFound, "not_found", WrapKind(op, ErrNotFound, err))
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	tag := requestLanguage(r, h.deps.Translator())
	writeJSON(w, http.StatusOK, viewPlayers(h.deps, tag, []model.Player{p})[0])
}
