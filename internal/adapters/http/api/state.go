package api

import (
	"net/http"

	service "github.com/okian/tierboard/internal/app"
	"github.com/okian/tierboard/internal/domain/model"
)

// PresentationHandler serves the display hints of the loaded document.
type PresentationHandler struct {
	deps Dependencies
}

// NewPresentationHandler creates a new presentation handler.
func NewPresentationHandler(deps Dependencies) *PresentationHandler {
	return &PresentationHandler{deps: deps}
}

// HandleGetPresentation handles GET /presentation requests.
func (h *PresentationHandler) HandleGetPresentation(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.Presentation())
}

// StateHandler exposes the observable slots without the player list.
type StateHandler struct {
	deps Dependencies
}

// NewStateHandler creates a new state handler.
func NewStateHandler(deps Dependencies) *StateHandler {
	return &StateHandler{deps: deps}
}

type stateResponse struct {
	Status service.Status `json:"status"`
	Stats  *model.Stats   `json:"stats"`
}

// HandleGetState handles GET /state requests.
func (h *StateHandler) HandleGetState(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, stateResponse{
		Status: h.deps.Status(),
		Stats:  h.deps.Store().Stats.Get(),
	})
}
