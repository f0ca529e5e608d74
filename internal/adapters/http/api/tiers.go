package api

import "net/http"

// TiersHandler lists the seniority tiers.
type TiersHandler struct {
	deps Dependencies
}

// NewTiersHandler creates a new tiers handler.
func NewTiersHandler(deps Dependencies) *TiersHandler {
	return &TiersHandler{deps: deps}
}

// HandleGetTiers handles GET /tiers?lang=L requests.
func (h *TiersHandler) HandleGetTiers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.SeniorityLevels(requestLanguage(r, h.deps.Translator())))
}
