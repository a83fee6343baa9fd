// internal/api/routes.go
package api

import "net/http"

type route struct {
	pattern string
	handler http.HandlerFunc
}

func (h *Handler) routes() []route {
	return []route{
		{"GET /health", h.health},

		// Bank
		{"GET /types", h.listTypes},
		{"GET /levels", h.listLevels},
		{"PUT /levels/{level}", h.uploadLevel},
		{"POST /bank/rebuild", h.rebuildBank},

		// Sessions
		{"POST /sessions", h.createSession},
		{"GET /sessions/{sessionID}", h.getSession},
		{"DELETE /sessions/{sessionID}", h.deleteSession},
		{"PUT /sessions/{sessionID}/filter", h.setFilter},
		{"PUT /sessions/{sessionID}/preferences", h.setPreferences},
		{"POST /sessions/{sessionID}/reset", h.resetSession},
		{"POST /sessions/{sessionID}/bank/reload", h.reloadSessionBank},

		// Questions
		{"GET /sessions/{sessionID}/pool", h.getPool},
		{"POST /sessions/{sessionID}/draw", h.drawQuestion},
		{"POST /sessions/{sessionID}/answers", h.submitAnswer},
		{"GET /sessions/{sessionID}/answer", h.revealAnswer},

		// History
		{"GET /sessions/{sessionID}/history", h.getHistory},
		{"DELETE /sessions/{sessionID}/history", h.clearHistory},
		{"GET /sessions/{sessionID}/history/export", h.exportHistory},
	}
}

// RegisterRoutes mounts every API route on mux.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	for _, rt := range h.routes() {
		mux.HandleFunc(rt.pattern, rt.handler)
	}
}

// health reports liveness.
// @Summary      Health check
// @Tags         System
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
