package api

import (
	"bytes"
	"net/http"

	"github.com/wordboard/backend/internal/domain/history"
	practicesession "github.com/wordboard/backend/internal/domain/practice_session"
)

type HistoryResponse struct {
	Summary history.Summary   `json:"summary"`
	Entries []history.Attempt `json:"entries"`
}

// getHistory returns every attempt of the session with the running summary.
// @Summary      Get history
// @Tags         History
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {object}  HistoryResponse
// @Failure      404        {object}  ErrorResponse
// @Router       /sessions/{sessionID}/history [get]
func (h *Handler) getHistory(w http.ResponseWriter, r *http.Request) {
	entries, summary, err := h.sessions.History(r.Context(), r.PathValue("sessionID"))
	if h.handleServiceError(w, r, err, "session") {
		return
	}
	if entries == nil {
		entries = []history.Attempt{}
	}
	respondJSON(w, http.StatusOK, HistoryResponse{Summary: summary, Entries: entries})
}

// clearHistory drops every attempt. Draws are kept.
// @Summary      Clear history
// @Tags         History
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {object}  service.Result
// @Failure      404        {object}  ErrorResponse
// @Router       /sessions/{sessionID}/history [delete]
func (h *Handler) clearHistory(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, practicesession.Command{Kind: practicesession.CmdClearHistory})
}

// exportHistory downloads the history as a UTF-8 CSV with BOM.
// @Summary      Export history
// @Tags         History
// @Produce      text/csv
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {file}    file
// @Failure      404        {object}  ErrorResponse
// @Router       /sessions/{sessionID}/history/export [get]
func (h *Handler) exportHistory(w http.ResponseWriter, r *http.Request) {
	// buffer so a failure can still become a JSON error
	var buf bytes.Buffer
	err := h.sessions.ExportHistory(r.Context(), r.PathValue("sessionID"), &buf)
	if h.handleServiceError(w, r, err, "session") {
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="history.csv"`)
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
