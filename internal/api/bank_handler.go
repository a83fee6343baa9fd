package api

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/wordboard/backend/internal/domain/level"
)

// ── Request / Response types ────────────────────────────────────────────────

type UploadLevelResponse struct {
	Level level.Level `json:"level" example:"3"`
	Rows  int         `json:"rows" example:"42"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// listLevels reports which level files exist and how many rows they hold.
// @Summary      List level files
// @Tags         Bank
// @Produce      json
// @Success      200  {array}  bankfile.LevelInfo
// @Router       /levels [get]
func (h *Handler) listLevels(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.sessions.Levels())
}

// uploadLevel replaces one level file. The body is either the raw CSV or a
// multipart form with the CSV in the "file" field. The aggregate bank is
// not rebuilt until POST /bank/rebuild.
// @Summary      Upload a level file
// @Tags         Bank
// @Accept       text/csv
// @Accept       multipart/form-data
// @Produce      json
// @Param        level  path      int   true   "Level (1-10)"
// @Param        file   formData  file  false  "Level CSV"
// @Success      200    {object}  UploadLevelResponse
// @Failure      400    {object}  ErrorResponse
// @Failure      413    {object}  ErrorResponse
// @Failure      500    {object}  ErrorResponse
// @Router       /levels/{level} [put]
func (h *Handler) uploadLevel(w http.ResponseWriter, r *http.Request) {
	l, err := level.Parse(r.PathValue("level"))
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	var body io.Reader = r.Body
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		file, _, err := r.FormFile("file")
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondTooLarge(w, tooLarge)
			return
		}
		if err != nil {
			respondError(w, http.StatusBadRequest, "multipart upload needs a file field")
			return
		}
		defer file.Close()
		body = file
	}

	rows, err := h.sessions.UploadLevel(r.Context(), l, body)
	if h.handleServiceError(w, r, err, "level") {
		return
	}
	respondJSON(w, http.StatusOK, UploadLevelResponse{Level: l, Rows: rows})
}

// rebuildBank aggregates the level files into the bank files.
// @Summary      Rebuild the bank
// @Description  Concatenates levels 1..10 and writes the aggregate and alias files. Nothing is written when no level has rows.
// @Tags         Bank
// @Produce      json
// @Success      200  {object}  service.RebuildReport
// @Failure      500  {object}  ErrorResponse
// @Router       /bank/rebuild [post]
func (h *Handler) rebuildBank(w http.ResponseWriter, r *http.Request) {
	report, err := h.sessions.RebuildBank(r.Context())
	if h.handleServiceError(w, r, err, "bank") {
		return
	}
	respondJSON(w, http.StatusOK, report)
}

// reloadSessionBank rebuilds the bank and swaps it into the session.
// @Summary      Reload the session bank
// @Tags         Bank
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {object}  service.Result
// @Failure      404        {object}  ErrorResponse
// @Failure      500        {object}  ErrorResponse
// @Router       /sessions/{sessionID}/bank/reload [post]
func (h *Handler) reloadSessionBank(w http.ResponseWriter, r *http.Request) {
	res, err := h.sessions.ReloadBank(r.Context(), r.PathValue("sessionID"))
	if h.handleServiceError(w, r, err, "session") {
		return
	}
	respondJSON(w, http.StatusOK, res)
}
