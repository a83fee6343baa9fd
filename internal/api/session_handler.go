package api

import (
	"errors"
	"net/http"

	"github.com/wordboard/backend/internal/domain/category"
	practicesession "github.com/wordboard/backend/internal/domain/practice_session"
	"github.com/wordboard/backend/internal/domain/questionbank"
	"github.com/wordboard/backend/internal/service"
)

// ── Request / Response types ────────────────────────────────────────────────

type SessionResponse struct {
	Session  service.SessionView `json:"session"`
	Warnings []string            `json:"warnings,omitempty"`
}

// SetFilterRequest selects the pool. Difficulty takes a multi-select list,
// DifficultyRange a slider range; when both are set the range wins.
type SetFilterRequest struct {
	Type            string   `json:"type" example:"red"`
	Difficulty      []string `json:"difficulty,omitempty" example:"1,2"`
	DifficultyRange []int    `json:"difficulty_range,omitempty" example:"1,3"`
	TagQuery        string   `json:"tag_query" example:"hsk1"`
}

func (r *SetFilterRequest) Validate() error {
	if r.DifficultyRange != nil && len(r.DifficultyRange) != 2 {
		return errors.New("difficulty_range needs exactly two bounds")
	}
	return nil
}

func (r *SetFilterRequest) filter() practicesession.Filter {
	difficulty := r.Difficulty
	if r.DifficultyRange != nil {
		difficulty = questionbank.DifficultyFromRange(r.DifficultyRange[0], r.DifficultyRange[1])
	}
	return practicesession.Filter{
		Type:       category.Type(r.Type),
		Difficulty: difficulty,
		TagQuery:   r.TagQuery,
	}
}

type SetPreferencesRequest struct {
	ShuffleOptions *bool `json:"shuffle_options" example:"true"`
	NoRepeat       *bool `json:"no_repeat" example:"true"`
}

func (r *SetPreferencesRequest) Validate() error {
	if r.ShuffleOptions == nil || r.NoRepeat == nil {
		return errors.New("shuffle_options and no_repeat are required")
	}
	return nil
}

// ── Handlers ────────────────────────────────────────────────────────────────

// createSession starts a session over the current question bank.
// @Summary      Create a session
// @Description  Starts a session with the aggregate bank loaded, default filters and preferences.
// @Tags         Sessions
// @Produce      json
// @Success      201  {object}  SessionResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /sessions [post]
func (h *Handler) createSession(w http.ResponseWriter, r *http.Request) {
	view, warnings, err := h.sessions.Create(r.Context())
	if h.handleServiceError(w, r, err, "session") {
		return
	}
	respondJSON(w, http.StatusCreated, SessionResponse{Session: view, Warnings: warnings})
}

// getSession returns the session state.
// @Summary      Get a session
// @Description  Returns filters, preferences, pool stats, the current question and the history summary.
// @Tags         Sessions
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {object}  SessionResponse
// @Failure      404        {object}  ErrorResponse
// @Failure      500        {object}  ErrorResponse
// @Router       /sessions/{sessionID} [get]
func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	view, warnings, err := h.sessions.Get(r.Context(), r.PathValue("sessionID"))
	if h.handleServiceError(w, r, err, "session") {
		return
	}
	respondJSON(w, http.StatusOK, SessionResponse{Session: view, Warnings: warnings})
}

// deleteSession ends a session.
// @Summary      Delete a session
// @Tags         Sessions
// @Param        sessionID  path  string  true  "Session ID"
// @Success      204
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /sessions/{sessionID} [delete]
func (h *Handler) deleteSession(w http.ResponseWriter, r *http.Request) {
	err := h.sessions.Delete(r.Context(), r.PathValue("sessionID"))
	if h.handleServiceError(w, r, err, "session") {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// setFilter replaces the session filter.
// @Summary      Set the filter
// @Description  Type "all" or empty selects every type. Difficulty is normalized; an empty selection means all levels.
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Param        sessionID  path      string            true  "Session ID"
// @Param        body       body      SetFilterRequest  true  "Filter"
// @Success      200        {object}  service.Result
// @Failure      400        {object}  ErrorResponse
// @Failure      404        {object}  ErrorResponse
// @Router       /sessions/{sessionID}/filter [put]
func (h *Handler) setFilter(w http.ResponseWriter, r *http.Request) {
	var req SetFilterRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	f := req.filter()
	h.apply(w, r, practicesession.Command{Kind: practicesession.CmdSetFilter, Filter: &f})
}

// setPreferences replaces the shuffle and no-repeat toggles.
// @Summary      Set preferences
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Param        sessionID  path      string                 true  "Session ID"
// @Param        body       body      SetPreferencesRequest  true  "Preferences"
// @Success      200        {object}  service.Result
// @Failure      400        {object}  ErrorResponse
// @Failure      404        {object}  ErrorResponse
// @Router       /sessions/{sessionID}/preferences [put]
func (h *Handler) setPreferences(w http.ResponseWriter, r *http.Request) {
	var req SetPreferencesRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	prefs := practicesession.Preferences{
		ShuffleOptions: *req.ShuffleOptions,
		NoRepeat:       *req.NoRepeat,
	}
	h.apply(w, r, practicesession.Command{Kind: practicesession.CmdSetPreferences, Prefs: &prefs})
}

// resetSession forgets draws and option orders. History is kept.
// @Summary      Reset draws
// @Tags         Sessions
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {object}  service.Result
// @Failure      404        {object}  ErrorResponse
// @Router       /sessions/{sessionID}/reset [post]
func (h *Handler) resetSession(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, practicesession.Command{Kind: practicesession.CmdReset})
}

func (h *Handler) apply(w http.ResponseWriter, r *http.Request, cmd practicesession.Command) {
	res, err := h.sessions.Apply(r.Context(), r.PathValue("sessionID"), cmd)
	if h.handleServiceError(w, r, err, "session") {
		return
	}
	respondJSON(w, http.StatusOK, res)
}
