package api

import (
	"net/http"

	practicesession "github.com/wordboard/backend/internal/domain/practice_session"
	"github.com/wordboard/backend/internal/domain/questionbank"
)

// ── Request / Response types ────────────────────────────────────────────────

type SubmitAnswerRequest struct {
	Answer string `json:"answer" example:"A"`
}

type PoolResponse struct {
	Stats     practicesession.Stats `json:"stats"`
	Questions []questionbank.Record `json:"questions"`
}

type RevealResponse struct {
	QuestionID string `json:"question_id" example:"q1"`
	Answer     string `json:"answer" example:"A"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// getPool lists the questions that pass the session filter.
// @Summary      List the filtered pool
// @Tags         Questions
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {object}  PoolResponse
// @Failure      404        {object}  ErrorResponse
// @Router       /sessions/{sessionID}/pool [get]
func (h *Handler) getPool(w http.ResponseWriter, r *http.Request) {
	pool, stats, err := h.sessions.Pool(r.Context(), r.PathValue("sessionID"))
	if h.handleServiceError(w, r, err, "session") {
		return
	}
	respondJSON(w, http.StatusOK, PoolResponse{Stats: stats, Questions: pool})
}

// drawQuestion draws the next question. An exhausted pool is not an
// error: the outcome carries exhausted=true and a warning.
// @Summary      Draw a question
// @Tags         Questions
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {object}  service.Result
// @Failure      404        {object}  ErrorResponse
// @Router       /sessions/{sessionID}/draw [post]
func (h *Handler) drawQuestion(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, practicesession.Command{Kind: practicesession.CmdDraw})
}

// submitAnswer grades and logs an answer to the current question.
// Multiple-choice answers are graded by exact match; free text is logged
// ungraded.
// @Summary      Submit an answer
// @Tags         Questions
// @Accept       json
// @Produce      json
// @Param        sessionID  path      string               true  "Session ID"
// @Param        body       body      SubmitAnswerRequest  true  "Answer"
// @Success      200        {object}  service.Result
// @Failure      400        {object}  ErrorResponse
// @Failure      404        {object}  ErrorResponse
// @Failure      422        {object}  ErrorResponse  "empty answer or nothing drawn"
// @Router       /sessions/{sessionID}/answers [post]
func (h *Handler) submitAnswer(w http.ResponseWriter, r *http.Request) {
	var req SubmitAnswerRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	h.apply(w, r, practicesession.Command{Kind: practicesession.CmdSubmit, Answer: req.Answer})
}

// revealAnswer returns the reference answer of the current question
// without logging anything.
// @Summary      Reveal the answer
// @Tags         Questions
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {object}  RevealResponse
// @Failure      404        {object}  ErrorResponse
// @Failure      422        {object}  ErrorResponse  "nothing drawn"
// @Router       /sessions/{sessionID}/answer [get]
func (h *Handler) revealAnswer(w http.ResponseWriter, r *http.Request) {
	res, err := h.sessions.Apply(r.Context(), r.PathValue("sessionID"), practicesession.Command{Kind: practicesession.CmdReveal})
	if h.handleServiceError(w, r, err, "session") {
		return
	}

	resp := RevealResponse{Answer: *res.Outcome.Answer}
	if res.Session.Current != nil {
		resp.QuestionID = res.Session.Current.ID
	}
	respondJSON(w, http.StatusOK, resp)
}
