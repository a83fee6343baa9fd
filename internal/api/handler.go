// internal/api/handler.go
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/wordboard/backend/internal/bankfile"
	practicesession "github.com/wordboard/backend/internal/domain/practice_session"
	"github.com/wordboard/backend/internal/service"
	"github.com/wordboard/backend/internal/store"
)

// maxBodyBytes caps JSON bodies and level uploads.
const maxBodyBytes = 8 << 20

// Handler holds all dependencies needed by HTTP handlers.
type Handler struct {
	sessions *service.SessionService
	logger   *slog.Logger
}

// NewHandler creates a Handler with the given dependencies.
func NewHandler(sessions *service.SessionService, logger *slog.Logger) *Handler {
	return &Handler{
		sessions: sessions,
		logger:   logger,
	}
}

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error    string   `json:"error" example:"session not found"`
	Warnings []string `json:"warnings,omitempty"`
}

// Validator is implemented by request bodies that check themselves.
type Validator interface {
	Validate() error
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, ErrorResponse{Error: msg})
}

// respondWarning reports a user mistake that leaves state untouched.
func respondWarning(w http.ResponseWriter, msg string) {
	respondJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: msg, Warnings: []string{msg}})
}

// decodeJSON reads the request body into v. It writes a 400 and returns
// false when the body is not valid JSON.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondTooLarge(w, tooLarge)
			return false
		}
		respondError(w, http.StatusBadRequest, "invalid json")
		return false
	}
	return true
}

func respondTooLarge(w http.ResponseWriter, err *http.MaxBytesError) {
	msg := fmt.Sprintf("request body is larger than %d bytes", err.Limit)
	respondJSON(w, http.StatusRequestEntityTooLarge, ErrorResponse{Error: msg, Warnings: []string{msg}})
}

func decodeAndValidate(w http.ResponseWriter, r *http.Request, v Validator) bool {
	if !decodeJSON(w, r, v) {
		return false
	}
	if err := v.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

// handleServiceError checks for known errors and writes the matching HTTP
// response. Returns true if an error was handled (caller should return).
func (h *Handler) handleServiceError(w http.ResponseWriter, r *http.Request, err error, entity string) bool {
	if err == nil {
		return false
	}

	var (
		levelErr *bankfile.LevelError
		tooLarge *http.MaxBytesError
	)
	switch {
	case errors.Is(err, store.ErrNotFound):
		respondError(w, http.StatusNotFound, entity+" not found")
	case errors.Is(err, practicesession.ErrEmptyAnswer):
		respondWarning(w, "please enter an answer before submitting")
	case errors.Is(err, practicesession.ErrNoCurrentQuestion):
		respondWarning(w, "draw a question first")
	case errors.Is(err, practicesession.ErrInvalidCommand),
		errors.Is(err, practicesession.ErrUnknownCommand),
		errors.Is(err, bankfile.ErrInvalidLevel):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &tooLarge):
		respondTooLarge(w, tooLarge)
	case errors.As(err, &levelErr):
		respondError(w, http.StatusBadRequest, "invalid level file: "+levelErr.Err.Error())
	default:
		h.logger.ErrorContext(r.Context(), "request failed", "error", err, "entity", entity)
		respondError(w, http.StatusInternalServerError, "internal error")
	}
	return true
}
