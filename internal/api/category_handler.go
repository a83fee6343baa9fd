package api

import (
	"net/http"

	"github.com/wordboard/backend/internal/domain/category"
)

// listTypes returns the question types the client offers, "all" first.
// Banks may use other types too.
// @Summary      List question types
// @Tags         Bank
// @Produce      json
// @Success      200  {array}  string
// @Router       /types [get]
func (h *Handler) listTypes(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, category.Suggested())
}
