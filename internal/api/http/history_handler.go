package http

import (
	"fmt"
	"net/http"
	"strconv"

	"hr-intake-backend/internal/domain"
	"hr-intake-backend/internal/service"
)

type historyHandler struct {
	svc service.HistoryService
}

// List serves one page of the merged history. scope defaults to the caller's
// own items; offset defaults to 0.
func (h *historyHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	offset := 0
	if raw := q.Get("offset"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, r, fmt.Errorf("%w: invalid offset %q", domain.ErrValidation, raw))
			return
		}
		offset = n
	}
	page, err := h.svc.List(r.Context(), actor(r), domain.HistoryScope(q.Get("scope")), offset)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}
