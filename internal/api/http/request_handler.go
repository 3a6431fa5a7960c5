package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"hr-intake-backend/internal/domain"
	"hr-intake-backend/internal/service"
)

type requestHandler struct {
	svc service.RequestService
}

type submitRequestBody struct {
	Category string `json:"category"`
	Text     string `json:"text"`
}

type assignBody struct {
	AssigneeID int64 `json:"assignee_id"`
}

type decisionBody struct {
	Response *string `json:"response,omitempty"`
}

type commentBody struct {
	Text string `json:"text"`
}

func (h *requestHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var body submitRequestBody
	if err := decodeBody(r, &body); err != nil {
		writeError(w, r, err)
		return
	}
	req, err := h.svc.Submit(r.Context(), actor(r), body.Category, body.Text)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, req)
}

func (h *requestHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	reqs, err := h.svc.ListPending(r.Context(), actor(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, listOf(reqs))
}

func (h *requestHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	reqs, err := h.svc.ListMine(r.Context(), actor(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, listOf(reqs))
}

func (h *requestHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	var update domain.StatusUpdate
	if err := decodeBody(r, &update); err != nil {
		writeError(w, r, err)
		return
	}
	req, err := h.svc.SetStatus(r.Context(), actor(r), id, update)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

func (h *requestHandler) Assign(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	var body assignBody
	if err := decodeBody(r, &body); err != nil {
		writeError(w, r, err)
		return
	}
	if body.AssigneeID <= 0 {
		writeError(w, r, fmt.Errorf("%w: assignee_id is required", domain.ErrValidation))
		return
	}
	if err := h.svc.Assign(r.Context(), actor(r), id, body.AssigneeID); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *requestHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.svc.Approve)
}

func (h *requestHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.svc.Reject)
}

type decideFunc func(ctx context.Context, actorID, requestID int64, response *string) (*domain.Request, error)

// decide serves approve and reject; the body with an optional response may be
// omitted entirely.
func (h *requestHandler) decide(w http.ResponseWriter, r *http.Request, fn decideFunc) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	var body decisionBody
	if err := decodeBody(r, &body); err != nil && !errors.Is(err, errEmptyBody) {
		writeError(w, r, err)
		return
	}
	req, err := fn(r.Context(), actor(r), id, body.Response)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

func (h *requestHandler) Comment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	var body commentBody
	if err := decodeBody(r, &body); err != nil {
		writeError(w, r, err)
		return
	}
	req, err := h.svc.Comment(r.Context(), actor(r), id, body.Text)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

// listOf keeps empty lists from encoding as null.
func listOf[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
