package http

import (
	"net/http"

	"hr-intake-backend/internal/service"
)

type feedbackHandler struct {
	svc service.FeedbackService
}

type submitFeedbackBody struct {
	Text string `json:"text"`
}

type replyBody struct {
	Response string `json:"response"`
}

func (h *feedbackHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var body submitFeedbackBody
	if err := decodeBody(r, &body); err != nil {
		writeError(w, r, err)
		return
	}
	fb, err := h.svc.Submit(r.Context(), actor(r), body.Text)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, fb)
}

func (h *feedbackHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.ListPending(r.Context(), actor(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, listOf(items))
}

func (h *feedbackHandler) Reply(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	var body replyBody
	if err := decodeBody(r, &body); err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.svc.Reply(r.Context(), actor(r), id, body.Response); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
