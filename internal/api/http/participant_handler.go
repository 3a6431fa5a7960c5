package http

import (
	"net/http"

	"hr-intake-backend/internal/domain"
	"hr-intake-backend/internal/service"
)

type participantHandler struct {
	svc service.ParticipantService
}

func (h *participantHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListParticipants(r.Context(), actor(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, listOf(list))
}

func (h *participantHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	p, err := h.svc.GetParticipant(r.Context(), actor(r), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *participantHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	var update domain.ProfileUpdate
	if err := decodeBody(r, &update); err != nil {
		writeError(w, r, err)
		return
	}
	p, err := h.svc.EditProfile(r.Context(), actor(r), id, update)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *participantHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.svc.RemoveParticipant(r.Context(), actor(r), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GrantRole grants the elevated role; granting it twice is not an error.
func (h *participantHandler) GrantRole(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.svc.GrantElevatedRole(r.Context(), actor(r), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
