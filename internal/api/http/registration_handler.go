package http

import (
	"net/http"

	"hr-intake-backend/internal/domain"
	"hr-intake-backend/internal/service"
)

type registrationHandler struct {
	svc service.RegistrationService
}

type registerBody struct {
	Code string `json:"code"`
	domain.Profile
}

type redeemBody struct {
	Code string `json:"code"`
}

type issueTokenBody struct {
	Elevated bool `json:"elevated"`
}

func (h *registrationHandler) Register(w http.ResponseWriter, r *http.Request) {
	var body registerBody
	if err := decodeBody(r, &body); err != nil {
		writeError(w, r, err)
		return
	}
	p, err := h.svc.Register(r.Context(), actor(r), body.Code, body.Profile)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (h *registrationHandler) Redeem(w http.ResponseWriter, r *http.Request) {
	var body redeemBody
	if err := decodeBody(r, &body); err != nil {
		writeError(w, r, err)
		return
	}
	res, err := h.svc.Redeem(r.Context(), actor(r), body.Code)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *registrationHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var body issueTokenBody
	if err := decodeBody(r, &body); err != nil {
		writeError(w, r, err)
		return
	}
	token, err := h.svc.IssueToken(r.Context(), actor(r), body.Elevated)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, token)
}
