package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"hr-intake-backend/internal/service"
)

// Services groups the service layer behind the JSON API.
type Services struct {
	Participants  service.ParticipantService
	Registrations service.RegistrationService
	Requests      service.RequestService
	Feedback      service.FeedbackService
	History       service.HistoryService
}

// NewRouter builds the HTTP API. Every route carries a name that the actor
// middleware looks up in config.RouteAccessConfig.
func NewRouter(svc Services) *mux.Router {
	router := mux.NewRouter()
	router.Use(loggingMiddleware, actorMiddleware)

	router.HandleFunc("/healthz", handleHealth).Methods(http.MethodGet).Name("health")
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet).Name("metrics")

	api := router.PathPrefix("/api/v1").Subrouter()

	reg := &registrationHandler{svc: svc.Registrations}
	api.HandleFunc("/registrations", reg.Register).Methods(http.MethodPost).Name("registrations.create")
	api.HandleFunc("/tokens/redeem", reg.Redeem).Methods(http.MethodPost).Name("tokens.redeem")
	api.HandleFunc("/tokens", reg.IssueToken).Methods(http.MethodPost).Name("tokens.issue")

	req := &requestHandler{svc: svc.Requests}
	api.HandleFunc("/requests", req.Submit).Methods(http.MethodPost).Name("requests.submit")
	api.HandleFunc("/requests/pending", req.ListPending).Methods(http.MethodGet).Name("requests.pending")
	api.HandleFunc("/requests/mine", req.ListMine).Methods(http.MethodGet).Name("requests.mine")
	api.HandleFunc("/requests/{id:[0-9]+}", req.SetStatus).Methods(http.MethodPatch).Name("requests.status")
	api.HandleFunc("/requests/{id:[0-9]+}/assignee", req.Assign).Methods(http.MethodPut).Name("requests.assign")
	api.HandleFunc("/requests/{id:[0-9]+}/approve", req.Approve).Methods(http.MethodPost).Name("requests.approve")
	api.HandleFunc("/requests/{id:[0-9]+}/reject", req.Reject).Methods(http.MethodPost).Name("requests.reject")
	api.HandleFunc("/requests/{id:[0-9]+}/comment", req.Comment).Methods(http.MethodPost).Name("requests.comment")

	fb := &feedbackHandler{svc: svc.Feedback}
	api.HandleFunc("/feedback", fb.Submit).Methods(http.MethodPost).Name("feedback.submit")
	api.HandleFunc("/feedback/pending", fb.ListPending).Methods(http.MethodGet).Name("feedback.pending")
	api.HandleFunc("/feedback/{id:[0-9]+}/reply", fb.Reply).Methods(http.MethodPost).Name("feedback.reply")

	hist := &historyHandler{svc: svc.History}
	api.HandleFunc("/history", hist.List).Methods(http.MethodGet).Name("history.list")

	part := &participantHandler{svc: svc.Participants}
	api.HandleFunc("/participants", part.List).Methods(http.MethodGet).Name("participants.list")
	api.HandleFunc("/participants/{id:[0-9]+}", part.Get).Methods(http.MethodGet).Name("participants.get")
	api.HandleFunc("/participants/{id:[0-9]+}", part.Edit).Methods(http.MethodPatch).Name("participants.edit")
	api.HandleFunc("/participants/{id:[0-9]+}", part.Remove).Methods(http.MethodDelete).Name("participants.remove")
	api.HandleFunc("/participants/{id:[0-9]+}/role", part.GrantRole).Methods(http.MethodPut).Name("participants.role")

	return router
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
