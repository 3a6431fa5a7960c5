package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeDelivered = "delivered"
	OutcomeFailed    = "failed"
)

var (
	// NotificationsTotal counts fan-out deliveries by notification kind and outcome.
	NotificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hrdesk_notifications_total",
		Help: "Total notification deliveries by kind and outcome",
	}, []string{"kind", "outcome"})

	// RequestTransitionsTotal counts applied request status changes.
	RequestTransitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hrdesk_request_transitions_total",
		Help: "Total request status transitions by target status",
	}, []string{"status"})

	FeedbackResponsesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hrdesk_feedback_responses_total",
		Help: "Total feedback items answered",
	})

	// RegistrationsTotal counts completed registrations by granted role.
	RegistrationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hrdesk_registrations_total",
		Help: "Total registrations by granted role",
	}, []string{"role"})
)
