// Package notify delivers notifications to participants through a pluggable
// chat transport.
package notify

import (
	"context"
	"errors"
	"fmt"

	"hr-intake-backend/internal/domain"
	"hr-intake-backend/internal/logger"
	"hr-intake-backend/internal/observability"
	"hr-intake-backend/internal/repository"
)

// Sender pushes one notification to one participant.
type Sender interface {
	Send(ctx context.Context, recipientID int64, n domain.Notification) error
}

// Dispatcher fans notifications out to their recipients. Delivery is best
// effort: failures are logged and counted, never returned or retried.
type Dispatcher struct {
	sender Sender
	roles  repository.RoleRepository
}

func NewDispatcher(sender Sender, roles repository.RoleRepository) *Dispatcher {
	return &Dispatcher{sender: sender, roles: roles}
}

// NotifyElevated sends n to every elevated participant. It returns the number
// of successful deliveries.
func (d *Dispatcher) NotifyElevated(ctx context.Context, n domain.Notification) int {
	ids, err := d.roles.ListElevatedIDs(ctx)
	if err != nil {
		logger.Warn("DeliveryFailure: could not resolve elevated participants", "kind", n.Kind, "error", err)
		observability.NotificationsTotal.WithLabelValues(string(n.Kind), observability.OutcomeFailed).Inc()
		return 0
	}
	if len(ids) == 0 {
		logger.Debug("No elevated participants to notify", "kind", n.Kind)
		return 0
	}
	delivered := 0
	for _, id := range ids {
		if d.deliver(ctx, id, n) {
			delivered++
		}
	}
	return delivered
}

// NotifyParticipant sends n to a single participant.
func (d *Dispatcher) NotifyParticipant(ctx context.Context, recipientID int64, n domain.Notification) bool {
	return d.deliver(ctx, recipientID, n)
}

func (d *Dispatcher) deliver(ctx context.Context, recipientID int64, n domain.Notification) bool {
	if err := d.sender.Send(ctx, recipientID, n); err != nil {
		if !errors.Is(err, domain.ErrDelivery) {
			err = fmt.Errorf("%w: %w", domain.ErrDelivery, err)
		}
		logger.Warn("DeliveryFailure", "recipient_id", recipientID, "kind", n.Kind, "error", err)
		observability.NotificationsTotal.WithLabelValues(string(n.Kind), observability.OutcomeFailed).Inc()
		return false
	}
	observability.NotificationsTotal.WithLabelValues(string(n.Kind), observability.OutcomeDelivered).Inc()
	return true
}
