package notify

import (
	"context"

	"hr-intake-backend/internal/domain"
	"hr-intake-backend/internal/logger"
)

// LogSender writes notifications to the log. Used in development.
type LogSender struct{}

func (LogSender) Send(_ context.Context, recipientID int64, n domain.Notification) error {
	logger.Info("Notification", "recipient_id", recipientID, "kind", n.Kind, "title", n.Title, "message", n.Message)
	return nil
}
