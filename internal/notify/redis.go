package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"hr-intake-backend/internal/domain"
	"hr-intake-backend/internal/logger"

	"github.com/redis/go-redis/v9"
)

// ParticipantChannel is the pub/sub channel the chat gateway listens on for
// one participant.
func ParticipantChannel(id int64) string {
	return fmt.Sprintf("notifications:participant:%d", id)
}

type envelope struct {
	RecipientID int64 `json:"recipient_id"`
	domain.Notification
}

// RedisSender publishes notifications for a chat gateway to pick up.
type RedisSender struct {
	rdb *redis.Client
}

func NewRedisSender(rdb *redis.Client) *RedisSender {
	return &RedisSender{rdb: rdb}
}

func (s *RedisSender) Send(ctx context.Context, recipientID int64, n domain.Notification) error {
	if s.rdb == nil {
		return fmt.Errorf("%w: redis client not configured", domain.ErrDelivery)
	}
	payload, err := json.Marshal(envelope{RecipientID: recipientID, Notification: n})
	if err != nil {
		return fmt.Errorf("failed to encode notification: %w", err)
	}

	channel := ParticipantChannel(recipientID)
	logger.ExternalServiceCall("redis", "publish", "channel", channel)
	receivers, err := s.rdb.Publish(ctx, channel, payload).Result()
	logger.ExternalServiceResult("redis", "publish", err, "receivers", receivers)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrDelivery, err)
	}
	if receivers == 0 {
		return fmt.Errorf("%w: no gateway subscribed to %s", domain.ErrDelivery, channel)
	}
	return nil
}
