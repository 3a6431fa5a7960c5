package notify

import (
	"context"
	"fmt"
	"time"

	"hr-intake-backend/internal/config"
	"hr-intake-backend/internal/logger"

	"github.com/redis/go-redis/v9"
)

// NewSender builds the transport selected by cfg. The returned close function
// releases its connection and is never nil.
func NewSender(ctx context.Context, cfg config.NotifyConfig) (Sender, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Driver {
	case "redis":
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			_ = rdb.Close()
			return nil, noop, fmt.Errorf("failed to reach redis at %s: %w", cfg.RedisAddr, err)
		}
		logger.Info("Notifications via redis pub/sub", "addr", cfg.RedisAddr)
		return NewRedisSender(rdb), rdb.Close, nil

	case "discord":
		session, err := NewDiscordSession(cfg.DiscordToken)
		if err != nil {
			return nil, noop, err
		}
		logger.Info("Notifications via discord direct messages")
		return NewDiscordSender(session), session.Close, nil

	case "log", "":
		logger.Info("Notifications are written to the log")
		return LogSender{}, noop, nil

	default:
		return nil, noop, fmt.Errorf("unsupported notify driver: %q", cfg.Driver)
	}
}
