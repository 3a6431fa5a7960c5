package notify

import (
	"context"
	"fmt"
	"strconv"

	"hr-intake-backend/internal/domain"
	"hr-intake-backend/internal/logger"

	"github.com/bwmarrin/discordgo"
)

// maxMessageLen is Discord's per-message content limit.
const maxMessageLen = 2000

// DirectMessenger is the subset of *discordgo.Session used for DMs.
type DirectMessenger interface {
	UserChannelCreate(recipientID string, options ...discordgo.RequestOption) (*discordgo.Channel, error)
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// DiscordSender delivers notifications as bot direct messages. Participant
// ids are Discord user snowflakes.
type DiscordSender struct {
	session DirectMessenger
}

func NewDiscordSender(session DirectMessenger) *DiscordSender {
	return &DiscordSender{session: session}
}

// NewDiscordSession opens a bot session for token.
func NewDiscordSession(token string) (*discordgo.Session, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}
	return session, nil
}

func (s *DiscordSender) Send(ctx context.Context, recipientID int64, n domain.Notification) error {
	userID := strconv.FormatInt(recipientID, 10)
	logger.ExternalServiceCall("discord", "dm", "recipient_id", userID)

	channel, err := s.session.UserChannelCreate(userID, discordgo.WithContext(ctx))
	if err != nil {
		logger.ExternalServiceResult("discord", "dm", err)
		return fmt.Errorf("%w: open dm channel: %w", domain.ErrDelivery, err)
	}
	_, err = s.session.ChannelMessageSend(channel.ID, Render(n), discordgo.WithContext(ctx))
	logger.ExternalServiceResult("discord", "dm", err)
	if err != nil {
		return fmt.Errorf("%w: send dm: %w", domain.ErrDelivery, err)
	}
	return nil
}

// Render formats n as chat text, truncated to the message limit.
func Render(n domain.Notification) string {
	text := n.Message
	if n.Title != "" {
		text = "**" + n.Title + "**\n" + n.Message
	}
	if r := []rune(text); len(r) > maxMessageLen {
		text = string(r[:maxMessageLen-1]) + "…"
	}
	return text
}
