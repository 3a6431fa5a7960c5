package http

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"hr-intake-backend/internal/domain"
)

// ParticipantHeader carries the chat identifier of the acting participant.
const ParticipantHeader = "X-Participant-ID"

type contextKey int

const participantIDKey contextKey = iota

func withParticipantID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, participantIDKey, id)
}

// ParticipantIDFromContext returns the actor placed in the context by the
// actor middleware.
func ParticipantIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(participantIDKey).(int64)
	return id, ok
}

func parseParticipantID(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("%w: %s header is not provided", domain.ErrValidation, ParticipantHeader)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid %s %q", domain.ErrValidation, ParticipantHeader, raw)
	}
	return id, nil
}
