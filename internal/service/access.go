package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"hr-intake-backend/internal/domain"
	"hr-intake-backend/internal/repository"
)

// requireElevated loads the actor and fails with ErrForbidden unless they
// hold the elevated role. Unregistered actors are forbidden too.
func requireElevated(ctx context.Context, participants repository.ParticipantRepository, actorID int64) (*domain.Participant, error) {
	actor, err := participants.GetByID(ctx, actorID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("%w: participant %d is not registered", domain.ErrForbidden, actorID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load actor: %w", err)
	}
	if !actor.IsElevated() {
		return nil, fmt.Errorf("%w: participant %d", domain.ErrForbidden, actorID)
	}
	return actor, nil
}

// requireRegistered loads a participant acting on their own behalf.
// Unregistered callers are forbidden.
func requireRegistered(ctx context.Context, participants repository.ParticipantRepository, id int64) (*domain.Participant, error) {
	p, err := participants.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("%w: participant %d is not registered", domain.ErrForbidden, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load participant: %w", err)
	}
	return p, nil
}

func requireText(field, value string) (string, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return "", fmt.Errorf("%w: %s is required", domain.ErrValidation, field)
	}
	return v, nil
}
