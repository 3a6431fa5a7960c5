package service

import (
	"context"
	"fmt"

	"hr-intake-backend/internal/domain"
	"hr-intake-backend/internal/logger"
	"hr-intake-backend/internal/notify"
	"hr-intake-backend/internal/repository"
)

type participantService struct {
	participants repository.ParticipantRepository
	roles        repository.RoleRepository
	notifier     Notifier
}

func NewParticipantService(
	participants repository.ParticipantRepository,
	roles repository.RoleRepository,
	notifier Notifier,
) ParticipantService {
	return &participantService{participants: participants, roles: roles, notifier: notifier}
}

// GetParticipant returns the actor's own record, or any record to an elevated actor.
func (s *participantService) GetParticipant(ctx context.Context, actorID, id int64) (*domain.Participant, error) {
	if actorID != id {
		if _, err := requireElevated(ctx, s.participants, actorID); err != nil {
			return nil, err
		}
	}
	return s.participants.GetByID(ctx, id)
}

func (s *participantService) ListParticipants(ctx context.Context, actorID int64) ([]domain.Participant, error) {
	if _, err := requireElevated(ctx, s.participants, actorID); err != nil {
		return nil, err
	}
	return s.participants.List(ctx)
}

func (s *participantService) EditProfile(ctx context.Context, actorID, id int64, update domain.ProfileUpdate) (*domain.Participant, error) {
	if actorID != id {
		if _, err := requireElevated(ctx, s.participants, actorID); err != nil {
			return nil, err
		}
	}
	if update.IsEmpty() {
		return nil, fmt.Errorf("%w: nothing to update", domain.ErrValidation)
	}
	clean, err := trimProfileUpdate(update)
	if err != nil {
		return nil, err
	}
	if err := s.participants.UpdateProfile(ctx, id, clean); err != nil {
		return nil, err
	}
	return s.participants.GetByID(ctx, id)
}

func (s *participantService) RemoveParticipant(ctx context.Context, actorID, id int64) error {
	if _, err := requireElevated(ctx, s.participants, actorID); err != nil {
		return err
	}
	return s.participants.Delete(ctx, id)
}

// GrantElevatedRole is idempotent; the participant is only told when the
// role is new.
func (s *participantService) GrantElevatedRole(ctx context.Context, actorID, id int64) error {
	if _, err := requireElevated(ctx, s.participants, actorID); err != nil {
		return err
	}
	granted, err := s.roles.Grant(ctx, id, domain.RoleElevated)
	if err != nil {
		return err
	}
	if !granted {
		logger.Debug("Participant already elevated", "participant_id", id)
		return nil
	}
	s.notifier.NotifyParticipant(ctx, id, notify.RoleGranted())
	return nil
}

func trimProfileUpdate(update domain.ProfileUpdate) (domain.ProfileUpdate, error) {
	trim := func(field string, v *string) (*string, error) {
		if v == nil {
			return nil, nil
		}
		out, err := requireText(field, *v)
		if err != nil {
			return nil, err
		}
		return &out, nil
	}
	var (
		clean domain.ProfileUpdate
		err   error
	)
	if clean.FullName, err = trim("full_name", update.FullName); err != nil {
		return clean, err
	}
	if clean.Department, err = trim("department", update.Department); err != nil {
		return clean, err
	}
	if clean.Position, err = trim("position", update.Position); err != nil {
		return clean, err
	}
	return clean, nil
}
