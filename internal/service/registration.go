package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"hr-intake-backend/internal/domain"
	"hr-intake-backend/internal/logger"
	"hr-intake-backend/internal/observability"
	"hr-intake-backend/internal/repository"

	"github.com/google/uuid"
)

const maxTokenAttempts = 5

type registrationService struct {
	participants  repository.ParticipantRepository
	tokens        repository.TokenRepository
	registrations repository.RegistrationRepository
	newCode       func() string
}

func NewRegistrationService(
	participants repository.ParticipantRepository,
	tokens repository.TokenRepository,
	registrations repository.RegistrationRepository,
) RegistrationService {
	return &registrationService{
		participants:  participants,
		tokens:        tokens,
		registrations: registrations,
		newCode:       newTokenCode,
	}
}

// newTokenCode returns the first 8 hex characters of a random UUID.
func newTokenCode() string {
	return uuid.NewString()[:8]
}

func (s *registrationService) Redeem(ctx context.Context, participantID int64, code string) (*domain.RedeemResult, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, domain.ErrInvalidToken
	}
	token, err := s.tokens.Redeem(ctx, code, participantID)
	if err != nil {
		return nil, err
	}
	return &domain.RedeemResult{GrantsElevatedRole: token.Elevated}, nil
}

func (s *registrationService) Register(ctx context.Context, participantID int64, code string, profile domain.Profile) (*domain.Participant, error) {
	logger.EnterMethod("registrationService.Register", "participantID", participantID)
	p, err := newParticipant(participantID, profile)
	if err != nil {
		logger.ExitMethodWithError("registrationService.Register", err, "participantID", participantID)
		return nil, err
	}
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, domain.ErrInvalidToken
	}

	if _, err := s.registrations.Register(ctx, code, p); err != nil {
		logger.ExitMethodWithError("registrationService.Register", err, "participantID", participantID)
		return nil, err
	}
	observability.RegistrationsTotal.WithLabelValues(string(p.Role)).Inc()
	logger.ExitMethod("registrationService.Register", "participantID", participantID, "role", p.Role)
	return p, nil
}

func (s *registrationService) IssueToken(ctx context.Context, actorID int64, elevated bool) (*domain.RegistrationToken, error) {
	if _, err := requireElevated(ctx, s.participants, actorID); err != nil {
		return nil, err
	}
	return s.issue(ctx, &actorID, elevated)
}

func (s *registrationService) IssueOperatorToken(ctx context.Context, elevated bool) (*domain.RegistrationToken, error) {
	return s.issue(ctx, nil, elevated)
}

func (s *registrationService) issue(ctx context.Context, issuedBy *int64, elevated bool) (*domain.RegistrationToken, error) {
	for attempt := 1; attempt <= maxTokenAttempts; attempt++ {
		token := &domain.RegistrationToken{Code: s.newCode(), Elevated: elevated, IssuedBy: issuedBy}
		err := s.tokens.Create(ctx, token)
		if err == nil {
			logger.Info("Registration token issued", "elevated", elevated)
			return token, nil
		}
		if !errors.Is(err, repository.ErrDuplicate) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("failed to issue token: no free code after %d attempts", maxTokenAttempts)
}

// Bootstrap creates the first elevated participant. It fails with
// ErrAlreadyBootstrapped once any elevated participant exists.
func (s *registrationService) Bootstrap(ctx context.Context, participantID int64, profile domain.Profile) (*domain.Participant, error) {
	p, err := newParticipant(participantID, profile)
	if err != nil {
		return nil, err
	}
	if err := s.registrations.Bootstrap(ctx, p); err != nil {
		return nil, err
	}
	observability.RegistrationsTotal.WithLabelValues(string(domain.RoleElevated)).Inc()
	logger.Info("Bootstrapped first elevated participant", "participant_id", participantID)
	return p, nil
}

func newParticipant(id int64, profile domain.Profile) (*domain.Participant, error) {
	if id == 0 {
		return nil, fmt.Errorf("%w: participant id is required", domain.ErrValidation)
	}
	name, err := requireText("full_name", profile.FullName)
	if err != nil {
		return nil, err
	}
	dept, err := requireText("department", profile.Department)
	if err != nil {
		return nil, err
	}
	pos, err := requireText("position", profile.Position)
	if err != nil {
		return nil, err
	}
	return &domain.Participant{ID: id, FullName: name, Department: dept, Position: pos, Role: domain.RoleNone}, nil
}
