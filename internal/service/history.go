package service

import (
	"context"
	"fmt"

	"hr-intake-backend/internal/domain"
	"hr-intake-backend/internal/history"
	"hr-intake-backend/internal/repository"
)

type historyService struct {
	requests     repository.RequestRepository
	feedback     repository.FeedbackRepository
	participants repository.ParticipantRepository
}

func NewHistoryService(
	requests repository.RequestRepository,
	feedback repository.FeedbackRepository,
	participants repository.ParticipantRepository,
) HistoryService {
	return &historyService{requests: requests, feedback: feedback, participants: participants}
}

// List returns one page of history. The user scope covers everything the
// actor submitted; the elevated scope covers every processed item.
func (s *historyService) List(ctx context.Context, actorID int64, scope domain.HistoryScope, offset int) (*domain.HistoryPage, error) {
	if offset < 0 {
		return nil, fmt.Errorf("%w: offset must not be negative", domain.ErrValidation)
	}

	var (
		reqs []domain.Request
		fbs  []domain.Feedback
		err  error
	)
	switch scope {
	case domain.HistoryScopeUser, "":
		if reqs, err = s.requests.ListByOwner(ctx, actorID); err != nil {
			return nil, err
		}
		if fbs, err = s.feedback.ListByOwner(ctx, actorID); err != nil {
			return nil, err
		}
	case domain.HistoryScopeElevated:
		if _, err := requireElevated(ctx, s.participants, actorID); err != nil {
			return nil, err
		}
		if reqs, err = s.requests.ListProcessed(ctx); err != nil {
			return nil, err
		}
		if fbs, err = s.feedback.ListProcessed(ctx); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: unknown history scope %q", domain.ErrValidation, scope)
	}
	return history.Paginate(reqs, fbs, offset)
}
