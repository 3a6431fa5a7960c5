package service

import (
	"context"
	"fmt"

	"hr-intake-backend/internal/domain"
	"hr-intake-backend/internal/logger"
	"hr-intake-backend/internal/notify"
	"hr-intake-backend/internal/observability"
	"hr-intake-backend/internal/repository"
)

type requestService struct {
	requests     repository.RequestRepository
	participants repository.ParticipantRepository
	notifier     Notifier
}

func NewRequestService(
	requests repository.RequestRepository,
	participants repository.ParticipantRepository,
	notifier Notifier,
) RequestService {
	return &requestService{requests: requests, participants: participants, notifier: notifier}
}

func (s *requestService) Submit(ctx context.Context, ownerID int64, category, text string) (*domain.Request, error) {
	logger.EnterMethod("requestService.Submit", "ownerID", ownerID)
	category, err := requireText("category", category)
	if err != nil {
		return nil, err
	}
	text, err = requireText("text", text)
	if err != nil {
		return nil, err
	}

	submitter, err := requireRegistered(ctx, s.participants, ownerID)
	if err != nil {
		logger.ExitMethodWithError("requestService.Submit", err, "ownerID", ownerID)
		return nil, err
	}

	req := &domain.Request{OwnerID: ownerID, Category: category, Text: text}
	if err := s.requests.Create(ctx, req); err != nil {
		logger.ExitMethodWithError("requestService.Submit", err, "ownerID", ownerID)
		return nil, err
	}
	req.Submitter = submitter
	s.notifier.NotifyElevated(ctx, notify.RequestSubmitted(req, submitter))

	logger.ExitMethod("requestService.Submit", "ownerID", ownerID, "requestID", req.ID, "seq", req.Seq)
	return req, nil
}

func (s *requestService) ListPending(ctx context.Context, actorID int64) ([]domain.Request, error) {
	if _, err := requireElevated(ctx, s.participants, actorID); err != nil {
		return nil, err
	}
	return s.requests.ListPending(ctx)
}

func (s *requestService) ListMine(ctx context.Context, ownerID int64) ([]domain.Request, error) {
	return s.requests.ListByOwner(ctx, ownerID)
}

func (s *requestService) SetStatus(ctx context.Context, actorID, requestID int64, update domain.StatusUpdate) (*domain.Request, error) {
	if _, err := requireElevated(ctx, s.participants, actorID); err != nil {
		return nil, err
	}
	return s.applyUpdate(ctx, requestID, update)
}

func (s *requestService) Assign(ctx context.Context, actorID, requestID, assigneeID int64) error {
	if _, err := requireElevated(ctx, s.participants, actorID); err != nil {
		return err
	}
	return s.requests.Assign(ctx, requestID, assigneeID)
}

func (s *requestService) Approve(ctx context.Context, actorID, requestID int64, response *string) (*domain.Request, error) {
	return s.decide(ctx, actorID, requestID, domain.RequestStatusApproved, response)
}

func (s *requestService) Reject(ctx context.Context, actorID, requestID int64, response *string) (*domain.Request, error) {
	return s.decide(ctx, actorID, requestID, domain.RequestStatusRejected, response)
}

// Comment attaches a response and takes the request over without changing
// status. It is accepted in any status.
func (s *requestService) Comment(ctx context.Context, actorID, requestID int64, text string) (*domain.Request, error) {
	text, err := requireText("comment", text)
	if err != nil {
		return nil, err
	}
	if _, err := requireElevated(ctx, s.participants, actorID); err != nil {
		return nil, err
	}
	return s.applyUpdate(ctx, requestID, domain.StatusUpdate{Response: &text, AssigneeID: &actorID})
}

func (s *requestService) decide(ctx context.Context, actorID, requestID int64, status domain.RequestStatus, response *string) (*domain.Request, error) {
	logger.EnterMethod("requestService.decide", "actorID", actorID, "requestID", requestID, "status", status)
	update := domain.StatusUpdate{Status: &status, AssigneeID: &actorID}
	if response != nil {
		text, err := requireText("response", *response)
		if err != nil {
			return nil, err
		}
		update.Response = &text
	}
	if _, err := requireElevated(ctx, s.participants, actorID); err != nil {
		logger.ExitMethodWithError("requestService.decide", err, "requestID", requestID)
		return nil, err
	}
	req, err := s.applyUpdate(ctx, requestID, update)
	if err != nil {
		logger.ExitMethodWithError("requestService.decide", err, "requestID", requestID)
		return nil, err
	}
	logger.ExitMethod("requestService.decide", "requestID", requestID, "status", req.Status)
	return req, nil
}

func (s *requestService) applyUpdate(ctx context.Context, requestID int64, update domain.StatusUpdate) (*domain.Request, error) {
	if err := s.requests.UpdateStatus(ctx, requestID, update); err != nil {
		return nil, err
	}
	if update.Status != nil {
		observability.RequestTransitionsTotal.WithLabelValues(string(*update.Status)).Inc()
	}

	req, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload request: %w", err)
	}
	s.notifier.NotifyParticipant(ctx, req.OwnerID, notify.RequestUpdated(req, update))
	return req, nil
}
