package service

import (
	"context"

	"hr-intake-backend/internal/domain"
	"hr-intake-backend/internal/logger"
	"hr-intake-backend/internal/notify"
	"hr-intake-backend/internal/observability"
	"hr-intake-backend/internal/repository"
)

type feedbackService struct {
	feedback     repository.FeedbackRepository
	participants repository.ParticipantRepository
	notifier     Notifier
}

func NewFeedbackService(
	feedback repository.FeedbackRepository,
	participants repository.ParticipantRepository,
	notifier Notifier,
) FeedbackService {
	return &feedbackService{feedback: feedback, participants: participants, notifier: notifier}
}

func (s *feedbackService) Submit(ctx context.Context, ownerID int64, text string) (*domain.Feedback, error) {
	text, err := requireText("text", text)
	if err != nil {
		return nil, err
	}
	if _, err := requireRegistered(ctx, s.participants, ownerID); err != nil {
		return nil, err
	}
	fb := &domain.Feedback{OwnerID: ownerID, Text: text}
	if err := s.feedback.Create(ctx, fb); err != nil {
		return nil, err
	}
	s.notifier.NotifyElevated(ctx, notify.FeedbackSubmitted(fb))
	return fb, nil
}

func (s *feedbackService) ListPending(ctx context.Context, actorID int64) ([]domain.Feedback, error) {
	if _, err := requireElevated(ctx, s.participants, actorID); err != nil {
		return nil, err
	}
	return s.feedback.ListPending(ctx)
}

// Reply records the one allowed response and forwards it to the author
// without revealing who they are to the responder.
func (s *feedbackService) Reply(ctx context.Context, actorID, feedbackID int64, response string) error {
	logger.EnterMethod("feedbackService.Reply", "actorID", actorID, "feedbackID", feedbackID)
	response, err := requireText("response", response)
	if err != nil {
		return err
	}
	if _, err := requireElevated(ctx, s.participants, actorID); err != nil {
		return err
	}
	if err := s.feedback.Respond(ctx, feedbackID, response, actorID); err != nil {
		logger.ExitMethodWithError("feedbackService.Reply", err, "feedbackID", feedbackID)
		return err
	}
	observability.FeedbackResponsesTotal.Inc()

	owner, err := s.feedback.GetOwner(ctx, feedbackID)
	if err != nil {
		logger.Warn("DeliveryFailure: could not resolve feedback owner", "feedback_id", feedbackID, "error", err)
		return nil
	}
	s.notifier.NotifyParticipant(ctx, owner, notify.FeedbackReplied(feedbackID, response))
	logger.ExitMethod("feedbackService.Reply", "feedbackID", feedbackID)
	return nil
}
