package service

import (
	"context"

	"hr-intake-backend/internal/domain"
)

type ParticipantService interface {
	GetParticipant(ctx context.Context, actorID, id int64) (*domain.Participant, error)
	ListParticipants(ctx context.Context, actorID int64) ([]domain.Participant, error)
	EditProfile(ctx context.Context, actorID, id int64, update domain.ProfileUpdate) (*domain.Participant, error)
	RemoveParticipant(ctx context.Context, actorID, id int64) error
	GrantElevatedRole(ctx context.Context, actorID, id int64) error
}

type RegistrationService interface {
	Redeem(ctx context.Context, participantID int64, code string) (*domain.RedeemResult, error)
	Register(ctx context.Context, participantID int64, code string, profile domain.Profile) (*domain.Participant, error)
	IssueToken(ctx context.Context, actorID int64, elevated bool) (*domain.RegistrationToken, error)
	// IssueOperatorToken issues a token without an acting participant, for
	// operators with direct database access.
	IssueOperatorToken(ctx context.Context, elevated bool) (*domain.RegistrationToken, error)
	Bootstrap(ctx context.Context, participantID int64, profile domain.Profile) (*domain.Participant, error)
}

type RequestService interface {
	Submit(ctx context.Context, ownerID int64, category, text string) (*domain.Request, error)
	ListPending(ctx context.Context, actorID int64) ([]domain.Request, error)
	ListMine(ctx context.Context, ownerID int64) ([]domain.Request, error)
	SetStatus(ctx context.Context, actorID, requestID int64, update domain.StatusUpdate) (*domain.Request, error)
	Assign(ctx context.Context, actorID, requestID, assigneeID int64) error
	Approve(ctx context.Context, actorID, requestID int64, response *string) (*domain.Request, error)
	Reject(ctx context.Context, actorID, requestID int64, response *string) (*domain.Request, error)
	Comment(ctx context.Context, actorID, requestID int64, text string) (*domain.Request, error)
}

type FeedbackService interface {
	Submit(ctx context.Context, ownerID int64, text string) (*domain.Feedback, error)
	ListPending(ctx context.Context, actorID int64) ([]domain.Feedback, error)
	Reply(ctx context.Context, actorID, feedbackID int64, response string) error
}

type HistoryService interface {
	List(ctx context.Context, actorID int64, scope domain.HistoryScope, offset int) (*domain.HistoryPage, error)
}

// Notifier is the fan-out used after each state change. Implementations
// swallow delivery failures.
type Notifier interface {
	NotifyElevated(ctx context.Context, n domain.Notification) int
	NotifyParticipant(ctx context.Context, recipientID int64, n domain.Notification) bool
}
