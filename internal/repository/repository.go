package repository

import (
	"context"
	"errors"
	"time"

	"hr-intake-backend/internal/domain"
)

// ErrDuplicate reports a unique-key collision on insert.
var ErrDuplicate = errors.New("duplicate key")

type ParticipantRepository interface {
	Upsert(ctx context.Context, p *domain.Participant) error
	GetByID(ctx context.Context, id int64) (*domain.Participant, error)
	List(ctx context.Context) ([]domain.Participant, error)
	UpdateProfile(ctx context.Context, id int64, update domain.ProfileUpdate) error
	// Delete removes the profile and its role together.
	Delete(ctx context.Context, id int64) error
}

type RoleRepository interface {
	// Grant is idempotent. It reports whether the role was newly granted.
	Grant(ctx context.Context, participantID int64, role domain.Role) (bool, error)
	ListElevatedIDs(ctx context.Context) ([]int64, error)
	CountElevated(ctx context.Context) (int, error)
}

type TokenRepository interface {
	Create(ctx context.Context, token *domain.RegistrationToken) error
	// Redeem marks an unused token as used in a single statement.
	Redeem(ctx context.Context, code string, usedBy int64) (*domain.RegistrationToken, error)
}

type RegistrationRepository interface {
	// Register redeems the token, stores the profile and grants the elevated
	// role when the token carries it, all in one transaction.
	Register(ctx context.Context, code string, p *domain.Participant) (*domain.RegistrationToken, error)
	// Bootstrap creates the first elevated participant; it fails when one
	// already exists.
	Bootstrap(ctx context.Context, p *domain.Participant) error
}

type RequestRepository interface {
	Create(ctx context.Context, req *domain.Request) error
	GetByID(ctx context.Context, id int64) (*domain.Request, error)
	ListPending(ctx context.Context) ([]domain.Request, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.Request, error)
	ListProcessed(ctx context.Context) ([]domain.Request, error)
	UpdateStatus(ctx context.Context, id int64, update domain.StatusUpdate) error
	Assign(ctx context.Context, id, assigneeID int64) error
	CountPendingOlderThan(ctx context.Context, cutoff time.Time) (int, error)
}

type FeedbackRepository interface {
	Create(ctx context.Context, fb *domain.Feedback) error
	ListPending(ctx context.Context) ([]domain.Feedback, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.Feedback, error)
	ListProcessed(ctx context.Context) ([]domain.Feedback, error)
	// Respond sets response, responder and responded time together; it fails
	// if a response is already recorded.
	Respond(ctx context.Context, id int64, response string, responderID int64) error
	GetOwner(ctx context.Context, id int64) (int64, error)
	CountPendingOlderThan(ctx context.Context, cutoff time.Time) (int, error)
}
