package http

import (
	"context"

	"hr-intake-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

type MockRequestService struct {
	mock.Mock
}

func (m *MockRequestService) Submit(ctx context.Context, ownerID int64, category, text string) (*domain.Request, error) {
	args := m.Called(ctx, ownerID, category, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Request), args.Error(1)
}
func (m *MockRequestService) ListPending(ctx context.Context, actorID int64) ([]domain.Request, error) {
	args := m.Called(ctx, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Request), args.Error(1)
}
func (m *MockRequestService) ListMine(ctx context.Context, ownerID int64) ([]domain.Request, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Request), args.Error(1)
}
func (m *MockRequestService) SetStatus(ctx context.Context, actorID, requestID int64, update domain.StatusUpdate) (*domain.Request, error) {
	args := m.Called(ctx, actorID, requestID, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Request), args.Error(1)
}
func (m *MockRequestService) Assign(ctx context.Context, actorID, requestID, assigneeID int64) error {
	args := m.Called(ctx, actorID, requestID, assigneeID)
	return args.Error(0)
}
func (m *MockRequestService) Approve(ctx context.Context, actorID, requestID int64, response *string) (*domain.Request, error) {
	args := m.Called(ctx, actorID, requestID, response)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Request), args.Error(1)
}
func (m *MockRequestService) Reject(ctx context.Context, actorID, requestID int64, response *string) (*domain.Request, error) {
	args := m.Called(ctx, actorID, requestID, response)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Request), args.Error(1)
}
func (m *MockRequestService) Comment(ctx context.Context, actorID, requestID int64, text string) (*domain.Request, error) {
	args := m.Called(ctx, actorID, requestID, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Request), args.Error(1)
}

type MockFeedbackService struct {
	mock.Mock
}

func (m *MockFeedbackService) Submit(ctx context.Context, ownerID int64, text string) (*domain.Feedback, error) {
	args := m.Called(ctx, ownerID, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Feedback), args.Error(1)
}
func (m *MockFeedbackService) ListPending(ctx context.Context, actorID int64) ([]domain.Feedback, error) {
	args := m.Called(ctx, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Feedback), args.Error(1)
}
func (m *MockFeedbackService) Reply(ctx context.Context, actorID, feedbackID int64, response string) error {
	args := m.Called(ctx, actorID, feedbackID, response)
	return args.Error(0)
}

type MockHistoryService struct {
	mock.Mock
}

func (m *MockHistoryService) List(ctx context.Context, actorID int64, scope domain.HistoryScope, offset int) (*domain.HistoryPage, error) {
	args := m.Called(ctx, actorID, scope, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HistoryPage), args.Error(1)
}

type MockRegistrationService struct {
	mock.Mock
}

func (m *MockRegistrationService) Redeem(ctx context.Context, participantID int64, code string) (*domain.RedeemResult, error) {
	args := m.Called(ctx, participantID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RedeemResult), args.Error(1)
}
func (m *MockRegistrationService) Register(ctx context.Context, participantID int64, code string, profile domain.Profile) (*domain.Participant, error) {
	args := m.Called(ctx, participantID, code, profile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Participant), args.Error(1)
}
func (m *MockRegistrationService) IssueToken(ctx context.Context, actorID int64, elevated bool) (*domain.RegistrationToken, error) {
	args := m.Called(ctx, actorID, elevated)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RegistrationToken), args.Error(1)
}
func (m *MockRegistrationService) IssueOperatorToken(ctx context.Context, elevated bool) (*domain.RegistrationToken, error) {
	args := m.Called(ctx, elevated)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RegistrationToken), args.Error(1)
}
func (m *MockRegistrationService) Bootstrap(ctx context.Context, participantID int64, profile domain.Profile) (*domain.Participant, error) {
	args := m.Called(ctx, participantID, profile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Participant), args.Error(1)
}

type MockParticipantService struct {
	mock.Mock
}

func (m *MockParticipantService) GetParticipant(ctx context.Context, actorID, id int64) (*domain.Participant, error) {
	args := m.Called(ctx, actorID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Participant), args.Error(1)
}
func (m *MockParticipantService) ListParticipants(ctx context.Context, actorID int64) ([]domain.Participant, error) {
	args := m.Called(ctx, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Participant), args.Error(1)
}
func (m *MockParticipantService) EditProfile(ctx context.Context, actorID, id int64, update domain.ProfileUpdate) (*domain.Participant, error) {
	args := m.Called(ctx, actorID, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Participant), args.Error(1)
}
func (m *MockParticipantService) RemoveParticipant(ctx context.Context, actorID, id int64) error {
	args := m.Called(ctx, actorID, id)
	return args.Error(0)
}
func (m *MockParticipantService) GrantElevatedRole(ctx context.Context, actorID, id int64) error {
	args := m.Called(ctx, actorID, id)
	return args.Error(0)
}
