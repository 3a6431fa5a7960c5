package service

import (
	"context"
	"time"

	"hr-intake-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockParticipantRepo
type MockParticipantRepo struct {
	mock.Mock
}

func (m *MockParticipantRepo) Upsert(ctx context.Context, p *domain.Participant) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockParticipantRepo) GetByID(ctx context.Context, id int64) (*domain.Participant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Participant), args.Error(1)
}
func (m *MockParticipantRepo) List(ctx context.Context) ([]domain.Participant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Participant), args.Error(1)
}
func (m *MockParticipantRepo) UpdateProfile(ctx context.Context, id int64, update domain.ProfileUpdate) error {
	args := m.Called(ctx, id, update)
	return args.Error(0)
}
func (m *MockParticipantRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockRoleRepo
type MockRoleRepo struct {
	mock.Mock
}

func (m *MockRoleRepo) Grant(ctx context.Context, participantID int64, role domain.Role) (bool, error) {
	args := m.Called(ctx, participantID, role)
	return args.Bool(0), args.Error(1)
}
func (m *MockRoleRepo) ListElevatedIDs(ctx context.Context) ([]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}
func (m *MockRoleRepo) CountElevated(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// MockTokenRepo
type MockTokenRepo struct {
	mock.Mock
}

func (m *MockTokenRepo) Create(ctx context.Context, token *domain.RegistrationToken) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}
func (m *MockTokenRepo) Redeem(ctx context.Context, code string, usedBy int64) (*domain.RegistrationToken, error) {
	args := m.Called(ctx, code, usedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RegistrationToken), args.Error(1)
}

// MockRegistrationRepo
type MockRegistrationRepo struct {
	mock.Mock
}

func (m *MockRegistrationRepo) Register(ctx context.Context, code string, p *domain.Participant) (*domain.RegistrationToken, error) {
	args := m.Called(ctx, code, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RegistrationToken), args.Error(1)
}
func (m *MockRegistrationRepo) Bootstrap(ctx context.Context, p *domain.Participant) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

// MockRequestRepo
type MockRequestRepo struct {
	mock.Mock
}

func (m *MockRequestRepo) Create(ctx context.Context, req *domain.Request) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
func (m *MockRequestRepo) GetByID(ctx context.Context, id int64) (*domain.Request, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Request), args.Error(1)
}
func (m *MockRequestRepo) ListPending(ctx context.Context) ([]domain.Request, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Request), args.Error(1)
}
func (m *MockRequestRepo) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Request, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Request), args.Error(1)
}
func (m *MockRequestRepo) ListProcessed(ctx context.Context) ([]domain.Request, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Request), args.Error(1)
}
func (m *MockRequestRepo) UpdateStatus(ctx context.Context, id int64, update domain.StatusUpdate) error {
	args := m.Called(ctx, id, update)
	return args.Error(0)
}
func (m *MockRequestRepo) Assign(ctx context.Context, id, assigneeID int64) error {
	args := m.Called(ctx, id, assigneeID)
	return args.Error(0)
}
func (m *MockRequestRepo) CountPendingOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	args := m.Called(ctx, cutoff)
	return args.Int(0), args.Error(1)
}

// MockFeedbackRepo
type MockFeedbackRepo struct {
	mock.Mock
}

func (m *MockFeedbackRepo) Create(ctx context.Context, fb *domain.Feedback) error {
	args := m.Called(ctx, fb)
	return args.Error(0)
}
func (m *MockFeedbackRepo) ListPending(ctx context.Context) ([]domain.Feedback, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Feedback), args.Error(1)
}
func (m *MockFeedbackRepo) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Feedback, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Feedback), args.Error(1)
}
func (m *MockFeedbackRepo) ListProcessed(ctx context.Context) ([]domain.Feedback, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Feedback), args.Error(1)
}
func (m *MockFeedbackRepo) Respond(ctx context.Context, id int64, response string, responderID int64) error {
	args := m.Called(ctx, id, response, responderID)
	return args.Error(0)
}
func (m *MockFeedbackRepo) GetOwner(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockFeedbackRepo) CountPendingOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	args := m.Called(ctx, cutoff)
	return args.Int(0), args.Error(1)
}

// MockNotifier
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) NotifyElevated(ctx context.Context, n domain.Notification) int {
	args := m.Called(ctx, n)
	return args.Int(0)
}
func (m *MockNotifier) NotifyParticipant(ctx context.Context, recipientID int64, n domain.Notification) bool {
	args := m.Called(ctx, recipientID, n)
	return args.Bool(0)
}

var (
	hrLead   = &domain.Participant{ID: 100, FullName: "Hana Reyes", Department: "HR", Position: "Lead", Role: domain.RoleElevated}
	employee = &domain.Participant{ID: 7, FullName: "Ann Lee", Department: "Sales", Position: "Rep", Role: domain.RoleNone}
)
