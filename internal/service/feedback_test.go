package service

import (
	"context"
	"testing"

	"hr-intake-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFeedbackService_Submit(t *testing.T) {
	ctx := context.Background()
	fbRepo := new(MockFeedbackRepo)
	partRepo := new(MockParticipantRepo)
	notifier := new(MockNotifier)
	svc := NewFeedbackService(fbRepo, partRepo, notifier)

	partRepo.On("GetByID", ctx, int64(7)).Return(employee, nil)
	partRepo.On("GetByID", ctx, int64(55)).Return(nil, domain.ErrNotFound)
	fbRepo.On("Create", ctx, mock.AnythingOfType("*domain.Feedback")).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Feedback).ID = 8
	}).Return(nil)
	notifier.On("NotifyElevated", ctx, mock.MatchedBy(func(n domain.Notification) bool {
		_, leaks := n.Attributes["owner_id"]
		return n.Kind == domain.NotificationFeedbackSubmitted && n.Message == "the lift is slow" && !leaks
	})).Return(0)

	fb, err := svc.Submit(ctx, 7, "the lift is slow")
	require.NoError(t, err)
	assert.Equal(t, int64(8), fb.ID)

	_, err = svc.Submit(ctx, 7, "  ")
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Submit(ctx, 55, "anonymous but unregistered")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	fbRepo.AssertNumberOfCalls(t, "Create", 1)
	notifier.AssertNumberOfCalls(t, "NotifyElevated", 1)
}

func TestFeedbackService_Reply(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		fbRepo := new(MockFeedbackRepo)
		partRepo := new(MockParticipantRepo)
		notifier := new(MockNotifier)
		svc := NewFeedbackService(fbRepo, partRepo, notifier)

		partRepo.On("GetByID", ctx, hrLead.ID).Return(hrLead, nil)
		fbRepo.On("Respond", ctx, int64(8), "fixed next week", hrLead.ID).Return(nil).Once()
		fbRepo.On("GetOwner", ctx, int64(8)).Return(int64(7), nil)
		notifier.On("NotifyParticipant", ctx, int64(7), mock.MatchedBy(func(n domain.Notification) bool {
			return n.Kind == domain.NotificationFeedbackReplied && n.Message == "fixed next week"
		})).Return(true).Once()

		require.NoError(t, svc.Reply(ctx, hrLead.ID, 8, "fixed next week"))
		notifier.AssertExpectations(t)
	})

	t.Run("AlreadyResponded", func(t *testing.T) {
		fbRepo := new(MockFeedbackRepo)
		partRepo := new(MockParticipantRepo)
		notifier := new(MockNotifier)
		svc := NewFeedbackService(fbRepo, partRepo, notifier)

		partRepo.On("GetByID", ctx, hrLead.ID).Return(hrLead, nil)
		fbRepo.On("Respond", ctx, int64(8), "again", hrLead.ID).Return(domain.ErrAlreadyResponded)

		assert.ErrorIs(t, svc.Reply(ctx, hrLead.ID, 8, "again"), domain.ErrAlreadyResponded)
		notifier.AssertNotCalled(t, "NotifyParticipant", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("EmptyResponse", func(t *testing.T) {
		svc := NewFeedbackService(new(MockFeedbackRepo), new(MockParticipantRepo), new(MockNotifier))
		assert.ErrorIs(t, svc.Reply(ctx, hrLead.ID, 8, ""), domain.ErrValidation)
	})

	t.Run("Forbidden", func(t *testing.T) {
		partRepo := new(MockParticipantRepo)
		partRepo.On("GetByID", ctx, employee.ID).Return(employee, nil)
		svc := NewFeedbackService(new(MockFeedbackRepo), partRepo, new(MockNotifier))
		assert.ErrorIs(t, svc.Reply(ctx, employee.ID, 8, "hi"), domain.ErrForbidden)
	})
}
