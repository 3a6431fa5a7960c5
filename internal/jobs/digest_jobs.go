package jobs

import (
	"context"
	"fmt"
	"time"

	"hr-intake-backend/internal/logger"
	"hr-intake-backend/internal/notify"
)

// SendPendingDigest tells every elevated participant how many requests and
// feedback items have been waiting longer than the configured age.
func (jr *JobRunner) SendPendingDigest() {
	jr.runWithRecovery("SendPendingDigest", func(ctx context.Context) error {
		_, err := jr.pendingDigest(ctx)
		return err
	})
}

// pendingDigest returns the number of participants notified. Nothing is sent
// when both queues are clear.
func (jr *JobRunner) pendingDigest(ctx context.Context) (int, error) {
	minAge := jr.config.Scheduler.DigestMinAgeHours
	cutoff := jr.now().Add(-time.Duration(minAge) * time.Hour)

	requests, err := jr.requests.CountPendingOlderThan(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending requests: %w", err)
	}
	feedback, err := jr.feedback.CountPendingOlderThan(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending feedback: %w", err)
	}

	if requests == 0 && feedback == 0 {
		logger.Info("No stale items, skipping digest", "cutoff", cutoff)
		return 0, nil
	}

	delivered := jr.notifier.NotifyElevated(ctx, notify.PendingDigest(requests, feedback, minAge))
	logger.Info("Pending digest sent",
		"pending_requests", requests,
		"pending_feedback", feedback,
		"recipients", delivered,
	)
	return delivered, nil
}
