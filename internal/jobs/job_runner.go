package jobs

import (
	"context"
	"time"

	"hr-intake-backend/internal/config"
	"hr-intake-backend/internal/logger"
	"hr-intake-backend/internal/repository"
	"hr-intake-backend/internal/service"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	requests repository.RequestRepository
	feedback repository.FeedbackRepository
	notifier service.Notifier
	config   *config.Config
	now      func() time.Time
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(
	requests repository.RequestRepository,
	feedback repository.FeedbackRepository,
	notifier service.Notifier,
	cfg *config.Config,
) *JobRunner {
	return &JobRunner{
		requests: requests,
		feedback: feedback,
		notifier: notifier,
		config:   cfg,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Config returns the configuration the runner was built with.
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func(ctx context.Context) error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	start := time.Now()
	if err := jobFunc(context.Background()); err != nil {
		logger.Error("Job failed", "job", jobName, "error", err, "duration_ms", time.Since(start).Milliseconds())
		return
	}
	logger.Info("Job completed", "job", jobName, "duration_ms", time.Since(start).Milliseconds())
}

// RunAll runs every job once (for manual execution)
func (jr *JobRunner) RunAll() {
	jr.SendPendingDigest()
}
