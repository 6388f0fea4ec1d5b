package jobs

import (
	"context"
	"fmt"
	"time"

	"affiliate-server/internal/observability"
	sweepsProcessor "affiliate-server/internal/sweeps/processor"
)

// ApprovalSweepJob approves commission ledger entries whose hold period has
// elapsed.
type ApprovalSweepJob struct {
	sweeps   sweepsProcessor.SweepProcessor
	logger   *observability.Logger
	interval time.Duration
}

// NewApprovalSweepJob creates a new approval sweep job
func NewApprovalSweepJob(sweeps sweepsProcessor.SweepProcessor, logger *observability.Logger, interval time.Duration) *ApprovalSweepJob {
	if interval == 0 {
		interval = 1 * time.Hour
	}

	return &ApprovalSweepJob{
		sweeps:   sweeps,
		logger:   logger,
		interval: interval,
	}
}

// Name returns the job name
func (j *ApprovalSweepJob) Name() string {
	return "approval_sweep"
}

// Schedule returns how often the job should run
func (j *ApprovalSweepJob) Schedule() time.Duration {
	return j.interval
}

// Run executes the approval sweep
func (j *ApprovalSweepJob) Run(ctx context.Context) error {
	approved, err := j.sweeps.ApproveMatured(ctx)
	if err != nil {
		return fmt.Errorf("failed to approve matured ledger entries: %w", err)
	}

	j.logger.Info(ctx, fmt.Sprintf("Approval sweep completed: %d entries approved", approved))
	return nil
}
