package jobs

import (
	"context"
	"fmt"
	"time"

	"affiliate-server/internal/observability"
	payoutsProcessor "affiliate-server/internal/payouts/processor"
)

// PayoutBatchJob settles approved commission balances into payouts. Each run
// covers the calendar month that ended most recently; the per-creator
// settlement is idempotent, so overlapping runs only log skips.
type PayoutBatchJob struct {
	payouts  payoutsProcessor.PayoutProcessor
	logger   *observability.Logger
	interval time.Duration
}

// NewPayoutBatchJob creates a new payout batch job
func NewPayoutBatchJob(payouts payoutsProcessor.PayoutProcessor, logger *observability.Logger, interval time.Duration) *PayoutBatchJob {
	if interval == 0 {
		interval = 24 * time.Hour
	}

	return &PayoutBatchJob{
		payouts:  payouts,
		logger:   logger,
		interval: interval,
	}
}

// Name returns the job name
func (j *PayoutBatchJob) Name() string {
	return "payout_batch"
}

// Schedule returns how often the job should run
func (j *PayoutBatchJob) Schedule() time.Duration {
	return j.interval
}

// Run executes the payout batch for the last fully elapsed calendar month
func (j *PayoutBatchJob) Run(ctx context.Context) error {
	now := time.Now().UTC()
	periodEnd := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	periodStart := periodEnd.AddDate(0, -1, 0)

	result, err := j.payouts.RunBatch(ctx, periodStart, periodEnd)
	if err != nil {
		return fmt.Errorf("failed to run payout batch: %w", err)
	}

	j.logger.Info(ctx, fmt.Sprintf("Payout batch completed: %d creators seen, %d payouts created (%s total), %d skipped, %d failed",
		result.Summary.CreatorsSeen,
		result.Summary.PayoutsCreated,
		result.Summary.TotalPaid.StringFixed(2),
		result.Summary.Skipped,
		result.Summary.Failed))
	return nil
}
