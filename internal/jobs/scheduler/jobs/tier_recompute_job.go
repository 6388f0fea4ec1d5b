package jobs

import (
	"context"
	"fmt"
	"time"

	"affiliate-server/internal/observability"
	sweepsProcessor "affiliate-server/internal/sweeps/processor"
)

// TierRecomputeJob re-evaluates every active creator's tier against the
// program's recruit thresholds.
type TierRecomputeJob struct {
	sweeps   sweepsProcessor.SweepProcessor
	logger   *observability.Logger
	interval time.Duration
}

// NewTierRecomputeJob creates a new tier recompute job
func NewTierRecomputeJob(sweeps sweepsProcessor.SweepProcessor, logger *observability.Logger, interval time.Duration) *TierRecomputeJob {
	if interval == 0 {
		interval = 24 * time.Hour
	}

	return &TierRecomputeJob{
		sweeps:   sweeps,
		logger:   logger,
		interval: interval,
	}
}

// Name returns the job name
func (j *TierRecomputeJob) Name() string {
	return "tier_recompute"
}

// Schedule returns how often the job should run
func (j *TierRecomputeJob) Schedule() time.Duration {
	return j.interval
}

// Run executes the tier recompute sweep
func (j *TierRecomputeJob) Run(ctx context.Context) error {
	changes, err := j.sweeps.RecomputeTiers(ctx)
	if err != nil {
		return fmt.Errorf("failed to recompute tiers: %w", err)
	}

	for _, change := range changes {
		changeCtx := observability.WithFields(ctx,
			observability.Field{Key: "creator_id", Value: change.CreatorID},
			observability.Field{Key: "from_tier", Value: change.FromTier},
			observability.Field{Key: "to_tier", Value: change.ToTier},
		)
		j.logger.Info(changeCtx, "creator tier changed")
	}

	j.logger.Info(ctx, fmt.Sprintf("Tier recompute completed: %d creators moved", len(changes)))
	return nil
}
