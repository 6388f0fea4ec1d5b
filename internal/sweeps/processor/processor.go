package processor

import (
	"context"
	"time"

	"affiliate-server/internal/observability"
	"affiliate-server/internal/program"
)

type SweepProcessor struct {
	store   SweepStore
	program *program.Program
	logger  *observability.Logger
	now     func() time.Time
}

func New(store SweepStore, prog *program.Program, logger *observability.Logger) SweepProcessor {
	return SweepProcessor{
		store:   store,
		program: prog,
		logger:  logger,
		now:     time.Now,
	}
}

// ApproveMatured moves pending ledger entries older than the hold period to
// approved. Entries under a reversed attribution are excluded at the query
// level. Safe to run repeatedly; a second sweep finds nothing to move.
func (p *SweepProcessor) ApproveMatured(ctx context.Context) (int64, error) {
	cutoff := p.now().Add(-p.program.HoldPeriod)
	approved, err := p.store.ApproveMaturedLedgerEntries(ctx, cutoff)
	if err != nil {
		p.logger.Error(ctx, "failed to approve matured ledger entries", err)
		return 0, err
	}

	p.logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "entries_approved", Value: approved},
		observability.Field{Key: "cutoff", Value: cutoff.String()},
	), "approval sweep complete")
	return approved, nil
}

// TierChange records one creator's movement during a recompute.
type TierChange struct {
	CreatorID string `json:"creator_id"`
	FromTier  int    `json:"from_tier"`
	ToTier    int    `json:"to_tier"`
}

// RecomputeTiers reassigns every active creator's tier from their current
// recruit count. The schedule is a monotonic step function, so a recruit
// count that only grows can never demote anyone. Changes apply to future
// commissions only; written entries keep their original rate.
func (p *SweepProcessor) RecomputeTiers(ctx context.Context) ([]TierChange, error) {
	creators, err := p.store.ListActiveCreators(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to list active creators", err)
		return nil, err
	}

	changes := make([]TierChange, 0)
	for _, creator := range creators {
		tier := p.program.TierForRecruitCount(creator.RecruitCount)
		if tier.Rank == creator.Tier && tier.OverrideRate.Equal(creator.OverrideRate) {
			continue
		}

		if err := p.store.UpdateCreatorTier(ctx, creator.ID, tier.Rank, tier.OverrideRate); err != nil {
			// One creator failing must not stall the rest of the sweep.
			p.logger.Error(observability.WithFields(ctx,
				observability.Field{Key: "creator_id", Value: creator.ID.String()},
			), "failed to update creator tier", err)
			continue
		}

		changes = append(changes, TierChange{
			CreatorID: creator.ID.String(),
			FromTier:  creator.Tier,
			ToTier:    tier.Rank,
		})
	}

	p.logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "creators_seen", Value: len(creators)},
		observability.Field{Key: "tiers_changed", Value: len(changes)},
	), "tier recompute complete")
	return changes, nil
}
