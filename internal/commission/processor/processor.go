package processor

import (
	"context"
	"errors"

	"affiliate-server/internal/observability"
	"affiliate-server/internal/program"
	"affiliate-server/internal/store"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrAttributionNotFound = errors.New("order attribution not found")
	ErrAttributionReversed = errors.New("order attribution is reversed")
	ErrDuplicateCommission = errors.New("commissions already computed for attribution")
)

type CommissionProcessor struct {
	store   CommissionStore
	program *program.Program
	logger  *observability.Logger
}

func New(store CommissionStore, prog *program.Program, logger *observability.Logger) CommissionProcessor {
	return CommissionProcessor{
		store:   store,
		program: prog,
		logger:  logger,
	}
}

// Compute writes the ledger entries an attributed order earns: one direct
// entry at the creator's current tier rate and, when the creator was
// recruited, one override entry at the recruiter's override rate. Entries
// freeze the rate they were computed with; later tier changes never touch
// them. Computing twice for one attribution returns ErrDuplicateCommission.
func (p *CommissionProcessor) Compute(ctx context.Context, attributionID uuid.UUID, baseAmount decimal.Decimal) ([]store.CommissionLedgerEntry, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "order_attribution_id", Value: attributionID.String()})

	attribution, err := p.store.GetOrderAttributionByID(ctx, attributionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrAttributionNotFound
		}
		p.logger.Error(ctx, "failed to load attribution", err)
		return nil, err
	}
	if attribution.Status == store.AttributionStatusReversed {
		return nil, ErrAttributionReversed
	}

	existing, err := p.store.CountLedgerEntriesByAttribution(ctx, attributionID)
	if err != nil {
		p.logger.Error(ctx, "failed to count existing ledger entries", err)
		return nil, err
	}
	if existing > 0 {
		return nil, ErrDuplicateCommission
	}

	creator, err := p.store.GetCreatorByID(ctx, attribution.CreatorID)
	if err != nil {
		p.logger.Error(ctx, "failed to load attributed creator", err)
		return nil, err
	}

	tier := p.program.TierByRank(creator.Tier)

	direct, err := p.store.CreateLedgerEntry(ctx, store.CreateLedgerEntryParams{
		CreatorID:          creator.ID,
		OrderAttributionID: attributionID,
		CommissionType:     store.CommissionTypeDirect,
		CommissionRate:     tier.DirectRate,
		BaseAmount:         baseAmount,
		CommissionAmount:   CommissionAmount(baseAmount, tier.DirectRate),
	})
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			// Lost the race against a concurrent compute for the same order.
			p.logger.InfoWithError(ctx, "commissions already computed", err)
			return nil, ErrDuplicateCommission
		}
		p.logger.Error(ctx, "failed to create direct ledger entry", err)
		return nil, err
	}

	entries := []store.CommissionLedgerEntry{direct}

	if override, ok := p.computeOverride(ctx, creator, attributionID, baseAmount); ok {
		entries = append(entries, override)
	}

	// Commissions are on the books, the attribution is settled.
	if attribution.Status == store.AttributionStatusPending {
		if err := p.store.UpdateOrderAttributionStatus(ctx, attributionID, store.AttributionStatusPending, store.AttributionStatusConfirmed); err != nil {
			p.logger.Error(ctx, "failed to confirm attribution", err)
		}
	}

	return entries, nil
}

// computeOverride writes the recruiter's cut when one exists. Override
// failures never undo the direct entry; a missing override is reconciled
// manually rather than by clawing back the creator's commission.
func (p *CommissionProcessor) computeOverride(ctx context.Context, creator store.Creator, attributionID uuid.UUID, baseAmount decimal.Decimal) (store.CommissionLedgerEntry, bool) {
	if creator.RecruitedBy == nil {
		return store.CommissionLedgerEntry{}, false
	}

	recruiter, err := p.store.GetCreatorByID(ctx, *creator.RecruitedBy)
	if err != nil {
		p.logger.Error(ctx, "failed to load recruiter for override", err)
		return store.CommissionLedgerEntry{}, false
	}
	if recruiter.OverrideRate.IsZero() {
		return store.CommissionLedgerEntry{}, false
	}

	override, err := p.store.CreateLedgerEntry(ctx, store.CreateLedgerEntryParams{
		CreatorID:          recruiter.ID,
		OrderAttributionID: attributionID,
		CommissionType:     store.CommissionTypeOverride,
		CommissionRate:     recruiter.OverrideRate,
		BaseAmount:         baseAmount,
		CommissionAmount:   CommissionAmount(baseAmount, recruiter.OverrideRate),
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create override ledger entry", err)
		return store.CommissionLedgerEntry{}, false
	}
	return override, true
}

// CommissionAmount is base * rate%, rounded half-up to cents. Always
// decimal arithmetic; binary floats drift across enough orders to matter
// on a real ledger.
func CommissionAmount(base decimal.Decimal, ratePercent decimal.Decimal) decimal.Decimal {
	return base.Mul(ratePercent).Div(decimal.NewFromInt(100)).Round(2)
}
