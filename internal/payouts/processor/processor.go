package processor

import (
	"context"
	"errors"
	"time"

	"affiliate-server/internal/observability"
	"affiliate-server/internal/program"
	"affiliate-server/internal/store"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	SkipReasonBelowMinimum   = "below minimum"
	SkipReasonNoPayoutMethod = "no payout method"
)

type PayoutProcessor struct {
	store   PayoutStore
	program *program.Program
	logger  *observability.Logger
}

func New(store PayoutStore, prog *program.Program, logger *observability.Logger) PayoutProcessor {
	return PayoutProcessor{
		store:   store,
		program: prog,
		logger:  logger,
	}
}

// CreatorResult is the outcome of one creator's settlement attempt.
type CreatorResult struct {
	CreatorID  uuid.UUID       `json:"creator_id"`
	PayoutID   *uuid.UUID      `json:"payout_id,omitempty"`
	Amount     decimal.Decimal `json:"amount"`
	EntryCount int             `json:"entry_count"`
	Skipped    bool            `json:"skipped"`
	SkipReason string          `json:"skip_reason,omitempty"`
	Failed     bool            `json:"failed"`
	Error      string          `json:"error,omitempty"`
}

// BatchSummary aggregates a whole run.
type BatchSummary struct {
	CreatorsSeen   int             `json:"creators_seen"`
	PayoutsCreated int             `json:"payouts_created"`
	TotalPaid      decimal.Decimal `json:"total_paid"`
	Skipped        int             `json:"skipped"`
	Failed         int             `json:"failed"`
}

// BatchResult is the caller-facing report: one row per creator plus totals.
type BatchResult struct {
	Results []CreatorResult `json:"results"`
	Summary BatchSummary    `json:"summary"`
}

// RunBatch settles every active creator's approved balance for the period.
// Each creator settles in their own transaction: all their approved entries
// flip to paid together or none do, and one creator failing never rolls
// back payouts already committed for others.
func (p *PayoutProcessor) RunBatch(ctx context.Context, periodStart, periodEnd time.Time) (BatchResult, error) {
	creators, err := p.store.ListActiveCreators(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to list active creators", err)
		return BatchResult{}, err
	}

	result := BatchResult{
		Results: make([]CreatorResult, 0, len(creators)),
		Summary: BatchSummary{CreatorsSeen: len(creators), TotalPaid: decimal.Zero},
	}

	for _, creator := range creators {
		creatorResult := p.settleCreator(ctx, creator, periodStart, periodEnd)
		result.Results = append(result.Results, creatorResult)

		switch {
		case creatorResult.Failed:
			result.Summary.Failed++
		case creatorResult.Skipped:
			result.Summary.Skipped++
		default:
			result.Summary.PayoutsCreated++
			result.Summary.TotalPaid = result.Summary.TotalPaid.Add(creatorResult.Amount)
		}
	}

	p.logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "creators_seen", Value: result.Summary.CreatorsSeen},
		observability.Field{Key: "payouts_created", Value: result.Summary.PayoutsCreated},
		observability.Field{Key: "total_paid", Value: result.Summary.TotalPaid.String()},
	), "payout batch complete")
	return result, nil
}

func (p *PayoutProcessor) settleCreator(ctx context.Context, creator store.Creator, periodStart, periodEnd time.Time) CreatorResult {
	ctx = observability.WithFields(ctx, observability.Field{Key: "creator_id", Value: creator.ID.String()})
	result := CreatorResult{CreatorID: creator.ID, Amount: decimal.Zero}

	summary, err := p.store.GetApprovedLedgerSummary(ctx, creator.ID)
	if err != nil {
		p.logger.Error(ctx, "failed to read approved balance", err)
		result.Failed = true
		result.Error = err.Error()
		return result
	}

	if summary.Total.LessThan(p.program.MinPayoutAmount) {
		result.Skipped = true
		result.SkipReason = SkipReasonBelowMinimum
		return result
	}
	if creator.PayoutMethod == nil || *creator.PayoutMethod == "" {
		result.Skipped = true
		result.SkipReason = SkipReasonNoPayoutMethod
		return result
	}

	payout, err := p.store.SettleCreatorPayout(ctx, store.SettleCreatorPayoutParams{
		CreatorID:    creator.ID,
		PeriodStart:  periodStart,
		PeriodEnd:    periodEnd,
		PayoutMethod: *creator.PayoutMethod,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Balance drained between the summary read and settlement.
			result.Skipped = true
			result.SkipReason = SkipReasonBelowMinimum
			return result
		}
		p.logger.Error(ctx, "failed to settle creator payout", err)
		result.Failed = true
		result.Error = err.Error()
		return result
	}

	result.PayoutID = &payout.ID
	result.Amount = payout.Amount
	result.EntryCount = payout.CommissionCount
	return result
}

// History returns a creator's past payouts, newest first.
func (p *PayoutProcessor) History(ctx context.Context, creatorID uuid.UUID) ([]store.Payout, error) {
	payouts, err := p.store.ListPayoutsByCreator(ctx, creatorID)
	if err != nil {
		p.logger.Error(ctx, "failed to list payouts", err)
		return nil, err
	}
	if payouts == nil {
		payouts = []store.Payout{}
	}
	return payouts, nil
}
