package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SettleCreatorPayoutParams represents parameters for settling one creator
type SettleCreatorPayoutParams struct {
	CreatorID    uuid.UUID
	PeriodStart  time.Time
	PeriodEnd    time.Time
	PayoutMethod string
}

const sqlLockApprovedEntries = `
SELECT id, commission_amount
FROM commission_ledger_entries
WHERE creator_id = $1 AND status = 'approved'
ORDER BY created_at
FOR UPDATE
`

const sqlCreatePayout = `
INSERT INTO payouts (creator_id, amount, period_start, period_end, payout_method, commission_count)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, creator_id, amount, period_start, period_end, payout_method, commission_count, created_at
`

const sqlMarkEntriesPaid = `
UPDATE commission_ledger_entries
SET status = 'paid', payout_id = $1, updated_at = CURRENT_TIMESTAMP
WHERE id = ANY($2::uuid[]) AND status = 'approved'
`

// SettleCreatorPayout settles every approved entry of one creator into a
// single payout inside one transaction: all of the creator's approved
// balance or none of it. Entries are locked first so a concurrent sweep
// cannot move them mid-settlement.
func (s *Store) SettleCreatorPayout(ctx context.Context, params SettleCreatorPayoutParams) (Payout, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return Payout{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var locked []struct {
		ID               uuid.UUID       `db:"id"`
		CommissionAmount decimal.Decimal `db:"commission_amount"`
	}
	if err := tx.SelectContext(ctx, &locked, sqlLockApprovedEntries, params.CreatorID); err != nil {
		s.logger.Error(ctx, "failed to lock approved entries", err)
		return Payout{}, fmt.Errorf("failed to lock approved entries: %w", err)
	}
	if len(locked) == 0 {
		return Payout{}, ErrNotFound
	}

	total := decimal.Zero
	ids := make([]string, len(locked))
	for i, entry := range locked {
		total = total.Add(entry.CommissionAmount)
		ids[i] = entry.ID.String()
	}

	var payout Payout
	err = tx.GetContext(ctx, &payout, sqlCreatePayout,
		params.CreatorID,
		total,
		params.PeriodStart,
		params.PeriodEnd,
		params.PayoutMethod,
		len(locked))
	if err != nil {
		s.logger.Error(ctx, "failed to create payout", err)
		return Payout{}, fmt.Errorf("failed to create payout: %w", err)
	}

	res, err := tx.ExecContext(ctx, sqlMarkEntriesPaid, payout.ID, ids)
	if err != nil {
		s.logger.Error(ctx, "failed to mark entries paid", err)
		return Payout{}, fmt.Errorf("failed to mark entries paid: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return Payout{}, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows != int64(len(ids)) {
		// An entry changed status under the lock, which should not happen.
		// Abort so the invariant "paid sum equals payout amount" holds.
		return Payout{}, fmt.Errorf("expected %d entries paid, got %d: %w", len(ids), rows, ErrInvalidState)
	}

	if err := tx.Commit(); err != nil {
		return Payout{}, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return payout, nil
}

const sqlListPayoutsByCreator = `
SELECT id, creator_id, amount, period_start, period_end, payout_method, commission_count, created_at
FROM payouts
WHERE creator_id = $1
ORDER BY created_at DESC
`

// ListPayoutsByCreator retrieves a creator's payout history
func (s *Store) ListPayoutsByCreator(ctx context.Context, creatorID uuid.UUID) ([]Payout, error) {
	var payouts []Payout
	err := s.db.SelectContext(ctx, &payouts, sqlListPayoutsByCreator, creatorID)
	if err != nil {
		s.logger.Error(ctx, "failed to list payouts by creator", err)
		return nil, fmt.Errorf("failed to list payouts by creator: %w", err)
	}
	return payouts, nil
}
