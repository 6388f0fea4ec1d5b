package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateLedgerEntryParams represents parameters for writing one commission fact
type CreateLedgerEntryParams struct {
	CreatorID          uuid.UUID
	OrderAttributionID uuid.UUID
	CommissionType     CommissionType
	CommissionRate     decimal.Decimal
	BaseAmount         decimal.Decimal
	CommissionAmount   decimal.Decimal
}

const sqlCreateLedgerEntry = `
INSERT INTO commission_ledger_entries
    (creator_id, order_attribution_id, commission_type, commission_rate, base_amount, commission_amount, status)
VALUES ($1, $2, $3, $4, $5, $6, 'pending')
RETURNING id, creator_id, order_attribution_id, commission_type, commission_rate, base_amount, commission_amount, status, payout_id, created_at, updated_at
`

// CreateLedgerEntry writes one pending commission entry. The unique index on
// (order_attribution_id, commission_type) rejects double-computation at the
// storage layer.
func (s *Store) CreateLedgerEntry(ctx context.Context, params CreateLedgerEntryParams) (CommissionLedgerEntry, error) {
	var entry CommissionLedgerEntry
	err := s.db.GetContext(ctx, &entry, sqlCreateLedgerEntry,
		params.CreatorID,
		params.OrderAttributionID,
		params.CommissionType,
		params.CommissionRate,
		params.BaseAmount,
		params.CommissionAmount)
	if err != nil {
		if isUniqueViolation(err) {
			return CommissionLedgerEntry{}, ErrDuplicate
		}
		s.logger.Error(ctx, "failed to create ledger entry", err)
		return CommissionLedgerEntry{}, fmt.Errorf("failed to create ledger entry: %w", err)
	}
	return entry, nil
}

const sqlListLedgerEntriesByAttribution = `
SELECT id, creator_id, order_attribution_id, commission_type, commission_rate, base_amount, commission_amount, status, payout_id, created_at, updated_at
FROM commission_ledger_entries
WHERE order_attribution_id = $1
ORDER BY created_at
`

// ListLedgerEntriesByAttribution retrieves every entry tied to one attribution
func (s *Store) ListLedgerEntriesByAttribution(ctx context.Context, attributionID uuid.UUID) ([]CommissionLedgerEntry, error) {
	var entries []CommissionLedgerEntry
	err := s.db.SelectContext(ctx, &entries, sqlListLedgerEntriesByAttribution, attributionID)
	if err != nil {
		s.logger.Error(ctx, "failed to list ledger entries by attribution", err)
		return nil, fmt.Errorf("failed to list ledger entries by attribution: %w", err)
	}
	return entries, nil
}

const sqlCountLedgerEntriesByAttribution = `
SELECT COUNT(*)
FROM commission_ledger_entries
WHERE order_attribution_id = $1
`

// CountLedgerEntriesByAttribution counts entries tied to one attribution
func (s *Store) CountLedgerEntriesByAttribution(ctx context.Context, attributionID uuid.UUID) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count, sqlCountLedgerEntriesByAttribution, attributionID)
	if err != nil {
		s.logger.Error(ctx, "failed to count ledger entries", err)
		return 0, fmt.Errorf("failed to count ledger entries: %w", err)
	}
	return count, nil
}

const sqlReverseUnpaidLedgerEntries = `
UPDATE commission_ledger_entries
SET status = 'reversed', updated_at = CURRENT_TIMESTAMP
WHERE order_attribution_id = $1 AND status IN ('pending', 'approved')
`

// ReverseUnpaidLedgerEntries flips every non-paid entry of an attribution to
// reversed. Paid entries are left untouched: money already sent requires a
// manual offsetting entry.
func (s *Store) ReverseUnpaidLedgerEntries(ctx context.Context, attributionID uuid.UUID) (int64, error) {
	res, err := s.db.ExecContext(ctx, sqlReverseUnpaidLedgerEntries, attributionID)
	if err != nil {
		s.logger.Error(ctx, "failed to reverse ledger entries", err)
		return 0, fmt.Errorf("failed to reverse ledger entries: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows, nil
}

const sqlApproveMaturedLedgerEntries = `
UPDATE commission_ledger_entries e
SET status = 'approved', updated_at = CURRENT_TIMESTAMP
FROM order_attributions a
WHERE e.order_attribution_id = a.id
  AND e.status = 'pending'
  AND a.status != 'reversed'
  AND e.created_at <= $1
`

// ApproveMaturedLedgerEntries transitions pending entries created on or
// before the cutoff to approved, skipping entries whose attribution has been
// reversed. Safe to run repeatedly: already-approved entries no longer match.
func (s *Store) ApproveMaturedLedgerEntries(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx, sqlApproveMaturedLedgerEntries, cutoff)
	if err != nil {
		s.logger.Error(ctx, "failed to approve matured ledger entries", err)
		return 0, fmt.Errorf("failed to approve matured ledger entries: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows, nil
}

const sqlListLedgerEntriesByCreator = `
SELECT id, creator_id, order_attribution_id, commission_type, commission_rate, base_amount, commission_amount, status, payout_id, created_at, updated_at
FROM commission_ledger_entries
WHERE creator_id = $1
  AND ($2::text IS NULL OR status = $2)
ORDER BY created_at DESC
LIMIT $3 OFFSET $4
`

// ListLedgerEntriesByCreator retrieves a creator's ledger with an optional
// status filter and pagination
func (s *Store) ListLedgerEntriesByCreator(ctx context.Context, creatorID uuid.UUID, status *LedgerStatus, limit, offset int) ([]CommissionLedgerEntry, error) {
	var entries []CommissionLedgerEntry
	err := s.db.SelectContext(ctx, &entries, sqlListLedgerEntriesByCreator, creatorID, status, limit, offset)
	if err != nil {
		s.logger.Error(ctx, "failed to list ledger entries by creator", err)
		return nil, fmt.Errorf("failed to list ledger entries by creator: %w", err)
	}
	return entries, nil
}

const sqlCountLedgerEntriesByCreator = `
SELECT COUNT(*)
FROM commission_ledger_entries
WHERE creator_id = $1
  AND ($2::text IS NULL OR status = $2)
`

// CountLedgerEntriesByCreator counts a creator's ledger entries with an
// optional status filter
func (s *Store) CountLedgerEntriesByCreator(ctx context.Context, creatorID uuid.UUID, status *LedgerStatus) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count, sqlCountLedgerEntriesByCreator, creatorID, status)
	if err != nil {
		s.logger.Error(ctx, "failed to count ledger entries by creator", err)
		return 0, fmt.Errorf("failed to count ledger entries by creator: %w", err)
	}
	return count, nil
}

// ApprovedLedgerSummary is the payable balance of one creator
type ApprovedLedgerSummary struct {
	EntryCount int             `db:"entry_count"`
	Total      decimal.Decimal `db:"total"`
}

const sqlGetApprovedLedgerSummary = `
SELECT COUNT(*) AS entry_count, COALESCE(SUM(commission_amount), 0) AS total
FROM commission_ledger_entries
WHERE creator_id = $1 AND status = 'approved'
`

// GetApprovedLedgerSummary returns the count and sum of a creator's approved
// entries
func (s *Store) GetApprovedLedgerSummary(ctx context.Context, creatorID uuid.UUID) (ApprovedLedgerSummary, error) {
	var summary ApprovedLedgerSummary
	err := s.db.GetContext(ctx, &summary, sqlGetApprovedLedgerSummary, creatorID)
	if err != nil {
		s.logger.Error(ctx, "failed to get approved ledger summary", err)
		return ApprovedLedgerSummary{}, fmt.Errorf("failed to get approved ledger summary: %w", err)
	}
	return summary, nil
}
