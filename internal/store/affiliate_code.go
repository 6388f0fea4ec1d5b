package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateAffiliateCodeParams represents parameters for creating an affiliate code
type CreateAffiliateCodeParams struct {
	CreatorID     uuid.UUID
	Code          string
	DiscountType  string
	DiscountValue decimal.Decimal
	IsPrimary     bool
}

const sqlDemotePrimaryCode = `
UPDATE affiliate_codes
SET is_primary = FALSE, updated_at = CURRENT_TIMESTAMP
WHERE creator_id = $1 AND is_primary = TRUE
`

const sqlCreateAffiliateCode = `
INSERT INTO affiliate_codes (creator_id, code, discount_type, discount_value, is_primary)
VALUES ($1, LOWER($2), $3, $4, $5)
RETURNING id, creator_id, code, discount_type, discount_value, is_primary, active, use_count, total_revenue, created_at, updated_at
`

// CreateAffiliateCode creates an affiliate code for a creator. Codes are
// stored lowercased so lookups are case-insensitive. When the new code is
// primary, the creator's previous primary is demoted in the same transaction
// so at most one primary exists.
func (s *Store) CreateAffiliateCode(ctx context.Context, params CreateAffiliateCodeParams) (AffiliateCode, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return AffiliateCode{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if params.IsPrimary {
		if _, err := tx.ExecContext(ctx, sqlDemotePrimaryCode, params.CreatorID); err != nil {
			s.logger.Error(ctx, "failed to demote primary code", err)
			return AffiliateCode{}, fmt.Errorf("failed to demote primary code: %w", err)
		}
	}

	var code AffiliateCode
	err = tx.GetContext(ctx, &code, sqlCreateAffiliateCode,
		params.CreatorID,
		params.Code,
		params.DiscountType,
		params.DiscountValue,
		params.IsPrimary)
	if err != nil {
		if isUniqueViolation(err) {
			return AffiliateCode{}, ErrDuplicate
		}
		s.logger.Error(ctx, "failed to create affiliate code", err)
		return AffiliateCode{}, fmt.Errorf("failed to create affiliate code: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return AffiliateCode{}, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return code, nil
}

const sqlGetActiveAffiliateCodeByCode = `
SELECT id, creator_id, code, discount_type, discount_value, is_primary, active, use_count, total_revenue, created_at, updated_at
FROM affiliate_codes
WHERE code = LOWER($1) AND active = TRUE
`

// GetActiveAffiliateCodeByCode retrieves an active code, case-insensitively
func (s *Store) GetActiveAffiliateCodeByCode(ctx context.Context, code string) (AffiliateCode, error) {
	var affiliateCode AffiliateCode
	err := s.db.GetContext(ctx, &affiliateCode, sqlGetActiveAffiliateCodeByCode, code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return AffiliateCode{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get affiliate code", err)
		return AffiliateCode{}, fmt.Errorf("failed to get affiliate code: %w", err)
	}
	return affiliateCode, nil
}

const sqlIncrementAffiliateCodeUsage = `
UPDATE affiliate_codes
SET use_count = use_count + 1,
    total_revenue = total_revenue + $2,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1
`

// IncrementAffiliateCodeUsage atomically records one use of a code and the
// revenue it drove. Storage-level increment, never read-modify-write.
func (s *Store) IncrementAffiliateCodeUsage(ctx context.Context, codeID uuid.UUID, revenue decimal.Decimal) error {
	res, err := s.db.ExecContext(ctx, sqlIncrementAffiliateCodeUsage, codeID, revenue)
	if err != nil {
		s.logger.Error(ctx, "failed to increment affiliate code usage", err)
		return fmt.Errorf("failed to increment affiliate code usage: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

const sqlListAffiliateCodesByCreator = `
SELECT id, creator_id, code, discount_type, discount_value, is_primary, active, use_count, total_revenue, created_at, updated_at
FROM affiliate_codes
WHERE creator_id = $1
ORDER BY created_at DESC
`

// ListAffiliateCodesByCreator retrieves all codes owned by a creator
func (s *Store) ListAffiliateCodesByCreator(ctx context.Context, creatorID uuid.UUID) ([]AffiliateCode, error) {
	var codes []AffiliateCode
	err := s.db.SelectContext(ctx, &codes, sqlListAffiliateCodesByCreator, creatorID)
	if err != nil {
		s.logger.Error(ctx, "failed to list affiliate codes", err)
		return nil, fmt.Errorf("failed to list affiliate codes: %w", err)
	}
	return codes, nil
}

const sqlSetAffiliateCodeActive = `
UPDATE affiliate_codes
SET active = $2, updated_at = CURRENT_TIMESTAMP
WHERE id = $1
`

// SetAffiliateCodeActive enables or disables a code
func (s *Store) SetAffiliateCodeActive(ctx context.Context, codeID uuid.UUID, active bool) error {
	res, err := s.db.ExecContext(ctx, sqlSetAffiliateCodeActive, codeID, active)
	if err != nil {
		s.logger.Error(ctx, "failed to set affiliate code active", err)
		return fmt.Errorf("failed to set affiliate code active: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}
