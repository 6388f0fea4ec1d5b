package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateCreatorParams represents parameters for creating a creator
type CreateCreatorParams struct {
	Email       string
	DisplayName string
	RecruitedBy *uuid.UUID
}

const sqlCreateCreator = `
INSERT INTO creators (email, display_name, status, recruited_by)
VALUES ($1, $2, 'pending', $3)
RETURNING id, email, display_name, status, tier, override_rate, recruit_count, payout_method, recruited_by, created_at, updated_at
`

// CreateCreator creates a new creator in pending status
func (s *Store) CreateCreator(ctx context.Context, params CreateCreatorParams) (Creator, error) {
	var creator Creator
	err := s.db.GetContext(ctx, &creator, sqlCreateCreator,
		params.Email,
		params.DisplayName,
		params.RecruitedBy)
	if err != nil {
		if isUniqueViolation(err) {
			return Creator{}, ErrDuplicate
		}
		s.logger.Error(ctx, "failed to create creator", err)
		return Creator{}, fmt.Errorf("failed to create creator: %w", err)
	}
	return creator, nil
}

const sqlGetCreatorByID = `
SELECT id, email, display_name, status, tier, override_rate, recruit_count, payout_method, recruited_by, created_at, updated_at
FROM creators
WHERE id = $1
`

// GetCreatorByID retrieves a creator by ID
func (s *Store) GetCreatorByID(ctx context.Context, creatorID uuid.UUID) (Creator, error) {
	var creator Creator
	err := s.db.GetContext(ctx, &creator, sqlGetCreatorByID, creatorID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Creator{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get creator by id", err)
		return Creator{}, fmt.Errorf("failed to get creator by id: %w", err)
	}
	return creator, nil
}

const sqlUpdateCreatorStatus = `
UPDATE creators
SET status = $2, updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND status = $3
`

// UpdateCreatorStatus moves a creator through its state machine. The current
// status is re-checked inside the UPDATE so a concurrent transition loses
// cleanly instead of clobbering.
func (s *Store) UpdateCreatorStatus(ctx context.Context, creatorID uuid.UUID, from, to CreatorStatus) error {
	if !from.CanTransitionTo(to) {
		return fmt.Errorf("creator status %s -> %s: %w", from, to, ErrInvalidState)
	}

	res, err := s.db.ExecContext(ctx, sqlUpdateCreatorStatus, creatorID, to, from)
	if err != nil {
		s.logger.Error(ctx, "failed to update creator status", err)
		return fmt.Errorf("failed to update creator status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		// Either the creator is unknown or it already left the from-status.
		if _, getErr := s.GetCreatorByID(ctx, creatorID); getErr != nil {
			return getErr
		}
		return fmt.Errorf("creator status %s -> %s: %w", from, to, ErrInvalidState)
	}

	return nil
}

const sqlSetCreatorPayoutMethod = `
UPDATE creators
SET payout_method = $2, updated_at = CURRENT_TIMESTAMP
WHERE id = $1
`

// SetCreatorPayoutMethod sets the payout method a creator is paid through
func (s *Store) SetCreatorPayoutMethod(ctx context.Context, creatorID uuid.UUID, payoutMethod string) error {
	res, err := s.db.ExecContext(ctx, sqlSetCreatorPayoutMethod, creatorID, payoutMethod)
	if err != nil {
		s.logger.Error(ctx, "failed to set creator payout method", err)
		return fmt.Errorf("failed to set creator payout method: %w", err)
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

const sqlUpdateCreatorTier = `
UPDATE creators
SET tier = $2, override_rate = $3, updated_at = CURRENT_TIMESTAMP
WHERE id = $1
`

// UpdateCreatorTier sets a creator's tier rank and the override rate derived
// from it. Already-written ledger entries keep their original rates.
func (s *Store) UpdateCreatorTier(ctx context.Context, creatorID uuid.UUID, tier int, overrideRate decimal.Decimal) error {
	res, err := s.db.ExecContext(ctx, sqlUpdateCreatorTier, creatorID, tier, overrideRate)
	if err != nil {
		s.logger.Error(ctx, "failed to update creator tier", err)
		return fmt.Errorf("failed to update creator tier: %w", err)
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

const sqlIncrementRecruitCount = `
UPDATE creators
SET recruit_count = recruit_count + 1, updated_at = CURRENT_TIMESTAMP
WHERE id = $1
`

// IncrementRecruitCount atomically bumps a recruiter's recruit count
func (s *Store) IncrementRecruitCount(ctx context.Context, creatorID uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, sqlIncrementRecruitCount, creatorID)
	if err != nil {
		s.logger.Error(ctx, "failed to increment recruit count", err)
		return fmt.Errorf("failed to increment recruit count: %w", err)
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

const sqlListActiveCreators = `
SELECT id, email, display_name, status, tier, override_rate, recruit_count, payout_method, recruited_by, created_at, updated_at
FROM creators
WHERE status = 'active'
ORDER BY created_at
`

// ListActiveCreators retrieves all active creators
func (s *Store) ListActiveCreators(ctx context.Context) ([]Creator, error) {
	var creators []Creator
	err := s.db.SelectContext(ctx, &creators, sqlListActiveCreators)
	if err != nil {
		s.logger.Error(ctx, "failed to list active creators", err)
		return nil, fmt.Errorf("failed to list active creators: %w", err)
	}
	return creators, nil
}
