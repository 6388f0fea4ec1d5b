package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// CreateTrackingLinkParams represents parameters for creating a tracking link
type CreateTrackingLinkParams struct {
	CreatorID       uuid.UUID
	Slug            string
	DestinationPath string
	IsDefault       bool
}

const sqlDemoteDefaultLink = `
UPDATE tracking_links
SET is_default = FALSE, updated_at = CURRENT_TIMESTAMP
WHERE creator_id = $1 AND is_default = TRUE
`

const sqlCreateTrackingLink = `
INSERT INTO tracking_links (creator_id, slug, destination_path, is_default)
VALUES ($1, $2, $3, $4)
RETURNING id, creator_id, slug, destination_path, click_count, conversion_count, is_default, created_at, updated_at
`

// CreateTrackingLink creates a tracking link. When the new link is the
// default, any previous default for the creator is demoted in the same
// transaction so exactly one default remains.
func (s *Store) CreateTrackingLink(ctx context.Context, params CreateTrackingLinkParams) (TrackingLink, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return TrackingLink{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if params.IsDefault {
		if _, err := tx.ExecContext(ctx, sqlDemoteDefaultLink, params.CreatorID); err != nil {
			s.logger.Error(ctx, "failed to demote default link", err)
			return TrackingLink{}, fmt.Errorf("failed to demote default link: %w", err)
		}
	}

	var link TrackingLink
	err = tx.GetContext(ctx, &link, sqlCreateTrackingLink,
		params.CreatorID,
		params.Slug,
		params.DestinationPath,
		params.IsDefault)
	if err != nil {
		if isUniqueViolation(err) {
			return TrackingLink{}, ErrDuplicate
		}
		s.logger.Error(ctx, "failed to create tracking link", err)
		return TrackingLink{}, fmt.Errorf("failed to create tracking link: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return TrackingLink{}, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return link, nil
}

const sqlGetTrackingLinkBySlug = `
SELECT id, creator_id, slug, destination_path, click_count, conversion_count, is_default, created_at, updated_at
FROM tracking_links
WHERE slug = $1
`

// GetTrackingLinkBySlug retrieves a tracking link by its globally unique slug
func (s *Store) GetTrackingLinkBySlug(ctx context.Context, slug string) (TrackingLink, error) {
	var link TrackingLink
	err := s.db.GetContext(ctx, &link, sqlGetTrackingLinkBySlug, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return TrackingLink{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get tracking link by slug", err)
		return TrackingLink{}, fmt.Errorf("failed to get tracking link by slug: %w", err)
	}
	return link, nil
}

const sqlIncrementLinkClickCount = `
UPDATE tracking_links
SET click_count = click_count + 1, updated_at = CURRENT_TIMESTAMP
WHERE id = $1
`

// IncrementLinkClickCount atomically bumps a link's click counter. A single
// storage-level increment so concurrent hits on a viral link never lose
// updates.
func (s *Store) IncrementLinkClickCount(ctx context.Context, linkID uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, sqlIncrementLinkClickCount, linkID)
	if err != nil {
		s.logger.Error(ctx, "failed to increment link click count", err)
		return fmt.Errorf("failed to increment link click count: %w", err)
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

const sqlIncrementLinkConversionCount = `
UPDATE tracking_links
SET conversion_count = conversion_count + 1, updated_at = CURRENT_TIMESTAMP
WHERE id = $1
`

// IncrementLinkConversionCount atomically bumps a link's conversion counter
func (s *Store) IncrementLinkConversionCount(ctx context.Context, linkID uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, sqlIncrementLinkConversionCount, linkID)
	if err != nil {
		s.logger.Error(ctx, "failed to increment link conversion count", err)
		return fmt.Errorf("failed to increment link conversion count: %w", err)
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

const sqlListTrackingLinksByCreator = `
SELECT id, creator_id, slug, destination_path, click_count, conversion_count, is_default, created_at, updated_at
FROM tracking_links
WHERE creator_id = $1
ORDER BY created_at DESC
`

// ListTrackingLinksByCreator retrieves all links owned by a creator
func (s *Store) ListTrackingLinksByCreator(ctx context.Context, creatorID uuid.UUID) ([]TrackingLink, error) {
	var links []TrackingLink
	err := s.db.SelectContext(ctx, &links, sqlListTrackingLinksByCreator, creatorID)
	if err != nil {
		s.logger.Error(ctx, "failed to list tracking links", err)
		return nil, fmt.Errorf("failed to list tracking links: %w", err)
	}
	return links, nil
}
