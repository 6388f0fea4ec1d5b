package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// CreateClickEventParams represents parameters for recording a click
type CreateClickEventParams struct {
	Token     string
	CreatorID uuid.UUID
	LinkID    uuid.UUID
	IP        string
	UserAgent string
	Referer   string
	SessionID string
}

const sqlCreateClickEvent = `
INSERT INTO click_events (token, creator_id, link_id, ip, user_agent, referer, session_id)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, token, creator_id, link_id, ip, user_agent, referer, session_id, created_at, converted_at
`

// CreateClickEvent records one tracked redirect as an immutable fact
func (s *Store) CreateClickEvent(ctx context.Context, params CreateClickEventParams) (ClickEvent, error) {
	var event ClickEvent
	err := s.db.GetContext(ctx, &event, sqlCreateClickEvent,
		params.Token,
		params.CreatorID,
		params.LinkID,
		params.IP,
		params.UserAgent,
		params.Referer,
		params.SessionID)
	if err != nil {
		if isUniqueViolation(err) {
			return ClickEvent{}, ErrDuplicate
		}
		s.logger.Error(ctx, "failed to create click event", err)
		return ClickEvent{}, fmt.Errorf("failed to create click event: %w", err)
	}
	return event, nil
}

const sqlGetClickEventByToken = `
SELECT id, token, creator_id, link_id, ip, user_agent, referer, session_id, created_at, converted_at
FROM click_events
WHERE token = $1
`

// GetClickEventByToken retrieves a click event by its opaque token
func (s *Store) GetClickEventByToken(ctx context.Context, token string) (ClickEvent, error) {
	var event ClickEvent
	err := s.db.GetContext(ctx, &event, sqlGetClickEventByToken, token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ClickEvent{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get click event by token", err)
		return ClickEvent{}, fmt.Errorf("failed to get click event by token: %w", err)
	}
	return event, nil
}

const sqlMarkClickEventConverted = `
UPDATE click_events
SET converted_at = CURRENT_TIMESTAMP
WHERE token = $1 AND converted_at IS NULL
`

// MarkClickEventConverted sets converted_at on a click event, once. Calling
// it again for an already-converted click is a no-op, which keeps order
// resolution idempotent.
func (s *Store) MarkClickEventConverted(ctx context.Context, token string) error {
	_, err := s.db.ExecContext(ctx, sqlMarkClickEventConverted, token)
	if err != nil {
		s.logger.Error(ctx, "failed to mark click event converted", err)
		return fmt.Errorf("failed to mark click event converted: %w", err)
	}
	return nil
}
