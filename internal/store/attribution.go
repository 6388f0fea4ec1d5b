package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// CreateOrderAttributionParams represents parameters for creating an attribution
type CreateOrderAttributionParams struct {
	OrderID   string
	CreatorID uuid.UUID
	Method    AttributionMethod
}

const sqlCreateOrderAttribution = `
INSERT INTO order_attributions (order_id, creator_id, attribution_method, status)
VALUES ($1, $2, $3, 'pending')
RETURNING id, order_id, creator_id, attribution_method, status, created_at, updated_at
`

// CreateOrderAttribution creates the single attribution for an order. The
// partial unique index on order_id over non-reversed rows is the per-order
// concurrency gate: a second concurrent attempt gets ErrDuplicate instead of
// double-crediting.
func (s *Store) CreateOrderAttribution(ctx context.Context, params CreateOrderAttributionParams) (OrderAttribution, error) {
	var attribution OrderAttribution
	err := s.db.GetContext(ctx, &attribution, sqlCreateOrderAttribution,
		params.OrderID,
		params.CreatorID,
		params.Method)
	if err != nil {
		if isUniqueViolation(err) {
			return OrderAttribution{}, ErrDuplicate
		}
		s.logger.Error(ctx, "failed to create order attribution", err)
		return OrderAttribution{}, fmt.Errorf("failed to create order attribution: %w", err)
	}
	return attribution, nil
}

const sqlGetOrderAttributionByID = `
SELECT id, order_id, creator_id, attribution_method, status, created_at, updated_at
FROM order_attributions
WHERE id = $1
`

// GetOrderAttributionByID retrieves an attribution by ID
func (s *Store) GetOrderAttributionByID(ctx context.Context, attributionID uuid.UUID) (OrderAttribution, error) {
	var attribution OrderAttribution
	err := s.db.GetContext(ctx, &attribution, sqlGetOrderAttributionByID, attributionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return OrderAttribution{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get order attribution by id", err)
		return OrderAttribution{}, fmt.Errorf("failed to get order attribution by id: %w", err)
	}
	return attribution, nil
}

const sqlGetOrderAttributionByOrderID = `
SELECT id, order_id, creator_id, attribution_method, status, created_at, updated_at
FROM order_attributions
WHERE order_id = $1 AND status != 'reversed'
`

// GetOrderAttributionByOrderID retrieves the non-reversed attribution for an
// order, if one exists
func (s *Store) GetOrderAttributionByOrderID(ctx context.Context, orderID string) (OrderAttribution, error) {
	var attribution OrderAttribution
	err := s.db.GetContext(ctx, &attribution, sqlGetOrderAttributionByOrderID, orderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return OrderAttribution{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get order attribution by order id", err)
		return OrderAttribution{}, fmt.Errorf("failed to get order attribution by order id: %w", err)
	}
	return attribution, nil
}

const sqlUpdateOrderAttributionStatus = `
UPDATE order_attributions
SET status = $2, updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND status = $3
`

// UpdateOrderAttributionStatus moves an attribution through its state
// machine, re-checking the current status inside the UPDATE.
func (s *Store) UpdateOrderAttributionStatus(ctx context.Context, attributionID uuid.UUID, from, to AttributionStatus) error {
	if !from.CanTransitionTo(to) {
		return fmt.Errorf("attribution status %s -> %s: %w", from, to, ErrInvalidState)
	}

	res, err := s.db.ExecContext(ctx, sqlUpdateOrderAttributionStatus, attributionID, to, from)
	if err != nil {
		s.logger.Error(ctx, "failed to update order attribution status", err)
		return fmt.Errorf("failed to update order attribution status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		if _, getErr := s.GetOrderAttributionByID(ctx, attributionID); getErr != nil {
			return getErr
		}
		return fmt.Errorf("attribution status %s -> %s: %w", from, to, ErrInvalidState)
	}

	return nil
}
