package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreatorMetrics aggregates one creator's performance over a period
type CreatorMetrics struct {
	Clicks      int             `db:"clicks"`
	Orders      int             `db:"orders"`
	Revenue     decimal.Decimal `db:"revenue"`
	Commission  decimal.Decimal `db:"commission"`
	Conversions int             `db:"conversions"`
}

const sqlGetCreatorMetrics = `
SELECT
    (SELECT COUNT(*)
     FROM click_events
     WHERE creator_id = $1 AND created_at >= $2 AND created_at < $3) AS clicks,
    (SELECT COUNT(*)
     FROM click_events
     WHERE creator_id = $1 AND converted_at >= $2 AND converted_at < $3) AS conversions,
    (SELECT COUNT(*)
     FROM order_attributions
     WHERE creator_id = $1 AND status != 'reversed'
       AND created_at >= $2 AND created_at < $3) AS orders,
    (SELECT COALESCE(SUM(base_amount), 0)
     FROM commission_ledger_entries
     WHERE creator_id = $1 AND commission_type = 'direct' AND status != 'reversed'
       AND created_at >= $2 AND created_at < $3) AS revenue,
    (SELECT COALESCE(SUM(commission_amount), 0)
     FROM commission_ledger_entries
     WHERE creator_id = $1 AND status != 'reversed'
       AND created_at >= $2 AND created_at < $3) AS commission
`

// GetCreatorMetrics aggregates clicks, conversions, attributed orders,
// revenue and commission for one creator over [from, to). Reversed
// attributions and entries are excluded.
func (s *Store) GetCreatorMetrics(ctx context.Context, creatorID uuid.UUID, from, to time.Time) (CreatorMetrics, error) {
	var metrics CreatorMetrics
	err := s.db.GetContext(ctx, &metrics, sqlGetCreatorMetrics, creatorID, from, to)
	if err != nil {
		s.logger.Error(ctx, "failed to get creator metrics", err)
		return CreatorMetrics{}, fmt.Errorf("failed to get creator metrics: %w", err)
	}
	return metrics, nil
}
