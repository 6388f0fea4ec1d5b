package processor

import (
	"context"
	"errors"
	"time"

	"affiliate-server/internal/observability"
	"affiliate-server/internal/store"

	"github.com/google/uuid"
)

var (
	ErrCreatorNotFound = errors.New("creator not found")
	ErrInvalidStatus   = errors.New("invalid ledger status filter")
	ErrInvalidPeriod   = errors.New("period start must precede period end")
)

type AnalyticsProcessor struct {
	store  AnalyticsStore
	logger *observability.Logger
}

func New(store AnalyticsStore, logger *observability.Logger) AnalyticsProcessor {
	return AnalyticsProcessor{
		store:  store,
		logger: logger,
	}
}

// MetricsRequest selects the reporting period, [From, To).
type MetricsRequest struct {
	CreatorID uuid.UUID
	From      time.Time
	To        time.Time
}

// GetMetrics returns a creator's clicks, orders, revenue and commission
// for a period.
func (p *AnalyticsProcessor) GetMetrics(ctx context.Context, req MetricsRequest) (store.CreatorMetrics, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "creator_id", Value: req.CreatorID.String()})

	if !req.From.Before(req.To) {
		return store.CreatorMetrics{}, ErrInvalidPeriod
	}

	if _, err := p.store.GetCreatorByID(ctx, req.CreatorID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.CreatorMetrics{}, ErrCreatorNotFound
		}
		p.logger.Error(ctx, "failed to load creator", err)
		return store.CreatorMetrics{}, err
	}

	metrics, err := p.store.GetCreatorMetrics(ctx, req.CreatorID, req.From, req.To)
	if err != nil {
		p.logger.Error(ctx, "failed to compute creator metrics", err)
		return store.CreatorMetrics{}, err
	}
	return metrics, nil
}

// ListLedgerRequest represents parameters for listing ledger entries
type ListLedgerRequest struct {
	CreatorID uuid.UUID
	Status    *string
	Page      int
	Limit     int
}

// ListLedgerResponse represents the paginated ledger listing
type ListLedgerResponse struct {
	Entries    []store.CommissionLedgerEntry `json:"entries"`
	Pagination Pagination                    `json:"pagination"`
}

// Pagination represents pagination metadata
type Pagination struct {
	HasMore    bool `json:"has_more"`
	TotalCount int  `json:"total_count"`
}

// ListLedger returns a creator's ledger entries, optionally filtered by
// status, newest first.
func (p *AnalyticsProcessor) ListLedger(ctx context.Context, req ListLedgerRequest) (ListLedgerResponse, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "creator_id", Value: req.CreatorID.String()})

	if req.Page < 1 {
		req.Page = 1
	}
	if req.Limit < 1 || req.Limit > 100 {
		req.Limit = 20
	}

	var status *store.LedgerStatus
	if req.Status != nil {
		s := store.LedgerStatus(*req.Status)
		if !s.Valid() {
			return ListLedgerResponse{}, ErrInvalidStatus
		}
		status = &s
	}

	if _, err := p.store.GetCreatorByID(ctx, req.CreatorID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ListLedgerResponse{}, ErrCreatorNotFound
		}
		p.logger.Error(ctx, "failed to load creator", err)
		return ListLedgerResponse{}, err
	}

	offset := (req.Page - 1) * req.Limit

	entries, err := p.store.ListLedgerEntriesByCreator(ctx, req.CreatorID, status, req.Limit, offset)
	if err != nil {
		p.logger.Error(ctx, "failed to list ledger entries", err)
		return ListLedgerResponse{}, err
	}
	if entries == nil {
		entries = []store.CommissionLedgerEntry{}
	}

	totalCount, err := p.store.CountLedgerEntriesByCreator(ctx, req.CreatorID, status)
	if err != nil {
		p.logger.Error(ctx, "failed to count ledger entries", err)
		return ListLedgerResponse{}, err
	}

	return ListLedgerResponse{
		Entries: entries,
		Pagination: Pagination{
			HasMore:    (req.Page * req.Limit) < totalCount,
			TotalCount: totalCount,
		},
	}, nil
}
