package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"
	"time"

	"affiliate-server/internal/store"

	"github.com/google/uuid"
)

// AnalyticsStore defines the database operations required by AnalyticsProcessor
type AnalyticsStore interface {
	GetCreatorByID(ctx context.Context, creatorID uuid.UUID) (store.Creator, error)
	GetCreatorMetrics(ctx context.Context, creatorID uuid.UUID, from, to time.Time) (store.CreatorMetrics, error)
	ListLedgerEntriesByCreator(ctx context.Context, creatorID uuid.UUID, status *store.LedgerStatus, limit, offset int) ([]store.CommissionLedgerEntry, error)
	CountLedgerEntriesByCreator(ctx context.Context, creatorID uuid.UUID, status *store.LedgerStatus) (int, error)
}
