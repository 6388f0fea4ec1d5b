package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"

	"affiliate-server/internal/store"

	"github.com/google/uuid"
)

// CommissionStore defines the database operations required by CommissionProcessor
type CommissionStore interface {
	GetOrderAttributionByID(ctx context.Context, attributionID uuid.UUID) (store.OrderAttribution, error)
	GetCreatorByID(ctx context.Context, creatorID uuid.UUID) (store.Creator, error)
	CountLedgerEntriesByAttribution(ctx context.Context, attributionID uuid.UUID) (int, error)
	CreateLedgerEntry(ctx context.Context, params store.CreateLedgerEntryParams) (store.CommissionLedgerEntry, error)
	UpdateOrderAttributionStatus(ctx context.Context, attributionID uuid.UUID, from, to store.AttributionStatus) error
}
