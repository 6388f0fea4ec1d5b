package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"
	"time"

	"affiliate-server/internal/store"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SweepStore defines the database operations required by SweepProcessor
type SweepStore interface {
	ApproveMaturedLedgerEntries(ctx context.Context, cutoff time.Time) (int64, error)
	ListActiveCreators(ctx context.Context) ([]store.Creator, error)
	UpdateCreatorTier(ctx context.Context, creatorID uuid.UUID, tier int, overrideRate decimal.Decimal) error
}
