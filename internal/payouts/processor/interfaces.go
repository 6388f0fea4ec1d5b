package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"

	"affiliate-server/internal/store"

	"github.com/google/uuid"
)

// PayoutStore defines the database operations required by PayoutProcessor
type PayoutStore interface {
	ListActiveCreators(ctx context.Context) ([]store.Creator, error)
	GetApprovedLedgerSummary(ctx context.Context, creatorID uuid.UUID) (store.ApprovedLedgerSummary, error)
	SettleCreatorPayout(ctx context.Context, params store.SettleCreatorPayoutParams) (store.Payout, error)
	ListPayoutsByCreator(ctx context.Context, creatorID uuid.UUID) ([]store.Payout, error)
}
