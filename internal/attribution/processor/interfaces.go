package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"

	"affiliate-server/internal/store"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AttributionStore defines the database operations required by AttributionProcessor
type AttributionStore interface {
	GetActiveAffiliateCodeByCode(ctx context.Context, code string) (store.AffiliateCode, error)
	IncrementAffiliateCodeUsage(ctx context.Context, codeID uuid.UUID, revenue decimal.Decimal) error
	GetCreatorByID(ctx context.Context, creatorID uuid.UUID) (store.Creator, error)
	GetClickEventByToken(ctx context.Context, token string) (store.ClickEvent, error)
	MarkClickEventConverted(ctx context.Context, token string) error
	IncrementLinkConversionCount(ctx context.Context, linkID uuid.UUID) error
	CreateOrderAttribution(ctx context.Context, params store.CreateOrderAttributionParams) (store.OrderAttribution, error)
	GetOrderAttributionByOrderID(ctx context.Context, orderID string) (store.OrderAttribution, error)
	UpdateOrderAttributionStatus(ctx context.Context, attributionID uuid.UUID, from, to store.AttributionStatus) error
	ReverseUnpaidLedgerEntries(ctx context.Context, attributionID uuid.UUID) (int64, error)
}
