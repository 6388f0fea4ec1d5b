package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"

	"affiliate-server/internal/store"

	"github.com/google/uuid"
)

// CreatorStore defines the database operations required by CreatorProcessor
type CreatorStore interface {
	CreateCreator(ctx context.Context, params store.CreateCreatorParams) (store.Creator, error)
	GetCreatorByID(ctx context.Context, creatorID uuid.UUID) (store.Creator, error)
	UpdateCreatorStatus(ctx context.Context, creatorID uuid.UUID, from, to store.CreatorStatus) error
	SetCreatorPayoutMethod(ctx context.Context, creatorID uuid.UUID, payoutMethod string) error
	IncrementRecruitCount(ctx context.Context, creatorID uuid.UUID) error
	GetActiveAffiliateCodeByCode(ctx context.Context, code string) (store.AffiliateCode, error)
	CreateAffiliateCode(ctx context.Context, params store.CreateAffiliateCodeParams) (store.AffiliateCode, error)
	ListAffiliateCodesByCreator(ctx context.Context, creatorID uuid.UUID) ([]store.AffiliateCode, error)
	SetAffiliateCodeActive(ctx context.Context, codeID uuid.UUID, active bool) error
	CreateTrackingLink(ctx context.Context, params store.CreateTrackingLinkParams) (store.TrackingLink, error)
	ListTrackingLinksByCreator(ctx context.Context, creatorID uuid.UUID) ([]store.TrackingLink, error)
}
