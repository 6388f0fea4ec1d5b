package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"
	"time"

	"affiliate-server/internal/store"

	"github.com/google/uuid"
)

// ClickStore defines the database operations required by ClickProcessor
type ClickStore interface {
	GetTrackingLinkBySlug(ctx context.Context, slug string) (store.TrackingLink, error)
	IncrementLinkClickCount(ctx context.Context, linkID uuid.UUID) error
	CreateClickEvent(ctx context.Context, params store.CreateClickEventParams) (store.ClickEvent, error)
}

// Deduper answers whether a click key was already seen inside a window.
// The redis client implements it; a nil client never dedupes.
type Deduper interface {
	SeenRecently(ctx context.Context, key string, window time.Duration) (bool, error)
}
