package store

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// Fixtures provides factory functions for creating test data.
// All factory methods use testify/require to fail fast on errors.
type Fixtures struct {
	t      *testing.T
	testDB *TestDB
	ctx    context.Context
}

// NewFixtures creates a new Fixtures instance for test data generation.
func NewFixtures(t *testing.T, testDB *TestDB) *Fixtures {
	t.Helper()
	return &Fixtures{
		t:      t,
		testDB: testDB,
		ctx:    context.Background(),
	}
}

// --- Creator Fixtures ---

// CreatorOpts customizes creator creation.
type CreatorOpts struct {
	Email        string
	DisplayName  string
	Status       CreatorStatus
	Tier         int
	OverrideRate decimal.Decimal
	PayoutMethod *string
	RecruitedBy  *uuid.UUID
}

// DefaultCreatorOpts returns sensible defaults for creator creation.
func DefaultCreatorOpts() CreatorOpts {
	method := "paypal"
	return CreatorOpts{
		Email:        fmt.Sprintf("creator-%s@example.com", uuid.New().String()[:8]),
		DisplayName:  "Test Creator",
		Status:       CreatorStatusActive,
		Tier:         1,
		OverrideRate: decimal.Zero,
		PayoutMethod: &method,
	}
}

// CreateCreator creates a test creator with optional customization.
// Uses raw SQL so fixtures can start in any status.
func (f *Fixtures) CreateCreator(opts ...func(*CreatorOpts)) Creator {
	f.t.Helper()
	o := DefaultCreatorOpts()
	for _, fn := range opts {
		fn(&o)
	}

	var creator Creator
	query := `INSERT INTO creators (email, display_name, status, tier, override_rate, payout_method, recruited_by)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)
	          RETURNING id, email, display_name, status, tier, override_rate, recruit_count, payout_method, recruited_by, created_at, updated_at`
	err := f.testDB.GetDB().GetContext(f.ctx, &creator, query,
		o.Email, o.DisplayName, o.Status, o.Tier, o.OverrideRate, o.PayoutMethod, o.RecruitedBy)
	require.NoError(f.t, err, "failed to create test creator")
	return creator
}

// --- Tracking Link Fixtures ---

// LinkOpts customizes tracking link creation.
type LinkOpts struct {
	CreatorID       *uuid.UUID
	Slug            string
	DestinationPath string
	IsDefault       bool
}

// CreateTrackingLink creates a test tracking link for a creator.
func (f *Fixtures) CreateTrackingLink(creatorID uuid.UUID, opts ...func(*LinkOpts)) TrackingLink {
	f.t.Helper()
	o := LinkOpts{
		Slug:            "link-" + uuid.New().String()[:8],
		DestinationPath: "/shop",
		IsDefault:       true,
	}
	for _, fn := range opts {
		fn(&o)
	}

	link, err := f.testDB.Store.CreateTrackingLink(f.ctx, CreateTrackingLinkParams{
		CreatorID:       creatorID,
		Slug:            o.Slug,
		DestinationPath: o.DestinationPath,
		IsDefault:       o.IsDefault,
	})
	require.NoError(f.t, err, "failed to create test tracking link")
	return link
}

// --- Attribution Fixtures ---

// CreateAttribution creates a pending order attribution for a creator.
func (f *Fixtures) CreateAttribution(creatorID uuid.UUID, orderID string) OrderAttribution {
	f.t.Helper()
	attribution, err := f.testDB.Store.CreateOrderAttribution(f.ctx, CreateOrderAttributionParams{
		OrderID:   orderID,
		CreatorID: creatorID,
		Method:    AttributionMethodCookie,
	})
	require.NoError(f.t, err, "failed to create test attribution")
	return attribution
}

// --- Ledger Fixtures ---

// LedgerOpts customizes ledger entry creation.
type LedgerOpts struct {
	CommissionType   CommissionType
	CommissionRate   decimal.Decimal
	BaseAmount       decimal.Decimal
	CommissionAmount decimal.Decimal
	Status           LedgerStatus
	PayoutID         *uuid.UUID
}

// CreateLedgerEntry creates a ledger entry in an arbitrary status.
func (f *Fixtures) CreateLedgerEntry(creatorID, attributionID uuid.UUID, opts ...func(*LedgerOpts)) CommissionLedgerEntry {
	f.t.Helper()
	o := LedgerOpts{
		CommissionType:   CommissionTypeDirect,
		CommissionRate:   decimal.RequireFromString("10"),
		BaseAmount:       decimal.RequireFromString("100.00"),
		CommissionAmount: decimal.RequireFromString("10.00"),
		Status:           LedgerStatusPending,
	}
	for _, fn := range opts {
		fn(&o)
	}

	var entry CommissionLedgerEntry
	query := `INSERT INTO commission_ledger_entries
	              (creator_id, order_attribution_id, commission_type, commission_rate, base_amount, commission_amount, status, payout_id)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	          RETURNING id, creator_id, order_attribution_id, commission_type, commission_rate, base_amount, commission_amount, status, payout_id, created_at, updated_at`
	err := f.testDB.GetDB().GetContext(f.ctx, &entry, query,
		creatorID, attributionID, o.CommissionType, o.CommissionRate, o.BaseAmount, o.CommissionAmount, o.Status, o.PayoutID)
	require.NoError(f.t, err, "failed to create test ledger entry")
	return entry
}

// CreatePayout creates a settled payout row to hang paid ledger entries on.
func (f *Fixtures) CreatePayout(creatorID uuid.UUID) Payout {
	f.t.Helper()
	var payout Payout
	query := `INSERT INTO payouts (creator_id, amount, period_start, period_end, payout_method, commission_count)
	          VALUES ($1, $2, CURRENT_TIMESTAMP - INTERVAL '30 days', CURRENT_TIMESTAMP, $3, $4)
	          RETURNING id, creator_id, amount, period_start, period_end, payout_method, commission_count, created_at`
	err := f.testDB.GetDB().GetContext(f.ctx, &payout, query,
		creatorID, decimal.RequireFromString("10.00"), "paypal", 1)
	require.NoError(f.t, err, "failed to create test payout")
	return payout
}

// BackdateLedgerEntry moves an entry's created_at into the past.
func (f *Fixtures) BackdateLedgerEntry(entryID uuid.UUID, interval string) {
	f.t.Helper()
	query := fmt.Sprintf(`UPDATE commission_ledger_entries SET created_at = created_at - INTERVAL '%s' WHERE id = $1`, interval)
	_, err := f.testDB.GetDB().Exec(query, entryID)
	require.NoError(f.t, err, "failed to backdate ledger entry")
}
