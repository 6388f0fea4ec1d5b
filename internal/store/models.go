package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ============================================================================
// Status enums
// ============================================================================
// Every status field is a closed state machine. Transitions outside the maps
// below are rejected at the store boundary with ErrInvalidState rather than
// relying on caller discipline.

// CreatorStatus represents a creator's lifecycle state
type CreatorStatus string

const (
	CreatorStatusPending  CreatorStatus = "pending"
	CreatorStatusActive   CreatorStatus = "active"
	CreatorStatusRejected CreatorStatus = "rejected"
)

var creatorTransitions = map[CreatorStatus][]CreatorStatus{
	CreatorStatusPending: {CreatorStatusActive, CreatorStatusRejected},
}

// CanTransitionTo reports whether the creator state machine allows the move.
func (s CreatorStatus) CanTransitionTo(next CreatorStatus) bool {
	for _, allowed := range creatorTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// AttributionMethod records which resolver strategy matched an order
type AttributionMethod string

const (
	AttributionMethodCouponCode AttributionMethod = "coupon_code"
	AttributionMethodCookie     AttributionMethod = "cookie"
	AttributionMethodClickToken AttributionMethod = "click_token"
)

// AttributionStatus represents an order attribution's lifecycle state
type AttributionStatus string

const (
	AttributionStatusPending   AttributionStatus = "pending"
	AttributionStatusConfirmed AttributionStatus = "confirmed"
	AttributionStatusReversed  AttributionStatus = "reversed"
)

var attributionTransitions = map[AttributionStatus][]AttributionStatus{
	AttributionStatusPending:   {AttributionStatusConfirmed, AttributionStatusReversed},
	AttributionStatusConfirmed: {AttributionStatusReversed},
}

// CanTransitionTo reports whether the attribution state machine allows the move.
func (s AttributionStatus) CanTransitionTo(next AttributionStatus) bool {
	for _, allowed := range attributionTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// CommissionType distinguishes direct commissions from recruiter overrides
type CommissionType string

const (
	CommissionTypeDirect   CommissionType = "direct"
	CommissionTypeOverride CommissionType = "override"
)

// LedgerStatus represents a commission ledger entry's lifecycle state
type LedgerStatus string

const (
	LedgerStatusPending  LedgerStatus = "pending"
	LedgerStatusApproved LedgerStatus = "approved"
	LedgerStatusPaid     LedgerStatus = "paid"
	LedgerStatusReversed LedgerStatus = "reversed"
)

var ledgerTransitions = map[LedgerStatus][]LedgerStatus{
	LedgerStatusPending:  {LedgerStatusApproved, LedgerStatusReversed},
	LedgerStatusApproved: {LedgerStatusPaid, LedgerStatusReversed},
}

// CanTransitionTo reports whether the ledger state machine allows the move.
// Paid entries are terminal: money already sent is never silently reversed,
// it takes a manual offsetting entry.
func (s LedgerStatus) CanTransitionTo(next LedgerStatus) bool {
	for _, allowed := range ledgerTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Valid reports whether s is one of the known ledger statuses.
func (s LedgerStatus) Valid() bool {
	switch s {
	case LedgerStatusPending, LedgerStatusApproved, LedgerStatusPaid, LedgerStatusReversed:
		return true
	}
	return false
}

// ============================================================================
// Rows
// ============================================================================

// Creator represents an approved or pending affiliate creator
type Creator struct {
	ID           uuid.UUID       `db:"id" json:"id"`
	Email        string          `db:"email" json:"email"`
	DisplayName  string          `db:"display_name" json:"display_name"`
	Status       CreatorStatus   `db:"status" json:"status"`
	Tier         int             `db:"tier" json:"tier"`
	OverrideRate decimal.Decimal `db:"override_rate" json:"override_rate"`
	RecruitCount int             `db:"recruit_count" json:"recruit_count"`
	PayoutMethod *string         `db:"payout_method" json:"payout_method"`
	RecruitedBy  *uuid.UUID      `db:"recruited_by" json:"recruited_by"`
	CreatedAt    time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time       `db:"updated_at" json:"updated_at"`
}

// AffiliateCode represents a coupon/affiliate code owned by one creator
type AffiliateCode struct {
	ID            uuid.UUID       `db:"id" json:"id"`
	CreatorID     uuid.UUID       `db:"creator_id" json:"creator_id"`
	Code          string          `db:"code" json:"code"`
	DiscountType  string          `db:"discount_type" json:"discount_type"`
	DiscountValue decimal.Decimal `db:"discount_value" json:"discount_value"`
	IsPrimary     bool            `db:"is_primary" json:"is_primary"`
	Active        bool            `db:"active" json:"active"`
	UseCount      int             `db:"use_count" json:"use_count"`
	TotalRevenue  decimal.Decimal `db:"total_revenue" json:"total_revenue"`
	CreatedAt     time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at" json:"updated_at"`
}

// TrackingLink represents a creator's trackable redirect link
type TrackingLink struct {
	ID              uuid.UUID `db:"id" json:"id"`
	CreatorID       uuid.UUID `db:"creator_id" json:"creator_id"`
	Slug            string    `db:"slug" json:"slug"`
	DestinationPath string    `db:"destination_path" json:"destination_path"`
	ClickCount      int       `db:"click_count" json:"click_count"`
	ConversionCount int       `db:"conversion_count" json:"conversion_count"`
	IsDefault       bool      `db:"is_default" json:"is_default"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}

// ClickEvent is an immutable fact recording one tracked redirect.
// Only converted_at is ever mutated, when an order is later matched.
type ClickEvent struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	Token       string     `db:"token" json:"token"`
	CreatorID   uuid.UUID  `db:"creator_id" json:"creator_id"`
	LinkID      uuid.UUID  `db:"link_id" json:"link_id"`
	IP          string     `db:"ip" json:"ip"`
	UserAgent   string     `db:"user_agent" json:"user_agent"`
	Referer     string     `db:"referer" json:"referer"`
	SessionID   string     `db:"session_id" json:"session_id"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	ConvertedAt *time.Time `db:"converted_at" json:"converted_at"`
}

// OrderAttribution links one order to one (creator, method) pair.
// Creator assignment is immutable; only status moves.
type OrderAttribution struct {
	ID        uuid.UUID         `db:"id" json:"id"`
	OrderID   string            `db:"order_id" json:"order_id"`
	CreatorID uuid.UUID         `db:"creator_id" json:"creator_id"`
	Method    AttributionMethod `db:"attribution_method" json:"attribution_method"`
	Status    AttributionStatus `db:"status" json:"status"`
	CreatedAt time.Time         `db:"created_at" json:"created_at"`
	UpdatedAt time.Time         `db:"updated_at" json:"updated_at"`
}

// CommissionLedgerEntry is one append-mostly financial fact-row.
// Only status and payout_id ever change after insert.
type CommissionLedgerEntry struct {
	ID                 uuid.UUID       `db:"id" json:"id"`
	CreatorID          uuid.UUID       `db:"creator_id" json:"creator_id"`
	OrderAttributionID uuid.UUID       `db:"order_attribution_id" json:"order_attribution_id"`
	CommissionType     CommissionType  `db:"commission_type" json:"commission_type"`
	CommissionRate     decimal.Decimal `db:"commission_rate" json:"commission_rate"`
	BaseAmount         decimal.Decimal `db:"base_amount" json:"base_amount"`
	CommissionAmount   decimal.Decimal `db:"commission_amount" json:"commission_amount"`
	Status             LedgerStatus    `db:"status" json:"status"`
	PayoutID           *uuid.UUID      `db:"payout_id" json:"payout_id"`
	CreatedAt          time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time       `db:"updated_at" json:"updated_at"`
}

// Payout is an immutable batch settlement of a creator's approved entries
type Payout struct {
	ID              uuid.UUID       `db:"id" json:"id"`
	CreatorID       uuid.UUID       `db:"creator_id" json:"creator_id"`
	Amount          decimal.Decimal `db:"amount" json:"amount"`
	PeriodStart     time.Time       `db:"period_start" json:"period_start"`
	PeriodEnd       time.Time       `db:"period_end" json:"period_end"`
	PayoutMethod    string          `db:"payout_method" json:"payout_method"`
	CommissionCount int             `db:"commission_count" json:"commission_count"`
	CreatedAt       time.Time       `db:"created_at" json:"created_at"`
}
