package processor

import (
	"context"
	"errors"
	"time"

	"affiliate-server/internal/attribution/cookie"
	"affiliate-server/internal/observability"
	"affiliate-server/internal/program"
	"affiliate-server/internal/store"

	"github.com/shopspring/decimal"
)

var (
	ErrDuplicateAttribution = errors.New("order already attributed")
	ErrAttributionNotFound  = errors.New("attribution not found")
	ErrOrderIDRequired      = errors.New("order id is required")
)

type AttributionProcessor struct {
	store   AttributionStore
	codec   cookie.Codec
	program *program.Program
	logger  *observability.Logger
	now     func() time.Time
}

func New(store AttributionStore, codec cookie.Codec, prog *program.Program, logger *observability.Logger) AttributionProcessor {
	return AttributionProcessor{
		store:   store,
		codec:   codec,
		program: prog,
		logger:  logger,
		now:     time.Now,
	}
}

// ResolveRequest is everything checkout knows about a completed order.
// CouponCode, ClickToken and CookieValue are optional attribution hints.
type ResolveRequest struct {
	OrderID     string
	Email       string
	BaseAmount  decimal.Decimal
	CouponCode  string
	ClickToken  string
	CookieValue string
}

// candidate is one resolved attribution source before persistence.
type candidate struct {
	method     store.AttributionMethod
	creator    store.Creator
	code       *store.AffiliateCode
	clickEvent *store.ClickEvent
}

// Resolve decides which creator, if any, gets credit for an order. The
// strategies run in fixed precedence order and the first match wins:
// explicit affiliate code, then explicit click token, then attribution
// cookie. No match returns (nil, nil); most orders are unattributed.
//
// A second resolve for the same order returns ErrDuplicateAttribution,
// enforced by the storage uniqueness gate rather than a read-then-write.
func (p *AttributionProcessor) Resolve(ctx context.Context, req ResolveRequest) (*store.OrderAttribution, error) {
	if req.OrderID == "" {
		return nil, ErrOrderIDRequired
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "order_id", Value: req.OrderID})

	match := p.resolveCandidate(ctx, req)
	if match == nil {
		return nil, nil
	}

	attribution, err := p.store.CreateOrderAttribution(ctx, store.CreateOrderAttributionParams{
		OrderID:   req.OrderID,
		CreatorID: match.creator.ID,
		Method:    match.method,
	})
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			p.logger.InfoWithError(ctx, "order already attributed", err)
			return nil, ErrDuplicateAttribution
		}
		p.logger.Error(ctx, "failed to create order attribution", err)
		return nil, err
	}

	p.recordMatchSideEffects(ctx, match, req.BaseAmount)

	return &attribution, nil
}

func (p *AttributionProcessor) resolveCandidate(ctx context.Context, req ResolveRequest) *candidate {
	if match := p.matchCouponCode(ctx, req.CouponCode); match != nil {
		return match
	}
	if match := p.matchClickToken(ctx, req.ClickToken); match != nil {
		return match
	}
	return p.matchCookie(ctx, req.CookieValue)
}

func (p *AttributionProcessor) matchCouponCode(ctx context.Context, code string) *candidate {
	if code == "" {
		return nil
	}

	affiliateCode, err := p.store.GetActiveAffiliateCodeByCode(ctx, code)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			p.logger.Error(ctx, "failed to look up affiliate code", err)
		}
		return nil
	}

	creator, err := p.store.GetCreatorByID(ctx, affiliateCode.CreatorID)
	if err != nil {
		p.logger.Error(ctx, "failed to load code owner", err)
		return nil
	}
	if creator.Status != store.CreatorStatusActive {
		return nil
	}

	return &candidate{method: store.AttributionMethodCouponCode, creator: creator, code: &affiliateCode}
}

func (p *AttributionProcessor) matchClickToken(ctx context.Context, token string) *candidate {
	if token == "" {
		return nil
	}

	event, err := p.store.GetClickEventByToken(ctx, token)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			p.logger.Error(ctx, "failed to look up click event", err)
		}
		return nil
	}

	if !p.withinWindow(event.CreatedAt) {
		return nil
	}

	creator, err := p.store.GetCreatorByID(ctx, event.CreatorID)
	if err != nil {
		p.logger.Error(ctx, "failed to load click creator", err)
		return nil
	}
	if creator.Status != store.CreatorStatusActive {
		return nil
	}

	return &candidate{method: store.AttributionMethodClickToken, creator: creator, clickEvent: &event}
}

func (p *AttributionProcessor) matchCookie(ctx context.Context, value string) *candidate {
	if value == "" {
		return nil
	}

	claims, err := p.codec.Decode(value)
	if err != nil {
		// Forged or stale cookies are expected traffic, not incidents.
		p.logger.InfoWithError(ctx, "ignoring invalid attribution cookie", err)
		return nil
	}

	if !p.withinWindow(claims.CapturedAt) {
		return nil
	}

	creator, err := p.store.GetCreatorByID(ctx, claims.CreatorID)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			p.logger.Error(ctx, "failed to load cookie creator", err)
		}
		return nil
	}
	if creator.Status != store.CreatorStatusActive {
		return nil
	}

	return &candidate{
		method:  store.AttributionMethodCookie,
		creator: creator,
		clickEvent: &store.ClickEvent{
			Token:     claims.ClickToken,
			CreatorID: claims.CreatorID,
			LinkID:    claims.LinkID,
		},
	}
}

// withinWindow reports whether capturedAt still falls inside the attribution
// window. The boundary is inclusive: a click captured exactly window ago
// still attributes.
func (p *AttributionProcessor) withinWindow(capturedAt time.Time) bool {
	cutoff := p.now().Add(-p.program.AttributionWindow)
	return !capturedAt.Before(cutoff)
}

// recordMatchSideEffects updates the counters behind a successful match.
// All of them are best-effort; the attribution row is already durable.
func (p *AttributionProcessor) recordMatchSideEffects(ctx context.Context, match *candidate, baseAmount decimal.Decimal) {
	if match.code != nil {
		if err := p.store.IncrementAffiliateCodeUsage(ctx, match.code.ID, baseAmount); err != nil {
			p.logger.Error(ctx, "failed to increment affiliate code usage", err)
		}
	}
	if match.clickEvent != nil {
		if err := p.store.MarkClickEventConverted(ctx, match.clickEvent.Token); err != nil {
			p.logger.Error(ctx, "failed to mark click event converted", err)
		}
		if err := p.store.IncrementLinkConversionCount(ctx, match.clickEvent.LinkID); err != nil {
			p.logger.Error(ctx, "failed to increment link conversion count", err)
		}
	}
}

// Confirm moves an order's attribution from pending to confirmed, once its
// commissions have been written.
func (p *AttributionProcessor) Confirm(ctx context.Context, orderID string) error {
	attribution, err := p.store.GetOrderAttributionByOrderID(ctx, orderID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrAttributionNotFound
		}
		return err
	}
	if attribution.Status == store.AttributionStatusConfirmed {
		return nil
	}
	return p.store.UpdateOrderAttributionStatus(ctx, attribution.ID, attribution.Status, store.AttributionStatusConfirmed)
}

// Reverse handles a refund or cancellation: the order's attribution flips
// to reversed and so does every ledger entry tied to it that has not been
// paid out. Paid entries are left alone; clawing back sent money is a
// manual offsetting entry, never an automatic status flip. An order with
// no attribution is a no-op.
func (p *AttributionProcessor) Reverse(ctx context.Context, orderID string) error {
	if orderID == "" {
		return ErrOrderIDRequired
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "order_id", Value: orderID})

	attribution, err := p.store.GetOrderAttributionByOrderID(ctx, orderID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			p.logger.Info(ctx, "no attribution to reverse")
			return nil
		}
		p.logger.Error(ctx, "failed to load attribution for reversal", err)
		return err
	}

	if err := p.store.UpdateOrderAttributionStatus(ctx, attribution.ID, attribution.Status, store.AttributionStatusReversed); err != nil {
		p.logger.Error(ctx, "failed to reverse attribution", err)
		return err
	}

	reversed, err := p.store.ReverseUnpaidLedgerEntries(ctx, attribution.ID)
	if err != nil {
		p.logger.Error(ctx, "failed to reverse ledger entries", err)
		return err
	}

	p.logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "entries_reversed", Value: reversed},
	), "attribution reversed")
	return nil
}
