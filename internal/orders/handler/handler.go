package handler

import (
	"errors"
	"net/http"

	"affiliate-server/internal/apierrors"
	attributionProcessor "affiliate-server/internal/attribution/processor"
	commissionProcessor "affiliate-server/internal/commission/processor"
	"affiliate-server/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type Handler struct {
	attribution attributionProcessor.AttributionProcessor
	commission  commissionProcessor.CommissionProcessor
	logger      *observability.Logger
}

func New(attribution attributionProcessor.AttributionProcessor, commission commissionProcessor.CommissionProcessor,
	logger *observability.Logger) Handler {
	return Handler{
		attribution: attribution,
		commission:  commission,
		logger:      logger,
	}
}

// OrderCompletedRequest represents the HTTP request for an order completion hook
type OrderCompletedRequest struct {
	OrderID       string          `json:"order_id" binding:"required"`
	CustomerEmail string          `json:"customer_email,omitempty"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	CouponCode    string          `json:"coupon_code,omitempty"`
	ClickToken    string          `json:"click_token,omitempty"`
	CookieValue   string          `json:"attribution_cookie,omitempty"`
}

// HandleOrderCompleted handles POST /api/hooks/order-completed. Attribution
// failures never bubble back to the storefront: an unattributed order is a
// normal outcome and a commission write failure is logged and retried via
// the event stream, not surfaced as a checkout error.
func (h *Handler) HandleOrderCompleted(c *gin.Context) {
	ctx := c.Request.Context()

	var req OrderCompletedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "order_id", Value: req.OrderID})

	attribution, err := h.attribution.Resolve(ctx, attributionProcessor.ResolveRequest{
		OrderID:     req.OrderID,
		Email:       req.CustomerEmail,
		BaseAmount:  req.Amount,
		CouponCode:  req.CouponCode,
		ClickToken:  req.ClickToken,
		CookieValue: req.CookieValue,
	})
	if err != nil {
		if errors.Is(err, attributionProcessor.ErrDuplicateAttribution) {
			c.JSON(http.StatusOK, gin.H{"attributed": true, "duplicate": true})
			return
		}
		apierrors.MapError(c, err)
		return
	}

	if attribution == nil {
		c.JSON(http.StatusOK, gin.H{"attributed": false})
		return
	}

	entries, err := h.commission.Compute(ctx, attribution.ID, req.Amount)
	if err != nil && !errors.Is(err, commissionProcessor.ErrDuplicateCommission) {
		h.logger.Error(ctx, "failed to compute commissions for attributed order", err)
	}

	c.JSON(http.StatusOK, gin.H{
		"attributed":         true,
		"attribution_method": attribution.Method,
		"creator_id":         attribution.CreatorID,
		"commission_entries": len(entries),
	})
}

// OrderRefundedRequest represents the HTTP request for a refund hook
type OrderRefundedRequest struct {
	OrderID string `json:"order_id" binding:"required"`
}

// HandleOrderRefunded handles POST /api/hooks/order-refunded. Refunding an
// order that was never attributed is a no-op, not an error.
func (h *Handler) HandleOrderRefunded(c *gin.Context) {
	ctx := c.Request.Context()

	var req OrderRefundedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "order_id", Value: req.OrderID})

	if err := h.attribution.Reverse(ctx, req.OrderID); err != nil {
		apierrors.MapError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "reversed"})
}
