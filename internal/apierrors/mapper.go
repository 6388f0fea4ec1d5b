package apierrors

import (
	"errors"

	analyticsProcessor "affiliate-server/internal/analytics/processor"
	attributionProcessor "affiliate-server/internal/attribution/processor"
	clicksProcessor "affiliate-server/internal/clicks/processor"
	commissionProcessor "affiliate-server/internal/commission/processor"
	creatorsProcessor "affiliate-server/internal/creators/processor"
	"affiliate-server/internal/store"

	"github.com/gin-gonic/gin"
)

// MapError converts domain errors from the processors into consistent JSON
// error responses. Handlers call it for any error they do not map themselves;
// unknown errors become a sanitized 500.
func MapError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	switch {
	// clicks
	case errors.Is(err, clicksProcessor.ErrLinkNotFound):
		NotFound(c, "Tracking link not found")

	// attribution
	case errors.Is(err, attributionProcessor.ErrDuplicateAttribution):
		Conflict(c, "DUPLICATE_ATTRIBUTION", "Order is already attributed")

	case errors.Is(err, attributionProcessor.ErrAttributionNotFound):
		NotFound(c, "Order attribution not found")

	case errors.Is(err, attributionProcessor.ErrOrderIDRequired):
		BadRequest(c, "ORDER_ID_REQUIRED", "Order ID is required")

	// commission
	case errors.Is(err, commissionProcessor.ErrDuplicateCommission):
		Conflict(c, "DUPLICATE_COMMISSION", "Commissions already computed for this order")

	case errors.Is(err, commissionProcessor.ErrAttributionReversed):
		Conflict(c, "ATTRIBUTION_REVERSED", "Order attribution has been reversed")

	case errors.Is(err, commissionProcessor.ErrAttributionNotFound):
		NotFound(c, "Order attribution not found")

	// creators
	case errors.Is(err, creatorsProcessor.ErrCreatorNotFound):
		NotFound(c, "Creator not found")

	case errors.Is(err, creatorsProcessor.ErrEmailAlreadyExists):
		Conflict(c, "EMAIL_EXISTS", "Email already registered")

	case errors.Is(err, creatorsProcessor.ErrInvalidTransition):
		Conflict(c, "INVALID_TRANSITION", "Creator is not in a state that allows this action")

	case errors.Is(err, creatorsProcessor.ErrCodeAlreadyExists):
		Conflict(c, "CODE_EXISTS", "Affiliate code already exists")

	case errors.Is(err, creatorsProcessor.ErrSlugAlreadyExists):
		Conflict(c, "SLUG_EXISTS", "Tracking link slug already exists")

	case errors.Is(err, creatorsProcessor.ErrCodeNotFound):
		NotFound(c, "Affiliate code not found")

	case errors.Is(err, creatorsProcessor.ErrEmptyCode):
		BadRequest(c, "CODE_REQUIRED", "Affiliate code is required")

	case errors.Is(err, creatorsProcessor.ErrEmptySlug):
		BadRequest(c, "SLUG_REQUIRED", "Tracking link slug is required")

	// analytics
	case errors.Is(err, analyticsProcessor.ErrCreatorNotFound):
		NotFound(c, "Creator not found")

	case errors.Is(err, analyticsProcessor.ErrInvalidStatus):
		BadRequest(c, "INVALID_STATUS", "Invalid ledger status filter. Valid values: pending, approved, paid, reversed")

	case errors.Is(err, analyticsProcessor.ErrInvalidPeriod):
		BadRequest(c, "INVALID_PERIOD", "Period start must precede period end")

	// store
	case errors.Is(err, store.ErrNotFound):
		NotFound(c, "Resource not found")

	case errors.Is(err, store.ErrInvalidState):
		Conflict(c, "INVALID_STATE", "Resource is not in a state that allows this action")

	case errors.Is(err, store.ErrDuplicate):
		Conflict(c, "DUPLICATE", "Resource already exists")

	default:
		InternalError(c, err)
	}
}
