package handler

import (
	"errors"
	"io"
	"net/http"
	"time"

	"affiliate-server/internal/apierrors"
	"affiliate-server/internal/observability"
	"affiliate-server/internal/payouts/processor"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	processor processor.PayoutProcessor
	logger    *observability.Logger
}

func New(processor processor.PayoutProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// RunBatchRequest represents the HTTP request for a manual payout batch run
type RunBatchRequest struct {
	PeriodStart *time.Time `json:"period_start,omitempty"`
	PeriodEnd   *time.Time `json:"period_end,omitempty"`
}

// HandleRunBatch handles POST /api/admin/payouts/run. The period defaults to
// the calendar month that ended most recently.
func (h *Handler) HandleRunBatch(c *gin.Context) {
	ctx := c.Request.Context()

	// An empty body means "run with defaults"; gin surfaces that as io.EOF.
	var req RunBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		apierrors.ValidationError(c, err)
		return
	}

	periodStart, periodEnd := defaultPeriod(time.Now().UTC())
	if req.PeriodStart != nil {
		periodStart = *req.PeriodStart
	}
	if req.PeriodEnd != nil {
		periodEnd = *req.PeriodEnd
	}
	if !periodStart.Before(periodEnd) {
		apierrors.BadRequest(c, "INVALID_PERIOD", "period_start must precede period_end")
		return
	}

	result, err := h.processor.RunBatch(ctx, periodStart, periodEnd)
	if err != nil {
		apierrors.MapError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// defaultPeriod returns the bounds of the last fully elapsed calendar month.
func defaultPeriod(now time.Time) (time.Time, time.Time) {
	periodEnd := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	periodStart := periodEnd.AddDate(0, -1, 0)
	return periodStart, periodEnd
}
