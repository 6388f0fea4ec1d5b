package handler

import (
	"net/http"
	"strconv"
	"time"

	"affiliate-server/internal/analytics/processor"
	"affiliate-server/internal/apierrors"
	"affiliate-server/internal/observability"
	payouts "affiliate-server/internal/payouts/processor"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.AnalyticsProcessor
	payouts   payouts.PayoutProcessor
	logger    *observability.Logger
}

func New(p processor.AnalyticsProcessor, payoutProcessor payouts.PayoutProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: p,
		payouts:   payoutProcessor,
		logger:    logger,
	}
}

// HandleGetMetrics handles GET /api/creators/:creator_id/metrics
// Optional from/to query params in RFC 3339; defaults to the last 30 days.
func (h *Handler) HandleGetMetrics(c *gin.Context) {
	ctx := c.Request.Context()

	creatorID, err := uuid.Parse(c.Param("creator_id"))
	if err != nil {
		apierrors.BadRequest(c, "INVALID_INPUT", "Creator ID must be a valid UUID")
		return
	}

	to := time.Now()
	from := to.AddDate(0, 0, -30)
	if raw := c.Query("from"); raw != "" {
		from, err = time.Parse(time.RFC3339, raw)
		if err != nil {
			apierrors.BadRequest(c, "INVALID_INPUT", "from must be an RFC 3339 timestamp")
			return
		}
	}
	if raw := c.Query("to"); raw != "" {
		to, err = time.Parse(time.RFC3339, raw)
		if err != nil {
			apierrors.BadRequest(c, "INVALID_INPUT", "to must be an RFC 3339 timestamp")
			return
		}
	}

	metrics, err := h.processor.GetMetrics(ctx, processor.MetricsRequest{CreatorID: creatorID, From: from, To: to})
	if err != nil {
		apierrors.MapError(c, err)
		return
	}

	c.JSON(http.StatusOK, metrics)
}

// HandleListLedger handles GET /api/creators/:creator_id/ledger
func (h *Handler) HandleListLedger(c *gin.Context) {
	ctx := c.Request.Context()

	creatorID, err := uuid.Parse(c.Param("creator_id"))
	if err != nil {
		apierrors.BadRequest(c, "INVALID_INPUT", "Creator ID must be a valid UUID")
		return
	}

	req := processor.ListLedgerRequest{CreatorID: creatorID}
	if raw := c.Query("status"); raw != "" {
		req.Status = &raw
	}
	if raw := c.Query("page"); raw != "" {
		req.Page, _ = strconv.Atoi(raw)
	}
	if raw := c.Query("limit"); raw != "" {
		req.Limit, _ = strconv.Atoi(raw)
	}

	result, err := h.processor.ListLedger(ctx, req)
	if err != nil {
		apierrors.MapError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// HandleListPayouts handles GET /api/creators/:creator_id/payouts
func (h *Handler) HandleListPayouts(c *gin.Context) {
	ctx := c.Request.Context()

	creatorID, err := uuid.Parse(c.Param("creator_id"))
	if err != nil {
		apierrors.BadRequest(c, "INVALID_INPUT", "Creator ID must be a valid UUID")
		return
	}

	history, err := h.payouts.History(ctx, creatorID)
	if err != nil {
		apierrors.MapError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"payouts": history})
}
