package handler

import (
	"net/http"

	"affiliate-server/internal/apierrors"
	"affiliate-server/internal/observability"
	"affiliate-server/internal/sweeps/processor"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	processor processor.SweepProcessor
	logger    *observability.Logger
}

func New(processor processor.SweepProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// HandleApproveMatured handles POST /api/admin/sweeps/approve
func (h *Handler) HandleApproveMatured(c *gin.Context) {
	approved, err := h.processor.ApproveMatured(c.Request.Context())
	if err != nil {
		apierrors.MapError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"approved": approved})
}

// HandleRecomputeTiers handles POST /api/admin/sweeps/tiers
func (h *Handler) HandleRecomputeTiers(c *gin.Context) {
	changes, err := h.processor.RecomputeTiers(c.Request.Context())
	if err != nil {
		apierrors.MapError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"changes": changes})
}
