package handler

import (
	"net/http"

	"affiliate-server/internal/apierrors"
	"affiliate-server/internal/creators/processor"
	"affiliate-server/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Handler struct {
	processor processor.CreatorProcessor
	logger    *observability.Logger
}

func New(processor processor.CreatorProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// SignupRequest represents the HTTP request for a creator application
type SignupRequest struct {
	Email         string `json:"email" binding:"required,email"`
	DisplayName   string `json:"display_name" binding:"required,min=1,max=200"`
	RecruiterCode string `json:"recruiter_code,omitempty"`
}

// HandleSignup handles POST /api/creators
func (h *Handler) HandleSignup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	creator, err := h.processor.Signup(c.Request.Context(), processor.SignupRequest{
		Email:         req.Email,
		DisplayName:   req.DisplayName,
		RecruiterCode: req.RecruiterCode,
	})
	if err != nil {
		apierrors.MapError(c, err)
		return
	}

	c.JSON(http.StatusCreated, creator)
}

// HandleGetCreator handles GET /api/creators/:creator_id
func (h *Handler) HandleGetCreator(c *gin.Context) {
	creatorID, err := uuid.Parse(c.Param("creator_id"))
	if err != nil {
		apierrors.BadRequest(c, "INVALID_INPUT", "Creator ID must be a valid UUID")
		return
	}

	creator, err := h.processor.Get(c.Request.Context(), creatorID)
	if err != nil {
		apierrors.MapError(c, err)
		return
	}

	c.JSON(http.StatusOK, creator)
}

// HandleApprove handles POST /api/admin/creators/:creator_id/approve
func (h *Handler) HandleApprove(c *gin.Context) {
	creatorID, err := uuid.Parse(c.Param("creator_id"))
	if err != nil {
		apierrors.BadRequest(c, "INVALID_INPUT", "Creator ID must be a valid UUID")
		return
	}

	creator, err := h.processor.Approve(c.Request.Context(), creatorID)
	if err != nil {
		apierrors.MapError(c, err)
		return
	}

	c.JSON(http.StatusOK, creator)
}

// HandleReject handles POST /api/admin/creators/:creator_id/reject
func (h *Handler) HandleReject(c *gin.Context) {
	creatorID, err := uuid.Parse(c.Param("creator_id"))
	if err != nil {
		apierrors.BadRequest(c, "INVALID_INPUT", "Creator ID must be a valid UUID")
		return
	}

	creator, err := h.processor.Reject(c.Request.Context(), creatorID)
	if err != nil {
		apierrors.MapError(c, err)
		return
	}

	c.JSON(http.StatusOK, creator)
}

// PayoutMethodRequest represents the HTTP request for setting a payout method
type PayoutMethodRequest struct {
	PayoutMethod string `json:"payout_method" binding:"required,min=1,max=500"`
}

// HandleSetPayoutMethod handles PUT /api/creators/:creator_id/payout-method
func (h *Handler) HandleSetPayoutMethod(c *gin.Context) {
	creatorID, err := uuid.Parse(c.Param("creator_id"))
	if err != nil {
		apierrors.BadRequest(c, "INVALID_INPUT", "Creator ID must be a valid UUID")
		return
	}

	var req PayoutMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	if err := h.processor.SetPayoutMethod(c.Request.Context(), creatorID, req.PayoutMethod); err != nil {
		apierrors.MapError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// CreateCodeRequest represents the HTTP request for registering an affiliate code
type CreateCodeRequest struct {
	Code          string          `json:"code" binding:"required,min=2,max=50"`
	DiscountType  string          `json:"discount_type" binding:"required,oneof=percent fixed"`
	DiscountValue decimal.Decimal `json:"discount_value" binding:"required"`
	IsPrimary     bool            `json:"is_primary"`
}

// HandleCreateCode handles POST /api/creators/:creator_id/codes
func (h *Handler) HandleCreateCode(c *gin.Context) {
	creatorID, err := uuid.Parse(c.Param("creator_id"))
	if err != nil {
		apierrors.BadRequest(c, "INVALID_INPUT", "Creator ID must be a valid UUID")
		return
	}

	var req CreateCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	code, err := h.processor.CreateCode(c.Request.Context(), processor.CreateCodeRequest{
		CreatorID:     creatorID,
		Code:          req.Code,
		DiscountType:  req.DiscountType,
		DiscountValue: req.DiscountValue,
		IsPrimary:     req.IsPrimary,
	})
	if err != nil {
		apierrors.MapError(c, err)
		return
	}

	c.JSON(http.StatusCreated, code)
}

// HandleListCodes handles GET /api/creators/:creator_id/codes
func (h *Handler) HandleListCodes(c *gin.Context) {
	creatorID, err := uuid.Parse(c.Param("creator_id"))
	if err != nil {
		apierrors.BadRequest(c, "INVALID_INPUT", "Creator ID must be a valid UUID")
		return
	}

	codes, err := h.processor.ListCodes(c.Request.Context(), creatorID)
	if err != nil {
		apierrors.MapError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"codes": codes})
}

// SetCodeActiveRequest represents the HTTP request for toggling a code
type SetCodeActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

// HandleSetCodeActive handles PUT /api/creators/:creator_id/codes/:code_id/active
func (h *Handler) HandleSetCodeActive(c *gin.Context) {
	codeID, err := uuid.Parse(c.Param("code_id"))
	if err != nil {
		apierrors.BadRequest(c, "INVALID_INPUT", "Code ID must be a valid UUID")
		return
	}

	var req SetCodeActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	if err := h.processor.SetCodeActive(c.Request.Context(), codeID, *req.Active); err != nil {
		apierrors.MapError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// CreateLinkRequest represents the HTTP request for registering a tracking link
type CreateLinkRequest struct {
	Slug            string `json:"slug" binding:"required,min=2,max=100"`
	DestinationPath string `json:"destination_path,omitempty"`
	IsDefault       bool   `json:"is_default"`
}

// HandleCreateLink handles POST /api/creators/:creator_id/links
func (h *Handler) HandleCreateLink(c *gin.Context) {
	creatorID, err := uuid.Parse(c.Param("creator_id"))
	if err != nil {
		apierrors.BadRequest(c, "INVALID_INPUT", "Creator ID must be a valid UUID")
		return
	}

	var req CreateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	link, err := h.processor.CreateLink(c.Request.Context(), processor.CreateLinkRequest{
		CreatorID:       creatorID,
		Slug:            req.Slug,
		DestinationPath: req.DestinationPath,
		IsDefault:       req.IsDefault,
	})
	if err != nil {
		apierrors.MapError(c, err)
		return
	}

	c.JSON(http.StatusCreated, link)
}

// HandleListLinks handles GET /api/creators/:creator_id/links
func (h *Handler) HandleListLinks(c *gin.Context) {
	creatorID, err := uuid.Parse(c.Param("creator_id"))
	if err != nil {
		apierrors.BadRequest(c, "INVALID_INPUT", "Creator ID must be a valid UUID")
		return
	}

	links, err := h.processor.ListLinks(c.Request.Context(), creatorID)
	if err != nil {
		apierrors.MapError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"links": links})
}
