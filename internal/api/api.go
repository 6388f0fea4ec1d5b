package api

import (
	"crypto/subtle"
	"net/http"
	"strings"

	analyticsHandler "affiliate-server/internal/analytics/handler"
	"affiliate-server/internal/apierrors"
	clicksHandler "affiliate-server/internal/clicks/handler"
	creatorsHandler "affiliate-server/internal/creators/handler"
	ordersHandler "affiliate-server/internal/orders/handler"
	payoutsHandler "affiliate-server/internal/payouts/handler"
	sweepsHandler "affiliate-server/internal/sweeps/handler"

	"github.com/gin-gonic/gin"
)

type API struct {
	router           *gin.RouterGroup
	clicksHandler    clicksHandler.Handler
	creatorsHandler  creatorsHandler.Handler
	ordersHandler    ordersHandler.Handler
	analyticsHandler analyticsHandler.Handler
	payoutsHandler   payoutsHandler.Handler
	sweepsHandler    sweepsHandler.Handler
	adminToken       string
}

func New(router *gin.RouterGroup,
	clicksHandler clicksHandler.Handler,
	creatorsHandler creatorsHandler.Handler,
	ordersHandler ordersHandler.Handler,
	analyticsHandler analyticsHandler.Handler,
	payoutsHandler payoutsHandler.Handler,
	sweepsHandler sweepsHandler.Handler,
	adminToken string) API {
	return API{
		router:           router,
		clicksHandler:    clicksHandler,
		creatorsHandler:  creatorsHandler,
		ordersHandler:    ordersHandler,
		analyticsHandler: analyticsHandler,
		payoutsHandler:   payoutsHandler,
		sweepsHandler:    sweepsHandler,
		adminToken:       adminToken,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()

	// Public redirect endpoint hit by shared tracking links
	a.router.GET("/r/:slug", a.clicksHandler.HandleRedirect)

	apiGroup := a.router.Group("/api")
	{
		apiGroup.POST("/creators", a.creatorsHandler.HandleSignup)
		apiGroup.GET("/creators/:creator_id", a.creatorsHandler.HandleGetCreator)
		apiGroup.PUT("/creators/:creator_id/payout-method", a.creatorsHandler.HandleSetPayoutMethod)
		apiGroup.POST("/creators/:creator_id/codes", a.creatorsHandler.HandleCreateCode)
		apiGroup.GET("/creators/:creator_id/codes", a.creatorsHandler.HandleListCodes)
		apiGroup.PUT("/creators/:creator_id/codes/:code_id/active", a.creatorsHandler.HandleSetCodeActive)
		apiGroup.POST("/creators/:creator_id/links", a.creatorsHandler.HandleCreateLink)
		apiGroup.GET("/creators/:creator_id/links", a.creatorsHandler.HandleListLinks)

		apiGroup.GET("/creators/:creator_id/metrics", a.analyticsHandler.HandleGetMetrics)
		apiGroup.GET("/creators/:creator_id/ledger", a.analyticsHandler.HandleListLedger)
		apiGroup.GET("/creators/:creator_id/payouts", a.analyticsHandler.HandleListPayouts)

		// Commerce platform hooks
		hooksGroup := apiGroup.Group("/hooks")
		hooksGroup.POST("/order-completed", a.ordersHandler.HandleOrderCompleted)
		hooksGroup.POST("/order-refunded", a.ordersHandler.HandleOrderRefunded)

		adminGroup := apiGroup.Group("/admin", a.handleAdminAuth)
		{
			adminGroup.POST("/creators/:creator_id/approve", a.creatorsHandler.HandleApprove)
			adminGroup.POST("/creators/:creator_id/reject", a.creatorsHandler.HandleReject)
			adminGroup.POST("/sweeps/approve", a.sweepsHandler.HandleApproveMatured)
			adminGroup.POST("/sweeps/tiers", a.sweepsHandler.HandleRecomputeTiers)
			adminGroup.POST("/payouts/run", a.payoutsHandler.HandleRunBatch)
		}
	}
}

// handleAdminAuth guards admin routes with a static bearer token.
func (a *API) handleAdminAuth(c *gin.Context) {
	if a.adminToken == "" {
		apierrors.Unauthorized(c, "Admin API is not configured")
		c.Abort()
		return
	}

	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	if subtle.ConstantTimeCompare([]byte(token), []byte(a.adminToken)) != 1 {
		apierrors.Unauthorized(c, "Invalid admin token")
		c.Abort()
		return
	}

	c.Next()
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
}
