package handler

import (
	"errors"
	"net/http"

	"affiliate-server/internal/clicks/processor"
	"affiliate-server/internal/observability"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	processor     processor.ClickProcessor
	logger        *observability.Logger
	webAppURI     string
	cookieName    string
	sessionCookie string
	cookieTTL     int
}

func New(p processor.ClickProcessor, logger *observability.Logger, webAppURI, cookieName, sessionCookie string, cookieTTL int) Handler {
	return Handler{
		processor:     p,
		logger:        logger,
		webAppURI:     webAppURI,
		cookieName:    cookieName,
		sessionCookie: sessionCookie,
		cookieTTL:     cookieTTL,
	}
}

// HandleRedirect handles GET /r/:slug. Unknown slugs bounce to the fallback
// destination with no cookies; everything else gets a 302 to the link's
// destination plus the attribution and session cookies.
func (h *Handler) HandleRedirect(c *gin.Context) {
	ctx := c.Request.Context()

	sessionID, _ := c.Cookie(h.sessionCookie)

	result, err := h.processor.Track(ctx, processor.TrackRequest{
		Slug:      c.Param("slug"),
		IP:        observability.GetRealClientIP(c),
		UserAgent: observability.GetRealUserAgent(c),
		Referer:   c.Request.Referer(),
		SessionID: sessionID,
	})
	if err != nil {
		if !errors.Is(err, processor.ErrLinkNotFound) {
			h.logger.Error(ctx, "failed to track click", err)
		}
		c.Redirect(http.StatusFound, h.webAppURI+h.processor.FallbackPath())
		return
	}

	c.SetCookie(h.sessionCookie, result.SessionID, h.processor.SessionTTL(), "/", "", false, true)
	if result.AttributionCookie != "" {
		c.SetCookie(h.cookieName, result.AttributionCookie, h.cookieTTL, "/", "", false, true)
	}

	c.Redirect(http.StatusFound, h.webAppURI+result.Destination)
}
