package processor

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"affiliate-server/internal/attribution/cookie"
	"affiliate-server/internal/observability"
	"affiliate-server/internal/program"
	"affiliate-server/internal/store"

	"github.com/google/uuid"
)

var ErrLinkNotFound = errors.New("tracking link not found")

type ClickProcessor struct {
	store   ClickStore
	deduper Deduper
	codec   cookie.Codec
	program *program.Program
	logger  *observability.Logger
}

func New(store ClickStore, deduper Deduper, codec cookie.Codec, prog *program.Program, logger *observability.Logger) ClickProcessor {
	return ClickProcessor{
		store:   store,
		deduper: deduper,
		codec:   codec,
		program: prog,
		logger:  logger,
	}
}

// TrackRequest carries everything the redirect endpoint knows about a hit.
// SessionID is the existing session cookie value, empty on first visit.
type TrackRequest struct {
	Slug      string
	IP        string
	UserAgent string
	Referer   string
	SessionID string
}

// TrackResult tells the handler where to send the visitor and which cookies
// to set. AttributionCookie is empty when attribution could not be recorded;
// the redirect still happens.
type TrackResult struct {
	Destination       string
	SessionID         string
	AttributionCookie string
	ClickToken        string
}

// Track resolves a slug to its tracking link, records the click and builds
// the attribution cookie. Only an unknown slug is an error; every failure
// after link resolution is logged and swallowed so the visitor is always
// redirected, at worst without attribution.
func (p *ClickProcessor) Track(ctx context.Context, req TrackRequest) (TrackResult, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "slug", Value: req.Slug})

	link, err := p.store.GetTrackingLinkBySlug(ctx, req.Slug)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return TrackResult{}, ErrLinkNotFound
		}
		p.logger.Error(ctx, "failed to resolve tracking link", err)
		return TrackResult{}, ErrLinkNotFound
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	result := TrackResult{
		Destination: link.DestinationPath,
		SessionID:   sessionID,
	}

	// Repeat hits from the same IP on the same link inside the dedupe
	// window count once. Redis being down means we count every click
	// rather than losing any.
	duplicate, err := p.deduper.SeenRecently(ctx, dedupeKey(req.IP, link.ID), p.program.ClickDedupeWindow)
	if err != nil {
		p.logger.InfoWithError(ctx, "click dedupe check failed, counting click", err)
		duplicate = false
	}
	if !duplicate {
		if err := p.store.IncrementLinkClickCount(ctx, link.ID); err != nil {
			p.logger.Error(ctx, "failed to increment link click count", err)
		}
	}

	token, err := generateClickToken()
	if err != nil {
		p.logger.Error(ctx, "failed to generate click token", err)
		return result, nil
	}

	capturedAt := time.Now()
	_, err = p.store.CreateClickEvent(ctx, store.CreateClickEventParams{
		Token:     token,
		CreatorID: link.CreatorID,
		LinkID:    link.ID,
		IP:        req.IP,
		UserAgent: req.UserAgent,
		Referer:   req.Referer,
		SessionID: sessionID,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to persist click event", err)
		return result, nil
	}

	// Last click wins: a fresh cookie always replaces any earlier one.
	signed, err := p.codec.Encode(link.CreatorID, link.ID, token, capturedAt)
	if err != nil {
		p.logger.Error(ctx, "failed to build attribution cookie", err)
		return result, nil
	}

	result.AttributionCookie = signed
	result.ClickToken = token
	return result, nil
}

// FallbackPath is where unknown slugs are redirected, with no cookies set.
func (p *ClickProcessor) FallbackPath() string {
	return p.program.FallbackRedirectPath
}

// SessionTTL is the session cookie lifetime in seconds.
func (p *ClickProcessor) SessionTTL() int {
	return int(30 * 24 * time.Hour / time.Second)
}

func dedupeKey(ip string, linkID uuid.UUID) string {
	return fmt.Sprintf("click:%s:%s", ip, linkID)
}

func generateClickToken() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
