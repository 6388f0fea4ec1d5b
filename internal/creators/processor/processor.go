package processor

import (
	"context"
	"errors"
	"strings"

	"affiliate-server/internal/observability"
	"affiliate-server/internal/store"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrCreatorNotFound    = errors.New("creator not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidTransition  = errors.New("invalid creator status transition")
	ErrCodeAlreadyExists  = errors.New("affiliate code already exists")
	ErrSlugAlreadyExists  = errors.New("tracking link slug already exists")
	ErrCodeNotFound       = errors.New("affiliate code not found")
	ErrEmptyCode          = errors.New("affiliate code is required")
	ErrEmptySlug          = errors.New("tracking link slug is required")
)

type CreatorProcessor struct {
	store  CreatorStore
	logger *observability.Logger
}

func New(store CreatorStore, logger *observability.Logger) CreatorProcessor {
	return CreatorProcessor{
		store:  store,
		logger: logger,
	}
}

// SignupRequest represents a creator application
type SignupRequest struct {
	Email         string
	DisplayName   string
	RecruiterCode string
}

// Signup registers a pending creator. A recruiter's affiliate code, when
// supplied and valid, sets the recruited_by back-reference; an unknown code
// is ignored rather than failing the signup.
func (p *CreatorProcessor) Signup(ctx context.Context, req SignupRequest) (store.Creator, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "email", Value: req.Email})

	var recruitedBy *uuid.UUID
	if req.RecruiterCode != "" {
		code, err := p.store.GetActiveAffiliateCodeByCode(ctx, req.RecruiterCode)
		switch {
		case err == nil:
			recruitedBy = &code.CreatorID
		case errors.Is(err, store.ErrNotFound):
			p.logger.Info(ctx, "ignoring unknown recruiter code on signup")
		default:
			p.logger.Error(ctx, "failed to look up recruiter code", err)
			return store.Creator{}, err
		}
	}

	creator, err := p.store.CreateCreator(ctx, store.CreateCreatorParams{
		Email:       strings.ToLower(strings.TrimSpace(req.Email)),
		DisplayName: strings.TrimSpace(req.DisplayName),
		RecruitedBy: recruitedBy,
	})
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return store.Creator{}, ErrEmailAlreadyExists
		}
		p.logger.Error(ctx, "failed to create creator", err)
		return store.Creator{}, err
	}

	return creator, nil
}

// Approve activates a pending creator. Approval is the moment the recruiter
// earns the recruit: the recruit counter moves here, once, and never again
// for this creator.
func (p *CreatorProcessor) Approve(ctx context.Context, creatorID uuid.UUID) (store.Creator, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "creator_id", Value: creatorID.String()})

	creator, err := p.store.GetCreatorByID(ctx, creatorID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Creator{}, ErrCreatorNotFound
		}
		p.logger.Error(ctx, "failed to load creator", err)
		return store.Creator{}, err
	}

	if err := p.store.UpdateCreatorStatus(ctx, creatorID, store.CreatorStatusPending, store.CreatorStatusActive); err != nil {
		if errors.Is(err, store.ErrInvalidState) {
			return store.Creator{}, ErrInvalidTransition
		}
		if errors.Is(err, store.ErrNotFound) {
			return store.Creator{}, ErrCreatorNotFound
		}
		p.logger.Error(ctx, "failed to approve creator", err)
		return store.Creator{}, err
	}

	if creator.RecruitedBy != nil {
		if err := p.store.IncrementRecruitCount(ctx, *creator.RecruitedBy); err != nil {
			// The approval stands; the recruiter's counter catches up on
			// the next manual reconciliation.
			p.logger.Error(ctx, "failed to increment recruiter count", err)
		}
	}

	return p.reload(ctx, creatorID)
}

// Reject declines a pending creator.
func (p *CreatorProcessor) Reject(ctx context.Context, creatorID uuid.UUID) (store.Creator, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "creator_id", Value: creatorID.String()})

	if err := p.store.UpdateCreatorStatus(ctx, creatorID, store.CreatorStatusPending, store.CreatorStatusRejected); err != nil {
		if errors.Is(err, store.ErrInvalidState) {
			return store.Creator{}, ErrInvalidTransition
		}
		if errors.Is(err, store.ErrNotFound) {
			return store.Creator{}, ErrCreatorNotFound
		}
		p.logger.Error(ctx, "failed to reject creator", err)
		return store.Creator{}, err
	}

	return p.reload(ctx, creatorID)
}

// SetPayoutMethod records where a creator wants to be paid.
func (p *CreatorProcessor) SetPayoutMethod(ctx context.Context, creatorID uuid.UUID, method string) error {
	if err := p.store.SetCreatorPayoutMethod(ctx, creatorID, method); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrCreatorNotFound
		}
		p.logger.Error(ctx, "failed to set payout method", err)
		return err
	}
	return nil
}

// Get returns one creator.
func (p *CreatorProcessor) Get(ctx context.Context, creatorID uuid.UUID) (store.Creator, error) {
	creator, err := p.store.GetCreatorByID(ctx, creatorID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Creator{}, ErrCreatorNotFound
		}
		p.logger.Error(ctx, "failed to load creator", err)
		return store.Creator{}, err
	}
	return creator, nil
}

// CreateCodeRequest represents a new affiliate code registration
type CreateCodeRequest struct {
	CreatorID     uuid.UUID
	Code          string
	DiscountType  string
	DiscountValue decimal.Decimal
	IsPrimary     bool
}

// CreateCode registers an affiliate code for a creator. Codes are stored
// lowercase; at most one code per creator stays primary.
func (p *CreatorProcessor) CreateCode(ctx context.Context, req CreateCodeRequest) (store.AffiliateCode, error) {
	if strings.TrimSpace(req.Code) == "" {
		return store.AffiliateCode{}, ErrEmptyCode
	}

	if _, err := p.Get(ctx, req.CreatorID); err != nil {
		return store.AffiliateCode{}, err
	}

	code, err := p.store.CreateAffiliateCode(ctx, store.CreateAffiliateCodeParams{
		CreatorID:     req.CreatorID,
		Code:          strings.TrimSpace(req.Code),
		DiscountType:  req.DiscountType,
		DiscountValue: req.DiscountValue,
		IsPrimary:     req.IsPrimary,
	})
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return store.AffiliateCode{}, ErrCodeAlreadyExists
		}
		p.logger.Error(ctx, "failed to create affiliate code", err)
		return store.AffiliateCode{}, err
	}
	return code, nil
}

// ListCodes returns a creator's affiliate codes.
func (p *CreatorProcessor) ListCodes(ctx context.Context, creatorID uuid.UUID) ([]store.AffiliateCode, error) {
	if _, err := p.Get(ctx, creatorID); err != nil {
		return nil, err
	}

	codes, err := p.store.ListAffiliateCodesByCreator(ctx, creatorID)
	if err != nil {
		p.logger.Error(ctx, "failed to list affiliate codes", err)
		return nil, err
	}
	if codes == nil {
		codes = []store.AffiliateCode{}
	}
	return codes, nil
}

// SetCodeActive toggles whether a code can still attribute orders.
func (p *CreatorProcessor) SetCodeActive(ctx context.Context, codeID uuid.UUID, active bool) error {
	if err := p.store.SetAffiliateCodeActive(ctx, codeID, active); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrCodeNotFound
		}
		p.logger.Error(ctx, "failed to toggle affiliate code", err)
		return err
	}
	return nil
}

// CreateLinkRequest represents a new tracking link registration
type CreateLinkRequest struct {
	CreatorID       uuid.UUID
	Slug            string
	DestinationPath string
	IsDefault       bool
}

// CreateLink registers a tracking link; at most one link per creator stays
// the default.
func (p *CreatorProcessor) CreateLink(ctx context.Context, req CreateLinkRequest) (store.TrackingLink, error) {
	if strings.TrimSpace(req.Slug) == "" {
		return store.TrackingLink{}, ErrEmptySlug
	}

	if _, err := p.Get(ctx, req.CreatorID); err != nil {
		return store.TrackingLink{}, err
	}

	destination := req.DestinationPath
	if destination == "" {
		destination = "/"
	}

	link, err := p.store.CreateTrackingLink(ctx, store.CreateTrackingLinkParams{
		CreatorID:       req.CreatorID,
		Slug:            strings.TrimSpace(req.Slug),
		DestinationPath: destination,
		IsDefault:       req.IsDefault,
	})
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return store.TrackingLink{}, ErrSlugAlreadyExists
		}
		p.logger.Error(ctx, "failed to create tracking link", err)
		return store.TrackingLink{}, err
	}
	return link, nil
}

// ListLinks returns a creator's tracking links.
func (p *CreatorProcessor) ListLinks(ctx context.Context, creatorID uuid.UUID) ([]store.TrackingLink, error) {
	if _, err := p.Get(ctx, creatorID); err != nil {
		return nil, err
	}

	links, err := p.store.ListTrackingLinksByCreator(ctx, creatorID)
	if err != nil {
		p.logger.Error(ctx, "failed to list tracking links", err)
		return nil, err
	}
	if links == nil {
		links = []store.TrackingLink{}
	}
	return links, nil
}

func (p *CreatorProcessor) reload(ctx context.Context, creatorID uuid.UUID) (store.Creator, error) {
	creator, err := p.store.GetCreatorByID(ctx, creatorID)
	if err != nil {
		p.logger.Error(ctx, "failed to reload creator", err)
		return store.Creator{}, err
	}
	return creator, nil
}
