package program

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"affiliate-server/internal/config"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptySchedule   = errors.New("tier schedule is empty")
	ErrInvalidSchedule = errors.New("invalid tier schedule")
)

// Tier is one rung of the program's tier ladder. Rank is 1-based and
// assigned from schedule order.
type Tier struct {
	Rank         int
	MinRecruits  int
	DirectRate   decimal.Decimal // percent
	OverrideRate decimal.Decimal // percent
}

// Program holds the static rules of the affiliate program: the tier ladder,
// payout minimum, hold period, attribution window and cookie names.
// Pure data, resolved once at startup.
type Program struct {
	Tiers                 []Tier
	MinPayoutAmount       decimal.Decimal
	HoldPeriod            time.Duration
	AttributionWindow     time.Duration
	AttributionCookieName string
	SessionCookieName     string
	FallbackRedirectPath  string
	ClickDedupeWindow     time.Duration
}

// New builds a Program from configuration. The tier schedule is a
// comma-separated list of "minRecruits:directRate:overrideRate" rungs,
// e.g. "0:10:0,5:12:2,15:15:3". Thresholds must start at zero and be
// strictly increasing so tier assignment is a monotonic step function.
func New(cfg config.ProgramConfig) (*Program, error) {
	tiers, err := parseSchedule(cfg.TierSchedule)
	if err != nil {
		return nil, err
	}

	return &Program{
		Tiers:                 tiers,
		MinPayoutAmount:       cfg.MinPayoutAmount,
		HoldPeriod:            time.Duration(cfg.HoldDays) * 24 * time.Hour,
		AttributionWindow:     time.Duration(cfg.AttributionWindowDays) * 24 * time.Hour,
		AttributionCookieName: cfg.AttributionCookieName,
		SessionCookieName:     cfg.SessionCookieName,
		FallbackRedirectPath:  cfg.FallbackRedirectPath,
		ClickDedupeWindow:     time.Duration(cfg.ClickDedupeSeconds) * time.Second,
	}, nil
}

func parseSchedule(raw string) ([]Tier, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, ErrEmptySchedule
	}

	rungs := strings.Split(raw, ",")
	tiers := make([]Tier, 0, len(rungs))
	for i, rung := range rungs {
		parts := strings.Split(strings.TrimSpace(rung), ":")
		if len(parts) != 3 {
			return nil, fmt.Errorf("rung %q must be minRecruits:directRate:overrideRate: %w", rung, ErrInvalidSchedule)
		}

		minRecruits, err := strconv.Atoi(parts[0])
		if err != nil {
			return nil, fmt.Errorf("rung %q has invalid recruit threshold: %w", rung, ErrInvalidSchedule)
		}
		directRate, err := decimal.NewFromString(parts[1])
		if err != nil {
			return nil, fmt.Errorf("rung %q has invalid direct rate: %w", rung, ErrInvalidSchedule)
		}
		overrideRate, err := decimal.NewFromString(parts[2])
		if err != nil {
			return nil, fmt.Errorf("rung %q has invalid override rate: %w", rung, ErrInvalidSchedule)
		}

		if i == 0 && minRecruits != 0 {
			return nil, fmt.Errorf("first rung must start at 0 recruits: %w", ErrInvalidSchedule)
		}
		if i > 0 && minRecruits <= tiers[i-1].MinRecruits {
			return nil, fmt.Errorf("recruit thresholds must be strictly increasing: %w", ErrInvalidSchedule)
		}
		if directRate.IsNegative() || overrideRate.IsNegative() {
			return nil, fmt.Errorf("rates must not be negative: %w", ErrInvalidSchedule)
		}

		tiers = append(tiers, Tier{
			Rank:         i + 1,
			MinRecruits:  minRecruits,
			DirectRate:   directRate,
			OverrideRate: overrideRate,
		})
	}

	return tiers, nil
}

// TierForRecruitCount returns the tier a creator with the given recruit
// count occupies. Step function: the highest rung whose threshold is met.
func (p *Program) TierForRecruitCount(recruitCount int) Tier {
	current := p.Tiers[0]
	for _, tier := range p.Tiers {
		if recruitCount >= tier.MinRecruits {
			current = tier
		}
	}
	return current
}

// TierByRank returns the tier with the given rank, falling back to the
// lowest rung for unknown ranks so a stale creator row still earns.
func (p *Program) TierByRank(rank int) Tier {
	for _, tier := range p.Tiers {
		if tier.Rank == rank {
			return tier
		}
	}
	return p.Tiers[0]
}
