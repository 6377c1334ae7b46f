package pricingservice

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/i2u-ai/platform/internal/domain"
	"go.uber.org/zap"
)

//go:generate mockgen -source=pricingservice.go -destination=pricingservice_mock.go -package=pricingservice

type PricingRepo interface {
	FindActive(ctx context.Context, stakeholderType domain.StakeholderType, currency domain.Currency) ([]domain.PricingBracket, error)
}

type SignupRepo interface {
	Count(ctx context.Context, stakeholderType domain.StakeholderType) (int, error)
	CountSince(ctx context.Context, stakeholderType domain.StakeholderType, since time.Time) (int, error)
}

// trailingWindowDays is the lookback used for the signups-per-day estimate.
const trailingWindowDays = 7

var ErrInvalidCount = errors.New("signup count is negative")

// ConfigError reports a broken bracket ladder (gap, overlap, uncovered
// count). Pricing must fail rather than guess a price.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "pricing configuration error: " + e.Reason
}

// TierQuote is the resolver output for one (stakeholder type, currency)
// ladder at a given signup count.
type TierQuote struct {
	SignupCount    int
	CurrentPrice   float64
	NextPrice      *float64
	NextTierAt     *int
	SpotsRemaining int
	IsLastTier     bool
}

// DynamicStats is the assembled dynamic-pricing view across both
// currencies of one stakeholder type.
type DynamicStats struct {
	SignupCount            int
	CurrentPriceINR        float64
	CurrentPriceUSD        float64
	NextPriceINR           *float64
	NextPriceUSD           *float64
	NextTierAt             *int
	SpotsRemaining         int
	IsLastTier             bool
	AvgRegistrationsPerDay float64
	DaysUntilNextTier      *int
	EstimatedNextTierDate  *time.Time
}

type Service struct {
	pricingRepo PricingRepo
	signupRepo  SignupRepo
	now         func() time.Time
}

func New(pricingRepo PricingRepo, signupRepo SignupRepo) *Service {
	return &Service{
		pricingRepo: pricingRepo,
		signupRepo:  signupRepo,
		now:         time.Now,
	}
}

// Resolve maps a signup count onto the bracket ladder. Bracket maxima are
// inclusive: a count equal to a bracket's max still belongs to that
// bracket. Counts below the first bracket's minimum resolve to the first
// bracket, since that is where the next registrant lands.
func Resolve(brackets []domain.PricingBracket, count int) (*TierQuote, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, count)
	}
	if err := validateLadder(brackets); err != nil {
		return nil, err
	}

	idx := -1
	for i, b := range brackets {
		if count < b.MinSignups {
			break
		}
		if b.MaxSignups == nil || count <= *b.MaxSignups {
			idx = i
			break
		}
	}
	if idx == -1 {
		if count < brackets[0].MinSignups {
			idx = 0
		} else {
			return nil, &ConfigError{Reason: fmt.Sprintf("no bracket covers signup count %d", count)}
		}
	}

	current := brackets[idx]
	quote := &TierQuote{
		SignupCount:  count,
		CurrentPrice: current.Price,
	}

	if current.MaxSignups == nil || idx == len(brackets)-1 {
		quote.IsLastTier = true
		return quote, nil
	}

	next := brackets[idx+1]
	quote.NextPrice = &next.Price
	quote.NextTierAt = current.MaxSignups
	quote.SpotsRemaining = *current.MaxSignups - count
	return quote, nil
}

// validateLadder checks ordering and contiguity: brackets sorted by
// min_signups, each next bracket starting exactly one past the previous
// max, and only the final bracket open-ended.
func validateLadder(brackets []domain.PricingBracket) error {
	if len(brackets) == 0 {
		return &ConfigError{Reason: "no active brackets configured"}
	}
	for i, b := range brackets {
		if b.MaxSignups != nil && *b.MaxSignups < b.MinSignups {
			return &ConfigError{Reason: fmt.Sprintf("bracket %d has max below min", b.ID)}
		}
		if b.MaxSignups == nil && i != len(brackets)-1 {
			return &ConfigError{Reason: fmt.Sprintf("open-ended bracket %d is not terminal", b.ID)}
		}
		if i == 0 {
			continue
		}
		prev := brackets[i-1]
		if prev.MaxSignups == nil {
			return &ConfigError{Reason: fmt.Sprintf("bracket %d follows an open-ended bracket", b.ID)}
		}
		if b.MinSignups != *prev.MaxSignups+1 {
			return &ConfigError{Reason: fmt.Sprintf("gap or overlap between brackets %d and %d", prev.ID, b.ID)}
		}
	}
	return nil
}

// DynamicStats resolves both currency ladders of a stakeholder type at the
// current signup count and estimates when the next tier activates.
func (s *Service) DynamicStats(ctx context.Context, stakeholderType domain.StakeholderType) (*DynamicStats, error) {
	count, err := s.signupRepo.Count(ctx, stakeholderType)
	if err != nil {
		zap.L().Error("failed to read signup count", zap.Error(err))
		return nil, err
	}

	inr, err := s.resolveCurrency(ctx, stakeholderType, domain.CurrencyINR, count)
	if err != nil {
		return nil, err
	}
	usd, err := s.resolveCurrency(ctx, stakeholderType, domain.CurrencyUSD, count)
	if err != nil {
		return nil, err
	}

	stats := &DynamicStats{
		SignupCount:     count,
		CurrentPriceINR: inr.CurrentPrice,
		CurrentPriceUSD: usd.CurrentPrice,
		NextPriceINR:    inr.NextPrice,
		NextPriceUSD:    usd.NextPrice,
		NextTierAt:      inr.NextTierAt,
		SpotsRemaining:  inr.SpotsRemaining,
		IsLastTier:      inr.IsLastTier,
	}

	now := s.now()
	windowStart := now.AddDate(0, 0, -trailingWindowDays)
	recent, err := s.signupRepo.CountSince(ctx, stakeholderType, windowStart)
	if err != nil {
		zap.L().Error("failed to count recent signups", zap.Error(err))
		return nil, err
	}
	stats.AvgRegistrationsPerDay = float64(recent) / trailingWindowDays

	// A silent window means the estimate is unavailable, not zero days.
	if recent > 0 && !stats.IsLastTier {
		days := int(math.Ceil(float64(stats.SpotsRemaining) / stats.AvgRegistrationsPerDay))
		estimated := now.AddDate(0, 0, days)
		stats.DaysUntilNextTier = &days
		stats.EstimatedNextTierDate = &estimated
	}

	return stats, nil
}

func (s *Service) resolveCurrency(ctx context.Context, stakeholderType domain.StakeholderType, currency domain.Currency, count int) (*TierQuote, error) {
	brackets, err := s.pricingRepo.FindActive(ctx, stakeholderType, currency)
	if err != nil {
		zap.L().Error("failed to load pricing brackets", zap.Error(err))
		return nil, err
	}
	quote, err := Resolve(brackets, count)
	if err != nil {
		zap.L().Error("pricing resolution failed",
			zap.String("stakeholderType", string(stakeholderType)),
			zap.String("currency", string(currency)),
			zap.Error(err))
		return nil, err
	}
	return quote, nil
}

// CurrentPrice returns the active price for one currency, used when
// opening a registration payment.
func (s *Service) CurrentPrice(ctx context.Context, stakeholderType domain.StakeholderType, currency domain.Currency) (float64, error) {
	count, err := s.signupRepo.Count(ctx, stakeholderType)
	if err != nil {
		return 0, err
	}
	quote, err := s.resolveCurrency(ctx, stakeholderType, currency, count)
	if err != nil {
		return 0, err
	}
	return quote.CurrentPrice, nil
}
