package pricingservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/i2u-ai/platform/internal/domain"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func intPtr(v int) *int { return &v }

func ladder() []domain.PricingBracket {
	return []domain.PricingBracket{
		{ID: 1, StakeholderType: domain.StakeholderEcosystem, Currency: domain.CurrencyINR, MinSignups: 1, MaxSignups: intPtr(100), Price: 999},
		{ID: 2, StakeholderType: domain.StakeholderEcosystem, Currency: domain.CurrencyINR, MinSignups: 101, MaxSignups: intPtr(500), Price: 1999},
		{ID: 3, StakeholderType: domain.StakeholderEcosystem, Currency: domain.CurrencyINR, MinSignups: 501, Price: 2999},
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name           string
		count          int
		expectedPrice  float64
		expectedNext   *float64
		expectedSpots  int
		expectedTierAt *int
		isLast         bool
	}{
		{
			name:           "count at bracket max stays in bracket",
			count:          100,
			expectedPrice:  999,
			expectedNext:   func() *float64 { v := 1999.0; return &v }(),
			expectedSpots:  0,
			expectedTierAt: intPtr(100),
		},
		{
			name:           "count inside first bracket",
			count:          42,
			expectedPrice:  999,
			expectedNext:   func() *float64 { v := 1999.0; return &v }(),
			expectedSpots:  58,
			expectedTierAt: intPtr(100),
		},
		{
			name:           "count just past bracket max enters next bracket",
			count:          101,
			expectedPrice:  1999,
			expectedNext:   func() *float64 { v := 2999.0; return &v }(),
			expectedSpots:  399,
			expectedTierAt: intPtr(500),
		},
		{
			name:          "count in terminal bracket",
			count:         501,
			expectedPrice: 2999,
			isLast:        true,
		},
		{
			name:           "zero count resolves to first bracket",
			count:          0,
			expectedPrice:  999,
			expectedNext:   func() *float64 { v := 1999.0; return &v }(),
			expectedSpots:  100,
			expectedTierAt: intPtr(100),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote, err := Resolve(ladder(), tt.count)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedPrice, quote.CurrentPrice)
			assert.Equal(t, tt.isLast, quote.IsLastTier)
			if tt.isLast {
				assert.Nil(t, quote.NextPrice)
				assert.Nil(t, quote.NextTierAt)
			} else {
				assert.Equal(t, *tt.expectedNext, *quote.NextPrice)
				assert.Equal(t, *tt.expectedTierAt, *quote.NextTierAt)
				assert.Equal(t, tt.expectedSpots, quote.SpotsRemaining)
				assert.Equal(t, *quote.NextTierAt-tt.count, quote.SpotsRemaining)
			}
		})
	}
}

func TestResolveNegativeCount(t *testing.T) {
	_, err := Resolve(ladder(), -1)
	assert.ErrorIs(t, err, ErrInvalidCount)
}

func TestResolveConfigErrors(t *testing.T) {
	tests := []struct {
		name     string
		brackets []domain.PricingBracket
		count    int
	}{
		{
			name:     "empty ladder",
			brackets: nil,
			count:    1,
		},
		{
			name: "gap between brackets",
			brackets: []domain.PricingBracket{
				{ID: 1, MinSignups: 1, MaxSignups: intPtr(100), Price: 999},
				{ID: 2, MinSignups: 200, MaxSignups: intPtr(500), Price: 1999},
			},
			count: 50,
		},
		{
			name: "overlapping brackets",
			brackets: []domain.PricingBracket{
				{ID: 1, MinSignups: 1, MaxSignups: intPtr(100), Price: 999},
				{ID: 2, MinSignups: 100, MaxSignups: intPtr(500), Price: 1999},
			},
			count: 50,
		},
		{
			name: "count beyond closed ladder",
			brackets: []domain.PricingBracket{
				{ID: 1, MinSignups: 1, MaxSignups: intPtr(100), Price: 999},
			},
			count: 101,
		},
		{
			name: "open-ended bracket not terminal",
			brackets: []domain.PricingBracket{
				{ID: 1, MinSignups: 1, Price: 999},
				{ID: 2, MinSignups: 101, MaxSignups: intPtr(500), Price: 1999},
			},
			count: 50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(tt.brackets, tt.count)
			var cfgErr *ConfigError
			assert.ErrorAs(t, err, &cfgErr)
		})
	}
}

func usdLadder() []domain.PricingBracket {
	return []domain.PricingBracket{
		{ID: 4, MinSignups: 1, MaxSignups: intPtr(100), Price: 12},
		{ID: 5, MinSignups: 101, MaxSignups: intPtr(500), Price: 24},
		{ID: 6, MinSignups: 501, Price: 36},
	}
}

func NewMock(t *testing.T) (*Service, *MockPricingRepo, *MockSignupRepo) {
	ctrl := gomock.NewController(t)
	pricingRepo := NewMockPricingRepo(ctrl)
	signupRepo := NewMockSignupRepo(ctrl)
	service := New(pricingRepo, signupRepo)
	defer ctrl.Finish()
	return service, pricingRepo, signupRepo
}

func TestDynamicStats(t *testing.T) {
	service, pricingRepo, signupRepo := NewMock(t)
	fixedNow := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return fixedNow }

	signupRepo.EXPECT().Count(gomock.Any(), domain.StakeholderEcosystem).Return(80, nil)
	pricingRepo.EXPECT().FindActive(gomock.Any(), domain.StakeholderEcosystem, domain.CurrencyINR).Return(ladder(), nil)
	pricingRepo.EXPECT().FindActive(gomock.Any(), domain.StakeholderEcosystem, domain.CurrencyUSD).Return(usdLadder(), nil)
	signupRepo.EXPECT().CountSince(gomock.Any(), domain.StakeholderEcosystem, gomock.Any()).Return(14, nil)

	stats, err := service.DynamicStats(context.Background(), domain.StakeholderEcosystem)
	assert.NoError(t, err)
	assert.Equal(t, 80, stats.SignupCount)
	assert.Equal(t, 999.0, stats.CurrentPriceINR)
	assert.Equal(t, 12.0, stats.CurrentPriceUSD)
	assert.Equal(t, 1999.0, *stats.NextPriceINR)
	assert.Equal(t, 24.0, *stats.NextPriceUSD)
	assert.Equal(t, 20, stats.SpotsRemaining)
	assert.Equal(t, 100, *stats.NextTierAt)
	assert.False(t, stats.IsLastTier)
	assert.InDelta(t, 2.0, stats.AvgRegistrationsPerDay, 1e-9)
	// 20 spots at 2/day is 10 days out.
	assert.Equal(t, 10, *stats.DaysUntilNextTier)
	assert.Equal(t, fixedNow.AddDate(0, 0, 10), *stats.EstimatedNextTierDate)
}

func TestDynamicStatsEmptyWindow(t *testing.T) {
	service, pricingRepo, signupRepo := NewMock(t)

	signupRepo.EXPECT().Count(gomock.Any(), domain.StakeholderEcosystem).Return(80, nil)
	pricingRepo.EXPECT().FindActive(gomock.Any(), domain.StakeholderEcosystem, domain.CurrencyINR).Return(ladder(), nil)
	pricingRepo.EXPECT().FindActive(gomock.Any(), domain.StakeholderEcosystem, domain.CurrencyUSD).Return(usdLadder(), nil)
	signupRepo.EXPECT().CountSince(gomock.Any(), domain.StakeholderEcosystem, gomock.Any()).Return(0, nil)

	stats, err := service.DynamicStats(context.Background(), domain.StakeholderEcosystem)
	assert.NoError(t, err)
	assert.Zero(t, stats.AvgRegistrationsPerDay)
	assert.Nil(t, stats.DaysUntilNextTier)
	assert.Nil(t, stats.EstimatedNextTierDate)
}

func TestDynamicStatsLastTier(t *testing.T) {
	service, pricingRepo, signupRepo := NewMock(t)

	signupRepo.EXPECT().Count(gomock.Any(), domain.StakeholderEcosystem).Return(501, nil)
	pricingRepo.EXPECT().FindActive(gomock.Any(), domain.StakeholderEcosystem, domain.CurrencyINR).Return(ladder(), nil)
	pricingRepo.EXPECT().FindActive(gomock.Any(), domain.StakeholderEcosystem, domain.CurrencyUSD).Return(usdLadder(), nil)
	signupRepo.EXPECT().CountSince(gomock.Any(), domain.StakeholderEcosystem, gomock.Any()).Return(5, nil)

	stats, err := service.DynamicStats(context.Background(), domain.StakeholderEcosystem)
	assert.NoError(t, err)
	assert.True(t, stats.IsLastTier)
	assert.Nil(t, stats.NextPriceINR)
	assert.Nil(t, stats.NextPriceUSD)
	assert.Nil(t, stats.DaysUntilNextTier)
}

func TestDynamicStatsConfigError(t *testing.T) {
	service, pricingRepo, signupRepo := NewMock(t)

	signupRepo.EXPECT().Count(gomock.Any(), domain.StakeholderEcosystem).Return(80, nil)
	pricingRepo.EXPECT().FindActive(gomock.Any(), domain.StakeholderEcosystem, domain.CurrencyINR).Return(nil, nil)

	_, err := service.DynamicStats(context.Background(), domain.StakeholderEcosystem)
	var cfgErr *ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestCurrentPrice(t *testing.T) {
	service, pricingRepo, signupRepo := NewMock(t)

	signupRepo.EXPECT().Count(gomock.Any(), domain.StakeholderEcosystem).Return(150, nil)
	pricingRepo.EXPECT().FindActive(gomock.Any(), domain.StakeholderEcosystem, domain.CurrencyINR).Return(ladder(), nil)

	price, err := service.CurrentPrice(context.Background(), domain.StakeholderEcosystem, domain.CurrencyINR)
	assert.NoError(t, err)
	assert.Equal(t, 1999.0, price)
}

func TestCurrentPriceCountError(t *testing.T) {
	service, _, signupRepo := NewMock(t)

	signupRepo.EXPECT().Count(gomock.Any(), domain.StakeholderEcosystem).Return(0, errors.New("db error"))

	_, err := service.CurrentPrice(context.Background(), domain.StakeholderEcosystem, domain.CurrencyINR)
	assert.Error(t, err)
}
