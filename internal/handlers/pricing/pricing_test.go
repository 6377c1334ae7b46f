package pricing

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/i2u-ai/platform/internal/domain"
	"github.com/i2u-ai/platform/internal/dto"
	pricingservice "github.com/i2u-ai/platform/internal/service/pricingservice"
)

func NewMock(t *testing.T) (*PricingHandler, *MockService) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func intPtr(v int) *int              { return &v }
func floatPtr(v float64) *float64    { return &v }
func timePtr(v time.Time) *time.Time { return &v }

func TestGetDynamicStats(t *testing.T) {
	handler, service := NewMock(t)

	estimate := time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC)
	stats := &pricingservice.DynamicStats{
		SignupCount:            80,
		CurrentPriceINR:        999,
		CurrentPriceUSD:        12,
		NextPriceINR:           floatPtr(1999),
		NextPriceUSD:           floatPtr(24),
		NextTierAt:             intPtr(100),
		SpotsRemaining:         20,
		AvgRegistrationsPerDay: 2,
		DaysUntilNextTier:      intPtr(10),
		EstimatedNextTierDate:  timePtr(estimate),
	}
	service.EXPECT().DynamicStats(gomock.Any(), domain.StakeholderEcosystem).Return(stats, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/pricing/dynamic-stats?stakeholderType=ecosystem", nil)
	w := httptest.NewRecorder()
	handler.GetDynamicStats(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp dto.DynamicStatsResponseDTO
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 80, resp.SignupCount)
	assert.Equal(t, 999.0, resp.CurrentPriceINR)
	assert.Equal(t, 20, resp.SpotsRemaining)
	if assert.NotNil(t, resp.NextTierAt) {
		assert.Equal(t, 100, *resp.NextTierAt)
	}
	if assert.NotNil(t, resp.EstimatedNextTierDate) {
		assert.Equal(t, "2026-09-08T00:00:00Z", *resp.EstimatedNextTierDate)
	}
}

func TestGetDynamicStatsDefaultsToEcosystem(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().DynamicStats(gomock.Any(), domain.StakeholderEcosystem).
		Return(&pricingservice.DynamicStats{SignupCount: 5, CurrentPriceINR: 999, IsLastTier: false}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/pricing/dynamic-stats", nil)
	w := httptest.NewRecorder()
	handler.GetDynamicStats(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetDynamicStatsLastTierHasNullEstimates(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().DynamicStats(gomock.Any(), domain.StakeholderProfessional).
		Return(&pricingservice.DynamicStats{SignupCount: 900, CurrentPriceINR: 5999, CurrentPriceUSD: 72, IsLastTier: true}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/pricing/dynamic-stats?stakeholderType=professional", nil)
	w := httptest.NewRecorder()
	handler.GetDynamicStats(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp dto.DynamicStatsResponseDTO
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.IsLastTier)
	assert.Nil(t, resp.NextPriceINR)
	assert.Nil(t, resp.NextTierAt)
	assert.Nil(t, resp.DaysUntilNextTier)
	assert.Nil(t, resp.EstimatedNextTierDate)
}

func TestGetDynamicStatsInvalidType(t *testing.T) {
	handler, _ := NewMock(t)

	req := httptest.NewRequest(http.MethodGet, "/api/pricing/dynamic-stats?stakeholderType=investor", nil)
	w := httptest.NewRecorder()
	handler.GetDynamicStats(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetDynamicStatsConfigError(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().DynamicStats(gomock.Any(), domain.StakeholderEcosystem).
		Return(nil, &pricingservice.ConfigError{Reason: "gap between brackets"})

	req := httptest.NewRequest(http.MethodGet, "/api/pricing/dynamic-stats", nil)
	w := httptest.NewRecorder()
	handler.GetDynamicStats(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetDynamicStatsServiceError(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().DynamicStats(gomock.Any(), domain.StakeholderEcosystem).
		Return(nil, errors.New("db down"))

	req := httptest.NewRequest(http.MethodGet, "/api/pricing/dynamic-stats", nil)
	w := httptest.NewRecorder()
	handler.GetDynamicStats(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
