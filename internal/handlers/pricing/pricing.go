package pricing

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/i2u-ai/platform/internal/domain"
	"github.com/i2u-ai/platform/internal/dto"
	pricingservice "github.com/i2u-ai/platform/internal/service/pricingservice"
	"github.com/i2u-ai/platform/pkg/utils"
)

//go:generate mockgen -source=pricing.go -destination=pricing_mock.go -package=pricing

type Service interface {
	DynamicStats(ctx context.Context, stakeholderType domain.StakeholderType) (*pricingservice.DynamicStats, error)
}

type PricingHandler struct {
	pricingService Service
}

func New(pricingService Service) *PricingHandler {
	return &PricingHandler{
		pricingService: pricingService,
	}
}

// GetDynamicStats godoc
//
//	@Summary		Get dynamic pricing stats
//	@Description	Current tier price in both currencies, spots remaining before the next tier and a next-tier date estimate for the requested stakeholder type
//	@Tags			Pricing
//	@Produce		json
//	@Param			stakeholderType	query		string	false	"Stakeholder type"	Enums(ecosystem, professional)	default(ecosystem)
//	@Success		200				{object}	dto.DynamicStatsResponseDTO
//	@Failure		400				{object}	utils.Response	"Invalid stakeholder type"
//	@Failure		500				{object}	utils.Response	"Internal server error"
//	@Router			/api/pricing/dynamic-stats [get]
func (h *PricingHandler) GetDynamicStats(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("stakeholderType")
	if raw == "" {
		raw = string(domain.StakeholderEcosystem)
	}
	stakeholderType, err := domain.ParseStakeholderType(raw)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid stakeholder type")
		return
	}

	stats, err := h.pricingService.DynamicStats(r.Context(), stakeholderType)
	if err != nil {
		var cfgErr *pricingservice.ConfigError
		if errors.As(err, &cfgErr) {
			utils.RespondWithError(w, http.StatusInternalServerError, "Pricing configuration error")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := dto.DynamicStatsResponseDTO{
		StakeholderType:        string(stakeholderType),
		SignupCount:            stats.SignupCount,
		CurrentPriceINR:        stats.CurrentPriceINR,
		CurrentPriceUSD:        stats.CurrentPriceUSD,
		NextPriceINR:           stats.NextPriceINR,
		NextPriceUSD:           stats.NextPriceUSD,
		NextTierAt:             stats.NextTierAt,
		SpotsRemaining:         stats.SpotsRemaining,
		IsLastTier:             stats.IsLastTier,
		AvgRegistrationsPerDay: stats.AvgRegistrationsPerDay,
		DaysUntilNextTier:      stats.DaysUntilNextTier,
	}
	if stats.EstimatedNextTierDate != nil {
		formatted := stats.EstimatedNextTierDate.Format(time.RFC3339)
		resp.EstimatedNextTierDate = &formatted
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}
