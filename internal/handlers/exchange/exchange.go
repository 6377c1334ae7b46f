package exchange

import (
	"context"
	"net/http"
	"time"

	"github.com/i2u-ai/platform/internal/dto"
	exchangesvc "github.com/i2u-ai/platform/internal/exchange"
	"github.com/i2u-ai/platform/pkg/utils"
)

//go:generate mockgen -source=exchange.go -destination=exchange_mock.go -package=exchange

type Service interface {
	Current(ctx context.Context) (*exchangesvc.Rate, error)
}

type ExchangeHandler struct {
	exchangeService Service
}

func New(exchangeService Service) *ExchangeHandler {
	return &ExchangeHandler{
		exchangeService: exchangeService,
	}
}

// GetRate godoc
//
//	@Summary		Get USD to INR reference rate
//	@Description	Display-only exchange rate with its fetch date and source; stale or fallback values are served when the provider is down
//	@Tags			Exchange
//	@Produce		json
//	@Success		200	{object}	dto.ExchangeRateResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/exchange-rate [get]
func (h *ExchangeHandler) GetRate(w http.ResponseWriter, r *http.Request) {
	rate, err := h.exchangeService.Current(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ExchangeRateResponseDTO{
		Rate:   rate.Rate,
		Date:   rate.Date.Format(time.RFC3339),
		Source: rate.Source,
	})
}
