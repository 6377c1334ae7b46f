package payment

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/i2u-ai/platform/internal/domain"
	"github.com/i2u-ai/platform/internal/dto"
	paymentservice "github.com/i2u-ai/platform/internal/service/paymentservice"
	"github.com/i2u-ai/platform/pkg/auth"
	"github.com/i2u-ai/platform/pkg/utils"
)

//go:generate mockgen -source=payment.go -destination=payment_mock.go -package=payment

type Service interface {
	PendingStatus(ctx context.Context, userID int) (*paymentservice.PendingStatus, error)
	FlagGlitch(ctx context.Context, userID int, reason string) (*domain.PaymentIntent, error)
}

type PaymentHandler struct {
	paymentService Service
}

func New(paymentService Service) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

// GetPendingStatus godoc
//
//	@Summary		Get pending payment status
//	@Description	Report whether the user has an open payment, its glitch flag and the current delay compensation bonus
//	@Tags			Payment
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.PendingStatusResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/payment/pending-status [get]
func (h *PaymentHandler) GetPendingStatus(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	status, err := h.paymentService.PendingStatus(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := dto.PendingStatusResponseDTO{
		HasPendingPayment: status.HasPendingPayment,
		Amount:            status.Amount,
		Currency:          string(status.Currency),
		AwaitingINR:       status.AwaitingINR,
		AwaitingUSD:       status.AwaitingUSD,
		GlitchFlagged:     status.GlitchFlaggedAt != nil,
		GlitchResolved:    status.GlitchResolved,
		DelayHours:        status.DelayHours,
		DelayDays:         status.DelayDays,
		BonusPercent:      status.BonusPercent,
		RegistrationFee:   status.RegistrationFee,
		FeeCurrency:       string(status.FeeCurrency),
	}
	switch status.Currency {
	case domain.CurrencyINR:
		resp.Amounts.INR = status.Amount
	case domain.CurrencyUSD:
		resp.Amounts.USD = status.Amount
	}
	if status.GlitchFlaggedAt != nil {
		formatted := status.GlitchFlaggedAt.Format(time.RFC3339)
		resp.GlitchFlaggedAt = &formatted
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// FlagGlitch godoc
//
//	@Summary		Flag a payment glitch
//	@Description	Mark the user's open payment as hit by a gateway glitch, starting the delay compensation clock. Flagging again does not restart the clock.
//	@Tags			Payment
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		dto.FlagGlitchRequestDTO	false	"Optional glitch context"
//	@Success		200		{object}	dto.FlagGlitchResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"No pending payment"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/payment/flag-glitch [post]
func (h *PaymentHandler) FlagGlitch(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	// The body is optional, but when one is sent it has to parse.
	var req dto.FlagGlitchRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	intent, err := h.paymentService.FlagGlitch(r.Context(), userID, req.Reason)
	if err != nil {
		if errors.Is(err, paymentservice.ErrNoPendingPayment) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.FlagGlitchResponseDTO{
		Message:         "Payment glitch recorded",
		GlitchFlaggedAt: intent.GlitchFlaggedAt.Format(time.RFC3339),
	})
}
