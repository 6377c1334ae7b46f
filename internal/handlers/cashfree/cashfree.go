package cashfree

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/i2u-ai/platform/internal/domain"
	"github.com/i2u-ai/platform/internal/dto"
	gateway "github.com/i2u-ai/platform/internal/gateway/cashfree"
	"github.com/i2u-ai/platform/internal/service/paymentservice"
	"github.com/i2u-ai/platform/pkg/auth"
	"github.com/i2u-ai/platform/pkg/utils"
)

//go:generate mockgen -source=cashfree.go -destination=cashfree_mock.go -package=cashfree

type Payments interface {
	QuoteRegistration(ctx context.Context, userID int) (float64, domain.Currency, error)
	Open(ctx context.Context, userID int, method string, amount float64, currency domain.Currency, providerRef string) (*domain.PaymentIntent, error)
	SettleByProviderRef(ctx context.Context, userID int, providerRef string, outcome domain.PaymentStatus) (*domain.PaymentIntent, error)
}

type Gateway interface {
	Config() gateway.ClientConfig
	CreateOrder(ctx context.Context, orderID string, userID int, amount float64, currency domain.Currency) (*gateway.Order, error)
	GetOrder(ctx context.Context, orderID string) (*gateway.Order, error)
}

type CashfreeHandler struct {
	payments Payments
	gateway  Gateway
}

func New(payments Payments, gw Gateway) *CashfreeHandler {
	return &CashfreeHandler{
		payments: payments,
		gateway:  gw,
	}
}

// GetConfig godoc
//
//	@Summary		Get gateway checkout config
//	@Description	Publishable Cashfree app id and mode for the frontend checkout widget
//	@Tags			Cashfree
//	@Produce		json
//	@Success		200	{object}	dto.CashfreeConfigResponseDTO
//	@Router			/api/cashfree/config [get]
func (h *CashfreeHandler) GetConfig(w http.ResponseWriter, r *http.Request) {
	cfg := h.gateway.Config()
	utils.RespondWithJSON(w, http.StatusOK, dto.CashfreeConfigResponseDTO{
		AppID: cfg.AppID,
		Mode:  cfg.Mode,
	})
}

// CreateOrder godoc
//
//	@Summary		Create a registration payment order
//	@Description	Price the registration fee at the current tier, register a gateway order and open a payment intent for it
//	@Tags			Cashfree
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.CreateOrderResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		409	{object}	utils.Response	"Payment already pending"
//	@Failure		502	{object}	utils.Response	"Gateway unavailable"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/cashfree/order [post]
func (h *CashfreeHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	amount, currency, err := h.payments.QuoteRegistration(r.Context(), userID)
	if err != nil {
		if errors.Is(err, paymentservice.ErrPaymentAlreadyPending) {
			utils.RespondWithError(w, http.StatusConflict, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	orderID := uuid.NewString()
	order, err := h.gateway.CreateOrder(r.Context(), orderID, userID, amount, currency)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadGateway, "Payment gateway unavailable")
		return
	}

	if _, err := h.payments.Open(r.Context(), userID, domain.PaymentMethodCashfree, amount, currency, orderID); err != nil {
		if errors.Is(err, paymentservice.ErrPaymentAlreadyPending) {
			utils.RespondWithError(w, http.StatusConflict, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.CreateOrderResponseDTO{
		OrderID:          orderID,
		PaymentSessionID: order.PaymentSessionID,
		Amount:           amount,
		Currency:         string(currency),
	})
}

// VerifyOrder godoc
//
//	@Summary		Verify a payment order
//	@Description	Ask the gateway for the order's fate and settle the matching payment intent when it is terminal
//	@Tags			Cashfree
//	@Security		BearerAuth
//	@Produce		json
//	@Param			orderID	path		string	true	"Gateway order id"
//	@Success		200		{object}	dto.VerifyOrderResponseDTO
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Unknown order"
//	@Failure		502		{object}	utils.Response	"Gateway unavailable"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/cashfree/verify/{orderID} [get]
func (h *CashfreeHandler) VerifyOrder(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	orderID := chi.URLParam(r, "orderID")

	order, err := h.gateway.GetOrder(r.Context(), orderID)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadGateway, "Payment gateway unavailable")
		return
	}

	outcome := gateway.Outcome(order.OrderStatus)
	if outcome == "" {
		utils.RespondWithJSON(w, http.StatusOK, dto.VerifyOrderResponseDTO{
			OrderID: orderID,
			Status:  string(domain.PaymentPending),
		})
		return
	}

	intent, err := h.payments.SettleByProviderRef(r.Context(), userID, orderID, outcome)
	if err != nil {
		if errors.Is(err, paymentservice.ErrNoPendingPayment) {
			utils.RespondWithError(w, http.StatusNotFound, "Unknown order")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.VerifyOrderResponseDTO{
		OrderID: orderID,
		Status:  string(intent.Status),
	})
}
