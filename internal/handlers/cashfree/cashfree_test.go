package cashfree

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/i2u-ai/platform/internal/domain"
	"github.com/i2u-ai/platform/internal/dto"
	gateway "github.com/i2u-ai/platform/internal/gateway/cashfree"
	paymentservice "github.com/i2u-ai/platform/internal/service/paymentservice"
	"github.com/i2u-ai/platform/pkg/auth"
)

func NewMock(t *testing.T) (*CashfreeHandler, *MockPayments, *MockGateway) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	payments := NewMockPayments(ctrl)
	gw := NewMockGateway(ctrl)
	handler := New(payments, gw)
	return handler, payments, gw
}

func authedRequest(method, target string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	ctx := context.WithValue(req.Context(), auth.UserIDKey, 1)
	return req.WithContext(ctx)
}

func verifyRequest(orderID string) *http.Request {
	req := authedRequest(http.MethodGet, "/api/cashfree/verify/"+orderID)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("orderID", orderID)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestGetConfig(t *testing.T) {
	handler, _, gw := NewMock(t)

	gw.EXPECT().Config().Return(gateway.ClientConfig{AppID: "app-123", Mode: "sandbox"})

	w := httptest.NewRecorder()
	handler.GetConfig(w, httptest.NewRequest(http.MethodGet, "/api/cashfree/config", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp dto.CashfreeConfigResponseDTO
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "app-123", resp.AppID)
	assert.Equal(t, "sandbox", resp.Mode)
}

func TestCreateOrder(t *testing.T) {
	handler, payments, gw := NewMock(t)

	payments.EXPECT().QuoteRegistration(gomock.Any(), 1).Return(999.0, domain.CurrencyINR, nil)
	gw.EXPECT().CreateOrder(gomock.Any(), gomock.Any(), 1, 999.0, domain.CurrencyINR).
		DoAndReturn(func(_ context.Context, orderID string, _ int, _ float64, _ domain.Currency) (*gateway.Order, error) {
			return &gateway.Order{OrderID: orderID, PaymentSessionID: "session-abc"}, nil
		})
	payments.EXPECT().Open(gomock.Any(), 1, domain.PaymentMethodCashfree, 999.0, domain.CurrencyINR, gomock.Any()).
		Return(&domain.PaymentIntent{ID: 5}, nil)

	w := httptest.NewRecorder()
	handler.CreateOrder(w, authedRequest(http.MethodPost, "/api/cashfree/order"))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp dto.CreateOrderResponseDTO
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.OrderID)
	assert.Equal(t, "session-abc", resp.PaymentSessionID)
	assert.Equal(t, 999.0, resp.Amount)
	assert.Equal(t, "INR", resp.Currency)
}

func TestCreateOrderAlreadyPending(t *testing.T) {
	handler, payments, _ := NewMock(t)

	payments.EXPECT().QuoteRegistration(gomock.Any(), 1).
		Return(0.0, domain.Currency(""), paymentservice.ErrPaymentAlreadyPending)

	w := httptest.NewRecorder()
	handler.CreateOrder(w, authedRequest(http.MethodPost, "/api/cashfree/order"))

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCreateOrderGatewayDown(t *testing.T) {
	handler, payments, gw := NewMock(t)

	payments.EXPECT().QuoteRegistration(gomock.Any(), 1).Return(999.0, domain.CurrencyINR, nil)
	gw.EXPECT().CreateOrder(gomock.Any(), gomock.Any(), 1, 999.0, domain.CurrencyINR).
		Return(nil, errors.New("connection refused"))

	w := httptest.NewRecorder()
	handler.CreateOrder(w, authedRequest(http.MethodPost, "/api/cashfree/order"))

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestVerifyOrderPaid(t *testing.T) {
	handler, payments, gw := NewMock(t)

	gw.EXPECT().GetOrder(gomock.Any(), "order-1").
		Return(&gateway.Order{OrderID: "order-1", OrderStatus: "PAID"}, nil)
	payments.EXPECT().SettleByProviderRef(gomock.Any(), 1, "order-1", domain.PaymentVerified).
		Return(&domain.PaymentIntent{ID: 5, Status: domain.PaymentVerified}, nil)

	w := httptest.NewRecorder()
	handler.VerifyOrder(w, verifyRequest("order-1"))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp dto.VerifyOrderResponseDTO
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "verified", resp.Status)
}

func TestVerifyOrderStillActive(t *testing.T) {
	handler, _, gw := NewMock(t)

	gw.EXPECT().GetOrder(gomock.Any(), "order-1").
		Return(&gateway.Order{OrderID: "order-1", OrderStatus: "ACTIVE"}, nil)

	w := httptest.NewRecorder()
	handler.VerifyOrder(w, verifyRequest("order-1"))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp dto.VerifyOrderResponseDTO
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "pending", resp.Status)
}

func TestVerifyOrderUnknown(t *testing.T) {
	handler, payments, gw := NewMock(t)

	gw.EXPECT().GetOrder(gomock.Any(), "order-x").
		Return(&gateway.Order{OrderID: "order-x", OrderStatus: "EXPIRED"}, nil)
	payments.EXPECT().SettleByProviderRef(gomock.Any(), 1, "order-x", domain.PaymentExpired).
		Return(nil, paymentservice.ErrNoPendingPayment)

	w := httptest.NewRecorder()
	handler.VerifyOrder(w, verifyRequest("order-x"))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestVerifyOrderOwnedByAnotherUser(t *testing.T) {
	handler, payments, gw := NewMock(t)

	gw.EXPECT().GetOrder(gomock.Any(), "order-7").
		Return(&gateway.Order{OrderID: "order-7", OrderStatus: "PAID"}, nil)
	payments.EXPECT().SettleByProviderRef(gomock.Any(), 1, "order-7", domain.PaymentVerified).
		Return(nil, paymentservice.ErrNoPendingPayment)

	w := httptest.NewRecorder()
	handler.VerifyOrder(w, verifyRequest("order-7"))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestVerifyOrderGatewayDown(t *testing.T) {
	handler, _, gw := NewMock(t)

	gw.EXPECT().GetOrder(gomock.Any(), "order-1").Return(nil, errors.New("timeout"))

	w := httptest.NewRecorder()
	handler.VerifyOrder(w, verifyRequest("order-1"))

	assert.Equal(t, http.StatusBadGateway, w.Code)
}
