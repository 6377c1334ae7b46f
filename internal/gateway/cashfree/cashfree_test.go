package cashfree

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/i2u-ai/platform/internal/config"
	"github.com/i2u-ai/platform/internal/domain"
	"github.com/i2u-ai/platform/pkg/clients"
)

func NewMock(t *testing.T) (*Client, *clients.MockHTTPClientI) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	httpClient := clients.NewMockHTTPClientI(ctrl)
	client := New(&config.Config{
		CashfreeAppID:   "app-123",
		CashfreeSecret:  "secret-456",
		CashfreeMode:    "sandbox",
		CashfreeAddress: "https://sandbox.cashfree.com",
	}, httpClient)
	return client, httpClient
}

func TestClient_Config(t *testing.T) {
	client, _ := NewMock(t)

	cfg := client.Config()
	assert.Equal(t, "app-123", cfg.AppID)
	assert.Equal(t, "sandbox", cfg.Mode)
}

func TestClient_CreateOrder(t *testing.T) {
	client, httpClient := NewMock(t)

	httpClient.EXPECT().Do(gomock.Any()).DoAndReturn(
		func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, http.MethodPost, req.Method)
			assert.Equal(t, "https://sandbox.cashfree.com/pg/orders", req.URL.String())
			assert.Equal(t, "app-123", req.Header.Get("x-client-id"))
			assert.Equal(t, "secret-456", req.Header.Get("x-client-secret"))
			assert.Equal(t, apiVersion, req.Header.Get("x-api-version"))

			var body createOrderRequest
			assert.NoError(t, json.NewDecoder(req.Body).Decode(&body))
			assert.Equal(t, "order-1", body.OrderID)
			assert.Equal(t, 999.0, body.OrderAmount)
			assert.Equal(t, "INR", body.OrderCurrency)
			assert.Equal(t, "user_7", body.CustomerDetails.CustomerID)

			return &http.Response{
				StatusCode: http.StatusOK,
				Body: io.NopCloser(strings.NewReader(
					`{"order_id":"order-1","payment_session_id":"session-abc","order_status":"ACTIVE"}`)),
			}, nil
		})

	order, err := client.CreateOrder(context.Background(), "order-1", 7, 999.0, domain.CurrencyINR)
	assert.NoError(t, err)
	assert.Equal(t, "order-1", order.OrderID)
	assert.Equal(t, "session-abc", order.PaymentSessionID)
}

func TestClient_CreateOrderGatewayError(t *testing.T) {
	client, httpClient := NewMock(t)

	httpClient.EXPECT().Do(gomock.Any()).Return(&http.Response{
		StatusCode: http.StatusUnauthorized,
		Body:       io.NopCloser(strings.NewReader(`{"message":"invalid credentials"}`)),
	}, nil)

	order, err := client.CreateOrder(context.Background(), "order-1", 7, 999.0, domain.CurrencyINR)
	assert.Error(t, err)
	assert.Nil(t, order)
}

func TestClient_GetOrder(t *testing.T) {
	client, httpClient := NewMock(t)

	httpClient.EXPECT().Get("https://sandbox.cashfree.com/pg/orders/order-1", gomock.Any()).Return(
		http.StatusOK,
		[]byte(`{"order_id":"order-1","order_status":"PAID","order_amount":999,"order_currency":"INR"}`),
		nil, nil)

	order, err := client.GetOrder(context.Background(), "order-1")
	assert.NoError(t, err)
	assert.Equal(t, "PAID", order.OrderStatus)
	assert.Equal(t, 999.0, order.OrderAmount)
}

func TestClient_GetOrderUnavailable(t *testing.T) {
	client, httpClient := NewMock(t)

	httpClient.EXPECT().Get(gomock.Any(), gomock.Any()).Return(0, nil, nil, errors.New("connection refused"))

	order, err := client.GetOrder(context.Background(), "order-1")
	assert.Error(t, err)
	assert.Nil(t, order)
}

func TestOutcome(t *testing.T) {
	tests := []struct {
		orderStatus string
		want        domain.PaymentStatus
	}{
		{"PAID", domain.PaymentVerified},
		{"EXPIRED", domain.PaymentExpired},
		{"TERMINATED", domain.PaymentFailed},
		{"TERMINATION_REQUESTED", domain.PaymentFailed},
		{"ACTIVE", ""},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run("status "+tt.orderStatus, func(t *testing.T) {
			assert.Equal(t, tt.want, Outcome(tt.orderStatus))
		})
	}
}
