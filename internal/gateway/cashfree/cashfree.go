package cashfree

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/i2u-ai/platform/internal/config"
	"github.com/i2u-ai/platform/internal/domain"
	"github.com/i2u-ai/platform/pkg/clients"
)

const apiVersion = "2023-08-01"

// Client talks to the Cashfree payment gateway REST API.
type Client struct {
	client clients.HTTPClientI
	base   string
	appID  string
	secret string
	mode   string
}

// ClientConfig is the public gateway configuration served to the frontend.
// The secret never leaves the server.
type ClientConfig struct {
	AppID string `json:"appId"`
	Mode  string `json:"mode"`
}

// Order is a gateway order created for a payment intent.
type Order struct {
	OrderID          string  `json:"order_id"`
	PaymentSessionID string  `json:"payment_session_id"`
	OrderAmount      float64 `json:"order_amount"`
	OrderCurrency    string  `json:"order_currency"`
	OrderStatus      string  `json:"order_status"`
}

type createOrderRequest struct {
	OrderID         string          `json:"order_id"`
	OrderAmount     float64         `json:"order_amount"`
	OrderCurrency   string          `json:"order_currency"`
	CustomerDetails customerDetails `json:"customer_details"`
}

type customerDetails struct {
	CustomerID string `json:"customer_id"`
}

func New(cfg *config.Config, client clients.HTTPClientI) *Client {
	return &Client{
		client: client,
		base:   cfg.CashfreeAddress,
		appID:  cfg.CashfreeAppID,
		secret: cfg.CashfreeSecret,
		mode:   cfg.CashfreeMode,
	}
}

// Config returns the publishable part of the gateway credentials.
func (c *Client) Config() ClientConfig {
	return ClientConfig{AppID: c.appID, Mode: c.mode}
}

// CreateOrder registers an order with the gateway and returns the payment
// session the frontend needs to open the checkout.
func (c *Client) CreateOrder(ctx context.Context, orderID string, userID int, amount float64, currency domain.Currency) (*Order, error) {
	payload, err := json.Marshal(createOrderRequest{
		OrderID:       orderID,
		OrderAmount:   amount,
		OrderCurrency: string(currency),
		CustomerDetails: customerDetails{
			CustomerID: "user_" + strconv.Itoa(userID),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode order request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/pg/orders", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	c.setHeaders(req.Header)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to create gateway order: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gateway returned status %d: %s", resp.StatusCode, body)
	}

	var order Order
	if err := json.Unmarshal(body, &order); err != nil {
		return nil, fmt.Errorf("failed to parse gateway response: %w", err)
	}
	return &order, nil
}

// GetOrder fetches the current gateway status of an order.
func (c *Client) GetOrder(ctx context.Context, orderID string) (*Order, error) {
	headers := http.Header{}
	c.setHeaders(headers)

	status, body, _, err := c.client.Get(c.base+"/pg/orders/"+orderID, headers)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch gateway order %s: %w", orderID, err)
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("gateway returned status %d for order %s", status, orderID)
	}

	var order Order
	if err := json.Unmarshal(body, &order); err != nil {
		return nil, fmt.Errorf("failed to parse gateway response: %w", err)
	}
	return &order, nil
}

func (c *Client) setHeaders(h http.Header) {
	h.Set("x-client-id", c.appID)
	h.Set("x-client-secret", c.secret)
	h.Set("x-api-version", apiVersion)
}

// Outcome maps a gateway order status onto a payment intent status.
// Statuses that are still in flight map to an empty value.
func Outcome(orderStatus string) domain.PaymentStatus {
	switch orderStatus {
	case "PAID":
		return domain.PaymentVerified
	case "EXPIRED":
		return domain.PaymentExpired
	case "TERMINATED", "TERMINATION_REQUESTED":
		return domain.PaymentFailed
	default:
		return ""
	}
}
