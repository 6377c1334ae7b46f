package exchange

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

//go:generate mockgen -source=exchange.go -destination=exchange_mock.go -package=exchange

const (
	freshKey = "exchange:usd_inr"
	staleKey = "exchange:usd_inr:last_known"
	freshTTL = time.Hour

	// Used only when the provider is down and nothing was ever cached.
	fallbackRate = 83.0
)

type HTTPClient interface {
	Get(url string, headers http.Header) (statusCode int, respBody []byte, respHeaders http.Header, err error)
}

type Store interface {
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	GetJSON(ctx context.Context, key string, dest any) (bool, error)
}

// Rate is the display-only USD to INR reference rate.
type Rate struct {
	Rate   float64   `json:"rate"`
	Date   time.Time `json:"date"`
	Source string    `json:"source"`
}

type providerResponse struct {
	Rates map[string]float64 `json:"rates"`
}

type Service struct {
	client HTTPClient
	store  Store
	url    string
}

func New(client HTTPClient, store Store, url string) *Service {
	return &Service{client: client, store: store, url: url}
}

// Current returns the cached rate, refreshing from the provider when the
// cached value has expired. Provider failures fall back to the last known
// value, then to a static rate, so the endpoint never errors on upstream
// outages.
func (s *Service) Current(ctx context.Context) (*Rate, error) {
	var cached Rate
	found, err := s.store.GetJSON(ctx, freshKey, &cached)
	if err != nil {
		zap.L().Warn("exchange cache read failed", zap.Error(err))
	}
	if found {
		return &cached, nil
	}

	rate, err := s.fetch()
	if err != nil {
		zap.L().Warn("exchange provider unavailable", zap.Error(err))
		return s.lastKnown(ctx)
	}

	if err := s.store.SetJSON(ctx, freshKey, rate, freshTTL); err != nil {
		zap.L().Warn("exchange cache write failed", zap.Error(err))
	}
	if err := s.store.SetJSON(ctx, staleKey, rate, 0); err != nil {
		zap.L().Warn("exchange cache write failed", zap.Error(err))
	}
	return rate, nil
}

// USDToINR returns just the conversion rate.
func (s *Service) USDToINR(ctx context.Context) (float64, error) {
	rate, err := s.Current(ctx)
	if err != nil {
		return 0, err
	}
	return rate.Rate, nil
}

func (s *Service) fetch() (*Rate, error) {
	status, body, _, err := s.client.Get(s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch exchange rate: %w", err)
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("exchange provider returned status %d", status)
	}

	var resp providerResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode exchange rate: %w", err)
	}
	inr, ok := resp.Rates["INR"]
	if !ok || inr <= 0 {
		return nil, fmt.Errorf("exchange provider response has no INR rate")
	}

	return &Rate{Rate: inr, Date: time.Now().UTC(), Source: "provider"}, nil
}

func (s *Service) lastKnown(ctx context.Context) (*Rate, error) {
	var stale Rate
	found, err := s.store.GetJSON(ctx, staleKey, &stale)
	if err == nil && found {
		stale.Source = "cache"
		return &stale, nil
	}
	if err != nil {
		zap.L().Warn("exchange stale cache read failed", zap.Error(err))
	}
	return &Rate{Rate: fallbackRate, Date: time.Now().UTC(), Source: "fallback"}, nil
}
