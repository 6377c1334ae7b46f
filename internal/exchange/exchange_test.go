package exchange

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const providerURL = "https://rates.example.com/latest?base=USD"

func NewMock(t *testing.T) (*Service, *MockHTTPClient, *MockStore) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	client := NewMockHTTPClient(ctrl)
	store := NewMockStore(ctrl)
	return New(client, store, providerURL), client, store
}

func TestService_CurrentCached(t *testing.T) {
	ctx := context.Background()
	service, _, store := NewMock(t)

	store.EXPECT().GetJSON(ctx, freshKey, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, dest any) (bool, error) {
			*dest.(*Rate) = Rate{Rate: 83.5, Source: "provider"}
			return true, nil
		})

	rate, err := service.Current(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 83.5, rate.Rate)
	assert.Equal(t, "provider", rate.Source)
}

func TestService_CurrentFetchesOnMiss(t *testing.T) {
	ctx := context.Background()
	service, client, store := NewMock(t)

	store.EXPECT().GetJSON(ctx, freshKey, gomock.Any()).Return(false, nil)
	client.EXPECT().Get(providerURL, nil).Return(
		http.StatusOK, []byte(`{"rates":{"INR":84.12,"EUR":0.92}}`), nil, nil)
	store.EXPECT().SetJSON(ctx, freshKey, gomock.Any(), freshTTL).Return(nil)
	store.EXPECT().SetJSON(ctx, staleKey, gomock.Any(), time.Duration(0)).Return(nil)

	rate, err := service.Current(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 84.12, rate.Rate)
	assert.Equal(t, "provider", rate.Source)
	assert.False(t, rate.Date.IsZero())
}

func TestService_CurrentServesLastKnownOnProviderFailure(t *testing.T) {
	ctx := context.Background()
	service, client, store := NewMock(t)

	store.EXPECT().GetJSON(ctx, freshKey, gomock.Any()).Return(false, nil)
	client.EXPECT().Get(providerURL, nil).Return(0, nil, nil, errors.New("timeout"))
	store.EXPECT().GetJSON(ctx, staleKey, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, dest any) (bool, error) {
			*dest.(*Rate) = Rate{Rate: 82.9, Source: "provider"}
			return true, nil
		})

	rate, err := service.Current(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 82.9, rate.Rate)
	assert.Equal(t, "cache", rate.Source)
}

func TestService_CurrentStaticFallback(t *testing.T) {
	ctx := context.Background()
	service, client, store := NewMock(t)

	store.EXPECT().GetJSON(ctx, freshKey, gomock.Any()).Return(false, nil)
	client.EXPECT().Get(providerURL, nil).Return(http.StatusBadGateway, nil, nil, nil)
	store.EXPECT().GetJSON(ctx, staleKey, gomock.Any()).Return(false, nil)

	rate, err := service.Current(ctx)
	assert.NoError(t, err)
	assert.Equal(t, fallbackRate, rate.Rate)
	assert.Equal(t, "fallback", rate.Source)
}

func TestService_CurrentRejectsResponseWithoutINR(t *testing.T) {
	ctx := context.Background()
	service, client, store := NewMock(t)

	store.EXPECT().GetJSON(ctx, freshKey, gomock.Any()).Return(false, nil)
	client.EXPECT().Get(providerURL, nil).Return(
		http.StatusOK, []byte(`{"rates":{"EUR":0.92}}`), nil, nil)
	store.EXPECT().GetJSON(ctx, staleKey, gomock.Any()).Return(false, nil)

	rate, err := service.Current(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "fallback", rate.Source)
}

func TestService_USDToINR(t *testing.T) {
	ctx := context.Background()
	service, _, store := NewMock(t)

	store.EXPECT().GetJSON(ctx, freshKey, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, dest any) (bool, error) {
			*dest.(*Rate) = Rate{Rate: 83.5}
			return true, nil
		})

	rate, err := service.USDToINR(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 83.5, rate)
}
