package wallet

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/i2u-ai/platform/internal/domain"
	"github.com/i2u-ai/platform/internal/dto"
	referralservice "github.com/i2u-ai/platform/internal/service/referralservice"
	"github.com/i2u-ai/platform/internal/service/walletservice"
	"github.com/i2u-ai/platform/pkg/auth"
)

func NewMock(t *testing.T) (*WalletHandler, *MockService, *MockReferrals) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	service := NewMockService(ctrl)
	referrals := NewMockReferrals(ctrl)
	handler := New(service, referrals)
	return handler, service, referrals
}

func authedRequest(method, target string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	ctx := context.WithValue(req.Context(), auth.UserIDKey, 1)
	return req.WithContext(ctx)
}

func withdrawRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/wallet/withdraw", strings.NewReader(body))
	ctx := context.WithValue(req.Context(), auth.UserIDKey, 1)
	return req.WithContext(ctx)
}

func TestWithdraw(t *testing.T) {
	handler, service, _ := NewMock(t)

	service.EXPECT().Withdraw(gomock.Any(), 1, 250.5, domain.CurrencyINR).Return(&domain.WalletTransaction{
		ID:       23,
		UserID:   1,
		Type:     domain.WalletTxWithdrawal,
		Amount:   250.5,
		Currency: domain.CurrencyINR,
		Status:   domain.WalletTxWithdrawn,
	}, nil)

	w := httptest.NewRecorder()
	handler.Withdraw(w, withdrawRequest(`{"amount":250.5,"currency":"INR"}`))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp dto.WalletWithdrawResponseDTO
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 23, resp.ID)
	assert.Equal(t, "withdrawn", resp.Status)
}

func TestWithdrawInsufficientBalance(t *testing.T) {
	handler, service, _ := NewMock(t)

	service.EXPECT().Withdraw(gomock.Any(), 1, 5000.0, domain.CurrencyINR).
		Return(nil, walletservice.ErrInsufficientBalance)

	w := httptest.NewRecorder()
	handler.Withdraw(w, withdrawRequest(`{"amount":5000,"currency":"INR"}`))

	assert.Equal(t, http.StatusPaymentRequired, w.Code)
}

func TestWithdrawInvalidAmount(t *testing.T) {
	handler, service, _ := NewMock(t)

	service.EXPECT().Withdraw(gomock.Any(), 1, -5.0, domain.CurrencyINR).
		Return(nil, walletservice.ErrInvalidAmount)

	w := httptest.NewRecorder()
	handler.Withdraw(w, withdrawRequest(`{"amount":-5,"currency":"INR"}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWithdrawUnknownCurrency(t *testing.T) {
	handler, _, _ := NewMock(t)

	w := httptest.NewRecorder()
	handler.Withdraw(w, withdrawRequest(`{"amount":10,"currency":"EUR"}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWithdrawMalformedBody(t *testing.T) {
	handler, _, _ := NewMock(t)

	w := httptest.NewRecorder()
	handler.Withdraw(w, withdrawRequest(`{"amount":`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetWallet(t *testing.T) {
	handler, service, _ := NewMock(t)

	service.EXPECT().Balances(gomock.Any(), 1).Return(map[domain.Currency]domain.WalletBalance{
		domain.CurrencyINR: {Currency: domain.CurrencyINR, Available: 399.8, Pending: 199.9},
		domain.CurrencyUSD: {Currency: domain.CurrencyUSD, Available: 0, Pending: 10},
	}, nil)

	w := httptest.NewRecorder()
	handler.GetWallet(w, authedRequest(http.MethodGet, "/api/wallet"))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp dto.WalletResponseDTO
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 399.8, resp.INR.Available)
	assert.Equal(t, 199.9, resp.INR.Pending)
	assert.Equal(t, 10.0, resp.USD.Pending)
}

func TestGetWalletServiceError(t *testing.T) {
	handler, service, _ := NewMock(t)

	service.EXPECT().Balances(gomock.Any(), 1).Return(nil, errors.New("db down"))

	w := httptest.NewRecorder()
	handler.GetWallet(w, authedRequest(http.MethodGet, "/api/wallet"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetTransactions(t *testing.T) {
	handler, service, _ := NewMock(t)

	createdAt := time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC)
	service.EXPECT().Transactions(gomock.Any(), 1).Return([]domain.WalletTransaction{
		{ID: 17, UserID: 1, Type: domain.WalletTxReferralCredit, Amount: 399.8, Currency: domain.CurrencyINR, Status: domain.WalletTxPending, CreatedAt: createdAt},
		{ID: 18, UserID: 1, Type: domain.WalletTxGlitchBonus, Amount: 449.55, Currency: domain.CurrencyINR, Status: domain.WalletTxAvailable, CreatedAt: createdAt},
	}, nil)

	w := httptest.NewRecorder()
	handler.GetTransactions(w, authedRequest(http.MethodGet, "/api/wallet/transactions"))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []dto.WalletTransactionResponseDTO
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
	assert.Equal(t, "referral_credit", resp[0].Type)
	assert.Equal(t, "glitch_bonus", resp[1].Type)
}

func TestGetTransactionsEmpty(t *testing.T) {
	handler, service, _ := NewMock(t)

	service.EXPECT().Transactions(gomock.Any(), 1).Return(nil, nil)

	w := httptest.NewRecorder()
	handler.GetTransactions(w, authedRequest(http.MethodGet, "/api/wallet/transactions"))

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestGetReferrals(t *testing.T) {
	handler, _, referrals := NewMock(t)

	createdAt := time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC)
	referrals.EXPECT().Summary(gomock.Any(), 1).Return(&referralservice.Summary{
		ReferralCount: 2,
		EarningsINR:   399.8,
		EarningsUSD:   10,
		CombinedINR:   1234.8,
		Referrals: []domain.Referral{
			{ReferredID: 42, EarningsINR: 399.8, Status: domain.ReferralPending, CreatedAt: createdAt},
			{ReferredID: 43, EarningsUSD: 10, Status: domain.ReferralHeld, CreatedAt: createdAt},
		},
	}, nil)

	w := httptest.NewRecorder()
	handler.GetReferrals(w, authedRequest(http.MethodGet, "/api/referrals"))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp dto.ReferralSummaryResponseDTO
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.ReferralCount)
	assert.Equal(t, 1234.8, resp.CombinedINR)
	assert.Len(t, resp.Referrals, 2)
	assert.Equal(t, "held", resp.Referrals[1].Status)
}

func TestGetReferralsServiceError(t *testing.T) {
	handler, _, referrals := NewMock(t)

	referrals.EXPECT().Summary(gomock.Any(), 1).Return(nil, errors.New("db down"))

	w := httptest.NewRecorder()
	handler.GetReferrals(w, authedRequest(http.MethodGet, "/api/referrals"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
