package walletservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/i2u-ai/platform/internal/domain"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockWalletRepo) {
	ctrl := gomock.NewController(t)
	walletRepo := NewMockWalletRepo(ctrl)
	service := New(walletRepo)
	defer ctrl.Finish()
	return service, walletRepo
}

func TestBalances(t *testing.T) {
	service, walletRepo := NewMock(t)

	walletRepo.EXPECT().Balances(gomock.Any(), 1).Return([]domain.WalletBalance{
		{Currency: domain.CurrencyINR, Available: 100, Pending: 399.80},
	}, nil)

	balances, err := service.Balances(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, 100.0, balances[domain.CurrencyINR].Available)
	assert.Equal(t, 399.80, balances[domain.CurrencyINR].Pending)
	// USD is always present even with no ledger entries.
	assert.Zero(t, balances[domain.CurrencyUSD].Available)
	assert.Zero(t, balances[domain.CurrencyUSD].Pending)
}

func TestBalancesError(t *testing.T) {
	service, walletRepo := NewMock(t)

	walletRepo.EXPECT().Balances(gomock.Any(), 1).Return(nil, errors.New("db error"))

	_, err := service.Balances(context.Background(), 1)
	assert.Error(t, err)
}

func TestTransactions(t *testing.T) {
	service, walletRepo := NewMock(t)

	walletRepo.EXPECT().FindByUserID(gomock.Any(), 1).Return([]domain.WalletTransaction{
		{ID: 1, Type: domain.WalletTxReferralCredit, Amount: 399.80},
	}, nil)

	txs, err := service.Transactions(context.Background(), 1)
	assert.NoError(t, err)
	assert.Len(t, txs, 1)
}

func TestWithdraw(t *testing.T) {
	service, walletRepo := NewMock(t)

	walletRepo.EXPECT().Balances(gomock.Any(), 1).Return([]domain.WalletBalance{
		{Currency: domain.CurrencyINR, Available: 399.80, Pending: 0},
	}, nil)
	walletRepo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, tx *domain.WalletTransaction) (*domain.WalletTransaction, error) {
			assert.Equal(t, domain.WalletTxWithdrawal, tx.Type)
			assert.Equal(t, domain.WalletTxWithdrawn, tx.Status)
			assert.Equal(t, 250.5, tx.Amount)
			saved := *tx
			saved.ID = 23
			return &saved, nil
		},
	)

	tx, err := service.Withdraw(context.Background(), 1, 250.5, domain.CurrencyINR)
	assert.NoError(t, err)
	assert.Equal(t, 23, tx.ID)
}

func TestWithdrawInsufficientBalance(t *testing.T) {
	service, walletRepo := NewMock(t)

	walletRepo.EXPECT().Balances(gomock.Any(), 1).Return([]domain.WalletBalance{
		{Currency: domain.CurrencyINR, Available: 100, Pending: 399.80},
	}, nil)

	_, err := service.Withdraw(context.Background(), 1, 250.5, domain.CurrencyINR)
	assert.ErrorIs(t, err, ErrInsufficientBalance)
}

func TestWithdrawPendingFundsNotSpendable(t *testing.T) {
	service, walletRepo := NewMock(t)

	walletRepo.EXPECT().Balances(gomock.Any(), 1).Return([]domain.WalletBalance{
		{Currency: domain.CurrencyUSD, Available: 0, Pending: 500},
	}, nil)

	_, err := service.Withdraw(context.Background(), 1, 10, domain.CurrencyUSD)
	assert.ErrorIs(t, err, ErrInsufficientBalance)
}

func TestWithdrawInvalidAmount(t *testing.T) {
	service, _ := NewMock(t)

	_, err := service.Withdraw(context.Background(), 1, -5, domain.CurrencyINR)
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestPromoteUnlocked(t *testing.T) {
	service, walletRepo := NewMock(t)
	now := time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return now }

	walletRepo.EXPECT().PromoteUnlocked(gomock.Any(), now.Add(-14*24*time.Hour)).Return(int64(3), nil)

	promoted, err := service.PromoteUnlocked(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(3), promoted)
}
