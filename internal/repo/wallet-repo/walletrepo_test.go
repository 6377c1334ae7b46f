package walletrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/i2u-ai/platform/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	t.Cleanup(mockDB.Close)

	return repo, mockDB
}

func TestRepository_CreateTransaction(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tx := &domain.WalletTransaction{
		UserID:   7,
		Type:     domain.WalletTxReferralCredit,
		Amount:   399.8,
		Currency: domain.CurrencyINR,
		Status:   domain.WalletTxPending,
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Transaction created",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "user_id", "type", "amount", "currency", "status", "created_at"}).
					AddRow(17, 7, domain.WalletTxReferralCredit, 399.8, domain.CurrencyINR, domain.WalletTxPending, now)
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO wallet_transactions")).
					WithArgs(7, domain.WalletTxReferralCredit, 399.8, domain.CurrencyINR, domain.WalletTxPending).
					WillReturnRows(rows)
			},
			expectErr: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO wallet_transactions")).
					WithArgs(7, domain.WalletTxReferralCredit, 399.8, domain.CurrencyINR, domain.WalletTxPending).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			saved, err := repo.CreateTransaction(context.Background(), tx)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, saved)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 17, saved.ID)
				assert.Equal(t, domain.WalletTxPending, saved.Status)
			}
		})
	}
}

func TestRepository_Balances(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    []domain.WalletBalance
	}{
		{
			name: "Balances per currency net of withdrawals",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"currency", "available", "pending"}).
					AddRow(domain.CurrencyINR, 399.8, 199.9).
					AddRow(domain.CurrencyUSD, 0.0, 4.8)
				mock.ExpectQuery(regexp.QuoteMeta("- COALESCE(SUM(amount) FILTER (WHERE status = 'withdrawn'), 0)")).
					WithArgs(7).
					WillReturnRows(rows)
			},
			expectErr: false,
			result: []domain.WalletBalance{
				{Currency: domain.CurrencyINR, Available: 399.8, Pending: 199.9},
				{Currency: domain.CurrencyUSD, Available: 0, Pending: 4.8},
			},
		},
		{
			name: "Empty wallet",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"currency", "available", "pending"})
				mock.ExpectQuery(regexp.QuoteMeta("FROM wallet_transactions")).
					WithArgs(7).
					WillReturnRows(rows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM wallet_transactions")).
					WithArgs(7).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Balances(context.Background(), 7)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_FindByUserID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	rows := pgxmock.NewRows([]string{"id", "user_id", "type", "amount", "currency", "status", "created_at"}).
		AddRow(18, 7, domain.WalletTxGlitchBonus, 149.85, domain.CurrencyINR, domain.WalletTxPending, now).
		AddRow(17, 7, domain.WalletTxReferralCredit, 399.8, domain.CurrencyINR, domain.WalletTxAvailable, now.Add(-time.Hour))
	mock.ExpectQuery(regexp.QuoteMeta("FROM wallet_transactions")).
		WithArgs(7).
		WillReturnRows(rows)

	txs, err := repo.FindByUserID(context.Background(), 7)
	assert.NoError(t, err)
	assert.Len(t, txs, 2)
	assert.Equal(t, domain.WalletTxGlitchBonus, txs[0].Type)
	assert.Equal(t, domain.WalletTxAvailable, txs[1].Status)
}

func TestRepository_PromoteUnlocked(t *testing.T) {
	repo, mock := NewMock(t)
	before := time.Now().AddDate(0, 0, -30)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		promoted  int64
	}{
		{
			name: "Unlocked funds promoted",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("UPDATE wallet_transactions")).
					WithArgs(before).
					WillReturnResult(pgxmock.NewResult("UPDATE", 3))
			},
			expectErr: false,
			promoted:  3,
		},
		{
			name: "Nothing to promote",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("UPDATE wallet_transactions")).
					WithArgs(before).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			expectErr: false,
			promoted:  0,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("UPDATE wallet_transactions")).
					WithArgs(before).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			promoted:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			promoted, err := repo.PromoteUnlocked(context.Background(), before)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.promoted, promoted)
		})
	}
}
