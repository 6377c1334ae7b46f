package walletservice

import (
	"context"
	"errors"
	"time"

	"github.com/i2u-ai/platform/internal/domain"
	"go.uber.org/zap"
)

//go:generate mockgen -source=walletservice.go -destination=walletservice_mock.go -package=walletservice

// unlockPeriod is how long earned funds stay pending before they become
// withdrawable.
const unlockPeriod = 14 * 24 * time.Hour

var (
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInvalidAmount       = errors.New("withdrawal amount must be positive")
)

type WalletRepo interface {
	CreateTransaction(ctx context.Context, tx *domain.WalletTransaction) (*domain.WalletTransaction, error)
	Balances(ctx context.Context, userID int) ([]domain.WalletBalance, error)
	FindByUserID(ctx context.Context, userID int) ([]domain.WalletTransaction, error)
	PromoteUnlocked(ctx context.Context, before time.Time) (int64, error)
}

type Service struct {
	walletRepo WalletRepo
	now        func() time.Time
}

func New(walletRepo WalletRepo) *Service {
	return &Service{
		walletRepo: walletRepo,
		now:        time.Now,
	}
}

// Balances reports available/pending per currency. Both currencies are
// always present in the result so callers render a stable shape.
func (s *Service) Balances(ctx context.Context, userID int) (map[domain.Currency]domain.WalletBalance, error) {
	rows, err := s.walletRepo.Balances(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get wallet balances", zap.Error(err))
		return nil, err
	}

	balances := map[domain.Currency]domain.WalletBalance{
		domain.CurrencyINR: {Currency: domain.CurrencyINR},
		domain.CurrencyUSD: {Currency: domain.CurrencyUSD},
	}
	for _, b := range rows {
		balances[b.Currency] = b
	}
	return balances, nil
}

func (s *Service) Transactions(ctx context.Context, userID int) ([]domain.WalletTransaction, error) {
	txs, err := s.walletRepo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch wallet transactions", zap.Error(err))
		return nil, err
	}
	return txs, nil
}

// Withdraw records a withdrawal request against the available balance in
// one currency. Only the ledger entry is written here; paying the money
// out is a manual back-office step.
func (s *Service) Withdraw(ctx context.Context, userID int, amount float64, currency domain.Currency) (*domain.WalletTransaction, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	balances, err := s.Balances(ctx, userID)
	if err != nil {
		return nil, err
	}
	if balances[currency].Available < amount {
		return nil, ErrInsufficientBalance
	}

	tx, err := s.walletRepo.CreateTransaction(ctx, &domain.WalletTransaction{
		UserID:   userID,
		Type:     domain.WalletTxWithdrawal,
		Amount:   amount,
		Currency: currency,
		Status:   domain.WalletTxWithdrawn,
	})
	if err != nil {
		zap.L().Error("failed to record withdrawal", zap.Error(err))
		return nil, err
	}
	zap.L().Info("withdrawal recorded",
		zap.Int("userID", userID), zap.Float64("amount", amount), zap.String("currency", string(currency)))
	return tx, nil
}

// PromoteUnlocked flips pending funds older than the unlock period to
// available. Run periodically by the settlement worker.
func (s *Service) PromoteUnlocked(ctx context.Context) (int64, error) {
	cutoff := s.now().Add(-unlockPeriod)
	promoted, err := s.walletRepo.PromoteUnlocked(ctx, cutoff)
	if err != nil {
		zap.L().Error("failed to promote unlocked funds", zap.Error(err))
		return 0, err
	}
	if promoted > 0 {
		zap.L().Info("wallet funds unlocked", zap.Int64("count", promoted))
	}
	return promoted, nil
}
