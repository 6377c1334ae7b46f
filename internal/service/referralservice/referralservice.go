package referralservice

import (
	"context"
	"math"

	"github.com/i2u-ai/platform/internal/domain"
	"github.com/i2u-ai/platform/internal/metrics"
	"github.com/i2u-ai/platform/internal/pg"
	"go.uber.org/zap"
)

//go:generate mockgen -source=referralservice.go -destination=referralservice_mock.go -package=referralservice

// commissionRate is the referrer's share of a referred registration fee.
const commissionRate = 0.20

type ReferralRepo interface {
	Create(ctx context.Context, referral *domain.Referral) (bool, error)
	FindByReferrerID(ctx context.Context, referrerID int) ([]domain.Referral, error)
	Totals(ctx context.Context, referrerID int) (count int, inr, usd float64, err error)
}

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
}

type WalletRepo interface {
	CreateTransaction(ctx context.Context, tx *domain.WalletTransaction) (*domain.WalletTransaction, error)
}

// RateProvider supplies the display-only USD to INR reference rate.
type RateProvider interface {
	USDToINR(ctx context.Context) (float64, error)
}

// Summary is the referrer-facing view. CombinedINR folds USD earnings in
// at the reference rate for display; stored balances stay per-currency.
type Summary struct {
	ReferralCount int
	EarningsINR   float64
	EarningsUSD   float64
	CombinedINR   float64
	Referrals     []domain.Referral
}

type Service struct {
	referralRepo ReferralRepo
	userRepo     UserRepo
	walletRepo   WalletRepo
	rates        RateProvider
	txManager    pg.TXManager
}

func New(referralRepo ReferralRepo, userRepo UserRepo, walletRepo WalletRepo, rates RateProvider, txManager pg.TXManager) *Service {
	return &Service{
		referralRepo: referralRepo,
		userRepo:     userRepo,
		walletRepo:   walletRepo,
		rates:        rates,
		txManager:    txManager,
	}
}

// CreditForPayment credits the payer's referrer 20% of the verified
// payment, in the payment's currency. Replayed confirmations are no-ops:
// the referral row is keyed by payment intent id. Earnings accrue as
// pending only while the referrer's own subscription is active; otherwise
// the referral is recorded as held and no wallet funds move.
func (s *Service) CreditForPayment(ctx context.Context, intent *domain.PaymentIntent, payer *domain.User) error {
	if payer.ReferredBy == nil {
		return nil
	}

	referrer, err := s.userRepo.FindByID(ctx, *payer.ReferredBy)
	if err != nil {
		return err
	}
	if referrer == nil {
		zap.L().Warn("referrer no longer exists", zap.Int("referrerID", *payer.ReferredBy))
		return nil
	}

	commission := roundMoney(intent.Amount * commissionRate)
	referral := &domain.Referral{
		ReferrerID:      referrer.ID,
		ReferredID:      payer.ID,
		PaymentIntentID: intent.ID,
		Status:          domain.ReferralPending,
	}
	switch intent.Currency {
	case domain.CurrencyINR:
		referral.EarningsINR = commission
	case domain.CurrencyUSD:
		referral.EarningsUSD = commission
	default:
		return domain.ErrUnknownCurrency
	}

	active := referrer.SubscriptionStatus == domain.SubscriptionActive
	if !active {
		referral.Status = domain.ReferralHeld
	}

	var recorded bool
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		created, err := s.referralRepo.Create(ctx, referral)
		if err != nil {
			return err
		}
		recorded = created
		if !created {
			zap.L().Info("duplicate referral credit ignored",
				zap.Int("paymentIntentID", intent.ID))
			return nil
		}
		if !active {
			zap.L().Info("referral held, referrer subscription not active",
				zap.Int("referrerID", referrer.ID))
			return nil
		}

		_, err = s.walletRepo.CreateTransaction(ctx, &domain.WalletTransaction{
			UserID:   referrer.ID,
			Type:     domain.WalletTxReferralCredit,
			Amount:   commission,
			Currency: intent.Currency,
			Status:   domain.WalletTxPending,
		})
		if err != nil {
			return err
		}

		zap.L().Info("referral credited",
			zap.Int("referrerID", referrer.ID),
			zap.Int("referredID", payer.ID),
			zap.Float64("commission", commission),
			zap.String("currency", string(intent.Currency)))
		return nil
	})
	if err != nil {
		return err
	}
	if recorded {
		metrics.Registry(metrics.Namespace).ReferralCredits.WithLabelValues(string(referral.Status)).Inc()
	}
	return nil
}

// Summary assembles the referrer's earnings view, folding USD into INR at
// the reference rate for display only.
func (s *Service) Summary(ctx context.Context, referrerID int) (*Summary, error) {
	count, inr, usd, err := s.referralRepo.Totals(ctx, referrerID)
	if err != nil {
		return nil, err
	}
	referrals, err := s.referralRepo.FindByReferrerID(ctx, referrerID)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		ReferralCount: count,
		EarningsINR:   inr,
		EarningsUSD:   usd,
		CombinedINR:   inr,
		Referrals:     referrals,
	}

	if usd > 0 {
		rate, err := s.rates.USDToINR(ctx)
		if err != nil {
			// The combined figure is cosmetic; per-currency totals stand.
			zap.L().Warn("exchange rate unavailable for combined total", zap.Error(err))
			return summary, nil
		}
		summary.CombinedINR = roundMoney(inr + usd*rate)
	}

	return summary, nil
}

func roundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}
