package paymentservice

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/i2u-ai/platform/internal/domain"
	"github.com/i2u-ai/platform/internal/metrics"
	"github.com/i2u-ai/platform/internal/pg"
	"go.uber.org/zap"
)

//go:generate mockgen -source=paymentservice.go -destination=paymentservice_mock.go -package=paymentservice

type PaymentRepo interface {
	Save(ctx context.Context, intent *domain.PaymentIntent) (*domain.PaymentIntent, error)
	FindByID(ctx context.Context, id int) (*domain.PaymentIntent, error)
	FindByProviderRef(ctx context.Context, providerRef string) (*domain.PaymentIntent, error)
	FindPendingByUserID(ctx context.Context, userID int) (*domain.PaymentIntent, error)
	FindResolvedGlitchByUserID(ctx context.Context, userID int) (*domain.PaymentIntent, error)
	FlagGlitch(ctx context.Context, intentID int, flaggedAt time.Time) (bool, error)
	Transition(ctx context.Context, intentID int, to domain.PaymentStatus, at time.Time) (bool, error)
}

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
	MarkRegistered(ctx context.Context, userID int, fee float64, currency domain.Currency) error
	SetAwaitingPayment(ctx context.Context, userID int, currency domain.Currency) error
}

type SignupRepo interface {
	Increment(ctx context.Context, stakeholderType domain.StakeholderType) (int, error)
}

type WalletRepo interface {
	CreateTransaction(ctx context.Context, tx *domain.WalletTransaction) (*domain.WalletTransaction, error)
}

// ReferralCreditor runs the referral credit after a payment verifies.
type ReferralCreditor interface {
	CreditForPayment(ctx context.Context, intent *domain.PaymentIntent, payer *domain.User) error
}

type Pricing interface {
	CurrentPrice(ctx context.Context, stakeholderType domain.StakeholderType, currency domain.Currency) (float64, error)
}

var (
	ErrNoPendingPayment      = errors.New("no pending payment")
	ErrPaymentAlreadyPending = errors.New("payment already pending")
	ErrUserNotFound          = errors.New("user not found")
)

// PendingStatus is the point-in-time view of a user's open payment with
// the compensation clock evaluated at read time.
type PendingStatus struct {
	HasPendingPayment bool
	IntentID          int
	Amount            float64
	Currency          domain.Currency
	AwaitingINR       bool
	AwaitingUSD       bool
	GlitchFlaggedAt   *time.Time
	GlitchResolved    bool
	DelayHours        int
	DelayDays         int
	BonusPercent      float64
	RegistrationFee   float64
	FeeCurrency       domain.Currency
}

type Service struct {
	paymentRepo PaymentRepo
	userRepo    UserRepo
	signupRepo  SignupRepo
	walletRepo  WalletRepo
	referrals   ReferralCreditor
	pricing     Pricing
	txManager   pg.TXManager
	now         func() time.Time
}

func New(paymentRepo PaymentRepo, userRepo UserRepo, signupRepo SignupRepo, walletRepo WalletRepo, referrals ReferralCreditor, pricing Pricing, txManager pg.TXManager) *Service {
	return &Service{
		paymentRepo: paymentRepo,
		userRepo:    userRepo,
		signupRepo:  signupRepo,
		walletRepo:  walletRepo,
		referrals:   referrals,
		pricing:     pricing,
		txManager:   txManager,
		now:         time.Now,
	}
}

// QuoteRegistration prices the registration fee for the user at the
// current tier, in the user's currency. Fails if the user already has an
// open payment intent.
func (s *Service) QuoteRegistration(ctx context.Context, userID int) (float64, domain.Currency, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return 0, "", err
	}
	if user == nil {
		return 0, "", ErrUserNotFound
	}

	existing, err := s.paymentRepo.FindPendingByUserID(ctx, userID)
	if err != nil {
		return 0, "", err
	}
	if existing != nil {
		return 0, "", ErrPaymentAlreadyPending
	}

	amount, err := s.pricing.CurrentPrice(ctx, user.StakeholderType, user.Currency)
	if err != nil {
		return 0, "", err
	}
	return amount, user.Currency, nil
}

// Open records a new registration payment intent and raises the user's
// awaiting-payment flag. One open intent per user at a time.
func (s *Service) Open(ctx context.Context, userID int, method string, amount float64, currency domain.Currency, providerRef string) (*domain.PaymentIntent, error) {
	existing, err := s.paymentRepo.FindPendingByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrPaymentAlreadyPending
	}

	intent := &domain.PaymentIntent{
		UserID:      userID,
		Purpose:     domain.PaymentPurposeRegistration,
		Method:      method,
		Status:      domain.PaymentPending,
		Amount:      amount,
		Currency:    currency,
		ProviderRef: providerRef,
	}

	var saved *domain.PaymentIntent
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		saved, err = s.paymentRepo.Save(ctx, intent)
		if err != nil {
			return err
		}
		return s.userRepo.SetAwaitingPayment(ctx, userID, currency)
	})
	if err != nil {
		zap.L().Error("failed to open payment intent", zap.Error(err))
		return nil, err
	}
	return saved, nil
}

// PendingStatus never errors on the no-payment case: it reports
// hasPendingPayment false instead.
func (s *Service) PendingStatus(ctx context.Context, userID int) (*PendingStatus, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("user not found")
	}

	intent, err := s.paymentRepo.FindPendingByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	status := &PendingStatus{
		AwaitingINR:     user.AwaitingINR,
		AwaitingUSD:     user.AwaitingUSD,
		RegistrationFee: user.RegistrationFee,
		FeeCurrency:     user.Currency,
	}
	if intent == nil {
		// With no open intent left, the resolution of the last glitched
		// payment is still worth reporting.
		resolved, err := s.paymentRepo.FindResolvedGlitchByUserID(ctx, userID)
		if err != nil {
			return nil, err
		}
		if resolved != nil {
			status.GlitchResolved = true
		}
		return status, nil
	}

	status.HasPendingPayment = true
	status.IntentID = intent.ID
	status.Amount = intent.Amount
	status.Currency = intent.Currency
	status.GlitchFlaggedAt = intent.GlitchFlaggedAt
	status.GlitchResolved = intent.GlitchResolved

	if intent.GlitchFlaggedAt != nil {
		now := s.now()
		elapsed := now.Sub(*intent.GlitchFlaggedAt)
		if elapsed < 0 {
			elapsed = 0
		}
		status.DelayHours = int(elapsed / time.Hour)
		status.DelayDays = int(elapsed / bonusPeriod)
		status.BonusPercent = TotalBonusPercent(*intent.GlitchFlaggedAt, now)
	}

	return status, nil
}

// FlagGlitch starts the compensation clock on the user's open payment.
// Re-flagging an already flagged payment does not restart the clock. The
// reason is free text from the user, kept only in the logs.
func (s *Service) FlagGlitch(ctx context.Context, userID int, reason string) (*domain.PaymentIntent, error) {
	intent, err := s.paymentRepo.FindPendingByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if intent == nil {
		return nil, ErrNoPendingPayment
	}

	flagged, err := s.paymentRepo.FlagGlitch(ctx, intent.ID, s.now())
	if err != nil {
		return nil, err
	}
	if !flagged {
		zap.L().Info("payment already glitch-flagged", zap.Int("intentID", intent.ID))
	} else if reason != "" {
		zap.L().Info("payment glitch flagged",
			zap.Int("intentID", intent.ID), zap.String("reason", reason))
	}
	return s.paymentRepo.FindByID(ctx, intent.ID)
}

// Settle applies a terminal gateway outcome to an intent. The guarded
// status transition makes redelivery a no-op: only the delivery that
// actually flips the status runs the side effects (bonus payout, signup
// increment, subscription activation, referral credit).
func (s *Service) Settle(ctx context.Context, intentID int, outcome domain.PaymentStatus) error {
	if outcome != domain.PaymentVerified && outcome != domain.PaymentFailed && outcome != domain.PaymentExpired {
		return errors.New("not a terminal payment status")
	}

	intent, err := s.paymentRepo.FindByID(ctx, intentID)
	if err != nil {
		return err
	}
	if intent == nil {
		return ErrNoPendingPayment
	}

	now := s.now()
	var (
		moved           bool
		bonusCredited   bool
		stakeholderType domain.StakeholderType
	)
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		ok, err := s.paymentRepo.Transition(ctx, intentID, outcome, now)
		if err != nil {
			return err
		}
		if !ok {
			zap.L().Info("payment already settled, skipping",
				zap.Int("intentID", intentID), zap.String("outcome", string(outcome)))
			return nil
		}
		moved = true
		if outcome != domain.PaymentVerified {
			return nil
		}

		user, err := s.userRepo.FindByID(ctx, intent.UserID)
		if err != nil {
			return err
		}
		stakeholderType = user.StakeholderType

		// Bonus locks at the moment of verification.
		if intent.GlitchFlaggedAt != nil {
			bonusPercent := TotalBonusPercent(*intent.GlitchFlaggedAt, now)
			if bonusPercent > 0 {
				bonus := roundMoney(intent.Amount * bonusPercent / 100)
				_, err = s.walletRepo.CreateTransaction(ctx, &domain.WalletTransaction{
					UserID:   intent.UserID,
					Type:     domain.WalletTxGlitchBonus,
					Amount:   bonus,
					Currency: intent.Currency,
					Status:   domain.WalletTxPending,
				})
				if err != nil {
					return err
				}
				bonusCredited = true
				zap.L().Info("glitch bonus credited",
					zap.Int("userID", intent.UserID),
					zap.Float64("percent", bonusPercent),
					zap.Float64("amount", bonus))
			}
		}

		if _, err := s.signupRepo.Increment(ctx, user.StakeholderType); err != nil {
			return err
		}
		if err := s.userRepo.MarkRegistered(ctx, user.ID, intent.Amount, intent.Currency); err != nil {
			return err
		}

		return s.referrals.CreditForPayment(ctx, intent, user)
	})
	if err != nil {
		return err
	}

	if moved {
		m := metrics.Registry(metrics.Namespace)
		m.Payments.WithLabelValues(string(outcome)).Inc()
		if bonusCredited {
			m.GlitchBonuses.Inc()
		}
		if outcome == domain.PaymentVerified {
			m.Signups.WithLabelValues(string(stakeholderType)).Inc()
		}
	}
	return nil
}

// SettleByProviderRef settles the intent behind a gateway order id on
// behalf of its owner. A caller who does not own the intent gets the same
// answer as for an unknown order.
func (s *Service) SettleByProviderRef(ctx context.Context, userID int, providerRef string, outcome domain.PaymentStatus) (*domain.PaymentIntent, error) {
	intent, err := s.paymentRepo.FindByProviderRef(ctx, providerRef)
	if err != nil {
		return nil, err
	}
	if intent == nil || intent.UserID != userID {
		return nil, ErrNoPendingPayment
	}
	if err := s.Settle(ctx, intent.ID, outcome); err != nil {
		return nil, err
	}
	return s.paymentRepo.FindByID(ctx, intent.ID)
}

func roundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}
