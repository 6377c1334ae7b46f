package domain

import (
	"errors"
	"time"
)

// StakeholderType is the registrant class. Each type has its own signup
// counter and pricing ladder.
type StakeholderType string

const (
	StakeholderEcosystem    StakeholderType = "ecosystem"
	StakeholderProfessional StakeholderType = "professional"
)

var ErrUnknownStakeholderType = errors.New("unknown stakeholder type")

func ParseStakeholderType(s string) (StakeholderType, error) {
	switch StakeholderType(s) {
	case StakeholderEcosystem, StakeholderProfessional:
		return StakeholderType(s), nil
	}
	return "", ErrUnknownStakeholderType
}

type Currency string

const (
	CurrencyINR Currency = "INR"
	CurrencyUSD Currency = "USD"
)

var ErrUnknownCurrency = errors.New("unknown currency")

func ParseCurrency(s string) (Currency, error) {
	switch Currency(s) {
	case CurrencyINR, CurrencyUSD:
		return Currency(s), nil
	}
	return "", ErrUnknownCurrency
}

type SubscriptionStatus string

const (
	SubscriptionPending SubscriptionStatus = "pending"
	SubscriptionActive  SubscriptionStatus = "active"
	SubscriptionLapsed  SubscriptionStatus = "lapsed"
)

type User struct {
	ID                 int                `db:"id"`
	Login              string             `db:"login"`
	PasswordHash       string             `db:"password_hash"`
	StakeholderType    StakeholderType    `db:"stakeholder_type"`
	Currency           Currency           `db:"currency"`
	ReferralCode       string             `db:"referral_code"`
	ReferredBy         *int               `db:"referred_by"`
	SubscriptionStatus SubscriptionStatus `db:"subscription_status"`
	RegistrationFee    float64            `db:"registration_fee"`
	AwaitingINR        bool               `db:"awaiting_inr"`
	AwaitingUSD        bool               `db:"awaiting_usd"`
	CreatedAt          time.Time          `db:"created_at"`
}

// PricingBracket is one rung of a stakeholder type's price ladder.
// MaxSignups is nil on the open-ended terminal bracket.
type PricingBracket struct {
	ID              int             `db:"id"`
	StakeholderType StakeholderType `db:"stakeholder_type"`
	Currency        Currency        `db:"currency"`
	MinSignups      int             `db:"min_signups"`
	MaxSignups      *int            `db:"max_signups"`
	Price           float64         `db:"price"`
	Active          bool            `db:"active"`
}

type SignupCounter struct {
	StakeholderType StakeholderType `db:"stakeholder_type"`
	SignupCount     int             `db:"signup_count"`
}

type ReferralStatus string

const (
	// ReferralPending is earned but not yet withdrawable.
	ReferralPending ReferralStatus = "pending"
	// ReferralHeld means the referrer's subscription was not active when
	// the referred payment verified; no wallet credit is issued.
	ReferralHeld ReferralStatus = "held"
	// ReferralCredited means the matching wallet funds have unlocked.
	ReferralCredited ReferralStatus = "credited"
)

type Referral struct {
	ID              int            `db:"id"`
	ReferrerID      int            `db:"referrer_id"`
	ReferredID      int            `db:"referred_id"`
	PaymentIntentID int            `db:"payment_intent_id"`
	EarningsINR     float64        `db:"earnings_inr"`
	EarningsUSD     float64        `db:"earnings_usd"`
	Status          ReferralStatus `db:"status"`
	CreatedAt       time.Time      `db:"created_at"`
}

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentSubmitted PaymentStatus = "submitted"
	PaymentVerified  PaymentStatus = "verified"
	PaymentFailed    PaymentStatus = "failed"
	PaymentExpired   PaymentStatus = "expired"
)

type PaymentIntent struct {
	ID              int           `db:"id"`
	UserID          int           `db:"user_id"`
	Purpose         string        `db:"purpose"`
	Method          string        `db:"method"`
	Status          PaymentStatus `db:"status"`
	Amount          float64       `db:"amount"`
	Currency        Currency      `db:"currency"`
	ProviderRef     string        `db:"provider_ref"`
	GlitchFlaggedAt *time.Time    `db:"glitch_flagged_at"`
	GlitchResolved  bool          `db:"glitch_resolved"`
	CreatedAt       time.Time     `db:"created_at"`
	VerifiedAt      *time.Time    `db:"verified_at"`
}

const (
	PaymentPurposeRegistration = "registration"

	PaymentMethodCashfree = "cashfree"
	PaymentMethodPaypal   = "paypal"
)

type WalletTxType string

const (
	WalletTxReferralCredit WalletTxType = "referral_credit"
	WalletTxGlitchBonus    WalletTxType = "glitch_bonus"
	WalletTxWithdrawal     WalletTxType = "withdrawal"
)

type WalletTxStatus string

const (
	WalletTxPending   WalletTxStatus = "pending"
	WalletTxAvailable WalletTxStatus = "available"
	WalletTxWithdrawn WalletTxStatus = "withdrawn"
)

type WalletTransaction struct {
	ID        int            `db:"id"`
	UserID    int            `db:"user_id"`
	Type      WalletTxType   `db:"type"`
	Amount    float64        `db:"amount"`
	Currency  Currency       `db:"currency"`
	Status    WalletTxStatus `db:"status"`
	CreatedAt time.Time      `db:"created_at"`
}

// WalletBalance is an aggregate over wallet transactions for one currency.
type WalletBalance struct {
	Currency  Currency `db:"currency"`
	Available float64  `db:"available"`
	Pending   float64  `db:"pending"`
}
