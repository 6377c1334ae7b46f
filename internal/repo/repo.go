package repo

import (
	"github.com/i2u-ai/platform/internal/pg"
	paymentrepo "github.com/i2u-ai/platform/internal/repo/payment-repo"
	pricingrepo "github.com/i2u-ai/platform/internal/repo/pricing-repo"
	referralrepo "github.com/i2u-ai/platform/internal/repo/referral-repo"
	signuprepo "github.com/i2u-ai/platform/internal/repo/signup-repo"
	userrepo "github.com/i2u-ai/platform/internal/repo/user-repo"
	walletrepo "github.com/i2u-ai/platform/internal/repo/wallet-repo"
)

type Repositories struct {
	UserRepo     *userrepo.Repository
	SignupRepo   *signuprepo.Repository
	PricingRepo  *pricingrepo.Repository
	PaymentRepo  *paymentrepo.Repository
	ReferralRepo *referralrepo.Repository
	WalletRepo   *walletrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:     userrepo.New(conn),
		SignupRepo:   signuprepo.New(conn, txManager),
		PricingRepo:  pricingrepo.New(conn),
		PaymentRepo:  paymentrepo.New(conn, txManager),
		ReferralRepo: referralrepo.New(conn),
		WalletRepo:   walletrepo.New(conn),
	}
}
