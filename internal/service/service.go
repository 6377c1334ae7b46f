package service

import (
	"github.com/i2u-ai/platform/internal/exchange"
	"github.com/i2u-ai/platform/internal/pg"
	"github.com/i2u-ai/platform/internal/repo"
	authservice "github.com/i2u-ai/platform/internal/service/authservice"
	paymentservice "github.com/i2u-ai/platform/internal/service/paymentservice"
	pricingservice "github.com/i2u-ai/platform/internal/service/pricingservice"
	referralservice "github.com/i2u-ai/platform/internal/service/referralservice"
	walletservice "github.com/i2u-ai/platform/internal/service/walletservice"
	pkgauth "github.com/i2u-ai/platform/pkg/auth"
)

type Services struct {
	AuthService     *authservice.Service
	PricingService  *pricingservice.Service
	PaymentService  *paymentservice.Service
	ReferralService *referralservice.Service
	WalletService   *walletservice.Service
}

func New(repo *repo.Repositories, rates *exchange.Service, txManager pg.TXManager) *Services {
	pricingService := pricingservice.New(repo.PricingRepo, repo.SignupRepo)
	walletService := walletservice.New(repo.WalletRepo)
	referralService := referralservice.New(repo.ReferralRepo, repo.UserRepo, repo.WalletRepo, rates, txManager)
	paymentService := paymentservice.New(repo.PaymentRepo, repo.UserRepo, repo.SignupRepo, repo.WalletRepo, referralService, pricingService, txManager)
	authService := authservice.New(repo.UserRepo, &pkgauth.HashService{}, &pkgauth.JWTService{})

	return &Services{
		AuthService:     authService,
		PricingService:  pricingService,
		PaymentService:  paymentService,
		ReferralService: referralService,
		WalletService:   walletService,
	}
}
