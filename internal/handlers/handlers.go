package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/i2u-ai/platform/docs"
	"github.com/i2u-ai/platform/internal/exchange"
	gateway "github.com/i2u-ai/platform/internal/gateway/cashfree"
	authhandlers "github.com/i2u-ai/platform/internal/handlers/auth"
	cashfreehandlers "github.com/i2u-ai/platform/internal/handlers/cashfree"
	exchangehandlers "github.com/i2u-ai/platform/internal/handlers/exchange"
	paymenthandlers "github.com/i2u-ai/platform/internal/handlers/payment"
	pricinghandlers "github.com/i2u-ai/platform/internal/handlers/pricing"
	wallethandlers "github.com/i2u-ai/platform/internal/handlers/wallet"
	"github.com/i2u-ai/platform/internal/service"
	"github.com/i2u-ai/platform/pkg/auth"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type PricingHandler interface {
	GetDynamicStats(w http.ResponseWriter, r *http.Request)
}

type PaymentHandler interface {
	GetPendingStatus(w http.ResponseWriter, r *http.Request)
	FlagGlitch(w http.ResponseWriter, r *http.Request)
}

type CashfreeHandler interface {
	GetConfig(w http.ResponseWriter, r *http.Request)
	CreateOrder(w http.ResponseWriter, r *http.Request)
	VerifyOrder(w http.ResponseWriter, r *http.Request)
}

type WalletHandler interface {
	GetWallet(w http.ResponseWriter, r *http.Request)
	Withdraw(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
	GetReferrals(w http.ResponseWriter, r *http.Request)
}

type ExchangeHandler interface {
	GetRate(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler     AuthHandler
	PricingHandler  PricingHandler
	PaymentHandler  PaymentHandler
	CashfreeHandler CashfreeHandler
	WalletHandler   WalletHandler
	ExchangeHandler ExchangeHandler
}

func New(s *service.Services, gw *gateway.Client, rates *exchange.Service) *Handlers {
	return &Handlers{
		AuthHandler:     authhandlers.New(s.AuthService),
		PricingHandler:  pricinghandlers.New(s.PricingService),
		PaymentHandler:  paymenthandlers.New(s.PaymentService),
		CashfreeHandler: cashfreehandlers.New(s.PaymentService, gw),
		WalletHandler:   wallethandlers.New(s.WalletService, s.ReferralService),
		ExchangeHandler: exchangehandlers.New(rates),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Handle("/metrics", promhttp.Handler())
	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", h.AuthHandler.Register)
		r.Post("/auth/login", h.AuthHandler.Login)
		r.Get("/pricing/dynamic-stats", h.PricingHandler.GetDynamicStats)
		r.Get("/exchange-rate", h.ExchangeHandler.GetRate)
		r.Get("/cashfree/config", h.CashfreeHandler.GetConfig)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Route("/payment", func(r chi.Router) {
				r.Get("/pending-status", h.PaymentHandler.GetPendingStatus)
				r.Post("/flag-glitch", h.PaymentHandler.FlagGlitch)
			})
			r.Post("/cashfree/order", h.CashfreeHandler.CreateOrder)
			r.Get("/cashfree/verify/{orderID}", h.CashfreeHandler.VerifyOrder)
			r.Route("/wallet", func(r chi.Router) {
				r.Get("/", h.WalletHandler.GetWallet)
				r.Post("/withdraw", h.WalletHandler.Withdraw)
				r.Get("/transactions", h.WalletHandler.GetTransactions)
			})
			r.Get("/referrals", h.WalletHandler.GetReferrals)
		})
	})

	return r
}
