package settlement

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/i2u-ai/platform/internal/config"
	"github.com/i2u-ai/platform/internal/domain"
	"github.com/i2u-ai/platform/internal/gateway/cashfree"
	"github.com/i2u-ai/platform/internal/metrics"
)

//go:generate mockgen -source=settlement.go -destination=settlement_mock.go -package=settlement

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
)

var processingIntents sync.Map

type Gateway interface {
	GetOrder(ctx context.Context, orderID string) (*cashfree.Order, error)
}

type PaymentRepo interface {
	FindForSettlement(ctx context.Context, limit uint32) ([]domain.PaymentIntent, error)
}

type Settler interface {
	Settle(ctx context.Context, intentID int, outcome domain.PaymentStatus) error
}

type WalletPromoter interface {
	PromoteUnlocked(ctx context.Context) (int64, error)
}

// Service polls open payment intents, asks the gateway for their fate and
// hands terminal outcomes to the payment service. It also runs the wallet
// unlock sweep on the same cadence.
type Service struct {
	paymentRepo  PaymentRepo
	settler      Settler
	wallet       WalletPromoter
	gateway      Gateway
	limit        uint32
	workerPool   WorkerPoolI
	pollInterval time.Duration
}

func New(cfg *config.Config, paymentRepo PaymentRepo, settler Settler, wallet WalletPromoter, gateway Gateway) *Service {
	return &Service{
		paymentRepo:  paymentRepo,
		settler:      settler,
		wallet:       wallet,
		gateway:      gateway,
		limit:        1000,
		workerPool:   NewWorkerPool(10),
		pollInterval: cfg.SettlementInterval,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Settlement service started", zap.Duration("interval", s.pollInterval))
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping settlement service")
			s.workerPool.Close()
			return
		case <-ticker.C:
			s.processIntents(ctx)
			s.promoteWallet(ctx)
			metrics.Registry(metrics.Namespace).SettlementTicks.Inc()
		}
	}
}

func (s *Service) processIntents(ctx context.Context) {
	intents, err := s.paymentRepo.FindForSettlement(ctx, atomic.LoadUint32(&s.limit))
	if err != nil {
		zap.L().Error("Failed to fetch intents for settlement", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, intent := range intents {
		intent := intent

		if _, loaded := processingIntents.LoadOrStore(intent.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer processingIntents.Delete(intent.ID)
				return s.handleIntent(ctx, intent)
			})
			if err != nil {
				processingIntents.Delete(intent.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error processing intents", zap.Error(err))
	}
}

func (s *Service) handleIntent(ctx context.Context, intent domain.PaymentIntent) error {
	var order *cashfree.Order
	var err error

	for attempt := 1; attempt <= maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			order, err = s.gateway.GetOrder(ctx, intent.ProviderRef)
			if err != nil {
				if attempt < maxRetries {
					time.Sleep(retryInterval * time.Duration(attempt))
					continue
				}
				return fmt.Errorf("failed to check intent %d after %d retries: %w", intent.ID, maxRetries, err)
			}
		}
		break
	}

	outcome := cashfree.Outcome(order.OrderStatus)
	if outcome == "" {
		zap.L().Debug("Intent still in flight at gateway",
			zap.Int("intentID", intent.ID), zap.String("orderStatus", order.OrderStatus))
		return nil
	}

	if err := s.settler.Settle(ctx, intent.ID, outcome); err != nil {
		return fmt.Errorf("failed to settle intent %d: %w", intent.ID, err)
	}
	zap.L().Info("Intent settled",
		zap.Int("intentID", intent.ID), zap.String("outcome", string(outcome)))
	return nil
}

func (s *Service) promoteWallet(ctx context.Context) {
	promoted, err := s.wallet.PromoteUnlocked(ctx)
	if err != nil {
		zap.L().Error("Failed to promote unlocked wallet funds", zap.Error(err))
		return
	}
	if promoted > 0 {
		zap.L().Info("Wallet funds unlocked", zap.Int64("transactions", promoted))
	}
}
