package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Namespace prefixes every metric exported by the service.
const Namespace = "i2u"

// Metrics stores Prometheus collectors used across the service.
type Metrics struct {
	Registrations   *prometheus.CounterVec
	Signups         *prometheus.CounterVec
	Payments        *prometheus.CounterVec
	ReferralCredits *prometheus.CounterVec
	GlitchBonuses   prometheus.Counter
	SettlementTicks prometheus.Counter
}

var (
	regOnce         sync.Once
	metricsInstance *Metrics
)

// Registry builds and registers the metrics singleton with optional namespace.
func Registry(namespace string) *Metrics {
	regOnce.Do(func() {
		metricsInstance = &Metrics{
			Registrations: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "registrations_total",
				Help:      "Total user registrations by stakeholder type.",
			}, []string{"stakeholder_type"}),
			Signups: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "paid_signups_total",
				Help:      "Total counted paid signups by stakeholder type.",
			}, []string{"stakeholder_type"}),
			Payments: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "payments_total",
				Help:      "Total settled payment intents by outcome.",
			}, []string{"outcome"}),
			ReferralCredits: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "referral_credits_total",
				Help:      "Total referral commissions recorded by status.",
			}, []string{"status"}),
			GlitchBonuses: prometheus.NewCounter(prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "glitch_bonuses_total",
				Help:      "Total delay compensation bonuses credited.",
			}),
			SettlementTicks: prometheus.NewCounter(prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "settlement_ticks_total",
				Help:      "Total settlement poll cycles completed.",
			}),
		}

		prometheus.MustRegister(
			metricsInstance.Registrations,
			metricsInstance.Signups,
			metricsInstance.Payments,
			metricsInstance.ReferralCredits,
			metricsInstance.GlitchBonuses,
			metricsInstance.SettlementTicks,
		)
	})
	return metricsInstance
}
