package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// CheckoutMetrics records outcomes for checkout attempts.
type CheckoutMetrics struct {
	duration  *prometheus.HistogramVec
	attempts  *prometheus.CounterVec
	rollbacks prometheus.Counter
}

// NewCheckoutMetrics registers the checkout metrics on the provided registerer.
func NewCheckoutMetrics(reg prometheus.Registerer) *CheckoutMetrics {
	if reg == nil {
		return &CheckoutMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "checkout_duration_seconds",
		Help:    "Duration of checkout attempts in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"outcome"})
	attempts := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "checkout_attempts",
		Help: "Checkout attempts by outcome.",
	}, []string{"outcome"})
	rollbacks := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "checkout_rollback_lines",
		Help: "Stock decrements returned to the ledger during compensation.",
	})
	reg.MustRegister(duration, attempts, rollbacks)
	return &CheckoutMetrics{
		duration:  duration,
		attempts:  attempts,
		rollbacks: rollbacks,
	}
}

// ObserveDuration records the duration for an attempt with the given outcome.
func (c *CheckoutMetrics) ObserveDuration(outcome string, duration time.Duration) {
	if c == nil || c.duration == nil {
		return
	}
	c.duration.WithLabelValues(normalizeLabel(outcome)).Observe(duration.Seconds())
}

// IncAttempt increments the attempt counter for the given outcome.
func (c *CheckoutMetrics) IncAttempt(outcome string) {
	if c == nil || c.attempts == nil {
		return
	}
	c.attempts.WithLabelValues(normalizeLabel(outcome)).Inc()
}

// AddRollbackLines counts cart lines whose decrements were compensated.
func (c *CheckoutMetrics) AddRollbackLines(n int) {
	if c == nil || c.rollbacks == nil {
		return
	}
	if n > 0 {
		c.rollbacks.Add(float64(n))
	}
}

func normalizeLabel(outcome string) string {
	if outcome == "" {
		return "unknown"
	}
	return outcome
}
