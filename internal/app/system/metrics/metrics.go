// Package metrics provides observability for the donation lifecycle.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the service's prometheus collectors.
type Metrics struct {
	// Sign-up results: "created" or "exists"
	Signups *prometheus.CounterVec

	// Claim outcomes: "claimed", "conflict", "not_found"
	Claims *prometheus.CounterVec

	// Checkout session creation results: "created" or "failed"
	CheckoutSessions *prometheus.CounterVec
}

// New creates a Metrics instance with all collectors registered on the
// default registry.
func New() *Metrics {
	return &Metrics{
		Signups: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "lifelink_signups_total",
			Help: "Total sign-up calls by result",
		}, []string{"result"}),

		Claims: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "lifelink_claims_total",
			Help: "Total donation-request claim attempts by outcome",
		}, []string{"outcome"}),

		CheckoutSessions: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "lifelink_checkout_sessions_total",
			Help: "Total checkout-session creations by result",
		}, []string{"result"}),
	}
}

// IncSignup records a sign-up result.
func (m *Metrics) IncSignup(result string) {
	if m != nil {
		m.Signups.WithLabelValues(result).Inc()
	}
}

// IncClaim records a claim outcome.
func (m *Metrics) IncClaim(outcome string) {
	if m != nil {
		m.Claims.WithLabelValues(outcome).Inc()
	}
}

// IncCheckout records a checkout-session result.
func (m *Metrics) IncCheckout(result string) {
	if m != nil {
		m.CheckoutSessions.WithLabelValues(result).Inc()
	}
}
