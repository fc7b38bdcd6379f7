// Package metrics collects the per-run numeric signals worth exporting
// from one fillshifts invocation and pushes them to a Prometheus
// Pushgateway. A one-shot batch process has no long-lived /metrics
// endpoint for Prometheus to scrape, so the push model — rather than the
// usual pull model — is the correct fit here.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

// Run holds one invocation's collectors. Push is a no-op when gatewayURL
// was empty at construction time, so callers do not need to branch on
// whether metrics are configured.
type Run struct {
	registry        *prometheus.Registry
	pusher          *push.Pusher
	assignments     *prometheus.CounterVec
	shortfall       *prometheus.GaugeVec
	gini            *prometheus.GaugeVec
	smoothingFactor *prometheus.GaugeVec
}

// New constructs a Run's collectors. gatewayURL empty disables Push.
func New(gatewayURL, jobName string) *Run {
	registry := prometheus.NewRegistry()

	r := &Run{
		registry: registry,
		assignments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rota_assignments_generated_total",
			Help: "Slot-instances filled by this run's pool.",
		}, []string{"pool"}),
		shortfall: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "rota_flow_shortfall",
			Help: "Requested minus filled for this run's pool.",
		}, []string{"pool"}),
		gini: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "rota_gini_score",
			Help: "Projected Gini coefficient of the accepted smoothing factor.",
		}, []string{"pool"}),
		smoothingFactor: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "rota_solver_smoothing_factor",
			Help: "Smoothing factor the sweep settled on for this run's pool.",
		}, []string{"pool"}),
	}
	registry.MustRegister(r.assignments, r.shortfall, r.gini, r.smoothingFactor)

	if gatewayURL != "" {
		r.pusher = push.New(gatewayURL, jobName).Gatherer(registry)
	}
	return r
}

// Observe records one pool's outcome.
func (r *Run) Observe(pool string, requested, filled int, gini, smoothingFactor float64) {
	r.assignments.WithLabelValues(pool).Add(float64(filled))
	r.shortfall.WithLabelValues(pool).Set(float64(requested - filled))
	r.gini.WithLabelValues(pool).Set(gini)
	r.smoothingFactor.WithLabelValues(pool).Set(smoothingFactor)
}

// Push sends the collected metrics to the configured Pushgateway. A no-op
// when no gateway URL was supplied to New.
func (r *Run) Push() error {
	if r.pusher == nil {
		return nil
	}
	if err := r.pusher.Push(); err != nil {
		return fmt.Errorf("metrics: push to gateway: %w", err)
	}
	return nil
}
