package strategy

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "rebalance"

// metrics are instance-scoped so several strategies can share a process.
type metrics struct {
	decisions  *prometheus.CounterVec
	candidates prometheus.Histogram
	overflow   *prometheus.CounterVec
	extraCost  prometheus.Counter
	cacheSize  prometheus.Gauge
	resets     prometheus.Counter
}

// newMetrics creates the collectors and registers them on reg (nil: none).
func newMetrics(reg prometheus.Registerer) *metrics {
	f := promauto.With(reg)

	return &metrics{
		decisions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "decisions_total",
			Help:      "Nodes flagged for a rebalancing decision.",
		}, []string{"polarity"}),
		candidates: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "action_scope_candidates",
			Help:      "Neighbor candidates surviving the filter pipeline.",
			Buckets:   []float64{0, 1, 2, 5, 10, 20, 50, 100},
		}),
		overflow: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "overflow_units_total",
			Help:      "Overflow units by outcome (placed, dropped).",
		}, []string{"outcome"}),
		extraCost: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "extra_cost_total",
			Help:      "Extra cost charged by overflow distribution.",
		}),
		cacheSize: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "neighbor_cache_entries",
			Help:      "Nodes whose neighbor list is cached.",
		}),
		resets: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "filter_resets_total",
			Help:      "Filter pipeline resets.",
		}),
	}
}
