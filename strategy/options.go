package strategy

import (
	"github.com/go-logr/logr"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/rebalance/overflow"
	"github.com/katalvlaran/rebalance/sampler"
)

// Option customizes a Strategy.
type Option func(*options)

type options struct {
	logger     logr.Logger
	registerer prometheus.Registerer
	sampler    sampler.Sampler
	cost       overflow.CostFunc
}

func defaultOptions() options {
	return options{logger: logr.Discard()}
}

// WithLogger sets the structured logger. Per-decision detail is logged at V(1).
func WithLogger(l logr.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithRegisterer registers the strategy metrics on r.
// Without it the metrics are still maintained but never exported.
func WithRegisterer(r prometheus.Registerer) Option {
	return func(o *options) { o.registerer = r }
}

// WithSampler replaces the transfer-time sampler.
// The default is a sampler.Gaussian seeded from the configuration.
func WithSampler(s sampler.Sampler) Option {
	return func(o *options) { o.sampler = s }
}

// WithCostFunc replaces the overflow pricing (default overflow.RankWeighted).
func WithCostFunc(f overflow.CostFunc) Option {
	return func(o *options) { o.cost = f }
}
