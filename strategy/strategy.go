// SPDX-License-Identifier: MIT
//
// File: strategy.go
// Role: the decision-support facade over trigger, scope, filters and overflow.

package strategy

import (
	"fmt"
	"math"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/rebalance/config"
	"github.com/katalvlaran/rebalance/core"
	"github.com/katalvlaran/rebalance/filter"
	"github.com/katalvlaran/rebalance/history"
	"github.com/katalvlaran/rebalance/matrix"
	"github.com/katalvlaran/rebalance/neighbors"
	"github.com/katalvlaran/rebalance/overflow"
	"github.com/katalvlaran/rebalance/sampler"
	"github.com/katalvlaran/rebalance/scope"
	"github.com/katalvlaran/rebalance/trigger"
)

// Strategy owns the per-instance caches and every component of one
// rebalancing engine. It is not safe for concurrent use.
type Strategy struct {
	net      *core.Network
	resolver *neighbors.Resolver
	pipeline *filter.Pipeline
	trigger  *trigger.Trigger
	scope    *scope.Calculator
	overflow *overflow.Distributor

	sampler  sampler.Sampler
	timeMean float64
	timeStd  float64
	log      logr.Logger
	metrics  *metrics
}

// New builds a Strategy over nodes, the distance matrix dist and the
// history store hist (hist may be nil unless a trip_window filter is
// configured).
//
// Implementation:
//   - Stage 1: validate cfg and the node/matrix shapes.
//   - Stage 2: build the neighbor resolver and the filter pipeline.
//   - Stage 3: build trigger, scope calculator and overflow distributor.
//
// Every failure is reported here, never on first use, and wraps
// core.ErrConfiguration, core.ErrInvalidIndex or core.ErrInvariantViolation.
func New(nodes []*core.Node, dist matrix.Distances, hist history.Store, cfg config.Config, opts ...Option) (*Strategy, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 1) Inputs.
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("strategy: %w", err)
	}
	net, err := core.NewNetwork(nodes)
	if err != nil {
		return nil, fmt.Errorf("strategy: %w", err)
	}
	if dist == nil {
		return nil, fmt.Errorf("strategy: nil distance matrix: %w", core.ErrConfiguration)
	}
	if dist.Size() != net.Len() {
		return nil, fmt.Errorf("strategy: %d nodes but %d distance rows: %w",
			net.Len(), dist.Size(), core.ErrConfiguration)
	}

	// 2) Neighbors and filters.
	resolver, err := neighbors.NewResolver(dist)
	if err != nil {
		return nil, fmt.Errorf("strategy: %w", err)
	}
	pipeline, err := filter.NewPipeline(cfg.FilterSpecs(), filter.Deps{Neighbors: resolver, History: hist})
	if err != nil {
		return nil, fmt.Errorf("strategy: %w", err)
	}

	// 3) Decision components.
	trig, err := trigger.New(net, cfg.Resolution, trigger.Marks{
		Supply: *cfg.SupplyWaterMarkRatio,
		Demand: *cfg.DemandWaterMarkRatio,
	})
	if err != nil {
		return nil, fmt.Errorf("strategy: %w", err)
	}
	calc, err := scope.New(net, resolver, pipeline, scope.Ratios{
		Low:  *cfg.ActionScope.Low,
		High: *cfg.ActionScope.High,
	})
	if err != nil {
		return nil, fmt.Errorf("strategy: %w", err)
	}
	dst, err := overflow.New(net, resolver, *cfg.ExtraCostMode, o.cost)
	if err != nil {
		return nil, fmt.Errorf("strategy: %w", err)
	}

	smp := o.sampler
	if smp == nil {
		smp = sampler.NewGaussian(cfg.Seed)
	}

	s := &Strategy{
		net:      net,
		resolver: resolver,
		pipeline: pipeline,
		trigger:  trig,
		scope:    calc,
		overflow: dst,
		sampler:  smp,
		timeMean: *cfg.EffectiveTimeMean,
		timeStd:  *cfg.EffectiveTimeStd,
		log:      o.logger,
		metrics:  newMetrics(o.registerer),
	}
	s.log.Info("rebalance strategy ready",
		"nodes", net.Len(),
		"resolution", cfg.Resolution,
		"filters", pipeline.Kinds(),
		"extraCostMode", cfg.ExtraCostMode.String())

	return s, nil
}

// IsDecisionTick reports whether tick is a decision tick.
func (s *Strategy) IsDecisionTick(tick int) bool {
	return s.trigger.IsDecisionTick(tick)
}

// NodesNeedingDecision returns the nodes flagged at tick, in index order.
func (s *Strategy) NodesNeedingDecision(tick int) []trigger.Decision {
	out := s.trigger.NodesNeedingDecision(tick)
	for _, d := range out {
		s.metrics.decisions.WithLabelValues(d.Polarity.String()).Inc()
	}
	if len(out) > 0 {
		s.log.V(1).Info("nodes need decision", "tick", tick, "count", len(out))
	}

	return out
}

// ActionScope returns the bound of index and of every neighbor surviving
// the filter pipeline for polarity p.
func (s *Strategy) ActionScope(index int, p core.Polarity) (filter.Candidates, error) {
	out, err := s.scope.Scope(index, p)
	if err != nil {
		return nil, fmt.Errorf("strategy: %w", err)
	}
	s.metrics.candidates.Observe(float64(len(out) - 1))
	s.metrics.cacheSize.Set(float64(s.resolver.Len()))
	s.log.V(1).Info("action scope", "node", index, "polarity", p.String(), "candidates", len(out)-1)

	return out, nil
}

// Distribute places quantity overflow units around cur on behalf of src.
// Units that no neighbor can take are dropped and reported in
// Result.Remainder.
func (s *Strategy) Distribute(src, cur *core.Node, quantity int) (overflow.Result, error) {
	res, err := s.overflow.Distribute(src, cur, quantity)
	s.metrics.overflow.WithLabelValues("placed").Add(float64(res.Placed))
	s.metrics.extraCost.Add(res.TotalCost())
	s.metrics.cacheSize.Set(float64(s.resolver.Len()))
	if err != nil {
		return res, fmt.Errorf("strategy: %w", err)
	}
	if res.Remainder > 0 {
		s.metrics.overflow.WithLabelValues("dropped").Add(float64(res.Remainder))
		s.log.V(1).Info("overflow dropped", "node", cur.Index, "placed", res.Placed, "dropped", res.Remainder)
	}

	return res, nil
}

// TransferTime draws one transfer time, rounded to the nearest tick with
// ties to even. Every call draws afresh.
func (s *Strategy) TransferTime() int {
	return int(math.RoundToEven(s.sampler.Sample(s.timeMean, s.timeStd)))
}

// Reset clears every filter cache. The neighbor cache is kept.
func (s *Strategy) Reset() {
	s.pipeline.Reset()
	s.metrics.resets.Inc()
	s.log.V(1).Info("filters reset", "neighborCacheEntries", s.resolver.Len())
}

// Neighbors returns the neighbors of index in ascending distance order.
func (s *Strategy) Neighbors(index int) ([]core.DistanceEdge, error) {
	edges, err := s.resolver.Of(index)
	if err != nil {
		return nil, fmt.Errorf("strategy: %w", err)
	}
	s.metrics.cacheSize.Set(float64(s.resolver.Len()))

	return edges, nil
}

// Network returns the node view the strategy operates on.
func (s *Strategy) Network() *core.Network { return s.net }

// Pipeline returns the configured filter pipeline.
func (s *Strategy) Pipeline() *filter.Pipeline { return s.pipeline }
