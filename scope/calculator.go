package scope

import (
	"fmt"
	"math"

	"github.com/katalvlaran/rebalance/core"
	"github.com/katalvlaran/rebalance/filter"
)

// Narrower is the pipeline surface the calculator drives.
// *filter.Pipeline satisfies it.
type Narrower interface {
	Apply(index int, p core.Polarity, in filter.Candidates) (filter.Candidates, error)
}

// Ratios are the action-scope ratios.
//
//   - Low  : share of a supplying node's bikes kept as a reserve.
//   - High : share of a neighbor's bikes it may release on demand.
type Ratios struct {
	Low  float64
	High float64
}

// Validate checks that both ratios lie in [0,1].
func (r Ratios) Validate() error {
	if math.IsNaN(r.Low) || r.Low < 0 || r.Low > 1 {
		return fmt.Errorf("scope: low ratio %v outside [0,1]: %w", r.Low, core.ErrConfiguration)
	}
	if math.IsNaN(r.High) || r.High < 0 || r.High > 1 {
		return fmt.Errorf("scope: high ratio %v outside [0,1]: %w", r.High, core.ErrConfiguration)
	}

	return nil
}

// Calculator computes action scopes over a network.
type Calculator struct {
	net       *core.Network
	neighbors filter.NeighborSource
	pipeline  Narrower
	ratios    Ratios
}

// New returns a Calculator. pipeline may be nil, meaning no narrowing.
func New(net *core.Network, neighbors filter.NeighborSource, pipeline Narrower, ratios Ratios) (*Calculator, error) {
	if net == nil {
		return nil, fmt.Errorf("scope: nil network: %w", core.ErrConfiguration)
	}
	if neighbors == nil {
		return nil, fmt.Errorf("scope: nil neighbor source: %w", core.ErrConfiguration)
	}
	if err := ratios.Validate(); err != nil {
		return nil, err
	}

	return &Calculator{net: net, neighbors: neighbors, pipeline: pipeline, ratios: ratios}, nil
}

// Ratios returns the configured ratios.
func (c *Calculator) Ratios() Ratios { return c.ratios }

// Scope returns index's own bound plus the bounds of the neighbors that
// survive the pipeline.
//
// Implementation:
//   - Stage 1: raw bound for every reachable neighbor.
//   - Stage 2: narrow through the pipeline in configured order.
//   - Stage 3: add the node's own bound under its own index.
//
// Complexity: O(k) plus the pipeline cost, k = number of neighbors.
func (c *Calculator) Scope(index int, p core.Polarity) (filter.Candidates, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("scope: polarity %s: %w", p, core.ErrConfiguration)
	}
	node, err := c.net.Node(index)
	if err != nil {
		return nil, fmt.Errorf("scope: %w", err)
	}

	// 1) Raw neighbor bounds.
	edges, err := c.neighbors.Of(index)
	if err != nil {
		return nil, fmt.Errorf("scope: node %d: %w", index, err)
	}
	raw := make(filter.Candidates, len(edges))
	var nb *core.Node
	var bound int
	for _, e := range edges {
		if e.Neighbor < 0 {
			continue
		}
		if nb, err = c.net.Node(e.Neighbor); err != nil {
			return nil, fmt.Errorf("scope: neighbor of %d: %w", index, err)
		}
		if bound, err = c.NeighborBound(nb, p); err != nil {
			return nil, fmt.Errorf("scope: %w", err)
		}
		raw[e.Neighbor] = bound
	}

	// 2) Narrow.
	out := raw
	if c.pipeline != nil {
		if out, err = c.pipeline.Apply(index, p, raw); err != nil {
			return nil, fmt.Errorf("scope: node %d: %w", index, err)
		}
	}

	// 3) Self bound.
	if bound, err = c.SelfBound(node, p); err != nil {
		return nil, fmt.Errorf("scope: %w", err)
	}
	out[index] = bound

	return out, nil
}

// NeighborBound is what neighbor n can take (Supply) or give (Demand).
func (c *Calculator) NeighborBound(n *core.Node, p core.Polarity) (int, error) {
	if err := n.Validate(); err != nil {
		return 0, err
	}
	switch p {
	case core.Supply:
		return n.Capacity - n.Bikes, nil
	case core.Demand:
		return int(math.Floor(float64(n.Bikes) * c.ratios.High)), nil
	default:
		return 0, fmt.Errorf("scope: polarity %s: %w", p, core.ErrConfiguration)
	}
}

// SelfBound is what node n may offload (Supply) or accept (Demand).
func (c *Calculator) SelfBound(n *core.Node, p core.Polarity) (int, error) {
	if err := n.Validate(); err != nil {
		return 0, err
	}
	switch p {
	case core.Supply:
		return int(math.Floor(float64(n.Bikes) * (1 - c.ratios.Low))), nil
	case core.Demand:
		return n.Capacity - n.Bikes, nil
	default:
		return 0, fmt.Errorf("scope: polarity %s: %w", p, core.ErrConfiguration)
	}
}
