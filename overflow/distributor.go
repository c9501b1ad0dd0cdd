// SPDX-License-Identifier: MIT
//
// File: distributor.go
// Role: greedy rank-ordered overflow placement with extra-cost attribution.

package overflow

import (
	"fmt"
	"math"

	"github.com/katalvlaran/rebalance/core"
	"github.com/katalvlaran/rebalance/filter"
)

// CostFunc prices one overflow allocation of accepted units to a neighbor at
// the given distance and 0-based rank.
type CostFunc func(accepted int, distance float64, rank int) float64

// RankWeighted is the default CostFunc: accepted × (rank + 1).
// The distance is ignored.
func RankWeighted(accepted int, _ float64, rank int) float64 {
	return float64(accepted * (rank + 1))
}

// Allocation records one visited neighbor.
type Allocation struct {
	Neighbor int
	Rank     int
	Distance float64
	Accepted int
	Cost     float64
}

// Result is the outcome of one Distribute call.
// Placed + Remainder always equals the requested quantity.
type Result struct {
	Allocations []Allocation
	Placed      int
	Remainder   int
}

// TotalCost sums the cost of every allocation.
func (r Result) TotalCost() float64 {
	var sum float64
	for _, a := range r.Allocations {
		sum += a.Cost
	}

	return sum
}

// Distributor places overflow over a network.
type Distributor struct {
	net       *core.Network
	neighbors filter.NeighborSource
	mode      core.CostMode
	cost      CostFunc
}

// New returns a Distributor. A nil cost uses RankWeighted.
func New(net *core.Network, neighbors filter.NeighborSource, mode core.CostMode, cost CostFunc) (*Distributor, error) {
	if net == nil {
		return nil, fmt.Errorf("overflow: nil network: %w", core.ErrConfiguration)
	}
	if neighbors == nil {
		return nil, fmt.Errorf("overflow: nil neighbor source: %w", core.ErrConfiguration)
	}
	if !mode.Valid() {
		return nil, fmt.Errorf("overflow: cost mode %s: %w", mode, core.ErrConfiguration)
	}
	if cost == nil {
		cost = RankWeighted
	}

	return &Distributor{net: net, neighbors: neighbors, mode: mode, cost: cost}, nil
}

// Mode returns the configured cost attribution mode.
func (d *Distributor) Mode() core.CostMode { return d.mode }

// Distribute places quantity units around cur, charging extra cost on behalf
// of src (the node that issued the original transfer).
//
// Implementation:
//   - Stage 1: resolve cur's neighbors in ascending-distance order.
//   - Stage 2: for each real neighbor accept min(room, remaining), add it to
//     the neighbor's bikes, price it and charge the payer.
//   - Stage 3: stop once nothing remains; whatever is left after the last
//     neighbor is reported as Remainder.
//
// A neighbor already outside [0, capacity], or a negative or non-finite
// price, aborts with ErrInvariantViolation before that neighbor is touched;
// allocations made before it stay applied and are returned in Result.
//
// Complexity: O(k) for k neighbors.
func (d *Distributor) Distribute(src, cur *core.Node, quantity int) (Result, error) {
	if src == nil || cur == nil {
		return Result{}, fmt.Errorf("overflow: nil node: %w", core.ErrInvalidIndex)
	}
	if quantity < 0 {
		return Result{}, fmt.Errorf("overflow: negative quantity %d: %w", quantity, core.ErrInvariantViolation)
	}
	res := Result{Remainder: quantity}
	if quantity == 0 {
		return res, nil
	}

	// 1) Ranked neighbors.
	edges, err := d.neighbors.Of(cur.Index)
	if err != nil {
		return res, fmt.Errorf("overflow: node %d: %w", cur.Index, err)
	}

	// 2) Greedy placement.
	var (
		nb    *core.Node
		payer *core.Node
		room  int
		take  int
		price float64
	)
	for rank, e := range edges {
		if res.Remainder == 0 {
			break
		}
		if e.Neighbor < 0 || e.Neighbor == cur.Index {
			continue
		}
		if nb, err = d.net.Node(e.Neighbor); err != nil {
			return res, fmt.Errorf("overflow: neighbor of %d: %w", cur.Index, err)
		}
		if room, err = nb.Room(); err != nil {
			return res, fmt.Errorf("overflow: %w", err)
		}
		take = min(room, res.Remainder)
		price = d.cost(take, e.Distance, rank)
		if price < 0 || math.IsNaN(price) || math.IsInf(price, 0) {
			return res, fmt.Errorf("overflow: cost %v for neighbor %d: %w", price, e.Neighbor, core.ErrInvariantViolation)
		}
		if payer, err = d.payer(src, cur, nb); err != nil {
			return res, err
		}
		if err = nb.Receive(take); err != nil {
			return res, fmt.Errorf("overflow: %w", err)
		}
		if err = payer.ChargeExtraCost(price); err != nil {
			return res, fmt.Errorf("overflow: %w", err)
		}

		res.Allocations = append(res.Allocations, Allocation{
			Neighbor: e.Neighbor,
			Rank:     rank,
			Distance: e.Distance,
			Accepted: take,
			Cost:     price,
		})
		res.Placed += take
		res.Remainder -= take
	}

	// 3) Leftover stays in Remainder.
	return res, nil
}

// payer selects the node charged for a move to nb.
func (d *Distributor) payer(src, cur, nb *core.Node) (*core.Node, error) {
	switch d.mode {
	case core.CostSource:
		return src, nil
	case core.CostTarget:
		return cur, nil
	case core.CostNeighbor:
		return nb, nil
	default:
		return nil, fmt.Errorf("overflow: cost mode %s: %w", d.mode, core.ErrConfiguration)
	}
}
