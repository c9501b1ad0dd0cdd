package core

import (
	"fmt"
	"math"
)

// Node is a capacity-bounded participant of the rebalancing network.
//
// Index is the stable identity used by distance rows and history frames.
// Capacity is fixed and positive. Bikes is the current occupancy and must
// stay within [0, Capacity]. ExtraCost only grows within a run.
type Node struct {
	Index     int
	Capacity  int
	Bikes     int
	ExtraCost float64
}

// Validate checks the occupancy invariant of n.
// Complexity: O(1).
func (n *Node) Validate() error {
	if n.Capacity <= 0 {
		return fmt.Errorf("node %d: capacity %d must be positive: %w", n.Index, n.Capacity, ErrInvariantViolation)
	}
	if n.Bikes < 0 || n.Bikes > n.Capacity {
		return fmt.Errorf("node %d: bikes %d outside [0,%d]: %w", n.Index, n.Bikes, n.Capacity, ErrInvariantViolation)
	}

	return nil
}

// OccupancyRatio returns Bikes / Capacity.
func (n *Node) OccupancyRatio() float64 {
	return float64(n.Bikes) / float64(n.Capacity)
}

// Room returns how many units n can still accept (Capacity - Bikes).
// It fails with ErrInvariantViolation if n is already outside its bounds,
// so a negative room is never handed to a caller.
func (n *Node) Room() (int, error) {
	if err := n.Validate(); err != nil {
		return 0, err
	}

	return n.Capacity - n.Bikes, nil
}

// Receive adds delta units to n (delta may be negative to release units).
// The result must stay within [0, Capacity]; otherwise n is left untouched
// and ErrInvariantViolation is returned.
// Complexity: O(1).
func (n *Node) Receive(delta int) error {
	next := n.Bikes + delta
	if next < 0 || next > n.Capacity {
		return fmt.Errorf("node %d: bikes %d%+d outside [0,%d]: %w",
			n.Index, n.Bikes, delta, n.Capacity, ErrInvariantViolation)
	}
	n.Bikes = next

	return nil
}

// ChargeExtraCost appends cost to n.ExtraCost.
// Negative, NaN and infinite costs are rejected with ErrInvariantViolation.
func (n *Node) ChargeExtraCost(cost float64) error {
	if cost < 0 || math.IsNaN(cost) || math.IsInf(cost, 0) {
		return fmt.Errorf("node %d: extra cost %v: %w", n.Index, cost, ErrInvariantViolation)
	}
	n.ExtraCost += cost

	return nil
}
