// SPDX-License-Identifier: MIT
//
// File: network.go
// Role: index-addressed view over the simulation's nodes.

package core

import "fmt"

// Network is an index-addressed view over borrowed nodes.
// nodes[i].Index == i holds for every i; the slice itself is never
// reallocated after construction, but the nodes it points to are mutated
// in place by the simulation and by overflow distribution.
type Network struct {
	nodes []*Node
}

// NewNetwork wraps nodes in a Network.
//
// Implementation:
//   - Stage 1: reject nil entries and entries whose Index differs from the
//     slice position (ErrInvalidIndex).
//   - Stage 2: validate every node's occupancy invariant (ErrInvariantViolation).
//
// The slice is copied; the nodes are not.
// Complexity: O(N).
func NewNetwork(nodes []*Node) (*Network, error) {
	out := make([]*Node, len(nodes))
	for i, n := range nodes {
		if n == nil {
			return nil, fmt.Errorf("core: node at position %d is nil: %w", i, ErrInvalidIndex)
		}
		if n.Index != i {
			return nil, fmt.Errorf("core: node at position %d has index %d: %w", i, n.Index, ErrInvalidIndex)
		}
		if err := n.Validate(); err != nil {
			return nil, fmt.Errorf("core: %w", err)
		}
		out[i] = n
	}

	return &Network{nodes: out}, nil
}

// Len returns the number of nodes.
func (nw *Network) Len() int { return len(nw.nodes) }

// Contains reports whether index addresses a node of nw.
func (nw *Network) Contains(index int) bool {
	return index >= 0 && index < len(nw.nodes)
}

// Node returns the node at index or ErrInvalidIndex.
// Complexity: O(1).
func (nw *Network) Node(index int) (*Node, error) {
	if !nw.Contains(index) {
		return nil, fmt.Errorf("core: node %d not in [0,%d): %w", index, len(nw.nodes), ErrInvalidIndex)
	}

	return nw.nodes[index], nil
}

// Nodes returns the nodes in ascending index order.
// The returned slice is a copy; the pointers are shared.
func (nw *Network) Nodes() []*Node {
	out := make([]*Node, len(nw.nodes))
	copy(out, nw.nodes)

	return out
}
