// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: sentinel errors, enumerations and small value types shared by every
// package of the rebalancing engine.

package core

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the rebalancing engine.
var (
	// ErrConfiguration indicates an invalid or incomplete configuration:
	// unknown filter kind, missing required key, ratio outside [0,1].
	// Always raised at construction time.
	ErrConfiguration = errors.New("rebalance: invalid configuration")

	// ErrInvalidIndex indicates a node or neighbor index outside the known range.
	ErrInvalidIndex = errors.New("rebalance: invalid index")

	// ErrInvariantViolation indicates that a value or a mutation would break
	// 0 ≤ bikes ≤ capacity (or the append-only extra-cost rule).
	ErrInvariantViolation = errors.New("rebalance: invariant violation")
)

// Polarity is the direction of a rebalancing decision.
//
//   - Supply : the node has an excess and should offload units.
//   - Demand : the node has a deficit and should request units.
type Polarity int

const (
	// Supply marks a node that is too full.
	Supply Polarity = iota

	// Demand marks a node that is too empty.
	Demand
)

// String returns the configuration spelling of p.
func (p Polarity) String() string {
	switch p {
	case Supply:
		return "supply"
	case Demand:
		return "demand"
	default:
		return fmt.Sprintf("Polarity(%d)", int(p))
	}
}

// Valid reports whether p is one of the declared polarities.
func (p Polarity) Valid() bool {
	switch p {
	case Supply, Demand:
		return true
	default:
		return false
	}
}

// CostMode selects which node absorbs the extra cost of an overflow move.
type CostMode int

const (
	// CostSource charges the node that originally issued the transfer.
	CostSource CostMode = iota

	// CostTarget charges the node that could not accept the full transfer.
	CostTarget

	// CostNeighbor charges the neighbor that received the overflow units.
	CostNeighbor
)

// String returns the configuration spelling of m.
func (m CostMode) String() string {
	switch m {
	case CostSource:
		return "source"
	case CostTarget:
		return "target"
	case CostNeighbor:
		return "target_neighbors"
	default:
		return fmt.Sprintf("CostMode(%d)", int(m))
	}
}

// Valid reports whether m is one of the declared cost modes.
func (m CostMode) Valid() bool {
	switch m {
	case CostSource, CostTarget, CostNeighbor:
		return true
	default:
		return false
	}
}

// ParseCostMode maps a configuration string onto a CostMode.
// "neighbor" is accepted as an alias of "target_neighbors".
func ParseCostMode(s string) (CostMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "source":
		return CostSource, nil
	case "target":
		return CostTarget, nil
	case "target_neighbors", "neighbor":
		return CostNeighbor, nil
	default:
		return 0, fmt.Errorf("%w: unknown extra cost mode %q", ErrConfiguration, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m CostMode) MarshalText() ([]byte, error) {
	switch m {
	case CostSource, CostTarget, CostNeighbor:
		return []byte(m.String()), nil
	default:
		return nil, fmt.Errorf("%w: unknown extra cost mode %d", ErrConfiguration, int(m))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *CostMode) UnmarshalText(text []byte) error {
	v, err := ParseCostMode(string(text))
	if err != nil {
		return err
	}
	*m = v

	return nil
}

// DistanceEdge is one entry of a node's neighbor list.
// Distance 0 means "no edge / self" and never appears in resolved lists.
type DistanceEdge struct {
	Neighbor int     // index of the neighboring node
	Distance float64 // distance from the owning node, > 0
}
