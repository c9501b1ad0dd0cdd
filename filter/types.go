// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Kind enumeration, Spec/Deps construction inputs, the Filter contract
// and the Candidates map shared by every stage.

package filter

import (
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/rebalance/core"
	"github.com/katalvlaran/rebalance/history"
)

// Kind identifies a filter variant.
type Kind int

const (
	// KindDistance ranks candidates by ascending distance from the node.
	KindDistance Kind = iota

	// KindRequirements ranks candidates by descending bound.
	KindRequirements

	// KindTripsWindow ranks candidates by aggregated historical trip demand.
	KindTripsWindow
)

// String returns the configuration spelling of k.
func (k Kind) String() string {
	switch k {
	case KindDistance:
		return "distance"
	case KindRequirements:
		return "requirements"
	case KindTripsWindow:
		return "trip_window"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindDistance, KindRequirements, KindTripsWindow:
		return true
	default:
		return false
	}
}

// ParseKind maps a configuration string onto a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "distance":
		return KindDistance, nil
	case "requirements":
		return KindRequirements, nil
	case "trip_window":
		return KindTripsWindow, nil
	default:
		return 0, fmt.Errorf("%w: unknown filter type %q", core.ErrConfiguration, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	switch k {
	case KindDistance, KindRequirements, KindTripsWindow:
		return []byte(k.String()), nil
	default:
		return nil, fmt.Errorf("%w: unknown filter type %d", core.ErrConfiguration, int(k))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	v, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = v

	return nil
}

// Candidates maps a neighbor index to the quantity it may absorb or release.
type Candidates map[int]int

// Keys returns the candidate indices in ascending order.
func (c Candidates) Keys() []int {
	keys := make([]int, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	return keys
}

// Clone returns a shallow copy of c.
func (c Candidates) Clone() Candidates {
	out := make(Candidates, len(c))
	for k, v := range c {
		out[k] = v
	}

	return out
}

// Filter is one stage of the pipeline.
type Filter interface {
	// Kind reports the variant.
	Kind() Kind

	// Apply narrows in to at most the configured number of entries.
	Apply(index int, p core.Polarity, in Candidates) (Candidates, error)

	// Reset clears internal caches.
	Reset()
}

// NeighborSource yields a node's neighbors in ascending distance order.
// *neighbors.Resolver satisfies it.
type NeighborSource interface {
	Of(index int) ([]core.DistanceEdge, error)
}

// Spec describes one configured stage.
//
//   - Kind    : variant to build.
//   - Num     : output count, must be > 0.
//   - Windows : number of trailing history frames, KindTripsWindow only, > 0.
type Spec struct {
	Kind    Kind
	Num     int
	Windows int
}

// Deps carries the collaborators filters may need.
// Neighbors is required by KindDistance, History by KindTripsWindow.
type Deps struct {
	Neighbors NeighborSource
	History   history.Store
}

// New builds the filter described by spec.
// Every Kind is matched explicitly; anything else is core.ErrConfiguration.
func New(spec Spec, deps Deps) (Filter, error) {
	if spec.Num <= 0 {
		return nil, fmt.Errorf("filter %s: num must be > 0, got %d: %w", spec.Kind, spec.Num, core.ErrConfiguration)
	}

	switch spec.Kind {
	case KindDistance:
		return NewDistance(spec.Num, deps.Neighbors)
	case KindRequirements:
		return NewRequirements(spec.Num)
	case KindTripsWindow:
		return NewTripsWindow(spec.Num, spec.Windows, deps.History)
	default:
		return nil, fmt.Errorf("%w: unknown filter type %d", core.ErrConfiguration, int(spec.Kind))
	}
}

// outputCount is min(num, len(in)), the size every stage must return.
func outputCount(num int, in Candidates) int {
	return min(num, len(in))
}
