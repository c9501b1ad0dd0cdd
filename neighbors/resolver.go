package neighbors

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/rebalance/core"
	"github.com/katalvlaran/rebalance/matrix"
)

// Resolver memoizes ascending-distance neighbor lists per node.
type Resolver struct {
	dist  matrix.Distances
	size  int
	cache map[int][]core.DistanceEdge
}

// NewResolver returns a Resolver reading rows from dist.
// A nil accessor is a configuration error.
func NewResolver(dist matrix.Distances) (*Resolver, error) {
	if dist == nil {
		return nil, fmt.Errorf("neighbors: nil distance matrix: %w", core.ErrConfiguration)
	}

	return &Resolver{
		dist:  dist,
		size:  dist.Size(),
		cache: make(map[int][]core.DistanceEdge),
	}, nil
}

// Size returns the number of nodes known to the resolver.
func (r *Resolver) Size() int { return r.size }

// Of returns the neighbors of index ordered by ascending distance
// (ties by ascending neighbor index). The first call per index builds and
// caches the list; subsequent calls are served from the cache.
func (r *Resolver) Of(index int) ([]core.DistanceEdge, error) {
	edges, err := r.lookup(index)
	if err != nil {
		return nil, err
	}

	return slices.Clone(edges), nil
}

// Cached reports whether the list for index has already been built.
func (r *Resolver) Cached(index int) bool {
	_, ok := r.cache[index]

	return ok
}

// Len returns the number of cached neighbor lists.
func (r *Resolver) Len() int { return len(r.cache) }

// lookup serves index from the cache, building the entry on a miss.
func (r *Resolver) lookup(index int) ([]core.DistanceEdge, error) {
	if index < 0 || index >= r.size {
		return nil, fmt.Errorf("neighbors: node %d not in [0,%d): %w", index, r.size, core.ErrInvalidIndex)
	}
	if edges, ok := r.cache[index]; ok {
		return edges, nil
	}

	row, err := r.dist.Row(index)
	if err != nil {
		return nil, fmt.Errorf("neighbors: row %d: %w", index, err)
	}
	if len(row) != r.size {
		return nil, fmt.Errorf("neighbors: row %d has %d entries, want %d: %w",
			index, len(row), r.size, matrix.ErrDimensionMismatch)
	}

	edges := make([]core.DistanceEdge, 0, len(row))
	for j, d := range row {
		if math.IsNaN(d) || d < 0 {
			return nil, fmt.Errorf("neighbors: distance %d→%d = %v: %w", index, j, d, matrix.ErrBadDistance)
		}
		if d == 0 || math.IsInf(d, 1) {
			continue
		}
		edges = append(edges, core.DistanceEdge{Neighbor: j, Distance: d})
	}
	// row is enumerated by index, so a stable sort keeps index order on ties.
	slices.SortStableFunc(edges, func(a, b core.DistanceEdge) int {
		return cmp.Compare(a.Distance, b.Distance)
	})
	r.cache[index] = edges

	return edges, nil
}
