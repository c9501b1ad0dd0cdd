package filter

import (
	"fmt"

	"github.com/katalvlaran/rebalance/core"
)

// Distance keeps the nearest candidates. Candidate values are carried
// through untouched and play no part in the ranking.
type Distance struct {
	num       int
	neighbors NeighborSource
}

// NewDistance returns a distance filter keeping num candidates.
func NewDistance(num int, neighbors NeighborSource) (*Distance, error) {
	if num <= 0 {
		return nil, fmt.Errorf("filter distance: num must be > 0, got %d: %w", num, core.ErrConfiguration)
	}
	if neighbors == nil {
		return nil, fmt.Errorf("filter distance: no neighbor source: %w", core.ErrConfiguration)
	}

	return &Distance{num: num, neighbors: neighbors}, nil
}

// Kind implements Filter.
func (f *Distance) Kind() Kind { return KindDistance }

// Apply walks the neighbors of index nearest-first and keeps the first
// min(num, len(in)) that are present in in.
// Complexity: O(k) over the k neighbors of index.
func (f *Distance) Apply(index int, _ core.Polarity, in Candidates) (Candidates, error) {
	want := outputCount(f.num, in)
	out := make(Candidates, want)
	if want == 0 {
		return out, nil
	}

	edges, err := f.neighbors.Of(index)
	if err != nil {
		return nil, fmt.Errorf("filter distance: %w", err)
	}
	for _, e := range edges {
		v, ok := in[e.Neighbor]
		if !ok {
			continue
		}
		out[e.Neighbor] = v
		if len(out) == want {
			break
		}
	}

	return out, nil
}

// Reset implements Filter; the distance filter holds no state.
func (f *Distance) Reset() {}
