package filter

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/katalvlaran/rebalance/core"
)

// Requirements keeps the candidates with the largest bounds.
type Requirements struct {
	num int
}

// NewRequirements returns a requirements filter keeping num candidates.
func NewRequirements(num int) (*Requirements, error) {
	if num <= 0 {
		return nil, fmt.Errorf("filter requirements: num must be > 0, got %d: %w", num, core.ErrConfiguration)
	}

	return &Requirements{num: num}, nil
}

// Kind implements Filter.
func (f *Requirements) Kind() Kind { return KindRequirements }

// Apply ranks in by (value, index) descending and keeps the top entries:
// a higher value wins, and among equal values the higher index wins.
// Complexity: O(n log n).
func (f *Requirements) Apply(_ int, _ core.Polarity, in Candidates) (Candidates, error) {
	items := make([]rankedItem, 0, len(in))
	for k, v := range in {
		items = append(items, rankedItem{index: k, score: float64(v)})
	}
	slices.SortFunc(items, func(a, b rankedItem) int {
		if c := cmp.Compare(b.score, a.score); c != 0 {
			return c
		}
		return cmp.Compare(b.index, a.index)
	})

	return take(items, outputCount(f.num, in), in), nil
}

// Reset implements Filter; the requirements filter holds no state.
func (f *Requirements) Reset() {}
