package filter

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/katalvlaran/rebalance/core"
	"github.com/katalvlaran/rebalance/history"
)

// TripsWindow ranks candidates by their trip requirement summed over the
// most recent history frames.
//
// Supply decisions keep the lowest sums (neighbors with little demand make
// good offload targets); Demand decisions keep the highest (busy neighbors
// are good sources). Ties follow the sort key (sum, index): ascending for
// Supply, descending for Demand.
type TripsWindow struct {
	num     int
	windows int
	store   history.Store

	// cache holds frame → per-node trip requirement. Entries for all but the
	// latest frame are permanent until Reset; the latest is overwritten on
	// every Apply.
	cache map[int][]float64
}

// NewTripsWindow returns a trip-window filter keeping num candidates and
// looking at the last windows frames of store.
func NewTripsWindow(num, windows int, store history.Store) (*TripsWindow, error) {
	if num <= 0 {
		return nil, fmt.Errorf("filter trip_window: num must be > 0, got %d: %w", num, core.ErrConfiguration)
	}
	if windows <= 0 {
		return nil, fmt.Errorf("filter trip_window: windows must be > 0, got %d: %w", windows, core.ErrConfiguration)
	}
	if store == nil {
		return nil, fmt.Errorf("filter trip_window: no history store: %w", core.ErrConfiguration)
	}

	return &TripsWindow{
		num:     num,
		windows: windows,
		store:   store,
		cache:   make(map[int][]float64),
	}, nil
}

// Kind implements Filter.
func (f *TripsWindow) Kind() Kind { return KindTripsWindow }

// Apply sums the trip requirement of every candidate over the last
// min(windows, len(frames)) frames and keeps the best min(num, len(in)).
//
// Implementation:
//   - Stage 1: select the trailing window of recorded frames.
//   - Stage 2: read each frame from the cache, or from the store on a miss;
//     the latest frame is always read from the store.
//   - Stage 3: accumulate per-candidate sums (zero with no history).
//   - Stage 4: sort by (sum, index), ascending for Supply, descending for Demand.
//
// Complexity: O(W·n + n log n) for W frames and n candidates.
func (f *TripsWindow) Apply(_ int, p core.Polarity, in Candidates) (Candidates, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("filter trip_window: polarity %s: %w", p, core.ErrConfiguration)
	}

	// 1) Trailing window.
	frames := f.store.Frames()
	w := min(f.windows, len(frames))
	frames = frames[len(frames)-w:]

	keys := in.Keys()
	sums := make(map[int]float64, len(keys))
	for _, k := range keys {
		sums[k] = 0
	}

	// 2) + 3) Read frames and accumulate.
	var (
		i     int
		frame int
		state []float64
		ok    bool
		err   error
	)
	for i, frame = range frames {
		state, ok = f.cache[frame]
		if i == w-1 || !ok {
			state, err = f.store.Feature(frame, history.FeatureTripRequirement)
			if err != nil {
				return nil, fmt.Errorf("filter trip_window: frame %d: %w", frame, err)
			}
			f.cache[frame] = state
		}
		for _, k := range keys {
			if k < 0 || k >= len(state) {
				return nil, fmt.Errorf("filter trip_window: neighbor %d not in frame %d of %d nodes: %w",
					k, frame, len(state), core.ErrInvalidIndex)
			}
			sums[k] += state[k]
		}
	}

	// 4) Rank.
	items := make([]rankedItem, 0, len(keys))
	for _, k := range keys {
		items = append(items, rankedItem{index: k, score: sums[k]})
	}
	slices.SortFunc(items, func(a, b rankedItem) int {
		c := cmp.Compare(a.score, b.score)
		if c == 0 {
			c = cmp.Compare(a.index, b.index)
		}
		if p == core.Demand {
			return -c
		}
		return c
	})

	return take(items, outputCount(f.num, in), in), nil
}

// Reset drops every cached frame.
func (f *TripsWindow) Reset() {
	clear(f.cache)
}

// CachedFrames returns the number of frames currently held in the cache.
func (f *TripsWindow) CachedFrames() int { return len(f.cache) }
