package filter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rebalance/core"
	"github.com/katalvlaran/rebalance/filter"
	"github.com/katalvlaran/rebalance/history"
	"github.com/katalvlaran/rebalance/matrix"
	"github.com/katalvlaran/rebalance/neighbors"
)

// countingStore records how often each frame is read.
type countingStore struct {
	*history.Memory
	fetches map[int]int
}

func (c *countingStore) Feature(frame int, name string) ([]float64, error) {
	c.fetches[frame]++

	return c.Memory.Feature(frame, name)
}

func newCountingStore(t *testing.T, frames ...[]float64) *countingStore {
	t.Helper()
	m := history.NewMemory()
	for i, f := range frames {
		require.NoError(t, m.Record(i, history.FeatureTripRequirement, f))
	}

	return &countingStore{Memory: m, fetches: make(map[int]int)}
}

func newResolver(t *testing.T, rows [][]float64) *neighbors.Resolver {
	t.Helper()
	d, err := matrix.FromRows(rows)
	require.NoError(t, err)
	r, err := neighbors.NewResolver(d)
	require.NoError(t, err)

	return r
}

// ------------------------------------------------------------------------
// 1. Construction
// ------------------------------------------------------------------------

func TestNew_Validation(t *testing.T) {
	r := newResolver(t, [][]float64{{0, 1}, {1, 0}})
	store := history.NewMemory()

	_, err := filter.New(filter.Spec{Kind: filter.Kind(9), Num: 1}, filter.Deps{})
	assert.ErrorIs(t, err, core.ErrConfiguration, "unknown kind")

	_, err = filter.New(filter.Spec{Kind: filter.KindRequirements, Num: 0}, filter.Deps{})
	assert.ErrorIs(t, err, core.ErrConfiguration, "num must be positive")

	_, err = filter.New(filter.Spec{Kind: filter.KindDistance, Num: 1}, filter.Deps{})
	assert.ErrorIs(t, err, core.ErrConfiguration, "distance needs neighbors")

	_, err = filter.New(filter.Spec{Kind: filter.KindTripsWindow, Num: 1}, filter.Deps{History: store})
	assert.ErrorIs(t, err, core.ErrConfiguration, "trip_window needs windows")

	_, err = filter.New(filter.Spec{Kind: filter.KindTripsWindow, Num: 1, Windows: 2}, filter.Deps{})
	assert.ErrorIs(t, err, core.ErrConfiguration, "trip_window needs history")

	for _, spec := range []filter.Spec{
		{Kind: filter.KindDistance, Num: 1},
		{Kind: filter.KindRequirements, Num: 1},
		{Kind: filter.KindTripsWindow, Num: 1, Windows: 1},
	} {
		f, err := filter.New(spec, filter.Deps{Neighbors: r, History: store})
		require.NoError(t, err, spec.Kind.String())
		assert.Equal(t, spec.Kind, f.Kind())
	}
}

func TestKind_Text(t *testing.T) {
	for _, k := range []filter.Kind{filter.KindDistance, filter.KindRequirements, filter.KindTripsWindow} {
		text, err := k.MarshalText()
		require.NoError(t, err)

		var back filter.Kind
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, k, back)
	}

	_, err := filter.ParseKind("nearest")
	assert.ErrorIs(t, err, core.ErrConfiguration)
	_, err = filter.Kind(-1).MarshalText()
	assert.ErrorIs(t, err, core.ErrConfiguration)
}

// ------------------------------------------------------------------------
// 2. Requirements
// ------------------------------------------------------------------------

// TestRequirements_TieBreak keeps the two largest values; equal values
// prefer the higher index.
func TestRequirements_TieBreak(t *testing.T) {
	f, err := filter.NewRequirements(2)
	require.NoError(t, err)
	in := filter.Candidates{1: 10, 2: 10, 5: 4}

	out, err := f.Apply(0, core.Supply, in)
	require.NoError(t, err)
	assert.Equal(t, filter.Candidates{2: 10, 1: 10}, out)
	assert.Equal(t, filter.Candidates{1: 10, 2: 10, 5: 4}, in, "input must not be mutated")

	f, err = filter.NewRequirements(1)
	require.NoError(t, err)
	out, err = f.Apply(0, core.Demand, filter.Candidates{1: 10, 2: 10, 5: 4})
	require.NoError(t, err)
	assert.Equal(t, filter.Candidates{2: 10}, out)
}

// TestNewRequirements_Num rejects a non-positive output count up front.
func TestNewRequirements_Num(t *testing.T) {
	for _, num := range []int{0, -3} {
		f, err := filter.NewRequirements(num)
		assert.ErrorIs(t, err, core.ErrConfiguration)
		assert.Nil(t, f)
	}
}

func TestRequirements_FewerCandidatesThanNum(t *testing.T) {
	f, err := filter.NewRequirements(5)
	require.NoError(t, err)
	out, err := f.Apply(0, core.Supply, filter.Candidates{3: 1, 4: 2})
	require.NoError(t, err)
	assert.Equal(t, filter.Candidates{3: 1, 4: 2}, out)

	out, err = f.Apply(0, core.Supply, filter.Candidates{})
	require.NoError(t, err)
	assert.Empty(t, out)
}

// ------------------------------------------------------------------------
// 3. Distance
// ------------------------------------------------------------------------

// TestDistance_KeepsNearest uses row [0, 5, 3] for node 0: neighbor 2 is nearest.
func TestDistance_KeepsNearest(t *testing.T) {
	r := newResolver(t, [][]float64{
		{0, 5, 3},
		{5, 0, 1},
		{3, 1, 0},
	})
	f, err := filter.NewDistance(1, r)
	require.NoError(t, err)

	out, err := f.Apply(0, core.Supply, filter.Candidates{1: 100, 2: 1})
	require.NoError(t, err)
	assert.Equal(t, filter.Candidates{2: 1}, out)
}

// TestDistance_SkipsMissingCandidates only emits keys that exist in the input.
func TestDistance_SkipsMissingCandidates(t *testing.T) {
	r := newResolver(t, [][]float64{
		{0, 1, 2, 3},
		{1, 0, 1, 1},
		{2, 1, 0, 1},
		{3, 1, 1, 0},
	})
	f, err := filter.NewDistance(2, r)
	require.NoError(t, err)

	out, err := f.Apply(0, core.Demand, filter.Candidates{2: 7, 3: 9})
	require.NoError(t, err)
	assert.Equal(t, filter.Candidates{2: 7, 3: 9}, out)

	out, err = f.Apply(0, core.Demand, filter.Candidates{3: 9})
	require.NoError(t, err)
	assert.Equal(t, filter.Candidates{3: 9}, out)

	_, err = f.Apply(8, core.Demand, filter.Candidates{3: 9})
	assert.ErrorIs(t, err, core.ErrInvalidIndex)
}

// ------------------------------------------------------------------------
// 4. Trips window
// ------------------------------------------------------------------------

func tripFrames() [][]float64 {
	return [][]float64{
		{0, 5, 1, 3},
		{0, 1, 1, 3},
		{0, 2, 0, 3},
	}
}

// TestTripsWindow_Polarity sums the last two frames: 1→3, 2→1, 3→6.
func TestTripsWindow_Polarity(t *testing.T) {
	store := newCountingStore(t, tripFrames()...)
	f, err := filter.NewTripsWindow(2, 2, store)
	require.NoError(t, err)
	in := filter.Candidates{1: 10, 2: 20, 3: 30}

	out, err := f.Apply(0, core.Supply, in)
	require.NoError(t, err)
	assert.Equal(t, filter.Candidates{2: 20, 1: 10}, out, "supply keeps the lowest demand")

	out, err = f.Apply(0, core.Demand, in)
	require.NoError(t, err)
	assert.Equal(t, filter.Candidates{3: 30, 1: 10}, out, "demand keeps the highest demand")
}

// TestTripsWindow_CachePolicy: older frames are read once, the latest frame
// on every call, and Reset forces a full refetch.
func TestTripsWindow_CachePolicy(t *testing.T) {
	store := newCountingStore(t, tripFrames()...)
	f, err := filter.NewTripsWindow(2, 2, store)
	require.NoError(t, err)
	in := filter.Candidates{1: 10, 2: 20, 3: 30}

	_, err = f.Apply(0, core.Supply, in)
	require.NoError(t, err)
	assert.Equal(t, map[int]int{1: 1, 2: 1}, store.fetches)
	assert.Equal(t, 2, f.CachedFrames())

	_, err = f.Apply(0, core.Supply, in)
	require.NoError(t, err)
	assert.Equal(t, map[int]int{1: 1, 2: 2}, store.fetches)

	// The simulation keeps writing into the latest frame.
	require.NoError(t, store.Record(2, history.FeatureTripRequirement, []float64{0, 9, 0, 3}))
	out, err := f.Apply(0, core.Supply, in)
	require.NoError(t, err)
	assert.Equal(t, filter.Candidates{2: 20, 3: 30}, out)

	f.Reset()
	assert.Equal(t, 0, f.CachedFrames())
	_, err = f.Apply(0, core.Supply, in)
	require.NoError(t, err)
	assert.Equal(t, map[int]int{1: 2, 2: 4}, store.fetches)
}

// TestTripsWindow_ShortHistory uses every frame when fewer than windows exist.
func TestTripsWindow_ShortHistory(t *testing.T) {
	store := newCountingStore(t, tripFrames()...)
	f, err := filter.NewTripsWindow(1, 10, store)
	require.NoError(t, err)

	// Sums over all three frames: 1→8, 2→2, 3→9.
	out, err := f.Apply(0, core.Demand, filter.Candidates{1: 1, 2: 2, 3: 3})
	require.NoError(t, err)
	assert.Equal(t, filter.Candidates{3: 3}, out)
	assert.Equal(t, map[int]int{0: 1, 1: 1, 2: 1}, store.fetches)
}

// TestTripsWindow_NoHistory falls back to index order and still honors
// the output size.
func TestTripsWindow_NoHistory(t *testing.T) {
	f, err := filter.NewTripsWindow(2, 3, history.NewMemory())
	require.NoError(t, err)
	in := filter.Candidates{4: 1, 7: 2, 9: 3}

	out, err := f.Apply(0, core.Supply, in)
	require.NoError(t, err)
	assert.Equal(t, filter.Candidates{4: 1, 7: 2}, out)

	out, err = f.Apply(0, core.Demand, in)
	require.NoError(t, err)
	assert.Equal(t, filter.Candidates{9: 3, 7: 2}, out)
}

func TestTripsWindow_Errors(t *testing.T) {
	store := newCountingStore(t, tripFrames()...)
	f, err := filter.NewTripsWindow(1, 1, store)
	require.NoError(t, err)

	_, err = f.Apply(0, core.Supply, filter.Candidates{4: 1})
	assert.ErrorIs(t, err, core.ErrInvalidIndex)

	_, err = f.Apply(0, core.Polarity(5), filter.Candidates{1: 1})
	assert.ErrorIs(t, err, core.ErrConfiguration)

	bare := history.NewMemory()
	require.NoError(t, bare.Record(0, "bikes", []float64{1, 2}))
	f, err = filter.NewTripsWindow(1, 1, bare)
	require.NoError(t, err)
	_, err = f.Apply(0, core.Supply, filter.Candidates{1: 1})
	assert.ErrorIs(t, err, history.ErrUnknownFeature)
}
