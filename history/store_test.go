package history_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rebalance/history"
)

func TestMemory_RecordAndRead(t *testing.T) {
	m := history.NewMemory()
	assert.Empty(t, m.Frames())

	require.NoError(t, m.Record(0, history.FeatureTripRequirement, []float64{1, 2}))
	require.NoError(t, m.Record(5, history.FeatureTripRequirement, []float64{3, 4}))
	assert.Equal(t, []int{0, 5}, m.Frames())

	v, err := m.Feature(5, history.FeatureTripRequirement)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 4}, v)

	v[0] = 100
	again, _ := m.Feature(5, history.FeatureTripRequirement)
	assert.Equal(t, 3.0, again[0], "Feature must return a copy")
}

// TestMemory_LatestFrameMutable overwrites the latest frame and refuses
// writes into older ones.
func TestMemory_LatestFrameMutable(t *testing.T) {
	m := history.NewMemory()
	require.NoError(t, m.Record(1, history.FeatureTripRequirement, []float64{1}))
	require.NoError(t, m.Record(2, history.FeatureTripRequirement, []float64{2}))
	require.NoError(t, m.Record(2, history.FeatureTripRequirement, []float64{7}))
	assert.Equal(t, []int{1, 2}, m.Frames())

	v, err := m.Feature(2, history.FeatureTripRequirement)
	require.NoError(t, err)
	assert.Equal(t, []float64{7}, v)

	assert.ErrorIs(t, m.Record(1, history.FeatureTripRequirement, []float64{0}), history.ErrFrameOrder)
}

func TestMemory_Unknown(t *testing.T) {
	m := history.NewMemory()
	require.NoError(t, m.Record(0, "bikes", []float64{1}))

	_, err := m.Feature(1, "bikes")
	assert.ErrorIs(t, err, history.ErrUnknownFrame)

	_, err = m.Feature(0, history.FeatureTripRequirement)
	assert.ErrorIs(t, err, history.ErrUnknownFeature)
}
