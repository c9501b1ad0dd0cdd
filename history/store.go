package history

import (
	"errors"
	"fmt"
	"sort"
)

// FeatureTripRequirement is the per-node demand metric summed by the
// trip-window filter.
const FeatureTripRequirement = "trip_requirement"

// Sentinel errors for history stores.
var (
	// ErrUnknownFrame indicates a frame index that was never recorded.
	ErrUnknownFrame = errors.New("history: unknown frame")

	// ErrUnknownFeature indicates a feature name absent from a recorded frame.
	ErrUnknownFeature = errors.New("history: unknown feature")

	// ErrFrameOrder indicates a write into a frame older than the latest one.
	ErrFrameOrder = errors.New("history: frame is older than the latest frame")
)

// Store is the historical-state accessor.
type Store interface {
	// Frames returns recorded frame indices in ascending order.
	Frames() []int

	// Feature returns the per-node values of name at frame.
	Feature(frame int, name string) ([]float64, error)
}

// Memory is an in-memory Store. The zero value is not usable; call NewMemory.
type Memory struct {
	frames []int
	data   map[int]map[string][]float64
}

// NewMemory returns an empty store.
func NewMemory() *Memory {
	return &Memory{data: make(map[int]map[string][]float64)}
}

// Record stores values for feature at frame.
// A frame greater than the latest one is appended; the latest frame may be
// overwritten; older frames are immutable (ErrFrameOrder).
// values is copied.
func (m *Memory) Record(frame int, feature string, values []float64) error {
	if n := len(m.frames); n > 0 {
		last := m.frames[n-1]
		if frame < last {
			return fmt.Errorf("history: record frame %d after %d: %w", frame, last, ErrFrameOrder)
		}
	}
	features, ok := m.data[frame]
	if !ok {
		features = make(map[string][]float64)
		m.data[frame] = features
		m.frames = append(m.frames, frame)
	}
	features[feature] = append([]float64(nil), values...)

	return nil
}

// Frames returns a copy of the recorded frame indices, ascending.
func (m *Memory) Frames() []int {
	out := append([]int(nil), m.frames...)
	sort.Ints(out)

	return out
}

// Feature returns a copy of the values of name at frame.
func (m *Memory) Feature(frame int, name string) ([]float64, error) {
	features, ok := m.data[frame]
	if !ok {
		return nil, fmt.Errorf("history: frame %d: %w", frame, ErrUnknownFrame)
	}
	values, ok := features[name]
	if !ok {
		return nil, fmt.Errorf("history: frame %d feature %q: %w", frame, name, ErrUnknownFeature)
	}

	return append([]float64(nil), values...), nil
}

var _ Store = (*Memory)(nil)
