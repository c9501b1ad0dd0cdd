package trigger

import (
	"fmt"
	"math"

	"github.com/katalvlaran/rebalance/core"
)

// Decision is one flagged node and the direction it needs.
type Decision struct {
	Node     int
	Polarity core.Polarity
}

// Marks are the occupancy water marks, both in [0,1].
type Marks struct {
	Supply float64
	Demand float64
}

// Validate checks that both marks lie in [0,1].
func (m Marks) Validate() error {
	if math.IsNaN(m.Supply) || m.Supply < 0 || m.Supply > 1 {
		return fmt.Errorf("trigger: supply mark %v outside [0,1]: %w", m.Supply, core.ErrConfiguration)
	}
	if math.IsNaN(m.Demand) || m.Demand < 0 || m.Demand > 1 {
		return fmt.Errorf("trigger: demand mark %v outside [0,1]: %w", m.Demand, core.ErrConfiguration)
	}

	return nil
}

// Trigger evaluates water marks over a network every resolution ticks.
type Trigger struct {
	net        *core.Network
	resolution int
	marks      Marks
}

// New returns a Trigger. resolution must be positive.
func New(net *core.Network, resolution int, marks Marks) (*Trigger, error) {
	if net == nil {
		return nil, fmt.Errorf("trigger: nil network: %w", core.ErrConfiguration)
	}
	if resolution <= 0 {
		return nil, fmt.Errorf("trigger: resolution must be > 0, got %d: %w", resolution, core.ErrConfiguration)
	}
	if err := marks.Validate(); err != nil {
		return nil, err
	}

	return &Trigger{net: net, resolution: resolution, marks: marks}, nil
}

// Resolution returns the configured tick resolution.
func (t *Trigger) Resolution() int { return t.resolution }

// Marks returns the configured water marks.
func (t *Trigger) Marks() Marks { return t.marks }

// IsDecisionTick reports whether tick is a decision tick.
// Complexity: O(1).
func (t *Trigger) IsDecisionTick(tick int) bool {
	return (tick+1)%t.resolution == 0
}

// NodesNeedingDecision returns the flagged nodes at tick in ascending index
// order, or nil when tick is not a decision tick.
//
// Complexity: O(N).
func (t *Trigger) NodesNeedingDecision(tick int) []Decision {
	if (tick+1)%t.resolution != 0 {
		return nil
	}

	var (
		out   []Decision
		ratio float64
	)
	for _, n := range t.net.Nodes() {
		ratio = n.OccupancyRatio()
		switch {
		case ratio >= t.marks.Supply:
			out = append(out, Decision{Node: n.Index, Polarity: core.Supply})
		case ratio <= t.marks.Demand:
			out = append(out, Decision{Node: n.Index, Polarity: core.Demand})
		}
	}

	return out
}
