package filter

import (
	"fmt"

	"github.com/katalvlaran/rebalance/core"
)

// Pipeline runs filters strictly in configured order.
type Pipeline struct {
	stages []Filter
}

// NewPipeline builds one stage per spec, in order.
// The first invalid spec aborts construction with core.ErrConfiguration.
func NewPipeline(specs []Spec, deps Deps) (*Pipeline, error) {
	stages := make([]Filter, 0, len(specs))
	for i, spec := range specs {
		f, err := New(spec, deps)
		if err != nil {
			return nil, fmt.Errorf("pipeline stage %d: %w", i, err)
		}
		stages = append(stages, f)
	}

	return &Pipeline{stages: stages}, nil
}

// Len returns the number of stages.
func (p *Pipeline) Len() int { return len(p.stages) }

// Kinds returns the stage kinds in execution order.
func (p *Pipeline) Kinds() []Kind {
	out := make([]Kind, len(p.stages))
	for i, f := range p.stages {
		out[i] = f.Kind()
	}

	return out
}

// Stage returns the filter at position i, or nil when i is out of range.
func (p *Pipeline) Stage(i int) Filter {
	if i < 0 || i >= len(p.stages) {
		return nil
	}

	return p.stages[i]
}

// Apply feeds in through every stage; each stage sees only the previous
// stage's output. An empty pipeline returns a copy of in.
func (p *Pipeline) Apply(index int, pol core.Polarity, in Candidates) (Candidates, error) {
	out := in.Clone()
	var err error
	for i, f := range p.stages {
		out, err = f.Apply(index, pol, out)
		if err != nil {
			return nil, fmt.Errorf("pipeline stage %d (%s): %w", i, f.Kind(), err)
		}
	}

	return out, nil
}

// Reset resets every stage.
func (p *Pipeline) Reset() {
	for _, f := range p.stages {
		f.Reset()
	}
}
