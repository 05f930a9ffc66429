// Package sweep drives repeated generate/synthesize cycles while
// steering the array phase, producing an ordered sequence of fields
// for animation.
package sweep

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	parray "github.com/gokuldas/simulation-phased-array"
	"github.com/gokuldas/simulation-phased-array/array"
	"github.com/gokuldas/simulation-phased-array/field"
)

// FrameFunc receives each frame in order, paired with the layout that
// produced it. Returning an error aborts the sweep; the error is
// passed through untouched.
type FrameFunc func(frame int, el array.Layout, f field.Field) error

// Sweep regenerates the element layout and resynthesizes the field
// FrameCount times. ElementPhaseStep advances by PhaseRange/FrameCount
// after each frame, so frame 0 uses Spec.ElementPhaseStep as
// configured and the increments sum to PhaseRange over the full sweep.
// The phase is never reduced modulo 2π.
type Sweep struct {
	Spec       parray.ArraySpec
	PhaseRange float64
	FrameCount int
	Gen        array.Generator // nil means array.UniformLinear
}

// Run executes the sweep, handing every (layout, field) pair to emit.
// FrameCount 0 is a no-op; a negative count is rejected. The context
// is checked between frames, so a sweep can be aborted cooperatively
// without tearing down a frame mid-computation.
func (s *Sweep) Run(ctx context.Context, emit FrameFunc) error {
	if s.FrameCount < 0 {
		return fmt.Errorf("%w: frame count %d, need >= 0", parray.ErrInvalidArgument, s.FrameCount)
	}
	if err := s.Spec.Validate(); err != nil {
		return err
	}
	gen := s.Gen
	if gen == nil {
		gen = array.UniformLinear{}
	}
	syn, err := field.NewSynthesizer(s.Spec.Resolution, s.Spec.Range)
	if err != nil {
		return err
	}

	spec := s.Spec // the running phase lives in a private copy
	delta := 0.0
	if s.FrameCount > 0 {
		delta = s.PhaseRange / float64(s.FrameCount)
	}
	for frame := 0; frame < s.FrameCount; frame++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		el := gen.Generate(spec)
		f := syn.Synthesize(el)
		log.Debugf("sweep: frame %d/%d, phase step %.4f", frame+1, s.FrameCount, spec.ElementPhaseStep)
		if emit != nil {
			if err := emit(frame, el, f); err != nil {
				return err
			}
		}
		spec.ElementPhaseStep += delta
	}
	return nil
}
