// Package array generates element layouts for linear phased arrays.
package array

import (
	"math"

	parray "github.com/gokuldas/simulation-phased-array"
	"github.com/wiless/vlib"
)

// Layout describes the physical elements of one frame. Positions,
// Amplitudes and Phases are co-indexed, one entry per element.
type Layout struct {
	Positions  []vlib.Location3D
	Amplitudes vlib.VectorF
	Phases     vlib.VectorF
}

// Size returns the number of elements in the layout.
func (l Layout) Size() int {
	return len(l.Positions)
}

// Generator produces the element layout for a spec. Implementations
// must be pure: the same spec always yields the same layout. Swapping
// the generator never affects the synthesizer or the sweep.
type Generator interface {
	Generate(spec parray.ArraySpec) Layout
}

// UniformLinear is the common generator: ElementCount elements on the
// x axis, centered about the origin and spaced 2π·ElementSeparation
// apart, with unit amplitude and a linear phase ramp of
// ElementPhaseStep per element. For even counts the centered index
// runs over half-integers, e.g. -4.5 .. 4.5 for ten elements.
type UniformLinear struct{}

func (UniformLinear) Generate(spec parray.ArraySpec) Layout {
	n := spec.ElementCount
	l := Layout{
		Positions:  make([]vlib.Location3D, n),
		Amplitudes: vlib.NewVectorF(n),
		Phases:     vlib.NewVectorF(n),
	}
	mid := float64(n-1) / 2.0
	for i := 0; i < n; i++ {
		ni := float64(i) - mid
		l.Positions[i].X = 2 * math.Pi * spec.ElementSeparation * ni
		l.Amplitudes[i] = 1.0
		l.Phases[i] = ni * spec.ElementPhaseStep
	}
	return l
}

// Tapered reuses the uniform linear geometry but draws per-element
// amplitudes from Window, for side-lobe suppression experiments.
type Tapered struct {
	// Window maps the centered element index (the same ni that drives
	// the phase ramp) and the element count to an amplitude. A nil
	// Window falls back to the uniform taper.
	Window func(ni float64, count int) float64
}

func (t Tapered) Generate(spec parray.ArraySpec) Layout {
	l := UniformLinear{}.Generate(spec)
	if t.Window == nil {
		return l
	}
	mid := float64(spec.ElementCount-1) / 2.0
	for i := range l.Amplitudes {
		l.Amplitudes[i] = t.Window(float64(i)-mid, spec.ElementCount)
	}
	return l
}
