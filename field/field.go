// Package field computes the superposed scalar wave field of an
// element layout over a square 2-D grid.
package field

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	parray "github.com/gokuldas/simulation-phased-array"
	"github.com/gokuldas/simulation-phased-array/array"
	"github.com/wiless/vlib"
)

// Field is the sampled wave intensity over the grid. X, Y and Values
// share the shape resolution × resolution. X and Y are views of the
// synthesizer's cached grid; Values is owned by the frame.
type Field struct {
	X, Y   vlib.MatrixF
	Values vlib.MatrixF
}

// Synthesizer evaluates fields over a fixed grid. The grid geometry
// depends only on resolution and range, so it is built once and
// shared by every frame of a run.
type Synthesizer struct {
	axis vlib.VectorF
	x, y vlib.MatrixF
	res  int
}

// NewSynthesizer builds the grid spanning [-2π·rng, 2π·rng] on both
// axes with resolution samples each.
func NewSynthesizer(resolution int, rng float64) (*Synthesizer, error) {
	if resolution < 2 {
		return nil, fmt.Errorf("%w: resolution %d, need at least 2", parray.ErrInvalidArgument, resolution)
	}
	if rng <= 0 {
		return nil, fmt.Errorf("%w: range %v, need > 0", parray.ErrInvalidArgument, rng)
	}

	s := &Synthesizer{
		axis: vlib.NewVectorF(resolution),
		x:    vlib.NewMatrixF(resolution, resolution),
		y:    vlib.NewMatrixF(resolution, resolution),
		res:  resolution,
	}
	half := 2 * math.Pi * rng
	floats.Span(s.axis, -half, half)
	for i := 0; i < resolution; i++ {
		for j := 0; j < resolution; j++ {
			s.x[i][j] = s.axis[j]
			s.y[i][j] = s.axis[i]
		}
	}
	return s, nil
}

// Resolution returns the number of samples per grid axis.
func (s *Synthesizer) Resolution() int {
	return s.res
}

// Synthesize superposes every element's undamped contribution
// amp·sin(r + phase) over the whole grid, r being the distance from
// the element to the grid point. The result is a pure function of the
// layout and the grid; an empty layout yields an all-zero field.
func (s *Synthesizer) Synthesize(el array.Layout) Field {
	z := vlib.NewMatrixF(s.res, s.res)

	// Per element the squared x-distances are shared by every row, so
	// they are evaluated once and the rows filled in a tight loop.
	xsq := make([]float64, s.res)
	for e := 0; e < el.Size(); e++ {
		px, py := el.Positions[e].X, el.Positions[e].Y
		amp, phs := el.Amplitudes[e], el.Phases[e]
		for j := 0; j < s.res; j++ {
			d := s.axis[j] - px
			xsq[j] = d * d
		}
		for i := 0; i < s.res; i++ {
			dy := s.axis[i] - py
			ysq := dy * dy
			row := z[i]
			for j := 0; j < s.res; j++ {
				r := math.Sqrt(xsq[j] + ysq)
				row[j] += amp * math.Sin(r+phs)
			}
		}
	}
	return Field{X: s.x, Y: s.y, Values: z}
}
