package field

import (
	"fmt"
	"math"

	parray "github.com/gokuldas/simulation-phased-array"
	"github.com/gokuldas/simulation-phased-array/array"
	"github.com/wiless/vlib"
)

// RingPattern samples the squared field amplitude on a circle of
// probe nodes of the given radius centered on the array, one sample
// per 2π/nodes of azimuth starting at angle 0. It is the polar beam
// pattern of the layout under the same undamped model as the grid
// synthesizer.
func RingPattern(el array.Layout, nodes int, radius float64) (vlib.VectorF, error) {
	if nodes <= 0 {
		return nil, fmt.Errorf("%w: nodes %d, need > 0", parray.ErrInvalidArgument, nodes)
	}
	if radius <= 0 {
		return nil, fmt.Errorf("%w: radius %v, need > 0", parray.ErrInvalidArgument, radius)
	}

	pattern := vlib.NewVectorF(nodes)
	delTheta := 2 * math.Pi / float64(nodes)
	for n := 0; n < nodes; n++ {
		theta := delTheta * float64(n)
		px := radius * math.Cos(theta)
		py := radius * math.Sin(theta)
		var sum float64
		for e := 0; e < el.Size(); e++ {
			dx := px - el.Positions[e].X
			dy := py - el.Positions[e].Y
			r := math.Sqrt(dx*dx + dy*dy)
			sum += el.Amplitudes[e] * math.Sin(r+el.Phases[e])
		}
		pattern[n] = sum * sum
	}
	return pattern, nil
}
