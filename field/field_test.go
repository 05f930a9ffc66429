package field_test

import (
	"errors"
	"math"
	"testing"

	parray "github.com/gokuldas/simulation-phased-array"
	"github.com/gokuldas/simulation-phased-array/array"
	"github.com/gokuldas/simulation-phased-array/field"
	"github.com/wiless/vlib"
)

func closeTo(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func synth(t *testing.T, res int, rng float64) *field.Synthesizer {
	t.Helper()
	s, err := field.NewSynthesizer(res, rng)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestNewSynthesizerArguments(t *testing.T) {
	if _, err := field.NewSynthesizer(1, 1.0); !errors.Is(err, parray.ErrInvalidArgument) {
		t.Errorf("resolution 1: want ErrInvalidArgument, got %v", err)
	}
	if _, err := field.NewSynthesizer(10, 0); !errors.Is(err, parray.ErrInvalidArgument) {
		t.Errorf("range 0: want ErrInvalidArgument, got %v", err)
	}
}

func TestFieldShape(t *testing.T) {
	const res = 16
	s := synth(t, res, 2.0)
	spec := parray.BroadfireSpec()
	spec.Resolution = res
	spec.Range = 2.0
	f := s.Synthesize(array.UniformLinear{}.Generate(spec))

	for _, m := range []struct {
		name string
		mat  vlib.MatrixF
	}{{"X", f.X}, {"Y", f.Y}, {"Values", f.Values}} {
		if len(m.mat) != res {
			t.Fatalf("%s has %d rows, want %d", m.name, len(m.mat), res)
		}
		for i := range m.mat {
			if len(m.mat[i]) != res {
				t.Fatalf("%s row %d has %d cols, want %d", m.name, i, len(m.mat[i]), res)
			}
		}
	}
}

func TestGridSpan(t *testing.T) {
	const res = 11
	const rng = 3.0
	s := synth(t, res, rng)
	f := s.Synthesize(array.Layout{})

	half := 2 * math.Pi * rng
	if !closeTo(f.X[0][0], -half, 1e-9) || !closeTo(f.X[0][res-1], half, 1e-9) {
		t.Errorf("x axis spans [%v, %v], want [%v, %v]", f.X[0][0], f.X[0][res-1], -half, half)
	}
	if !closeTo(f.Y[0][0], -half, 1e-9) || !closeTo(f.Y[res-1][0], half, 1e-9) {
		t.Errorf("y axis spans [%v, %v], want [%v, %v]", f.Y[0][0], f.Y[res-1][0], -half, half)
	}
}

func TestDeterminism(t *testing.T) {
	spec := parray.GenericSpec()
	spec.Resolution = 32
	el := array.UniformLinear{}.Generate(spec)

	f1 := synth(t, spec.Resolution, spec.Range).Synthesize(el)
	f2 := synth(t, spec.Resolution, spec.Range).Synthesize(el)
	for i := range f1.Values {
		for j := range f1.Values[i] {
			if f1.Values[i][j] != f2.Values[i][j] {
				t.Fatalf("values differ at (%d,%d): %v vs %v", i, j, f1.Values[i][j], f2.Values[i][j])
			}
		}
	}
}

// Broadside case: zero phase step and mirror-symmetric element
// positions make the field symmetric under x -> -x.
func TestMirrorSymmetry(t *testing.T) {
	spec := parray.BroadfireSpec()
	spec.Resolution = 21
	spec.Range = 1.0
	spec.ElementCount = 4
	el := array.UniformLinear{}.Generate(spec)
	f := synth(t, spec.Resolution, spec.Range).Synthesize(el)

	res := spec.Resolution
	for i := 0; i < res; i++ {
		for j := 0; j < res; j++ {
			if !closeTo(f.Values[i][j], f.Values[i][res-1-j], 1e-9) {
				t.Fatalf("not mirror symmetric at (%d,%d): %v vs %v",
					i, j, f.Values[i][j], f.Values[i][res-1-j])
			}
		}
	}
}

// A single element at the origin gives values = sin(r) exactly.
func TestSingleElement(t *testing.T) {
	spec := parray.BroadfireSpec()
	spec.Resolution = 12
	spec.Range = 1.5
	spec.ElementCount = 1
	el := array.UniformLinear{}.Generate(spec)
	f := synth(t, spec.Resolution, spec.Range).Synthesize(el)

	for i := range f.Values {
		for j := range f.Values[i] {
			x, y := f.X[i][j], f.Y[i][j]
			want := math.Sin(math.Sqrt(x*x + y*y))
			if !closeTo(f.Values[i][j], want, 1e-12) {
				t.Fatalf("values[%d][%d] = %v, want %v", i, j, f.Values[i][j], want)
			}
		}
	}
}

func TestZeroElements(t *testing.T) {
	s := synth(t, 8, 1.0)
	f := s.Synthesize(array.Layout{})
	for i := range f.Values {
		for j := range f.Values[i] {
			if f.Values[i][j] != 0 {
				t.Fatalf("values[%d][%d] = %v, want exact 0", i, j, f.Values[i][j])
			}
		}
	}
}

// Two elements at x = -pi/2 and +pi/2, both unit amplitude and zero
// phase, over a 4x4 grid: checked against an independently coded
// reference sum.
func TestTwoElementReference(t *testing.T) {
	spec := parray.ArraySpec{
		Resolution:        4,
		Range:             1.0,
		ElementSeparation: 0.5,
		ElementCount:      2,
		ElementPhaseStep:  0,
	}
	el := array.UniformLinear{}.Generate(spec)

	if !closeTo(el.Positions[0].X, -math.Pi*0.5, 1e-12) || !closeTo(el.Positions[1].X, math.Pi*0.5, 1e-12) {
		t.Fatalf("elements at %v and %v, want -pi/2 and +pi/2", el.Positions[0].X, el.Positions[1].X)
	}

	f := synth(t, spec.Resolution, spec.Range).Synthesize(el)

	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			x, y := f.X[i][j], f.Y[i][j]
			var want float64
			for _, ex := range []float64{-math.Pi * 0.5, math.Pi * 0.5} {
				dx := x - ex
				want += math.Sin(math.Hypot(dx, y))
			}
			if !closeTo(f.Values[i][j], want, 1e-9) {
				t.Fatalf("values[%d][%d] = %v, want %v", i, j, f.Values[i][j], want)
			}
		}
	}
}

func TestBroadfireEndfireDiffer(t *testing.T) {
	res, rng := 50, 5.0
	s := synth(t, res, rng)

	broad := parray.BroadfireSpec()
	broad.Resolution, broad.Range = res, rng
	end := parray.EndfireSpec()
	end.Resolution, end.Range = res, rng

	fb := s.Synthesize(array.UniformLinear{}.Generate(broad))
	fe := s.Synthesize(array.UniformLinear{}.Generate(end))

	maxDiff := 0.0
	for i := 0; i < res; i++ {
		for j := 0; j < res; j++ {
			if d := math.Abs(fb.Values[i][j] - fe.Values[i][j]); d > maxDiff {
				maxDiff = d
			}
		}
	}
	if maxDiff < 0.1 {
		t.Fatalf("broadfire and endfire fields nearly identical (max diff %v)", maxDiff)
	}
}
