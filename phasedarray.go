// Package phasedarray simulates the interference field of a linear
// array of coherent point-wave emitters. The root package holds the
// run configuration shared by the generator, synthesizer and sweep
// packages.
package phasedarray

import (
	"errors"
	"fmt"
	"math"
)

// Error kinds surfaced by the simulator and its collaborators.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrExternalTool    = errors.New("external tool failure")
)

// ArraySpec holds the parameters of one simulation run. Distances are
// expressed in wavelengths, phases in radians.
type ArraySpec struct {
	Resolution        int     // samples per grid axis
	Range             float64 // half-width of the spatial window, in wavelengths
	ElementSeparation float64 // spacing between adjacent elements, in wavelengths
	ElementCount      int
	ElementPhaseStep  float64 // phase increment between adjacent elements
}

// Validate reports whether the spec describes a computable run.
// ElementCount 0 is allowed and yields an all-zero field downstream.
func (s ArraySpec) Validate() error {
	if s.Resolution < 2 {
		return fmt.Errorf("%w: resolution %d, need at least 2", ErrInvalidArgument, s.Resolution)
	}
	if s.Range <= 0 {
		return fmt.Errorf("%w: range %v, need > 0", ErrInvalidArgument, s.Range)
	}
	if s.ElementSeparation <= 0 {
		return fmt.Errorf("%w: element separation %v, need > 0", ErrInvalidArgument, s.ElementSeparation)
	}
	if s.ElementCount < 0 {
		return fmt.Errorf("%w: element count %d, need >= 0", ErrInvalidArgument, s.ElementCount)
	}
	return nil
}

// GenericSpec returns the stock ten-element array with a quarter-turn
// phase step between adjacent elements. Each call returns a fresh
// value; presets are never shared.
func GenericSpec() ArraySpec {
	return ArraySpec{
		Resolution:        200,
		Range:             30.0,
		ElementSeparation: 0.5,
		ElementCount:      10,
		ElementPhaseStep:  2 * math.Pi * 0.25,
	}
}

// BroadfireSpec returns the zero-phase-step preset. The main lobe is
// perpendicular to the array axis.
func BroadfireSpec() ArraySpec {
	s := GenericSpec()
	s.ElementPhaseStep = 0
	return s
}

// EndfireSpec returns the half-turn phase-step preset. The main lobe
// lies along the array axis.
func EndfireSpec() ArraySpec {
	s := GenericSpec()
	s.ElementPhaseStep = 2 * math.Pi * 0.5
	return s
}
