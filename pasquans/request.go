// Defines the SimulationRequest struct that carries the physical inputs of
// one simulation call, plus the shape and dimensionality checks every
// backend applies before computing.

package pasquans

import (
	"fmt"

	"github.com/Qruise-ai/qruise-pasquans-interface/pasquans/units"
)

// SimulationRequest is the tuple of physical inputs for one dispatch
// call. It exists only for the duration of that call and is never
// mutated by backends.
//
// Timeline profiles (rabi frequency, phase, detuning, timegrid) describe
// the same timeline and must have matching lengths. Per-site inputs
// (local detuning, initial state) must match the lattice site count.
// Inputs may be raw numbers (dimensionless quantities) or unit-tagged;
// when tagged, each field must carry its expected physical dimension.
type SimulationRequest struct {
	// LatticeSites holds one position per atom, each a coordinate tuple
	// with [length] dimension. All sites must share the coordinate arity.
	LatticeSites []units.Quantity

	// GlobalRabiFrequency is the time-dependent global drive amplitude,
	// [frequency].
	GlobalRabiFrequency units.Quantity

	// GlobalPhase is the time-dependent global drive phase, an angle or
	// dimensionless.
	GlobalPhase units.Quantity

	// GlobalDetuning is the time-dependent global detuning, [frequency].
	GlobalDetuning units.Quantity

	// LocalDetuning holds one detuning value per lattice site, in site
	// order, [frequency].
	LocalDetuning units.Quantity

	// InitState optionally sets the initial state, one value per site.
	// Empty means the ground state.
	InitState []float64

	// Timegrid optionally fixes the simulation timeline, [time]. When
	// present its length must match the timeline profiles.
	Timegrid units.Quantity

	// BackendOptions carries per-call options for the chosen backend.
	BackendOptions Options
}

// Sites returns the number of lattice sites.
func (r *SimulationRequest) Sites() int {
	return len(r.LatticeSites)
}

// Validate checks the shape rules: a non-empty lattice with uniform
// coordinate arity, timeline profiles of equal length, and per-site
// inputs matching the site count. Mismatches are contract violations
// reported as errors, never silently truncated.
func (r *SimulationRequest) Validate() error {
	if len(r.LatticeSites) == 0 {
		return fmt.Errorf("%w: lattice_sites must contain at least one site", ErrInvalidRequest)
	}
	arity := r.LatticeSites[0].Len()
	for i, site := range r.LatticeSites {
		if site.Len() == 0 {
			return fmt.Errorf("%w: lattice_sites[%d] has no coordinates", ErrInvalidRequest, i)
		}
		if site.Len() != arity {
			return fmt.Errorf("%w: lattice_sites[%d] has %d coordinates, want %d", ErrInvalidRequest, i, site.Len(), arity)
		}
	}
	steps := r.GlobalRabiFrequency.Len()
	if steps == 0 {
		return fmt.Errorf("%w: global_rabi_frequency must not be empty", ErrInvalidRequest)
	}
	if r.GlobalPhase.Len() != steps {
		return fmt.Errorf("%w: global_phase has %d steps, global_rabi_frequency has %d", ErrInvalidRequest, r.GlobalPhase.Len(), steps)
	}
	if r.GlobalDetuning.Len() != steps {
		return fmt.Errorf("%w: global_detuning has %d steps, global_rabi_frequency has %d", ErrInvalidRequest, r.GlobalDetuning.Len(), steps)
	}
	if !r.Timegrid.IsZero() && r.Timegrid.Len() != steps {
		return fmt.Errorf("%w: timegrid has %d steps, global_rabi_frequency has %d", ErrInvalidRequest, r.Timegrid.Len(), steps)
	}
	if r.LocalDetuning.Len() != len(r.LatticeSites) {
		return fmt.Errorf("%w: local_detuning has %d entries for %d lattice sites", ErrInvalidRequest, r.LocalDetuning.Len(), len(r.LatticeSites))
	}
	if len(r.InitState) > 0 && len(r.InitState) != len(r.LatticeSites) {
		return fmt.Errorf("%w: init_state has %d entries for %d lattice sites", ErrInvalidRequest, len(r.InitState), len(r.LatticeSites))
	}
	return nil
}

// ValidateUnits checks each unit-tagged input against its expected
// physical dimension: [length] for lattice sites, [frequency] for rabi
// and detuning, angle or dimensionless for phase, [time] for the
// timegrid. Raw dimensionless inputs pass. The first mismatch fails
// fast, naming the field.
func (r *SimulationRequest) ValidateUnits() error {
	for i, site := range r.LatticeSites {
		if err := expectDimension(fmt.Sprintf("lattice_sites[%d]", i), site, units.Length); err != nil {
			return err
		}
	}
	if err := expectDimension("global_rabi_frequency", r.GlobalRabiFrequency, units.Frequency); err != nil {
		return err
	}
	if err := expectDimension("global_detuning", r.GlobalDetuning, units.Frequency); err != nil {
		return err
	}
	if err := expectDimension("local_detuning", r.LocalDetuning, units.Frequency); err != nil {
		return err
	}
	if !r.GlobalPhase.IsDimensionless() {
		return fmt.Errorf("%w: global_phase must be an angle or dimensionless, got %s", units.ErrDimensionMismatch, r.GlobalPhase.Dimensionality())
	}
	if !r.Timegrid.IsZero() {
		if err := expectDimension("timegrid", r.Timegrid, units.Time); err != nil {
			return err
		}
	}
	return nil
}

// expectDimension admits raw dimensionless inputs and unit-tagged inputs
// of the wanted dimensionality; anything else is a mismatch naming the
// field.
func expectDimension(field string, q units.Quantity, want units.Dimensionality) error {
	if q.IsDimensionless() || q.Dimensionality() == want {
		return nil
	}
	return fmt.Errorf("%w: %s must carry %s, got %s", units.ErrDimensionMismatch, field, want, q.Dimensionality())
}

func (r *SimulationRequest) String() string {
	if r == nil {
		return "request{nil}"
	}
	return fmt.Sprintf("request{sites: %d, steps: %d}", len(r.LatticeSites), r.GlobalRabiFrequency.Len())
}
