package pasquans

import (
	"fmt"

	"github.com/Qruise-ai/qruise-pasquans-interface/pasquans/units"
)

// MockSimulatorV2Name is the registry key of the unit-normalizing mock.
const MockSimulatorV2Name = "mock_simulator_v2"

// Construction option keys understood by MockSimulatorV2.
const (
	OptionSiteUnit      = "site_unit"
	OptionFrequencyUnit = "frequency_unit"
	OptionTimeUnit      = "time_unit"
)

// MockSimulatorV2 is the unit-aware mock: before "computing" it brings
// every unit-tagged input into its configured working units, exercising
// the conversion path a real backend needs. The simulation outcome is
// the same canned populations as MockSimulator.
type MockSimulatorV2 struct {
	provider *Provider
	options  Options

	siteUnit      units.Unit
	frequencyUnit units.Unit
	timeUnit      units.Unit
}

// NewMockSimulatorV2 constructs the mock. Construction options may
// override the working units (site_unit "um", frequency_unit "rad/s",
// time_unit "s"); an unknown unit or one of the wrong dimensionality
// fails construction.
func NewMockSimulatorV2(provider *Provider, opts Options) (SimulatorBackend, error) {
	captured := opts.Clone()
	if captured == nil {
		captured = Options{}
	}
	m := &MockSimulatorV2{provider: provider, options: captured}

	var err error
	if m.siteUnit, err = workingUnit(captured, OptionSiteUnit, "um", units.Length); err != nil {
		return nil, err
	}
	if m.frequencyUnit, err = workingUnit(captured, OptionFrequencyUnit, "rad/s", units.Frequency); err != nil {
		return nil, err
	}
	if m.timeUnit, err = workingUnit(captured, OptionTimeUnit, "s", units.Time); err != nil {
		return nil, err
	}
	// Record the resolved units so backend information reflects the
	// effective configuration, not just the overrides.
	captured[OptionSiteUnit] = m.siteUnit.Symbol
	captured[OptionFrequencyUnit] = m.frequencyUnit.Symbol
	captured[OptionTimeUnit] = m.timeUnit.Symbol
	return m, nil
}

// workingUnit resolves one working-unit option against its expected
// dimensionality.
func workingUnit(opts Options, key, def string, want units.Dimensionality) (units.Unit, error) {
	expr := opts.GetString(key, def)
	u, err := units.Parse(expr)
	if err != nil {
		return units.Unit{}, fmt.Errorf("%s: %w", key, err)
	}
	if u.Dim != want {
		return units.Unit{}, fmt.Errorf("%s: %w: %q carries %s, want %s", key, units.ErrDimensionMismatch, expr, u.Dim, want)
	}
	return u, nil
}

// Name implements SimulatorBackend.
func (m *MockSimulatorV2) Name() string {
	return MockSimulatorV2Name
}

// Simulate validates the request, normalizes it into the working units,
// and returns the canned populations [0.5, 0.5].
func (m *MockSimulatorV2) Simulate(req *SimulationRequest) (*SimulationResult, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: nil request", ErrInvalidRequest)
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := req.ValidateUnits(); err != nil {
		return nil, err
	}
	if _, err := m.normalize(req); err != nil {
		return nil, err
	}
	return &SimulationResult{
		StatePopulations: mockPopulations(),
		BackendOptions:   echoOptions(req.BackendOptions),
	}, nil
}

// BackendInformation implements SimulatorBackend.
func (m *MockSimulatorV2) BackendInformation() BackendInformation {
	return BackendInformation{Name: MockSimulatorV2Name, BackendOptions: m.options}.Clone()
}

// normalize brings every unit-tagged input into the working units; raw
// dimensionless inputs pass through as already-working magnitudes. The
// phase is always rescaled to radians.
func (m *MockSimulatorV2) normalize(req *SimulationRequest) (*SimulationRequest, error) {
	out := &SimulationRequest{
		InitState:      req.InitState,
		BackendOptions: req.BackendOptions,
	}
	out.LatticeSites = make([]units.Quantity, len(req.LatticeSites))
	for i, site := range req.LatticeSites {
		q, err := toWorking(site, m.siteUnit)
		if err != nil {
			return nil, fmt.Errorf("lattice_sites[%d]: %w", i, err)
		}
		out.LatticeSites[i] = q
	}
	var err error
	if out.GlobalRabiFrequency, err = toWorking(req.GlobalRabiFrequency, m.frequencyUnit); err != nil {
		return nil, fmt.Errorf("global_rabi_frequency: %w", err)
	}
	if out.GlobalDetuning, err = toWorking(req.GlobalDetuning, m.frequencyUnit); err != nil {
		return nil, fmt.Errorf("global_detuning: %w", err)
	}
	if out.LocalDetuning, err = toWorking(req.LocalDetuning, m.frequencyUnit); err != nil {
		return nil, fmt.Errorf("local_detuning: %w", err)
	}
	if out.GlobalPhase, err = req.GlobalPhase.To("rad"); err != nil {
		return nil, fmt.Errorf("global_phase: %w", err)
	}
	if !req.Timegrid.IsZero() {
		if out.Timegrid, err = toWorking(req.Timegrid, m.timeUnit); err != nil {
			return nil, fmt.Errorf("timegrid: %w", err)
		}
	}
	return out, nil
}

// toWorking converts a unit-tagged quantity into the working unit; raw
// dimensionless values are taken as already being in it.
func toWorking(q units.Quantity, working units.Unit) (units.Quantity, error) {
	if q.IsDimensionless() {
		return q, nil
	}
	return q.To(working.Symbol)
}
