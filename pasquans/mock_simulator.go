package pasquans

import "fmt"

// MockSimulatorName is the registry key of the canned-result mock.
const MockSimulatorName = "mock_simulator"

// MockSimulator is a stand-in backend for testing integrations without
// an actual quantum system. It applies the full request validation a
// real backend owes the contract, then returns canned populations and
// echoes the per-call options.
type MockSimulator struct {
	provider *Provider
	options  Options
}

// NewMockSimulator constructs the mock, capturing the provider
// back-reference and a deep copy of the construction options. It never
// fails.
func NewMockSimulator(provider *Provider, opts Options) (SimulatorBackend, error) {
	captured := opts.Clone()
	if captured == nil {
		captured = Options{}
	}
	return &MockSimulator{provider: provider, options: captured}, nil
}

// Name implements SimulatorBackend.
func (m *MockSimulator) Name() string {
	return MockSimulatorName
}

// Simulate validates the request and returns the canned populations
// [0.5, 0.5]. Identical requests yield identical results.
func (m *MockSimulator) Simulate(req *SimulationRequest) (*SimulationResult, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: nil request", ErrInvalidRequest)
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := req.ValidateUnits(); err != nil {
		return nil, err
	}
	return &SimulationResult{
		StatePopulations: mockPopulations(),
		BackendOptions:   echoOptions(req.BackendOptions),
	}, nil
}

// BackendInformation implements SimulatorBackend.
func (m *MockSimulator) BackendInformation() BackendInformation {
	return BackendInformation{Name: MockSimulatorName, BackendOptions: m.options}.Clone()
}

// mockPopulations returns a fresh canned two-level population split.
func mockPopulations() []float64 {
	return []float64{0.5, 0.5}
}

// echoOptions deep-copies the per-call options into the result, with nil
// normalized to an empty mapping so the echo is always present.
func echoOptions(opts Options) Options {
	if opts == nil {
		return Options{}
	}
	return opts.Clone()
}
