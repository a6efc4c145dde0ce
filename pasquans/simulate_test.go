package pasquans

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Qruise-ai/qruise-pasquans-interface/pasquans/units"
)

func TestSimulate_Success(t *testing.T) {
	result, err := Simulate(MockProvider(), MockSimulatorName, validRequest())
	require.NoError(t, err)

	assert.Equal(t, []float64{0.5, 0.5}, result.StatePopulations)
	assert.NotNil(t, result.BackendOptions)
	assert.Empty(t, result.BackendOptions)
	assert.False(t, result.Failed())
	require.NotNil(t, result.BackendInformation)
	assert.Equal(t, MockSimulatorName, result.BackendInformation.Name)
}

func TestSimulate_UnitTaggedThroughV2(t *testing.T) {
	result, err := Simulate(MockProvider(), MockSimulatorV2Name, unitRequest())
	require.NoError(t, err)

	assert.Equal(t, []float64{0.5, 0.5}, result.StatePopulations)
	assert.False(t, result.Failed())
	require.NotNil(t, result.BackendInformation)
	assert.Equal(t, MockSimulatorV2Name, result.BackendInformation.Name)
	assert.Equal(t, "rad/s", result.BackendInformation.BackendOptions[OptionFrequencyUnit])
}

// TestSimulate_UnknownBackendIsHardFailure pins the first tier of the
// error policy: resolution failures propagate to the caller and never
// produce an envelope.
func TestSimulate_UnknownBackendIsHardFailure(t *testing.T) {
	result, err := Simulate(MockProvider(), "nonexistent", validRequest())
	require.Error(t, err)
	assert.Nil(t, result, "no envelope on resolution failure")
	assert.True(t, errors.Is(err, ErrBackendNotFound), "got %v", err)
}

// TestSimulate_SimulationFailureIsInBand pins the second tier: failures
// inside the backend downgrade into the envelope, with backend identity
// still attached.
func TestSimulate_SimulationFailureIsInBand(t *testing.T) {
	req := validRequest()
	req.GlobalRabiFrequency = units.MustVector([]float64{1, 1}, "um")

	result, err := Simulate(MockProvider(), MockSimulatorName, req)
	require.NoError(t, err, "simulation failures must not surface as errors")
	require.NotNil(t, result)
	assert.True(t, result.Failed())
	assert.Contains(t, result.Error, "global_rabi_frequency")
	assert.Nil(t, result.StatePopulations)
	require.NotNil(t, result.BackendInformation, "backend identity must survive failure")
	assert.Equal(t, MockSimulatorName, result.BackendInformation.Name)
}

func TestSimulate_EmptyBackendName(t *testing.T) {
	t.Run("ambiguous with several registered", func(t *testing.T) {
		result, err := Simulate(MockProvider(), "", validRequest())
		require.Error(t, err)
		assert.Nil(t, result)
		assert.True(t, errors.Is(err, ErrAmbiguousBackend), "got %v", err)
	})

	t.Run("resolves a sole backend", func(t *testing.T) {
		provider, err := NewProvider("solo", []Factory{{ID: MockSimulatorName, New: NewMockSimulator}})
		require.NoError(t, err)
		result, err := Simulate(provider, "", validRequest())
		require.NoError(t, err)
		assert.Equal(t, MockSimulatorName, result.BackendInformation.Name)
	})
}

// panicBackend blows up during simulation to exercise dispatch isolation.
type panicBackend struct{}

func (p *panicBackend) Name() string { return "panicky" }
func (p *panicBackend) Simulate(req *SimulationRequest) (*SimulationResult, error) {
	panic("index out of range in solver")
}
func (p *panicBackend) BackendInformation() BackendInformation {
	return BackendInformation{Name: "panicky", BackendOptions: Options{}}
}

// nilResultBackend returns neither a result nor an error.
type nilResultBackend struct{}

func (n *nilResultBackend) Name() string { return "hollow" }
func (n *nilResultBackend) Simulate(req *SimulationRequest) (*SimulationResult, error) {
	return nil, nil
}
func (n *nilResultBackend) BackendInformation() BackendInformation {
	return BackendInformation{Name: "hollow", BackendOptions: Options{}}
}

func TestSimulate_PanickingBackendIsContained(t *testing.T) {
	provider, err := NewProvider("test_provider", []Factory{{
		ID:  "panicky",
		New: func(p *Provider, o Options) (SimulatorBackend, error) { return &panicBackend{}, nil },
	}})
	require.NoError(t, err)

	result, err := Simulate(provider, "panicky", validRequest())
	require.NoError(t, err)
	assert.True(t, result.Failed())
	assert.Contains(t, result.Error, "index out of range in solver")
	require.NotNil(t, result.BackendInformation)
	assert.Equal(t, "panicky", result.BackendInformation.Name)
}

func TestSimulate_NilResultBackendIsAnnotated(t *testing.T) {
	provider, err := NewProvider("test_provider", []Factory{{
		ID:  "hollow",
		New: func(p *Provider, o Options) (SimulatorBackend, error) { return &nilResultBackend{}, nil },
	}})
	require.NoError(t, err)

	result, err := Simulate(provider, "hollow", validRequest())
	require.NoError(t, err)
	assert.True(t, result.Failed())
	require.NotNil(t, result.BackendInformation)
}

func TestSimulate_NilRequestIsInBand(t *testing.T) {
	result, err := Simulate(MockProvider(), MockSimulatorName, nil)
	require.NoError(t, err)
	assert.True(t, result.Failed())
	require.NotNil(t, result.BackendInformation)
}

func TestGetBackendInformation(t *testing.T) {
	info, err := GetBackendInformation(MockProvider(), MockSimulatorName)
	require.NoError(t, err)
	assert.Equal(t, MockSimulatorName, info.Name)
	assert.NotNil(t, info.BackendOptions)

	_, err = GetBackendInformation(MockProvider(), "nonexistent")
	assert.True(t, errors.Is(err, ErrBackendNotFound), "got %v", err)
}

func TestMockProvider_RegistersBothMocks(t *testing.T) {
	provider := MockProvider()
	assert.Equal(t, MockProviderName, provider.Name())

	backends, err := provider.Backends("")
	require.NoError(t, err)
	require.Len(t, backends, 2)
	assert.Equal(t, MockSimulatorName, backends[0].Name())
	assert.Equal(t, MockSimulatorV2Name, backends[1].Name())
}
