package pasquans

import "fmt"

// MockProviderName is the namespace name of the provider of mocks.
const MockProviderName = "pasquans_qruise_provider"

// MockFactories lists the mock backends: the plain canned-result mock
// and the unit-normalizing v2 mock.
func MockFactories() []Factory {
	return []Factory{
		{ID: MockSimulatorName, New: NewMockSimulator},
		{ID: MockSimulatorV2Name, New: NewMockSimulatorV2},
	}
}

// MockProvider builds the provider of mock backends, the provider to
// hand to Simulate in tests and examples.
func MockProvider() *Provider {
	provider, err := NewProvider(MockProviderName, MockFactories())
	if err != nil {
		panic(fmt.Sprintf("mock provider construction failed: %v", err))
	}
	return provider
}
