package pasquans

// SimulatorBackend is the capability every lattice simulator exposes.
// Providers and dispatch treat backends polymorphically through this
// interface. Backends are stateless across calls: the only state is the
// immutable options captured at construction, so one instance is safe
// for concurrent use once built.
type SimulatorBackend interface {
	// Name returns the unique, non-empty key the backend registers under.
	Name() string

	// Simulate runs one simulation of the request. Implementations must
	// validate profile shapes and dimensionalities before computing, must
	// not mutate the request, and must report failures as errors rather
	// than truncating or coercing inputs.
	Simulate(req *SimulationRequest) (*SimulationResult, error)

	// BackendInformation returns static metadata: the backend name and
	// the options captured at construction. Repeated calls yield equal
	// values.
	BackendInformation() BackendInformation
}

// BackendInformation is the static descriptor of one backend instance.
type BackendInformation struct {
	Name           string  `yaml:"name"`
	BackendOptions Options `yaml:"backend_options"`
}

// Clone deep-copies the descriptor so callers cannot reach into backend
// state through the options map.
func (bi BackendInformation) Clone() BackendInformation {
	return BackendInformation{Name: bi.Name, BackendOptions: bi.BackendOptions.Clone()}
}

// Factory describes one backend available under a provider: an ID for
// construction failure reports, construction options bound at
// registration, and the constructor itself.
type Factory struct {
	// ID names the factory when construction fails, before the backend
	// instance exists to report a name.
	ID string

	// Options is handed to New when the provider is built.
	Options Options

	// New constructs the backend with a back-reference to its owning
	// provider. The returned backend must report a non-empty Name.
	New func(provider *Provider, opts Options) (SimulatorBackend, error)
}
