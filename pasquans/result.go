package pasquans

// SimulationResult is the envelope a dispatch call returns. Exactly one
// of two shapes comes back: a successful run carries StatePopulations
// plus the echoed BackendOptions, a failed run carries Error. Both carry
// BackendInformation, which dispatch sets unconditionally so the caller
// can always identify the backend that ran or failed.
type SimulationResult struct {
	// StatePopulations is the populations-like outcome of a successful
	// simulation.
	StatePopulations []float64 `yaml:"state_populations,omitempty"`

	// BackendOptions echoes the per-call options the backend used.
	BackendOptions Options `yaml:"backend_options,omitempty"`

	// Error is the simulation failure message, present only on failure.
	// Backend resolution failures never land here; those surface as
	// ordinary errors from Simulate.
	Error string `yaml:"error,omitempty"`

	// BackendInformation identifies the backend behind this result.
	BackendInformation *BackendInformation `yaml:"backend_information,omitempty"`
}

// Failed reports whether the simulation failed in-band.
func (r *SimulationResult) Failed() bool {
	return r.Error != ""
}
