// Package pasquans defines the provider and dispatch contract for
// quantum lattice simulators: callers submit a physical system
// description (lattice geometry, time-dependent drive profiles) to a
// named backend and receive simulation results plus backend metadata.
// The real simulators are external systems reached through this
// contract; the package ships mock backends for integration testing.
//
// # Reading Guide
//
// Start with these three files to understand the call contract:
//   - backend.go: the SimulatorBackend interface and backend factories
//   - provider.go: eager backend instantiation and name resolution
//   - simulate.go: the dispatch entry point and its error policy
//
// # Architecture
//
// A Provider is built once from a slice of Factory values, eagerly
// instantiating every backend and indexing the instances by name; the
// registry is read-only afterwards. Simulate resolves one backend
// through the provider, invokes it inside a failure-isolating scope,
// and returns a SimulationResult envelope. Physical inputs travel as
// units.Quantity values (pasquans/units), which carry dimensionality
// through validation and conversion.
//
// # Error Policy
//
// Failures split into two tiers. Resolution failures — an unknown or
// ambiguous backend name, a broken backend at construction — are
// configuration errors and surface as ordinary Go errors
// (ErrBackendNotFound, ErrNoBackendMatch, ErrAmbiguousBackend,
// ConstructionError). Failures raised by the simulation itself are
// downgraded into the envelope's Error field and never propagate; the
// envelope always carries BackendInformation, so a caller can tell "my
// backend name was wrong" apart from "the simulation failed" and still
// identify the backend that failed.
package pasquans
