package pasquans

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Simulate is the single dispatch entry point: it resolves a backend by
// name through the provider, invokes the simulation, and normalizes the
// outcome into a result envelope.
//
// Failures follow a two-tier policy. Backend resolution failures
// (unknown name, ambiguous match) are caller-configuration errors and
// return a non-nil error with a nil result. Failures raised by the
// simulation itself — validation, numeric, arbitrary backend failures —
// are captured into the envelope's Error field and never propagate.
// Either way the envelope (when returned) carries BackendInformation,
// so the caller can always identify which backend ran or failed.
//
// An empty backend name resolves to the sole registered backend; with
// several registered it fails as ambiguous.
func Simulate(provider *Provider, backend string, req *SimulationRequest) (*SimulationResult, error) {
	backendSimulator, err := provider.GetBackend(backend)
	if err != nil {
		return nil, err
	}
	run := uuid.Must(uuid.NewV7()).String()
	logrus.Debugf("run %s: dispatching %s to backend %q", run, req, backendSimulator.Name())

	result := runIsolated(backendSimulator, req)
	if result.Failed() {
		logrus.Warnf("run %s: backend %q failed: %s", run, backendSimulator.Name(), result.Error)
	}
	info := backendSimulator.BackendInformation()
	result.BackendInformation = &info
	return result, nil
}

// runIsolated invokes the backend inside a failure-isolating scope:
// error returns and panics both downgrade into the envelope's Error
// field, never past the dispatch boundary.
func runIsolated(backend SimulatorBackend, req *SimulationRequest) (result *SimulationResult) {
	defer func() {
		if r := recover(); r != nil {
			result = &SimulationResult{Error: fmt.Sprintf("backend panic: %v", r)}
		}
	}()
	res, err := backend.Simulate(req)
	if err != nil {
		return &SimulationResult{Error: err.Error()}
	}
	if res == nil {
		return &SimulationResult{Error: "backend returned no result"}
	}
	return res
}

// GetBackendInformation resolves a backend by name and returns its
// static metadata. Resolution failures are hard errors, the same policy
// as Simulate's resolution step.
func GetBackendInformation(provider *Provider, backend string) (BackendInformation, error) {
	backendSimulator, err := provider.GetBackend(backend)
	if err != nil {
		return BackendInformation{}, err
	}
	return backendSimulator.BackendInformation(), nil
}
