package pasquans

import (
	"errors"
	"fmt"
)

// Sentinel errors of the provider layer. These are configuration-class
// failures: Simulate returns them to the caller instead of folding them
// into the result envelope. Match with errors.Is.
var (
	// ErrBackendNotFound is returned by Backends when a requested name
	// has no registered backend.
	ErrBackendNotFound = errors.New("backend not installed")

	// ErrNoBackendMatch is returned by GetBackend when name and filters
	// select zero backends.
	ErrNoBackendMatch = errors.New("no backend matches the criteria")

	// ErrAmbiguousBackend is returned by GetBackend when name and
	// filters select more than one backend.
	ErrAmbiguousBackend = errors.New("more than one backend matches the criteria")

	// ErrInvalidRequest marks a malformed simulation request: mismatched
	// profile lengths, wrong dimensionalities, missing inputs. Backends
	// report it from Simulate, so dispatch downgrades it into the result
	// envelope rather than returning it.
	ErrInvalidRequest = errors.New("invalid simulation request")
)

// ConstructionError aborts provider creation when a backend factory
// fails, naming the offending factory. Construction attempts are
// isolated per factory; the first failure is reported.
type ConstructionError struct {
	Factory string
	Err     error
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("backend %q could not be instantiated: %v", e.Factory, e.Err)
}

func (e *ConstructionError) Unwrap() error { return e.Err }
