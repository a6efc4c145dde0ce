package pasquans

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// Provider owns the set of backend instances registered under one
// logical namespace and resolves lookups against it. The registry is
// written once during NewProvider and read-only afterwards, so a
// provider is safe for concurrent readers without locking.
type Provider struct {
	name     string
	backends map[string]SimulatorBackend
	order    []string
}

// NewProvider eagerly instantiates every factory and indexes the
// resulting backends by name. Eager construction trades a little
// startup cost for the invariant that Backends is a fully realized,
// side-effect-free read afterwards: a broken backend fails here, not at
// first use.
//
// Construction attempts are isolated per factory; the first failure
// aborts with a ConstructionError naming the offending factory. A
// duplicate backend name silently overwrites the earlier instance —
// last registered wins, keeping the original registration position.
// This is intended deduplication, not an error.
func NewProvider(name string, factories []Factory) (*Provider, error) {
	p := &Provider{
		name:     name,
		backends: make(map[string]SimulatorBackend, len(factories)),
	}
	for _, factory := range factories {
		backend, err := p.instantiate(factory)
		if err != nil {
			return nil, err
		}
		key := backend.Name()
		if key == "" {
			return nil, &ConstructionError{Factory: factory.ID, Err: fmt.Errorf("backend reported an empty name")}
		}
		if _, exists := p.backends[key]; exists {
			logrus.Warnf("provider %q: backend %q registered twice, keeping the last", name, key)
		} else {
			p.order = append(p.order, key)
		}
		p.backends[key] = backend
		logrus.Infof("provider %q: registered backend %q", name, key)
	}
	return p, nil
}

// instantiate builds one backend, converting any failure — an error
// return or a panic — into a ConstructionError naming the factory.
func (p *Provider) instantiate(factory Factory) (backend SimulatorBackend, err error) {
	if factory.New == nil {
		return nil, &ConstructionError{Factory: factory.ID, Err: fmt.Errorf("factory has no constructor")}
	}
	defer func() {
		if r := recover(); r != nil {
			err = &ConstructionError{Factory: factory.ID, Err: fmt.Errorf("%v", r)}
		}
	}()
	backend, newErr := factory.New(p, factory.Options)
	if newErr != nil {
		return nil, &ConstructionError{Factory: factory.ID, Err: newErr}
	}
	return backend, nil
}

// Name returns the provider's namespace name.
func (p *Provider) Name() string {
	return p.name
}

// Backends returns backend instances. An empty name returns every
// registered backend in registration order; a non-empty name returns a
// single-element slice, or ErrBackendNotFound naming the requested key.
func (p *Provider) Backends(name string) ([]SimulatorBackend, error) {
	if name != "" {
		backend, ok := p.backends[name]
		if !ok {
			return nil, fmt.Errorf("the %q backend is not installed in provider %q: %w", name, p.name, ErrBackendNotFound)
		}
		return []SimulatorBackend{backend}, nil
	}
	out := make([]SimulatorBackend, 0, len(p.order))
	for _, key := range p.order {
		out = append(out, p.backends[key])
	}
	return out, nil
}

// Filter narrows GetBackend candidates beyond the name key.
type Filter func(SimulatorBackend) bool

// WithName matches backends by exact name.
func WithName(name string) Filter {
	return func(b SimulatorBackend) bool { return b.Name() == name }
}

// GetBackend resolves exactly one backend: candidates come from
// Backends(name), then every filter must hold. Zero matches return
// ErrNoBackendMatch, several return ErrAmbiguousBackend. An empty name
// with no filters resolves the sole registered backend, and is
// ambiguous when the provider holds more than one.
func (p *Provider) GetBackend(name string, filters ...Filter) (SimulatorBackend, error) {
	candidates, err := p.Backends(name)
	if err != nil {
		return nil, err
	}
	var matched []SimulatorBackend
	for _, backend := range candidates {
		if matchesAll(backend, filters) {
			matched = append(matched, backend)
		}
	}
	switch len(matched) {
	case 0:
		return nil, fmt.Errorf("%w in provider %q (name %q, %d filters)", ErrNoBackendMatch, p.name, name, len(filters))
	case 1:
		return matched[0], nil
	default:
		names := make([]string, len(matched))
		for i, backend := range matched {
			names[i] = backend.Name()
		}
		return nil, fmt.Errorf("%w in provider %q: candidates %s", ErrAmbiguousBackend, p.name, strings.Join(names, ", "))
	}
}

func matchesAll(backend SimulatorBackend, filters []Filter) bool {
	for _, filter := range filters {
		if !filter(backend) {
			return false
		}
	}
	return true
}
