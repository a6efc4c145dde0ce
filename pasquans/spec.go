package pasquans

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Qruise-ai/qruise-pasquans-interface/pasquans/units"
)

// SimulationSpec is a declarative YAML description of one dispatch
// call: the backend to target plus the physical inputs. Profiles accept
// every Quantity encoding (scalar strings like "1.5 MHz", bare number
// sequences, value/values mappings).
type SimulationSpec struct {
	Backend             string         `yaml:"backend"`
	BackendOptions      Options        `yaml:"backend_options,omitempty"`
	LatticeSites        LatticeSpec    `yaml:"lattice_sites"`
	GlobalRabiFrequency units.Quantity `yaml:"global_rabi_frequency"`
	GlobalPhase         units.Quantity `yaml:"global_phase"`
	GlobalDetuning      units.Quantity `yaml:"global_detuning"`
	LocalDetuning       units.Quantity `yaml:"local_detuning"`
	InitState           []float64      `yaml:"init_state,omitempty"`
	Timegrid            units.Quantity `yaml:"timegrid,omitempty"`
}

// LatticeSpec describes atom positions: one coordinate tuple per site
// plus the unit they are expressed in. An empty unit means raw numbers.
type LatticeSpec struct {
	Positions [][]float64 `yaml:"positions"`
	Unit      string      `yaml:"unit,omitempty"`
}

// ParseSimulationSpec decodes a YAML simulation spec, rejecting unknown
// fields.
func ParseSimulationSpec(data []byte) (*SimulationSpec, error) {
	var spec SimulationSpec
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&spec); err != nil {
		return nil, fmt.Errorf("parsing simulation spec: %w", err)
	}
	return &spec, nil
}

// LoadSimulationSpec reads and parses a YAML simulation spec file.
func LoadSimulationSpec(path string) (*SimulationSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading simulation spec: %w", err)
	}
	spec, err := ParseSimulationSpec(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return spec, nil
}

// Request compiles the spec into a validated SimulationRequest.
func (s *SimulationSpec) Request() (*SimulationRequest, error) {
	req := &SimulationRequest{
		GlobalRabiFrequency: s.GlobalRabiFrequency,
		GlobalPhase:         s.GlobalPhase,
		GlobalDetuning:      s.GlobalDetuning,
		LocalDetuning:       s.LocalDetuning,
		InitState:           append([]float64(nil), s.InitState...),
		Timegrid:            s.Timegrid,
		BackendOptions:      s.BackendOptions.Clone(),
	}
	req.LatticeSites = make([]units.Quantity, 0, len(s.LatticeSites.Positions))
	for i, pos := range s.LatticeSites.Positions {
		site, err := units.NewVector(pos, s.LatticeSites.Unit)
		if err != nil {
			return nil, fmt.Errorf("lattice_sites.positions[%d]: %w", i, err)
		}
		req.LatticeSites = append(req.LatticeSites, site)
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := req.ValidateUnits(); err != nil {
		return nil, err
	}
	return req, nil
}

// Validate checks that the spec compiles into a well-formed request.
// Whether the backend name resolves is left to the provider at dispatch
// time.
func (s *SimulationSpec) Validate() error {
	_, err := s.Request()
	return err
}
