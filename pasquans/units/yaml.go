package units

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// quantityYAML is the mapping form of a quantity on the wire.
type quantityYAML struct {
	Value  *float64  `yaml:"value,omitempty"`
	Values []float64 `yaml:"values,omitempty,flow"`
	Unit   string    `yaml:"unit,omitempty"`
}

// MarshalYAML renders scalars as {value, unit} and vectors as
// {values, unit}; dimensionless quantities omit the unit key.
func (q Quantity) MarshalYAML() (any, error) {
	out := quantityYAML{Unit: q.unit.Symbol}
	if q.scalar && len(q.values) == 1 {
		v := q.values[0]
		out.Value = &v
	} else {
		out.Values = q.Values()
	}
	return out, nil
}

// UnmarshalYAML accepts three shapes: a scalar like "1.5 MHz" (bare
// numbers are dimensionless), a sequence of dimensionless numbers, and
// the mapping form written by MarshalYAML.
func (q *Quantity) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		return q.unmarshalScalar(value)
	case yaml.SequenceNode:
		var vals []float64
		if err := value.Decode(&vals); err != nil {
			return err
		}
		*q = Quantity{values: vals, unit: unitTable[""]}
		return nil
	case yaml.MappingNode:
		return q.unmarshalMapping(value)
	}
	return fmt.Errorf("quantity: unsupported YAML node kind %v", value.Kind)
}

func (q *Quantity) unmarshalScalar(value *yaml.Node) error {
	if value.Tag == "!!null" {
		*q = Quantity{}
		return nil
	}
	text := strings.TrimSpace(value.Value)
	numText, unitExpr, _ := strings.Cut(text, " ")
	v, err := strconv.ParseFloat(numText, 64)
	if err != nil {
		return fmt.Errorf("quantity: cannot parse %q as a number with optional unit", text)
	}
	parsed, err := New(v, unitExpr)
	if err != nil {
		return err
	}
	*q = parsed
	return nil
}

func (q *Quantity) unmarshalMapping(value *yaml.Node) error {
	for i := 0; i < len(value.Content); i += 2 {
		switch key := value.Content[i].Value; key {
		case "value", "values", "unit":
		default:
			return fmt.Errorf("quantity: unknown field %q", key)
		}
	}
	var aux quantityYAML
	if err := value.Decode(&aux); err != nil {
		return err
	}
	if aux.Value != nil && aux.Values != nil {
		return fmt.Errorf("quantity: value and values are mutually exclusive")
	}
	if aux.Value != nil {
		parsed, err := New(*aux.Value, aux.Unit)
		if err != nil {
			return err
		}
		*q = parsed
		return nil
	}
	parsed, err := NewVector(aux.Values, aux.Unit)
	if err != nil {
		return err
	}
	*q = parsed
	return nil
}
