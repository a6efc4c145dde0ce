package units

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Quantity is an immutable numeric value, scalar or vector, tagged with
// a unit. Every operation returns a fresh Quantity; the backing slice is
// never shared with callers, so quantities can be passed across backend
// boundaries without defensive copying.
type Quantity struct {
	values []float64
	unit   Unit
	scalar bool
}

// New builds a scalar quantity, e.g. New(1.5, "MHz").
func New(value float64, unitExpr string) (Quantity, error) {
	u, err := Parse(unitExpr)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{values: []float64{value}, unit: u, scalar: true}, nil
}

// NewVector builds a vector quantity over a copy of values.
func NewVector(values []float64, unitExpr string) (Quantity, error) {
	u, err := Parse(unitExpr)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{values: append([]float64(nil), values...), unit: u}, nil
}

// Raw wraps a bare number as a dimensionless scalar.
func Raw(value float64) Quantity {
	return Quantity{values: []float64{value}, unit: unitTable[""], scalar: true}
}

// MustNew is New for statically known arguments; panics on failure.
func MustNew(value float64, unitExpr string) Quantity {
	q, err := New(value, unitExpr)
	if err != nil {
		panic(err)
	}
	return q
}

// MustVector is NewVector for statically known arguments; panics on failure.
func MustVector(values []float64, unitExpr string) Quantity {
	q, err := NewVector(values, unitExpr)
	if err != nil {
		panic(err)
	}
	return q
}

// IsZero reports whether the quantity was never set. The zero Quantity
// is distinguishable from Raw(0), which holds one element.
func (q Quantity) IsZero() bool {
	return len(q.values) == 0
}

// IsScalar reports whether the quantity holds a single broadcastable value.
func (q Quantity) IsScalar() bool {
	return q.scalar
}

// Len returns the number of elements; scalars have length 1.
func (q Quantity) Len() int {
	return len(q.values)
}

// Unit returns the unit the quantity is currently expressed in.
func (q Quantity) Unit() Unit {
	return q.unit
}

// Dimensionality returns the dimensionality of the quantity's unit.
func (q Quantity) Dimensionality() Dimensionality {
	return q.unit.Dim
}

// IsDimensionless reports whether the quantity carries no dimension.
// Angles count as dimensionless.
func (q Quantity) IsDimensionless() bool {
	return q.unit.Dim.IsDimensionless()
}

// Value returns the first element, which for scalars is the value.
// The zero Quantity yields 0.
func (q Quantity) Value() float64 {
	if len(q.values) == 0 {
		return 0
	}
	return q.values[0]
}

// Values returns a copy of all elements.
func (q Quantity) Values() []float64 {
	return append([]float64(nil), q.values...)
}

// To converts the quantity into the given unit. Conversion is linear in
// the table factors: 1 MHz becomes 1e6 rad/s, with no 2*pi folded in.
func (q Quantity) To(unitExpr string) (Quantity, error) {
	target, err := Parse(unitExpr)
	if err != nil {
		return Quantity{}, err
	}
	if !q.unit.Compatible(target) {
		return Quantity{}, fmt.Errorf("%w: cannot convert %s to %s", ErrDimensionMismatch, q.unit, target)
	}
	return q.to(target), nil
}

// ToBase converts the quantity into the SI base unit of its dimensionality.
func (q Quantity) ToBase() Quantity {
	return q.to(baseUnit(q.unit.Dim))
}

func (q Quantity) to(target Unit) Quantity {
	scale := q.unit.Factor / target.Factor
	out := Quantity{values: make([]float64, len(q.values)), unit: target, scalar: q.scalar}
	for i, v := range q.values {
		out.values[i] = v * scale
	}
	return out
}

// Add returns q + o expressed in q's unit. Scalars broadcast against
// vectors; two vectors must have equal length.
func (q Quantity) Add(o Quantity) (Quantity, error) {
	return q.addScaled(o, 1)
}

// Sub returns q - o expressed in q's unit, with Add's broadcast rules.
func (q Quantity) Sub(o Quantity) (Quantity, error) {
	return q.addScaled(o, -1)
}

func (q Quantity) addScaled(o Quantity, sign float64) (Quantity, error) {
	if !q.unit.Compatible(o.unit) {
		return Quantity{}, fmt.Errorf("%w: cannot combine %s and %s", ErrDimensionMismatch, q.unit, o.unit)
	}
	rhs := o.to(q.unit)
	switch {
	case q.scalar && !rhs.scalar:
		out := Quantity{values: make([]float64, len(rhs.values)), unit: q.unit}
		for i, v := range rhs.values {
			out.values[i] = q.values[0] + sign*v
		}
		return out, nil
	case rhs.scalar && !q.scalar:
		out := Quantity{values: make([]float64, len(q.values)), unit: q.unit}
		for i, v := range q.values {
			out.values[i] = v + sign*rhs.values[0]
		}
		return out, nil
	default:
		if len(q.values) != len(rhs.values) {
			return Quantity{}, fmt.Errorf("%w: length %d vs %d", ErrShapeMismatch, len(q.values), len(rhs.values))
		}
		out := Quantity{values: make([]float64, len(q.values)), unit: q.unit, scalar: q.scalar}
		for i, v := range q.values {
			out.values[i] = v + sign*rhs.values[i]
		}
		return out, nil
	}
}

// Scale returns the quantity multiplied by a bare number.
func (q Quantity) Scale(k float64) Quantity {
	out := Quantity{values: make([]float64, len(q.values)), unit: q.unit, scalar: q.scalar}
	for i, v := range q.values {
		out.values[i] = v * k
	}
	return out
}

// Mul returns the elementwise product of two quantities. Both operands
// are first brought to base units and the result is expressed in the
// base unit of the combined dimensionality.
func (q Quantity) Mul(o Quantity) (Quantity, error) {
	return q.combine(o, false)
}

// Div returns the elementwise ratio of two quantities, in base units of
// the combined dimensionality.
func (q Quantity) Div(o Quantity) (Quantity, error) {
	return q.combine(o, true)
}

func (q Quantity) combine(o Quantity, invert bool) (Quantity, error) {
	a, b := q.ToBase(), o.ToBase()
	dim := a.unit.Dim.Mul(b.unit.Dim)
	if invert {
		dim = a.unit.Dim.Div(b.unit.Dim)
	}
	op := func(x, y float64) float64 { return x * y }
	if invert {
		op = func(x, y float64) float64 { return x / y }
	}
	switch {
	case a.scalar && !b.scalar:
		out := Quantity{values: make([]float64, len(b.values)), unit: baseUnit(dim)}
		for i, v := range b.values {
			out.values[i] = op(a.values[0], v)
		}
		return out, nil
	case b.scalar && !a.scalar:
		out := Quantity{values: make([]float64, len(a.values)), unit: baseUnit(dim)}
		for i, v := range a.values {
			out.values[i] = op(v, b.values[0])
		}
		return out, nil
	default:
		if len(a.values) != len(b.values) {
			return Quantity{}, fmt.Errorf("%w: length %d vs %d", ErrShapeMismatch, len(a.values), len(b.values))
		}
		out := Quantity{values: make([]float64, len(a.values)), unit: baseUnit(dim), scalar: a.scalar}
		for i, v := range a.values {
			out.values[i] = op(v, b.values[i])
		}
		return out, nil
	}
}

// Equal reports whether two quantities have the same shape, compatible
// units, and exactly equal magnitudes once both are in base units.
func (q Quantity) Equal(o Quantity) bool {
	if !q.unit.Compatible(o.unit) || len(q.values) != len(o.values) || q.scalar != o.scalar {
		return false
	}
	a, b := q.ToBase(), o.ToBase()
	for i := range a.values {
		if a.values[i] != b.values[i] {
			return false
		}
	}
	return true
}

// ApproxEqual is Equal under a relative tolerance, for magnitudes that
// pick up rounding during conversion.
func (q Quantity) ApproxEqual(o Quantity, tol float64) bool {
	if !q.unit.Compatible(o.unit) || len(q.values) != len(o.values) {
		return false
	}
	a, b := q.ToBase(), o.ToBase()
	for i := range a.values {
		diff := math.Abs(a.values[i] - b.values[i])
		scale := math.Max(1, math.Max(math.Abs(a.values[i]), math.Abs(b.values[i])))
		if diff > tol*scale {
			return false
		}
	}
	return true
}

// String renders the quantity as "1.5 MHz" or "[0.5 0.5] um"; the unit
// suffix is dropped for dimensionless quantities.
func (q Quantity) String() string {
	var val string
	if q.scalar && len(q.values) == 1 {
		val = strconv.FormatFloat(q.values[0], 'g', -1, 64)
	} else {
		parts := make([]string, len(q.values))
		for i, v := range q.values {
			parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		val = "[" + strings.Join(parts, " ") + "]"
	}
	if q.unit.Symbol == "" {
		return val
	}
	return val + " " + q.unit.Symbol
}
