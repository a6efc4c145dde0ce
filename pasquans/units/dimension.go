package units

import (
	"fmt"
	"strings"
)

// Dimensionality is the exponent vector of a quantity over the base
// dimensions of the unit table. Frequency is Time^-1. Angles carry no
// dimension (the radian maps to 1), so hertz and rad/s share a
// dimensionality and convert linearly into each other.
type Dimensionality struct {
	Length int
	Time   int
}

// Named dimensionalities backends use to validate physical inputs.
var (
	Dimensionless = Dimensionality{}
	Length        = Dimensionality{Length: 1}
	Time          = Dimensionality{Time: 1}
	Frequency     = Dimensionality{Time: -1}

	// Angle aliases Dimensionless: plane angles are pure ratios.
	Angle = Dimensionality{}
)

// IsDimensionless reports whether every exponent is zero.
func (d Dimensionality) IsDimensionless() bool {
	return d == Dimensionality{}
}

// Mul returns the dimensionality of a product of quantities.
func (d Dimensionality) Mul(o Dimensionality) Dimensionality {
	return Dimensionality{Length: d.Length + o.Length, Time: d.Time + o.Time}
}

// Div returns the dimensionality of a quotient of quantities.
func (d Dimensionality) Div(o Dimensionality) Dimensionality {
	return Dimensionality{Length: d.Length - o.Length, Time: d.Time - o.Time}
}

// String renders like "[length]" or "1/[time]"; the zero value renders as
// "[dimensionless]".
func (d Dimensionality) String() string {
	var num, den []string
	part := func(parts *[]string, name string, exp int) {
		switch {
		case exp == 1:
			*parts = append(*parts, "["+name+"]")
		case exp > 1:
			*parts = append(*parts, fmt.Sprintf("[%s]^%d", name, exp))
		}
	}
	part(&num, "length", d.Length)
	part(&num, "time", d.Time)
	part(&den, "length", -d.Length)
	part(&den, "time", -d.Time)
	switch {
	case len(num) == 0 && len(den) == 0:
		return "[dimensionless]"
	case len(den) == 0:
		return strings.Join(num, "*")
	case len(num) == 0:
		return "1/" + strings.Join(den, "*")
	default:
		return strings.Join(num, "*") + "/" + strings.Join(den, "*")
	}
}
