package units

import (
	"fmt"
	"math"
	"strings"
)

// Unit is an entry of the unit table: a symbol, a multiplicative factor
// to the base (SI) magnitude of its dimensionality, and that
// dimensionality. The zero Symbol denotes dimensionless.
type Unit struct {
	Symbol string
	Factor float64
	Dim    Dimensionality
}

// Compatible reports whether two units share a dimensionality, i.e.
// whether conversion between them is defined.
func (u Unit) Compatible(o Unit) bool {
	return u.Dim == o.Dim
}

func (u Unit) String() string {
	if u.Symbol == "" {
		return "dimensionless"
	}
	return u.Symbol
}

// unitTable maps symbols and aliases to units. Factors are relative to
// the SI base of each dimension (meter, second, 1/second).
var unitTable = map[string]Unit{}

// register indexes one unit under its canonical symbol (first) and any
// aliases.
func register(factor float64, dim Dimensionality, symbols ...string) {
	u := Unit{Symbol: symbols[0], Factor: factor, Dim: dim}
	for _, s := range symbols {
		unitTable[s] = u
	}
}

func init() {
	register(1, Dimensionless, "", "1", "dimensionless")

	register(1, Angle, "rad", "radian", "radians")
	register(1e-3, Angle, "mrad")
	register(math.Pi/180, Angle, "deg", "degree", "degrees")

	register(1, Length, "m", "meter", "meters", "metre", "metres")
	register(1e3, Length, "km")
	register(1e-2, Length, "cm")
	register(1e-3, Length, "mm")
	register(1e-6, Length, "um", "µm", "μm", "micrometer", "micrometers", "micron", "microns")
	register(1e-9, Length, "nm")

	register(1, Time, "s", "sec", "second", "seconds")
	register(1e-3, Time, "ms")
	register(1e-6, Time, "us", "µs", "μs", "microsecond", "microseconds")
	register(1e-9, Time, "ns")
	register(60, Time, "min", "minute", "minutes")

	register(1, Frequency, "Hz", "hertz")
	register(1e3, Frequency, "kHz")
	register(1e6, Frequency, "MHz", "megahertz")
	register(1e9, Frequency, "GHz")
}

// Parse resolves a unit expression. Plain symbols come straight from the
// unit table; one level of composition with "*" and "/" is supported,
// e.g. "rad/s", "1/s", "um*MHz". Whitespace around symbols is ignored.
func Parse(expr string) (Unit, error) {
	expr = strings.TrimSpace(expr)
	if u, ok := unitTable[expr]; ok {
		return u, nil
	}
	numExpr, denExpr, hasDen := strings.Cut(expr, "/")
	num, err := parseProduct(numExpr)
	if err != nil {
		return Unit{}, err
	}
	if !hasDen {
		return num, nil
	}
	den, err := parseProduct(denExpr)
	if err != nil {
		return Unit{}, err
	}
	numSymbol := num.Symbol
	if numSymbol == "" {
		numSymbol = "1"
	}
	return Unit{
		Symbol: numSymbol + "/" + den.Symbol,
		Factor: num.Factor / den.Factor,
		Dim:    num.Dim.Div(den.Dim),
	}, nil
}

// MustParse is Parse for statically known expressions; panics on failure.
func MustParse(expr string) Unit {
	u, err := Parse(expr)
	if err != nil {
		panic(err)
	}
	return u
}

func parseProduct(expr string) (Unit, error) {
	out := Unit{Factor: 1}
	for i, partExpr := range strings.Split(expr, "*") {
		u, err := lookup(partExpr)
		if err != nil {
			return Unit{}, err
		}
		if i == 0 {
			out.Symbol = u.Symbol
		} else {
			out.Symbol += "*" + u.Symbol
		}
		out.Factor *= u.Factor
		out.Dim = out.Dim.Mul(u.Dim)
	}
	return out, nil
}

func lookup(symbol string) (Unit, error) {
	symbol = strings.TrimSpace(symbol)
	if u, ok := unitTable[symbol]; ok {
		return u, nil
	}
	return Unit{}, fmt.Errorf("%w: %q", ErrUnknownUnit, symbol)
}

// baseUnit returns the SI unit of a dimensionality: the named base for
// the table's dimensions, a synthesized factor-1 unit otherwise.
func baseUnit(d Dimensionality) Unit {
	switch d {
	case Dimensionless:
		return unitTable[""]
	case Length:
		return unitTable["m"]
	case Time:
		return unitTable["s"]
	case Frequency:
		return unitTable["Hz"]
	}
	return Unit{Symbol: baseSymbol(d), Factor: 1, Dim: d}
}

// baseSymbol synthesizes an SI symbol like "m*s" or "m/s^2" for derived
// dimensionalities outside the fixed table.
func baseSymbol(d Dimensionality) string {
	var num, den []string
	part := func(parts *[]string, sym string, exp int) {
		switch {
		case exp == 1:
			*parts = append(*parts, sym)
		case exp > 1:
			*parts = append(*parts, fmt.Sprintf("%s^%d", sym, exp))
		}
	}
	part(&num, "m", d.Length)
	part(&num, "s", d.Time)
	part(&den, "m", -d.Length)
	part(&den, "s", -d.Time)
	switch {
	case len(num) == 0 && len(den) == 0:
		return ""
	case len(den) == 0:
		return strings.Join(num, "*")
	case len(num) == 0:
		return "1/" + strings.Join(den, "*")
	default:
		return strings.Join(num, "*") + "/" + strings.Join(den, "*")
	}
}
