// Package units provides dimension-checked scalar and vector quantities
// for lattice simulation requests.
//
// A Quantity pairs float64 magnitudes with a Unit drawn from a fixed
// table covering lengths, times, frequencies, and angles. Conversions
// are linear in the table factors: converting a frequency to rad/s does
// not fold in a factor of 2*pi, so 1 MHz becomes 1e6 rad/s. Angles are
// dimensionless, which makes radians, degrees, and bare numbers
// interchangeable after rescaling.
//
// Quantities parse from and render to YAML in three shapes: a scalar
// string like "1.5 MHz", a sequence of bare numbers, and an explicit
// {value|values, unit} mapping.
package units
