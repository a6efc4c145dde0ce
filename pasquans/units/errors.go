package units

import "errors"

// Failure conditions of the unit layer. Call sites wrap these with
// context; match with errors.Is.
var (
	// ErrUnknownUnit indicates a unit symbol absent from the unit table.
	ErrUnknownUnit = errors.New("units: unknown unit")

	// ErrDimensionMismatch indicates an operation across incompatible
	// dimensionalities, e.g. converting meters to seconds.
	ErrDimensionMismatch = errors.New("units: dimension mismatch")

	// ErrShapeMismatch indicates elementwise arithmetic between vectors
	// of different lengths.
	ErrShapeMismatch = errors.New("units: shape mismatch")
)
