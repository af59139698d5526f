package physics

import "errors"

var (
	// ErrInvalidMaterial indicates a material with non-positive density or
	// specific heat, or a missing material.
	ErrInvalidMaterial = errors.New("physics: invalid material")

	// ErrDegenerateRod indicates a rod whose mass is not positive.
	ErrDegenerateRod = errors.New("physics: degenerate rod (mass <= 0)")
)
