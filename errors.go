package arch

import "errors"

var (
	// ErrInvalidWidth is returned when the requested width is not a positive
	// finite number or when the profile cannot be scaled to it in float64.
	ErrInvalidWidth = errors.New("invalid arch width")
	// ErrInvalidPointiness is returned for a NaN pointiness, which cannot be clamped.
	ErrInvalidPointiness = errors.New("invalid arch pointiness")
	// ErrTooManyVertices is returned when the vertex count exceeds VertexLimit.
	ErrTooManyVertices = errors.New("too many arch vertices")
)
