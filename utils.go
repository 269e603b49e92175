package arch

import (
	"math"
)

const (
	pi        = math.Pi
	tolerance = 1e-9
)

const (
	// MaxPointiness is the largest pointiness used for construction. At 1 the
	// two generating circles would meet at the opposite edge and the arch
	// would degenerate into a zero width profile.
	MaxPointiness = 0.999
	// MinVertices is the smallest vertex count that describes two legs and an apex.
	MinVertices = 3
	// MaxVertices is the upper end of the vertex range offered to users by host integrations.
	// Generate itself does not enforce it.
	MaxVertices = 128
	// VertexLimit is the largest vertex count Generate accepts.
	VertexLimit = 1 << 24
)

// Clamp x between a and b, assume a <= b
func Clamp(x, a, b float64) float64 {
	if x < a {
		return a
	}
	if x > b {
		return b
	}
	return x
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
