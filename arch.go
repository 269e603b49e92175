// Package arch generates pointed (gothic) arch profiles.
//
// A profile is built from two mirrored circular arcs of equal radius whose
// centers are pulled apart along the base line by the pointiness factor.
// The arcs meet at the apex. Construction happens in unit radius space and
// the result is then scaled so that its horizontal extent equals the requested width.
// The profile is centered on x=0 with its base on y=0.
package arch

import (
	"fmt"
	"math"

	"github.com/soypat/arch/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// Parameters defines a pointed arch.
type Parameters struct {
	// Width is the final horizontal extent of the arch. Must be positive.
	Width float64 `json:"width"`
	// Pointiness is 0 for a semicircular arch and approaches 1 for a
	// tall lancet arch. Values outside [0, MaxPointiness] are clamped.
	Pointiness float64 `json:"pointiness"`
	// Vertices is the total number of profile points including the apex.
	// Values below MinVertices are raised. Even counts yield one point less.
	Vertices int `json:"vertex_count"`
}

// DefaultParameters returns a 2 unit wide semicircular arch with 9 vertices.
func DefaultParameters() Parameters {
	return Parameters{
		Width:      2.0,
		Pointiness: 0.0,
		Vertices:   9,
	}
}

// Clamped returns a copy of p with pointiness and vertex count brought into their usable range.
// Width is left untouched since an invalid width is an error, not a shape choice.
func (p Parameters) Clamped() Parameters {
	p.Pointiness = Clamp(p.Pointiness, 0, MaxPointiness)
	if p.Vertices < MinVertices {
		p.Vertices = MinVertices
	}
	return p
}

// HalfCount returns the number of points sampled on each arc, apex excluded.
func (p Parameters) HalfCount() int {
	return (p.Clamped().Vertices - 1) / 2
}

// Validate checks the parameters that are rejected rather than clamped.
func (p Parameters) Validate() error {
	if !(p.Width > 0) || !isFinite(p.Width) {
		return fmt.Errorf("%w: %g", ErrInvalidWidth, p.Width)
	}
	if math.IsNaN(p.Pointiness) {
		return ErrInvalidPointiness
	}
	if p.Vertices > VertexLimit {
		return fmt.Errorf("%w: %d exceeds %d", ErrTooManyVertices, p.Vertices, VertexLimit)
	}
	return nil
}

// Generate returns the profile defined by p. See [Generate].
func (p Parameters) Generate() (Profile, error) {
	if err := p.Validate(); err != nil {
		return Profile{}, err
	}
	p = p.Clamped()
	arc := newNormalizedArc(p.Pointiness)
	pts := arc.assemble(p.HalfCount())

	// Scale to final width.
	bb := pts.Bounds()
	current := bb.Size().X
	if !(current > tolerance) {
		return Profile{}, fmt.Errorf("%w: constructed profile has no horizontal extent (%g)", ErrInvalidWidth, current)
	}
	scale := p.Width / current
	if !(scale > 0) || !isFinite(scale) {
		return Profile{}, fmt.Errorf("%w: %g cannot be reached from unit construction", ErrInvalidWidth, p.Width)
	}
	pts.Scale(scale)
	if sz := pts.Bounds().Size(); !(sz.X > 0) || !isFinite(sz.X) || !isFinite(sz.Y) {
		return Profile{}, fmt.Errorf("%w: %g yields a non-finite profile", ErrInvalidWidth, p.Width)
	}
	return Profile{pts: pts, params: p}, nil
}

// Generate returns the ordered points of a pointed arch of the given width.
// The sequence runs from the right base corner up to the apex and down to
// the left base corner, so it can be drawn as a single open polyline.
// Its length is 2*((vertices-1)/2)+1 after vertices is raised to at least 3.
//
// Pointiness is clamped to [0, MaxPointiness]. A width that is not a
// positive finite number, or one so extreme that the scaled points would
// overflow or vanish, yields ErrInvalidWidth and no points. More than
// VertexLimit vertices yields ErrTooManyVertices.
func Generate(width, pointiness float64, vertices int) (Profile, error) {
	return Parameters{
		Width:      width,
		Pointiness: pointiness,
		Vertices:   vertices,
	}.Generate()
}

// normalizedArc is the unit radius construction of a pointed arch.
// The left circle's arc forms the right leg of the arch and vice versa.
type normalizedArc struct {
	leftCenter  r2.Vec
	rightCenter r2.Vec
	apex        r2.Vec
	r           float64 // radius of both circles
	d           float64 // center offset from the axis
	alpha       float64 // angular sweep of each arc
}

// newNormalizedArc expects pointiness already clamped.
func newNormalizedArc(pointiness float64) normalizedArc {
	const r = 1.0
	d := r * pointiness
	h := math.Sqrt(r*r - d*d)
	return normalizedArc{
		leftCenter:  r2.Vec{X: -d},
		rightCenter: r2.Vec{X: d},
		apex:        r2.Vec{Y: h},
		r:           r,
		d:           d,
		alpha:       math.Acos(d / r),
	}
}

// assemble samples half points on each arc and returns them in traversal
// order: left circle arc (base to apex), apex, right circle arc (apex to base).
func (a normalizedArc) assemble(half int) d2.Set {
	pts := make(d2.Set, 0, 2*half+1)
	for i := 0; i < half; i++ {
		t := float64(i) / float64(half)
		pts = append(pts, a.leftPoint(t))
	}
	pts = append(pts, a.apex)
	right := make(d2.Set, half)
	for i := range right {
		t := float64(i) / float64(half)
		right[i] = a.rightPoint(t)
	}
	right.Reverse()
	return append(pts, right...)
}

// leftPoint sweeps counter-clockwise from angle 0 at t=0 towards alpha.
func (a normalizedArc) leftPoint(t float64) r2.Vec {
	return r2.Add(a.leftCenter, d2.Pol{R: a.r, Theta: a.alpha * t}.PolarToCartesian())
}

// rightPoint sweeps clockwise from angle π at t=0 towards π-alpha.
func (a normalizedArc) rightPoint(t float64) r2.Vec {
	return r2.Add(a.rightCenter, d2.Pol{R: a.r, Theta: pi - a.alpha*t}.PolarToCartesian())
}
