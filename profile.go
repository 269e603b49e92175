package arch

import (
	"encoding/json"

	"github.com/soypat/arch/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Profile is the ordered point sequence of a pointed arch. Order is
// significant: consecutive points are joined to form the silhouette.
// The zero value is an empty profile.
type Profile struct {
	pts    d2.Set
	params Parameters
}

// Parameters returns the clamped parameters the profile was generated with.
func (p Profile) Parameters() Parameters { return p.params }

// Len returns the number of points in the profile.
func (p Profile) Len() int { return len(p.pts) }

// At returns the i'th point of the profile.
func (p Profile) At(i int) r2.Vec { return p.pts[i] }

// Points returns a copy of the profile points in traversal order.
func (p Profile) Points() []r2.Vec {
	return append([]r2.Vec(nil), p.pts...)
}

// ApexIndex returns the index of the apex, which is the middle point.
func (p Profile) ApexIndex() int { return len(p.pts) / 2 }

// RightHalf returns a copy of the points from the right base corner up to
// and including the apex. The left half is its mirror image about x=0.
func (p Profile) RightHalf() []r2.Vec {
	if len(p.pts) == 0 {
		return nil
	}
	return append([]r2.Vec(nil), p.pts[:p.ApexIndex()+1]...)
}

// Apex returns the highest point of the arch.
func (p Profile) Apex() r2.Vec { return p.pts[p.ApexIndex()] }

// Bounds returns the bounding box of the profile.
func (p Profile) Bounds() r2.Box {
	if len(p.pts) == 0 {
		return r2.Box{}
	}
	return r2.Box(p.pts.Bounds())
}

// Width returns the horizontal extent of the profile.
func (p Profile) Width() float64 {
	return d2.Box(p.Bounds()).Size().X
}

// Height returns the apex height above the base line.
func (p Profile) Height() float64 {
	return d2.Box(p.Bounds()).Size().Y
}

// Vec3 returns the profile points on the z=0 plane.
func (p Profile) Vec3() []r3.Vec {
	v := make([]r3.Vec, len(p.pts))
	for i, pt := range p.pts {
		v[i] = r3.Vec{X: pt.X, Y: pt.Y}
	}
	return v
}

// Homogeneous returns the profile as homogeneous poly spline control
// points {x, y, 0, 1}.
func (p Profile) Homogeneous() [][4]float64 {
	v := make([][4]float64, len(p.pts))
	for i, pt := range p.pts {
		v[i] = [4]float64{pt.X, pt.Y, 0, 1}
	}
	return v
}

type jsonPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// MarshalJSON encodes the profile as an ordered array of {"x","y"} objects.
func (p Profile) MarshalJSON() ([]byte, error) {
	v := make([]jsonPoint, len(p.pts))
	for i, pt := range p.pts {
		v[i] = jsonPoint{X: pt.X, Y: pt.Y}
	}
	return json.Marshal(v)
}
