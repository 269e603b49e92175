package must2

import (
	"math"

	"github.com/soypat/arch"
	"gonum.org/v1/gonum/spatial/r2"
)

// PointedArch returns the region enclosed by a pointed arch profile and its
// base line. It panics with arch.ErrInvalidWidth (wrapped) on a bad width.
func PointedArch(width, pointiness float64, vertices int) arch.SDF2 {
	return ArchRegion(MustProfile(arch.Parameters{
		Width:      width,
		Pointiness: pointiness,
		Vertices:   vertices,
	}))
}

// MustProfile generates the profile for p and panics on error.
func MustProfile(p arch.Parameters) arch.Profile {
	profile, err := p.Generate()
	if err != nil {
		panic(err)
	}
	return profile
}

// archRegion is the area under a pointed arch. Only the right half of the
// boundary is stored; points are folded onto x >= 0 before evaluation.
type archRegion struct {
	// chain starts at the base midpoint, runs along the base to the right
	// corner and up the right leg to the apex.
	chain []r2.Vec
	bb    r2.Box
}

// ArchRegion returns the SDF2 of the area bounded by the profile, closed
// by the straight segment joining its two base corners.
func ArchRegion(profile arch.Profile) arch.SDF2 {
	if profile.Len() == 0 {
		panic("empty arch profile")
	}
	half := profile.RightHalf()
	chain := make([]r2.Vec, 0, len(half)+1)
	chain = append(chain, r2.Vec{})
	chain = append(chain, half...)
	for i := 1; i < len(chain); i++ {
		if chain[i] == chain[i-1] {
			panic("arch profile has coincident consecutive points")
		}
	}
	return &archRegion{chain: chain, bb: profile.Bounds()}
}

// Evaluate returns the signed distance from p to the arch boundary.
// The axis segment joining apex and base midpoint is not part of the
// boundary and never lies right of a folded point, so it is skipped.
func (a *archRegion) Evaluate(p r2.Vec) float64 {
	p.X = math.Abs(p.X)
	dd := r2.Norm2(r2.Sub(p, a.chain[0]))
	inside := false
	for i := 1; i < len(a.chain); i++ {
		v0, v1 := a.chain[i-1], a.chain[i]
		dd = math.Min(dd, segmentDist2(p, v0, v1))
		// Even-odd rule with a ray cast towards +x.
		if (v0.Y > p.Y) != (v1.Y > p.Y) {
			xcross := v0.X + (p.Y-v0.Y)*(v1.X-v0.X)/(v1.Y-v0.Y)
			if p.X < xcross {
				inside = !inside
			}
		}
	}
	d := math.Sqrt(dd)
	if inside {
		return -d
	}
	return d
}

func (a *archRegion) Bounds() r2.Box {
	return a.bb
}

// segmentDist2 returns the squared distance from p to segment v0-v1.
func segmentDist2(p, v0, v1 r2.Vec) float64 {
	e := r2.Sub(v1, v0)
	w := r2.Sub(p, v0)
	t := arch.Clamp(r2.Dot(w, e)/r2.Norm2(e), 0, 1)
	return r2.Norm2(r2.Sub(w, r2.Scale(t, e)))
}
