package glsdf2

import (
	"encoding/binary"
	"errors"
	"hash/fnv"
	"math"
	"strconv"

	"github.com/chewxy/math32"
	"github.com/soypat/arch"
	"github.com/soypat/glgl/math/ms2"
	"github.com/soypat/glgl/math/ms3"
)

// pointedArch folds points onto x >= 0 and measures them against the
// right half of the arch boundary.
type pointedArch struct {
	// chain runs from the base midpoint along the base to the right corner
	// and up the right leg to the apex.
	chain  []ms2.Vec
	params arch.Parameters
	hash   uint64
}

// NewPointedArch returns the shader of the region enclosed by the profile
// and its base line. Coordinates are rounded to float32.
func NewPointedArch(profile arch.Profile) (Shader2D, error) {
	if profile.Len() == 0 {
		return nil, errors.New("empty arch profile")
	}
	half := profile.RightHalf()
	chain := make([]ms2.Vec, 1, len(half)+1)
	for _, p := range half {
		v := ms2.Vec{X: float32(p.X), Y: float32(p.Y)}
		if math32.IsInf(v.X, 0) || math32.IsInf(v.Y, 0) {
			return nil, errors.New("arch profile exceeds float32 range")
		}
		if v == chain[len(chain)-1] {
			return nil, errors.New("arch profile points coincide in float32")
		}
		chain = append(chain, v)
	}
	h := fnv.New64a()
	var buf [8]byte
	for _, v := range chain {
		binary.LittleEndian.PutUint32(buf[:4], math.Float32bits(v.X))
		binary.LittleEndian.PutUint32(buf[4:], math.Float32bits(v.Y))
		h.Write(buf[:])
	}
	return &pointedArch{
		chain:  chain,
		params: profile.Parameters(),
		hash:   h.Sum64(),
	}, nil
}

// AppendShaderName writes the rounded parameters for readability followed
// by a hash of the emitted vertices, which keeps names of arches that only
// differ beyond the rounding apart.
func (a *pointedArch) AppendShaderName(b []byte) []byte {
	b = append(b, "parch"...)
	b = fappend(b, float32(a.params.Width), 'n', 'p')
	b = append(b, '_')
	b = fappend(b, float32(a.params.Pointiness), 'n', 'p')
	b = append(b, '_')
	b = strconv.AppendInt(b, int64(a.params.Vertices), 10)
	b = append(b, '_')
	b = strconv.AppendUint(b, a.hash, 32)
	return b
}

func (a *pointedArch) AppendShaderBody(b []byte) []byte {
	b = append(b, "p.x = abs(p.x);\nvec2[] v=vec2[]("...)
	for i, v := range a.chain {
		if i > 0 {
			b = append(b, ',')
		}
		b = append(b, "vec2("...)
		b = fappend(b, v.X, '-', '.')
		b = append(b, ',')
		b = fappend(b, v.Y, '-', '.')
		b = append(b, ')')
	}
	b = append(b, ");\n"...)
	b = append(b, `const int num = v.length();
float d = dot(p-v[0],p-v[0]);
bool inside = false;
for( int i=1; i<num; i++ )
{
	vec2 e = v[i] - v[i-1];
	vec2 w = p - v[i-1];
	vec2 b = w - e*clamp( dot(w,e)/dot(e,e), 0.0, 1.0 );
	d = min( d, dot(b,b) );
	if( (v[i-1].y>p.y) != (v[i].y>p.y) && p.x < v[i-1].x + (p.y-v[i-1].y)*e.x/e.y ) inside = !inside;
}
return inside ? -sqrt(d) : sqrt(d);`...)
	return b
}

func (a *pointedArch) Bounds() ms2.Box {
	max := a.chain[0]
	for _, v := range a.chain[1:] {
		max = ms2.MaxElem(max, v)
	}
	return ms2.Box{Min: ms2.Vec{X: -max.X}, Max: max}
}

// Evaluate runs the shader body on the CPU.
func (a *pointedArch) Evaluate(pos []ms2.Vec, dist []float32, userData any) error {
	if len(pos) != len(dist) {
		return errors.New("position and distance buffers differ in length")
	}
	v := a.chain
	for i, p := range pos {
		p.X = math32.Abs(p.X)
		d := ms2.Norm2(ms2.Sub(p, v[0]))
		inside := false
		for j := 1; j < len(v); j++ {
			e := ms2.Sub(v[j], v[j-1])
			w := ms2.Sub(p, v[j-1])
			b := ms2.Sub(w, ms2.Scale(ms3.Clamp(ms2.Dot(w, e)/ms2.Norm2(e), 0, 1), e))
			d = math32.Min(d, ms2.Norm2(b))
			if (v[j-1].Y > p.Y) != (v[j].Y > p.Y) && p.X < v[j-1].X+(p.Y-v[j-1].Y)*e.X/e.Y {
				inside = !inside
			}
		}
		dist[i] = math32.Sqrt(d)
		if inside {
			dist[i] = -dist[i]
		}
	}
	return nil
}
