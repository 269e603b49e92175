package glsdf2

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/soypat/arch"
	"github.com/soypat/arch/form2/must2"
	"github.com/soypat/glgl/math/ms2"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestNewPointedArchErrors(t *testing.T) {
	if _, err := NewPointedArch(arch.Profile{}); err == nil {
		t.Error("expected error for empty profile")
	}
	for _, width := range []float64{1e39, 1e-50} {
		profile, err := arch.Generate(width, 0.5, 9)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := NewPointedArch(profile); err == nil {
			t.Errorf("width %g: expected error for profile outside float32 precision", width)
		}
	}
}

func TestPointedArchCPU(t *testing.T) {
	const n = 16
	for _, pt := range []float64{0, 0.4, 0.9} {
		profile, err := arch.Generate(2, pt, 21)
		if err != nil {
			t.Fatal(err)
		}
		ref := must2.ArchRegion(profile)
		shader, err := NewPointedArch(profile)
		if err != nil {
			t.Fatal(err)
		}
		bb := shader.Bounds()
		pbb := profile.Bounds()
		if math.Abs(float64(bb.Min.X)-pbb.Min.X) > 1e-6 || math.Abs(float64(bb.Max.Y)-pbb.Max.Y) > 1e-6 {
			t.Errorf("pointiness=%g: shader bounds %v, profile bounds %v", pt, bb, pbb)
		}
		pos := make([]ms2.Vec, 0, n*n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				pos = append(pos, ms2.Vec{
					X: -1.5 + 3*float32(i)/(n-1),
					Y: -0.5 + 3*float32(j)/(n-1),
				})
			}
		}
		dist := make([]float32, len(pos))
		err = shader.Evaluate(pos, dist, nil)
		if err != nil {
			t.Fatal(err)
		}
		for i, p := range pos {
			want := ref.Evaluate(r2.Vec{X: float64(p.X), Y: float64(p.Y)})
			if math.Abs(float64(dist[i])-want) > 1e-4 {
				t.Errorf("pointiness=%g: Evaluate(%v) got %g, want %g", pt, p, dist[i], want)
			}
		}
	}
}

func TestEvaluateBufferMismatch(t *testing.T) {
	profile, _ := arch.Generate(2, 0, 9)
	shader, err := NewPointedArch(profile)
	if err != nil {
		t.Fatal(err)
	}
	if err := shader.Evaluate(make([]ms2.Vec, 3), make([]float32, 2), nil); err == nil {
		t.Error("expected error for mismatched buffers")
	}
}

func TestWriteShader(t *testing.T) {
	profile, err := arch.Generate(2, 0.5, 9)
	if err != nil {
		t.Fatal(err)
	}
	shader, err := NewPointedArch(profile)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	n, err := WriteShader(&buf, shader, nil)
	if err != nil {
		t.Fatal(err)
	}
	if n != buf.Len() {
		t.Errorf("wrote %d bytes, reported %d", buf.Len(), n)
	}
	src := buf.String()
	const header = "float parch2p_0p5_9_"
	if !strings.HasPrefix(src, header) || !strings.Contains(src, "(vec2 p) {\np.x = abs(p.x);\n") {
		t.Errorf("shader header mismatch, got %q", src[:64])
	}
	// Base midpoint, then right half up to the apex.
	if got, want := strings.Count(src, "vec2("), profile.ApexIndex()+2; got != want {
		t.Errorf("got %d vec2 literals, want %d", got, want)
	}
	if !strings.Contains(src, "vec2[](vec2(0.,0.),vec2(1.,0.),") {
		t.Errorf("shader does not start at the base midpoint: %q", src)
	}
	if !strings.HasSuffix(src, "return inside ? -sqrt(d) : sqrt(d);\n}\n\n") {
		t.Errorf("unexpected shader tail: %q", src[len(src)-32:])
	}
	if _, err := WriteShader(&buf, nil, nil); err == nil {
		t.Error("expected error for nil shader")
	}
}

func TestShaderNameUnique(t *testing.T) {
	var names []string
	for _, pt := range []float64{0.5, 0.5000002, 0.5000004} {
		profile, err := arch.Generate(2, pt, 9)
		if err != nil {
			t.Fatal(err)
		}
		shader, err := NewPointedArch(profile)
		if err != nil {
			t.Fatal(err)
		}
		name := string(shader.AppendShaderName(nil))
		if !strings.HasPrefix(name, "parch2p_0p5_9_") {
			t.Errorf("unexpected name %q", name)
		}
		for _, other := range names {
			if name == other {
				t.Errorf("pointiness %g reuses shader name %q", pt, name)
			}
		}
		names = append(names, name)
	}
	// Same profile, same name.
	profile, _ := arch.Generate(2, 0.5, 9)
	shader, _ := NewPointedArch(profile)
	if got := string(shader.AppendShaderName(nil)); got != names[0] {
		t.Errorf("name not deterministic: %q != %q", got, names[0])
	}
}

func TestFappend(t *testing.T) {
	for _, test := range []struct {
		v    float32
		want string
	}{
		{v: 2, want: "2p"},
		{v: 0.5, want: "0p5"},
		{v: -1.25, want: "n1p25"},
		{v: 0.999, want: "0p999"},
	} {
		if got := string(fappend(nil, test.v, 'n', 'p')); got != test.want {
			t.Errorf("fappend(%g) got %q, want %q", test.v, got, test.want)
		}
	}
	if got := string(fappend(nil, -3.5, '-', '.')); got != "-3.5" {
		t.Errorf("got %q, want -3.5", got)
	}
}
