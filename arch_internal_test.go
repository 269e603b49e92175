package arch

import (
	"math"
	"testing"

	"github.com/soypat/arch/internal/d2"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestNormalizedArc(t *testing.T) {
	for _, pt := range []float64{0, 0.2, 0.5, 0.9, MaxPointiness} {
		a := newNormalizedArc(pt)
		// Apex lies on both circles.
		for _, c := range []r2.Vec{a.leftCenter, a.rightCenter} {
			if r := r2.Norm(r2.Sub(a.apex, c)); !scalar.EqualWithinAbsOrRel(r, a.r, 1e-12, 1e-12) {
				t.Errorf("pointiness=%g: apex at distance %g from center %v, want %g", pt, r, c, a.r)
			}
		}
		// Both arcs end at the apex.
		if p := a.leftPoint(1); !d2.EqualWithin(p, a.apex, 1e-12) {
			t.Errorf("pointiness=%g: left arc ends at %v, want apex %v", pt, p, a.apex)
		}
		if p := a.rightPoint(1); !d2.EqualWithin(p, a.apex, 1e-12) {
			t.Errorf("pointiness=%g: right arc ends at %v, want apex %v", pt, p, a.apex)
		}
		if pt == 0 && a.alpha != math.Pi/2 {
			t.Errorf("semicircle sweep got %g, want pi/2", a.alpha)
		}
	}
}

func TestAssembleUnscaled(t *testing.T) {
	a := newNormalizedArc(0.6)
	pts := a.assemble(4)
	if len(pts) != 9 {
		t.Fatalf("got %d points, want 9", len(pts))
	}
	if pts[4] != a.apex {
		t.Errorf("middle point %v is not the apex %v", pts[4], a.apex)
	}
	wantWidth := 2 * (a.r - a.d)
	if got := pts.Bounds().Size().X; !scalar.EqualWithinAbsOrRel(got, wantWidth, 1e-12, 1e-12) {
		t.Errorf("unit space width got %g, want %g", got, wantWidth)
	}
	for i := 0; i < 4; i++ {
		if r := r2.Norm(r2.Sub(pts[i], a.leftCenter)); !scalar.EqualWithinAbsOrRel(r, 1, 1e-12, 1e-12) {
			t.Errorf("point %d off the left circle: r=%g", i, r)
		}
		if r := r2.Norm(r2.Sub(pts[8-i], a.rightCenter)); !scalar.EqualWithinAbsOrRel(r, 1, 1e-12, 1e-12) {
			t.Errorf("point %d off the right circle: r=%g", 8-i, r)
		}
	}
}

func TestClamp(t *testing.T) {
	for _, test := range []struct{ x, want float64 }{
		{-1, 0}, {0, 0}, {0.5, 0.5}, {0.999, 0.999}, {1, 0.999}, {math.Inf(1), 0.999},
	} {
		if got := Clamp(test.x, 0, MaxPointiness); got != test.want {
			t.Errorf("Clamp(%g) got %g, want %g", test.x, got, test.want)
		}
	}
}
