package flight

import (
	"math"
	"slices"
	"testing"
	"time"

	simcore "seaplane/internal/core"
)

func buildRunPath(seed uint32, w, h int) *Path {
	return NewRun(DefaultConfig(), seed, simcore.Size{W: w, H: h}, AssetCatalog{}).Path
}

func TestPathSeed12345Geometry(t *testing.T) {
	p := buildRunPath(12345, 800, 600)

	if p.Left.X != 180 {
		t.Fatalf("expected left pier at x=180, got %v", p.Left.X)
	}
	if p.SeaY != 456 {
		t.Fatalf("expected sea level 456, got %v", p.SeaY)
	}
	if p.StartY != p.EndY || p.StartY != 449 {
		t.Fatalf("expected start and end altitude 449, got %v and %v", p.StartY, p.EndY)
	}
	if math.Abs(p.Right.X-4556.782906148583) > 1e-6 {
		t.Fatalf("unexpected right pier x %.9f", p.Right.X)
	}

	knots := p.Knots()
	if len(knots) != 13 {
		t.Fatalf("expected 13 knots, got %d", len(knots))
	}
	if len(knots)%2 != 1 || len(knots) < 11 {
		t.Fatalf("knot count must be odd and at least 11, got %d", len(knots))
	}
	if knots[0].Y != knots[len(knots)-1].Y {
		t.Fatalf("first and last knot differ: %v vs %v", knots[0].Y, knots[len(knots)-1].Y)
	}

	wantU := []float64{0, 0.10106955123540268, 0.19478578576210237, 0.2903003108773727, 0.390179202636036,
		0.4518535511221642, 0.5212495290061925, 0.5999644953757839, 0.6546924530140414,
		0.7202654433621472, 0.8242041274221248, 0.9134082660921585, 1}
	wantY := []float64{449, 336, 336, 244.77240521899122, 336, 61.250585503288505, 201.4467159631172,
		60, 157.6329977525586, 74.48726211211385, 179.8646936619158, 97.93442361696519, 449}
	for i, k := range knots {
		if math.Abs(k.U-wantU[i]) > 1e-9 {
			t.Fatalf("knot %d u = %.17f, want %.17f", i, k.U, wantU[i])
		}
		if math.Abs(k.Y-wantY[i]) > 1e-9 {
			t.Fatalf("knot %d y = %.17f, want %.17f", i, k.Y, wantY[i])
		}
	}
}

func TestPathDeterministic(t *testing.T) {
	samples := []float64{0, 0.013, 0.25, 0.5, 0.777, 0.999, 1}
	for seed := uint32(0); seed < 50; seed++ {
		a := BuildPath(1024, 768, seed, 7.5, 7)
		b := BuildPath(1024, 768, seed, 7.5, 7)
		if !slices.Equal(a.Knots(), b.Knots()) {
			t.Fatalf("seed %d: knots differ between builds", seed)
		}
		for _, u := range samples {
			if a.XAtU(u) != b.XAtU(u) || a.YAtU(u) != b.YAtU(u) {
				t.Fatalf("seed %d: samples differ at u=%v", seed, u)
			}
		}
	}
}

func TestPathStaysWithinBounds(t *testing.T) {
	for seed := uint32(1); seed < 200; seed++ {
		p := BuildPath(800, 600, seed*2654435761, 10, 7)
		for i := 0; i <= 1000; i++ {
			u := float64(i) / 1000
			y := p.YAtU(u)
			if y < p.YMin || y > p.PierY() {
				t.Fatalf("seed %d: y(%v)=%v outside [%v, %v]", seed, u, y, p.YMin, p.PierY())
			}
		}
	}
}

func TestPathKnotsIncreaseInU(t *testing.T) {
	for seed := uint32(0); seed < 100; seed++ {
		knots := BuildPath(640, 480, seed, 1, 7).Knots()
		for i := 1; i < len(knots); i++ {
			if knots[i].U < knots[i-1].U {
				t.Fatalf("seed %d: knot %d u %v before %v", seed, i, knots[i].U, knots[i-1].U)
			}
		}
		if knots[len(knots)-1].U != 1 {
			t.Fatalf("seed %d: last knot at u=%v", seed, knots[len(knots)-1].U)
		}
	}
}

func TestXAtULinearAndInvertible(t *testing.T) {
	p := BuildPath(800, 600, 99, 3, 7)
	if p.XAtU(0) != p.Left.X || p.XAtU(1) != p.Right.X {
		t.Fatalf("expected x to span the piers, got %v..%v", p.XAtU(0), p.XAtU(1))
	}
	for _, u := range []float64{0.1, 0.42, 0.9} {
		if got := p.UAtX(p.XAtU(u)); math.Abs(got-u) > 1e-12 {
			t.Fatalf("UAtX(XAtU(%v)) = %v", u, got)
		}
	}
}

func TestFlightScaleBelowOneIsIgnored(t *testing.T) {
	a := BuildPath(800, 600, 5, 0.2, 7)
	b := BuildPath(800, 600, 5, 1, 7)
	if a.Right.X != b.Right.X {
		t.Fatalf("expected scale < 1 to clamp to 1, got %v vs %v", a.Right.X, b.Right.X)
	}
}

func TestRunDurationRange(t *testing.T) {
	for seed := uint32(0); seed < 300; seed++ {
		d := NewRun(DefaultConfig(), seed, simcore.Size{W: 800, H: 600}, AssetCatalog{}).Duration
		if d < 15*time.Second || d >= 30*time.Second {
			t.Fatalf("seed %d: duration %s outside [15s, 30s)", seed, d)
		}
	}
}
