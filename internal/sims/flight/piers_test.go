package flight

import "testing"

func TestFakePiersNeverOverlap(t *testing.T) {
	for seed := uint32(0); seed < 300; seed++ {
		p := BuildPath(800, 600, seed, 6, 7)
		piers := BuildFakePiers(p, seed, 6, 120)
		if len(piers) > 6 {
			t.Fatalf("seed %d: expected at most 6 decoys, got %d", seed, len(piers))
		}
		for i := range piers {
			for j := i + 1; j < len(piers); j++ {
				if piers[i].Overlaps(piers[j], fakePierGapX, fakePierGapY) {
					t.Fatalf("seed %d: decoys %d and %d overlap: %+v %+v", seed, i, j, piers[i], piers[j])
				}
			}
		}
	}
}

func TestFakePiersKeepAwayFromRealPiers(t *testing.T) {
	for seed := uint32(0); seed < 100; seed++ {
		p := BuildPath(800, 600, seed, 6, 7)
		for _, fp := range BuildFakePiers(p, seed, 6, 120) {
			if tooCloseToPier(fp, p.Left) || tooCloseToPier(fp, p.Right) {
				t.Fatalf("seed %d: decoy %+v too close to a real pier", seed, fp)
			}
			if fp.Y < p.PierY()+fp.H || fp.Y > p.SeaY {
				t.Fatalf("seed %d: decoy %+v outside the deck band", seed, fp)
			}
		}
	}
}

func TestFakePiersShortfallIsNotAnError(t *testing.T) {
	// A narrow flight leaves almost no room once both piers are excluded.
	p := BuildPath(400, 600, 1, 1, 7)
	piers := BuildFakePiers(p, 1, 50, 5)
	if len(piers) >= 50 {
		t.Fatalf("expected generation to stop early, got %d decoys", len(piers))
	}
}

func TestOverlapsHonoursGap(t *testing.T) {
	a := FakePier{X: 0, Y: 100, W: 100, H: 18}
	b := FakePier{X: 120, Y: 100, W: 100, H: 18}
	if a.Overlaps(b, 0, 0) {
		t.Fatalf("expected separated rectangles not to overlap")
	}
	if !a.Overlaps(b, 26, 10) {
		t.Fatalf("expected the gap margin to make them overlap")
	}
}
