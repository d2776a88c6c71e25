package flight

import (
	"math"

	"seaplane/pkg/core"
)

const (
	fakePierMarginX  = 260.0
	fakePierTopGap   = 46.0
	fakePierTopTight = 18.0
	fakePierSeaGap   = 2.0
	fakePierMinW     = 170.0
	fakePierSpanW    = 180.0
	fakePierGapX     = 26.0
	fakePierGapY     = 10.0
	fakePierKeepAway = 90.0
)

// FakePier is a decoy landing strip. X is the centre; Y is the deck top.
type FakePier struct {
	X, Y float64
	W, H float64
}

// Overlaps reports whether the two rectangles intersect once each is grown
// by gapX horizontally and gapY vertically.
func (a FakePier) Overlaps(b FakePier, gapX, gapY float64) bool {
	ax1, ax2 := a.X-a.W/2, a.X+a.W/2
	bx1, bx2 := b.X-b.W/2, b.X+b.W/2
	return ax1 < bx2+gapX && ax2 > bx1-gapX && a.Y < b.Y+b.H+gapY && a.Y+a.H > b.Y-gapY
}

// BuildFakePiers scatters up to count decoys in the band between the real
// decks and the sea. Generation stops at the first decoy that finds no free
// slot within attempts tries.
func BuildFakePiers(p *Path, seed uint32, count, attempts int) []FakePier {
	rng := core.NewRNG(core.SubSeed(seed, core.SaltPiers))
	deckH := p.Left.Height

	xMin := p.Left.X - fakePierMarginX
	xMax := p.Right.X + fakePierMarginX
	yMin := p.PierY() + deckH + fakePierTopGap
	yMax := p.SeaY - deckH - fakePierSeaGap
	if yMin > yMax {
		yMin = p.PierY() + deckH + fakePierTopTight
	}

	var out []FakePier
	for i := 0; i < count; i++ {
		placed := false
		for try := 0; try < attempts; try++ {
			cand := FakePier{
				W: fakePierMinW + rng.Float()*fakePierSpanW,
				H: deckH,
			}
			cand.X = xMin + (xMax-xMin)*rng.Float()
			cand.Y = yMin + (yMax-yMin)*rng.Float()

			if tooCloseToPier(cand, p.Left) || tooCloseToPier(cand, p.Right) {
				continue
			}
			if overlapsAny(cand, out) {
				continue
			}
			out = append(out, cand)
			placed = true
			break
		}
		if !placed {
			break
		}
	}
	return out
}

func tooCloseToPier(c FakePier, anchor Pier) bool {
	return math.Abs(c.X-anchor.X) < c.W/2+anchor.Width/2+fakePierKeepAway
}

func overlapsAny(c FakePier, placed []FakePier) bool {
	for _, other := range placed {
		if c.Overlaps(other, fakePierGapX, fakePierGapY) {
			return true
		}
	}
	return false
}
