package flight

import (
	"math"
	"slices"

	"seaplane/pkg/core"
)

const (
	bonusSkipHead  = 0.06
	bonusSkipTail  = 0.985
	startBonusU    = 0.025
	correctiveU    = 0.975
	correctiveStep = 0.005
	bonusRadius    = 14.0
)

// Bonus is an on-path pickup collected by flying through it. Taken is set
// once and never cleared.
type Bonus struct {
	U     float64
	Op    Operation
	Good  bool
	Taken bool
}

// BuildBonuses places pickups on the local extrema of the path: valleys
// (screen-lowest points) carry beneficial operations, peaks penalising ones.
// The list is sorted by U and, applied in full to a score of 1, never ends
// above 1.
func BuildBonuses(p *Path, seed uint32) []Bonus {
	rng := core.NewRNG(core.SubSeed(seed, core.SaltBonus))
	knots := p.knots
	n := len(knots)

	var out []Bonus
	if n >= 2 && knots[1].Y < knots[0].Y {
		out = append(out, Bonus{U: startBonusU, Op: core.Pick(rng, goodOps), Good: true})
	}

	for i := 1; i < n-1; i++ {
		u := knots[i].U
		if u < bonusSkipHead || u > bonusSkipTail {
			continue
		}
		prev, y, next := knots[i-1].Y, knots[i].Y, knots[i+1].Y
		peak := y < prev && y < next
		valley := y > prev && y > next
		if !peak && !valley {
			continue
		}
		ops := badOps
		if valley {
			ops = goodOps
		}
		out = append(out, Bonus{U: u, Op: core.Pick(rng, ops), Good: valley})
	}

	slices.SortStableFunc(out, func(a, b Bonus) int {
		switch {
		case a.U < b.U:
			return -1
		case a.U > b.U:
			return 1
		default:
			return 0
		}
	})

	if s := SimulateScore(out, 1); s > 1 {
		need := math.Ceil((s-1)*10) / 10
		u := correctiveU
		if len(out) > 0 {
			u = math.Max(u, out[len(out)-1].U+correctiveStep)
		}
		out = append(out, Bonus{U: u, Op: Operation{Kind: OpSubtract, Value: need}})
	}
	return out
}

// SimulateScore applies every bonus in order to start, clamping after each
// step exactly as a live run does.
func SimulateScore(bonuses []Bonus, start float64) float64 {
	s := start
	for _, b := range bonuses {
		s = b.Op.Apply(s)
	}
	return s
}

// DecorBonus is an off-path pickup badge. It is scenery only; nothing
// collects it.
type DecorBonus struct {
	X, Y   float64
	Op     Operation
	Good   bool
	Radius float64
}

const (
	decorMarginX   = 900.0
	decorNoSpawn   = 56.0
	decorTopMin    = 260.0
	decorTopFactor = 0.95
	decorSeaGap    = 80.0
)

// BuildDecor scatters count badges across a wide band around the path,
// retrying positions that land within decorNoSpawn of the flight line. When
// every attempt fails the last sample is kept.
func BuildDecor(p *Path, seed uint32, count, attempts int) []DecorBonus {
	rng := core.NewRNG(core.SubSeed(seed, core.SaltDecor))
	xMin := p.Left.X - decorMarginX
	xMax := p.Right.X + decorMarginX
	yMin := -math.Max(decorTopMin, p.SeaY*decorTopFactor)
	yMax := p.SeaY - decorSeaGap

	out := make([]DecorBonus, 0, count)
	for i := 0; i < count; i++ {
		var x, y float64
		for try := 0; try < attempts; try++ {
			x = xMin + (xMax-xMin)*rng.Float()
			y = yMin + (yMax-yMin)*rng.Float()
			if !p.nearLine(x, y, decorNoSpawn) {
				break
			}
		}
		op := core.Pick(rng, allOps)
		out = append(out, DecorBonus{X: x, Y: y, Op: op, Good: op.Good(), Radius: bonusRadius})
	}
	return out
}

// nearLine reports whether (x, y) lies within dist of the curve's altitude
// at x. Points outside the horizontal span are never near.
func (p *Path) nearLine(x, y, dist float64) bool {
	if x < p.Left.X || x > p.Right.X {
		return false
	}
	return math.Abs(y-p.YAtU(p.UAtX(x))) < dist
}
