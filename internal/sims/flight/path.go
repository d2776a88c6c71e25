package flight

import (
	"math"

	"seaplane/pkg/core"
)

// Path geometry, in world pixels unless noted.
const (
	seaFraction      = 0.76
	pierDeckAboveSea = 50.0
	pierWidth        = 240.0
	pierHeight       = 18.0
	pierContactInset = 50.0
	leftAnchorX      = 180.0
	minSpan          = 420.0
	spanMargin       = 360.0
	pathYMin         = 60.0
	floorClearance   = 120.0

	baseKnots     = 11
	knotSteps     = 4
	minKnotStep   = 0.04
	minDelta      = 60.0
	maxDelta      = 230.0
	minEndDelta   = 70.0
	minSeparation = 18.0
	headingDU     = 0.002
)

// Knot is a control point of the flight curve.
type Knot struct {
	U float64
	Y float64
}

// Pier is a real landing strip anchoring one end of the path.
type Pier struct {
	X      float64
	DeckY  float64
	Width  float64
	Height float64
}

// Path is the immutable flight curve of a run. X is linear in progress u;
// Y is an eased spline through the knots.
type Path struct {
	SeaY     float64
	Baseline float64
	YMin     float64
	FloorY   float64
	StartY   float64
	EndY     float64

	Left  Pier
	Right Pier

	knots []Knot
	shape []float64
}

// BuildPath generates the flight curve for a viewport of w×h. flightScale
// stretches the horizontal span for longer flights; values below 1 are
// treated as 1. planeBottom is the distance from the plane's centre to its
// underside.
func BuildPath(w, h float64, seed uint32, flightScale, planeBottom float64) *Path {
	rng := core.NewRNG(seed)
	seaY := h * seaFraction
	pierY := seaY - pierDeckAboveSea

	rightX := leftAnchorX + math.Max(minSpan, w-spanMargin)*math.Max(1, flightScale)
	deckY := pierY - planeBottom + pierContactInset

	p := &Path{
		SeaY:   seaY,
		YMin:   pathYMin,
		FloorY: seaY - floorClearance,
		StartY: deckY,
		EndY:   deckY,
		Left:   Pier{X: leftAnchorX, DeckY: pierY, Width: pierWidth, Height: pierHeight},
		Right:  Pier{X: rightX, DeckY: pierY, Width: pierWidth, Height: pierHeight},
	}
	p.Baseline = h * (0.32 + rng.Float()*0.10)

	n := baseKnots + 2*rng.Intn(knotSteps)
	p.knots = make([]Knot, n)
	p.knots[0] = Knot{U: 0, Y: p.StartY}
	p.knots[n-1] = Knot{U: 1, Y: p.EndY}

	p.spaceKnots(rng)
	p.raiseKnots(rng)
	return p
}

// spaceKnots assigns interior u values: every gap gets minKnotStep and the
// slack is shared out by random weights.
func (p *Path) spaceKnots(rng *core.RNG) {
	segs := len(p.knots) - 1
	weights := make([]float64, segs)
	p.shape = make([]float64, segs)
	var sum float64
	for s := 0; s < segs; s++ {
		weights[s] = 0.5 + rng.Float()*2.5
		sum += weights[s]
		p.shape[s] = 0.6 + rng.Float()*1.5
	}

	extra := math.Max(0, 1-float64(segs)*minKnotStep)
	var acc float64
	for i := 1; i < len(p.knots); i++ {
		acc += minKnotStep + extra*weights[i-1]/sum
		p.knots[i].U = clampF(acc, 0, 1)
	}
	p.knots[segs].U = 1
}

// raiseKnots assigns interior altitudes, alternating climb (odd index) and
// descent (even index).
func (p *Path) raiseKnots(rng *core.RNG) {
	last := len(p.knots) - 1
	prevY := p.StartY
	for i := 1; i < last; i++ {
		dir := 1.0
		room := p.FloorY - prevY
		if i%2 == 1 {
			dir = -1
			room = prevY - p.YMin
		}
		limit := math.Min(maxDelta, math.Max(0, room-4))

		var delta float64
		if limit >= minDelta {
			delta = minDelta + rng.Float()*(limit-minDelta)
		} else {
			delta = math.Max(1, limit)
		}
		delta *= 0.7 + rng.Float()*0.7
		y := prevY + dir*delta

		if i == last-1 {
			y = math.Min(y, math.Min(prevY-30, p.EndY-minEndDelta))
		}
		y = clampF(y, p.YMin, p.FloorY)

		if math.Abs(y-prevY) < minSeparation {
			nudge := (minDelta*0.85 + rng.Float()*(maxDelta*0.6)) * dir
			y = clampF(prevY+nudge, p.YMin, p.FloorY)
		}

		p.knots[i].Y = y
		prevY = y
	}
}

// PierY is the deck height of the real piers and the lowest Y the curve
// may reach.
func (p *Path) PierY() float64 { return p.Left.DeckY }

// Knots returns a copy of the control points.
func (p *Path) Knots() []Knot {
	return append([]Knot(nil), p.knots...)
}

// Shapes returns a copy of the per-segment easing exponents.
func (p *Path) Shapes() []float64 {
	return append([]float64(nil), p.shape...)
}

// XAtU maps progress to world X.
func (p *Path) XAtU(u float64) float64 {
	u = clampF(u, 0, 1)
	return p.Left.X + (p.Right.X-p.Left.X)*u
}

// YAtU maps progress to world Y along the eased spline, clamped to
// [YMin, PierY].
func (p *Path) YAtU(u float64) float64 {
	u = clampF(u, 0, 1)
	i := p.segment(u)
	a, b := p.knots[i], p.knots[i+1]

	var t float64
	if b.U > a.U {
		t = (u - a.U) / (b.U - a.U)
	}
	s := 0.5 - 0.5*math.Cos(math.Pi*t)
	s = math.Pow(s, p.shape[i])
	return clampF(a.Y+(b.Y-a.Y)*s, p.YMin, p.PierY())
}

// segment returns the index of the knot segment bracketing u. A u that no
// segment brackets falls back to the last one.
func (p *Path) segment(u float64) int {
	for i := 0; i < len(p.knots)-1; i++ {
		if u >= p.knots[i].U && u <= p.knots[i+1].U {
			return i
		}
	}
	return len(p.knots) - 2
}

// Heading returns the direction of travel at u, in radians.
func (p *Path) Heading(u float64) float64 {
	x, y := p.XAtU(u), p.YAtU(u)
	x2, y2 := p.XAtU(u+headingDU), p.YAtU(u+headingDU)
	return math.Atan2(y2-y, x2-x)
}

// UAtX inverts XAtU, clamped to [0, 1].
func (p *Path) UAtX(x float64) float64 {
	span := p.Right.X - p.Left.X
	if span <= 0 {
		return 0
	}
	return clampF((x-p.Left.X)/span, 0, 1)
}
