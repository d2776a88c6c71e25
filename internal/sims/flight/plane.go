package flight

import (
	"math"
	"time"
)

// CrashReason says why a flight ended in the water.
type CrashReason uint8

const (
	CrashEngine CrashReason = iota + 1
	CrashLanding
)

// String returns the reason name.
func (r CrashReason) String() string {
	switch r {
	case CrashEngine:
		return "engine"
	case CrashLanding:
		return "landing"
	default:
		return "none"
	}
}

// Pose is the renderable position and attitude of the plane.
type Pose struct {
	X, Y  float64
	Angle float64
}

// PlanePose is either OnPath or *Ballistic.
type PlanePose interface {
	planePose()
}

// OnPath places the plane on the flight curve at progress U.
type OnPath struct {
	U float64
}

func (OnPath) planePose() {}

// Ballistic is the free body of a crashing plane.
type Ballistic struct {
	X, Y    float64
	VX, VY  float64
	Angle   float64
	Spin    float64
	InWater bool

	Started time.Duration
	Reason  CrashReason
	FromU   float64
}

func (*Ballistic) planePose() {}

// Crash dynamics.
const (
	maxCrashDT      = 50 * time.Millisecond
	waterDrift      = 40.0
	waterEntryDrag  = 0.25
	waterDrag       = 0.985
	waterSink       = 26.0
	waterSpin       = 0.6
	splashDepth     = 6.0
	landingCrashVX  = 220.0
	engineCrashVX   = 160.0
	engineCrashVY   = 40.0
	engineCrashSpin = 2.2
	landingSpin     = 1.2
)

// newBallistic launches a crash body from an on-path pose. The spin sign
// follows the horizontal heading.
func newBallistic(from Pose, u float64, reason CrashReason, now time.Duration) *Ballistic {
	dir := 1.0
	if math.Cos(from.Angle) < 0 {
		dir = -1
	}
	b := &Ballistic{
		X:       from.X,
		Y:       from.Y,
		Angle:   from.Angle,
		Started: now,
		Reason:  reason,
		FromU:   u,
	}
	switch reason {
	case CrashEngine:
		b.VX = dir * engineCrashVX
		b.VY = engineCrashVY
		b.Spin = engineCrashSpin * dir
	default:
		b.VX = dir * landingCrashVX
		b.Spin = landingSpin * dir
	}
	return b
}

// step integrates the body by dt under gravity. It reports true on the
// tick the body first enters the water.
func (b *Ballistic) step(dt time.Duration, gravity, seaY float64) (splashed bool) {
	if dt < 0 {
		dt = 0
	}
	if dt > maxCrashDT {
		dt = maxCrashDT
	}
	s := dt.Seconds()

	b.VY += gravity * s
	b.X += b.VX * s
	b.Y += b.VY * s
	b.Angle += b.Spin * s

	if !b.InWater && b.Y >= seaY {
		b.InWater = true
		b.VX *= waterEntryDrag
		b.VY = waterDrift
		splashed = true
	}
	if b.InWater {
		b.VX *= waterDrag
		b.VY = waterDrift
		b.Y += waterSink * s
		b.Angle += waterSpin * s
	}
	return splashed
}
