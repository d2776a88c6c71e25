package flight

import (
	"time"

	simcore "seaplane/internal/core"
	"seaplane/pkg/core"
)

// Phase is the state of the run state machine.
type Phase uint8

const (
	PhaseMenu Phase = iota
	PhaseFly
	PhaseCrashing
	PhaseLanded
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseFly:
		return "fly"
	case PhaseCrashing:
		return "crashing"
	case PhaseLanded:
		return "landed"
	default:
		return "menu"
	}
}

const landedEase = 0.18

// Outcome is the terminal notification of a finished run.
type Outcome struct {
	Seed   uint32
	Score  float64
	Landed bool
	Reason CrashReason
	Ended  time.Duration
}

// Game drives one run at a time through menu, fly, crashing or landed, and
// back to menu. It is single-writer: only Start and Tick mutate it.
type Game struct {
	cfg    Config
	assets AssetCatalog
	clock  func() time.Time

	run   *Run
	phase Phase
	score float64
	u     float64
	pose  PlanePose

	altOffset float64

	particles Particles
	texts     []PickupText

	lastTS   time.Duration
	hasLast  bool
	startTS  time.Duration
	hasStart bool
	landedAt time.Duration

	outcome    Outcome
	hasOutcome bool
}

var _ simcore.Sim = (*Game)(nil)

// New creates a game in the menu phase.
func New(cfg Config) *Game {
	cfg.sanitize()
	return &Game{cfg: cfg, clock: time.Now, pose: OnPath{}}
}

// Name identifies the simulation.
func (g *Game) Name() string { return "seaplane" }

// Size returns the configured viewport.
func (g *Game) Size() simcore.Size { return simcore.Size{W: g.cfg.Width, H: g.cfg.Height} }

// Config returns the configuration the game was built with.
func (g *Game) Config() Config { return g.cfg }

// SetAssets records the frontend's asset state. It may arrive at any tick;
// it only affects skin choice of runs started afterwards.
func (g *Game) SetAssets(a AssetCatalog) { g.assets = a }

// AssetsReady reports whether the frontend finished loading its assets.
func (g *Game) AssetsReady() bool { return g.assets.Ready }

// Start begins a new run. An invalid seed is replaced by a clock-derived
// one; a zero viewport falls back to the configured size.
func (g *Game) Start(seed simcore.Seed, viewport simcore.Size) {
	s := seed.Resolve(g.clock())
	g.run = NewRun(g.cfg, s, viewport, g.assets)
	g.phase = PhaseFly
	g.score = g.cfg.Params.StartScore
	g.u = 0
	g.pose = OnPath{U: 0}
	g.altOffset = 0
	g.particles.Clear()
	g.texts = g.texts[:0]
	g.hasLast = false
	g.hasStart = false
	g.hasOutcome = false
}

// Running reports whether a run is in progress.
func (g *Game) Running() bool { return g.phase != PhaseMenu }

// Phase returns the current phase.
func (g *Game) Phase() Phase { return g.phase }

// Score returns the current score.
func (g *Game) Score() float64 { return g.score }

// Progress returns the flight progress u.
func (g *Game) Progress() float64 { return g.u }

// Run returns the current run context, nil before the first Start.
func (g *Game) Run() *Run { return g.run }

// PlanePose returns the tagged pose variant.
func (g *Game) PlanePose() PlanePose { return g.pose }

// Particles returns the live particle set. Callers must not modify it.
func (g *Game) Particles() []Particle { return g.particles.P }

// PickupTexts returns the live pickup labels.
func (g *Game) PickupTexts() []PickupText { return g.texts }

// Outcome returns the result of the last finished run. ok is false while a
// run is in progress or before the first one ends.
func (g *Game) Outcome() (Outcome, bool) {
	return g.outcome, g.hasOutcome && g.phase == PhaseMenu
}

// Pose resolves the plane position and heading.
func (g *Game) Pose() Pose {
	if g.run == nil {
		return Pose{}
	}
	switch p := g.pose.(type) {
	case *Ballistic:
		return Pose{X: p.X, Y: p.Y, Angle: p.Angle}
	case OnPath:
		u := clampF(p.U, 0, 1)
		path := g.run.Path
		return Pose{X: path.XAtU(u), Y: path.YAtU(u) + g.altOffset, Angle: path.Heading(u)}
	default:
		return Pose{}
	}
}

// Tick advances the run to timestamp now. Timestamps must not decrease;
// the first tick after Start has zero elapsed time.
func (g *Game) Tick(now time.Duration) {
	var dt time.Duration
	if g.hasLast {
		dt = now - g.lastTS
	}
	if dt < 0 {
		dt = 0
	}
	g.lastTS = now
	g.hasLast = true

	if g.run != nil && g.phase != PhaseMenu {
		if !g.hasStart {
			g.startTS = now
			g.hasStart = true
		}
		switch g.phase {
		case PhaseFly:
			g.fly(now)
		case PhaseCrashing:
			g.sink(now, dt)
		case PhaseLanded:
			g.settle(now)
		}
	}

	g.particles.Update(dt)
}

func (g *Game) fly(now time.Duration) {
	r := g.run
	p := 1.0
	if r.Duration > 0 {
		p = clampF(float64(now-g.startTS)/float64(r.Duration), 0, 1)
	}
	g.u = p
	g.pose = OnPath{U: p}

	if r.EngineWillFail && r.EngineFailU >= 0 && g.u >= r.EngineFailU {
		g.crash(CrashEngine, now)
		return
	}

	pose := g.Pose()
	g.texts = prunePickupTexts(g.texts, now)
	grab := g.cfg.Params.CaptureRadius
	for i := range r.Bonuses {
		b := &r.Bonuses[i]
		if b.Taken {
			continue
		}
		bx, by := r.BonusPos(*b)
		dx, dy := bx-pose.X, by-pose.Y
		if dx*dx+dy*dy > grab*grab {
			continue
		}
		b.Taken = true
		g.texts = append(g.texts, PickupText{
			X:    bx,
			Y:    by,
			Text: b.Op.Label(),
			Good: b.Good,
			T0:   now,
			Life: g.cfg.Params.TextLife,
		})
		g.particles.SpawnStars(bx, by, b.Good, starSeed(r.Seed, b.U))
		g.score = b.Op.Apply(g.score)
	}

	if p >= 1 {
		if r.WillOvershoot {
			g.crash(CrashLanding, now)
			return
		}
		g.phase = PhaseLanded
		g.landedAt = now
	}
}

func (g *Game) sink(now, dt time.Duration) {
	b, ok := g.pose.(*Ballistic)
	if !ok {
		g.finish(now)
		return
	}
	seaY := g.run.Path.SeaY
	if b.step(dt, g.cfg.Params.Gravity, seaY) {
		g.particles.SpawnSplash(b.X, seaY+splashDepth, g.run.Seed)
	}
	if b.Y > seaY+g.cfg.Params.SinkDepth || now-b.Started > g.cfg.Params.CrashTimeout {
		g.finish(now)
	}
}

func (g *Game) settle(now time.Duration) {
	g.u = 1
	g.pose = OnPath{U: 1}
	g.altOffset += (0 - g.altOffset) * landedEase
	if now-g.landedAt > g.cfg.Params.LandedHold {
		g.finish(now)
	}
}

// crash switches the plane to a ballistic body. The score is forfeit.
func (g *Game) crash(reason CrashReason, now time.Duration) {
	from := g.Pose()
	g.phase = PhaseCrashing
	g.score = 0
	g.altOffset = 0
	g.texts = g.texts[:0]

	b := newBallistic(from, g.u, reason, now)
	if reason == CrashEngine {
		g.particles.SpawnExplosion(b.X, b.Y, g.run.Seed)
	}
	if b.Y >= g.run.Path.SeaY {
		b.InWater = true
	}
	g.pose = b
}

// finish hands control back to the menu and publishes the outcome.
func (g *Game) finish(now time.Duration) {
	o := Outcome{Seed: g.run.Seed, Score: g.score, Ended: now}
	if b, ok := g.pose.(*Ballistic); ok {
		o.Reason = b.Reason
		g.pose = OnPath{U: b.FromU}
	} else {
		o.Landed = true
	}
	g.phase = PhaseMenu
	g.outcome = o
	g.hasOutcome = true
}

// starSeed mixes the pickup progress into the run seed so every pickup
// bursts differently.
func starSeed(seed uint32, u float64) uint32 {
	return core.SubSeed(seed, uint32(int32(u*1e6)))
}

func init() {
	simcore.Register("seaplane", func(cfg map[string]string) simcore.Sim {
		return New(FromMap(cfg))
	})
}
