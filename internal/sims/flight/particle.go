package flight

import (
	"math"
	"time"

	"seaplane/pkg/core"
)

// ParticleKind tags a particle with the burst that produced it.
type ParticleKind uint8

const (
	ParticleExplosion ParticleKind = iota
	ParticleSplash
	ParticleStar
)

// String returns the kind name.
func (k ParticleKind) String() string {
	switch k {
	case ParticleExplosion:
		return "explosion"
	case ParticleSplash:
		return "splash"
	case ParticleStar:
		return "star"
	default:
		return "unknown"
	}
}

// Burst sizes.
const (
	ExplosionCount = 34
	SplashCount    = 22
	StarCount      = 14
)

const (
	particleGravity = 520.0
	maxParticleDT   = 50 * time.Millisecond
)

// Particle is one short-lived point of a burst.
type Particle struct {
	X, Y   float64
	VX, VY float64
	R      float64

	Life time.Duration
	Age  time.Duration

	Kind ParticleKind
	Good bool
}

// Progress returns Age/Life in [0, 1].
func (p Particle) Progress() float64 {
	if p.Life <= 0 {
		return 1
	}
	return clampF(float64(p.Age)/float64(p.Life), 0, 1)
}

// Particles owns the live particle set. It only grows by spawning and only
// shrinks by expiry in Update.
type Particles struct {
	P []Particle
}

// Len returns the live particle count.
func (ps *Particles) Len() int { return len(ps.P) }

// Clear drops every particle.
func (ps *Particles) Clear() { ps.P = ps.P[:0] }

// MaxLife returns the longest remaining lifetime among live particles.
func (ps *Particles) MaxLife() time.Duration {
	var m time.Duration
	for _, p := range ps.P {
		if left := p.Life - p.Age; left > m {
			m = left
		}
	}
	return m
}

// burst describes the random envelope of one kind of spawn. Radial bursts
// spread over a full turn; the others over an arc centred on straight up.
type burst struct {
	count      int
	radial     bool
	arc        float64
	speedMin   float64
	speedSpan  float64
	radiusMin  float64
	radiusSpan float64
	lifeMin    time.Duration
	lifeSpan   time.Duration
	kind       ParticleKind
}

var (
	explosionBurst = burst{
		count: ExplosionCount, radial: true,
		speedMin: 80, speedSpan: 260, radiusMin: 2, radiusSpan: 6,
		lifeMin: 520 * time.Millisecond, lifeSpan: 520 * time.Millisecond,
		kind: ParticleExplosion,
	}
	splashBurst = burst{
		count: SplashCount, arc: math.Pi * 0.9,
		speedMin: 60, speedSpan: 200, radiusMin: 1, radiusSpan: 5,
		lifeMin: 520 * time.Millisecond, lifeSpan: 620 * time.Millisecond,
		kind: ParticleSplash,
	}
	starBurst = burst{
		count: StarCount, arc: math.Pi * 1.4,
		speedMin: 70, speedSpan: 220, radiusMin: 2, radiusSpan: 5,
		lifeMin: 520 * time.Millisecond, lifeSpan: 520 * time.Millisecond,
		kind: ParticleStar,
	}
)

// SpawnExplosion emits a wide radial burst for an engine failure.
func (ps *Particles) SpawnExplosion(x, y float64, seed uint32) {
	ps.spawn(x, y, explosionBurst, core.NewRNG(core.SubSeed(seed, core.SaltExplosion)), false)
}

// SpawnSplash emits an upward cone where the plane hits the water.
func (ps *Particles) SpawnSplash(x, y float64, seed uint32) {
	ps.spawn(x, y, splashBurst, core.NewRNG(core.SubSeed(seed, core.SaltSplash)), false)
}

// SpawnStars emits the floating star burst of a pickup.
func (ps *Particles) SpawnStars(x, y float64, good bool, seed uint32) {
	salt := core.SaltStarBad
	if good {
		salt = core.SaltStarGood
	}
	ps.spawn(x, y, starBurst, core.NewRNG(core.SubSeed(seed, salt)), good)
}

func (ps *Particles) spawn(x, y float64, b burst, rng *core.RNG, good bool) {
	for i := 0; i < b.count; i++ {
		a := rng.Float() * 2 * math.Pi
		if !b.radial {
			a = -math.Pi/2 + (rng.Float()-0.5)*b.arc
		}
		sp := b.speedMin + rng.Float()*b.speedSpan
		ps.P = append(ps.P, Particle{
			X:    x,
			Y:    y,
			VX:   math.Cos(a) * sp,
			VY:   math.Sin(a) * sp,
			R:    b.radiusMin + rng.Float()*b.radiusSpan,
			Life: b.lifeMin + time.Duration(rng.Float()*float64(b.lifeSpan)),
			Kind: b.kind,
			Good: good,
		})
	}
}

// Update integrates every particle by dt and drops the expired ones. The
// physics step is clamped to maxParticleDT; ageing uses the raw dt.
func (ps *Particles) Update(dt time.Duration) {
	if len(ps.P) == 0 {
		return
	}
	step := dt
	if step < 0 {
		step = 0
	}
	if step > maxParticleDT {
		step = maxParticleDT
	}
	s := step.Seconds()

	for i := range ps.P {
		p := &ps.P[i]
		p.Age += dt

		switch p.Kind {
		case ParticleExplosion:
			p.VX *= 0.986
			p.VY *= 0.986
			p.VY += particleGravity * 0.6 * s
		case ParticleStar:
			p.VX *= 0.988
			p.VY *= 0.988
			p.VY -= 260 * s
		default:
			p.VX *= 0.992
			p.VY += particleGravity * s
		}
		p.X += p.VX * s
		p.Y += p.VY * s
	}

	live := ps.P[:0]
	for _, p := range ps.P {
		if p.Age < p.Life {
			live = append(live, p)
		}
	}
	ps.P = live
}
