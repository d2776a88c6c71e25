package flight

import (
	"testing"
	"time"
)

func TestBurstSizes(t *testing.T) {
	var ps Particles
	ps.SpawnExplosion(10, 10, 1)
	if ps.Len() != ExplosionCount {
		t.Fatalf("expected %d explosion particles, got %d", ExplosionCount, ps.Len())
	}
	ps.SpawnSplash(10, 10, 1)
	ps.SpawnStars(10, 10, true, 1)
	if want := ExplosionCount + SplashCount + StarCount; ps.Len() != want {
		t.Fatalf("expected %d particles, got %d", want, ps.Len())
	}
}

func TestParticleLifetimesInRange(t *testing.T) {
	var ps Particles
	ps.SpawnExplosion(0, 0, 42)
	ps.SpawnSplash(0, 0, 42)
	ps.SpawnStars(0, 0, false, 42)
	for _, p := range ps.P {
		if p.Life < 520*time.Millisecond || p.Life > 1140*time.Millisecond {
			t.Fatalf("%v particle life %s out of range", p.Kind, p.Life)
		}
		if p.R < 1 || p.R > 8 {
			t.Fatalf("%v particle radius %v out of range", p.Kind, p.R)
		}
	}
}

func TestParticlesDrainMonotonically(t *testing.T) {
	var ps Particles
	ps.SpawnExplosion(100, 100, 7)
	ps.SpawnSplash(100, 456, 7)
	ps.SpawnStars(100, 100, true, 7)
	maxLife := ps.MaxLife()

	step := 16 * time.Millisecond
	prev := ps.Len()
	var elapsed time.Duration
	for elapsed <= maxLife+step {
		ps.Update(step)
		elapsed += step
		if ps.Len() > prev {
			t.Fatalf("particle count grew from %d to %d", prev, ps.Len())
		}
		prev = ps.Len()
	}
	if ps.Len() != 0 {
		t.Fatalf("expected all particles expired after %s, %d remain", elapsed, ps.Len())
	}
}

func TestParticleAgeUsesRawDelta(t *testing.T) {
	var ps Particles
	ps.SpawnSplash(0, 0, 9)
	x0 := ps.P[0].X
	vx := ps.P[0].VX
	ps.Update(200 * time.Millisecond)
	if ps.Len() != SplashCount {
		t.Fatalf("expected no expiry after 200ms, got %d", ps.Len())
	}
	if ps.P[0].Age != 200*time.Millisecond {
		t.Fatalf("expected age 200ms, got %s", ps.P[0].Age)
	}
	// Motion is limited to one clamped 50ms step.
	if want := x0 + vx*0.992*0.05; ps.P[0].X != want {
		t.Fatalf("expected x %v after a clamped step, got %v", want, ps.P[0].X)
	}
}

func TestStarsFloatUp(t *testing.T) {
	var ps Particles
	ps.SpawnStars(0, 0, true, 3)
	for i := 0; i < 30; i++ {
		ps.Update(16 * time.Millisecond)
	}
	var sum float64
	for _, p := range ps.P {
		sum += p.Y
	}
	if mean := sum / float64(ps.Len()); mean >= 0 {
		t.Fatalf("expected the burst to drift upward, mean y=%v", mean)
	}
}

func TestParticleSpawnDeterministic(t *testing.T) {
	var a, b Particles
	a.SpawnExplosion(5, 5, 1234)
	b.SpawnExplosion(5, 5, 1234)
	for i := range a.P {
		if a.P[i] != b.P[i] {
			t.Fatalf("particle %d differs for the same seed", i)
		}
	}
	var c Particles
	c.SpawnStars(5, 5, true, 1234)
	var d Particles
	d.SpawnStars(5, 5, false, 1234)
	if c.P[0].VX == d.P[0].VX && c.P[0].VY == d.P[0].VY {
		t.Fatalf("expected good and bad stars to use different streams")
	}
}
