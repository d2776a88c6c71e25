package core

import (
	"math"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"
)

// Size describes viewport dimensions in logical pixels.
type Size struct {
	W int
	H int
}

// Seed is an optional run seed. A zero Seed asks the simulation to derive
// a fresh one from the clock.
type Seed struct {
	Value uint32
	Valid bool
}

// FixedSeed wraps an explicit seed value.
func FixedSeed(v uint32) Seed { return Seed{Value: v, Valid: true} }

// ParseSeed accepts any finite number and wraps it to 32 bits the way an
// unsigned shift would. Anything else yields an invalid Seed.
func ParseSeed(s string) Seed {
	s = strings.TrimSpace(s)
	if s == "" {
		return Seed{}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return Seed{}
	}
	f = math.Mod(math.Trunc(f), 4294967296)
	if f < 0 {
		f += 4294967296
	}
	return FixedSeed(uint32(f))
}

// Resolve returns the explicit value, or a clock-derived one when unset.
func (s Seed) Resolve(now time.Time) uint32 {
	if s.Valid {
		return s.Value
	}
	return uint32(now.UnixMilli()) ^ rand.Uint32()
}

// Sim defines the contract frontends drive: one start trigger, a tick fed
// with monotonically increasing timestamps, and a running query.
type Sim interface {
	Name() string
	Size() Size
	Start(seed Seed, viewport Size)
	Tick(now time.Duration)
	Running() bool
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}
