package core

import "math/rand/v2"

// Salts XOR-ed into a run seed so every subsystem draws from its own stream.
const (
	SaltBonus     uint32 = 0x9e3779b9
	SaltDecor     uint32 = 0x7f4a7c15
	SaltPiers     uint32 = 0x31415927
	SaltDuration  uint32 = 0x2c1b3a55
	SaltAssets    uint32 = 0x55aa33cc
	SaltFailure   uint32 = 0x0f00ba11
	SaltExplosion uint32 = 0xdeadbeef
	SaltSplash    uint32 = 0x1234abcd
	SaltStarGood  uint32 = 0x77aa11cc
	SaltStarBad   uint32 = 0x33cc55aa
)

const streamSalt uint32 = 0xa5a5a5a5

// RNG is a counter-based hash stream. Each draw hashes the next value of a
// 32-bit counter, so a seed replays bit-identically on every platform.
type RNG struct {
	seed  uint32
	state uint32
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed uint32) *RNG {
	return &RNG{seed: seed, state: seed}
}

// SubSeed derives the seed of an independent subsystem stream.
func SubSeed(seed, salt uint32) uint32 { return seed ^ salt }

// Hash32 is the mulberry32 finaliser applied to every counter value.
func Hash32(x uint32) uint32 {
	t := x + 0x6d2b79f5
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return t ^ (t >> 14)
}

// Seed reports the seed the stream was created with.
func (r *RNG) Seed() uint32 { return r.seed }

// Reset rewinds the stream to its first draw.
func (r *RNG) Reset() { r.state = r.seed }

// Uint32 returns the next raw 32-bit draw.
func (r *RNG) Uint32() uint32 {
	r.state++
	return Hash32(r.state ^ streamSalt)
}

// Float returns the next value in [0, 1).
func (r *RNG) Float() float64 {
	return float64(r.Uint32()) / 4294967296.0
}

// Range returns a value in [lo, hi).
func (r *RNG) Range(lo, hi float64) float64 {
	return lo + r.Float()*(hi-lo)
}

// Intn returns floor(Float()*n), or 0 when n <= 0.
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Float() * float64(n))
}

// Chance reports whether the next draw falls below p.
func (r *RNG) Chance(p float64) bool {
	return r.Float() < p
}

// Pick returns a uniformly chosen element of items. items must not be empty.
func Pick[T any](r *RNG, items []T) T {
	return items[r.Intn(len(items))]
}

// Uint64 implements rand.Source by joining two consecutive draws.
func (r *RNG) Uint64() uint64 {
	hi := r.Uint32()
	lo := r.Uint32()
	return uint64(hi)<<32 | uint64(lo)
}

// Source exposes the stream through math/rand/v2 for callers that need its
// wider API. Draws made through it advance the same counter.
func (r *RNG) Source() *rand.Rand { return rand.New(r) }
