package flight

import (
	"fmt"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

// Snapshot is a read-only copy of everything a renderer or replay check
// needs from one tick.
type Snapshot struct {
	Seed     uint32        `msgpack:"seed"`
	Phase    Phase         `msgpack:"phase"`
	Score    float64       `msgpack:"score"`
	U        float64       `msgpack:"u"`
	Duration time.Duration `msgpack:"duration"`
	Pose     Pose          `msgpack:"pose"`
	Body     *Ballistic    `msgpack:"body,omitempty"`

	Knots     []Knot       `msgpack:"knots"`
	Bonuses   []Bonus      `msgpack:"bonuses"`
	Decor     []DecorBonus `msgpack:"decor"`
	FakePiers []FakePier   `msgpack:"fake_piers"`
	Particles []Particle   `msgpack:"particles"`
	Texts     []PickupText `msgpack:"texts,omitempty"`

	Outcome *Outcome `msgpack:"outcome,omitempty"`
}

// Snapshot copies the current run state. Before the first Start only the
// phase is set.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{Phase: g.phase, Score: g.score, U: g.u}
	if g.run == nil {
		return s
	}
	r := g.run
	s.Seed = r.Seed
	s.Duration = r.Duration
	s.Pose = g.Pose()
	if b, ok := g.pose.(*Ballistic); ok {
		body := *b
		s.Body = &body
	}
	s.Knots = r.Path.Knots()
	s.Bonuses = append([]Bonus(nil), r.Bonuses...)
	s.Decor = append([]DecorBonus(nil), r.Decor...)
	s.FakePiers = append([]FakePier(nil), r.FakePiers...)
	s.Particles = append([]Particle(nil), g.particles.P...)
	s.Texts = append([]PickupText(nil), g.texts...)
	if o, ok := g.Outcome(); ok {
		s.Outcome = &o
	}
	return s
}

// MarshalSnapshot encodes s with msgpack.
func MarshalSnapshot(s Snapshot) ([]byte, error) {
	data, err := msgpack.Marshal(&s)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return data, nil
}

// UnmarshalSnapshot decodes a snapshot produced by MarshalSnapshot.
func UnmarshalSnapshot(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := msgpack.Unmarshal(data, &s); err != nil {
		return Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	return s, nil
}
