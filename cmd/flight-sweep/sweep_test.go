package main

import (
	"flag"
	"testing"

	"seaplane/internal/core"
	"seaplane/internal/sims/flight"
)

func factory(t *testing.T) core.Factory {
	t.Helper()
	f, ok := core.Sims()["seaplane"]
	if !ok {
		t.Fatalf("seaplane sim not registered")
	}
	return f
}

func TestKvListMap(t *testing.T) {
	var l kvList
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.Var(&l, "set", "")
	if err := fs.Parse([]string{"-set", "w=1024", "-set", "broken", "-set", " decor_count = 3 "}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	m := l.Map()
	if len(m) != 2 || m["w"] != "1024" || m["decor_count"] != "3" {
		t.Fatalf("unexpected overrides %v", m)
	}
}

func TestRunSeedOutcomes(t *testing.T) {
	cases := []struct {
		name      string
		overrides map[string]string
		landed    bool
		reason    flight.CrashReason
	}{
		{"clean", map[string]string{"engine_fail_chance": "0", "overshoot_chance": "0"}, true, 0},
		{"engine", map[string]string{"engine_fail_chance": "1"}, false, flight.CrashEngine},
		{"overshoot", map[string]string{"engine_fail_chance": "0", "overshoot_chance": "1"}, false, flight.CrashLanding},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var sum summary
			for seed := uint32(1); seed <= 3; seed++ {
				res, g, err := runSeed(factory(t), tc.overrides, seed, 60)
				if err != nil {
					t.Fatalf("run: %v", err)
				}
				if g.Running() {
					t.Fatalf("expected the run to finish")
				}
				if res.outcome.Landed != tc.landed {
					t.Fatalf("seed %d: expected landed=%v, got %+v", seed, tc.landed, res.outcome)
				}
				if !tc.landed && res.outcome.Reason != tc.reason {
					t.Fatalf("seed %d: expected %v, got %v", seed, tc.reason, res.outcome.Reason)
				}
				sum.add(res)
			}
			if sum.runs != 3 {
				t.Fatalf("expected three runs, got %d", sum.runs)
			}
			if tc.landed && (sum.landed != 3 || !sum.hasBest) {
				t.Fatalf("expected three landings, got %d", sum.landed)
			}
			if !tc.landed && (sum.landed != 0 || sum.meanScore() != 0) {
				t.Fatalf("expected no landings, got %d", sum.landed)
			}
		})
	}
}

func TestRunSeedIsReproducible(t *testing.T) {
	a, ga, err := runSeed(factory(t), nil, 12345, 60)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	b, gb, err := runSeed(factory(t), nil, 12345, 60)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if a != b {
		t.Fatalf("expected identical results, got %+v and %+v", a, b)
	}
	da, err := flight.MarshalSnapshot(ga.Snapshot())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	db, err := flight.MarshalSnapshot(gb.Snapshot())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(da) != string(db) {
		t.Fatalf("expected identical snapshots")
	}
	if a.taken != a.bonuses {
		t.Fatalf("expected a landed run to collect every bonus, got %d/%d", a.taken, a.bonuses)
	}
}
