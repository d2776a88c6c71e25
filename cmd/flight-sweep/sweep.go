package main

import (
	"fmt"
	"strings"
	"time"

	"seaplane/internal/core"
	"seaplane/internal/sims/flight"
)

// maxSimulated bounds a single run; no configuration comes close.
const maxSimulated = 5 * time.Minute

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// Map turns key=value entries into the overrides a sim factory accepts.
func (l kvList) Map() map[string]string {
	m := map[string]string{}
	for _, kv := range l {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			continue
		}
		m[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	return m
}

type seedResult struct {
	seed    uint32
	outcome flight.Outcome
	ticks   int
	bonuses int
	taken   int
	rolled  string
}

// runSeed flies one seed to completion on synthetic timestamps and returns
// the game in its final state.
func runSeed(factory core.Factory, overrides map[string]string, seed uint32, tps int) (seedResult, *flight.Game, error) {
	g, ok := factory(overrides).(*flight.Game)
	if !ok {
		return seedResult{}, nil, fmt.Errorf("factory did not build a flight game")
	}
	step := core.NewFixedStep(tps)
	g.Start(core.FixedSeed(seed), g.Size())
	r := g.Run()
	res := seedResult{seed: seed, bonuses: len(r.Bonuses), rolled: rolls(r)}

	g.Tick(step.Now())
	for g.Running() {
		if step.Now() > maxSimulated {
			return res, g, fmt.Errorf("seed %d: still %s after %s", seed, g.Phase(), maxSimulated)
		}
		g.Tick(step.Next())
		res.ticks++
	}
	res.outcome, _ = g.Outcome()
	for _, b := range r.Bonuses {
		if b.Taken {
			res.taken++
		}
	}
	return res, g, nil
}

func rolls(r *flight.Run) string {
	switch {
	case r.EngineWillFail:
		return fmt.Sprintf("engine@%.2f", r.EngineFailU)
	case r.WillOvershoot:
		return "overshoot"
	default:
		return "clean"
	}
}

type summary struct {
	runs      int
	landed    int
	engine    int
	overshoot int
	scoreSum  float64
	best      seedResult
	hasBest   bool
	simulated time.Duration
}

func (s *summary) add(r seedResult) {
	s.runs++
	s.simulated += r.outcome.Ended
	if !r.outcome.Landed {
		switch r.outcome.Reason {
		case flight.CrashEngine:
			s.engine++
		case flight.CrashLanding:
			s.overshoot++
		}
		return
	}
	s.landed++
	s.scoreSum += r.outcome.Score
	if !s.hasBest || r.outcome.Score > s.best.outcome.Score {
		s.best = r
		s.hasBest = true
	}
}

func (s summary) meanScore() float64 {
	if s.landed == 0 {
		return 0
	}
	return s.scoreSum / float64(s.landed)
}
