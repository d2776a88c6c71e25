package app

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"seaplane/internal/core"
)

// LaunchOptions describe how the host started the game.
type LaunchOptions struct {
	Seed         core.Seed
	AdMode       bool
	LimitReached bool
	AutoClose    bool
}

// ParseLaunch reads a launch query such as "?seed=12&ad=1&limit=0". Flags
// are on only for the literal value "1". An unparsable seed is ignored.
func ParseLaunch(raw string) (LaunchOptions, error) {
	raw = strings.TrimPrefix(strings.TrimSpace(raw), "?")
	if raw == "" {
		return LaunchOptions{}, nil
	}
	q, err := url.ParseQuery(raw)
	if err != nil {
		return LaunchOptions{}, fmt.Errorf("parse launch query %q: %w", raw, err)
	}
	return LaunchOptions{
		Seed:         core.ParseSeed(q.Get("seed")),
		AdMode:       q.Get("ad") == "1",
		LimitReached: q.Get("limit") == "1",
		AutoClose:    q.Get("close") == "1",
	}, nil
}

// RetryGate stands in for a rewarded interaction that must succeed before
// another attempt starts. It may block; the session runs it off the tick.
type RetryGate func(ctx context.Context) error

// DelayGate is a RetryGate that succeeds after d unless ctx ends first.
func DelayGate(d time.Duration) RetryGate {
	return func(ctx context.Context) error {
		t := time.NewTimer(d)
		defer t.Stop()
		select {
		case <-t.C:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
