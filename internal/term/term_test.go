package term

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"seaplane/internal/app"
	"seaplane/internal/core"
	"seaplane/internal/sims/flight"
)

func newFrontend(t *testing.T, opts app.LaunchOptions) (*Frontend, *app.Session, *flight.Game) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(81, 26)

	g := flight.New(flight.DefaultConfig())
	s := app.NewSession(g, opts, nil, g.Size())
	return New(screen, g, s), s, g
}

func row(f *Frontend, y int) string {
	var b strings.Builder
	for x := 0; x < f.cols; x++ {
		b.WriteRune(f.Cell(x, y))
	}
	return b.String()
}

func TestDrawShowsStartMenuBeforeBoot(t *testing.T) {
	f, _, _ := newFrontend(t, app.LaunchOptions{})
	f.Draw(0)
	found := false
	for y := 0; y < f.rows; y++ {
		if strings.Contains(row(f, y), "Seaplane") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected the start title on screen")
	}
	if !strings.Contains(row(f, 0), "start") {
		t.Fatalf("expected the menu kind in the status row, got %q", row(f, 0))
	}
}

func TestDrawCentresPlane(t *testing.T) {
	f, s, g := newFrontend(t, app.LaunchOptions{Seed: core.FixedSeed(12345)})
	s.Boot(0)
	f.Step(0)
	f.Step(5 * time.Second)
	if !g.Running() {
		t.Fatalf("expected the run in progress")
	}
	f.Draw(5 * time.Second)
	if got := f.Cell(40, 12+hudRows); got != '>' {
		t.Fatalf("expected the plane at the centre cell, got %q", got)
	}
	if !strings.HasPrefix(row(f, 0), " * ") {
		t.Fatalf("expected the score in the status row, got %q", row(f, 0))
	}
	f.Flush()
}

func TestDrawResultMenu(t *testing.T) {
	f, s, g := newFrontend(t, app.LaunchOptions{Seed: core.FixedSeed(12345)})
	s.Boot(0)
	now := time.Duration(0)
	for g.Running() && now < time.Minute {
		f.Step(now)
		now += frameTick
	}
	f.Step(now)
	f.Draw(now)
	out, ok := g.Outcome()
	if !ok {
		t.Fatalf("expected an outcome")
	}
	want := flight.ResultASCII(out.Score)
	found := false
	for y := 0; y < f.rows; y++ {
		if strings.Contains(row(f, y), want) {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected %q on screen", want)
	}
}

func TestResizeReallocates(t *testing.T) {
	f, _, _ := newFrontend(t, app.LaunchOptions{})
	f.screen.SetSize(40, 10)
	if !f.HandleEvent(context.Background(), tcell.NewEventResize(40, 10), 0) {
		t.Fatalf("resize should not quit")
	}
	if f.cols != 40 || f.rows != 10 || len(f.cells) != 400 {
		t.Fatalf("expected a 40x10 buffer, got %dx%d", f.cols, f.rows)
	}
	f.Draw(0)
	if f.Cell(39, 9) == 0 || f.Cell(40, 9) != 0 {
		t.Fatalf("unexpected bounds after resize")
	}
}

func TestRunStopsOnContext(t *testing.T) {
	f, _, _ := newFrontend(t, app.LaunchOptions{LimitReached: true})
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if err := f.Run(ctx); err != context.DeadlineExceeded {
		t.Fatalf("expected the deadline to end the loop, got %v", err)
	}
}
