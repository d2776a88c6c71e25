// Package term runs the flight sim in a terminal. The world is rasterised
// into cells, one row on top is kept for the score and menu title.
package term

import (
	"context"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"seaplane/internal/app"
	"seaplane/internal/core"
	"seaplane/internal/render"
	"seaplane/internal/sims/flight"
	"seaplane/internal/ui"
)

const (
	// SpanX is the world width shown across the terminal.
	SpanX = 1200.0
	// CellAspect is the height/width ratio of a terminal cell.
	CellAspect = 2.0

	frameTick = 16 * time.Millisecond
	hudRows   = 1
)

type glyph struct {
	r     rune
	style tcell.Style
}

var base = tcell.StyleDefault.Background(tcell.ColorBlack)

var glyphs = [...]glyph{
	render.CellSky:        {' ', base},
	render.CellSea:        {'~', base.Foreground(tcell.ColorSteelBlue).Background(tcell.ColorNavy)},
	render.CellPath:       {'.', base.Foreground(tcell.ColorDimGray)},
	render.CellDecorGood:  {'+', base.Foreground(tcell.ColorDarkGreen)},
	render.CellDecorBad:   {'-', base.Foreground(tcell.ColorMaroon)},
	render.CellFakePier:   {'=', base.Foreground(tcell.ColorGray)},
	render.CellPier:       {'#', base.Foreground(tcell.ColorTan).Bold(true)},
	render.CellBonusGood:  {'*', base.Foreground(tcell.ColorLime).Bold(true)},
	render.CellBonusBad:   {'*', base.Foreground(tcell.ColorRed).Bold(true)},
	render.CellBonusTaken: {'.', base.Foreground(tcell.ColorGray)},
	render.CellSplash:     {'o', base.Foreground(tcell.ColorLightCyan)},
	render.CellSpark:      {'%', base.Foreground(tcell.ColorOrange)},
	render.CellStarGood:   {'\'', base.Foreground(tcell.ColorLime)},
	render.CellStarBad:    {'\'', base.Foreground(tcell.ColorRed)},
	render.CellPlane:      {'>', base.Foreground(tcell.ColorWhite).Bold(true)},
}

// Frontend draws a flight game and its session onto a tcell screen.
type Frontend struct {
	screen  tcell.Screen
	sim     *flight.Game
	session *app.Session

	grid  *core.ByteGrid
	cells []glyph
	cols  int
	rows  int
}

// New wires a frontend to an initialised screen.
func New(screen tcell.Screen, sim *flight.Game, session *app.Session) *Frontend {
	f := &Frontend{screen: screen, sim: sim, session: session, grid: core.NewByteGrid(1, 1)}
	f.resize()
	return f
}

func (f *Frontend) resize() {
	f.cols, f.rows = f.screen.Size()
	if f.cols < 1 {
		f.cols = 1
	}
	if f.rows < hudRows+1 {
		f.rows = hudRows + 1
	}
	f.cells = make([]glyph, f.cols*f.rows)
}

// Run boots the session and loops until the session quits, the player
// presses q or Esc, or ctx ends.
func (f *Frontend) Run(ctx context.Context) error {
	clock := core.NewClock()
	f.sim.SetAssets(flight.AssetCatalog{})
	f.session.Boot(clock.Now())
	defer f.session.Close()

	ticker := time.NewTicker(frameTick)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)
	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := f.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if !f.HandleEvent(ctx, ev, clock.Now()) {
				return nil
			}
		case <-ticker.C:
			now := clock.Now()
			f.Step(now)
			if f.session.Quit() {
				return nil
			}
			f.Draw(now)
			f.Flush()
		}
	}
}

// HandleEvent reacts to one terminal event. It returns false when the
// player asked to quit.
func (f *Frontend) HandleEvent(ctx context.Context, ev tcell.Event, now time.Duration) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyEnter:
			f.session.Press(ctx, now)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case ' ':
				f.session.Press(ctx, now)
			}
		}
	case *tcell.EventResize:
		f.resize()
		f.screen.Sync()
	}
	return true
}

// Step advances the sim and the session to now.
func (f *Frontend) Step(now time.Duration) {
	f.sim.Tick(now)
	f.session.Update(now)
}

// Camera returns the cell camera for the world rows.
func (f *Frontend) Camera() render.Camera {
	return render.FollowCells(f.sim.Pose(), f.cols, f.rows-hudRows, SpanX, CellAspect)
}

// Draw composes the frame into the cell buffer.
func (f *Frontend) Draw(now time.Duration) {
	cam := f.Camera()
	render.Rasterize(f.grid, f.sim, cam)
	for y := 0; y < f.grid.H; y++ {
		for x := 0; x < f.grid.W; x++ {
			f.set(x, y+hudRows, glyphFor(f.grid.At(x, y)))
		}
	}
	if f.sim.Run() != nil {
		for _, t := range ui.VisiblePickups(f.sim.PickupTexts(), now) {
			sx, sy := cam.ToScreen(t.X, t.Y-t.Lift(now))
			label := ui.ASCII(t.Text)
			style := base.Foreground(tcell.ColorRed)
			if t.Good {
				style = base.Foreground(tcell.ColorLime)
			}
			f.text(int(sx)-len(label)/2, int(sy)+hudRows, label, style)
		}
		f.drawPlane(cam)
	}

	f.fillRow(0, base.Reverse(true))
	if f.sim.Running() {
		f.text(1, 0, ui.ScoreLabel(f.sim.Score()), base.Reverse(true).Bold(true))
	}
	if m := f.session.Menu(); m.Kind != app.MenuHidden {
		f.drawMenu(m)
	}
}

// Flush copies the cell buffer to the screen.
func (f *Frontend) Flush() {
	for y := 0; y < f.rows; y++ {
		for x := 0; x < f.cols; x++ {
			c := f.cells[y*f.cols+x]
			f.screen.SetContent(x, y, c.r, nil, c.style)
		}
	}
	f.screen.Show()
}

// Cell returns the composed rune at (x, y).
func (f *Frontend) Cell(x, y int) rune {
	if x < 0 || y < 0 || x >= f.cols || y >= f.rows {
		return 0
	}
	return f.cells[y*f.cols+x].r
}

func (f *Frontend) drawPlane(cam render.Camera) {
	p := f.sim.Pose()
	sx, sy := cam.ToScreen(p.X, p.Y)
	g := glyphs[render.CellPlane]
	if math.Cos(p.Angle) < 0 {
		g.r = '<'
	}
	f.set(int(math.Floor(sx)), int(math.Floor(sy))+hudRows, g)
}

func (f *Frontend) drawMenu(m app.Menu) {
	mid := hudRows + (f.rows-hudRows)/2
	style := base.Foreground(tcell.ColorWhite).Bold(true)
	lines := []string{ui.ASCII(m.Title)}
	if m.Detail != "" {
		lines = append(lines, m.Detail)
	}
	if m.Button != "" {
		lines = append(lines, "[Space] "+m.Button)
	}
	for i, l := range lines {
		f.text((f.cols-len(l))/2, mid-len(lines)/2+i, l, style)
	}
	f.text(f.cols-len(m.Kind.String())-1, 0, m.Kind.String(), base.Reverse(true))
}

func (f *Frontend) fillRow(y int, style tcell.Style) {
	for x := 0; x < f.cols; x++ {
		f.set(x, y, glyph{' ', style})
	}
}

func (f *Frontend) text(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		f.set(x+i, y, glyph{r, style})
	}
}

func (f *Frontend) set(x, y int, g glyph) {
	if x < 0 || y < 0 || x >= f.cols || y >= f.rows {
		return
	}
	f.cells[y*f.cols+x] = g
}

func glyphFor(v uint8) glyph {
	if int(v) >= len(glyphs) {
		return glyphs[render.CellSky]
	}
	return glyphs[v]
}
