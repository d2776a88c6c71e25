//go:build ebiten

package app

import (
	"context"
	"log"
	"time"

	"seaplane/internal/core"
	"seaplane/internal/render"
	"seaplane/internal/sims/flight"
	"seaplane/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const panelWidth = 260

// Game adapts the flight simulation and its session to the ebiten.Game
// interface.
type Game struct {
	sim     *flight.Game
	session *Session
	hud     *ui.HUD
	overlay *ui.Overlay
	clock   *core.Clock

	ctx    context.Context
	cancel context.CancelFunc
	loader <-chan AssetBundle
	skins  skins

	w, h int
}

// New constructs a Game from the parsed flags. Assets start loading at once;
// the session boots when they arrive or fail.
func New(cfg *Config, gate RetryGate) *Game {
	sim := flight.New(cfg.FlightConfig())
	ctx, cancel := context.WithCancel(context.Background())
	size := sim.Size()
	return &Game{
		sim:     sim,
		session: NewSession(sim, cfg.LaunchOptions(), gate, size),
		hud:     ui.NewHUD(sim, panelWidth),
		overlay: ui.NewOverlay(sim),
		clock:   core.NewClock(),
		ctx:     ctx,
		cancel:  cancel,
		loader:  LoadAssets(ctx, cfg.Assets),
		w:       size.W,
		h:       size.H,
	}
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	now := g.clock.Now()
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.close()
		return ebiten.Termination
	}
	g.pollAssets(now)

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.session.Press(g.ctx, now)
	}
	g.hud.Update()
	g.overlay.Update()

	g.sim.Tick(now)
	g.session.Update(now)
	if g.session.Quit() {
		g.close()
		return ebiten.Termination
	}
	return nil
}

func (g *Game) pollAssets(now time.Duration) {
	if g.loader == nil {
		return
	}
	select {
	case b := <-g.loader:
		g.loader = nil
		if b.Err != nil {
			log.Printf("assets: %v; flying without skins", b.Err)
		} else {
			g.skins = newSkins(b)
		}
		g.sim.SetAssets(b.Catalog())
		g.session.Boot(now)
	default:
	}
}

func (g *Game) close() {
	g.session.Close()
	g.cancel()
}

// Draw renders the current frame.
func (g *Game) Draw(screen *ebiten.Image) {
	now := g.clock.Now()
	cam := render.Follow(g.sim.Pose(), g.w, g.h, 1)
	drawWorld(screen, g.sim, cam, g.skins)
	if g.sim.Run() != nil {
		g.overlay.Draw(screen, cam)
		g.hud.DrawPickups(screen, g.sim.PickupTexts(), now, cam)
	}
	if g.sim.Running() {
		g.hud.DrawScore(screen, g.sim.Score())
	}
	if m := g.session.Menu(); m.Kind != MenuHidden {
		ui.DrawMenu(screen, m.Title, m.Detail, m.Button)
	}
	g.hud.Draw(screen)
}

// Layout keeps the logical screen at the configured viewport.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.w, g.h
}
