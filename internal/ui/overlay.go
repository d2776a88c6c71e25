//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"seaplane/internal/core"
	"seaplane/internal/render"
	"seaplane/internal/sims/flight"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	minimapW = 200
	minimapH = 60
)

// Overlay draws optional debugging visuals on top of the flight view: the
// spline knots, the capture radii, the rolled failure point and a minimap of
// the whole run.
type Overlay struct {
	sim       *flight.Game
	showKnots bool
	showHits  bool
	showRolls bool
	showMap   bool

	pixel   *ebiten.Image
	grid    *core.ByteGrid
	painter *render.GridPainter
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim *flight.Game) *Overlay {
	o := &Overlay{sim: sim, showMap: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	o.grid = core.NewByteGrid(minimapW, minimapH)
	o.painter = render.NewGridPainter(minimapW, minimapH)
	return o
}

// Update allows the overlay to update internal state.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showKnots = !o.showKnots
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showHits = !o.showHits
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit3) {
		o.showRolls = !o.showRolls
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		o.showMap = !o.showMap
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image, cam render.Camera) {
	r := o.sim.Run()
	if r == nil {
		return
	}
	if o.showKnots {
		o.drawKnots(screen, r.Path, cam)
	}
	if o.showHits {
		o.drawHits(screen, r, cam)
	}
	if o.showRolls {
		o.drawRolls(screen, r, cam)
	}
	if o.showMap {
		o.drawMinimap(screen)
	}
}

func (o *Overlay) drawKnots(screen *ebiten.Image, p *flight.Path, cam render.Camera) {
	col := color.RGBA{R: 255, G: 220, B: 90, A: 200}
	var px, py float64
	for i, k := range p.Knots() {
		sx, sy := cam.ToScreen(p.XAtU(k.U), k.Y)
		o.drawPoint(screen, sx, sy, 6, col)
		if i > 0 {
			o.drawLine(screen, px, py, sx, sy, 1, color.RGBA{R: 255, G: 220, B: 90, A: 90})
		}
		px, py = sx, sy
	}
}

func (o *Overlay) drawHits(screen *ebiten.Image, r *flight.Run, cam render.Camera) {
	radius := float32(o.sim.Config().Params.CaptureRadius * cam.ScaleX)
	for _, b := range r.Bonuses {
		if b.Taken {
			continue
		}
		x, y := r.BonusPos(b)
		sx, sy := cam.ToScreen(x, y)
		vector.StrokeCircle(screen, float32(sx), float32(sy), radius, 1, color.RGBA{R: 140, G: 200, B: 255, A: 160}, true)
	}
}

func (o *Overlay) drawRolls(screen *ebiten.Image, r *flight.Run, cam render.Camera) {
	p := r.Path
	if r.EngineWillFail {
		x := p.XAtU(r.EngineFailU)
		sx, sy := cam.ToScreen(x, p.YAtU(r.EngineFailU))
		col := color.RGBA{R: 255, G: 90, B: 60, A: 220}
		o.drawLine(screen, sx-8, sy-8, sx+8, sy+8, 2, col)
		o.drawLine(screen, sx-8, sy+8, sx+8, sy-8, 2, col)
	}
	if r.WillOvershoot {
		sx, sy := cam.ToScreen(p.Right.X, p.Right.DeckY)
		o.drawLine(screen, sx, sy-40, sx, sy, 2, color.RGBA{R: 255, G: 90, B: 60, A: 220})
	}
}

func (o *Overlay) drawMinimap(screen *ebiten.Image) {
	r := o.sim.Run()
	cam := render.Fit(r.Path, minimapW, minimapH)
	render.Rasterize(o.grid, o.sim, cam)
	h := screen.Bounds().Dy()
	y := float64(h - minimapH - 8)
	o.drawPoint(screen, 8+minimapW/2, y+minimapH/2, minimapW+4, color.RGBA{A: 120})
	o.painter.Blit(screen, o.grid, 8, y, 1)
}

func (o *Overlay) drawPoint(screen *ebiten.Image, x, y, size float64, col color.RGBA) {
	if o.pixel == nil || size <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(x-size*0.5, y-size*0.5)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	screen.DrawImage(o.pixel, op)
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	if o.pixel == nil || thickness <= 0 {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	screen.DrawImage(o.pixel, op)
}
