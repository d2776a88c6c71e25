//go:build ebiten

package ui

import (
	"image/color"
	"time"

	"seaplane/internal/core"
	"seaplane/internal/render"
	"seaplane/internal/sims/flight"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the score readout, the floating pickup labels and a toggleable
// parameter panel along the right edge.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot
	title      string
	show       bool
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{sim: sim, width: width, title: buildTitle(sim)}
}

// Update toggles the panel with P and refreshes the cached snapshot.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		h.show = !h.show
	}
	if !h.show {
		return
	}
	provider, ok := h.sim.(core.ParameterProvider)
	if !ok {
		h.snapshot = core.ParameterSnapshot{}
		return
	}
	h.snapshot = provider.Parameters()
}

// Draw paints the panel, when shown, against the right edge of screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || !h.show || h.width <= 0 {
		return
	}
	b := screen.Bounds()
	height := b.Dy()
	if height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dx() != h.width || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 220})
	h.drawLines()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(b.Dx()-h.width), 0)
	screen.DrawImage(h.panel, op)
}

// DrawScore shows the current score in the top-left corner.
func (h *HUD) DrawScore(screen *ebiten.Image, score float64) {
	face := basicfont.Face7x13
	label := ScoreLabel(score)
	text.Draw(screen, label, face, panelPadding+1, panelPadding+headerBaseline+1, color.RGBA{A: 160})
	text.Draw(screen, label, face, panelPadding, panelPadding+headerBaseline, color.RGBA{R: 255, G: 226, B: 120, A: 255})
}

// DrawPickups draws the floating labels of collected bonuses.
func (h *HUD) DrawPickups(screen *ebiten.Image, texts []flight.PickupText, now time.Duration, cam render.Camera) {
	face := basicfont.Face7x13
	for _, t := range VisiblePickups(texts, now) {
		label := ASCII(t.Text)
		sx, sy := cam.ToScreen(t.X, t.Y-t.Lift(now))
		w := text.BoundString(face, label).Dx()
		text.Draw(screen, label, face, int(sx)-w/2, int(sy), PickupColor(t.Good, t.Alpha(now)))
	}
}

func (h *HUD) drawLines() {
	face := basicfont.Face7x13
	headerY := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, headerY, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	lines := PanelLines(h.snapshot)
	if len(lines) == 0 {
		text.Draw(h.panel, "No parameters", face, panelPadding, headerY+infoSpacing, color.RGBA{R: 160, G: 160, B: 170, A: 255})
		return
	}
	y := controlsTop
	for _, l := range lines {
		if l.Header {
			y += lineHeight / 2
			text.Draw(h.panel, l.Label, face, panelPadding, y, color.RGBA{R: 150, G: 190, B: 230, A: 255})
			y += lineHeight
			continue
		}
		text.Draw(h.panel, l.Label, face, panelPadding, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
		w := text.BoundString(face, l.Value).Dx()
		text.Draw(h.panel, l.Value, face, h.width-panelPadding-w, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
		y += lineHeight
	}
}

const (
	panelPadding   = 12
	lineHeight     = 16
	headerBaseline = 18
	infoSpacing    = 36
	controlsTop    = panelPadding + headerBaseline + 14
)
