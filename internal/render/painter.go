//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"seaplane/internal/core"
)

// GridPainter uploads a rasterised ByteGrid into a single RGBA image.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads the grid into the painter image and draws it at (x, y) with
// an integer scale.
func (gp *GridPainter) Blit(dst *ebiten.Image, grid *core.ByteGrid, x, y float64, scale int) {
	if grid.W != gp.w || grid.H != gp.h {
		gp.w, gp.h = grid.W, grid.H
		gp.buf = make([]byte, 4*gp.w*gp.h)
		gp.img = ebiten.NewImage(gp.w, gp.h)
	}
	FillRGBA(gp.buf, grid.Cells())
	gp.img.WritePixels(gp.buf)

	if scale <= 0 {
		scale = 1
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	op.GeoM.Translate(x, y)
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
