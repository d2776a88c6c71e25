//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// DrawMenu dims the screen and centres the menu. An empty button draws no
// action box.
func DrawMenu(screen *ebiten.Image, title, detail, button string) {
	b := screen.Bounds()
	w, h := float32(b.Dx()), float32(b.Dy())
	vector.DrawFilledRect(screen, 0, 0, w, h, color.RGBA{R: 4, G: 8, B: 16, A: 170}, false)

	face := basicfont.Face7x13
	cx, cy := b.Dx()/2, b.Dy()/2
	centred := func(s string, y int, col color.Color) {
		tw := text.BoundString(face, s).Dx()
		text.Draw(screen, s, face, cx-tw/2, y, col)
	}
	centred(ASCII(title), cy-24, color.RGBA{R: 240, G: 240, B: 250, A: 255})
	if detail != "" {
		centred(ASCII(detail), cy-4, color.RGBA{R: 170, G: 180, B: 200, A: 255})
	}
	if button == "" {
		return
	}
	label := button + " [Space]"
	bw := float32(text.BoundString(face, label).Dx() + 2*panelPadding)
	bx, by := float32(cx)-bw/2, float32(cy+14)
	vector.DrawFilledRect(screen, bx, by, bw, 26, color.RGBA{R: 54, G: 56, B: 64, A: 255}, false)
	vector.StrokeRect(screen, bx, by, bw, 26, 1, color.RGBA{R: 120, G: 130, B: 150, A: 255}, false)
	centred(label, cy+31, color.RGBA{R: 230, G: 230, B: 240, A: 255})
}
