//go:build ebiten

package app

import (
	"image/color"
	"math"

	"seaplane/internal/render"
	"seaplane/internal/sims/flight"
	"seaplane/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const (
	bonusDrawR   = 14
	guideSamples = 160
)

var (
	seaColor   = color.RGBA{R: 18, G: 70, B: 96, A: 255}
	guideColor = color.RGBA{R: 255, G: 255, B: 255, A: 60}
	pierColor  = color.RGBA{R: 150, G: 120, B: 90, A: 255}
	fakeColor  = color.RGBA{R: 110, G: 100, B: 90, A: 255}
	planeColor = color.RGBA{R: 245, G: 245, B: 250, A: 255}
	floatColor = color.RGBA{R: 220, G: 80, B: 60, A: 255}
)

// skins holds the decoded asset images uploaded to the GPU.
type skins struct {
	backgrounds []*ebiten.Image
	piers       []*ebiten.Image
}

func newSkins(b AssetBundle) skins {
	var s skins
	for _, img := range b.Backgrounds {
		s.backgrounds = append(s.backgrounds, ebiten.NewImageFromImage(img))
	}
	for _, img := range b.Piers {
		s.piers = append(s.piers, ebiten.NewImageFromImage(img))
	}
	return s
}

func pick(imgs []*ebiten.Image, i int) *ebiten.Image {
	if i < 0 || i >= len(imgs) {
		return nil
	}
	return imgs[i]
}

// drawWorld paints everything the run owns, back to front.
func drawWorld(screen *ebiten.Image, sim *flight.Game, cam render.Camera, sk skins) {
	r := sim.Run()
	var bg *ebiten.Image
	if r != nil {
		bg = pick(sk.backgrounds, r.Background)
	}
	if bg != nil {
		drawCover(screen, bg)
	} else {
		screen.Fill(render.Palette[render.CellSky])
	}
	if r == nil {
		return
	}
	p := r.Path

	_, seaTop := cam.ToScreen(0, p.SeaY)
	if seaTop < float64(cam.H) {
		top := float32(math.Max(0, seaTop))
		vector.DrawFilledRect(screen, 0, top, float32(cam.W), float32(cam.H)-top, seaColor, false)
	}
	drawGuide(screen, p, cam)

	face := basicfont.Face7x13
	for _, d := range r.Decor {
		if !cam.Visible(d.X, d.Y, d.Radius) {
			continue
		}
		col := ui.PickupColor(d.Good, 0.35)
		sx, sy := cam.ToScreen(d.X, d.Y)
		vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(d.Radius*cam.ScaleX), col, true)
		drawCentred(screen, ui.ASCII(d.Op.Short()), sx, sy+4, color.RGBA{R: 255, G: 255, B: 255, A: 90})
	}

	skin := pick(sk.piers, r.PierSkin)
	for _, fp := range r.FakePiers {
		drawPier(screen, cam, fp.X-fp.W/2, fp.Y, fp.W, fp.H, skin, fakeColor, 0.55)
	}
	for _, pr := range []flight.Pier{p.Left, p.Right} {
		drawPier(screen, cam, pr.X-pr.Width/2, pr.DeckY, pr.Width, pr.Height, skin, pierColor, 1)
	}

	for _, b := range r.Bonuses {
		if b.Taken {
			continue
		}
		x, y := r.BonusPos(b)
		if !cam.Visible(x, y, bonusDrawR) {
			continue
		}
		sx, sy := cam.ToScreen(x, y)
		vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(bonusDrawR*cam.ScaleX), ui.PickupColor(b.Good, 0.9), true)
		label := ui.ASCII(b.Op.Label())
		w := text.BoundString(face, label).Dx()
		text.Draw(screen, label, face, int(sx)-w/2, int(sy)-bonusDrawR-4, color.White)
	}

	for _, pt := range sim.Particles() {
		drawParticle(screen, cam, pt)
	}
	drawPlane(screen, cam, sim.Pose())
}

func drawCover(screen, img *ebiten.Image) {
	sb, ib := screen.Bounds(), img.Bounds()
	if ib.Dx() == 0 || ib.Dy() == 0 {
		return
	}
	s := math.Max(float64(sb.Dx())/float64(ib.Dx()), float64(sb.Dy())/float64(ib.Dy()))
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(s, s)
	op.GeoM.Translate((float64(sb.Dx())-float64(ib.Dx())*s)/2, (float64(sb.Dy())-float64(ib.Dy())*s)/2)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}

// drawGuide dashes the flight line so the player can read upcoming turns.
func drawGuide(screen *ebiten.Image, p *flight.Path, cam render.Camera) {
	px, py := cam.ToScreen(p.XAtU(0), p.YAtU(0))
	for i := 1; i <= guideSamples; i++ {
		u := float64(i) / guideSamples
		sx, sy := cam.ToScreen(p.XAtU(u), p.YAtU(u))
		if i%2 == 0 {
			vector.StrokeLine(screen, float32(px), float32(py), float32(sx), float32(sy), 1.5, guideColor, true)
		}
		px, py = sx, sy
	}
}

func drawPier(screen *ebiten.Image, cam render.Camera, x, y, w, h float64, skin *ebiten.Image, fallback color.RGBA, shade float64) {
	sx, sy := cam.ToScreen(x, y)
	sw, sh := w*cam.ScaleX, h*cam.ScaleY
	if sx+sw < 0 || sx > float64(cam.W) {
		return
	}
	if skin == nil {
		vector.DrawFilledRect(screen, float32(sx), float32(sy), float32(sw), float32(sh), fallback, false)
		return
	}
	b := skin.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(sw/float64(b.Dx()), sh/float64(b.Dy()))
	op.GeoM.Translate(sx, sy)
	op.ColorM.Scale(shade, shade, shade, 1)
	screen.DrawImage(skin, op)
}

func drawParticle(screen *ebiten.Image, cam render.Camera, pt flight.Particle) {
	if !cam.Visible(pt.X, pt.Y, pt.R) {
		return
	}
	sx, sy := cam.ToScreen(pt.X, pt.Y)
	fade := 1 - pt.Progress()
	r := float32(pt.R * cam.ScaleX)
	switch pt.Kind {
	case flight.ParticleExplosion:
		col := color.RGBA{R: 255, G: uint8(90 + 120*fade), B: 40, A: uint8(255 * fade)}
		vector.DrawFilledCircle(screen, float32(sx), float32(sy), r*(0.5+0.5*float32(fade)), col, true)
	case flight.ParticleSplash:
		vector.DrawFilledCircle(screen, float32(sx), float32(sy), r, color.RGBA{R: 200, G: 240, B: 255, A: uint8(220 * fade)}, true)
	case flight.ParticleStar:
		drawStar(screen, sx, sy, float64(r), ui.PickupColor(pt.Good, fade))
	}
}

func drawStar(screen *ebiten.Image, x, y, r float64, col color.Color) {
	for i := 0; i < 5; i++ {
		a := -math.Pi/2 + float64(i)*2*math.Pi/5
		vector.StrokeLine(screen, float32(x), float32(y), float32(x+r*math.Cos(a)), float32(y+r*math.Sin(a)), 1.5, col, true)
	}
}

// drawPlane draws a small floatplane rotated to the pose heading.
func drawPlane(screen *ebiten.Image, cam render.Camera, pose flight.Pose) {
	cx, cy := cam.ToScreen(pose.X, pose.Y)
	c, s := math.Cos(pose.Angle), math.Sin(pose.Angle)
	pt := func(dx, dy float64) (float32, float32) {
		return float32(cx + (dx*c-dy*s)*cam.ScaleX), float32(cy + (dx*s+dy*c)*cam.ScaleY)
	}
	line := func(x1, y1, x2, y2 float64, w float32, col color.Color) {
		ax, ay := pt(x1, y1)
		bx, by := pt(x2, y2)
		vector.StrokeLine(screen, ax, ay, bx, by, w*float32(cam.ScaleX), col, true)
	}
	line(-10, 7, 12, 7, 3, floatColor)
	line(-4, 1, -4, 7, 1.5, planeColor)
	line(6, 1, 6, 7, 1.5, planeColor)
	line(-17, 0, 17, 0, 5, planeColor)
	line(-17, 0, -21, -9, 3, planeColor)
	line(-2, -2, 8, -2, 3, floatColor)
	line(17, -3, 17, 3, 1.5, planeColor)
}

func drawCentred(screen *ebiten.Image, s string, x, y float64, col color.Color) {
	face := basicfont.Face7x13
	w := text.BoundString(face, s).Dx()
	text.Draw(screen, s, face, int(x)-w/2, int(y), col)
}
