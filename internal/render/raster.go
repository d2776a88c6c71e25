package render

import (
	"math"

	"seaplane/internal/core"
	"seaplane/internal/sims/flight"
)

// Cell codes written by Rasterize. Later layers overwrite earlier ones, so
// the order below is also the paint order.
const (
	CellSky uint8 = iota
	CellSea
	CellPath
	CellDecorGood
	CellDecorBad
	CellFakePier
	CellPier
	CellBonusGood
	CellBonusBad
	CellBonusTaken
	CellSplash
	CellSpark
	CellStarGood
	CellStarBad
	CellPlane

	cellCount
)

// Scene is the read-only view of a game that the rasteriser needs.
type Scene interface {
	Run() *flight.Run
	Pose() flight.Pose
	Particles() []flight.Particle
}

// Rasterize paints the scene into grid through cam. Nothing is drawn beyond
// the sky and sea until a run exists.
func Rasterize(grid *core.ByteGrid, s Scene, cam Camera) {
	grid.Resize(cam.W, cam.H)
	r := s.Run()
	if r == nil {
		grid.Fill(CellSky)
		return
	}
	path := r.Path

	_, seaRow := cam.ToScreen(0, path.SeaY)
	for y := 0; y < grid.H; y++ {
		v := CellSky
		if float64(y)+0.5 >= seaRow {
			v = CellSea
		}
		for x := 0; x < grid.W; x++ {
			grid.Set(x, y, v)
		}
	}

	drawPath(grid, path, cam)

	for _, d := range r.Decor {
		v := CellDecorBad
		if d.Good {
			v = CellDecorGood
		}
		plot(grid, cam, d.X, d.Y, v)
	}
	for _, fp := range r.FakePiers {
		fillRect(grid, cam, fp.X-fp.W/2, fp.Y, fp.X+fp.W/2, fp.Y+fp.H, CellFakePier)
	}
	for _, p := range []flight.Pier{path.Left, path.Right} {
		fillRect(grid, cam, p.X-p.Width/2, p.DeckY, p.X+p.Width/2, p.DeckY+p.Height, CellPier)
	}
	for _, b := range r.Bonuses {
		x, y := r.BonusPos(b)
		switch {
		case b.Taken:
			plot(grid, cam, x, y, CellBonusTaken)
		case b.Good:
			plot(grid, cam, x, y, CellBonusGood)
		default:
			plot(grid, cam, x, y, CellBonusBad)
		}
	}
	for _, p := range s.Particles() {
		plot(grid, cam, p.X, p.Y, particleCell(p))
	}

	pose := s.Pose()
	plot(grid, cam, pose.X, pose.Y, CellPlane)
}

func particleCell(p flight.Particle) uint8 {
	switch p.Kind {
	case flight.ParticleSplash:
		return CellSplash
	case flight.ParticleStar:
		if p.Good {
			return CellStarGood
		}
		return CellStarBad
	default:
		return CellSpark
	}
}

// drawPath samples the curve at half-cell steps across the visible span.
func drawPath(grid *core.ByteGrid, path *flight.Path, cam Camera) {
	left, _, right, _ := cam.View()
	x0 := math.Max(left, path.Left.X)
	x1 := math.Min(right, path.Right.X)
	if x1 <= x0 || cam.ScaleX <= 0 {
		return
	}
	step := 0.5 / cam.ScaleX
	for x := x0; x <= x1; x += step {
		y := path.YAtU(path.UAtX(x))
		plot(grid, cam, x, y, CellPath)
	}
}

func plot(grid *core.ByteGrid, cam Camera, x, y float64, v uint8) {
	sx, sy := cam.ToScreen(x, y)
	grid.Set(int(math.Floor(sx)), int(math.Floor(sy)), v)
}

// fillRect covers every cell the world rectangle touches, at least one.
func fillRect(grid *core.ByteGrid, cam Camera, x0, y0, x1, y1 float64, v uint8) {
	sx0, sy0 := cam.ToScreen(x0, y0)
	sx1, sy1 := cam.ToScreen(x1, y1)
	cx0, cy0 := int(math.Floor(sx0)), int(math.Floor(sy0))
	cx1, cy1 := int(math.Ceil(sx1))-1, int(math.Ceil(sy1))-1
	if cx1 < cx0 {
		cx1 = cx0
	}
	if cy1 < cy0 {
		cy1 = cy0
	}
	for y := cy0; y <= cy1; y++ {
		for x := cx0; x <= cx1; x++ {
			grid.Set(x, y, v)
		}
	}
}
