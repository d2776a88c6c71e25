package render

import (
	"math"

	"seaplane/internal/sims/flight"
)

// Camera maps a world-space rectangle onto a screen of W×H units (pixels or
// terminal cells). The two axes scale independently so terminal cells,
// which are taller than wide, keep world proportions.
type Camera struct {
	Left, Top      float64
	ScaleX, ScaleY float64
	W, H           int
}

// Follow centres the view on the plane at the given zoom.
func Follow(p flight.Pose, w, h int, zoom float64) Camera {
	if zoom <= 0 {
		zoom = 1
	}
	return Camera{
		Left:   p.X - float64(w)/(2*zoom),
		Top:    p.Y - float64(h)/(2*zoom),
		ScaleX: zoom,
		ScaleY: zoom,
		W:      w,
		H:      h,
	}
}

// FollowCells centres a cell grid on the plane. spanX is the world width
// shown across all columns; cellAspect is the height/width ratio of a cell.
func FollowCells(p flight.Pose, cols, rows int, spanX, cellAspect float64) Camera {
	if cols <= 0 || spanX <= 0 {
		return Follow(p, cols, rows, 1)
	}
	if cellAspect <= 0 {
		cellAspect = 1
	}
	sx := float64(cols) / spanX
	sy := sx / cellAspect
	return Camera{
		Left:   p.X - float64(cols)/(2*sx),
		Top:    p.Y - float64(rows)/(2*sy),
		ScaleX: sx,
		ScaleY: sy,
		W:      cols,
		H:      rows,
	}
}

// Fit frames the whole run, from just above the flight ceiling to below the
// sea, preserving proportions.
func Fit(p *flight.Path, w, h int) Camera {
	left := p.Left.X - p.Left.Width
	right := p.Right.X + p.Right.Width
	top := p.YMin - 40
	bottom := p.SeaY + 60
	s := math.Min(float64(w)/math.Max(1, right-left), float64(h)/math.Max(1, bottom-top))
	return Camera{Left: left, Top: top, ScaleX: s, ScaleY: s, W: w, H: h}
}

// ToScreen converts world coordinates to screen coordinates.
func (c Camera) ToScreen(x, y float64) (float64, float64) {
	return (x - c.Left) * c.ScaleX, (y - c.Top) * c.ScaleY
}

// ToWorld converts screen coordinates back to world coordinates.
func (c Camera) ToWorld(sx, sy float64) (float64, float64) {
	if c.ScaleX == 0 || c.ScaleY == 0 {
		return c.Left, c.Top
	}
	return sx/c.ScaleX + c.Left, sy/c.ScaleY + c.Top
}

// View returns the world rectangle covered by the camera.
func (c Camera) View() (left, top, right, bottom float64) {
	right, bottom = c.ToWorld(float64(c.W), float64(c.H))
	return c.Left, c.Top, right, bottom
}

// Visible reports whether a world point lies within the view grown by pad
// world pixels.
func (c Camera) Visible(x, y, pad float64) bool {
	l, t, r, b := c.View()
	return x >= l-pad && x <= r+pad && y >= t-pad && y <= b+pad
}
