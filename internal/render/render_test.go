package render

import (
	"testing"
	"time"

	"seaplane/internal/core"
	"seaplane/internal/sims/flight"
)

func startedGame(seed uint32) *flight.Game {
	g := flight.New(flight.DefaultConfig())
	g.Start(core.FixedSeed(seed), core.Size{W: 800, H: 600})
	g.Tick(0)
	return g
}

func count(grid *core.ByteGrid, v uint8) int {
	n := 0
	for _, c := range grid.Cells() {
		if c == v {
			n++
		}
	}
	return n
}

func TestPaletteCoversEveryCell(t *testing.T) {
	if len(Palette) != int(cellCount) {
		t.Fatalf("expected %d palette entries, got %d", cellCount, len(Palette))
	}
}

func TestCameraRoundTrip(t *testing.T) {
	cam := Follow(flight.Pose{X: 500, Y: 300}, 800, 600, 2)
	sx, sy := cam.ToScreen(500, 300)
	if sx != 400 || sy != 300 {
		t.Fatalf("expected the plane at the screen centre, got (%v, %v)", sx, sy)
	}
	wx, wy := cam.ToWorld(sx, sy)
	if wx != 500 || wy != 300 {
		t.Fatalf("expected round trip to (500, 300), got (%v, %v)", wx, wy)
	}
	if !cam.Visible(500, 300, 0) || cam.Visible(5000, 300, 0) {
		t.Fatalf("unexpected visibility")
	}
}

func TestFollowCellsStretchesRows(t *testing.T) {
	cam := FollowCells(flight.Pose{X: 0, Y: 0}, 80, 24, 800, 2)
	if cam.ScaleX != 0.1 || cam.ScaleY != 0.05 {
		t.Fatalf("expected scales 0.1/0.05, got %v/%v", cam.ScaleX, cam.ScaleY)
	}
	l, _, r, _ := cam.View()
	if r-l != 800 {
		t.Fatalf("expected 800 world pixels across, got %v", r-l)
	}
}

func TestRasterizeBeforeStart(t *testing.T) {
	g := flight.New(flight.DefaultConfig())
	grid := core.NewByteGrid(1, 1)
	Rasterize(grid, g, Camera{ScaleX: 1, ScaleY: 1, W: 10, H: 5})
	if grid.W != 10 || grid.H != 5 {
		t.Fatalf("expected grid resized to 10x5, got %dx%d", grid.W, grid.H)
	}
	if count(grid, CellSky) != 50 {
		t.Fatalf("expected an empty sky")
	}
}

func TestRasterizeFitShowsWholeRun(t *testing.T) {
	g := startedGame(12345)
	cam := Fit(g.Run().Path, 160, 40)
	grid := core.NewByteGrid(cam.W, cam.H)
	Rasterize(grid, g, cam)

	if count(grid, CellPlane) != 1 {
		t.Fatalf("expected exactly one plane cell, got %d", count(grid, CellPlane))
	}
	if count(grid, CellPier) < 2 {
		t.Fatalf("expected both piers to be drawn")
	}
	if count(grid, CellPath) == 0 {
		t.Fatalf("expected the flight path to be drawn")
	}
	if grid.At(0, grid.H-1) != CellSea {
		t.Fatalf("expected sea along the bottom row, got %d", grid.At(0, grid.H-1))
	}
	sky := 0
	for x := 0; x < grid.W; x++ {
		if grid.At(x, 0) == CellSky {
			sky++
		}
	}
	if sky == 0 {
		t.Fatalf("expected sky along the top row")
	}
}

func TestRasterizeFollowsPlane(t *testing.T) {
	g := startedGame(12345)
	g.Tick(5 * time.Second)
	cam := FollowCells(g.Pose(), 81, 25, 1200, 2)
	grid := core.NewByteGrid(cam.W, cam.H)
	Rasterize(grid, g, cam)
	if grid.At(40, 12) != CellPlane {
		t.Fatalf("expected the plane at the centre cell, got %d", grid.At(40, 12))
	}
}

func TestFillRGBAClampsUnknownCodes(t *testing.T) {
	buf := make([]byte, 8)
	FillRGBA(buf, []uint8{CellPlane, 250})
	want := Palette[len(Palette)-1]
	if buf[4] != want.R || buf[5] != want.G || buf[6] != want.B || buf[7] != want.A {
		t.Fatalf("expected unknown code to use the last palette entry")
	}
	empty := []byte{1, 2, 3, 4}
	fillPaletteRGBA(empty, []uint8{3}, nil)
	for i, b := range empty {
		if b != 0 {
			t.Fatalf("expected cleared pixel, byte %d = %d", i, b)
		}
	}
}
