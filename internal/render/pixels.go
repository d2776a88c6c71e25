package render

import "image/color"

// Palette maps each cell code to a colour.
var Palette = []color.RGBA{
	CellSky:        {R: 14, G: 24, B: 38, A: 255},
	CellSea:        {R: 18, G: 70, B: 96, A: 255},
	CellPath:       {R: 70, G: 96, B: 120, A: 255},
	CellDecorGood:  {R: 40, G: 110, B: 70, A: 255},
	CellDecorBad:   {R: 120, G: 60, B: 60, A: 255},
	CellFakePier:   {R: 110, G: 110, B: 110, A: 255},
	CellPier:       {R: 200, G: 200, B: 200, A: 255},
	CellBonusGood:  {R: 74, G: 222, B: 128, A: 255},
	CellBonusBad:   {R: 248, G: 113, B: 113, A: 255},
	CellBonusTaken: {R: 60, G: 60, B: 70, A: 255},
	CellSplash:     {R: 200, G: 240, B: 255, A: 255},
	CellSpark:      {R: 255, G: 170, B: 60, A: 255},
	CellStarGood:   {R: 74, G: 222, B: 128, A: 255},
	CellStarBad:    {R: 248, G: 113, B: 113, A: 255},
	CellPlane:      {R: 255, G: 255, B: 255, A: 255},
}

// FillRGBA converts cell codes into RGBA pixels in buf using Palette.
func FillRGBA(buf []byte, cells []uint8) {
	fillPaletteRGBA(buf, cells, Palette)
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
