package render

import (
	"image/color"
	"strconv"
)

// Background is used for blank cells.
var Background = color.RGBA{R: 16, G: 16, B: 20, A: 255}

// Other is used for non-blank cells that carry no known marker.
var Other = color.RGBA{R: 110, G: 110, B: 120, A: 255}

// markerPalette maps numeric markers to colours. 1 is the snake body and live
// Life cells, 2 is food, 2..8 are the tetros tile types.
var markerPalette = map[int]color.RGBA{
	1: {R: 240, G: 240, B: 240, A: 255},
	2: {R: 220, G: 60, B: 60, A: 255},
	3: {R: 240, G: 220, B: 40, A: 255},
	4: {R: 60, G: 200, B: 80, A: 255},
	5: {R: 60, G: 90, B: 220, A: 255},
	6: {R: 60, G: 210, B: 220, A: 255},
	7: {R: 240, G: 150, B: 40, A: 255},
	8: {R: 170, G: 70, B: 210, A: 255},
}

// ColorFor returns the colour a rendered cell value is drawn with.
func ColorFor(value string) color.RGBA {
	if value == "" {
		return Background
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return Other
	}
	if c, ok := markerPalette[n]; ok {
		return c
	}
	return Other
}

// fillPaletteRGBA converts cell values into RGBA pixels in buf, one pixel per
// cell in row-major order.
func fillPaletteRGBA(buf []byte, cells []string) {
	for i, v := range cells {
		base := i * 4
		if base+3 >= len(buf) {
			return
		}
		col := ColorFor(v)
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
