package exporter

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"ansistyle/internal/types"
)

// cubeLevels are the xterm component values backing the 6x6x6 cube
// (palette entries 16-231).
var cubeLevels = [6]uint8{0x00, 0x5F, 0x87, 0xAF, 0xD7, 0xFF}

// palette256 holds the RGB values of palette entries 16-255. Entries 0-15
// are left out on purpose: terminals theme them freely, so quantizing
// onto them would shift with the user's colorscheme.
var palette256 = buildPalette()

func buildPalette() [240]colorful.Color {
	var p [240]colorful.Color

	for i := 0; i < 216; i++ {
		p[i] = componentColor(cubeLevels[i/36], cubeLevels[i/6%6], cubeLevels[i%6])
	}

	// Grayscale ramp, entries 232-255: 0x08 through 0xEE in steps of 10.
	for i := 0; i < 24; i++ {
		gray := uint8(8 + 10*i)
		p[216+i] = componentColor(gray, gray, gray)
	}

	return p
}

func componentColor(r, g, b uint8) colorful.Color {
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// Quantize returns the 8-bit palette color closest to the given 24-bit
// color, carrying over the background flag and a copy of the modifiers.
// Distance is measured in CIE-Lab space.
func Quantize(c *types.RGB) *types.Indexed {
	target := componentColor(c.R, c.G, c.B)

	best := 0
	bestDist := math.MaxFloat64
	for i, candidate := range palette256 {
		if d := target.DistanceLab(candidate); d < bestDist {
			best = i
			bestDist = d
		}
	}

	idx := types.NewIndexed(uint8(16+best), c.Background)
	idx.Mods = c.Mods.Copy()
	return idx
}
