// Package palette provides the display colors walls carry and HSV-based
// helpers for generating and shading them.
package palette

import (
	"math"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBColor is the display color a wall carries. The geometry core never
// interprets it: it is decoded with the wall and passed through model
// conversion unchanged.
type RGBColor struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Hex returns the color formatted as "#rrggbb".
func (c RGBColor) Hex() string {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex()
}

// WallColors returns n wall colors using HSV generation: full hue range with
// mid saturation and brightness, so adjacent walls stay distinguishable.
func WallColors(rng *rand.Rand, n int) []RGBColor {
	// Convert HSV to RGB using go-colorful.
	hsb := func(h, s, b float64) RGBColor {
		// Convert from 0-100 range to 0-360 for hue, 0-1 for saturation and
		// brightness.
		hue := h * 3.6
		sat := clamp(s/100.0, 0, 1)
		bright := clamp(b/100.0, 0, 1)

		c := colorful.Hsv(hue, sat, bright)
		red, green, blue := c.RGB255()
		return RGBColor{R: red, G: green, B: blue}
	}

	out := make([]RGBColor, n)
	for i := range out {
		out[i] = hsb(rng.Float64()*100, rng.Float64()*50+25, rng.Float64()*50+25)
	}
	return out
}

// Shade darkens the color for depth cueing, dividing brightness by
// 1+distance. Distances that are NaN or negative leave the color untouched;
// a malformed geometry input must not corrupt the color channel.
func Shade(c RGBColor, distance float64) RGBColor {
	if math.IsNaN(distance) || distance < 0 {
		return c
	}

	// Round-trip through HSV to touch brightness only.
	col := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	h, s, v := col.Hsv()
	v = clamp(v/(1+distance), 0, 1)

	shaded := colorful.Hsv(h, s, v)
	red, green, blue := shaded.RGB255()
	return RGBColor{R: red, G: green, B: blue}
}
