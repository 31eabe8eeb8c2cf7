package palette_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"hypermaze/internal/palette"
)

func TestHex(t *testing.T) {
	require.Equal(t, "#ff0000", palette.RGBColor{R: 255}.Hex())
	require.Equal(t, "#000000", palette.RGBColor{}.Hex())
	require.Equal(t, "#ffffff", palette.RGBColor{R: 255, G: 255, B: 255}.Hex())
}

func TestWallColorsDeterministic(t *testing.T) {
	a := palette.WallColors(rand.New(rand.NewSource(42)), 8)
	b := palette.WallColors(rand.New(rand.NewSource(42)), 8)
	require.Len(t, a, 8)
	require.Equal(t, a, b, "same seed must yield the same colors")
}

func brightness(c palette.RGBColor) int {
	return int(c.R) + int(c.G) + int(c.B)
}

func TestShadeDarkensWithDistance(t *testing.T) {
	c := palette.RGBColor{R: 200, G: 180, B: 40}
	near := palette.Shade(c, 0.5)
	far := palette.Shade(c, 3.0)

	require.Less(t, brightness(near), brightness(c))
	require.Less(t, brightness(far), brightness(near))
}

func TestShadeLeavesBadDistancesAlone(t *testing.T) {
	c := palette.RGBColor{R: 200, G: 180, B: 40}
	require.Equal(t, c, palette.Shade(c, math.NaN()))
	require.Equal(t, c, palette.Shade(c, -1))
}
