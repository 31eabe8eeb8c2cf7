package scene

import (
	"math"
	"math/rand"

	"hypermaze/internal/geom"
	"hypermaze/internal/palette"
	"hypermaze/internal/poincare"
)

const maxDiskRadius = 0.85 // keep generated rooms well inside the unit circle

// Features represents the configuration for the generator.
type Features struct {
	Rings      int     // concentric rooms around the origin
	Sides      int     // polygon sides per room
	BaseRadius float64 // disk radius of the innermost room
	Gap        float64 // fraction of each edge carved out as a doorway, 0..1
}

// Generator produces sample mazes: concentric regular-polygon rooms of
// Poincaré walls around the disk origin, one color per ring, each edge
// split by a doorway. Output is converted to hyperboloid coordinates like
// any other Poincaré scene.
type Generator struct {
	Features Features
}

func NewGenerator() *Generator {
	return &Generator{}
}

// initFeatures randomizes the features of the generator.
func (g *Generator) initFeatures(rng *rand.Rand) {
	v := rng.Float64()
	if v < 0.7 {
		g.Features.Rings = 3
		g.Features.Sides = 6
	} else if v < 0.9 {
		g.Features.Rings = 2
		g.Features.Sides = 4
	} else {
		g.Features.Rings = 4
		g.Features.Sides = 8
	}

	g.Features.BaseRadius = 0.2 + rng.Float64()*0.1
	g.Features.Gap = 0.15
}

// Generate creates a maze from the seed; deterministic for a fixed seed.
// If features is nil the generator randomizes its own.
func (g *Generator) Generate(seed int64, features *Features) Scene {
	rng := rand.New(rand.NewSource(seed))
	if features == nil {
		g.initFeatures(rng)
	} else {
		g.Features = *features
	}

	step := 0.0
	if g.Features.Rings > 1 {
		step = (maxDiskRadius - g.Features.BaseRadius) / float64(g.Features.Rings-1)
	}

	colors := palette.WallColors(rng, g.Features.Rings)
	var walls []poincare.Wall
	for ring := 0; ring < g.Features.Rings; ring++ {
		radius := g.Features.BaseRadius + float64(ring)*step
		walls = append(walls, g.ringWalls(radius, colors[ring], rng)...)
	}

	converted := make([]geom.HyperWall, len(walls))
	for i, w := range walls {
		converted[i] = geom.WallFromPoincare(w)
	}
	return Scene{Walls: converted}
}

// ringWalls lays one polygon room at the given disk radius. With a positive
// gap each edge becomes two walls with a doorway between them, at a position
// that varies per edge.
func (g *Generator) ringWalls(radius float64, color palette.RGBColor, rng *rand.Rand) []poincare.Wall {
	sides := g.Features.Sides
	walls := make([]poincare.Wall, 0, 2*sides)
	for i := 0; i < sides; i++ {
		a0 := 2 * math.Pi * float64(i) / float64(sides)
		a1 := 2 * math.Pi * float64(i+1) / float64(sides)
		p0 := poincare.MakePoint(radius*math.Cos(a0), radius*math.Sin(a0))
		p1 := poincare.MakePoint(radius*math.Cos(a1), radius*math.Sin(a1))

		gap := clampGap(g.Features.Gap)
		if gap == 0 {
			walls = append(walls, poincare.Wall{Beginning: p0, End: p1, Color: color})
			continue
		}

		t := rng.Float64() * (1 - gap)
		walls = append(walls,
			poincare.Wall{Beginning: p0, End: lerp(p0, p1, t), Color: color},
			poincare.Wall{Beginning: lerp(p0, p1, t+gap), End: p1, Color: color},
		)
	}
	return walls
}

func clampGap(gap float64) float64 {
	if gap <= 0 {
		return 0
	}
	if gap >= 1 {
		return 1
	}
	return gap
}

// lerp interpolates between two disk points. Chords of the disk stay inside
// it, so interpolation cannot leave the model's domain.
func lerp(a, b poincare.Point, t float64) poincare.Point {
	return poincare.MakePoint(a.U+(b.U-a.U)*t, a.V+(b.V-a.V)*t)
}
