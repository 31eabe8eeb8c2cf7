// Command hypermaze is a scene inspector: it loads (or generates) a wall
// scene, optionally applies a viewpoint move, and prints the walls ordered
// by proximity to the observer. It renders nothing; it exists to exercise
// the geometry core end to end.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"hypermaze/internal/geom"
	"hypermaze/internal/palette"
	"hypermaze/internal/scene"
)

const logFlags = log.Ltime | log.Lshortfile

func init() {
	log.SetFlags(logFlags)
}

var (
	scenePath = flag.String("scene", "", "scene file to load; a sample maze is generated from the seed when empty")
	rotate    = flag.Float64("rotate", 0, "viewpoint rotation to apply, radians")
	moveX     = flag.Float64("move-x", 0, "viewpoint translation along x")
	moveY     = flag.Float64("move-y", 0, "viewpoint translation along y")
	shaded    = flag.Bool("shaded", false, "print depth-shaded colors instead of raw wall colors")
)

func main() {
	flag.Parse()

	var (
		s   scene.Scene
		err error
	)
	if *scenePath != "" {
		s, err = scene.Load(*scenePath)
		if err != nil {
			log.Fatalf("Failed to load scene: %v", err)
		}
	} else {
		s = scene.NewGenerator().Generate(seed(), nil /* features */)
	}

	// A viewpoint move applies the isometry to every wall endpoint: the
	// world moves, the observer stays at the origin.
	if *rotate != 0 || *moveX != 0 || *moveY != 0 {
		for i, w := range s.Walls {
			w.Beginning = w.Beginning.Rotate(*rotate).Translate(*moveX, *moveY)
			w.End = w.End.Rotate(*rotate).Translate(*moveX, *moveY)
			s.Walls[i] = w
		}
	}

	if err := geom.SortWallsByProximity(s.Walls); err != nil {
		log.Fatalf("Failed to order walls: %v", err)
	}

	fmt.Printf("%d walls, closest first:\n", len(s.Walls))
	for i, w := range s.Walls {
		color := w.Color
		if *shaded {
			color = palette.Shade(w.Color, w.DistanceToClosestPoint())
		}
		fmt.Printf("%3d  d=%.4f  %s  (%+.3f, %+.3f, %+.3f) -> (%+.3f, %+.3f, %+.3f)\n",
			i, w.DistanceToClosestPoint(), color.Hex(),
			w.Beginning.X, w.Beginning.Y, w.Beginning.Z,
			w.End.X, w.End.Y, w.End.Z)
	}
}

func seed() int64 {
	seedStr := os.Getenv("HYPERMAZE_SEED")
	now := time.Now().Unix()
	if seedStr == "" {
		return now
	}
	seed, err := strconv.ParseInt(seedStr, 10, 64)
	if err != nil {
		log.Fatalf("Invalid HYPERMAZE_SEED value '%s': %v", seedStr, err)
	}
	return seed
}
