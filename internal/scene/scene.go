// Package scene decodes declarative wall scenes into hyperboloid geometry
// and generates procedural sample mazes. A scene document declares which
// hyperbolic model its walls use: hyperboloid walls decode as raw coordinate
// triples with no validation and no isometries, Poincaré walls are converted
// once, right after decode.
package scene

import (
	"fmt"
	"os"

	jsoniter "github.com/json-iterator/go"

	"hypermaze/internal/geom"
	"hypermaze/internal/poincare"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Models a scene document may declare its walls in.
const (
	ModelHyperboloid = "hyperboloid"
	ModelPoincare    = "poincare"
)

// Scene is a decoded wall set, already in hyperboloid coordinates.
type Scene struct {
	Walls []geom.HyperWall
}

type document struct {
	Model string              `json:"model"`
	Walls jsoniter.RawMessage `json:"walls"`
}

// Decode parses a scene document. Malformed documents and unknown model
// strings are explicit errors; off-sheet hyperboloid coordinates are not —
// decoding trusts the data, per the core's loading contract.
func Decode(data []byte) (Scene, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Scene{}, fmt.Errorf("decoding scene document: %w", err)
	}

	switch doc.Model {
	case ModelHyperboloid:
		var walls []geom.HyperWall
		if err := json.Unmarshal(doc.Walls, &walls); err != nil {
			return Scene{}, fmt.Errorf("decoding hyperboloid walls: %w", err)
		}
		return Scene{Walls: walls}, nil

	case ModelPoincare:
		var walls []poincare.Wall
		if err := json.Unmarshal(doc.Walls, &walls); err != nil {
			return Scene{}, fmt.Errorf("decoding poincare walls: %w", err)
		}
		converted := make([]geom.HyperWall, len(walls))
		for i, w := range walls {
			converted[i] = geom.WallFromPoincare(w)
		}
		return Scene{Walls: converted}, nil

	default:
		return Scene{}, fmt.Errorf("unknown scene model %q", doc.Model)
	}
}

// Load reads and decodes a scene file.
func Load(path string) (Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scene{}, fmt.Errorf("reading scene: %w", err)
	}
	return Decode(data)
}
