package geom

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"hypermaze/internal/palette"
	"hypermaze/internal/poincare"
)

// ErrNotImplemented reports a query with no implementation yet.
var ErrNotImplemented = errors.New("geom: not implemented")

// ErrIncomparable reports a wall ordering attempted over a NaN distance key,
// meaning a malformed endpoint leaked into a comparison.
var ErrIncomparable = errors.New("geom: walls incomparable (NaN distance key)")

// Wall is the capability a renderer needs from a renderable wall segment.
type Wall interface {
	DistanceToClosestPoint() float64
	Intersection(angle float64) (float64, error)
}

// HyperWall is a directed segment between two hyperboloid points carrying a
// display color. It is a plain value; a wall has no identity beyond its two
// endpoints and the color.
type HyperWall struct {
	Beginning Hyperpoint       `json:"beginning"`
	End       Hyperpoint       `json:"end"`
	Color     palette.RGBColor `json:"color"`
}

var _ Wall = HyperWall{}

// WallFromPoincare converts a disk-model wall by converting both endpoints
// independently; the color rides through unchanged.
func WallFromPoincare(w poincare.Wall) HyperWall {
	return HyperWall{
		Beginning: FromPoincare(w.Beginning),
		End:       FromPoincare(w.End),
		Color:     w.Color,
	}
}

// DistanceToClosestPoint returns the distance from the origin to the nearer
// of the two endpoints. This is the wall's ordering key.
func (w HyperWall) DistanceToClosestPoint() float64 {
	return math.Min(w.Beginning.DistanceToOrigin(), w.End.DistanceToOrigin())
}

// Intersection reports where a ray cast from the origin at the given angle
// meets the wall. Unimplemented: every call fails with ErrNotImplemented
// rather than guessing a value.
func (w HyperWall) Intersection(angle float64) (float64, error) {
	return 0, fmt.Errorf("ray/wall intersection at angle %v: %w", angle, ErrNotImplemented)
}

// Compare orders walls by their distance keys, ascending: −1 if w is closer
// to the origin than other, +1 if farther, 0 if the keys are float-equal.
// Walls with equal keys compare equal regardless of their endpoints; the
// order is by proximity only, not structural. A NaN key on either side makes
// the pair incomparable and returns ErrIncomparable instead of inventing an
// order.
func (w HyperWall) Compare(other HyperWall) (int, error) {
	a, b := w.DistanceToClosestPoint(), other.DistanceToClosestPoint()
	if math.IsNaN(a) || math.IsNaN(b) {
		return 0, ErrIncomparable
	}
	switch {
	case a < b:
		return -1, nil
	case a > b:
		return 1, nil
	}
	return 0, nil
}

// SortWallsByProximity sorts walls in place, closest first. It refuses the
// whole sort with ErrIncomparable if any wall carries a NaN key, so a
// malformed point cannot scramble the order silently.
func SortWallsByProximity(walls []HyperWall) error {
	for i, w := range walls {
		if math.IsNaN(w.DistanceToClosestPoint()) {
			return fmt.Errorf("wall %d: %w", i, ErrIncomparable)
		}
	}
	sort.SliceStable(walls, func(i, j int) bool {
		return walls[i].DistanceToClosestPoint() < walls[j].DistanceToClosestPoint()
	})
	return nil
}
