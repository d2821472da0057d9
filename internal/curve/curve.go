// Package curve provides directed 2D curve primitives for road geometry
// synthesis: straight line and circular arc segments, continuous paths
// built from them, orthogonal offsetting, and crossing computation
// against polygons. Polygon types come from github.com/ctessum/geom so
// flattened curves plug directly into its Boolean clipping operations.
package curve

import (
	"math"

	"github.com/ctessum/geom"
)

// Geometric tolerances shared across the package.
const (
	// MinSegmentLength is the shortest segment the constructors will
	// produce; anything shorter is treated as degenerate.
	MinSegmentLength = 1e-4

	// ContinuityTolerance is the largest gap allowed between the end of
	// one path segment and the start of the next.
	ContinuityTolerance = 1e-3

	// collinearTolerance bounds the perpendicular component (relative to
	// chord length) below which an arc collapses to a straight line.
	collinearTolerance = 1e-6

	// crossingMergeDistance merges crossing points that fall closer than
	// this along a path, so a crossing at a shared ring vertex is not
	// reported twice.
	crossingMergeDistance = 1e-4
)

// Add returns a + b.
func Add(a, b geom.Point) geom.Point {
	return geom.Point{X: a.X + b.X, Y: a.Y + b.Y}
}

// Sub returns a - b.
func Sub(a, b geom.Point) geom.Point {
	return geom.Point{X: a.X - b.X, Y: a.Y - b.Y}
}

// Scale returns a scaled by s.
func Scale(a geom.Point, s float64) geom.Point {
	return geom.Point{X: a.X * s, Y: a.Y * s}
}

// Dot returns the dot product of a and b.
func Dot(a, b geom.Point) float64 {
	return a.X*b.X + a.Y*b.Y
}

// Norm returns the euclidean length of a.
func Norm(a geom.Point) float64 {
	return math.Hypot(a.X, a.Y)
}

// Dist returns the distance between a and b.
func Dist(a, b geom.Point) float64 {
	return Norm(Sub(a, b))
}

// Normalize returns a scaled to unit length. The zero vector is
// returned unchanged.
func Normalize(a geom.Point) geom.Point {
	n := Norm(a)
	if n == 0 {
		return a
	}
	return Scale(a, 1/n)
}

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b geom.Point) geom.Point {
	return geom.Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

// perpCCW returns a rotated 90° counterclockwise.
func perpCCW(a geom.Point) geom.Point {
	return geom.Point{X: -a.Y, Y: a.X}
}

// perpCW returns a rotated 90° clockwise. For a direction of travel
// this is the right-hand normal.
func perpCW(a geom.Point) geom.Point {
	return geom.Point{X: a.Y, Y: -a.X}
}

// angleOf returns the polar angle of a in radians.
func angleOf(a geom.Point) float64 {
	return math.Atan2(a.Y, a.X)
}

// normalizeAngle maps x into [0, 2π).
func normalizeAngle(x float64) float64 {
	x = math.Mod(x, 2*math.Pi)
	if x < 0 {
		x += 2 * math.Pi
	}
	return x
}
