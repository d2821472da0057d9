package road

import (
	"testing"

	"github.com/ctessum/geom"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/banshee-data/roadplan/internal/curve"
)

func straightPath(t *testing.T, from, to geom.Point) *curve.Path {
	t.Helper()
	p, err := curve.NewPath([]*curve.Segment{curve.Line(from, to)})
	if err != nil {
		t.Fatalf("NewPath: %v", err)
	}
	return p
}

func TestOutlineZeroLanesThinBand(t *testing.T) {
	path := straightPath(t, geom.Point{X: 0, Y: 0}, geom.Point{X: 100, Y: 0})
	outline := outlineShape(path, RoadIntent{})

	b := outline.Polygon().Bounds()
	if !scalar.EqualWithinAbs(b.Max.Y-b.Min.Y, CenterLaneDistance, 1e-9) {
		t.Errorf("band height = %v, want %v", b.Max.Y-b.Min.Y, CenterLaneDistance)
	}
	if !scalar.EqualWithinAbs(b.Min.X, 0, 1e-9) || !scalar.EqualWithinAbs(b.Max.X, 100, 1e-9) {
		t.Errorf("band spans x [%v, %v], want [0, 100]", b.Min.X, b.Max.X)
	}
}

func TestOutlineLaneCountsWidenFootprint(t *testing.T) {
	path := straightPath(t, geom.Point{X: 0, Y: 0}, geom.Point{X: 100, Y: 0})
	outline := outlineShape(path, RoadIntent{LanesForward: 2, LanesBackward: 1})

	b := outline.Polygon().Bounds()
	// Forward lanes widen the right side (-y when heading +x), backward
	// lanes the left.
	wantRight := -(CenterLaneDistance/2 + 2*LaneDistance)
	wantLeft := CenterLaneDistance/2 + 1*LaneDistance
	if !scalar.EqualWithinAbs(b.Min.Y, wantRight, 1e-9) {
		t.Errorf("right boundary at %v, want %v", b.Min.Y, wantRight)
	}
	if !scalar.EqualWithinAbs(b.Max.Y, wantLeft, 1e-9) {
		t.Errorf("left boundary at %v, want %v", b.Max.Y, wantLeft)
	}
}

func TestOutlineIsClosedLoop(t *testing.T) {
	path, ok := smoothGesture([]geom.Point{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 100}})
	if !ok {
		t.Fatal("smoothing failed")
	}
	outline := outlineShape(path, RoadIntent{LanesForward: 1, LanesBackward: 1})

	boundary := outline.Boundary
	if gap := curve.Dist(boundary.Start(), boundary.End()); gap > 1e-6 {
		t.Errorf("outline loop does not close, gap %v", gap)
	}
	segments := boundary.Segments()
	for i := 1; i < len(segments); i++ {
		if gap := curve.Dist(segments[i-1].End(), segments[i].Start()); gap > 1e-6 {
			t.Errorf("outline gap %v between segments %d and %d", gap, i-1, i)
		}
	}

	ring := outline.Polygon()[0]
	if len(ring) < 4 {
		t.Errorf("outline ring has %d points, want a real polygon", len(ring))
	}
}

func TestOutlineShiftFallback(t *testing.T) {
	// A half-circle of radius 2 cannot be shifted inward by 7.2, so the
	// left boundary falls back to the centerline instead of failing.
	arc := curve.ArcWithDirection(geom.Point{X: 0, Y: 0}, geom.Point{X: 1, Y: 0}, geom.Point{X: 0, Y: 4})
	path, err := curve.NewPath([]*curve.Segment{arc})
	if err != nil {
		t.Fatalf("NewPath: %v", err)
	}
	outline := outlineShape(path, RoadIntent{LanesForward: 1, LanesBackward: 1})
	if outline == nil || outline.Boundary == nil {
		t.Fatal("outline with degenerate shift should still construct")
	}
}
