package road

import (
	"math"
	"testing"

	"github.com/ctessum/geom"
)

func crossingOutlines(t *testing.T) []*RoadOutline {
	t.Helper()
	a := straightPath(t, geom.Point{X: 0, Y: 0}, geom.Point{X: 100, Y: 0})
	b := straightPath(t, geom.Point{X: 50, Y: -50}, geom.Point{X: 50, Y: 50})
	intent := RoadIntent{LanesForward: 1, LanesBackward: 1}
	return []*RoadOutline{
		outlineShape(a, intent),
		outlineShape(b, intent),
	}
}

func TestClipIntersectionSplitsRegions(t *testing.T) {
	a := geom.Polygon{{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10},
	}}
	b := geom.Polygon{{
		{X: 5, Y: 5}, {X: 15, Y: 5}, {X: 15, Y: 15}, {X: 5, Y: 15},
	}}

	regions := clipIntersection(a, b)
	if len(regions) != 1 {
		t.Fatalf("got %d regions, want 1", len(regions))
	}
	if len(regions[0]) != 1 {
		t.Errorf("region has %d rings, want 1", len(regions[0]))
	}
	if area := math.Abs(regions[0].Area()); math.Abs(area-25) > 0.01 {
		t.Errorf("region area = %v, want 25", area)
	}

	far := geom.Polygon{{
		{X: 100, Y: 100}, {X: 110, Y: 100}, {X: 110, Y: 110}, {X: 100, Y: 110},
	}}
	if regions := clipIntersection(a, far); len(regions) != 0 {
		t.Errorf("disjoint polygons produced %d regions, want 0", len(regions))
	}
}

func TestDetectIntersectionsExcludesSelfPairs(t *testing.T) {
	path := straightPath(t, geom.Point{X: 0, Y: 0}, geom.Point{X: 100, Y: 0})
	outlines := []*RoadOutline{outlineShape(path, RoadIntent{LanesForward: 1, LanesBackward: 1})}
	if got := detectIntersections(outlines); len(got) != 0 {
		t.Errorf("single outline produced %d intersections, want 0", len(got))
	}
}

func TestDetectIntersectionsDisjoint(t *testing.T) {
	a := straightPath(t, geom.Point{X: 0, Y: 0}, geom.Point{X: 10, Y: 0})
	b := straightPath(t, geom.Point{X: 0, Y: 100}, geom.Point{X: 10, Y: 100})
	intent := RoadIntent{LanesForward: 1, LanesBackward: 1}
	outlines := []*RoadOutline{outlineShape(a, intent), outlineShape(b, intent)}
	if got := detectIntersections(outlines); len(got) != 0 {
		t.Errorf("disjoint outlines produced %d intersections, want 0", len(got))
	}
}

func TestDetectIntersectionsCrossingPair(t *testing.T) {
	intersections := detectIntersections(crossingOutlines(t))

	// Ordered pairs are visited in both orders, so one overlap yields
	// two identical regions.
	if len(intersections) != 2 {
		t.Fatalf("got %d intersections, want 2 (one per ordered pair)", len(intersections))
	}

	// Both roads are 14.4 wide, so the overlap is a 14.4×14.4 square
	// centered on (50, 0).
	roadWidth := CenterLaneDistance + 2*LaneDistance
	wantArea := roadWidth * roadWidth
	for i, intersection := range intersections {
		area := math.Abs(intersection.Shape.Area())
		if math.Abs(area-wantArea) > 1 {
			t.Errorf("intersection %d area = %v, want ~%v", i, area, wantArea)
		}
		b := intersection.Shape.Bounds()
		if math.Abs((b.Min.X+b.Max.X)/2-50) > 0.1 || math.Abs((b.Min.Y+b.Max.Y)/2) > 0.1 {
			t.Errorf("intersection %d centered at (%v, %v), want (50, 0)",
				i, (b.Min.X+b.Max.X)/2, (b.Min.Y+b.Max.Y)/2)
		}
		if len(intersection.Incoming) != 0 || len(intersection.Outgoing) != 0 {
			t.Errorf("intersection %d has connectors before trimming", i)
		}
		if len(intersection.ConnectingLanes) != 0 || len(intersection.Timings) != 0 {
			t.Errorf("intersection %d has downstream fields populated", i)
		}
	}
}
