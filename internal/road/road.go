// Package road turns user-drawn gestures (polylines tagged with lane
// counts) into concrete road network geometry: smoothed centerlines,
// road outline footprints, intersection regions, and the trimmed lane
// segments that connect to them.
//
// The synthesis pipeline runs in four stages, each consuming the
// previous stage's output:
//
//  1. smoothing: polyline → continuous centerline (lines joined by
//     rounding arcs)
//  2. outlines: centerline → closed footprint polygon
//  3. intersections: pairwise footprint overlap → junction regions
//  4. trimming: per-lane offset paths cut at intersection boundaries,
//     recording entry/exit connectors on each intersection
//
// The pipeline is stateless: CalculatePrototypes recomputes the whole
// network from the current gesture set on every call.
package road

// Network synthesis constants, in world units.
const (
	// LaneWidth is the drivable width of one lane.
	LaneWidth = 6.0
	// LaneDistance is the spacing between the centers of adjacent lanes.
	LaneDistance = 0.8 * LaneWidth
	// CenterLaneDistance is the gap between the innermost forward and
	// backward lanes, straddling the road centerline.
	CenterLaneDistance = LaneDistance
)

// outlineFlattenTolerance is the chord tolerance used when flattening
// curved outlines into polygons for clipping.
const outlineFlattenTolerance = 0.05
