package road

import (
	"math"

	"github.com/ctessum/geom"

	"github.com/banshee-data/roadplan/internal/curve"
)

// smoothGesture turns a gesture polyline into one continuous centerline
// path: straight runs joined by rounding arcs at each corner. Returns
// false when the gesture geometry is too degenerate to form a valid
// path. Gestures with fewer than two points never reach this function.
func smoothGesture(points []geom.Point) (*curve.Path, bool) {
	// Midpoints of each polyline segment bound how far a rounding arc
	// may reach, so neighboring arcs never overlap.
	centers := make([]geom.Point, len(points)-1)
	for i := range centers {
		centers[i] = curve.Midpoint(points[i], points[i+1])
	}

	// For segment i, end marks where the arc rounding its first corner
	// finishes and start marks where the arc rounding its second corner
	// begins.
	type endStartDirection struct {
		end, start, direction geom.Point
	}
	endStartDirections := make([]endStartDirection, 0, len(points)-1)
	for i := 0; i+1 < len(points); i++ {
		first := points[i]
		second := points[i+1]
		previousCenter := first
		if i > 0 {
			previousCenter = centers[i-1]
		}
		thisCenter := centers[i]
		nextCenter := second
		if i+1 < len(centers) {
			nextCenter = centers[i+1]
		}
		direction := curve.Normalize(curve.Sub(second, first))

		distToFirst := math.Min(curve.Dist(first, previousCenter), curve.Dist(first, thisCenter))
		distToSecond := math.Min(curve.Dist(second, thisCenter), curve.Dist(second, nextCenter))

		endStartDirections = append(endStartDirections, endStartDirection{
			end:       curve.Add(first, curve.Scale(direction, distToFirst)),
			start:     curve.Sub(second, curve.Scale(direction, distToSecond)),
			direction: direction,
		})
	}

	var segments []*curve.Segment
	previousPoint := points[0]
	previousDirection := curve.Normalize(curve.Sub(points[1], points[0]))

	for _, esd := range endStartDirections {
		if arc := curve.ArcWithDirection(previousPoint, previousDirection, esd.end); arc != nil {
			segments = append(segments, arc)
		}
		if line := curve.Line(esd.end, esd.start); line != nil {
			segments = append(segments, line)
		}
		previousPoint = esd.start
		previousDirection = esd.direction
	}

	path, err := curve.NewPath(segments)
	if err != nil {
		return nil, false
	}
	return path, true
}
