package road

import (
	"fmt"
	"log"

	"github.com/ctessum/geom"

	"github.com/banshee-data/roadplan/internal/curve"
)

// RoadOutline is the closed footprint of one gesture's road: the
// centerline offset to both sides by the declared lane counts, closed
// with a line across each end.
type RoadOutline struct {
	Boundary *curve.Path
}

// outlineShape builds the road outline for a smoothed centerline. A
// failed boundary shift falls back to the unshifted centerline, which
// is visually degenerate but keeps the pipeline alive. The closed
// outline itself is always constructible from a valid centerline;
// failure there indicates a broken upstream invariant and panics.
func outlineShape(path *curve.Path, intent RoadIntent) *RoadOutline {
	rightShifted, err := path.Shift(CenterLaneDistance/2 + float64(intent.LanesForward)*LaneDistance)
	if err != nil {
		log.Printf("road: outline right boundary shift failed, using centerline: %v", err)
		rightShifted = path
	}
	right := rightShifted.Reverse()

	left, err := path.Shift(-(CenterLaneDistance/2 + float64(intent.LanesBackward)*LaneDistance))
	if err != nil {
		log.Printf("road: outline left boundary shift failed, using centerline: %v", err)
		left = path
	}

	var segments []*curve.Segment
	segments = append(segments, left.Segments()...)
	if closing := curve.Line(left.End(), right.Start()); closing != nil {
		segments = append(segments, closing)
	}
	segments = append(segments, right.Segments()...)
	if closing := curve.Line(right.End(), left.Start()); closing != nil {
		segments = append(segments, closing)
	}

	boundary, err := curve.NewPath(segments)
	if err != nil {
		panic(fmt.Sprintf("road: outline must be constructible from a valid centerline: %v", err))
	}
	return &RoadOutline{Boundary: boundary}
}

// Polygon flattens the outline into a closed polygon for clipping.
func (o *RoadOutline) Polygon() geom.Polygon {
	return geom.Polygon{o.Boundary.Ring(outlineFlattenTolerance)}
}
