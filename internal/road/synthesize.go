package road

import (
	"log"

	"github.com/banshee-data/roadplan/internal/curve"
)

// smoothedRoad pairs a road gesture's smoothed centerline with its
// intent for the downstream pipeline stages.
type smoothedRoad struct {
	id     GestureID
	intent RoadIntent
	path   *curve.Path
}

// CalculatePrototypes runs the full synthesis pipeline over a plan and
// returns the finished network geometry: one prototype per intersection
// region followed by one per trimmed lane segment.
//
// Gestures that are not roads or have fewer than two points are
// silently excluded. Recoverable geometric degeneracies drop the
// affected unit with a logged diagnostic; the pipeline always returns a
// best-effort result.
func CalculatePrototypes(plan *Plan) []Prototype {
	var roads []smoothedRoad
	for _, pair := range plan.Pairs() {
		intent, ok := pair.Gesture.Intent.(RoadIntent)
		if !ok || len(pair.Gesture.Points) < 2 {
			continue
		}
		path, ok := smoothGesture(pair.Gesture.Points)
		if !ok {
			log.Printf("road: gesture %s: centerline smoothing failed, skipping", pair.ID)
			continue
		}
		roads = append(roads, smoothedRoad{id: pair.ID, intent: intent, path: path})
	}

	outlines := make([]*RoadOutline, len(roads))
	for i, rd := range roads {
		outlines[i] = outlineShape(rd.path, rd.intent)
	}

	intersections := detectIntersections(outlines)
	lanes := trimLanes(roads, intersections)

	prototypes := make([]Prototype, 0, len(intersections)+len(lanes))
	for _, intersection := range intersections {
		prototypes = append(prototypes, Prototype{Kind: KindIntersection, Intersection: intersection})
	}
	for i := range lanes {
		prototypes = append(prototypes, Prototype{Kind: KindLane, Lane: &lanes[i]})
	}
	return prototypes
}
