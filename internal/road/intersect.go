package road

import (
	"log"
	"math"

	"github.com/ctessum/geom"
)

// minIntersectionArea drops clipping slivers that are artifacts of
// outline flattening rather than real junctions.
const minIntersectionArea = 1e-3

// detectIntersections computes the pairwise Boolean intersection of all
// road outlines. Every ordered pair of distinct outlines is visited, in
// both orders, so each overlapping pair yields its region twice; the
// trimming stage treats the duplicates idempotently. Self-pairs produce
// nothing, and clipping failures count as no intersection.
func detectIntersections(outlines []*RoadOutline) []*IntersectionPrototype {
	polygons := make([]geom.Polygon, len(outlines))
	for i, o := range outlines {
		polygons[i] = o.Polygon()
	}

	var prototypes []*IntersectionPrototype
	for i, a := range polygons {
		for j, b := range polygons {
			if i == j {
				continue
			}
			for _, region := range clipIntersection(a, b) {
				prototypes = append(prototypes, &IntersectionPrototype{Shape: region})
			}
		}
	}
	return prototypes
}

// clipIntersection returns the overlap of a and b split into one
// single-ring polygon per region, dropping near-zero areas. The
// polyclip sweep can panic on pathological input; that is recovered and
// treated as no intersection.
func clipIntersection(a, b geom.Polygon) (regions []geom.Polygon) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("road: intersection clipping failed, skipping pair: %v", r)
			regions = nil
		}
	}()
	clipped := a.Intersection(b)
	for _, poly := range clipped.Polygons() {
		for _, ring := range poly {
			region := geom.Polygon{ring}
			if math.Abs(region.Area()) < minIntersectionArea {
				continue
			}
			regions = append(regions, region)
		}
	}
	return regions
}
