package road

import (
	"log"

	"github.com/ctessum/geom"
)

// Renderable strip widths, in world units.
const (
	laneStripWidth    = LaneWidth * 0.7
	outlineStripWidth = 0.1
)

// stripFlattenTolerance is looser than the clipping tolerance; strips
// only need to look smooth.
const stripFlattenTolerance = 0.1

// Strip is a renderable band for a display surface: a flattened spine
// polyline and the visual width to extrude it to. Color and z-order are
// the renderer's business.
type Strip struct {
	Spine  []geom.Point
	Width  float64
	Closed bool
}

// RenderStrips converts finished prototypes into renderable strips: a
// band along each lane path and an outline band around each
// intersection region.
func RenderStrips(prototypes []Prototype) []Strip {
	var strips []Strip
	for _, proto := range prototypes {
		switch proto.Kind {
		case KindLane:
			strips = append(strips, Strip{
				Spine: proto.Lane.Path.Flatten(stripFlattenTolerance),
				Width: laneStripWidth,
			})
		case KindIntersection:
			for _, ring := range proto.Intersection.Shape {
				if len(ring) < 3 {
					continue
				}
				strips = append(strips, Strip{
					Spine:  ring,
					Width:  outlineStripWidth,
					Closed: true,
				})
			}
		default:
			log.Printf("road: unknown prototype kind %d, not rendering", proto.Kind)
		}
	}
	return strips
}
