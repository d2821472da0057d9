package road

import (
	"log"
	"math"
	"sort"

	"github.com/ctessum/geom"

	"github.com/banshee-data/roadplan/internal/curve"
)

// cut is an interval along a lane path that falls inside an
// intersection and must be removed.
type cut struct {
	entry, exit float64
}

// laneOffsets returns the orthogonal offset of every lane of a road
// from its centerline: forward lanes to the right, backward lanes
// mirrored to the left.
func laneOffsets(intent RoadIntent) []float64 {
	offsets := make([]float64, 0, int(intent.LanesForward)+int(intent.LanesBackward))
	for k := 0; k < int(intent.LanesForward); k++ {
		offsets = append(offsets, CenterLaneDistance/2+float64(k)*LaneDistance)
	}
	for k := 0; k < int(intent.LanesBackward); k++ {
		offsets = append(offsets, -(CenterLaneDistance/2 + float64(k)*LaneDistance))
	}
	return offsets
}

// trimLanes generates the raw offset path for every lane of every road
// and cuts each one at intersection boundaries. As a side effect every
// intersection gains incoming/outgoing connectors for the lanes that
// cross it. Lanes whose offset construction fails are dropped.
func trimLanes(roads []smoothedRoad, intersections []*IntersectionPrototype) []LanePrototype {
	var lanes []LanePrototype
	for _, rd := range roads {
		for _, offset := range laneOffsets(rd.intent) {
			lanePath, err := rd.path.Shift(offset)
			if err != nil {
				log.Printf("road: dropping lane of gesture %s: %v", rd.id, err)
				continue
			}
			lanes = append(lanes, trimLanePath(lanePath, intersections)...)
		}
	}
	return lanes
}

// trimLanePath tests one raw lane path against every intersection,
// records connectors, and returns the portions of the path that remain
// outside all intersections.
//
// Per intersection: two or more boundary crossings bracket an interior
// interval to cut, with a connector pair at the entry and exit. A
// single crossing means the path begins or ends inside the region, so
// the path is trimmed from that end instead. No crossings, no effect.
func trimLanePath(lanePath *curve.Path, intersections []*IntersectionPrototype) []LanePrototype {
	startTrim := 0.0
	endTrim := lanePath.Length()
	var cuts []cut

	for _, intersection := range intersections {
		crossings := curve.Crossings(lanePath, intersection.Shape)
		switch {
		case len(crossings) >= 2:
			entry := crossings[0].Distance
			exit := crossings[len(crossings)-1].Distance
			intersection.Incoming = append(intersection.Incoming, connectorAt(lanePath, entry))
			intersection.Outgoing = append(intersection.Outgoing, connectorAt(lanePath, exit))
			cuts = append(cuts, cut{entry: entry, exit: exit})

		case len(crossings) == 1:
			distance := crossings[0].Distance
			if lanePath.Start().Within(intersection.Shape) != geom.Outside {
				// The lane begins life inside the intersection; its
				// single crossing is where it leaves.
				intersection.Outgoing = append(intersection.Outgoing, connectorAt(lanePath, distance))
				startTrim = math.Max(startTrim, distance)
			} else if lanePath.End().Within(intersection.Shape) != geom.Outside {
				intersection.Incoming = append(intersection.Incoming, connectorAt(lanePath, distance))
				endTrim = math.Min(endTrim, distance)
			}
		}
	}

	sort.Slice(cuts, func(i, j int) bool { return cuts[i].entry < cuts[j].entry })

	// Sentinels turn the start/end trims into ordinary cut boundaries
	// so one walk over consecutive pairs yields every surviving gap.
	walk := make([]cut, 0, len(cuts)+2)
	walk = append(walk, cut{entry: -1, exit: startTrim})
	walk = append(walk, cuts...)
	walk = append(walk, cut{entry: endTrim, exit: lanePath.Length() + 1})

	var lanes []LanePrototype
	for i := 0; i+1 < len(walk); i++ {
		sub, err := lanePath.Subsection(walk[i].exit, walk[i+1].entry)
		if err != nil {
			// Degenerate gap between overlapping cuts; nothing survives
			// there.
			continue
		}
		lanes = append(lanes, LanePrototype{Path: sub})
	}
	return lanes
}

func connectorAt(p *curve.Path, distance float64) Connector {
	return Connector{
		Position:  p.PointAt(distance),
		Direction: p.DirectionAt(distance),
	}
}
