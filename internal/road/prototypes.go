package road

import (
	"github.com/ctessum/geom"

	"github.com/banshee-data/roadplan/internal/curve"
)

// PrototypeKind discriminates the Prototype sum type.
type PrototypeKind int

const (
	// KindLane marks a lane prototype.
	KindLane PrototypeKind = iota
	// KindIntersection marks an intersection prototype.
	KindIntersection
)

// Prototype is one finalized piece of road network geometry, either a
// lane or an intersection. Exactly the field matching Kind is non-nil.
type Prototype struct {
	Kind         PrototypeKind
	Lane         *LanePrototype
	Intersection *IntersectionPrototype
}

// LanePrototype is a single trimmed drivable lane segment: an
// independent stretch of road or a pass-through between intersections.
type LanePrototype struct {
	Path *curve.Path
}

// Connector marks where a lane enters or exits an intersection.
type Connector struct {
	Position  geom.Point
	Direction geom.Point
}

// IntersectionPrototype is the junction region where two road outlines
// overlap. The trimming stage appends connectors as it discovers lanes
// crossing the region's boundary; ConnectingLanes and Timings stay
// empty here and are populated by the downstream traffic system.
type IntersectionPrototype struct {
	Shape    geom.Polygon
	Incoming []Connector
	Outgoing []Connector

	ConnectingLanes []LanePrototype
	Timings         [][]bool
}
