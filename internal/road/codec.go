package road

import (
	"encoding/json"
	"fmt"

	"github.com/ctessum/geom"
)

// JSON codec for plans and prototype output. Plans round-trip; the
// prototype encoding is one-way, consumed by renderers and tooling,
// with curved lane paths flattened to polylines.

type gestureJSON struct {
	ID     GestureID      `json:"id"`
	Points [][2]float64   `json:"points"`
	Road   *roadIntentDTO `json:"road,omitempty"`
}

type roadIntentDTO struct {
	LanesForward  uint8 `json:"lanes_forward"`
	LanesBackward uint8 `json:"lanes_backward"`
}

type planJSON struct {
	Gestures []gestureJSON `json:"gestures"`
}

// MarshalJSON encodes the plan's gestures in insertion order.
func (p *Plan) MarshalJSON() ([]byte, error) {
	out := planJSON{Gestures: make([]gestureJSON, 0, p.Len())}
	for _, pair := range p.Pairs() {
		gj := gestureJSON{ID: pair.ID, Points: encodePoints(pair.Gesture.Points)}
		if ri, ok := pair.Gesture.Intent.(RoadIntent); ok {
			gj.Road = &roadIntentDTO{LanesForward: ri.LanesForward, LanesBackward: ri.LanesBackward}
		}
		out.Gestures = append(out.Gestures, gj)
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes a plan, preserving gesture order. Gestures
// without a road intent are kept but carry no intent, so the pipeline
// ignores them.
func (p *Plan) UnmarshalJSON(data []byte) error {
	var in planJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return fmt.Errorf("decode plan: %w", err)
	}
	p.order = nil
	p.gestures = make(map[GestureID]*Gesture, len(in.Gestures))
	for _, gj := range in.Gestures {
		if gj.ID == "" {
			return fmt.Errorf("decode plan: gesture without id")
		}
		g := &Gesture{Points: decodePoints(gj.Points)}
		if gj.Road != nil {
			g.Intent = RoadIntent{
				LanesForward:  gj.Road.LanesForward,
				LanesBackward: gj.Road.LanesBackward,
			}
		}
		p.Put(gj.ID, g)
	}
	return nil
}

type connectorJSON struct {
	Position  [2]float64 `json:"position"`
	Direction [2]float64 `json:"direction"`
}

type prototypeJSON struct {
	Kind     string          `json:"kind"`
	Path     [][2]float64    `json:"path,omitempty"`
	Shape    [][][2]float64  `json:"shape,omitempty"`
	Incoming []connectorJSON `json:"incoming,omitempty"`
	Outgoing []connectorJSON `json:"outgoing,omitempty"`
}

// EncodePrototypes serializes a prototype list for external consumers.
func EncodePrototypes(prototypes []Prototype) ([]byte, error) {
	out := make([]prototypeJSON, 0, len(prototypes))
	for _, proto := range prototypes {
		switch proto.Kind {
		case KindLane:
			out = append(out, prototypeJSON{
				Kind: "lane",
				Path: encodePoints(proto.Lane.Path.Flatten(stripFlattenTolerance)),
			})
		case KindIntersection:
			is := proto.Intersection
			pj := prototypeJSON{Kind: "intersection"}
			for _, ring := range is.Shape {
				pj.Shape = append(pj.Shape, encodePoints(ring))
			}
			for _, c := range is.Incoming {
				pj.Incoming = append(pj.Incoming, encodeConnector(c))
			}
			for _, c := range is.Outgoing {
				pj.Outgoing = append(pj.Outgoing, encodeConnector(c))
			}
			out = append(out, pj)
		default:
			return nil, fmt.Errorf("encode prototypes: unknown kind %d", proto.Kind)
		}
	}
	return json.MarshalIndent(out, "", "  ")
}

func encodeConnector(c Connector) connectorJSON {
	return connectorJSON{
		Position:  [2]float64{c.Position.X, c.Position.Y},
		Direction: [2]float64{c.Direction.X, c.Direction.Y},
	}
}

func encodePoints(pts []geom.Point) [][2]float64 {
	out := make([][2]float64, len(pts))
	for i, pt := range pts {
		out[i] = [2]float64{pt.X, pt.Y}
	}
	return out
}

func decodePoints(in [][2]float64) []geom.Point {
	out := make([]geom.Point, len(in))
	for i, xy := range in {
		out[i] = geom.Point{X: xy[0], Y: xy[1]}
	}
	return out
}
