package road

import (
	"github.com/ctessum/geom"
	"github.com/google/uuid"
)

// GestureID identifies one gesture within a plan.
type GestureID string

// NewGestureID returns a fresh random gesture ID.
func NewGestureID() GestureID {
	return GestureID(uuid.New().String())
}

// Intent describes what a gesture means. The synthesis pipeline only
// acts on RoadIntent; other intents pass through untouched.
type Intent interface {
	isIntent()
}

// RoadIntent tags a gesture as a road with the given lane counts.
type RoadIntent struct {
	LanesForward  uint8
	LanesBackward uint8
}

func (RoadIntent) isIntent() {}

// Gesture is a user-drawn polyline with an intent. Gestures are owned
// by the plan and read-only to the pipeline.
type Gesture struct {
	Points []geom.Point
	Intent Intent
}

// GesturePair is one (id, gesture) entry of a plan, in plan order.
type GesturePair struct {
	ID      GestureID
	Gesture *Gesture
}

// Plan is an ordered collection of gestures. Iteration order is
// insertion order, so repeated synthesis runs over an unchanged plan
// produce identical output.
type Plan struct {
	order    []GestureID
	gestures map[GestureID]*Gesture
}

// NewPlan returns an empty plan.
func NewPlan() *Plan {
	return &Plan{gestures: make(map[GestureID]*Gesture)}
}

// Put adds or replaces the gesture stored under id.
func (p *Plan) Put(id GestureID, g *Gesture) {
	if _, ok := p.gestures[id]; !ok {
		p.order = append(p.order, id)
	}
	p.gestures[id] = g
}

// Get returns the gesture stored under id, or nil.
func (p *Plan) Get(id GestureID) *Gesture {
	return p.gestures[id]
}

// Remove deletes the gesture stored under id, if present.
func (p *Plan) Remove(id GestureID) {
	if _, ok := p.gestures[id]; !ok {
		return
	}
	delete(p.gestures, id)
	for i, o := range p.order {
		if o == id {
			p.order = append(p.order[:i], p.order[i+1:]...)
			break
		}
	}
}

// Len returns the number of gestures in the plan.
func (p *Plan) Len() int { return len(p.order) }

// Pairs returns the plan's gestures in insertion order.
func (p *Plan) Pairs() []GesturePair {
	pairs := make([]GesturePair, 0, len(p.order))
	for _, id := range p.order {
		pairs = append(pairs, GesturePair{ID: id, Gesture: p.gestures[id]})
	}
	return pairs
}
