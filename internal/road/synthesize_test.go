package road

import (
	"testing"

	"github.com/ctessum/geom"
)

func TestCalculatePrototypesEmptyPlan(t *testing.T) {
	if got := CalculatePrototypes(NewPlan()); len(got) != 0 {
		t.Errorf("empty plan produced %d prototypes, want 0", len(got))
	}
}

func TestCalculatePrototypesFiltersNonRoads(t *testing.T) {
	plan := NewPlan()
	plan.Put(NewGestureID(), &Gesture{
		Points: []geom.Point{{X: 0, Y: 0}, {X: 100, Y: 0}},
		// No intent: not a road, excluded from synthesis.
	})
	plan.Put(NewGestureID(), &Gesture{
		Points: []geom.Point{{X: 0, Y: 50}},
		Intent: RoadIntent{LanesForward: 1},
	})
	if got := CalculatePrototypes(plan); len(got) != 0 {
		t.Errorf("non-road and too-short gestures produced %d prototypes, want 0", len(got))
	}
}

func TestCalculatePrototypesOrdering(t *testing.T) {
	intent := RoadIntent{LanesForward: 1, LanesBackward: 1}
	plan := roadPlan(
		&Gesture{Points: []geom.Point{{X: 0, Y: 0}, {X: 100, Y: 0}}, Intent: intent},
		&Gesture{Points: []geom.Point{{X: 50, Y: -50}, {X: 50, Y: 50}}, Intent: intent},
	)
	prototypes := CalculatePrototypes(plan)

	// Intersections come first, then lanes.
	seenLane := false
	for i, p := range prototypes {
		switch p.Kind {
		case KindLane:
			seenLane = true
			if p.Lane == nil || p.Intersection != nil {
				t.Errorf("prototype %d: lane variant fields inconsistent", i)
			}
		case KindIntersection:
			if seenLane {
				t.Errorf("prototype %d: intersection after first lane", i)
			}
			if p.Intersection == nil || p.Lane != nil {
				t.Errorf("prototype %d: intersection variant fields inconsistent", i)
			}
		default:
			t.Errorf("prototype %d: unknown kind %d", i, p.Kind)
		}
	}
}

func TestCalculatePrototypesIsStateless(t *testing.T) {
	intent := RoadIntent{LanesForward: 1, LanesBackward: 1}
	plan := roadPlan(
		&Gesture{Points: []geom.Point{{X: 0, Y: 0}, {X: 100, Y: 0}}, Intent: intent},
		&Gesture{Points: []geom.Point{{X: 50, Y: -50}, {X: 50, Y: 50}}, Intent: intent},
	)
	first := CalculatePrototypes(plan)
	second := CalculatePrototypes(plan)
	if len(first) != len(second) {
		t.Fatalf("recomputation changed prototype count: %d then %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Kind != second[i].Kind {
			t.Errorf("prototype %d changed kind between runs", i)
		}
	}
	// The second run must not have appended more connectors to the
	// first run's intersections.
	for i, p := range first {
		if p.Kind != KindIntersection {
			continue
		}
		if len(p.Intersection.Incoming) != len(second[i].Intersection.Incoming) {
			t.Errorf("intersection %d connector count differs between runs", i)
		}
	}
}
