package road

import (
	"testing"

	"github.com/ctessum/geom"
)

func TestRenderStrips(t *testing.T) {
	intent := RoadIntent{LanesForward: 1, LanesBackward: 1}
	plan := roadPlan(
		&Gesture{Points: []geom.Point{{X: 0, Y: 0}, {X: 100, Y: 0}}, Intent: intent},
		&Gesture{Points: []geom.Point{{X: 50, Y: -50}, {X: 50, Y: 50}}, Intent: intent},
	)
	prototypes := CalculatePrototypes(plan)
	strips := RenderStrips(prototypes)

	if len(strips) != len(prototypes) {
		t.Fatalf("got %d strips for %d prototypes", len(strips), len(prototypes))
	}

	openStrips, closedStrips := 0, 0
	for i, strip := range strips {
		if len(strip.Spine) < 2 {
			t.Errorf("strip %d has %d spine points", i, len(strip.Spine))
		}
		if strip.Closed {
			closedStrips++
			if strip.Width != outlineStripWidth {
				t.Errorf("intersection strip %d width = %v, want %v", i, strip.Width, outlineStripWidth)
			}
		} else {
			openStrips++
			if strip.Width != laneStripWidth {
				t.Errorf("lane strip %d width = %v, want %v", i, strip.Width, laneStripWidth)
			}
		}
	}
	if closedStrips != 2 {
		t.Errorf("got %d closed (intersection) strips, want 2", closedStrips)
	}
	if openStrips != 8 {
		t.Errorf("got %d open (lane) strips, want 8", openStrips)
	}
}

func TestRenderStripsEmpty(t *testing.T) {
	if strips := RenderStrips(nil); len(strips) != 0 {
		t.Errorf("got %d strips for no prototypes, want 0", len(strips))
	}
}
