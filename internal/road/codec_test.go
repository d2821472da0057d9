package road

import (
	"encoding/json"
	"testing"

	"github.com/ctessum/geom"
	"github.com/google/go-cmp/cmp"
)

func TestPlanJSONRoundTrip(t *testing.T) {
	plan := NewPlan()
	plan.Put("g-1", &Gesture{
		Points: []geom.Point{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 100}},
		Intent: RoadIntent{LanesForward: 2, LanesBackward: 1},
	})
	plan.Put("g-2", &Gesture{
		Points: []geom.Point{{X: 5, Y: 5}, {X: 10, Y: 10}},
		// Intent-less gesture survives the round trip but is ignored
		// by synthesis.
	})

	data, err := json.Marshal(plan)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	decoded := NewPlan()
	if err := json.Unmarshal(data, decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if decoded.Len() != plan.Len() {
		t.Fatalf("round trip changed gesture count: %d → %d", plan.Len(), decoded.Len())
	}
	for i, want := range plan.Pairs() {
		got := decoded.Pairs()[i]
		if got.ID != want.ID {
			t.Errorf("pair %d: id %q, want %q", i, got.ID, want.ID)
		}
		if diff := cmp.Diff(want.Gesture.Points, got.Gesture.Points); diff != "" {
			t.Errorf("pair %d points mismatch (-want +got):\n%s", i, diff)
		}
		if diff := cmp.Diff(want.Gesture.Intent, got.Gesture.Intent); diff != "" {
			t.Errorf("pair %d intent mismatch (-want +got):\n%s", i, diff)
		}
	}
}

func TestPlanUnmarshalRejectsMissingID(t *testing.T) {
	decoded := NewPlan()
	err := json.Unmarshal([]byte(`{"gestures":[{"points":[[0,0],[1,1]]}]}`), decoded)
	if err == nil {
		t.Error("expected error for gesture without id")
	}
}

func TestEncodePrototypes(t *testing.T) {
	intent := RoadIntent{LanesForward: 1, LanesBackward: 1}
	plan := roadPlan(
		&Gesture{Points: []geom.Point{{X: 0, Y: 0}, {X: 100, Y: 0}}, Intent: intent},
		&Gesture{Points: []geom.Point{{X: 50, Y: -50}, {X: 50, Y: 50}}, Intent: intent},
	)
	prototypes := CalculatePrototypes(plan)

	data, err := EncodePrototypes(prototypes)
	if err != nil {
		t.Fatalf("EncodePrototypes: %v", err)
	}

	var decoded []struct {
		Kind     string         `json:"kind"`
		Path     [][2]float64   `json:"path"`
		Shape    [][][2]float64 `json:"shape"`
		Incoming []struct {
			Position  [2]float64 `json:"position"`
			Direction [2]float64 `json:"direction"`
		} `json:"incoming"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded) != len(prototypes) {
		t.Fatalf("encoded %d prototypes, want %d", len(decoded), len(prototypes))
	}
	for i, p := range decoded {
		switch p.Kind {
		case "lane":
			if len(p.Path) < 2 {
				t.Errorf("prototype %d: lane path has %d points", i, len(p.Path))
			}
		case "intersection":
			if len(p.Shape) == 0 || len(p.Shape[0]) < 3 {
				t.Errorf("prototype %d: intersection shape is empty", i)
			}
			if len(p.Incoming) == 0 {
				t.Errorf("prototype %d: intersection lost its connectors", i)
			}
		default:
			t.Errorf("prototype %d: unknown kind %q", i, p.Kind)
		}
	}
}
