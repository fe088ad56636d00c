package scenario_test

import (
	"testing"

	"github.com/katalvlaran/pathguard/scenario"
)

func TestBuild_AcceptsConnectedSingleVehicleScenario(t *testing.T) {
	cfg := scenario.Config{
		NumRegular: 2,
		Vehicles:   []scenario.VehicleSpec{{Start: 2, End: 3}},
		Arcs: []scenario.Arc{
			{From: 2, To: 0, Weight: 10},
			{From: 0, To: 1, Weight: 10},
			{From: 1, To: 3, Weight: 10},
		},
	}

	sc, err := scenario.Build(cfg)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if sc.PathState.NumNodes() != 4 {
		t.Fatalf("got NumNodes=%d, want 4", sc.PathState.NumNodes())
	}
}

func TestBuild_RejectsUnreachableEnd(t *testing.T) {
	cfg := scenario.Config{
		NumRegular: 1,
		Vehicles:   []scenario.VehicleSpec{{Start: 1, End: 2}},
		Arcs:       nil, // no arc at all connects start to end
	}

	if _, err := scenario.Build(cfg); err == nil {
		t.Fatalf("expected an unreachable end to be rejected")
	}
}

func TestBuild_RejectsNoVehicles(t *testing.T) {
	if _, err := scenario.Build(scenario.Config{NumRegular: 0}); err == nil {
		t.Fatalf("expected zero vehicles to be rejected")
	}
}

func TestBuild_RejectsSameStartAndEnd(t *testing.T) {
	cfg := scenario.Config{
		NumRegular: 0,
		Vehicles:   []scenario.VehicleSpec{{Start: 0, End: 0}},
	}
	if _, err := scenario.Build(cfg); err == nil {
		t.Fatalf("expected identical start/end to be rejected")
	}
}
