package filters

import (
	"github.com/katalvlaran/pathguard/pathstate"
	"github.com/katalvlaran/pathguard/saturate"
)

// VehicleAmortizedCost contributes LinearFactor − QuadraticFactor·count²
// per non-empty vehicle (count = regular-node visits), plus
// TransitionBonus whenever a path flips empty<->non-empty this round
// (spec.md §4.4).
type VehicleAmortizedCost struct {
	linearFactor, quadraticFactor, transitionBonus int64
	numPaths                                       int
	committedCount                                 []int
}

// NewVehicleAmortizedCost builds a checker over numPaths vehicles.
func NewVehicleAmortizedCost(linearFactor, quadraticFactor, transitionBonus int64, numPaths int) *VehicleAmortizedCost {
	return &VehicleAmortizedCost{
		linearFactor: linearFactor, quadraticFactor: quadraticFactor, transitionBonus: transitionBonus,
		numPaths: numPaths, committedCount: make([]int, numPaths),
	}
}

func (f *VehicleAmortizedCost) costOf(count int) int64 {
	if count == 0 {
		return 0
	}

	return saturate.CapSub(f.linearFactor, saturate.CapMul(f.quadraticFactor, int64(count)*int64(count)))
}

func regularCount(ps *pathstate.PathState, path int) int {
	n := len(ps.Nodes(path)) - 2
	if n < 0 {
		return 0
	}

	return n
}

// Commit snapshots every path's committed regular-node count.
func (f *VehicleAmortizedCost) Commit(ps *pathstate.PathState) {
	for p := 0; p < f.numPaths; p++ {
		f.committedCount[p] = regularCount(ps, p)
	}
}

// Check returns the total objective delta across touched paths.
func (f *VehicleAmortizedCost) Check(ps *pathstate.PathState) int64 {
	var delta int64
	for _, p := range ps.ChangedPaths() {
		oldCount := f.committedCount[p]
		newCount := regularCount(ps, p)

		costDelta := saturate.CapSub(f.costOf(newCount), f.costOf(oldCount))
		if (oldCount == 0) != (newCount == 0) {
			costDelta = saturate.CapAdd(costDelta, f.transitionBonus)
		}
		delta = saturate.CapAdd(delta, costDelta)
	}

	return delta
}
