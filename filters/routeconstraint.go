package filters

import (
	"github.com/katalvlaran/pathguard/pathstate"
	"github.com/katalvlaran/pathguard/saturate"
)

// RouteCostFunc is a user-provided route-cost function: no value means
// the route is infeasible (spec.md §4.4).
type RouteCostFunc func(nodes []int) (cost int64, ok bool)

// RouteConstraint delegates a path's cost entirely to an external
// route-cost function, replacing the path's tracked objective
// contribution with whatever that function returns.
type RouteConstraint struct {
	costFn        RouteCostFunc
	numPaths      int
	committedCost []int64
}

// NewRouteConstraint builds a checker over numPaths vehicles.
func NewRouteConstraint(costFn RouteCostFunc, numPaths int) *RouteConstraint {
	return &RouteConstraint{costFn: costFn, numPaths: numPaths, committedCost: make([]int64, numPaths)}
}

// Commit snapshots every path's committed route cost.
func (f *RouteConstraint) Commit(ps *pathstate.PathState) {
	for p := 0; p < f.numPaths; p++ {
		cost, ok := f.costFn(ps.Nodes(p))
		if !ok {
			// committed state is assumed feasible; an infeasible
			// committed route indicates inconsistent caller state.
			panic("filters: committed route rejected by route-cost function")
		}
		f.committedCost[p] = cost
	}
}

// Check replaces each touched path's cost contribution with the fresh
// route-cost function result, returning the total objective delta.
func (f *RouteConstraint) Check(ps *pathstate.PathState) (ok bool, objectiveDelta int64) {
	for _, p := range ps.ChangedPaths() {
		cost, ok := f.costFn(ps.Nodes(p))
		if !ok {
			return false, 0
		}
		objectiveDelta = saturate.CapAdd(objectiveDelta, saturate.CapSub(cost, f.committedCost[p]))
	}

	return true, objectiveDelta
}
