// Package filters implements the specialized path-feasibility filters
// of spec.md §4.4: MaxActiveVehicles, ActiveNodeGroup, Disjunction,
// PickupDelivery, VehicleVariable, RouteConstraint, VehicleAmortizedCost,
// TypeRegulations, plus ResourceGroupFilter (new, supplementing the
// has_resource_groups configuration flag).
//
// Unlike cumulfilter, these filters read directly from a
// *pathstate.PathState (committed snapshot via Commit, pending-round
// evaluation via Check) rather than through a pathfilter.Skeleton —
// the same direct-read pattern dimension.Checker and energy.Checker
// already use. None of these filters decompose into a per-path chain
// window the way DimensionChecker or PathCumulFilter do: they are
// node- or path-membership counters, so there is nothing for a chain
// window to restrict.
package filters
