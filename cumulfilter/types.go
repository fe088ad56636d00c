package cumulfilter

import "github.com/katalvlaran/pathguard/interval"

// TransitFunc returns the scalar transit cost of arc (u, v) under the
// given vehicle class, added to the running cumul during a walk.
type TransitFunc func(u, v, vehicleClass int) int64

// SlackMinFunc returns the minimum slack (e.g. mandatory wait) added at
// node before the running cumul is re-clamped to its hard bounds.
type SlackMinFunc func(node int) int64

// NodeCapFunc returns a node's hard cumul bound [min, max].
type NodeCapFunc func(node int) interval.ExtendedInterval

// PathCapFunc returns a vehicle's overall cumul bound, intersected with
// every node's own bound while walking that vehicle's path.
type PathCapFunc func(path int) interval.ExtendedInterval

// VehicleClassFunc returns the vehicle class governing a path's transits.
type VehicleClassFunc func(path int) int

// ForbiddenFunc returns the forbidden cumul sub-intervals at node (the
// running cumul must never rest inside one of these).
type ForbiddenFunc func(node int) []interval.ExtendedInterval

// SoftBoundFunc returns a node's optional soft bound and per-unit
// violation coefficient; ok is false when node has no such bound.
type SoftBoundFunc func(node int) (bound, coeff int64, ok bool)

// PiecewiseCostFunc returns an optional piecewise-linear cost curve for
// node's cumul value, and whether node has one.
type PiecewiseCostFunc func(node int) (curve *PiecewiseLinear, ok bool)

// SpanCoeffFunc returns a path's linear span-plus-slack cost
// coefficient (applied to span - total_transit).
type SpanCoeffFunc func(path int) int64

// SoftSpanFunc returns a path's optional soft span bound (linear or
// quadratic) and coefficient.
type SoftSpanFunc func(path int) (bound, coeff int64, ok bool)

// Precedence requires, when both nodes are performed, that
// max_cumul(Second) >= min_cumul(First) + Offset.
type Precedence struct {
	First, Second int
	Offset        int64
}

// PickupDeliveryLimit bounds the cumul distance between a pickup and
// its matching delivery: min_cumul(Delivery) - max_cumul(Pickup) <= Limit.
type PickupDeliveryLimit struct {
	Pickup, Delivery int
	Limit            int64
}

// BreakDistanceLimit requires at least floor((total_transit-1)/Limit)
// breaks of at least MinBreakDuration to fit along a path whose total
// transit exceeds Limit.
type BreakDistanceLimit struct {
	Limit            int64
	MinBreakDuration int64
}

// Break is an explicit scheduled break window; if it straddles the
// path's mandatory interval [max_start, min_end) it contributes
// DurationMin to the path's slack lower bound.
type Break struct {
	StartMax, EndMin int64
	DurationMin      int64
}
