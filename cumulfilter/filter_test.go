package cumulfilter_test

import (
	"testing"

	"github.com/katalvlaran/pathguard/cumulfilter"
	"github.com/katalvlaran/pathguard/interval"
	"github.com/katalvlaran/pathguard/pathfilter"
)

// mapValues is a trivial pathfilter.NextValues backed by a plain map.
type mapValues map[int]int

func (m mapValues) Value(i int) int { return m[i] }

// arcTransits keys a per-arc transit, ignoring vehicle class.
type arcTransits map[[2]int]int64

func (a arcTransits) transit(u, v, _ int) int64 { return a[[2]int{u, v}] }

// nodeCaps keys a per-node hard cumul bound.
type nodeCaps map[int]interval.ExtendedInterval

func (c nodeCaps) cap(n int) interval.ExtendedInterval {
	if iv, ok := c[n]; ok {
		return iv
	}
	return interval.Full()
}

func zeroSlack(int) int64                       { return 0 }
func constClass(int) int                        { return 0 }
func noSoftBound(int) (int64, int64, bool)      { return 0, 0, false }
func noPiecewise(int) (*cumulfilter.PiecewiseLinear, bool) { return nil, false }
func noSoftSpan(int) (int64, int64, bool)       { return 0, 0, false }
func noForbidden(int) []interval.ExtendedInterval { return nil }

// baseRoute builds the committed route 10 -> 0 -> 1 -> 2 -> 3 -> 11,
// every arc transit 10, every node cap [0,1000] except the start
// (point 0). It is the shared committed scenario every test extends.
func baseRoute() (mapValues, arcTransits, nodeCaps, func(int) interval.ExtendedInterval) {
	values := mapValues{10: 0, 0: 1, 1: 2, 2: 3, 3: 11, 4: 1}
	transits := arcTransits{
		{10, 0}: 10, {0, 1}: 10, {1, 2}: 10, {2, 3}: 10, {3, 11}: 10,
		{0, 4}: 100, {4, 1}: 10,
	}
	caps := nodeCaps{
		10: interval.Point(0),
		0:  interval.Closed(0, 1000),
		1:  interval.Closed(0, 1000),
		2:  interval.Closed(0, 1000),
		3:  interval.Closed(0, 1000),
		4:  interval.Closed(0, 1000),
		11: interval.Closed(0, 1000),
	}
	pathCap := func(int) interval.ExtendedInterval { return interval.Closed(0, 1_000_000) }

	return values, transits, caps, pathCap
}

func newSkeleton(acc pathfilter.Acceptor, values mapValues) *pathfilter.Skeleton {
	sk := pathfilter.NewSkeleton(acc, values, []int{10}, []int{11})
	sk.GrowNodeSpace(12)
	return sk
}

func TestFilter_SynchronizeThenAccept_NoOpDeltaMatchesCommittedObjective(t *testing.T) {
	values, transits, caps, pathCap := baseRoute()

	f := cumulfilter.NewFilter(cumulfilter.Config{
		Starts: []int{10}, Ends: []int{11},
		Transit: transits.transit, SlackMin: zeroSlack,
		NodeCap: caps.cap, PathCap: pathCap, VehicleClass: constClass,
		Forbidden: noForbidden, SoftUpper: noSoftBound, SoftLower: noSoftBound,
		Piecewise: noPiecewise,
		SpanCoeff: func(int) int64 { return 1 },
		SoftSpanLinear: noSoftSpan, SoftSpanQuad: noSoftSpan,
	})
	sk := newSkeleton(f, values)
	f.Bind(sk)

	sk.Synchronize(true)
	if got := f.GetSynchronizedObjectiveValue(); got != 0 {
		t.Fatalf("GetSynchronizedObjectiveValue() = %d, want 0 (span lower bound equals total transit)", got)
	}

	delta := []pathfilter.DeltaEntry{{Var: 10, Value: 0, Bound: true}}
	if !sk.Accept(delta, 0, 1_000_000) {
		t.Fatalf("Accept(no-op delta) = false, want true")
	}
	if got, want := f.GetAcceptedObjectiveValue(), f.GetSynchronizedObjectiveValue(); got != want {
		t.Fatalf("GetAcceptedObjectiveValue() = %d, want %d (unchanged route)", got, want)
	}
}

func TestFilter_RejectsHardCapViolation(t *testing.T) {
	values, transits, caps, pathCap := baseRoute()
	caps[1] = interval.Closed(0, 15) // committed cumul at 1 is 20, already over cap

	f := cumulfilter.NewFilter(cumulfilter.Config{
		Starts: []int{10}, Ends: []int{11},
		Transit: transits.transit, SlackMin: zeroSlack,
		NodeCap: caps.cap, PathCap: pathCap, VehicleClass: constClass,
		Forbidden: noForbidden, SoftUpper: noSoftBound, SoftLower: noSoftBound,
		Piecewise: noPiecewise,
		SpanCoeff: func(int) int64 { return 1 },
		SoftSpanLinear: noSoftSpan, SoftSpanQuad: noSoftSpan,
	})
	sk := newSkeleton(f, values)
	f.Bind(sk)

	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("Synchronize did not panic on an already-infeasible committed route")
		}
	}()
	sk.Synchronize(true)
}

// TestFilter_RejectsPickupDeliveryDistanceLimit rejects a neighbor that
// reroutes pickup 0's path through node 4 (transit 100 instead of the
// committed direct transit 10 to delivery 1), pushing the cumul
// distance between them past the configured limit.
func TestFilter_RejectsPickupDeliveryDistanceLimit(t *testing.T) {
	values, transits, caps, pathCap := baseRoute()

	f := cumulfilter.NewFilter(cumulfilter.Config{
		Starts: []int{10}, Ends: []int{11},
		Transit: transits.transit, SlackMin: zeroSlack,
		NodeCap: caps.cap, PathCap: pathCap, VehicleClass: constClass,
		Forbidden: noForbidden, SoftUpper: noSoftBound, SoftLower: noSoftBound,
		Piecewise: noPiecewise,
		SpanCoeff: func(int) int64 { return 1 },
		SoftSpanLinear: noSoftSpan, SoftSpanQuad: noSoftSpan,
		PDLimits: []cumulfilter.PickupDeliveryLimit{{Pickup: 0, Delivery: 1, Limit: 15}},
	})
	sk := newSkeleton(f, values)
	f.Bind(sk)
	sk.Synchronize(true) // committed gap is 10, within the limit of 15

	delta := []pathfilter.DeltaEntry{
		{Var: 0, Value: 4, Bound: true},
		{Var: 4, Value: 1, Bound: true},
	}
	if sk.Accept(delta, 0, 1_000_000) {
		t.Fatalf("Accept = true, want false (pickup-delivery gap 110 exceeds limit 15)")
	}
}

// TestFilter_RejectsPrecedenceViolation exercises FinalizeAcceptPath's
// precedence check, which Synchronize never runs (precedences are only
// enforced at Accept time, spec.md §4.5's acceptance-phase check).
func TestFilter_RejectsPrecedenceViolation(t *testing.T) {
	values, transits, caps, pathCap := baseRoute()

	f := cumulfilter.NewFilter(cumulfilter.Config{
		Starts: []int{10}, Ends: []int{11},
		Transit: transits.transit, SlackMin: zeroSlack,
		NodeCap: caps.cap, PathCap: pathCap, VehicleClass: constClass,
		Forbidden: noForbidden, SoftUpper: noSoftBound, SoftLower: noSoftBound,
		Piecewise: noPiecewise,
		SpanCoeff: func(int) int64 { return 1 },
		SoftSpanLinear: noSoftSpan, SoftSpanQuad: noSoftSpan,
		Precedences: []cumulfilter.Precedence{{First: 0, Second: 3, Offset: 1000}},
	})
	sk := newSkeleton(f, values)
	f.Bind(sk)
	sk.Synchronize(true) // never evaluates the precedence, so this must succeed

	delta := []pathfilter.DeltaEntry{{Var: 10, Value: 0, Bound: true}}
	if sk.Accept(delta, 0, 1_000_000) {
		t.Fatalf("Accept = true, want false (max_cumul(3)=40 < min_cumul(0)+1000=1010)")
	}
}

// TestFilter_AcceptedObjectiveIsExactDelta is property 10's concrete
// case: the accepted objective must equal the true cost difference
// between the proposed and committed assignments, never an
// overestimate or underestimate. The global span coefficient is 0
// here, so the global span term adds nothing.
func TestFilter_AcceptedObjectiveIsExactDelta(t *testing.T) {
	values, transits, caps, pathCap := baseRoute()

	bound, coeff := int64(45), int64(2)
	f := cumulfilter.NewFilter(cumulfilter.Config{
		Starts: []int{10}, Ends: []int{11},
		Transit: transits.transit, SlackMin: zeroSlack,
		NodeCap: caps.cap, PathCap: pathCap, VehicleClass: constClass,
		Forbidden: noForbidden, SoftUpper: noSoftBound, SoftLower: noSoftBound,
		Piecewise: noPiecewise,
		SpanCoeff: func(int) int64 { return 1 },
		SoftSpanLinear: func(int) (int64, int64, bool) { return bound, coeff, true },
		SoftSpanQuad:   noSoftSpan,
		GlobalSpanCoeff: 0, // isolated here to exercise only the per-path cumulCostDelta term
	})
	sk := newSkeleton(f, values)
	f.Bind(sk)
	sk.Synchronize(true)

	// committed span lower bound is 50 (= total transit 50), over the
	// soft bound of 45 by 5, costing coeff*5 = 10; span base cost is 0
	// (span equals total transit exactly).
	if got, want := f.GetSynchronizedObjectiveValue(), int64(10); got != want {
		t.Fatalf("GetSynchronizedObjectiveValue() = %d, want %d", got, want)
	}

	// reroute through node 4 (total transit 10->0->4->1->2->3->11 =
	// 10+100+10+10+10+10 = 150), which stretches the span lower bound
	// to 150: soft-span excess = 150-45 = 105, cost = 2*105 = 210;
	// base span cost = max(0, 150-150) = 0. Delta = 210 - 10 = 200.
	delta := []pathfilter.DeltaEntry{
		{Var: 0, Value: 4, Bound: true},
		{Var: 4, Value: 1, Bound: true},
	}
	if !sk.Accept(delta, 0, 1_000_000) {
		t.Fatalf("Accept = false, want true")
	}
	if got, want := f.GetAcceptedObjectiveValue(), int64(200); got != want {
		t.Fatalf("GetAcceptedObjectiveValue() = %d, want %d", got, want)
	}
}
