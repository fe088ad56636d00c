package cumulfilter

import (
	"github.com/katalvlaran/pathguard/interval"
	"github.com/katalvlaran/pathguard/pathfilter"
	"github.com/katalvlaran/pathguard/saturate"
)

// Config bundles every evaluator NewFilter needs. Every per-path func
// is invoked with a path's start node id (see doc.go).
type Config struct {
	Starts, Ends []int

	Transit      TransitFunc
	SlackMin     SlackMinFunc
	NodeCap      NodeCapFunc
	PathCap      PathCapFunc
	VehicleClass VehicleClassFunc
	Forbidden    ForbiddenFunc
	SoftUpper    SoftBoundFunc
	SoftLower    SoftBoundFunc
	Piecewise    PiecewiseCostFunc

	SpanCoeff       SpanCoeffFunc
	SoftSpanLinear  SoftSpanFunc
	SoftSpanQuad    SoftSpanFunc
	GlobalSpanCoeff int64

	Precedences   []Precedence
	PDLimits      []PickupDeliveryLimit
	BreakLimits   map[int][]BreakDistanceLimit // path start -> limits
	Breaks        map[int][]Break              // path start -> breaks
}

// Filter is PathCumulFilter: a pathfilter.Acceptor driving one cumul
// dimension's cost and feasibility evaluation.
type Filter struct {
	sk         *pathfilter.Skeleton
	startToEnd map[int]int
	starts     []int

	transit      TransitFunc
	slackMin     SlackMinFunc
	nodeCap      NodeCapFunc
	pathCap      PathCapFunc
	vehicleClass VehicleClassFunc
	forbidden    ForbiddenFunc
	softUpper    SoftBoundFunc
	softLower    SoftBoundFunc
	piecewise    PiecewiseCostFunc

	spanCoeff       SpanCoeffFunc
	softSpanLinear  SoftSpanFunc
	softSpanQuad    SoftSpanFunc
	globalSpanCoeff int64

	precedences  []Precedence
	pdByPickup   map[int]PickupDeliveryLimit
	pdByDelivery map[int]PickupDeliveryLimit
	breakLimits  map[int][]BreakDistanceLimit
	breaks       map[int][]Break

	// committed cache, rebuilt per path by OnSynchronizePathFromStart.
	committedMinCumul map[int]int64
	committedMaxCumul map[int]int64
	committedPathCost map[int]int64
	committedStart    map[int]int64
	committedEnd      map[int]int64
	committedMaxEnd   int64
	committedMinStart int64
	synchronizedObj   int64

	// delta scratch, reset by InitializeAcceptPath.
	deltaMinCumul    map[int]int64
	deltaMaxCumul    map[int]int64
	deltaPathCost    map[int]int64
	deltaPathEnd     map[int]int64
	deltaPathStart   map[int]int64
	deltaSpanLB      map[int]int64
	deltaQuadCost    map[int]int64
	touchedPaths     []int
	acceptedObjective int64

	pathfilter.Base
}

// NewFilter builds a Filter from cfg. Call Bind once the owning
// pathfilter.Skeleton has been constructed with this Filter as its
// Acceptor.
func NewFilter(cfg Config) *Filter {
	f := &Filter{
		startToEnd: make(map[int]int, len(cfg.Starts)),
		starts:     append([]int(nil), cfg.Starts...),

		transit: cfg.Transit, slackMin: cfg.SlackMin,
		nodeCap: cfg.NodeCap, pathCap: cfg.PathCap,
		vehicleClass: cfg.VehicleClass, forbidden: cfg.Forbidden,
		softUpper: cfg.SoftUpper, softLower: cfg.SoftLower, piecewise: cfg.Piecewise,

		spanCoeff: cfg.SpanCoeff, softSpanLinear: cfg.SoftSpanLinear,
		softSpanQuad: cfg.SoftSpanQuad, globalSpanCoeff: cfg.GlobalSpanCoeff,

		precedences: cfg.Precedences,
		breakLimits: cfg.BreakLimits, breaks: cfg.Breaks,

		pdByPickup:   make(map[int]PickupDeliveryLimit, len(cfg.PDLimits)),
		pdByDelivery: make(map[int]PickupDeliveryLimit, len(cfg.PDLimits)),

		committedMinCumul: make(map[int]int64),
		committedMaxCumul: make(map[int]int64),
		committedPathCost: make(map[int]int64),
		committedStart:    make(map[int]int64),
		committedEnd:      make(map[int]int64),
	}

	for i, s := range cfg.Starts {
		f.startToEnd[s] = cfg.Ends[i]
	}
	for _, pd := range cfg.PDLimits {
		f.pdByPickup[pd.Pickup] = pd
		f.pdByDelivery[pd.Delivery] = pd
	}

	return f
}

// Bind wires the Skeleton this Filter observes GetNext through.
func (f *Filter) Bind(sk *pathfilter.Skeleton) { f.sk = sk }

// walkResult is what a full path walk produces.
type walkResult struct {
	order        []int
	minCumul     map[int]int64
	maxCumul     map[int]int64
	totalTransit int64
	cost         int64
	endX         int64
	startX       int64
	spanLB       int64
	quadCost     int64
}

// walkPath performs PathCumulFilter's forward-then-backward walk of
// the path starting at start, entirely from sk.GetNext (so it sees the
// currently proposed next values during Accept, or the committed ones
// during Synchronize). feasible is false if a hard bound is violated.
func (f *Filter) walkPath(start int) (res walkResult, feasible bool) {
	end := f.startToEnd[start]
	vclass := f.vehicleClass(start)
	pathCapI := f.pathCap(start)

	res.minCumul = make(map[int]int64)
	res.maxCumul = make(map[int]int64)

	node := start
	var x int64
	var totalTransit int64
	var cost int64

	for step := 0; ; step++ {
		nodeCapI := f.nodeCap(node)
		lo := nodeCapI.Min
		if pathCapI.Min > lo {
			lo = pathCapI.Min
		}
		hi := nodeCapI.Max
		if pathCapI.Max < hi {
			hi = pathCapI.Max
		}

		if step == 0 {
			x = lo
		} else {
			x = saturate.CapAdd(x, f.slackMin(node))
			if x < lo {
				x = lo
			}
		}
		if forb := f.forbidden; forb != nil {
			x = jumpForward(x, forb(node))
		}
		if x < lo {
			x = lo
		}
		if x > hi {
			return res, false
		}

		res.order = append(res.order, node)
		res.minCumul[node] = x

		if bound, coeff, ok := f.softUpper(node); ok {
			d := x - bound
			if d > 0 {
				cost = saturate.CapAdd(cost, saturate.CapMul(coeff, d))
			}
		}
		if bound, coeff, ok := f.softLower(node); ok {
			d := bound - x
			if d > 0 {
				cost = saturate.CapAdd(cost, saturate.CapMul(coeff, d))
			}
		}
		if curve, ok := f.piecewise(node); ok {
			cost = saturate.CapAdd(cost, curve.Cost(x))
		}

		if node == end || step >= 1_000_000 {
			break
		}
		next := f.sk.GetNext(node)
		t := f.transit(node, next, vclass)
		totalTransit = saturate.CapAdd(totalTransit, t)
		x = saturate.CapAdd(x, t)
		node = next
	}
	if res.order[len(res.order)-1] != end {
		panic("cumulfilter: path walk did not terminate at its end node")
	}

	res.totalTransit = totalTransit
	res.cost = cost
	res.startX = res.minCumul[start]
	res.endX = res.minCumul[end]

	// backward pass: z seeded at the just-computed min cumul at end,
	// clipped to each node's max cap while stepping back (spec.md §4.5).
	z := res.endX
	res.maxCumul[end] = z
	var pendingDeliveryMin map[int]int64
	for i := len(res.order) - 1; i > 0; i-- {
		node := res.order[i]
		prev := res.order[i-1]

		if pd, ok := f.pdByDelivery[node]; ok {
			if pendingDeliveryMin == nil {
				pendingDeliveryMin = make(map[int]int64)
			}
			pendingDeliveryMin[pd.Pickup] = res.minCumul[node]
		}
		if pd, ok := f.pdByPickup[node]; ok {
			if minDelivery, ok := pendingDeliveryMin[node]; ok {
				if saturate.CapSub(minDelivery, z) > pd.Limit {
					return res, false
				}
			}
		}

		t := f.transit(prev, node, vclass)
		z = saturate.CapSub(z, t)
		nodeCapI := f.nodeCap(prev)
		if z > nodeCapI.Max {
			z = nodeCapI.Max
		}
		res.maxCumul[prev] = z
	}

	spanLB := saturate.CapSub(res.endX, res.maxCumul[start])
	res.spanLB = spanLB

	slackLB := int64(0)
	for _, lim := range f.breakLimits[start] {
		if lim.Limit > 0 && totalTransit > 0 {
			required := saturate.CapSub(totalTransit, 1) / lim.Limit
			slackLB = saturate.CapAdd(slackLB, saturate.CapMul(required, lim.MinBreakDuration))
		}
	}
	for _, br := range f.breaks[start] {
		if br.StartMax < res.endX && br.EndMin > res.maxCumul[start] {
			slackLB = saturate.CapAdd(slackLB, br.DurationMin)
		}
	}

	coeff := f.spanCoeff(start)
	base := spanLB - totalTransit
	if base < 0 {
		base = 0
	}
	cost = saturate.CapAdd(cost, saturate.CapMul(coeff, saturate.CapAdd(base, slackLB)))

	if bound, lcoeff, ok := f.softSpanLinear(start); ok {
		d := spanLB - bound
		if d > 0 {
			cost = saturate.CapAdd(cost, saturate.CapMul(lcoeff, d))
		}
	}
	if bound, qcoeff, ok := f.softSpanQuad(start); ok {
		d := spanLB - bound
		if d < 0 {
			d = 0
		}
		quad := saturate.CapMul(qcoeff, saturate.CapMul(d, d))
		res.quadCost = quad
		cost = saturate.CapAdd(cost, quad)
	}

	res.cost = cost

	return res, true
}

func jumpForward(x int64, forbidden []interval.ExtendedInterval) int64 {
	for moved := true; moved; {
		moved = false
		for _, fb := range forbidden {
			if x >= fb.Min && x <= fb.Max {
				next := saturate.CapAdd(fb.Max, 1)
				if next > x {
					x = next
					moved = true
				}
			}
		}
	}

	return x
}

// OnSynchronizePathFromStart rebuilds path start's committed cache.
func (f *Filter) OnSynchronizePathFromStart(start int) {
	res, ok := f.walkPath(start)
	if !ok {
		// committed state is assumed feasible; a violation here means
		// the caller synchronized an inconsistent assignment.
		panic("cumulfilter: committed path violates a hard cumul bound")
	}

	for node, v := range res.minCumul {
		f.committedMinCumul[node] = v
	}
	for node, v := range res.maxCumul {
		f.committedMaxCumul[node] = v
	}
	f.committedPathCost[start] = res.cost
	f.committedStart[start] = res.startX
	f.committedEnd[start] = res.endX
}

// OnAfterSynchronizePaths recomputes the synchronized global objective.
func (f *Filter) OnAfterSynchronizePaths() {
	var total int64
	maxEnd, minStart := int64(0), int64(0)
	first := true
	for _, s := range f.starts {
		total = saturate.CapAdd(total, f.committedPathCost[s])
		end := f.committedEnd[s]
		start := f.committedStart[s]
		if first || end > maxEnd {
			maxEnd = end
		}
		if first || start < minStart {
			minStart = start
		}
		first = false
	}
	f.committedMaxEnd = maxEnd
	f.committedMinStart = minStart
	f.synchronizedObj = saturate.CapAdd(total, saturate.CapMul(f.globalSpanCoeff, saturate.CapSub(maxEnd, minStart)))
}

// InitializeAcceptPath resets per-delta scratch.
func (f *Filter) InitializeAcceptPath() bool {
	f.deltaMinCumul = make(map[int]int64)
	f.deltaMaxCumul = make(map[int]int64)
	f.deltaPathCost = make(map[int]int64)
	f.deltaPathEnd = make(map[int]int64)
	f.deltaPathStart = make(map[int]int64)
	f.deltaSpanLB = make(map[int]int64)
	f.deltaQuadCost = make(map[int]int64)
	f.touchedPaths = nil
	f.acceptedObjective = 0

	return true
}

// AcceptPath walks path pathStart in full under the proposed delta.
func (f *Filter) AcceptPath(pathStart, _, _ int) bool {
	res, ok := f.walkPath(pathStart)
	if !ok {
		return false
	}

	for node, v := range res.minCumul {
		f.deltaMinCumul[node] = v
	}
	for node, v := range res.maxCumul {
		f.deltaMaxCumul[node] = v
	}
	f.deltaPathCost[pathStart] = res.cost
	f.deltaPathEnd[pathStart] = res.endX
	f.deltaPathStart[pathStart] = res.startX
	f.deltaSpanLB[pathStart] = res.spanLB
	f.deltaQuadCost[pathStart] = res.quadCost
	f.touchedPaths = append(f.touchedPaths, pathStart)

	return true
}

func (f *Filter) lookupMin(node int) (int64, bool) {
	if v, ok := f.deltaMinCumul[node]; ok {
		return v, true
	}
	v, ok := f.committedMinCumul[node]
	return v, ok
}

func (f *Filter) lookupMax(node int) (int64, bool) {
	if v, ok := f.deltaMaxCumul[node]; ok {
		return v, true
	}
	v, ok := f.committedMaxCumul[node]
	return v, ok
}

// FinalizeAcceptPath checks precedences, derives the neighbor's global
// span, optionally refines soft-quadratic-span vehicles via
// refineQuadraticSpan, and compares the accepted objective to objMax.
func (f *Filter) FinalizeAcceptPath(_, objMax int64) bool {
	for _, prec := range f.precedences {
		minFirst, ok1 := f.lookupMin(prec.First)
		maxSecond, ok2 := f.lookupMax(prec.Second)
		if ok1 && ok2 && maxSecond < saturate.CapAdd(minFirst, prec.Offset) {
			return false
		}
	}

	var maxEnd, minStart int64
	first := true
	for _, s := range f.starts {
		end, ok := f.deltaPathEnd[s]
		if !ok {
			end = f.committedEnd[s]
		}
		start, ok := f.deltaPathStart[s]
		if !ok {
			start = f.committedStart[s]
		}
		if first || end > maxEnd {
			maxEnd = end
		}
		if first || start < minStart {
			minStart = start
		}
		first = false
	}

	var cumulCostDelta int64
	for _, s := range f.touchedPaths {
		cumulCostDelta = saturate.CapAdd(cumulCostDelta, saturate.CapSub(f.deltaPathCost[s], f.committedPathCost[s]))

		if _, _, ok := f.softSpanQuad(s); ok {
			lower := float64(f.deltaSpanLB[s])
			upper := lower + 2*float64(f.deltaSpanLB[s]+1)
			bound, coeff, _ := f.softSpanQuad(s)
			_, refinedCost := refineQuadraticSpan(lower, upper, float64(bound), float64(coeff))
			refined := int64(refinedCost)
			cumulCostDelta = saturate.CapAdd(cumulCostDelta, saturate.CapSub(refined, f.deltaQuadCost[s]))
		}
	}

	accepted := saturate.CapAdd(cumulCostDelta, saturate.CapMul(f.globalSpanCoeff, saturate.CapSub(maxEnd, minStart)))
	if accepted > objMax {
		return false
	}

	f.acceptedObjective = accepted

	return true
}

// GetAcceptedObjectiveValue returns this filter's contribution to the
// last accepted neighbor's objective.
func (f *Filter) GetAcceptedObjectiveValue() int64 { return f.acceptedObjective }

// GetSynchronizedObjectiveValue returns this filter's contribution to
// the committed assignment's objective, as of the last Synchronize.
func (f *Filter) GetSynchronizedObjectiveValue() int64 { return f.synchronizedObj }
