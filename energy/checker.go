package energy

import (
	"github.com/katalvlaran/pathguard/pathstate"
	"github.com/katalvlaran/pathguard/saturate"
	"github.com/katalvlaran/pathguard/wavelet"
)

// pathData is everything cached for one committed path at the last Commit.
type pathData struct {
	forcePerArc []int64 // forcePerArc[i]: running force during arc i
	distPerArc  []int64
	totalDist   int64
	totalEnergy int64
	rmq         [][]int64
	offset      int64
	vclass      int
	energyTree  wavelet.Tree
	distTree    wavelet.Tree
}

// Checker is an incremental evaluator for PathEnergyCostChecker.
type Checker struct {
	force        NodeForceFunc
	distance     DistanceFunc
	vehicleClass VehicleClassFunc
	threshold    ThresholdFunc
	costBelow    CostBelowFunc
	costAbove    CostAboveFunc
	forceStart   ForceStartMinFunc
	forceEnd     ForceEndMinFunc

	paths []pathData
}

// NewChecker builds a Checker from the given per-dimension evaluators.
func NewChecker(force NodeForceFunc, distance DistanceFunc, vehicleClass VehicleClassFunc,
	threshold ThresholdFunc, costBelow CostBelowFunc, costAbove CostAboveFunc,
	forceStart ForceStartMinFunc, forceEnd ForceEndMinFunc) *Checker {
	return &Checker{
		force: force, distance: distance, vehicleClass: vehicleClass,
		threshold: threshold, costBelow: costBelow, costAbove: costAbove,
		forceStart: forceStart, forceEnd: forceEnd,
	}
}

// Commit rebuilds every path's force/distance tables from ps's current
// committed state. Must be called immediately after ps.Commit().
func (c *Checker) Commit(ps *pathstate.PathState) {
	numPaths := ps.NumPaths()
	c.paths = make([]pathData, numPaths)

	for p := 0; p < numPaths; p++ {
		nodes := ps.Nodes(p)
		vclass := c.vehicleClass(p)
		numArcs := len(nodes) - 1
		if numArcs < 0 {
			numArcs = 0
		}

		pd := pathData{
			forcePerArc: make([]int64, numArcs),
			distPerArc:  make([]int64, numArcs),
			vclass:      vclass,
		}

		running := int64(0)
		minForce := saturate.MaxInt64
		for i := 0; i < numArcs; i++ {
			running = saturate.CapAdd(running, c.force(nodes[i]))
			pd.forcePerArc[i] = running
			pd.distPerArc[i] = c.distance(nodes[i], nodes[i+1], vclass)
			pd.totalDist = saturate.CapAdd(pd.totalDist, pd.distPerArc[i])
			pd.totalEnergy = saturate.CapAdd(pd.totalEnergy, saturate.CapMul(pd.forcePerArc[i], pd.distPerArc[i]))
			if running < minForce {
				minForce = running
			}
		}
		if numArcs > 0 {
			running = saturate.CapAdd(running, c.force(nodes[numArcs]))
		}
		totalForce := running

		if numArcs == 0 {
			minForce = 0
		}

		offset := c.forceStart(p)
		if neg := saturate.CapNeg(minForce); neg > offset {
			offset = neg
		}
		if endGap := saturate.CapSub(c.forceEnd(p), totalForce); endGap > offset {
			offset = endGap
		}
		pd.offset = offset

		pd.rmq = buildRMQ(pd.forcePerArc)
		pd.energyTree.MakeTreeFromNewElements(pd.forcePerArc, weightedEnergy(pd.forcePerArc, pd.distPerArc))
		pd.distTree.MakeTreeFromNewElements(pd.forcePerArc, pd.distPerArc)

		c.paths[p] = pd
	}
}

func weightedEnergy(force, dist []int64) []int64 {
	w := make([]int64, len(force))
	for i := range force {
		w[i] = saturate.CapMul(force[i], dist[i])
	}
	return w
}

// Check evaluates every path ps reports as changed and returns the
// combined energy cost contribution, or ok=false if any path's cost
// saturated to the sentinel maximum (treated as a soft reject, spec.md §7).
func (c *Checker) Check(ps *pathstate.PathState) (ok bool, totalCost int64) {
	for _, p := range ps.ChangedPaths() {
		cost := c.PathCost(ps, p)
		if cost == saturate.MaxInt64 {
			return false, 0
		}
		totalCost = saturate.CapAdd(totalCost, cost)
	}

	return true, totalCost
}

// PathCost recomputes the full energy cost for path p using ps's
// currently-changed (not yet committed) node sequence.
func (c *Checker) PathCost(ps *pathstate.PathState, p int) int64 {
	nodes := ps.Nodes(p)
	vclass := c.vehicleClass(p)
	numArcs := len(nodes) - 1
	if numArcs <= 0 {
		return 0
	}

	forcePerArc := make([]int64, numArcs)
	distPerArc := make([]int64, numArcs)
	running := int64(0)
	minForce := saturate.MaxInt64
	for i := 0; i < numArcs; i++ {
		running = saturate.CapAdd(running, c.force(nodes[i]))
		forcePerArc[i] = running
		distPerArc[i] = c.distance(nodes[i], nodes[i+1], vclass)
		if running < minForce {
			minForce = running
		}
	}
	running = saturate.CapAdd(running, c.force(nodes[numArcs]))
	totalForce := running

	offset := c.forceStart(p)
	if neg := saturate.CapNeg(minForce); neg > offset {
		offset = neg
	}
	if endGap := saturate.CapSub(c.forceEnd(p), totalForce); endGap > offset {
		offset = endGap
	}

	var tree, distTree wavelet.Tree
	tree.MakeTreeFromNewElements(forcePerArc, weightedEnergy(forcePerArc, distPerArc))
	distTree.MakeTreeFromNewElements(forcePerArc, distPerArc)

	totalDist := int64(0)
	totalEnergy := int64(0)
	for i := 0; i < numArcs; i++ {
		totalDist = saturate.CapAdd(totalDist, distPerArc[i])
		totalEnergy = saturate.CapAdd(totalEnergy, saturate.CapMul(forcePerArc[i], distPerArc[i]))
	}

	thresholdShifted := saturate.CapSub(c.threshold(p), offset)
	energyQuery := tree.RangeSumWithThreshold(thresholdShifted, 0, numArcs)
	distQuery := distTree.RangeSumWithThreshold(thresholdShifted, 0, numArcs)

	belowRaw := saturate.CapAdd(saturate.CapSub(totalEnergy, energyQuery), saturate.CapMul(thresholdShifted, distQuery))
	aboveRaw := saturate.CapSub(energyQuery, saturate.CapMul(thresholdShifted, distQuery))

	cost := saturate.CapMul(c.costBelow(p), saturate.CapMul(offset, totalDist))
	cost = saturate.CapAdd(cost, saturate.CapMul(c.costBelow(p), belowRaw))
	cost = saturate.CapAdd(cost, saturate.CapMul(c.costAbove(p), aboveRaw))

	return cost
}

// CommittedPathCost returns path p's energy cost as of the last Commit,
// read from the cached wavelet tables rather than recomputed from ps
// (the fast path of spec.md §4.6's "cached tables or evaluators" split;
// PathCost/Check is the slow path used for the current round's pending
// state).
func (c *Checker) CommittedPathCost(p int) int64 {
	pd := c.paths[p]
	numArcs := len(pd.forcePerArc)
	if numArcs == 0 {
		return 0
	}

	thresholdShifted := saturate.CapSub(c.threshold(p), pd.offset)
	energyQuery := pd.energyTree.RangeSumWithThreshold(thresholdShifted, 0, numArcs)
	distQuery := pd.distTree.RangeSumWithThreshold(thresholdShifted, 0, numArcs)

	belowRaw := saturate.CapAdd(saturate.CapSub(pd.totalEnergy, energyQuery), saturate.CapMul(thresholdShifted, distQuery))
	aboveRaw := saturate.CapSub(energyQuery, saturate.CapMul(thresholdShifted, distQuery))

	cost := saturate.CapMul(c.costBelow(p), saturate.CapMul(pd.offset, pd.totalDist))
	cost = saturate.CapAdd(cost, saturate.CapMul(c.costBelow(p), belowRaw))
	cost = saturate.CapAdd(cost, saturate.CapMul(c.costAbove(p), aboveRaw))

	return cost
}

// MandatoryOffset returns the offset cached for path p at the last Commit.
func (c *Checker) MandatoryOffset(p int) int64 {
	return c.paths[p].offset
}

// buildRMQ builds a sparse range-minimum table: rmq[l][i] is the
// minimum of force[i:i+2^l).
func buildRMQ(force []int64) [][]int64 {
	n := len(force)
	if n == 0 {
		return nil
	}
	layers := [][]int64{append([]int64(nil), force...)}
	for h := 1; 1<<uint(h) <= n; h++ {
		prev := layers[h-1]
		size := n - (1 << uint(h)) + 1
		next := make([]int64, size)
		half := 1 << uint(h-1)
		for i := 0; i < size; i++ {
			a, b := prev[i], prev[i+half]
			if a < b {
				next[i] = a
			} else {
				next[i] = b
			}
		}
		layers = append(layers, next)
	}
	return layers
}

// RangeMin returns the minimum force in path p's arcs [l, r), using the
// sparse table built at the last Commit.
func (c *Checker) RangeMin(p, l, r int) int64 {
	rmq := c.paths[p].rmq
	if l >= r || rmq == nil {
		return saturate.MaxInt64
	}
	h := 0
	for (1 << uint(h+1)) <= r-l {
		h++
	}
	a := rmq[h][l]
	b := rmq[h][r-(1<<uint(h))]
	if a < b {
		return a
	}
	return b
}
