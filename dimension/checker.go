package dimension

import (
	"github.com/katalvlaran/pathguard/interval"
	"github.com/katalvlaran/pathguard/pathstate"
)

// Checker is an incremental feasibility checker for one additive
// dimension over a pathstate.PathState.
type Checker struct {
	transit            TransitFunc
	nodeCap            NodeCapFunc
	pathCap            PathCapFunc
	vehicleClass       VehicleClassFunc
	minRangeSizeForRIQ int

	layers        [][]riqEntry // layers[l][globalPos], built by the last Commit
	owningPath    []int        // globalPos -> path id that owned this range at last Commit
	classAtCommit []int        // path -> vehicleClass(path) as of last Commit
	tableLen      int
}

// NewChecker builds a Checker. minRangeSizeForRIQ is the chain-length
// cutoff below which Check always walks node by node rather than
// consulting the RIQ table (spec.md §4.3's min_range_size_for_riq).
func NewChecker(transit TransitFunc, nodeCap NodeCapFunc, pathCap PathCapFunc, vehicleClass VehicleClassFunc, minRangeSizeForRIQ int) *Checker {
	return &Checker{
		transit:            transit,
		nodeCap:            nodeCap,
		pathCap:            pathCap,
		vehicleClass:       vehicleClass,
		minRangeSizeForRIQ: minRangeSizeForRIQ,
	}
}

// Commit rebuilds the RIQ table from ps's current committed state. It
// must be called immediately after ps.Commit(), before any new
// ChangePath/ChangeLoops calls for the next round.
func (c *Checker) Commit(ps *pathstate.PathState) {
	numPaths := ps.NumPaths()
	ranges := make([]pathstate.Chain, numPaths)
	tableLen := 0
	for p := 0; p < numPaths; p++ {
		ch := ps.Chains(p)[0]
		ranges[p] = ch
		if ch.End > tableLen {
			tableLen = ch.End
		}
	}

	layer0 := make([]riqEntry, tableLen)
	owning := make([]int, tableLen)
	classAtCommit := make([]int, numPaths)

	for p := 0; p < numPaths; p++ {
		classAtCommit[p] = c.vehicleClass(p)
		nodes := ps.Nodes(p)
		begin := ranges[p].Begin
		pathCapI := c.pathCap(p)
		tsum := interval.Point(0)

		for i, node := range nodes {
			if i > 0 {
				t := c.transit(nodes[i-1], node, classAtCommit[p])
				tsum = tsum.Sum(t)
			}
			cap := c.nodeCap(node).Intersect(pathCapI)
			pos := begin + i
			layer0[pos] = riqEntry{
				CumulsToFst:  cap,
				CumulsToLst:  cap,
				TightestTsum: tsum,
				TsumAtFst:    tsum,
				TsumAtLst:    tsum,
			}
			owning[pos] = p
		}
	}

	layers := [][]riqEntry{layer0}
	for h := 1; h < tableLen; h *= 2 {
		prev := layers[len(layers)-1]
		next := make([]riqEntry, tableLen)
		for pos := 0; pos < tableLen; pos++ {
			lo := pos - 2*h + 1
			if lo < 0 || owning[lo] != owning[pos] {
				continue
			}
			next[pos] = combine(prev[pos-h], prev[pos])
		}
		layers = append(layers, next)
	}

	c.layers = layers
	c.owningPath = owning
	c.classAtCommit = classAtCommit
	c.tableLen = tableLen
}

// Check evaluates dimension feasibility for every path ps reports as
// changed, in time proportional to the total length of those changed
// chains (using the RIQ table for long chains reused from a
// class-matching committed range).
func (c *Checker) Check(ps *pathstate.PathState) bool {
	for _, p := range ps.ChangedPaths() {
		if !c.checkPath(ps, p) {
			return false
		}
	}

	return true
}

func (c *Checker) checkPath(ps *pathstate.PathState, p int) bool {
	chains := ps.Chains(p)
	nodes := ps.Nodes(p)
	pathCapI := c.pathCap(p)
	vclass := c.vehicleClass(p)

	start := ps.Start(p)
	reachable := c.nodeCap(start).Intersect(pathCapI)

	cursor := 0
	prevNode := start
	for ci, chain := range chains {
		sub := nodes[cursor : cursor+chain.Len()]
		cursor += chain.Len()

		if ci > 0 {
			t := c.transit(prevNode, sub[0], vclass)
			reachable = reachable.Sum(t).Intersect(pathCapI).Intersect(c.nodeCap(sub[0]))
			if reachable.IsEmpty() {
				return false
			}
		}

		if c.canUseRIQ(chain, vclass) {
			merged := c.riqMerge(chain.Begin, chain.End)

			reachable = reachable.Intersect(merged.CumulsToFst)
			if reachable.IsEmpty() {
				return false
			}
			transitAcrossChain := merged.TsumAtLst.Delta(merged.TsumAtFst)
			reachable = reachable.Sum(transitAcrossChain).Intersect(merged.CumulsToLst).Intersect(pathCapI)
			if reachable.IsEmpty() {
				return false
			}
		} else {
			for k, node := range sub {
				if k > 0 {
					t := c.transit(sub[k-1], node, vclass)
					reachable = reachable.Sum(t)
				}
				reachable = reachable.Intersect(c.nodeCap(node)).Intersect(pathCapI)
				if reachable.IsEmpty() {
					return false
				}
			}
		}

		prevNode = sub[len(sub)-1]
	}

	return true
}

// riqMerge folds the window [begin, end) into a single riqEntry by
// peeling the largest aligned power-of-two block off the front
// repeatedly (the standard binary decomposition of a range into
// disjoint, adjacent dyadic blocks) and combining them left to right.
// Unlike a sparse-table double-lookup, this never combines a window
// with itself: every pair of blocks combined here is adjacent, which
// is what the combine recurrence in spec.md §4.3 assumes.
func (c *Checker) riqMerge(begin, end int) riqEntry {
	cur := begin
	var acc riqEntry
	first := true
	for cur < end {
		l := highestPow2LE(end - cur)
		blockEnd := cur + (1 << uint(l))
		entry := c.layers[l][blockEnd-1]
		if first {
			acc = entry
			first = false
		} else {
			acc = combine(acc, entry)
		}
		cur = blockEnd
	}

	return acc
}

// canUseRIQ reports whether chain is long enough and was reused from
// a committed range whose cached vehicle class still matches vclass.
func (c *Checker) canUseRIQ(chain pathstate.Chain, vclass int) bool {
	if chain.Len() < c.minRangeSizeForRIQ {
		return false
	}
	if chain.Begin < 0 || chain.End > c.tableLen {
		return false
	}
	owner := c.owningPath[chain.Begin]
	if c.owningPath[chain.End-1] != owner {
		return false
	}

	return c.classAtCommit[owner] == vclass
}
