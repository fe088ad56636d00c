package dimension

import "github.com/katalvlaran/pathguard/interval"

// TransitFunc returns the transit interval [t_min, t_max] for the arc
// (u, v) under the given vehicle class.
type TransitFunc func(u, v, vehicleClass int) interval.ExtendedInterval

// NodeCapFunc returns a node's capacity interval for this dimension.
type NodeCapFunc func(node int) interval.ExtendedInterval

// PathCapFunc returns a vehicle path's overall capacity interval,
// e.g. [0, C_v].
type PathCapFunc func(path int) interval.ExtendedInterval

// VehicleClassFunc returns the vehicle class governing transit costs
// for a path. Checked against the class cached at the last Commit to
// decide whether a reused chain's cached data is still valid.
type VehicleClassFunc func(path int) int

// riqEntry is one RIQ table cell: the four ExtendedIntervals spec.md
// §4.3 names for a window of the committed node sequence.
type riqEntry struct {
	CumulsToFst  interval.ExtendedInterval // tightest reachable cumul set at the window's first node
	CumulsToLst  interval.ExtendedInterval // tightest reachable cumul set at the window's last node
	TightestTsum interval.ExtendedInterval // intersection of every node's cumulative transit sum in the window
	TsumAtFst    interval.ExtendedInterval // cumulative transit sum (from path start) at the window's first node
	TsumAtLst    interval.ExtendedInterval // cumulative transit sum (from path start) at the window's last node
}

// combine merges two adjacent windows F (earlier) and L (later, with
// L starting exactly where F ends) along the same path into the
// window spanning both, per spec.md §4.3's recurrence. TsumAtFst and
// TsumAtLst are absolute (measured from the path start), which is what
// lets riqMerge fold a chain of disjoint dyadic blocks left to right
// with repeated calls to combine instead of needing a single two-entry
// lookup.
func combine(f, l riqEntry) riqEntry {
	deltaFst := l.TsumAtFst.Delta(f.TsumAtFst)
	cumulsToFst := f.CumulsToFst.Intersect(l.CumulsToFst.Delta(deltaFst))

	deltaLst := l.TsumAtLst.Delta(f.TsumAtLst)
	cumulsToLst := l.CumulsToLst.Intersect(f.CumulsToLst.Sum(deltaLst))

	tightest := f.TightestTsum.Intersect(l.TightestTsum)

	return riqEntry{
		CumulsToFst:  cumulsToFst,
		CumulsToLst:  cumulsToLst,
		TightestTsum: tightest,
		TsumAtFst:    f.TsumAtFst,
		TsumAtLst:    l.TsumAtLst,
	}
}

// highestPow2LE returns the largest l with 1<<l <= n, for n >= 1.
func highestPow2LE(n int) int {
	l := 0
	for (1 << uint(l+1)) <= n {
		l++
	}

	return l
}
