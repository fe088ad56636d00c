package dimension_test

import (
	"testing"

	"github.com/katalvlaran/pathguard/dimension"
	"github.com/katalvlaran/pathguard/interval"
	"github.com/katalvlaran/pathguard/pathstate"
)

// arcs keys an arc's transit interval by (u, v), ignoring vehicle
// class (every test here uses a single class).
type arcs map[[2]int]interval.ExtendedInterval

func (a arcs) transit(u, v, _ int) interval.ExtendedInterval {
	if iv, ok := a[[2]int{u, v}]; ok {
		return iv
	}
	return interval.Full()
}

type caps map[int]interval.ExtendedInterval

func (c caps) nodeCap(n int) interval.ExtendedInterval {
	if iv, ok := c[n]; ok {
		return iv
	}
	return interval.Full()
}

func constClass(int) int { return 0 }

// buildS3 constructs the scenario S3 path state: regular nodes
// {0:a, 1:b, 2:c}, vehicle start=3, end=4, committed route S,a,b,E.
// It returns the path state, checker, and the arc/cap tables used.
func buildS3(t *testing.T) (*pathstate.PathState, *dimension.Checker, arcs, caps) {
	t.Helper()
	ps, err := pathstate.NewPathState(3, 1, []int{3}, []int{4})
	if err != nil {
		t.Fatalf("NewPathState: %v", err)
	}

	// round 1: commit route S, a, b, E.
	if err := ps.ChangePath(0, []pathstate.Chain{
		{Begin: 0, End: 1}, // S
		{Begin: 2, End: 3}, // a
		{Begin: 3, End: 4}, // b
		{Begin: 1, End: 2}, // E
	}); err != nil {
		t.Fatalf("ChangePath round 1: %v", err)
	}
	ps.Commit()

	transits := arcs{
		{3, 0}: interval.Closed(10, 15), // S -> a
		{0, 1}: interval.Closed(20, 25), // a -> b
		{1, 4}: interval.Closed(20, 25), // b -> E
		{0, 2}: interval.Closed(200, 200), // a -> c (the neighbor's new arc)
		{2, 1}: interval.Closed(20, 25),   // c -> b
	}
	nodeCaps := caps{
		3: interval.Point(0),       // S
		0: interval.Closed(0, 30),  // a
		1: interval.Closed(0, 50),  // b
		4: interval.Closed(0, 1_000_000), // E
		2: interval.Closed(0, 1_000_000), // c
	}
	pathCap := func(int) interval.ExtendedInterval { return interval.Closed(0, 100_000) }

	checker := dimension.NewChecker(transits.transit, nodeCaps.nodeCap, pathCap, constClass, 2)
	checker.Commit(ps)

	return ps, checker, transits, nodeCaps
}

func TestChecker_S3_AcceptsCommittedRoute(t *testing.T) {
	ps, checker, _, _ := buildS3(t)

	// A no-op "change" that reuses the whole route as one chain long
	// enough to hit the RIQ fast path.
	sIdx := ps.CommittedIndex(3)
	eIdx := ps.CommittedIndex(4)
	if err := ps.ChangePath(0, []pathstate.Chain{{Begin: sIdx, End: eIdx + 1}}); err != nil {
		t.Fatalf("ChangePath: %v", err)
	}

	if !checker.Check(ps) {
		t.Fatalf("Check() = false, want true for the unmodified committed route")
	}
}

// TestChecker_S3_RejectsOverCapacityInsertion is scenario S3: inserting
// c between a and b with a transit of 200 drives the cumul at b to
// 230..240, outside cap(b) = [0,50].
func TestChecker_S3_RejectsOverCapacityInsertion(t *testing.T) {
	ps, checker, _, _ := buildS3(t)

	sIdx := ps.CommittedIndex(3)
	aIdx := ps.CommittedIndex(0)
	bIdx := ps.CommittedIndex(1)
	eIdx := ps.CommittedIndex(4)
	cIdx := ps.CommittedIndex(2)

	if err := ps.ChangePath(0, []pathstate.Chain{
		{Begin: sIdx, End: sIdx + 1},
		{Begin: aIdx, End: aIdx + 1},
		{Begin: cIdx, End: cIdx + 1},
		{Begin: bIdx, End: bIdx + 1},
		{Begin: eIdx, End: eIdx + 1},
	}); err != nil {
		t.Fatalf("ChangePath: %v", err)
	}

	if got := ps.Nodes(0); len(got) != 5 || got[2] != 2 {
		t.Fatalf("Nodes(0) = %v, want [.,.,2,.,.] (c inserted third)", got)
	}

	if checker.Check(ps) {
		t.Fatalf("Check() = true, want false (cumul at b exceeds cap)")
	}
}

// naiveCheck is the O(total length) oracle for property 6: it ignores
// the RIQ table entirely and walks every changed path node by node.
func naiveCheck(ps *pathstate.PathState, tr arcs, nc caps, pathCap func(int) interval.ExtendedInterval) bool {
	for _, p := range ps.ChangedPaths() {
		nodes := ps.Nodes(p)
		pc := pathCap(p)
		reachable := nc.nodeCap(nodes[0]).Intersect(pc)
		for i := 1; i < len(nodes); i++ {
			t := tr.transit(nodes[i-1], nodes[i], 0)
			reachable = reachable.Sum(t).Intersect(nc.nodeCap(nodes[i])).Intersect(pc)
			if reachable.IsEmpty() {
				return false
			}
		}
	}
	return true
}

func TestChecker_EquivalenceWithNaiveOracle(t *testing.T) {
	pathCap := func(int) interval.ExtendedInterval { return interval.Closed(0, 100_000) }

	for _, insertC := range []bool{false, true} {
		ps, checker, transits, nodeCaps := buildS3(t)

		sIdx := ps.CommittedIndex(3)
		aIdx := ps.CommittedIndex(0)
		bIdx := ps.CommittedIndex(1)
		eIdx := ps.CommittedIndex(4)

		var chains []pathstate.Chain
		if insertC {
			cIdx := ps.CommittedIndex(2)
			chains = []pathstate.Chain{
				{Begin: sIdx, End: sIdx + 1},
				{Begin: aIdx, End: aIdx + 1},
				{Begin: cIdx, End: cIdx + 1},
				{Begin: bIdx, End: bIdx + 1},
				{Begin: eIdx, End: eIdx + 1},
			}
		} else {
			chains = []pathstate.Chain{{Begin: sIdx, End: eIdx + 1}}
		}

		if err := ps.ChangePath(0, chains); err != nil {
			t.Fatalf("ChangePath (insertC=%v): %v", insertC, err)
		}

		got := checker.Check(ps)
		want := naiveCheck(ps, transits, nodeCaps, pathCap)
		if got != want {
			t.Fatalf("insertC=%v: Check()=%v, naiveCheck()=%v", insertC, got, want)
		}
	}
}
