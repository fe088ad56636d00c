package pathfilter

// Skeleton reconstructs touched paths and chain windows from a delta
// and drives an Acceptor through the Accept/Synchronize lifecycle
// (spec.md §4.1).
type Skeleton struct {
	acceptor Acceptor
	values   NextValues

	numPaths int
	numNodes int
	starts   []int
	ends     []int

	ranks  []int // node -> rank on its committed path, -1 if unknown
	pathOf []int // node -> committed path id, -1 if loop/unknown

	// per-Accept scratch, reset at the top of every Accept call.
	newNexts       map[int]int
	touchedPaths   []int
	touchedSeen    map[int]bool
	touchedByPath  map[int][]int
	lns            bool
}

// NewSkeleton builds a Skeleton for numPaths vehicles with the given
// start/end node ids, driving acceptor and reading committed next
// values from values.
func NewSkeleton(acceptor Acceptor, values NextValues, starts, ends []int) *Skeleton {
	numPaths := len(starts)
	numNodes := 0
	for _, s := range starts {
		if s+1 > numNodes {
			numNodes = s + 1
		}
	}
	for _, e := range ends {
		if e+1 > numNodes {
			numNodes = e + 1
		}
	}

	ranks := make([]int, numNodes)
	pathOf := make([]int, numNodes)
	for i := range ranks {
		ranks[i] = -1
		pathOf[i] = -1
	}

	return &Skeleton{
		acceptor: acceptor,
		values:   values,
		numPaths: numPaths,
		numNodes: numNodes,
		starts:   append([]int(nil), starts...),
		ends:     append([]int(nil), ends...),
		ranks:    ranks,
		pathOf:   pathOf,
	}
}

// GrowNodeSpace extends the skeleton's node-indexed arrays to cover at
// least n nodes, for callers whose node space exceeds the highest
// start/end id passed to NewSkeleton (e.g. regular nodes with ids
// below every start/end).
func (sk *Skeleton) GrowNodeSpace(n int) {
	if n <= sk.numNodes {
		return
	}
	ranks := make([]int, n)
	pathOf := make([]int, n)
	copy(ranks, sk.ranks)
	copy(pathOf, sk.pathOf)
	for i := sk.numNodes; i < n; i++ {
		ranks[i] = -1
		pathOf[i] = -1
	}
	sk.ranks = ranks
	sk.pathOf = pathOf
	sk.numNodes = n
}

// IsLNS reports whether the most recent Accept call detected an
// unbound delta variable (large-neighborhood-search mode).
func (sk *Skeleton) IsLNS() bool { return sk.lns }

// GetNext returns the delta's proposed successor of i if the delta
// reassigns i, else falls back to the committed value.
func (sk *Skeleton) GetNext(i int) int {
	if v, ok := sk.newNexts[i]; ok {
		return v
	}

	return sk.values.Value(i)
}

// Rank returns node's rank on its committed path, as of the last
// Synchronize.
func (sk *Skeleton) Rank(node int) int { return sk.ranks[node] }

// PathOf returns node's committed path id, or -1 if it is a loop, as
// of the last Synchronize.
func (sk *Skeleton) PathOf(node int) int { return sk.pathOf[node] }

func (sk *Skeleton) resetAcceptScratch() {
	if sk.newNexts == nil {
		sk.newNexts = make(map[int]int)
		sk.touchedSeen = make(map[int]bool)
		sk.touchedByPath = make(map[int][]int)
	} else {
		for k := range sk.newNexts {
			delete(sk.newNexts, k)
		}
		for k := range sk.touchedSeen {
			delete(sk.touchedSeen, k)
		}
		for k := range sk.touchedByPath {
			delete(sk.touchedByPath, k)
		}
	}
	sk.touchedPaths = sk.touchedPaths[:0]
	sk.lns = false
}

func (sk *Skeleton) touch(node int) {
	if node < 0 || node >= len(sk.pathOf) {
		return
	}
	p := sk.pathOf[node]
	if p < 0 {
		return
	}
	if !sk.touchedSeen[p] {
		sk.touchedSeen[p] = true
		sk.touchedPaths = append(sk.touchedPaths, p)
	}
	sk.touchedByPath[p] = append(sk.touchedByPath[p], node)
}

// Accept runs the full skeleton lifecycle (spec.md §4.1 steps 1-6) and
// reports whether the neighbor is acceptable.
func (sk *Skeleton) Accept(delta []DeltaEntry, objMin, objMax int64) bool {
	sk.resetAcceptScratch()

	for _, e := range delta {
		if !e.Bound {
			sk.lns = true
			return true
		}
		sk.newNexts[e.Var] = e.Value
		sk.touch(e.Var)
		sk.touch(e.Value)
	}

	if !sk.acceptor.InitializeAcceptPath() {
		return false
	}

	for _, p := range sk.touchedPaths {
		chainStart, chainEnd := sk.chainWindow(p)
		if !sk.acceptor.AcceptPath(sk.starts[p], chainStart, chainEnd) {
			return false
		}
	}

	return sk.acceptor.FinalizeAcceptPath(objMin, objMax)
}

// chainWindow computes the (chain_start, chain_end) bound for path p:
// the touched node with minimum rank (or the path start if touched),
// and the touched node with maximum rank (or the path end if touched).
func (sk *Skeleton) chainWindow(p int) (int, int) {
	nodes := sk.touchedByPath[p]
	start, end := sk.starts[p], sk.ends[p]

	chainStart, chainEnd := -1, -1
	minRank, maxRank := int(^uint(0)>>1), -1
	sawStart, sawEnd := false, false

	for _, n := range nodes {
		if n == start {
			sawStart = true
		}
		if n == end {
			sawEnd = true
		}
		r := sk.ranks[n]
		if r < minRank {
			minRank = r
			chainStart = n
		}
		if r > maxRank {
			maxRank = r
			chainEnd = n
		}
	}

	if sawStart {
		chainStart = start
	}
	if sawEnd {
		chainEnd = end
	}

	return chainStart, chainEnd
}

// Synchronize rebuilds ranks and per-path membership. full=true (or no
// Accept having touched any path yet) forces a full rebuild of every
// path; otherwise only paths touched by the most recent Accept are
// rewalked (spec.md §4.1's incremental-synchronize rule).
func (sk *Skeleton) Synchronize(full bool) {
	sk.acceptor.OnBeforeSynchronizePaths()

	if full || sk.touchedPaths == nil {
		for p := 0; p < sk.numPaths; p++ {
			sk.walkPath(p)
			sk.acceptor.OnSynchronizePathFromStart(sk.starts[p])
		}
	} else {
		for _, p := range sk.touchedPaths {
			sk.walkPath(p)
			sk.acceptor.OnSynchronizePathFromStart(sk.starts[p])
		}
	}

	sk.acceptor.OnAfterSynchronizePaths()
}

// walkPath assigns ranks 0,1,2,... to every node on path p by
// following committed next values from its start to its end.
func (sk *Skeleton) walkPath(p int) {
	start, end := sk.starts[p], sk.ends[p]
	node := start
	rank := 0
	for step := 0; step <= sk.numNodes; step++ {
		sk.ranks[node] = rank
		sk.pathOf[node] = p
		if node == end {
			return
		}
		node = sk.values.Value(node)
		rank++
	}
	panic("pathfilter: path walk did not terminate at its end node; committed assignment is inconsistent")
}
