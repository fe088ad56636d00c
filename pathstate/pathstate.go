package pathstate

// PathState holds the committed node sequence for every vehicle path
// together with a round's pending edits. See doc.go for the node
// id-space and chain conventions.
type PathState struct {
	numRegular int
	numPaths   int
	numNodes   int

	starts []int
	ends   []int

	// committed state, valid between rounds.
	committedNodes []int   // grows on incremental commits, compacts on full commits
	committedIndex []int   // node -> position in committedNodes
	committedPath  []int   // node -> path id, or -1 for a loop
	committedChain []Chain // per path, its single contiguous committed range

	// pending state, valid from the first Change* call of a round until
	// the matching Commit or Revert.
	pendingChains   map[int][]Chain // path -> tentative chain list
	changedPaths    []int           // insertion order, each path appears once
	pendingNodePath map[int]int     // node -> tentative path id (-1 for loop)
	pendingLoops    []int           // insertion order, each node appears once
	pendingLoopSet  map[int]bool
	invalid         bool
}

// NewPathState builds a PathState for numRegular customer nodes and
// numPaths vehicles, each with its given start and end node id. Every
// path is initialized to the empty route [start, end]; every node not
// named as a start or end begins as a loop.
func NewPathState(numRegular, numPaths int, starts, ends []int) (*PathState, error) {
	if numRegular < 0 {
		return nil, ErrUnknownNode
	}
	if numPaths <= 0 {
		return nil, ErrUnknownPath
	}
	if len(starts) != numPaths || len(ends) != numPaths {
		return nil, ErrUnknownPath
	}

	numNodes := numRegular + 2*numPaths
	committedNodes := make([]int, 0, numNodes)
	committedIndex := make([]int, numNodes)
	committedPath := make([]int, numNodes)
	committedChain := make([]Chain, numPaths)
	placed := make([]bool, numNodes)

	for p := 0; p < numPaths; p++ {
		s, e := starts[p], ends[p]
		if s < 0 || s >= numNodes || e < 0 || e >= numNodes {
			return nil, ErrUnknownNode
		}

		begin := len(committedNodes)
		committedNodes = append(committedNodes, s, e)
		committedIndex[s] = begin
		committedIndex[e] = begin + 1
		committedPath[s] = p
		committedPath[e] = p
		committedChain[p] = Chain{Begin: begin, End: begin + 2}
		placed[s] = true
		placed[e] = true
	}

	for node := 0; node < numNodes; node++ {
		if !placed[node] {
			committedIndex[node] = len(committedNodes)
			committedPath[node] = -1
			committedNodes = append(committedNodes, node)
		}
	}

	return &PathState{
		numRegular:      numRegular,
		numPaths:        numPaths,
		numNodes:        numNodes,
		starts:          append([]int(nil), starts...),
		ends:            append([]int(nil), ends...),
		committedNodes:  committedNodes,
		committedIndex:  committedIndex,
		committedPath:   committedPath,
		committedChain:  committedChain,
		pendingChains:   make(map[int][]Chain),
		pendingNodePath: make(map[int]int),
		pendingLoopSet:  make(map[int]bool),
	}, nil
}

// NumRegular, NumPaths and NumNodes report the fixed sizes fixed at
// construction.
func (ps *PathState) NumRegular() int { return ps.numRegular }
func (ps *PathState) NumPaths() int   { return ps.numPaths }
func (ps *PathState) NumNodes() int   { return ps.numNodes }

// ChangePath proposes a new node sequence for path, expressed as chains
// referencing the current committed node sequence. The sequence must
// start at the path's start node and end at its end node. The change is
// tentative until Commit.
func (ps *PathState) ChangePath(path int, chains []Chain) error {
	if path < 0 || path >= ps.numPaths {
		return ErrUnknownPath
	}
	if len(chains) == 0 {
		return ErrInvalidChain
	}
	for _, c := range chains {
		if c.Begin < 0 || c.End <= c.Begin || c.End > len(ps.committedNodes) {
			return ErrInvalidChain
		}
	}

	first := ps.committedNodes[chains[0].Begin]
	last := ps.committedNodes[chains[len(chains)-1].End-1]
	if first != ps.starts[path] || last != ps.ends[path] {
		return ErrChainMismatch
	}

	if _, exists := ps.pendingChains[path]; !exists {
		ps.changedPaths = append(ps.changedPaths, path)
	}
	ps.pendingChains[path] = chains

	for _, c := range chains {
		for i := c.Begin; i < c.End; i++ {
			node := ps.committedNodes[i]
			ps.pendingNodePath[node] = path
			ps.unmarkLoop(node)
		}
	}

	return nil
}

// ChangeLoops marks nodes as becoming loops (unperformed) this round.
// The caller is expected to also call ChangePath for any path whose
// chain list no longer includes these nodes; PathState does not
// cross-validate path/loop consistency, neither during a round nor at
// Commit; a full Commit files every node not placed on a path as a loop.
func (ps *PathState) ChangeLoops(nodes []int) error {
	for _, node := range nodes {
		if node < 0 || node >= ps.numNodes {
			return ErrUnknownNode
		}
	}
	for _, node := range nodes {
		if !ps.pendingLoopSet[node] {
			ps.pendingLoopSet[node] = true
			ps.pendingLoops = append(ps.pendingLoops, node)
		}
		ps.pendingNodePath[node] = -1
	}

	return nil
}

func (ps *PathState) unmarkLoop(node int) {
	if !ps.pendingLoopSet[node] {
		return
	}
	delete(ps.pendingLoopSet, node)
	for i, n := range ps.pendingLoops {
		if n == node {
			ps.pendingLoops = append(ps.pendingLoops[:i], ps.pendingLoops[i+1:]...)
			break
		}
	}
}

// commitThreshold is the max(16, 4N) incremental/full commit cutoff
// (spec.md §4.2): below it, Commit appends changed paths to the tail of
// committedNodes; at or above it, Commit compacts the whole structure.
func commitThreshold(numRegular int) int {
	t := 4 * numRegular
	if t < 16 {
		t = 16
	}

	return t
}

// Commit folds the round's pending edits into the committed state.
func (ps *PathState) Commit() {
	if len(ps.committedNodes) < commitThreshold(ps.numRegular) {
		ps.commitIncremental()
	} else {
		ps.commitFull()
	}
	ps.resetPending()
}

func (ps *PathState) commitIncremental() {
	for _, p := range ps.changedPaths {
		begin := len(ps.committedNodes)
		for _, c := range ps.pendingChains[p] {
			for i := c.Begin; i < c.End; i++ {
				ps.committedNodes = append(ps.committedNodes, ps.committedNodes[i])
			}
		}
		end := len(ps.committedNodes)
		for i := begin; i < end; i++ {
			node := ps.committedNodes[i]
			ps.committedIndex[node] = i
			ps.committedPath[node] = p
		}
		ps.committedChain[p] = Chain{Begin: begin, End: end}
	}

	for _, node := range ps.pendingLoops {
		ps.committedPath[node] = -1
	}
}

func (ps *PathState) commitFull() {
	newNodes := make([]int, 0, ps.numNodes)
	newIndex := make([]int, ps.numNodes)
	newPath := make([]int, ps.numNodes)
	newChain := make([]Chain, ps.numPaths)
	placed := make([]bool, ps.numNodes)

	changed := make(map[int]bool, len(ps.changedPaths))
	for _, p := range ps.changedPaths {
		changed[p] = true
	}

	for p := 0; p < ps.numPaths; p++ {
		begin := len(newNodes)
		if changed[p] {
			for _, c := range ps.pendingChains[p] {
				for i := c.Begin; i < c.End; i++ {
					node := ps.committedNodes[i]
					newNodes = append(newNodes, node)
					placed[node] = true
				}
			}
		} else {
			old := ps.committedChain[p]
			for i := old.Begin; i < old.End; i++ {
				node := ps.committedNodes[i]
				newNodes = append(newNodes, node)
				placed[node] = true
			}
		}
		end := len(newNodes)
		for i := begin; i < end; i++ {
			newIndex[newNodes[i]] = i
			newPath[newNodes[i]] = p
		}
		newChain[p] = Chain{Begin: begin, End: end}
	}

	for node := 0; node < ps.numNodes; node++ {
		if placed[node] {
			continue
		}
		newIndex[node] = len(newNodes)
		newPath[node] = -1
		newNodes = append(newNodes, node)
	}

	ps.committedNodes = newNodes
	ps.committedIndex = newIndex
	ps.committedPath = newPath
	ps.committedChain = newChain
}

// Revert discards the round's pending edits without touching the
// committed state. Cost is proportional to the size of the delta.
func (ps *PathState) Revert() {
	ps.resetPending()
}

func (ps *PathState) resetPending() {
	ps.pendingChains = make(map[int][]Chain)
	ps.changedPaths = nil
	ps.pendingNodePath = make(map[int]int)
	ps.pendingLoops = nil
	ps.pendingLoopSet = make(map[int]bool)
	ps.invalid = false
}

// IsInvalid reports whether SetInvalid was called this round.
func (ps *PathState) IsInvalid() bool { return ps.invalid }

// SetInvalid marks the current round's state as unusable. The flag is
// only reported by IsInvalid; queries do not check it, and Commit or
// Revert clears it.
func (ps *PathState) SetInvalid() { ps.invalid = true }

// Chains returns path's current chain list: the pending list if path
// was changed this round, otherwise its single committed range.
func (ps *PathState) Chains(path int) []Chain {
	if c, ok := ps.pendingChains[path]; ok {
		out := make([]Chain, len(c))
		copy(out, c)
		return out
	}

	return []Chain{ps.committedChain[path]}
}

// Nodes returns path's current node sequence, start to end inclusive.
func (ps *PathState) Nodes(path int) []int {
	var out []int
	for _, c := range ps.Chains(path) {
		for i := c.Begin; i < c.End; i++ {
			out = append(out, ps.committedNodes[i])
		}
	}

	return out
}

// CommittedIndex returns node's position in the committed node
// sequence as of the last Commit.
func (ps *PathState) CommittedIndex(node int) int { return ps.committedIndex[node] }

// Path returns node's current path id, or -1 if node is a loop,
// reflecting this round's pending edits if any were made to it.
func (ps *PathState) Path(node int) int {
	if p, ok := ps.pendingNodePath[node]; ok {
		return p
	}

	return ps.committedPath[node]
}

// Start and End return a path's fixed start and end node ids.
func (ps *PathState) Start(path int) int { return ps.starts[path] }
func (ps *PathState) End(path int) int   { return ps.ends[path] }

// ChangedPaths returns the path ids touched by ChangePath this round,
// in call order.
func (ps *PathState) ChangedPaths() []int {
	out := make([]int, len(ps.changedPaths))
	copy(out, ps.changedPaths)
	return out
}

// ChangedLoops returns the node ids marked as loops by ChangeLoops this
// round, in call order.
func (ps *PathState) ChangedLoops() []int {
	out := make([]int, len(ps.pendingLoops))
	copy(out, ps.pendingLoops)
	return out
}
