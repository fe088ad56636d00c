package manager

import (
	"github.com/katalvlaran/pathguard/cumulfilter"
	"github.com/katalvlaran/pathguard/pathfilter"
	"github.com/katalvlaran/pathguard/pathstate"
)

// skeletonAdapter drives a pathfilter.Skeleton-backed filter
// (cumulfilter.Filter is currently the only one) from a
// *pathstate.PathState, by reconstructing the next-pointer delta
// Skeleton.Accept expects from each touched path's current node
// sequence. This is a lossless, mechanical translation: the pairs
// (nodes[i], nodes[i+1]) ARE the next-pointer assignment the sequence
// represents.
type skeletonAdapter struct {
	sk     *pathfilter.Skeleton
	filter *cumulfilter.Filter
}

// NewCumulAdapter binds filter to sk and returns a Filter usable with
// FilterManager.Register.
func NewCumulAdapter(sk *pathfilter.Skeleton, filter *cumulfilter.Filter) Filter {
	filter.Bind(sk)

	return &skeletonAdapter{sk: sk, filter: filter}
}

func deltaFromPathState(ps *pathstate.PathState) []pathfilter.DeltaEntry {
	var delta []pathfilter.DeltaEntry
	for _, p := range ps.ChangedPaths() {
		nodes := ps.Nodes(p)
		for i := 0; i+1 < len(nodes); i++ {
			delta = append(delta, pathfilter.DeltaEntry{Var: nodes[i], Value: nodes[i+1], Bound: true})
		}
	}

	return delta
}

func (a *skeletonAdapter) Check(ps *pathstate.PathState, objMin, objMax int64) (bool, int64) {
	ok := a.sk.Accept(deltaFromPathState(ps), objMin, objMax)

	return ok, a.filter.GetAcceptedObjectiveValue()
}

func (a *skeletonAdapter) Commit(*pathstate.PathState) {
	a.sk.Synchronize(false)
}
