package manager

import "github.com/katalvlaran/pathguard/pathstate"

// Filter is the uniform contract FilterManager dispatches against. All
// registered filters are adapted to it (see adapter.go); objMin/objMax
// are threaded through even to filters that ignore them, since
// cumulfilter's Skeleton-backed filter needs both.
type Filter interface {
	Check(ps *pathstate.PathState, objMin, objMax int64) (ok bool, objectiveDelta int64)
	Commit(ps *pathstate.PathState)
}

// Relaxer is an optional capability: FilterManager.Relax calls it on
// every registered filter that implements it, best effort.
type Relaxer interface {
	Relax(ps *pathstate.PathState)
}

// Priority mirrors spec.md §6's filter-priority table: lower values are
// evaluated first.
type Priority int

const (
	PriorityChainCumulLight Priority = iota // 0: chain/path cumul, lightweight
	PriorityCumulEmbeddedOpt                // 1: path cumul with embedded optimizer
	PriorityCumulBoundsProp                 // 2: cumul-bounds propagator
	PriorityResourceAssign                  // 3: resource assignment
	PriorityGlobalLPCumul                   // 4: global LP cumul
)
