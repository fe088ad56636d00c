package pathfilter

// DeltaEntry is one (var, value) reassignment proposed by the search
// engine: next[Var] = Value. Bound is false when the solver has left
// Var's value unassigned in this neighbor, which the skeleton treats
// as large-neighborhood-search mode (spec.md §4.1 step 2).
type DeltaEntry struct {
	Var   int
	Value int
	Bound bool
}

// NextValues is the read-only committed assignment the skeleton falls
// back to for any variable the current delta does not touch.
type NextValues interface {
	Value(i int) int
}

// Acceptor is the capability set a concrete path filter implements.
// Embed Base to get no-op defaults for whichever of these a filter
// does not need to override (spec.md §9: "no inheritance depth beyond
// 1 is needed").
type Acceptor interface {
	// OnSynchronizePathFromStart is called once per path during
	// Synchronize, after that path's ranks have been rebuilt.
	OnSynchronizePathFromStart(start int)
	// OnBeforeSynchronizePaths and OnAfterSynchronizePaths bracket a
	// whole Synchronize call.
	OnBeforeSynchronizePaths()
	OnAfterSynchronizePaths()
	// InitializeAcceptPath resets per-delta scratch before any
	// AcceptPath call. Returning false rejects the neighbor outright.
	InitializeAcceptPath() bool
	// AcceptPath is called exactly once per touched path, after the
	// chain window (chainStart, chainEnd) for that path has been
	// computed. Returning false rejects the neighbor.
	AcceptPath(pathStart, chainStart, chainEnd int) bool
	// FinalizeAcceptPath is called once, after every touched path has
	// been accepted, and decides overall acceptance against the
	// objective bounds.
	FinalizeAcceptPath(objMin, objMax int64) bool
}

// Base supplies no-op defaults for every Acceptor method.
type Base struct{}

func (Base) OnSynchronizePathFromStart(start int)                  {}
func (Base) OnBeforeSynchronizePaths()                             {}
func (Base) OnAfterSynchronizePaths()                              {}
func (Base) InitializeAcceptPath() bool                            { return true }
func (Base) AcceptPath(pathStart, chainStart, chainEnd int) bool   { return true }
func (Base) FinalizeAcceptPath(objMin, objMax int64) bool          { return true }
