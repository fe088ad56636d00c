package filters

import "github.com/katalvlaran/pathguard/pathstate"

// IncompatibleFunc reports whether two node types may never share a path.
type IncompatibleFunc func(typeA, typeB int) bool

// PathNodesFunc is a caller-supplied temporal/requirement predicate over
// a path's full node sequence.
type PathNodesFunc func(path int, nodes []int) bool

// TypeRegulations rejects a path that mixes incompatible node types, or
// that fails a caller-supplied temporal or requirement predicate
// (spec.md §4.4's "type regulation" filters: incompatibility,
// temporal precedence by type, and required-type coverage).
type TypeRegulations struct {
	nodeType         map[int]int
	incompatible     IncompatibleFunc
	temporalCheck    PathNodesFunc
	requirementCheck PathNodesFunc
}

// NewTypeRegulations builds a checker. Any of incompatible,
// temporalCheck, requirementCheck may be nil to skip that rule.
func NewTypeRegulations(nodeType map[int]int, incompatible IncompatibleFunc, temporalCheck, requirementCheck PathNodesFunc) *TypeRegulations {
	return &TypeRegulations{
		nodeType: nodeType, incompatible: incompatible,
		temporalCheck: temporalCheck, requirementCheck: requirementCheck,
	}
}

// Check evaluates every path touched this round.
func (f *TypeRegulations) Check(ps *pathstate.PathState) bool {
	for _, p := range ps.ChangedPaths() {
		nodes := ps.Nodes(p)

		if f.incompatible != nil {
			seenTypes := make(map[int]bool)
			for _, n := range nodes {
				t, ok := f.nodeType[n]
				if !ok {
					continue
				}
				for other := range seenTypes {
					if f.incompatible(t, other) {
						return false
					}
				}
				seenTypes[t] = true
			}
		}

		if f.temporalCheck != nil && !f.temporalCheck(p, nodes) {
			return false
		}
		if f.requirementCheck != nil && !f.requirementCheck(p, nodes) {
			return false
		}
	}

	return true
}
