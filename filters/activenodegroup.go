package filters

import "github.com/katalvlaran/pathguard/pathstate"

// ActiveNodeGroup requires a fixed set of nodes to be all-active or
// all-inactive (spec.md §4.4). ps.Path resolves every member's
// pending-or-committed status in O(1), so this filter always resolves
// the group exactly rather than tracking a separate "unknown" bucket
// for touched-but-unresolved members — a simplification of spec's
// (active, unknown) counters down to a precise active count, valid
// because PathState never leaves a member's status ambiguous.
type ActiveNodeGroup struct {
	members []int
}

// NewActiveNodeGroup builds a group over the given node ids.
func NewActiveNodeGroup(members []int) *ActiveNodeGroup {
	return &ActiveNodeGroup{members: append([]int(nil), members...)}
}

// Check reports whether every member shares the same active status.
func (g *ActiveNodeGroup) Check(ps *pathstate.PathState) bool {
	active := 0
	for _, n := range g.members {
		if ps.Path(n) != -1 {
			active++
		}
	}

	return active == 0 || active == len(g.members)
}
