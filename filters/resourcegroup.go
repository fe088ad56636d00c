package filters

import (
	"context"
	"fmt"
	"sort"

	"github.com/katalvlaran/pathguard/flow"
	"github.com/katalvlaran/pathguard/pathstate"
)

// ResourceGroupFilter enforces a shared-resource capacity across a group
// of nodes (spec.md §4.4): every node requiring a named resource group
// consumes one unit of that group's capacity. Feasibility of a round's
// touched-path requests is decided by a one-shot bipartite max-flow
// (request -> group -> sink) over a Network sized to exactly this
// round's requests, keeping the check proportional to |delta|.
type ResourceGroupFilter struct {
	groupOf map[int]string // node -> resource group name
	groups  map[string]int // resource group name -> capacity
}

// NewResourceGroupFilter builds a checker from a node->group mapping and
// per-group capacities.
func NewResourceGroupFilter(groupOf map[int]string, groups map[string]int) *ResourceGroupFilter {
	return &ResourceGroupFilter{groupOf: groupOf, groups: groups}
}

// Check builds a fresh flow network over the nodes touched this round
// and accepts iff every request can be routed to its group within
// capacity.
func (f *ResourceGroupFilter) Check(ps *pathstate.PathState) bool {
	requests := collectRequests(f.groupOf, ps)
	if len(requests) == 0 {
		return true
	}

	net, source, sink, err := buildResourceNetwork(requests, f.groupOf, f.groups)
	if err != nil {
		return false
	}

	maxFlow, err := net.MaxFlow(context.Background(), source, sink)
	if err != nil {
		return false
	}

	return maxFlow == int64(len(requests))
}

// collectRequests returns the sorted set of touched-path nodes that
// require a resource group this round. Sorting keeps the Network's
// vertex numbering (and therefore MaxFlow's path exploration order)
// deterministic across calls with the same delta.
func collectRequests(groupOf map[int]string, ps *pathstate.PathState) []int {
	seen := make(map[int]bool)
	for _, p := range ps.ChangedPaths() {
		for _, n := range ps.Nodes(p) {
			if _, ok := groupOf[n]; ok {
				seen[n] = true
			}
		}
	}

	requests := make([]int, 0, len(seen))
	for n := range seen {
		requests = append(requests, n)
	}
	sort.Ints(requests)

	return requests
}

// buildResourceNetwork numbers source=0, sink=1, one vertex per distinct
// group name (sorted) and one vertex per request (in requests' order),
// then wires source->request->group->sink. Returns an error if any
// request names a group absent from groups (an unroutable request, not
// a network-construction fault).
func buildResourceNetwork(requests []int, groupOf map[int]string, groups map[string]int) (net *flow.Network, source, sink int, err error) {
	source, sink = 0, 1

	groupNames := make([]string, 0, len(groups))
	for name := range groups {
		groupNames = append(groupNames, name)
	}
	sort.Strings(groupNames)

	groupID := make(map[string]int, len(groupNames))
	next := 2
	for _, name := range groupNames {
		groupID[name] = next
		next++
	}

	requestID := make(map[int]int, len(requests))
	for _, r := range requests {
		requestID[r] = next
		next++
	}

	net = flow.NewNetwork(next)
	for _, r := range requests {
		grp := groupOf[r]
		id, ok := groupID[grp]
		if !ok {
			return nil, 0, 0, fmt.Errorf("filters: node %d requires unknown resource group %q", r, grp)
		}
		if err := net.AddEdge(source, requestID[r], 1); err != nil {
			return nil, 0, 0, err
		}
		if err := net.AddEdge(requestID[r], id, 1); err != nil {
			return nil, 0, 0, err
		}
	}
	for _, name := range groupNames {
		if err := net.AddEdge(groupID[name], sink, int64(groups[name])); err != nil {
			return nil, 0, 0, err
		}
	}

	return net, source, sink, nil
}
