// Package flow implements Dinic's maximum-flow algorithm over a small,
// purpose-built integer-indexed Network.
//
// Within pathguard this is the feasibility engine behind
// filters.ResourceGroupFilter: a resource group (a capacity-limited pool
// of interchangeable resource units — chilled-container slots, driver
// certifications, dock doors, …) is modeled as a bipartite network
// request -> resource group -> sink, built only from the touched-path
// requests in the current delta, and MaxFlow answers whether a feasible
// assignment saturating every mandatory request exists. Keeping the
// network scoped to the delta (rather than the whole model) is what
// keeps the check proportional to |delta| as required by the filter
// contract (spec.md §1).
//
//   - Method: level graph construction (BFS) + blocking flow via
//     current-arc DFS.
//   - Time:   O(E * sqrt(V)) on unit-capacity networks, O(V^2*E) in
//     general; ResourceGroupFilter's group->sink arcs carry the
//     group capacity.
//   - Memory: O(V + E) for the adjacency slices, level array, and
//     current-arc index.
//
// Network intentionally has no notion of vertex names, metadata, or
// undirected/multi-edge configuration — callers assign their own dense
// integer ids (ResourceGroupFilter numbers source, sink, one id per
// touched request, and one id per distinct resource group) and call
// AddEdge/MaxFlow directly. There is nothing here for a general-purpose
// graph consumer to reuse, which is deliberate: the only production
// caller is a single bipartite feasibility check.
package flow
