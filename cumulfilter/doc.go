// Package cumulfilter implements PathCumulFilter (spec.md §4.5): an
// incremental cost/feasibility filter over a cumulative dimension,
// combining hard node bounds, soft upper/lower/piecewise-linear cumul
// costs, per-vehicle span and slack costs, a global span cost, break
// slack lower bounds, pickup-to-delivery distance limits, node
// precedences, and an optional local LP-style span refinement.
//
// Throughout this package a "path" is identified by its start node id,
// matching the pathStart argument pathfilter.Acceptor.AcceptPath
// receives: every per-path Func type in types.go is invoked with that
// start id, not a 0..numPaths-1 index.
//
// Filter plugs into a pathfilter.Skeleton as its Acceptor. Unlike
// DimensionChecker's chain-window reuse, spec.md describes
// AcceptPath's signature as AcceptPath(path_start, _, _) — the chain
// bounds are not consulted here, because the cumul walk and its soft
// costs are not decomposable into an independently cacheable sub-range
// the way a pure interval-intersection feasibility check is. Filter
// instead walks each touched path in full, from its start to its end,
// which spec.md's own cost tier (priority 1, "path cumul with embedded
// optimizer") accounts for as the more expensive tier relative to
// DimensionChecker's priority 0.
package cumulfilter
