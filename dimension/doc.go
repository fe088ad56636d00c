// Package dimension implements DimensionChecker (spec.md §4.3): an
// incremental feasibility checker for one additive dimension (load,
// time, ...) over a pathstate.PathState, using a range-intersection
// query (RIQ) precomputation so that checking a long chain reused
// verbatim from the committed state costs O(log chain length) instead
// of O(chain length).
//
// The RIQ table is a set of layers over the committed node sequence's
// global index space (not reindexed per path): layer 0 holds one entry
// per committed position with that position's cumulative transit sum
// and node capacity; layer l summarizes a window of 2^l positions by
// combining two layer-(l-1) windows, following the binary-decomposition
// recurrence in spec.md §4.3. Indexing by the global committed position
// rather than by path-local rank is what lets a chain spliced from one
// vehicle's committed route into another vehicle's proposed route still
// hit the cached table: the table only cares which contiguous committed
// range a position came from, not which path currently claims it.
//
// Checker.Commit rebuilds the table from the path state's current
// committed ranges; it is always called immediately after a
// pathstate.PathState.Commit. Checker.Check evaluates every path
// pathstate.PathState.ChangedPaths reports, walking chain by chain and
// using the RIQ fast path when a chain is long enough
// (min_range_size_for_riq) and was reused from a committed range whose
// vehicle class still matches the destination path's class.
package dimension
