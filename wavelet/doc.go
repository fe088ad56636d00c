// Package wavelet implements WeightedWaveletTree (spec.md §4.6): an
// append-only sequence of (height, weight) pairs supporting
// RangeSumWithThreshold(threshold, l, r) = Σ{weight[i] : l≤i<r,
// height[i]≥threshold} in O(log H) per query, H the distinct-height
// count.
//
// Each append batch builds its own subtree over the batch's own height
// range, rather than rebuilding one global tree from scratch;
// RangeSumWithThreshold fans a query out across every batch overlapping
// the requested range and sums their local answers. TreeLocation(i)
// names which batch an element belongs to and its offset within that
// batch's local sequence, so later queries touching only recent
// elements never have to re-walk older batches' structure.
package wavelet
