// Package energy implements PathEnergyCostChecker (spec.md §4.6): a
// two-piece linear cost over a signed, path-accumulated "force" value
// and a per-arc distance,
//
//	cost = cost_below * ∫ min(threshold, force) d(dist)
//	     + cost_above * ∫ max(0, force - threshold) d(dist)
//
// Per path this is computed via two wavelet.Tree instances keyed by the
// running force at each arc (one weighted by force*distance, one by
// distance alone), plus a sparse range-minimum table over the running
// force that answers RangeMin queries. The mandatory force offset that
// keeps the physical force non-negative and meets the end-of-path
// minimum is derived from a running minimum taken while the path is
// walked, not from that table.
package energy
