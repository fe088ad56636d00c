// Package pathguard is a catalog of incremental local-search filters for
// a vehicle-routing solver.
//
// A local-search engine proposes a delta — a small set of reassignments
// of per-node successor variables — and a filter decides, in time
// proportional to the size of the delta (never the route length, never
// the model size), whether the candidate neighbor is feasible and, when
// applicable, bounds its objective.
//
// Subpackages, leaves first:
//
//	saturate/    — overflow-safe int64 arithmetic, clamped to saturation sentinels
//	interval/    — ExtendedInterval: [min,max] augmented with ±∞ transit counts
//	commit/      — CommittableVector[T] and SparseBitset: revertible per-delta state
//	pathstate/   — chain-based committable representation of every vehicle's path
//	pathfilter/  — the delta → touched-paths → chain-window dispatch skeleton
//	dimension/   — incremental feasibility for one additive dimension via RIQ
//	wavelet/     — append-only weighted wavelet tree with threshold range sum
//	energy/      — threshold energy/force cost checker built on wavelet
//	cumulfilter/ — the incremental cumulative-dimension cost/feasibility filter
//	filters/     — disjunction, active-group, vehicle-var, pickup/delivery, …
//	manager/     — priority ordering and event dispatch across registered filters
//	scenario/    — test-fixture construction (not part of the filter API)
//
// The routing model, the solver's assignment/variable substrate, and any
// LP/MIP dimension optimizers are external collaborators: pathguard never
// mutates them and never solves the routing problem itself. See
// SPEC_FULL.md and DESIGN.md for the full write-up and grounding ledger.
package pathguard
