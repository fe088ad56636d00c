// Package manager implements FilterManager, the priority-ordered glue
// that dispatches a round's Accept/Synchronize lifecycle across every
// registered filter (spec.md §2/§6; written out fully in SPEC_FULL.md
// §4.7, since spec.md references but never details this component).
//
// Every package in this module but cumulfilter reads its state from a
// *pathstate.PathState directly (ChangedPaths/Nodes/Path) and exposes a
// Commit(ps)/Check(ps) pair; cumulfilter.Filter instead drives
// pathfilter.Skeleton's Accept/Synchronize lifecycle over a next-pointer
// delta. FilterManager unifies both behind one Filter interface: a
// skeletonAdapter (see skeleton_adapter.go) mechanically reconstructs a
// next-pointer delta from a touched path's current node sequence and
// feeds it to the Skeleton, so callers of FilterManager only ever deal
// in *pathstate.PathState — the representation every other filter in
// this repository already uses.
package manager
