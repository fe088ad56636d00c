// Package pathfilter is the delta → touched-paths → chain-windows
// dispatcher shared by every path-based filter (spec.md §4.1).
//
// A concrete filter implements Acceptor — a small capability set with
// default no-op implementations via Base — and drives it through
// Skeleton.Accept/Synchronize. The skeleton itself never evaluates
// feasibility or cost; it only reconstructs, from a delta of
// (var, value) reassignments, which paths were touched and the
// minimal contiguous chain window on each that contains every touched
// arc, then calls back into the concrete filter once per touched path.
//
// Cost is always proportional to the size of the delta: the skeleton
// never walks an untouched path, and never inspects committed_nodes
// outside a touched path's own range.
package pathfilter
