// Package scenario builds synthetic path-filter fixtures for tests:
// vehicle topologies and arc tables, wired into a
// *pathstate.PathState after validating each vehicle's start can reach
// its end over a small from-node adjacency index built just for that
// check. Not part of the filter API (spec.md §5 treats driver code as
// an external collaborator); used by this module's own tests and by
// cmd/pathfilterdemo.
package scenario
