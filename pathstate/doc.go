// Package pathstate holds the tentative local-search edit under
// evaluation: the committed node sequence for every vehicle path, plus
// loop (unperformed) nodes, and a pending overlay describing the
// delta a neighbor proposes.
//
// A node is an integer in [0, N+2V): NewPathState names each vehicle's
// start and end id, and every other id is a regular (customer) node.
// Every node, active or looped, has exactly one committed index at all
// times — a loop is simply a node whose committed path id is -1. An
// incremental Commit appends fresh copies of changed paths, so stale
// slots stay in the committed sequence until a full Commit compacts it.
//
// ChangePath and ChangeLoops describe a delta in terms of chains:
// half-open ranges into the already-committed node sequence. This is
// what keeps Accept-time bookkeeping proportional to the size of the
// delta rather than to path length or model size (spec.md §1, §4.2):
// a chain never copies node data, it only names a range that already
// exists.
//
// Commit folds the pending delta into the committed sequence; Revert
// discards it. Revert and an incremental Commit cost time proportional
// to the changed paths; a full Commit, taken once the committed
// sequence reaches max(16, 4N) entries, is linear in the node count.
package pathstate
