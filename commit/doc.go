// Package commit provides two revertible-state primitives for per-delta
// scratch (no other package in this module imports them):
// CommittableVector[T], a shadowed array with O(changed) revert/commit,
// and SparseBitset, a committable bit-set with O(1) set/test and
// O(changed) enumeration over dense github.com/bits-and-blooms/bitset
// storage.
//
// Both types follow the same discipline (spec.md §5): writes during
// Accept go into a shadow/pending layer and are recorded in a small
// "changed" set; Commit flushes the shadow into the base layer; Revert
// just clears the shadow and the changed set. An abandoned neighbor
// therefore costs O(|delta|) to undo, never O(size of the structure).
package commit
