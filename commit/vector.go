package commit

// CommittableVector is a fixed-length array of T with revertible
// per-index edits and a "changed indices" set, used by filters to hold
// per-node or per-path scratch that must be undoable in O(|delta|) when
// a neighbor is rejected.
//
// Reads prefer the shadow value when the index has been written this
// round; otherwise they fall back to the committed value. Commit copies
// every shadow entry into the committed slice and clears the shadow;
// Revert just clears the shadow and the changed-index list, touching
// nothing proportional to the vector's length.
type CommittableVector[T any] struct {
	committed []T
	shadow    map[int]T
	changed   []int // insertion-ordered, each index once (Set appends only on first write)
}

// NewCommittableVector allocates a CommittableVector of length n, every
// slot initialized to the zero value of T.
func NewCommittableVector[T any](n int) *CommittableVector[T] {
	return &CommittableVector[T]{
		committed: make([]T, n),
		shadow:    make(map[int]T),
	}
}

// Len returns the vector's fixed length.
func (v *CommittableVector[T]) Len() int { return len(v.committed) }

// Get returns the effective value at i: the shadow value if Set(i, ...)
// was called since the last Commit/Revert, else the committed value.
func (v *CommittableVector[T]) Get(i int) T {
	if val, ok := v.shadow[i]; ok {
		return val
	}

	return v.committed[i]
}

// Set records a tentative write at index i. The write is only visible
// via Get until Commit (which makes it permanent) or Revert (which
// discards it).
func (v *CommittableVector[T]) Set(i int, val T) {
	if _, already := v.shadow[i]; !already {
		v.changed = append(v.changed, i)
	}
	v.shadow[i] = val
}

// ChangedIndices returns the indices written since the last Commit or
// Revert, in first-write order, each appearing once.
func (v *CommittableVector[T]) ChangedIndices() []int {
	return v.changed
}

// Commit flushes every shadow entry into the committed array and clears
// the shadow. Cost is O(|changed|), not O(Len()).
func (v *CommittableVector[T]) Commit() {
	for _, i := range v.changed {
		v.committed[i] = v.shadow[i]
	}
	v.resetShadow()
}

// Revert discards every shadow entry. Cost is O(|changed|).
func (v *CommittableVector[T]) Revert() {
	v.resetShadow()
}

func (v *CommittableVector[T]) resetShadow() {
	for k := range v.shadow {
		delete(v.shadow, k)
	}
	v.changed = v.changed[:0]
}
