package commit

import "github.com/bits-and-blooms/bitset"

// SparseBitset is a committable bit-set over [0, n): O(1) Set/Clear/Test
// and O(changed) enumeration of the indices touched since the last
// Commit/Revert, without ever walking the full [0, n) domain.
//
// Storage is dense github.com/bits-and-blooms/bitset.BitSets: base
// holds the committed bits, pending holds this round's tentative
// overlay, and touched marks the positions written this round. A bit's
// effective value is effective(i) = touched(i) ? pending.Test(i) : base.Test(i).
type SparseBitset struct {
	n          uint
	base       *bitset.BitSet
	pending    *bitset.BitSet // only meaningful where touched is set
	touched    *bitset.BitSet
	touchedIdx []uint // insertion order, for O(changed) enumeration
}

// NewSparseBitset allocates a SparseBitset over [0, n), all bits clear.
func NewSparseBitset(n uint) *SparseBitset {
	return &SparseBitset{
		n:       n,
		base:    bitset.New(n),
		pending: bitset.New(n),
		touched: bitset.New(n),
	}
}

// Len returns the bitset's domain size.
func (s *SparseBitset) Len() uint { return s.n }

// Test reports whether bit i is set in the effective (committed+pending) state.
func (s *SparseBitset) Test(i uint) bool {
	if s.touched.Test(i) {
		return s.pending.Test(i)
	}

	return s.base.Test(i)
}

// Set marks bit i, recording it as touched this round if it wasn't
// already touched.
func (s *SparseBitset) Set(i uint) {
	s.markTouched(i)
	s.pending.Set(i)
}

// Clear unmarks bit i, recording it as touched this round.
func (s *SparseBitset) Clear(i uint) {
	s.markTouched(i)
	s.pending.Clear(i)
}

func (s *SparseBitset) markTouched(i uint) {
	if !s.touched.Test(i) {
		s.touched.Set(i)
		s.touchedIdx = append(s.touchedIdx, i)
	}
}

// Changed returns the indices touched (Set or Clear) since the last
// Commit/Revert, in first-touch order, each appearing once.
func (s *SparseBitset) Changed() []uint {
	return s.touchedIdx
}

// Commit copies every touched bit from pending into base and clears the
// touched overlay. Cost is O(|changed|).
func (s *SparseBitset) Commit() {
	for _, i := range s.touchedIdx {
		if s.pending.Test(i) {
			s.base.Set(i)
		} else {
			s.base.Clear(i)
		}
	}
	s.resetTouched()
}

// Revert discards the pending overlay. Cost is O(|changed|).
func (s *SparseBitset) Revert() {
	s.resetTouched()
}

func (s *SparseBitset) resetTouched() {
	for _, i := range s.touchedIdx {
		s.pending.Clear(i)
		s.touched.Clear(i)
	}
	s.touchedIdx = s.touchedIdx[:0]
}

// EachSet calls fn for every index i in [0,n) whose effective bit is
// set, in ascending order. O(n) — intended for occasional enumeration
// (e.g. listing active vehicles after Commit), not a per-Accept hot path;
// the per-Accept hot path is Changed(), which is O(|changed|).
func (s *SparseBitset) EachSet(fn func(i uint)) {
	for i := uint(0); i < s.n; i++ {
		if s.Test(i) {
			fn(i)
		}
	}
}
