package commit_test

import (
	"testing"

	"github.com/katalvlaran/pathguard/commit"
)

func TestSparseBitset_SetTest(t *testing.T) {
	s := commit.NewSparseBitset(10)
	if s.Test(3) {
		t.Fatalf("bit 3 should start clear")
	}
	s.Set(3)
	if !s.Test(3) {
		t.Fatalf("bit 3 should be set")
	}
}

func TestSparseBitset_RevertUndoesPending(t *testing.T) {
	s := commit.NewSparseBitset(10)
	s.Set(1)
	s.Commit()
	s.Set(2)
	s.Clear(1)
	s.Revert()
	if !s.Test(1) {
		t.Fatalf("bit 1 should remain set after revert (was committed)")
	}
	if s.Test(2) {
		t.Fatalf("bit 2 should be clear after revert (never committed)")
	}
	if len(s.Changed()) != 0 {
		t.Fatalf("Changed() after revert = %v, want empty", s.Changed())
	}
}

func TestSparseBitset_CommitPersists(t *testing.T) {
	s := commit.NewSparseBitset(10)
	s.Set(5)
	s.Commit()
	s.Revert() // no-op: nothing pending
	if !s.Test(5) {
		t.Fatalf("bit 5 should remain set after commit+no-op revert")
	}
}

func TestSparseBitset_ChangedDedup(t *testing.T) {
	s := commit.NewSparseBitset(10)
	s.Set(4)
	s.Set(4)
	s.Clear(4)
	if len(s.Changed()) != 1 {
		t.Fatalf("Changed() = %v, want exactly one touched index", s.Changed())
	}
}

func TestSparseBitset_EachSet(t *testing.T) {
	s := commit.NewSparseBitset(8)
	s.Set(0)
	s.Set(3)
	s.Set(7)
	s.Commit()
	var got []uint
	s.EachSet(func(i uint) { got = append(got, i) })
	want := []uint{0, 3, 7}
	if len(got) != len(want) {
		t.Fatalf("EachSet = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("EachSet = %v, want %v", got, want)
		}
	}
}
