package wavelet

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRangeSumWithThreshold_S5 exercises spec.md's literal scenario: a
// single batch [(h=5,w=1),(h=2,w=2),(h=7,w=3),(h=5,w=4)].
func TestRangeSumWithThreshold_S5(t *testing.T) {
	var tree Tree
	begin, end := tree.MakeTreeFromNewElements(
		[]int64{5, 2, 7, 5},
		[]int64{1, 2, 3, 4},
	)
	require.Equal(t, 0, begin)
	require.Equal(t, 4, end)

	assert.Equal(t, int64(8), tree.RangeSumWithThreshold(5, 0, 4)) // 1+3+4
	assert.Equal(t, int64(3), tree.RangeSumWithThreshold(6, 0, 4)) // just h=7
	assert.Equal(t, int64(0), tree.RangeSumWithThreshold(8, 0, 4))
}

// TestRangeSumWithThreshold_AcrossBatches checks that a query spanning
// two append batches sums contributions from each correctly.
func TestRangeSumWithThreshold_AcrossBatches(t *testing.T) {
	var tree Tree
	tree.MakeTreeFromNewElements([]int64{1, 9}, []int64{10, 20})
	tree.MakeTreeFromNewElements([]int64{9, 1}, []int64{30, 40})

	assert.Equal(t, int64(50), tree.RangeSumWithThreshold(9, 0, 4)) // positions 1 and 2
	assert.Equal(t, int64(100), tree.RangeSumWithThreshold(0, 0, 4))
	assert.Equal(t, int64(20), tree.RangeSumWithThreshold(9, 1, 2))
}

// TestRangeSumWithThreshold_SubRange restricts the query to a strict
// sub-range within one batch.
func TestRangeSumWithThreshold_SubRange(t *testing.T) {
	var tree Tree
	tree.MakeTreeFromNewElements(
		[]int64{3, 1, 4, 1, 5, 9, 2, 6},
		[]int64{1, 1, 1, 1, 1, 1, 1, 1},
	)
	assert.Equal(t, int64(2), tree.RangeSumWithThreshold(4, 2, 5)) // h=4 at idx2, h=1 idx3, h=5 idx4
	assert.Equal(t, int64(0), tree.RangeSumWithThreshold(100, 0, 8))
	assert.Equal(t, int64(8), tree.RangeSumWithThreshold(1, 0, 8))
}

// TestTreeLocation_NamesBatchAndOffset verifies TreeLocation resolves
// global positions across multiple batches.
func TestTreeLocation_NamesBatchAndOffset(t *testing.T) {
	var tree Tree
	tree.MakeTreeFromNewElements([]int64{1, 2, 3}, []int64{1, 1, 1})
	tree.MakeTreeFromNewElements([]int64{4, 5}, []int64{1, 1})

	b, off := tree.TreeLocation(0)
	assert.Equal(t, 0, b)
	assert.Equal(t, 0, off)

	b, off = tree.TreeLocation(2)
	assert.Equal(t, 0, b)
	assert.Equal(t, 2, off)

	b, off = tree.TreeLocation(3)
	assert.Equal(t, 1, b)
	assert.Equal(t, 0, off)

	b, off = tree.TreeLocation(4)
	assert.Equal(t, 1, b)
	assert.Equal(t, 1, off)
}

// TestRangeSumWithThreshold_MatchesNaiveOracle is property 7: for
// random (threshold, l, r), the tree's answer must equal the brute
// force sum over the same elements.
func TestRangeSumWithThreshold_MatchesNaiveOracle(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	var tree Tree
	var heights, weights []int64
	for batch := 0; batch < 5; batch++ {
		n := 1 + rng.Intn(6)
		bh := make([]int64, n)
		bw := make([]int64, n)
		for i := 0; i < n; i++ {
			bh[i] = int64(rng.Intn(20))
			bw[i] = int64(rng.Intn(10))
		}
		tree.MakeTreeFromNewElements(bh, bw)
		heights = append(heights, bh...)
		weights = append(weights, bw...)
	}

	naive := func(threshold int64, l, r int) int64 {
		var sum int64
		for i := l; i < r; i++ {
			if heights[i] >= threshold {
				sum += weights[i]
			}
		}
		return sum
	}

	n := len(heights)
	for trial := 0; trial < 200; trial++ {
		l := rng.Intn(n)
		r := l + rng.Intn(n-l+1)
		threshold := int64(rng.Intn(22))

		require.Equal(t, naive(threshold, l, r), tree.RangeSumWithThreshold(threshold, l, r),
			"threshold=%d l=%d r=%d", threshold, l, r)
	}
}
