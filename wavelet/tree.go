package wavelet

import "sort"

// element is one (height, weight) pair at a batch-local position.
type element struct {
	height, weight int64
}

// node is one value-range node of a batch's wavelet subtree: it covers
// heights in [lo, hi] and the subsequence of its parent's elements
// whose height falls in that range, in original relative order.
type node struct {
	lo, hi    int64
	prefixSum []int64 // len = count+1, cumulative weight
	leftCount []int    // len = count+1, cumulative "went to left child" count; nil at a leaf
	left, right *node
}

// buildNode recursively splits elems by the median of their height
// range until every leaf holds a single height value.
func buildNode(elems []element) *node {
	lo, hi := elems[0].height, elems[0].height
	for _, e := range elems[1:] {
		if e.height < lo {
			lo = e.height
		}
		if e.height > hi {
			hi = e.height
		}
	}

	n := &node{lo: lo, hi: hi, prefixSum: make([]int64, len(elems)+1)}
	for i, e := range elems {
		n.prefixSum[i+1] = n.prefixSum[i] + e.weight
	}
	if lo == hi {
		return n
	}

	mid := lo + (hi-lo)/2
	n.leftCount = make([]int, len(elems)+1)
	var leftElems, rightElems []element
	cnt := 0
	for i, e := range elems {
		n.leftCount[i] = cnt
		if e.height <= mid {
			leftElems = append(leftElems, e)
			cnt++
		} else {
			rightElems = append(rightElems, e)
		}
	}
	n.leftCount[len(elems)] = cnt

	n.left = buildNode(leftElems)
	n.right = buildNode(rightElems)

	return n
}

// query returns the sum of weights in local range [l, r) whose height
// is >= threshold. At most one child is ever recursively split per
// level (the other terminates immediately via the lo>=t or hi<t
// short-circuit), giving O(log(height range)) per call.
func (n *node) query(threshold int64, l, r int) int64 {
	if l >= r {
		return 0
	}
	if n.hi < threshold {
		return 0
	}
	if n.lo >= threshold {
		return n.prefixSum[r] - n.prefixSum[l]
	}

	ll, lr := n.leftCount[l], n.leftCount[r]
	rl, rr := l-ll, r-lr

	return n.left.query(threshold, ll, lr) + n.right.query(threshold, rl, rr)
}

type batch struct {
	begin, end int
	root       *node
}

// Tree is an append-only weighted wavelet tree (spec.md §4.6): each
// MakeTreeFromNewElements call builds one batch's own subtree; queries
// fan out across every batch overlapping the requested range.
type Tree struct {
	batches []batch
	total   int
}

// MakeTreeFromNewElements appends a batch of (height, weight) pairs
// and returns its global index range [begin, end).
func (t *Tree) MakeTreeFromNewElements(heights, weights []int64) (begin, end int) {
	n := len(heights)
	if n == 0 {
		return t.total, t.total
	}

	elems := make([]element, n)
	for i := range elems {
		elems[i] = element{height: heights[i], weight: weights[i]}
	}

	begin = t.total
	end = begin + n
	t.batches = append(t.batches, batch{begin: begin, end: end, root: buildNode(elems)})
	t.total = end

	return begin, end
}

// Len returns the total number of elements ever appended.
func (t *Tree) Len() int { return t.total }

// RangeSumWithThreshold returns Σ{weight[i] : l<=i<r, height[i]>=threshold}.
func (t *Tree) RangeSumWithThreshold(threshold int64, l, r int) int64 {
	var sum int64
	for _, b := range t.batches {
		lo, hi := l, r
		if lo < b.begin {
			lo = b.begin
		}
		if hi > b.end {
			hi = b.end
		}
		if lo >= hi {
			continue
		}
		sum += b.root.query(threshold, lo-b.begin, hi-b.begin)
	}

	return sum
}

// TreeLocation returns the batch index and in-batch offset of global
// position i, as of the last MakeTreeFromNewElements call that covered it.
func (t *Tree) TreeLocation(i int) (batchIdx, offset int) {
	idx := sort.Search(len(t.batches), func(k int) bool { return t.batches[k].end > i })
	return idx, i - t.batches[idx].begin
}
