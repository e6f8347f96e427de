// Package segtree provides a fixed-size range-sum tree.
//
// A Tree is built once from a sequence of integers and answers the sum
// of any contiguous range of that sequence, while still allowing single
// elements to be replaced. Both operations run in O(log n) time.
//
// Nodes live in a single arena laid out like a binary heap: the root is
// at index 0 and the children of node i are at 2i+1 and 2i+2. The arena
// is padded up to the next power of two leaves, and a lookup table maps
// every sequence position to the arena index of its leaf so updates do
// not have to search for it.
//
// A Tree is not safe for concurrent use; callers must serialize access.
package segtree

import (
	"fmt"
	"math"
)

const (
	// Accepted element range by default. Summing any two values within
	// it cannot overflow an int64.
	maxValue = math.MaxInt64 / 2
	minValue = math.MinInt64 / 2

	maxInputSize = math.MaxInt/2 - 1
)

// Tree is a range-sum tree over a fixed sequence of int64 values. The
// zero value is an empty tree, on which every query and update fails
// with ErrEmptyTree.
type Tree struct {
	nodes       []node
	leafLen     int
	leafIndices []int

	minValue   int64
	maxValue   int64
	depthAware bool
}

// New builds a tree over values. The slice is not retained.
//
// It errors if values is empty, if it is longer than the maximum
// supported size, if any option is invalid, or if an element lies
// outside the accepted value range.
func New(values []int64, options ...treeOption) (*Tree, error) {
	if len(values) == 0 {
		return nil, ErrEmptyInput
	}
	if len(values) > maxInputSize {
		return nil, fmt.Errorf("%w: %d elements", ErrInputTooLarge, len(values))
	}

	t := &Tree{
		leafLen:  len(values),
		minValue: minValue,
		maxValue: maxValue,
	}
	for _, option := range options {
		if err := option(t); err != nil {
			return nil, err
		}
	}
	t.resolveBounds()

	for i, v := range values {
		if err := t.checkValue(v); err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
	}

	t.nodes = make([]node, treeSize(t.leafLen))
	t.leafIndices = make([]int, t.leafLen)
	t.build(0, 0, t.leafLen-1, values)

	return t, nil
}

// build fills the subtree rooted at arena index i, which covers the
// elements [start, end], and returns its sum.
func (t *Tree) build(i, start, end int, values []int64) int64 {
	n := &t.nodes[i]
	n.start = start
	n.end = end

	if start == end {
		n.value = values[start]
		t.leafIndices[start] = i
		return n.value
	}

	mid := start + (end-start)/2
	n.left = 2*i + 1
	n.right = 2*i + 2

	n.value = t.build(n.left, start, mid, values) + t.build(n.right, mid+1, end, values)
	return n.value
}

func (t *Tree) checkValue(v int64) error {
	if v < t.minValue || v > t.maxValue {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrValueOutOfRange, v, t.minValue, t.maxValue)
	}
	return nil
}

func (t *Tree) checkIndex(i int) error {
	if i < 0 || i >= t.leafLen {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, t.leafLen)
	}
	return nil
}

// Query returns the sum of the elements at positions lo through hi,
// inclusive.
//
// It errors if the tree is empty, if lo > hi, or if either bound is
// outside [0, Len()-1].
func (t *Tree) Query(lo, hi int) (int64, error) {
	if t.leafLen == 0 {
		return 0, ErrEmptyTree
	}
	if lo > hi {
		return 0, fmt.Errorf("%w: [%d, %d]", ErrInvertedRange, lo, hi)
	}
	if err := t.checkIndex(lo); err != nil {
		return 0, fmt.Errorf("start %w", err)
	}
	if err := t.checkIndex(hi); err != nil {
		return 0, fmt.Errorf("end %w", err)
	}
	return t.query(0, lo, hi), nil
}

func (t *Tree) query(i, lo, hi int) int64 {
	n := t.nodes[i]
	if n.within(lo, hi) {
		return n.value
	}
	if n.disjoint(lo, hi) {
		return 0
	}
	return t.query(n.left, lo, hi) + t.query(n.right, lo, hi)
}

// Update replaces the element at index with value and recomputes the
// sums of all of its ancestors.
//
// It errors if the tree is empty, if index is outside [0, Len()-1], or
// if value is outside the accepted value range. The tree is left
// untouched on error.
func (t *Tree) Update(index int, value int64) error {
	if t.leafLen == 0 {
		return ErrEmptyTree
	}
	if err := t.checkIndex(index); err != nil {
		return err
	}
	if err := t.checkValue(value); err != nil {
		return err
	}

	i := t.leafIndices[index]
	t.nodes[i].value = value
	t.propagate(i)
	return nil
}

// propagate recomputes every ancestor of arena index i, walking the
// single parent chain up to the root.
func (t *Tree) propagate(i int) {
	for i > 0 {
		i = parent(i)
		n := &t.nodes[i]
		n.value = t.nodes[n.left].value + t.nodes[n.right].value
	}
}

// Len returns the number of elements in the tree.
func (t *Tree) Len() int {
	return t.leafLen
}

// Get returns the element at index.
func (t *Tree) Get(index int) (int64, error) {
	if t.leafLen == 0 {
		return 0, ErrEmptyTree
	}
	if err := t.checkIndex(index); err != nil {
		return 0, err
	}
	return t.nodes[t.leafIndices[index]].value, nil
}

// Sum returns the sum of all elements, or 0 for an empty tree.
func (t *Tree) Sum() int64 {
	if t.leafLen == 0 {
		return 0
	}
	return t.nodes[0].value
}

// Values returns a copy of the elements in order.
func (t *Tree) Values() []int64 {
	values := make([]int64, t.leafLen)
	for pos, i := range t.leafIndices {
		values[pos] = t.nodes[i].value
	}
	return values
}

func (t *Tree) String() string {
	return fmt.Sprintf("SegTree<len=%d, sum=%d>", t.leafLen, t.Sum())
}
