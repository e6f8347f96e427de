// Package fenwick provides a list of int64 values supporting prefix
// sums.
//
// A Fenwick tree, or binary indexed tree, stores partial range sums in
// a slice of the same length as the list, so that both element updates
// and prefix sums run in O(log n) time. segtree uses it as an
// independent reference when checking range sums.
package fenwick

// List represents a list of int64 values with support for efficient
// prefix sum computation. The zero value is an empty list.
type List struct {
	// tree[i] holds the sum of the elements t[j] for
	// i - lsb(i+1) < j <= i, where lsb is the lowest set bit.
	tree []int64
}

// New creates a new list with the given elements.
func New(n ...int64) *List {
	t := make([]int64, len(n))
	copy(t, n)
	for i := range t {
		if j := i | (i + 1); j < len(t) {
			t[j] += t[i]
		}
	}
	return &List{tree: t}
}

// Len returns the number of elements in the list.
func (l *List) Len() int {
	return len(l.tree)
}

// Get returns the element at index i.
func (l *List) Get(i int) int64 {
	return l.SumRange(i, i+1)
}

// Set sets the element at index i to n.
func (l *List) Set(i int, n int64) {
	l.Add(i, n-l.Get(i))
}

// Add adds n to the element at index i.
func (l *List) Add(i int, n int64) {
	for ; i < len(l.tree); i |= i + 1 {
		l.tree[i] += n
	}
}

// Sum returns the sum of the elements from index 0 to index i-1.
func (l *List) Sum(i int) int64 {
	var sum int64
	for i > 0 {
		sum += l.tree[i-1]
		i &= i - 1
	}
	return sum
}

// SumRange returns the sum of the elements from index i to index j-1.
func (l *List) SumRange(i, j int) int64 {
	return l.Sum(j) - l.Sum(i)
}
