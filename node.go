package segtree

// node covers the inclusive element interval [start, end]. left and
// right are arena indices of its children; both are zero for a leaf,
// since index 0 is the root and never a child.
type node struct {
	value int64
	start int
	end   int
	left  int
	right int
}

func (n node) isLeaf() bool {
	return n.left == 0 && n.right == 0
}

func (n node) within(lo, hi int) bool {
	return lo <= n.start && n.end <= hi
}

func (n node) disjoint(lo, hi int) bool {
	return hi < n.start || n.end < lo
}

func parent(i int) int {
	return (i - 1) / 2
}

// nextPowerOfTwo returns the smallest power of two >= n, for n >= 1.
func nextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// treeSize is the arena length needed for n leaves: a complete binary
// tree whose leaf level has nextPowerOfTwo(n) slots.
func treeSize(n int) int {
	if n == 0 {
		return 0
	}
	return 2*nextPowerOfTwo(n) - 1
}
