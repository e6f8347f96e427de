package segtree

import (
	"fmt"
	"math"
)

type treeOption func(*Tree) error

// ValueLimit narrows the range of accepted element values to
// [-limit, limit], both at construction and on Update.
//
// The default range is [math.MinInt64/2, math.MaxInt64/2], which
// guarantees that combining any two children cannot overflow. A limit
// can only narrow that range: it must be between 0 and
// math.MaxInt64/2, New will error otherwise.
func ValueLimit(limit int64) treeOption {
	return func(t *Tree) error {
		if limit < 0 || limit > maxValue {
			return fmt.Errorf("%w: value limit %d not in [0, %d]", ErrInvalidOption, limit, maxValue)
		}
		if limit < t.maxValue {
			t.maxValue = limit
		}
		if -limit > t.minValue {
			t.minValue = -limit
		}
		return nil
	}
}

// DepthAware narrows the accepted value range so that no node sum,
// the root included, can overflow an int64.
//
// The half-range default only protects a single parent-child
// combination. With DepthAware every element must fit in
// ±(math.MaxInt64 / p), where p is the leaf level width of the tree,
// so that even p elements at the bound add up without overflowing.
func DepthAware() treeOption {
	return func(t *Tree) error {
		t.depthAware = true
		return nil
	}
}

// resolveBounds applies the depth-aware bound once leafLen is known.
func (t *Tree) resolveBounds() {
	if !t.depthAware {
		return
	}
	limit := int64(math.MaxInt64) / int64(nextPowerOfTwo(t.leafLen))
	if limit < t.maxValue {
		t.maxValue = limit
	}
	if -limit > t.minValue {
		t.minValue = -limit
	}
}
