package segtree

import (
	"errors"
	"math"
	"testing"
)

func TestDefaults(t *testing.T) {
	tree, err := New(eight)

	if err != nil {
		t.Errorf("Creating a tree with default options should never error out. Got %s", err)
	}

	if tree.minValue != minValue || tree.maxValue != maxValue {
		t.Errorf("The default range should be [%d, %d], got [%d, %d]", minValue, maxValue, tree.minValue, tree.maxValue)
	}
}

func TestValueLimit(t *testing.T) {
	tree := mustNew(t, eight, ValueLimit(100))

	if tree.minValue != -100 || tree.maxValue != 100 {
		t.Errorf("ValueLimit(100) should narrow the range to [-100, 100], got [%d, %d]", tree.minValue, tree.maxValue)
	}

	if err := tree.Update(0, 101); !errors.Is(err, ErrValueOutOfRange) {
		t.Errorf("Update beyond the limit should fail with ErrValueOutOfRange, got %v", err)
	}
	mustUpdate(t, tree, 0, -100)

	if _, err := New([]int64{1, 2, 300}, ValueLimit(100)); !errors.Is(err, ErrValueOutOfRange) {
		t.Errorf("New with an element beyond the limit should fail, got %v", err)
	}

	tree = mustNew(t, eight, ValueLimit(10), ValueLimit(50))
	if tree.maxValue != 10 {
		t.Errorf("A later, wider limit should not widen the range, got %d", tree.maxValue)
	}
}

func TestInvalidValueLimit(t *testing.T) {
	for _, limit := range []int64{-1, maxValue + 1, math.MaxInt64} {
		tree, err := New(eight, ValueLimit(limit))
		if !errors.Is(err, ErrInvalidOption) || tree != nil {
			t.Errorf("ValueLimit(%d) should be rejected, got %v, %v", limit, tree, err)
		}
	}
}

func TestDepthAware(t *testing.T) {
	tree := mustNew(t, eight, DepthAware())

	// Eight leaves, so every element must fit in MaxInt64/8.
	bound := int64(math.MaxInt64 / 8)
	if tree.maxValue != bound || tree.minValue != -bound {
		t.Errorf("DepthAware() range = [%d, %d], want ±%d", tree.minValue, tree.maxValue, bound)
	}

	for i := 0; i < tree.Len(); i++ {
		mustUpdate(t, tree, i, bound)
	}
	if got, want := mustQuery(t, tree, 0, 7), 8*bound; got != want {
		t.Errorf("Query(0, 7) = %d, want %d", got, want)
	}
	checkInvariants(t, tree)

	if err := tree.Update(0, bound+1); !errors.Is(err, ErrValueOutOfRange) {
		t.Errorf("Update beyond the depth-aware bound should fail, got %v", err)
	}

	// A single leaf is never narrowed below the half-range default.
	single := mustNew(t, []int64{maxValue}, DepthAware())
	if single.maxValue != maxValue {
		t.Errorf("DepthAware() on one element should keep the default range, got %d", single.maxValue)
	}

	if _, err := New([]int64{1, 2, 3, maxValue}, DepthAware()); !errors.Is(err, ErrValueOutOfRange) {
		t.Errorf("New with a half-range element should fail under DepthAware(), got %v", err)
	}
}
