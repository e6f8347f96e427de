package segtree

import (
	rng "github.com/leesper/go_rng"
)

// workloadRNG is the source of randomness for generated test workloads.
type workloadRNG interface {
	Int64n(int64) int64
}

type seededRNG struct {
	gen *rng.UniformGenerator
}

func newSeededRNG(seed int64) *seededRNG {
	return &seededRNG{gen: rng.NewUniformGenerator(seed)}
}

func (r *seededRNG) Int64n(n int64) int64 {
	return r.gen.Int64n(n)
}

// between returns a value in [lo, hi].
func between(r workloadRNG, lo, hi int64) int64 {
	return lo + r.Int64n(hi-lo+1)
}

func index(r workloadRNG, n int) int {
	return int(r.Int64n(int64(n)))
}

func randomValues(r workloadRNG, n int, limit int64) []int64 {
	values := make([]int64, n)
	for i := range values {
		values[i] = between(r, -limit, limit)
	}
	return values
}
