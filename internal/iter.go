package internal

import (
	"cmp"
	"iter"
	"slices"
)

// Concat2 chains dual-value sequences, in order, into one sequence.
func Concat2[K any, V any](seqs ...iter.Seq2[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, seq := range seqs {
			for k, v := range seq {
				if !yield(k, v) {
					return
				}
			}
		}
	}
}

// Sorted2 yields the pairs of seq ordered by key.
func Sorted2[K cmp.Ordered, V any](seq iter.Seq2[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		type pair struct {
			k K
			v V
		}
		var pairs []pair
		for k, v := range seq {
			pairs = append(pairs, pair{k, v})
		}
		slices.SortStableFunc(pairs, func(a, b pair) int { return cmp.Compare(a.k, b.k) })
		for _, p := range pairs {
			if !yield(p.k, p.v) {
				return
			}
		}
	}
}
