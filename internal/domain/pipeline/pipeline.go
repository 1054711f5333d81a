// Package pipeline provides composable in-memory aggregation stages (filter, join, project,
// sort, reduce) that operate on plain slices, independent of the store that produced them.
package pipeline

import "slices"

// Stage transforms a slice of records into another slice of the same type.
type Stage[T any] func([]T) []T

// Run applies the stages in order.
func Run[T any](in []T, stages ...Stage[T]) []T {
	out := in
	for _, stage := range stages {
		out = stage(out)
	}

	return out
}

// Where wraps Filter as a Stage.
func Where[T any](keep func(T) bool) Stage[T] {
	return func(in []T) []T {
		return Filter(in, keep)
	}
}

// OrderBy wraps SortBy as a Stage.
func OrderBy[T any](cmp func(a, b T) int) Stage[T] {
	return func(in []T) []T {
		return SortBy(in, cmp)
	}
}

// Filter returns the records for which keep is true, preserving order.
func Filter[T any](in []T, keep func(T) bool) []T {
	out := make([]T, 0, len(in))
	for _, v := range in {
		if keep(v) {
			out = append(out, v)
		}
	}

	return out
}

// Project maps every record to a new shape.
func Project[T, R any](in []T, fn func(T) R) []R {
	out := make([]R, 0, len(in))
	for _, v := range in {
		out = append(out, fn(v))
	}

	return out
}

// SortBy returns a stably sorted copy; the input is left untouched.
func SortBy[T any](in []T, cmp func(a, b T) int) []T {
	out := slices.Clone(in)
	slices.SortStableFunc(out, cmp)

	return out
}

// Reduce folds the records into an accumulator. An empty input yields init.
func Reduce[T, A any](in []T, init A, fn func(A, T) A) A {
	acc := init
	for _, v := range in {
		acc = fn(acc, v)
	}

	return acc
}

// Index builds a lookup table keyed by key(v). Later duplicates win.
func Index[K comparable, T any](in []T, key func(T) K) map[K]T {
	out := make(map[K]T, len(in))
	for _, v := range in {
		out[key(v)] = v
	}

	return out
}

// Pair is one row of an inner join.
type Pair[L, R any] struct {
	Left  L
	Right R
}

// Join is an inner equi-join: each left record is paired with the right record sharing its key.
// Left records with no match are dropped. Left order is preserved.
func Join[L, R any, K comparable](left []L, right []R, leftKey func(L) K, rightKey func(R) K) []Pair[L, R] {
	index := Index(right, rightKey)
	out := make([]Pair[L, R], 0, len(left))
	for _, l := range left {
		r, ok := index[leftKey(l)]
		if !ok {
			continue
		}
		out = append(out, Pair[L, R]{Left: l, Right: r})
	}

	return out
}

// Group is one row of a one-to-many join.
type Group[L, R any] struct {
	Left    L
	Matches []R
}

// JoinMany attaches to each left record every right record whose key appears in leftKeys(l),
// in the order of those keys. Left records are kept even without matches.
func JoinMany[L, R any, K comparable](left []L, right []R, leftKeys func(L) []K, rightKey func(R) K) []Group[L, R] {
	index := Index(right, rightKey)
	out := make([]Group[L, R], 0, len(left))
	for _, l := range left {
		keys := leftKeys(l)
		matches := make([]R, 0, len(keys))
		for _, k := range keys {
			if r, ok := index[k]; ok {
				matches = append(matches, r)
			}
		}
		out = append(out, Group[L, R]{Left: l, Matches: matches})
	}

	return out
}
