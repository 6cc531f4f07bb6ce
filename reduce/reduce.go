package reduce

import (
	"golang.org/x/exp/constraints"

	"github.com/npillmayer/fncomb/maybe"
)

// Number is the set of types Sum and Mean operate on.
type Number interface {
	constraints.Integer | constraints.Float
}

// Fold accumulates xs from left to right, starting with init.
func Fold[T, A any](xs []T, init A, f func(A, T) A) A {
	acc := init
	for _, x := range xs {
		acc = f(acc, x)
	}
	return acc
}

// FoldRight accumulates xs from right to left, starting with init.
func FoldRight[T, A any](xs []T, init A, f func(A, T) A) A {
	acc := init
	for i := len(xs) - 1; i >= 0; i-- {
		acc = f(acc, xs[i])
	}
	return acc
}

// Reduce folds xs with the first element as initial accumulator.
// For empty xs, Reduce returns Nothing.
func Reduce[T any](xs []T, f func(T, T) T) maybe.Maybe[T] {
	if len(xs) == 0 {
		return maybe.Nothing[T]()
	}
	return maybe.Just(Fold(xs[1:], xs[0], f))
}

// FilterFold folds those elements of xs satisfying keep, in a single pass.
func FilterFold[T, A any](xs []T, keep func(T) bool, init A, f func(A, T) A) A {
	return Fold(xs, init, func(acc A, x T) A {
		if !keep(x) {
			return acc
		}
		return f(acc, x)
	})
}

// Filter returns a new slice with the elements of xs satisfying keep.
func Filter[T any](xs []T, keep func(T) bool) []T {
	return FilterFold(xs, keep, make([]T, 0, len(xs)), func(acc []T, x T) []T {
		return append(acc, x)
	})
}

// Map returns a new slice with f applied to every element of xs.
func Map[T, S any](xs []T, f func(T) S) []S {
	out := make([]S, len(xs))
	for i, x := range xs {
		out[i] = f(x)
	}
	return out
}

// Count returns the number of elements of xs satisfying p.
func Count[T any](xs []T, p func(T) bool) int {
	return FilterFold(xs, p, 0, func(n int, _ T) int {
		return n + 1
	})
}

// Find returns the first element of xs satisfying p.
func Find[T any](xs []T, p func(T) bool) maybe.Maybe[T] {
	for _, x := range xs {
		if p(x) {
			return maybe.Just(x)
		}
	}
	return maybe.Nothing[T]()
}

// GroupBy splits xs by key in a single pass. The order of elements within a
// group follows xs.
func GroupBy[T any, K comparable](xs []T, key func(T) K) map[K][]T {
	groups := Fold(xs, make(map[K][]T), func(g map[K][]T, x T) map[K][]T {
		k := key(x)
		g[k] = append(g[k], x)
		return g
	})
	tracer().Debugf("grouped %d elements into %d groups", len(xs), len(groups))
	return groups
}

// Sum adds up xs. The sum of no numbers is 0.
func Sum[N Number](xs []N) N {
	var zero N
	return Fold(xs, zero, func(a, b N) N { return a + b })
}

// Mean returns the arithmetic mean of xs, or Nothing for empty xs. The total is
// accumulated in float64, so small integer types do not overflow.
func Mean[N Number](xs []N) maybe.Maybe[float64] {
	if len(xs) == 0 {
		return maybe.Nothing[float64]()
	}
	total := Fold(xs, 0.0, func(a float64, n N) float64 { return a + float64(n) })
	return maybe.Just(total / float64(len(xs)))
}
