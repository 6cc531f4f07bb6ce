/*
Package fncomb provides a tiny toolkit of function combinators.

Pipe and Compose chain unary functions of a single type, left to right and right to
left respectively. Every and Some combine predicates into a new predicate with
short-circuit evaluation. Then and Then3 chain functions of differing types, with the
types fixed at the call site.

Combinators hold no state between invocations. Each call returns a fresh closure
capturing a private copy of the functions passed in. Panics raised by
caller-supplied functions travel through unchanged.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package fncomb

// Pred is a predicate over values of type T.
type Pred[T any] func(T) bool

// Identity returns x unchanged.
func Identity[T any](x T) T {
	return x
}

// Unit returns unit for any input => the zero value for T.
func Unit[T any](_ T) T {
	var a T
	return a
}

// Const returns a function that produces a.
func Const[T any](a T) func() T {
	return func() T {
		return a
	}
}

// Then returns h = f . g, i.e. g is applied first.
func Then[A, B, C any](g func(a A) B, f func(b B) C) func(A) C {
	return func(a A) C {
		b := g(a)
		return f(b)
	}
}

// Then3 chains three functions left to right.
func Then3[A, B, C, D any](f1 func(A) B, f2 func(B) C, f3 func(C) D) func(A) D {
	return func(a A) D {
		return f3(f2(f1(a)))
	}
}

// Pipe returns a function applying fns from left to right, each output feeding
// the next input. Without any functions, Pipe returns the identity.
func Pipe[T any](fns ...func(T) T) func(T) T {
	fs := clone(fns)
	return func(x T) T {
		for _, f := range fs {
			x = f(x)
		}
		return x
	}
}

// Compose returns a function applying fns from right to left, the last one first.
// Without any functions, Compose returns the identity.
func Compose[T any](fns ...func(T) T) func(T) T {
	fs := clone(fns)
	return func(x T) T {
		for i := len(fs) - 1; i >= 0; i-- {
			x = fs[i](x)
		}
		return x
	}
}

// Every returns a predicate which holds iff all of ps hold. Predicates are
// evaluated in order and evaluation stops at the first false.
// Every() is vacuously true.
func Every[T any](ps ...func(T) bool) func(T) bool {
	preds := clone(ps)
	return func(x T) bool {
		for _, p := range preds {
			if !p(x) {
				return false
			}
		}
		return true
	}
}

// Some returns a predicate which holds iff at least one of ps holds. Predicates are
// evaluated in order and evaluation stops at the first true.
// Some() is always false.
func Some[T any](ps ...func(T) bool) func(T) bool {
	preds := clone(ps)
	return func(x T) bool {
		for _, p := range preds {
			if p(x) {
				return true
			}
		}
		return false
	}
}

// Not negates p.
func Not[T any](p func(T) bool) func(T) bool {
	return func(x T) bool {
		return !p(x)
	}
}

// clone copies fns, so callers may reuse the slice they passed as variadic
// argument.
func clone[F any](fns []F) []F {
	if len(fns) == 0 {
		return nil
	}
	c := make([]F, len(fns))
	copy(c, fns)
	return c
}
