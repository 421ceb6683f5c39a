package bootstraps

// Compose returns h = f . g
func Compose[A, B, C any](g func(a A) B, f func(b B) C) func(A) C {
	return func(a A) C {
		return f(g(a))
	}
}

// Compose2 lifts a binary function f over a projection g:
//
//     h(x, y) = f(g(x), g(y))
//
// This is how a component accessor is chained to a component comparator.
func Compose2[A, B, C any](g func(a A) B, f func(b1, b2 B) C) func(A, A) C {
	return func(x, y A) C {
		return f(g(x), g(y))
	}
}

// FoldLeft folds fs over a, applying each function to x and combining its
// result into the accumulator with step.
func FoldLeft[A, B any](fs []func(A) B, zero B, step func(B, B) B) func(A) B {
	return func(x A) B {
		acc := zero
		for _, f := range fs {
			acc = step(acc, f(x))
		}
		return acc
	}
}

// All returns a predicate over pairs that holds if every predicate in ps holds.
// Evaluation stops at the first predicate yielding false, in order of ps.
func All[A any](ps []func(A, A) bool) func(A, A) bool {
	return func(x, y A) bool {
		for _, p := range ps {
			if !p(x, y) {
				return false
			}
		}
		return true
	}
}
