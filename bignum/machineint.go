package bignum

// Div and Mod are the only two operations the rest of this package uses to
// do host-int arithmetic (spec.md §4.1): every digit-level routine in
// NatBig, IntBig and RatBig routes through them instead of Go's native `/`
// and `%`, so the truncation and sign conventions used throughout the
// bignum layer live in exactly one place.

// Div performs integer division truncated toward zero — the same
// behavior as Go's built-in integer `/` for two ints, named and isolated
// here because nanocas's digit algorithms are specified in terms of it
// rather than the operator directly. d must be non-zero.
func Div(a, d int) int {
	if d == 0 {
		panic("bignum: Div by zero")
	}
	return a / d
}

// Mod returns a value in [0, d) for d > 0, the non-negative remainder of a
// divided by d. Go's `%` can return a negative result when a is negative;
// Mod corrects that into the conventional digit range.
func Mod(a, d int) int {
	if d == 0 {
		panic("bignum: Mod by zero")
	}
	m := a % d
	if m < 0 {
		if d > 0 {
			m += d
		} else {
			m -= d
		}
	}
	return m
}
