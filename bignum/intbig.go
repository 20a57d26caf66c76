package bignum

import (
	"github.com/anbrusi/nanocas/caserr"
)

// IntBig is a signed integer: a NatBig magnitude plus a sign. Sign is -1,
// 0 or +1; zero is always represented with sign 0 and an empty magnitude
// ("-0" is never canonical), per spec.md §3.1.
type IntBig struct {
	mag  NatBig
	sign int
}

// ZeroInt is the canonical zero.
func (r Radix) ZeroInt() IntBig { return IntBig{} }

// OneInt is the canonical one.
func (r Radix) OneInt() IntBig { return IntBig{mag: r.OneNat(), sign: 1} }

// FromNat lifts a NatBig into a non-negative IntBig.
func (r Radix) FromNat(n NatBig) IntBig {
	if n.IsZero() {
		return IntBig{}
	}
	return IntBig{mag: n, sign: 1}
}

// IsZero reports whether z is zero.
func (z IntBig) IsZero() bool { return z.sign == 0 }

// Sign returns -1, 0 or 1.
func (z IntBig) Sign() int { return z.sign }

// AbsNat returns the magnitude of z as a NatBig.
func (z IntBig) AbsNat() NatBig { return z.mag }

func mkInt(mag NatBig, sign int) IntBig {
	if mag.IsZero() {
		return IntBig{}
	}
	return IntBig{mag: mag, sign: sign}
}

// AbsInt clears the sign.
func (r Radix) AbsInt(z IntBig) IntBig {
	if z.IsZero() {
		return z
	}
	return IntBig{mag: z.mag, sign: 1}
}

// NegInt flips the sign; zero stays zero. This is the only place nanocas
// negates a value that is not already known to be freshly built, so it
// stays a named operation rather than an exported "private owned" helper
// (spec.md §3.1's chgSign has no externally observable counterpart here:
// every IntBig is immutable and every operation already returns a fresh
// value).
func (r Radix) NegInt(z IntBig) IntBig {
	if z.IsZero() {
		return z
	}
	return IntBig{mag: z.mag, sign: -z.sign}
}

// ParseInt parses an optional leading '-' followed by a NatBig literal.
func (r Radix) ParseInt(s string) (IntBig, error) {
	if s == "" {
		return IntBig{}, caserr.New(caserr.EmptyInput, "empty integer literal")
	}
	neg := false
	if s[0] == '-' {
		neg = true
		s = s[1:]
	}
	mag, err := r.ParseNat(s)
	if err != nil {
		return IntBig{}, err
	}
	if mag.IsZero() {
		return IntBig{}, nil
	}
	sign := 1
	if neg {
		sign = -1
	}
	return IntBig{mag: mag, sign: sign}, nil
}

// RenderInt renders z as an optional '-' followed by the NatBig rendering
// of its magnitude; zero renders as "0", never "-0".
func (r Radix) RenderInt(z IntBig) string {
	if z.IsZero() {
		return "0"
	}
	s := r.RenderNat(z.mag)
	if z.sign < 0 {
		return "-" + s
	}
	return s
}

// CompareInt orders positive > zero > negative; within a shared sign,
// magnitudes are compared directly for positives and reversed for
// negatives.
func (r Radix) CompareInt(u, v IntBig) int {
	if u.sign != v.sign {
		if u.sign < v.sign {
			return -1
		}
		return 1
	}
	cmp := r.CompareNat(u.mag, v.mag)
	if u.sign < 0 {
		return -cmp
	}
	return cmp
}

// AddInt adds two integers: same sign adds magnitudes and keeps the sign;
// opposite signs subtract the smaller magnitude from the larger and take
// the larger's sign (zero if they are equal).
func (r Radix) AddInt(u, v IntBig) IntBig {
	if u.sign == 0 {
		return v
	}
	if v.sign == 0 {
		return u
	}
	if u.sign == v.sign {
		return mkInt(r.AddNat(u.mag, v.mag), u.sign)
	}
	switch r.CompareNat(u.mag, v.mag) {
	case 0:
		return IntBig{}
	case 1:
		return mkInt(r.SubNat(u.mag, v.mag), u.sign)
	default:
		return mkInt(r.SubNat(v.mag, u.mag), v.sign)
	}
}

// SubInt computes u - v by flipping v's sign and adding.
func (r Radix) SubInt(u, v IntBig) IntBig {
	return r.AddInt(u, r.NegInt(v))
}

// MultInt multiplies two integers; the result's sign is positive iff both
// operands share a sign, and zero stays unsigned regardless of operand
// signs.
func (r Radix) MultInt(u, v IntBig) IntBig {
	if u.sign == 0 || v.sign == 0 {
		return IntBig{}
	}
	sign := 1
	if u.sign != v.sign {
		sign = -1
	}
	return mkInt(r.MultNat(u.mag, v.mag), sign)
}

// DivModInt divides u by v using the non-mathematical sign convention of
// spec.md §4.3: the quotient is positive when both operands share a sign
// and negative otherwise, exactly as MultInt would compute it from the
// operands' signs, and the remainder always takes the dividend's sign.
// This differs from both the Euclidean convention (remainder >= 0) and
// the "sign follows divisor" convention and must be reproduced exactly:
//
//	 7,  3 -> q= 2, r= 1
//	-7,  3 -> q=-2, r=-1
//	 7, -3 -> q=-2, r= 1
//	-7, -3 -> q= 2, r=-1
func (r Radix) DivModInt(u, v IntBig) (IntBig, IntBig) {
	if v.sign == 0 {
		panic("bignum: DivModInt by zero")
	}
	qmag, rmag := r.DivMod(u.mag, v.mag)
	qsign := 1
	if u.sign != v.sign {
		qsign = -1
	}
	return mkInt(qmag, qsign), mkInt(rmag, u.sign)
}
