package bignum

import (
	"strings"

	"github.com/anbrusi/nanocas/caserr"
)

// RatBig is a rational number num/den, always stored in lowest terms with
// a strictly positive denominator (spec.md §3.1). Zero is canonically
// 0/1.
type RatBig struct {
	num IntBig
	den NatBig // never zero
}

// ZeroRat is the canonical 0/1.
func (r Radix) ZeroRat() RatBig { return RatBig{den: r.OneNat()} }

// Num and Den expose the reduced numerator/denominator.
func (q RatBig) Num() IntBig { return q.num }
func (q RatBig) Den() NatBig { return q.den }

// IsZero reports whether q is zero.
func (q RatBig) IsZero() bool { return q.num.IsZero() }

func (r Radix) reduce(num IntBig, den NatBig) RatBig {
	if num.IsZero() {
		return RatBig{den: r.OneNat()}
	}
	g := r.GCDNat(num.mag, den)
	if r.CompareNat(g, r.OneNat()) > 0 {
		nmag, _ := r.DivMod(num.mag, g)
		dmag, _ := r.DivMod(den, g)
		num = mkInt(nmag, num.sign)
		den = dmag
	}
	return RatBig{num: num, den: den}
}

// FromInt lifts an integer into a RatBig with denominator 1.
func (r Radix) FromInt(z IntBig) RatBig {
	return RatBig{num: z, den: r.OneNat()}
}

// ParseRat parses "Z/N": exactly two parts split on '/', a signed integer
// numerator and a non-zero natural denominator. A negative denominator
// flips both signs before reducing.
func (r Radix) ParseRat(s string) (RatBig, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 2 {
		return RatBig{}, caserr.New(caserr.MalformedRationalLiteral, "%q is not of the form Z/N", s)
	}
	num, err := r.ParseInt(parts[0])
	if err != nil {
		return RatBig{}, caserr.New(caserr.MalformedRationalLiteral, "bad numerator in %q: %v", s, err)
	}
	den, err := r.ParseInt(parts[1])
	if err != nil {
		return RatBig{}, caserr.New(caserr.MalformedRationalLiteral, "bad denominator in %q: %v", s, err)
	}
	if den.IsZero() {
		return RatBig{}, caserr.New(caserr.RationalDenominatorZero, "zero denominator in %q", s)
	}
	if den.Sign() < 0 {
		num = r.NegInt(num)
		den = r.NegInt(den)
	}
	return r.reduce(num, den.mag), nil
}

// RenderRat renders q as "num/den" when the denominator isn't 1, or just
// "num" otherwise (the numerator's own rendering already omits a leading
// "-0" by construction).
func (r Radix) RenderRat(q RatBig) string {
	if r.CompareNat(q.den, r.OneNat()) == 0 {
		return r.RenderInt(q.num)
	}
	return r.RenderInt(q.num) + "/" + r.RenderNat(q.den)
}

// CompareRat cross-multiplies to compare a/b against c/d without first
// forcing a common denominator through division.
func (r Radix) CompareRat(a, b RatBig) int {
	lhs := r.MultInt(a.num, r.FromNat(b.den))
	rhs := r.MultInt(b.num, r.FromNat(a.den))
	return r.CompareInt(lhs, rhs)
}

// AddRat adds a/b + c/d. When gcd(b,d)=1 the direct cross formula is used;
// otherwise the GCD-trimmed form from spec.md §4.4 avoids an unnecessarily
// large intermediate numerator, and the sum is always re-reduced since
// addition can reintroduce a common factor even after pre-trimming.
func (r Radix) AddRat(a, c RatBig) RatBig {
	g := r.GCDNat(a.den, c.den)
	if r.CompareNat(g, r.OneNat()) == 0 {
		num := r.AddInt(r.MultInt(a.num, r.FromNat(c.den)), r.MultInt(c.num, r.FromNat(a.den)))
		den := r.MultNat(a.den, c.den)
		return r.reduce(num, den)
	}
	s, _ := r.DivMod(a.den, g)
	t, _ := r.DivMod(c.den, g)
	num := r.AddInt(r.MultInt(a.num, r.FromNat(t)), r.MultInt(c.num, r.FromNat(s)))
	den := r.MultNat(s, c.den)
	return r.reduce(num, den)
}

// SubRat computes a - c by flipping c's numerator sign and adding.
func (r Radix) SubRat(a, c RatBig) RatBig {
	return r.AddRat(a, RatBig{num: r.NegInt(c.num), den: c.den})
}

// MultRat multiplies a/b * c/d, pre-cancelling gcd(|a|,d) and gcd(b,|c|)
// before forming the product so intermediates stay small, equivalent to
// reducing after a naive multiply.
func (r Radix) MultRat(a, c RatBig) RatBig {
	gad := r.GCDNat(a.num.AbsNat(), c.den)
	gbc := r.GCDNat(a.den, c.num.AbsNat())

	an := a.num
	bd := a.den
	cn := c.num
	dd := c.den
	if r.CompareNat(gad, r.OneNat()) > 0 {
		m, _ := r.DivMod(an.AbsNat(), gad)
		an = mkInt(m, an.sign)
		dd, _ = r.DivMod(dd, gad)
	}
	if r.CompareNat(gbc, r.OneNat()) > 0 {
		bd, _ = r.DivMod(bd, gbc)
		m, _ := r.DivMod(cn.AbsNat(), gbc)
		cn = mkInt(m, cn.sign)
	}
	num := r.MultInt(an, cn)
	den := r.MultNat(bd, dd)
	return r.reduce(num, den)
}

// ReciprocalRat swaps numerator and denominator, re-asserting a positive
// denominator. The reciprocal of zero is an error.
func (r Radix) ReciprocalRat(q RatBig) (RatBig, error) {
	if q.IsZero() {
		return RatBig{}, caserr.New(caserr.ReciprocalOfZero, "reciprocal of zero")
	}
	num := r.FromNat(q.den)
	if q.num.Sign() < 0 {
		num = r.NegInt(num)
	}
	den := q.num.AbsNat()
	return RatBig{num: num, den: den}, nil
}

// DivRat computes a / c as a * reciprocal(c).
func (r Radix) DivRat(a, c RatBig) (RatBig, error) {
	recip, err := r.ReciprocalRat(c)
	if err != nil {
		return RatBig{}, err
	}
	return r.MultRat(a, recip), nil
}

// PowerRat raises u to the signed integer power n by square-and-multiply
// on |n|, decomposing as sign(n) x sign(u) x |u|^|n|: the loop always
// squares the absolute value, a negative exponent takes the reciprocal
// afterward, and a negative base has its sign re-applied at the end when
// the exponent is odd, because the loop itself only ever saw |u| (an
// even exponent leaves the result positive). Zero to a negative exponent
// is an error.
func (r Radix) PowerRat(u RatBig, n int) (RatBig, error) {
	if u.IsZero() && n < 0 {
		return RatBig{}, caserr.New(caserr.NegativePowerOfZero, "zero to a negative power")
	}
	neg := u.num.Sign() < 0
	base := RatBig{num: r.AbsInt(u.num), den: u.den}
	exp := n
	if exp < 0 {
		exp = -exp
	}

	result := r.FromInt(r.OneInt())
	b := base
	for exp > 0 {
		if exp&1 == 1 {
			result = r.MultRat(result, b)
		}
		b = r.MultRat(b, b)
		exp >>= 1
	}

	if n < 0 {
		var err error
		result, err = r.ReciprocalRat(result)
		if err != nil {
			return RatBig{}, err
		}
	}
	if neg && Mod(n, 2) != 0 {
		result = RatBig{num: r.NegInt(result.num), den: result.den}
	}
	return result, nil
}
