package bignum

import (
	"strings"

	"github.com/anbrusi/nanocas/caserr"
)

// Radix fixes the positional base B = 10^L that every NatBig, IntBig and
// RatBig value built through it is expressed in (spec.md §3.1). A Radix is
// immutable once constructed and is shared by value across however many
// NatBig/IntBig/RatBig operations use it — it is the "per-instance radix
// configuration" spec.md §5 describes, factored out of the number types
// themselves so NatBig stays a plain digit vector.
type Radix struct {
	b int // B
	l int // L = log10(B)
}

// NewRadix validates that b is a positive integer power of ten and
// returns the Radix that operates in base b.
func NewRadix(b int) (Radix, error) {
	if b < 10 {
		return Radix{}, caserr.New(caserr.IllegalChar, "radix %d is not a positive power of 10", b)
	}
	l := 0
	n := b
	for n > 1 {
		if Mod(n, 10) != 0 {
			return Radix{}, caserr.New(caserr.IllegalChar, "radix %d is not a power of 10", b)
		}
		n = Div(n, 10)
		l++
	}
	return Radix{b: b, l: l}, nil
}

// B returns the radix's base.
func (r Radix) B() int { return r.b }

// L returns log10(B), the fixed decimal width of every non-leading digit.
func (r Radix) L() int { return r.l }

// NatBig is a canonical base-B natural number: a little-endian (digit 0 is
// least significant) slice of digits in [0, B), with no leading (i.e.
// trailing in storage order) zero digit, and the empty slice standing for
// zero (spec.md §3.1).
type NatBig struct {
	digits []int // index i holds d_(i+1); digits[len-1] != 0 when len > 0
}

// ZeroNat is the canonical representation of zero: no digits.
func (r Radix) ZeroNat() NatBig { return NatBig{} }

// OneNat is the canonical representation of one.
func (r Radix) OneNat() NatBig { return NatBig{digits: []int{1}} }

// IsZero reports whether n is the canonical zero.
func (n NatBig) IsZero() bool { return len(n.digits) == 0 }

// Len returns the digit count k.
func (n NatBig) Len() int { return len(n.digits) }

// Digits returns a defensive copy of the digit vector, least-significant
// first.
func (n NatBig) Digits() []int {
	out := make([]int, len(n.digits))
	copy(out, n.digits)
	return out
}

func normalizeNat(digits []int) NatBig {
	k := len(digits)
	for k > 0 && digits[k-1] == 0 {
		k--
	}
	return NatBig{digits: digits[:k]}
}

// ParseNat reads a decimal string with no sign and no decimal point into a
// NatBig, per spec.md §4.2: leading zeros are stripped and the remaining
// digits are grouped from the right into chunks of width L.
func (r Radix) ParseNat(s string) (NatBig, error) {
	if s == "" {
		return NatBig{}, caserr.New(caserr.EmptyInput, "empty natural number literal")
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return NatBig{}, caserr.New(caserr.IllegalChar, "%q is not a decimal digit string", s)
		}
	}
	i := 0
	for i < len(s)-1 && s[i] == '0' {
		i++
	}
	s = s[i:]
	if s == "0" {
		return NatBig{}, nil
	}
	var digits []int
	for end := len(s); end > 0; end -= r.l {
		start := end - r.l
		if start < 0 {
			start = 0
		}
		chunk := s[start:end]
		v := 0
		for _, c := range chunk {
			v = v*10 + int(c-'0')
		}
		digits = append(digits, v)
	}
	return normalizeNat(digits), nil
}

// RenderNat renders n in high-to-low digit order, each non-leading digit
// left-padded with zeros to width L, with no leading zeros overall.
// Zero renders as "0".
func (r Radix) RenderNat(n NatBig) string {
	if n.IsZero() {
		return "0"
	}
	var sb strings.Builder
	for i := len(n.digits) - 1; i >= 0; i-- {
		d := n.digits[i]
		if i == len(n.digits)-1 {
			sb.WriteString(itoa(d))
		} else {
			s := itoa(d)
			for len(s) < r.l {
				s = "0" + s
			}
			sb.WriteString(s)
		}
	}
	return sb.String()
}

func itoa(v int) string {
	if v == 0 {
		return "0"
	}
	var buf [32]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + Mod(v, 10))
		v = Div(v, 10)
	}
	return string(buf[i:])
}

// CompareNat returns -1, 0 or 1 as u is less than, equal to, or greater
// than v: first by digit count, then digit-by-digit from the most
// significant digit down.
func (r Radix) CompareNat(u, v NatBig) int {
	if len(u.digits) != len(v.digits) {
		if len(u.digits) < len(v.digits) {
			return -1
		}
		return 1
	}
	for i := len(u.digits) - 1; i >= 0; i-- {
		if u.digits[i] != v.digits[i] {
			if u.digits[i] < v.digits[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// AddNat adds two naturals: zero-pad the shorter to the longer length,
// carry-propagate, and append a final digit if a carry remains.
func (r Radix) AddNat(u, v NatBig) NatBig {
	n := len(u.digits)
	if len(v.digits) > n {
		n = len(v.digits)
	}
	out := make([]int, n+1)
	carry := 0
	for i := 0; i < n; i++ {
		a, b := 0, 0
		if i < len(u.digits) {
			a = u.digits[i]
		}
		if i < len(v.digits) {
			b = v.digits[i]
		}
		s := a + b + carry
		out[i] = Mod(s, r.b)
		carry = Div(s, r.b)
	}
	out[n] = carry
	return normalizeNat(out)
}

// SubNat subtracts v from u, which must satisfy u >= v. Result is stripped
// of high-order zero digits, keeping at least zero digits for a zero
// result.
func (r Radix) SubNat(u, v NatBig) NatBig {
	out := make([]int, len(u.digits))
	borrow := 0
	for i := range u.digits {
		a := u.digits[i]
		b := 0
		if i < len(v.digits) {
			b = v.digits[i]
		}
		d := a - b - borrow
		if d < 0 {
			d += r.b
			borrow = 1
		} else {
			borrow = 0
		}
		out[i] = d
	}
	return normalizeNat(out)
}

// MultNat computes the schoolbook O(mn) product of u and v.
func (r Radix) MultNat(u, v NatBig) NatBig {
	if u.IsZero() || v.IsZero() {
		return NatBig{}
	}
	m, n := len(u.digits), len(v.digits)
	out := make([]int, m+n)
	for j := 0; j < n; j++ {
		vj := v.digits[j]
		if vj == 0 {
			continue
		}
		carry := 0
		for i := 0; i < m; i++ {
			acc := out[i+j] + u.digits[i]*vj + carry
			out[i+j] = Mod(acc, r.b)
			carry = Div(acc, r.b)
		}
		k := j + m
		for carry != 0 {
			acc := out[k] + carry
			out[k] = Mod(acc, r.b)
			carry = Div(acc, r.b)
			k++
		}
	}
	return normalizeNat(out)
}

// ShortDivMod divides u by a single digit d in [1, B) in one sweep from
// the most significant digit down.
func (r Radix) ShortDivMod(u NatBig, d int) (NatBig, int) {
	if d <= 0 || d >= r.b {
		panic("bignum: ShortDivMod divisor out of digit range")
	}
	if u.IsZero() {
		return NatBig{}, 0
	}
	out := make([]int, len(u.digits))
	rem := 0
	for i := len(u.digits) - 1; i >= 0; i-- {
		cur := u.digits[i] + r.b*rem
		out[i] = Div(cur, d)
		rem = Mod(cur, d)
	}
	return normalizeNat(out), rem
}

// RadixShift multiplies u by B^k by prepending k zero digits.
func (r Radix) RadixShift(u NatBig, k int) NatBig {
	if u.IsZero() || k == 0 {
		return u
	}
	out := make([]int, len(u.digits)+k)
	copy(out[k:], u.digits)
	return normalizeNat(out)
}

// DivMod performs Knuth Algorithm D long division, returning (quotient,
// remainder), both canonical. Precondition: v is non-zero.
func (r Radix) DivMod(u, v NatBig) (NatBig, NatBig) {
	if v.IsZero() {
		panic("bignum: DivMod by zero")
	}
	if r.CompareNat(u, v) < 0 {
		return NatBig{}, u
	}
	if len(v.digits) == 1 {
		q, rem := r.ShortDivMod(u, v.digits[0])
		return q, r.natFromDigit(rem)
	}

	d := Div(r.b, v.digits[len(v.digits)-1]+1)
	un := r.MultNat(u, r.natFromDigit(d))
	vn := r.MultNat(v, r.natFromDigit(d))

	n := len(vn.digits)
	ud := make([]int, len(un.digits)+1)
	copy(ud, un.digits)
	if len(ud) < n+1 {
		padded := make([]int, n+1)
		copy(padded, ud)
		ud = padded
	}
	m := len(ud) - n

	qdigits := make([]int, m)
	vTop := vn.digits[n-1]
	vSecond := vn.digits[n-2] // n >= 2 is guaranteed: n == 1 returns via ShortDivMod above

	for j := m - 1; j >= 0; j-- {
		// Partial dividend is ud[j : j+n+1], most significant at j+n.
		top2 := ud[j+n]*r.b + ud[j+n-1]
		qhat := Div(top2, vTop)
		if qhat > r.b-1 {
			qhat = r.b - 1
		}
		rhat := top2 - qhat*vTop
		for rhat < r.b && qhat*vSecond > rhat*r.b+ud[j+n-2] {
			qhat--
			rhat += vTop
		}

		// Subtract qhat*vn (shifted by j) from ud[j:j+n+1].
		borrow := 0
		carry := 0
		for i := 0; i < n; i++ {
			p := qhat*vn.digits[i] + carry
			carry = Div(p, r.b)
			sub := ud[j+i] - Mod(p, r.b) - borrow
			if sub < 0 {
				sub += r.b
				borrow = 1
			} else {
				borrow = 0
			}
			ud[j+i] = sub
		}
		sub := ud[j+n] - carry - borrow
		addBack := false
		if sub < 0 {
			sub += r.b
			addBack = true
		}
		ud[j+n] = sub

		if addBack {
			qhat--
			carry = 0
			for i := 0; i < n; i++ {
				s := ud[j+i] + vn.digits[i] + carry
				ud[j+i] = Mod(s, r.b)
				carry = Div(s, r.b)
			}
			ud[j+n] = Mod(ud[j+n]+carry, r.b)
		}
		qdigits[j] = qhat
	}

	q := normalizeNat(qdigits)
	remNorm := normalizeNat(ud[:n])
	rem, _ := r.ShortDivMod(remNorm, d)
	return q, rem
}

func (r Radix) natFromDigit(d int) NatBig {
	if d == 0 {
		return NatBig{}
	}
	return NatBig{digits: []int{d}}
}

// GCDNat computes gcd(u, v) by the Euclidean algorithm; input ordering is
// unrestricted and gcd(u, 0) = u.
func (r Radix) GCDNat(u, v NatBig) NatBig {
	for !v.IsZero() {
		_, rem := r.DivMod(u, v)
		u, v = v, rem
	}
	return u
}

// DebugRender prints the digit count and delimited digits in radix-B
// form, e.g. "#3||5|432|17" for a 3-digit number in radix 1000
// (spec.md §6.2).
func (r Radix) DebugRender(n NatBig) string {
	var sb strings.Builder
	sb.WriteByte('#')
	sb.WriteString(itoa(n.Len()))
	sb.WriteByte('|')
	for i := len(n.digits) - 1; i >= 0; i-- {
		sb.WriteByte('|')
		sb.WriteString(itoa(n.digits[i]))
	}
	return sb.String()
}
