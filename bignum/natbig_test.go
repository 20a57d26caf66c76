package bignum_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anbrusi/nanocas/bignum"
)

func mustRadix(t *testing.T, b int) bignum.Radix {
	t.Helper()
	r, err := bignum.NewRadix(b)
	require.NoError(t, err)
	return r
}

func TestParseRenderRoundTrip(t *testing.T) {
	r := mustRadix(t, 1000)
	cases := []string{"0", "1", "9", "999", "1000", "12340", "999999999999999999999999"}
	for _, s := range cases {
		n, err := r.ParseNat(s)
		require.NoError(t, err, s)
		assert.Equal(t, s, r.RenderNat(n), "round-trip of %s", s)
	}
}

func TestParseNatStripsLeadingZeros(t *testing.T) {
	r := mustRadix(t, 1000)
	n, err := r.ParseNat("012340")
	require.NoError(t, err)
	assert.Equal(t, 2, n.Len())
	assert.Equal(t, []int{340, 12}, n.Digits())
	assert.Equal(t, "12340", r.RenderNat(n))
}

func TestParseNatRejectsNonDigits(t *testing.T) {
	r := mustRadix(t, 1000)
	_, err := r.ParseNat("12a4")
	require.Error(t, err)
}

func TestAddCommutative(t *testing.T) {
	r := mustRadix(t, 10)
	u, _ := r.ParseNat("123456789012345")
	v, _ := r.ParseNat("98765432109")
	assert.Equal(t, r.RenderNat(r.AddNat(u, v)), r.RenderNat(r.AddNat(v, u)))
}

func TestMultCommutative(t *testing.T) {
	r := mustRadix(t, 10)
	u, _ := r.ParseNat("31415926535")
	v, _ := r.ParseNat("271828")
	assert.Equal(t, r.RenderNat(r.MultNat(u, v)), r.RenderNat(r.MultNat(v, u)))
}

func TestMultKnownProduct(t *testing.T) {
	r := mustRadix(t, 1000)
	u, _ := r.ParseNat("123456789")
	v, _ := r.ParseNat("987654321")
	got := r.RenderNat(r.MultNat(u, v))
	assert.Equal(t, "121932631112635269", got)
}

func TestDivModReconstructs(t *testing.T) {
	r := mustRadix(t, 10)
	cases := [][2]string{
		{"1000000", "7"},
		{"999999999999", "999999"},
		{"123456789012345", "6789"},
		{"5", "7"},
		{"0", "3"},
		{"48", "6"},
	}
	for _, c := range cases {
		u, _ := r.ParseNat(c[0])
		v, _ := r.ParseNat(c[1])
		q, rem := r.DivMod(u, v)
		reconstructed := r.AddNat(r.MultNat(q, v), rem)
		assert.Equal(t, c[0], r.RenderNat(reconstructed), "u=%s v=%s", c[0], c[1])
		assert.True(t, r.CompareNat(rem, v) < 0, "remainder must be < divisor for u=%s v=%s", c[0], c[1])
	}
}

func TestDivModScenario(t *testing.T) {
	r := mustRadix(t, 10)
	u, _ := r.ParseNat("1000000")
	v, _ := r.ParseNat("7")
	q, rem := r.DivMod(u, v)
	assert.Equal(t, "142857", r.RenderNat(q))
	assert.Equal(t, "1", r.RenderNat(rem))
}

func TestDivModDividendSmallerThanDivisor(t *testing.T) {
	r := mustRadix(t, 1000)
	u, _ := r.ParseNat("12")
	v, _ := r.ParseNat("345")
	q, rem := r.DivMod(u, v)
	assert.True(t, q.IsZero())
	assert.Equal(t, "12", r.RenderNat(rem))
}

func TestShortDivModByOne(t *testing.T) {
	r := mustRadix(t, 1000)
	u, _ := r.ParseNat("8675309")
	q, rem := r.ShortDivMod(u, 1)
	assert.Equal(t, r.RenderNat(u), r.RenderNat(q))
	assert.Equal(t, 0, rem)
}

func TestGCD(t *testing.T) {
	r := mustRadix(t, 10)
	u, _ := r.ParseNat("1071")
	v, _ := r.ParseNat("462")
	g := r.GCDNat(u, v)
	assert.Equal(t, "21", r.RenderNat(g))

	zero, _ := r.ParseNat("0")
	x, _ := r.ParseNat("91")
	assert.Equal(t, "91", r.RenderNat(r.GCDNat(x, zero)))

	// g divides both u and v.
	_, rem1 := r.DivMod(u, g)
	_, rem2 := r.DivMod(v, g)
	assert.True(t, rem1.IsZero())
	assert.True(t, rem2.IsZero())
}

func TestSubStripsHighOrderZeros(t *testing.T) {
	r := mustRadix(t, 1000)
	u, _ := r.ParseNat("1000000")
	v, _ := r.ParseNat("999999")
	assert.Equal(t, "1", r.RenderNat(r.SubNat(u, v)))
}

func TestRadixShift(t *testing.T) {
	r := mustRadix(t, 1000)
	u, _ := r.ParseNat("42")
	shifted := r.RadixShift(u, 2)
	assert.Equal(t, "42000000", r.RenderNat(shifted))
}

func TestDebugRender(t *testing.T) {
	r := mustRadix(t, 1000)
	n, _ := r.ParseNat("17432")
	assert.Equal(t, "#2||17|432", r.DebugRender(n))
}

func TestNewRadixRejectsNonPowerOfTen(t *testing.T) {
	_, err := bignum.NewRadix(999)
	require.Error(t, err)
	_, err = bignum.NewRadix(7)
	require.Error(t, err)
}
