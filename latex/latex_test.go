package latex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anbrusi/nanocas/config"
	"github.com/anbrusi/nanocas/latex"
	"github.com/anbrusi/nanocas/multinode"
	"github.com/anbrusi/nanocas/parse"
)

func emitSrc(t *testing.T, src string) string {
	t.Helper()
	node, _, err := parse.Parse(src, config.New(1000))
	require.NoError(t, err)
	return latex.Emit(node)
}

func TestSimpleAdditionNeedsNoParens(t *testing.T) {
	assert.Equal(t, "a+b", emitSrc(t, "a+b"))
}

func TestSubtractionOfASumNeedsParens(t *testing.T) {
	assert.Equal(t, "a-\\left(b+c\\right)", emitSrc(t, "a-(b+c)"))
}

func TestAdditionOfASumOnTheRightIsWrapped(t *testing.T) {
	// A "+" node as the right addend keeps its parentheses, so the
	// rendering shows the tree's grouping.
	assert.Equal(t, "a+\\left(b+c\\right)", emitSrc(t, "a+(b+c)"))
}

func TestAdditionOfADifferenceDoesNotNeedParens(t *testing.T) {
	assert.Equal(t, "a+b-c", emitSrc(t, "a+(b-c)"))
}

func TestSubtractionOfADifferenceNeedsParens(t *testing.T) {
	assert.Equal(t, "a-\\left(b-c\\right)", emitSrc(t, "a-(b-c)"))
}

func TestMultiplicandThatIsASumIsWrapped(t *testing.T) {
	assert.Equal(t, "\\left(a+b\\right)\\cdot c", emitSrc(t, "(a+b)*c"))
}

func TestMultiplicatorThatIsASumIsWrapped(t *testing.T) {
	assert.Equal(t, "a\\cdot \\left(b+c\\right)", emitSrc(t, "a*(b+c)"))
}

func TestImplicitMultiplicationHasNoOperator(t *testing.T) {
	cfg := config.New(1000)
	cfg.SetVariableMode(config.OneChar)
	node, _, err := parse.Parse("2x", cfg)
	require.NoError(t, err)
	assert.Equal(t, "2x", latex.Emit(node))
}

func TestDivisionRendersAsFraction(t *testing.T) {
	assert.Equal(t, "\\frac{a}{b}", emitSrc(t, "a/b"))
}

func TestDivisionOperandsAreNeverWrapped(t *testing.T) {
	// The fraction bar already disambiguates; no extra parens even
	// though the numerator is a sum.
	assert.Equal(t, "\\frac{a+b}{c}", emitSrc(t, "(a+b)/c"))
}

func TestPowerBaseThatIsAnExpressionIsWrapped(t *testing.T) {
	assert.Equal(t, "\\left(a+b\\right)^{2}", emitSrc(t, "(a+b)^2"))
}

func TestPowerBaseThatIsAVariableIsBare(t *testing.T) {
	assert.Equal(t, "a^{2}", emitSrc(t, "a^2"))
}

func TestPowerBaseThatIsAFunctionIsBare(t *testing.T) {
	assert.Equal(t, "\\sin\\left(x\\right)^{2}", emitSrc(t, "SIN(x)^2"))
}

func TestUnaryMinusOfASumIsWrapped(t *testing.T) {
	assert.Equal(t, "-\\left(a+b\\right)", emitSrc(t, "-(a+b)"))
}

func TestSqrtHasNoOuterParens(t *testing.T) {
	assert.Equal(t, "\\sqrt{x}", emitSrc(t, "SQRT(x)"))
}

func TestAbsUsesBars(t *testing.T) {
	assert.Equal(t, "\\left|x\\right|", emitSrc(t, "ABS(x)"))
}

func TestFunctionNames(t *testing.T) {
	assert.Equal(t, "\\arcsin\\left(x\\right)", emitSrc(t, "ASIN(x)"))
	assert.Equal(t, "\\ln\\left(x\\right)", emitSrc(t, "LN(x)"))
	assert.Equal(t, "\\lg\\left(x\\right)", emitSrc(t, "LOG(x)"))
	assert.Equal(t, "\\exp\\left(x\\right)", emitSrc(t, "EXP(x)"))
}

func TestMathConstants(t *testing.T) {
	assert.Equal(t, "\\mathrm{e}+\\pi", emitSrc(t, "E+PI"))
}

func TestCompareSymbols(t *testing.T) {
	assert.Equal(t, "a\\geq b", emitSrc(t, "a>=b"))
	assert.Equal(t, "a\\neq b", emitSrc(t, "a<>b"))
}

func TestAndOfAnOrIsWrappedOnBothSides(t *testing.T) {
	assert.Equal(t, "\\left(a \\vee b\\right) \\wedge \\left(c \\vee d\\right)", emitSrc(t, "[a|b]&[c|d]"))
}

func TestOrOfAnOrOnTheRightIsWrapped(t *testing.T) {
	assert.Equal(t, "a \\vee \\left(b \\vee c\\right)", emitSrc(t, "a|[b|c]"))
}

func TestExprMultiRendersAsBracketedSignedList(t *testing.T) {
	node, _, err := parse.Parse("a+b-c", config.New(1000))
	require.NoError(t, err)
	multi, err := multinode.ToMultinode(node)
	require.NoError(t, err)
	assert.Equal(t, "\\left[a+b-c\\right]", latex.Emit(multi))
}

func TestTermMultiRendersAsCdotFraction(t *testing.T) {
	node, _, err := parse.Parse("a*b/c", config.New(1000))
	require.NoError(t, err)
	multi, err := multinode.ToMultinode(node)
	require.NoError(t, err)
	assert.Equal(t, "\\frac{a\\cdot b}{c}", latex.Emit(multi))
}

func TestTermMultiWithNoDenominatorOmitsFraction(t *testing.T) {
	node, _, err := parse.Parse("a*b*c", config.New(1000))
	require.NoError(t, err)
	multi, err := multinode.ToMultinode(node)
	require.NoError(t, err)
	assert.Equal(t, "a\\cdot b\\cdot c", latex.Emit(multi))
}
