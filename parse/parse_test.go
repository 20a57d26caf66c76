package parse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anbrusi/nanocas/ast"
	"github.com/anbrusi/nanocas/config"
	"github.com/anbrusi/nanocas/parse"
)

func mustParse(t *testing.T, src string) (ast.Node, []string) {
	t.Helper()
	cfg := config.New(1000)
	node, vars, err := parse.Parse(src, cfg)
	require.NoError(t, err, "parsing %q", src)
	return node, vars
}

func TestPowerIsRightAssociative(t *testing.T) {
	// 2^3^2 must parse as 2^(3^2), matching spec scenario 512 = 2^9.
	node, _ := mustParse(t, "2^3^2")
	top, ok := node.(*ast.BinOp)
	require.True(t, ok)
	assert.Equal(t, ast.OpPow, top.Op)
	left, ok := top.Left.(*ast.Number)
	require.True(t, ok)
	assert.Equal(t, "2", left.Value)
	right, ok := top.Right.(*ast.BinOp)
	require.True(t, ok)
	assert.Equal(t, ast.OpPow, right.Op)
}

func TestUnaryMinusBindsLooserThanPower(t *testing.T) {
	// -3^2 must wrap the whole term 3^2, i.e. -(3^2), giving -9 not (-3)^2.
	node, _ := mustParse(t, "-3^2")
	um, ok := node.(*ast.UnaryMinus)
	require.True(t, ok)
	pow, ok := um.Child.(*ast.BinOp)
	require.True(t, ok)
	assert.Equal(t, ast.OpPow, pow.Op)
}

func TestAdditionIsLeftAssociative(t *testing.T) {
	node, _ := mustParse(t, "1-2-3")
	top, ok := node.(*ast.BinOp)
	require.True(t, ok)
	assert.Equal(t, ast.OpSub, top.Op)
	left, ok := top.Left.(*ast.BinOp)
	require.True(t, ok)
	assert.Equal(t, ast.OpSub, left.Op)
}

func TestVariablesAreCollectedAndSorted(t *testing.T) {
	_, vars := mustParse(t, "z+a*y-b")
	assert.Equal(t, []string{"a", "b", "y", "z"}, vars)
}

func TestParenthesesGroupWithoutLeavingAMarkerNode(t *testing.T) {
	node, _ := mustParse(t, "(1+2)*3")
	top, ok := node.(*ast.BinOp)
	require.True(t, ok)
	assert.Equal(t, ast.OpMul, top.Op)
	_, isAdd := top.Left.(*ast.BinOp)
	assert.True(t, isAdd)
}

func TestFunctionCallParsesItsArgument(t *testing.T) {
	node, _ := mustParse(t, "SQRT(x+1)")
	fn, ok := node.(*ast.Funct)
	require.True(t, ok)
	assert.Equal(t, ast.FnSqrt, fn.Which)
	_, isAdd := fn.Child.(*ast.BinOp)
	assert.True(t, isAdd)
}

func TestCompareProducesCompareOp(t *testing.T) {
	node, _ := mustParse(t, "x>=1")
	cmp, ok := node.(*ast.CompareOp)
	require.True(t, ok)
	assert.Equal(t, ast.CmpGe, cmp.Op)
}

func TestBoolConnectivesAndBracketGrouping(t *testing.T) {
	node, _ := mustParse(t, "[x>1&y<2]|x=0")
	top, ok := node.(*ast.BoolOp)
	require.True(t, ok)
	assert.Equal(t, ast.BoolOr, top.Op)
	inner, ok := top.Left.(*ast.BoolOp)
	require.True(t, ok)
	assert.Equal(t, ast.BoolAnd, inner.Op)
}

func TestMissingClosingParenIsAnError(t *testing.T) {
	cfg := config.New(1000)
	_, _, err := parse.Parse("(1+2", cfg)
	require.Error(t, err)
}

func TestMissingClosingBracketIsAnError(t *testing.T) {
	cfg := config.New(1000)
	_, _, err := parse.Parse("[x>1", cfg)
	require.Error(t, err)
}

func TestTrailingGarbageIsAnError(t *testing.T) {
	cfg := config.New(1000)
	_, _, err := parse.Parse("1+2)", cfg)
	require.Error(t, err)
}

func TestFunctionWithoutParenIsAnError(t *testing.T) {
	cfg := config.New(1000)
	_, _, err := parse.Parse("SQRT x", cfg)
	require.Error(t, err)
}

func TestImplicitMultiplicationParsesAsBinOp(t *testing.T) {
	cfg := config.New(1000)
	cfg.SetVariableMode(config.OneChar)
	node, vars, err := parse.Parse("2x", cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, vars)
	bin, ok := node.(*ast.BinOp)
	require.True(t, ok)
	assert.Equal(t, ast.OpImplicitMul, bin.Op)
}
