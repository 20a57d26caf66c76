package multinode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anbrusi/nanocas/ast"
	"github.com/anbrusi/nanocas/config"
	"github.com/anbrusi/nanocas/eval"
	"github.com/anbrusi/nanocas/multinode"
	"github.com/anbrusi/nanocas/parse"
)

func parseNode(t *testing.T, src string) ast.Node {
	t.Helper()
	node, _, err := parse.Parse(src, config.New(1000))
	require.NoError(t, err)
	return node
}

func TestBuildCollapsesAdditiveChainWithSignFlips(t *testing.T) {
	node := parseNode(t, "a+b-c")
	multi, err := multinode.ToMultinode(node)
	require.NoError(t, err)
	em, ok := multi.(*ast.ExprMulti)
	require.True(t, ok)
	require.Len(t, em.Children, 3)
	assert.Equal(t, ast.Plus, em.Children[0].HolderSign)
	assert.Equal(t, ast.Plus, em.Children[1].HolderSign)
	assert.Equal(t, ast.Minus, em.Children[2].HolderSign)
}

func TestSubtractionFlipsEverythingInRightSubtree(t *testing.T) {
	// a-(b+c) parses with the parenthesized sum as the right operand of
	// "-"; both b and c must come out minus-signed.
	node := parseNode(t, "a-(b+c)")
	multi, err := multinode.ToMultinode(node)
	require.NoError(t, err)
	em, ok := multi.(*ast.ExprMulti)
	require.True(t, ok)
	require.Len(t, em.Children, 3)
	assert.Equal(t, ast.Plus, em.Children[0].HolderSign)
	assert.Equal(t, ast.Minus, em.Children[1].HolderSign)
	assert.Equal(t, ast.Minus, em.Children[2].HolderSign)
}

func TestLeadingUnaryMinusUnwrapsIntoMinusHolder(t *testing.T) {
	node := parseNode(t, "-a+b")
	multi, err := multinode.ToMultinode(node)
	require.NoError(t, err)
	em, ok := multi.(*ast.ExprMulti)
	require.True(t, ok)
	require.Len(t, em.Children, 2)
	assert.Equal(t, ast.Minus, em.Children[0].HolderSign)
	_, isVar := em.Children[0].Child.(*ast.Variable)
	assert.True(t, isVar)
}

func TestSingleLeafChainIsNotWrapped(t *testing.T) {
	node := parseNode(t, "a")
	multi, err := multinode.ToMultinode(node)
	require.NoError(t, err)
	_, isVar := multi.(*ast.Variable)
	assert.True(t, isVar)
}

func TestBuildCollapsesMultiplicativeChainWithRoleFlips(t *testing.T) {
	node := parseNode(t, "a*b/c")
	multi, err := multinode.ToMultinode(node)
	require.NoError(t, err)
	tm, ok := multi.(*ast.TermMulti)
	require.True(t, ok)
	require.Len(t, tm.Children, 3)
	assert.Equal(t, ast.Numerator, tm.Children[0].HolderRole)
	assert.Equal(t, ast.Numerator, tm.Children[1].HolderRole)
	assert.Equal(t, ast.Denominator, tm.Children[2].HolderRole)
}

func TestPowerOperandsAreNotAbsorbedIntoTheOuterChain(t *testing.T) {
	node := parseNode(t, "a*b^2")
	multi, err := multinode.ToMultinode(node)
	require.NoError(t, err)
	tm, ok := multi.(*ast.TermMulti)
	require.True(t, ok)
	require.Len(t, tm.Children, 2)
	_, isPow := tm.Children[1].Child.(*ast.BinOp)
	assert.True(t, isPow)
}

func TestRoundTripPreservesNumericValue(t *testing.T) {
	cfg := config.New(1000)
	srcs := []string{"a+b-c", "a*b/c", "-a+b*c", "(a+b)*(c-a)", "a^2+b", "a-(b-c)"}
	bindings := eval.Bindings{"a": 3.0, "b": 5.0, "c": 7.0}
	for _, src := range srcs {
		node, _, err := parse.Parse(src, cfg)
		require.NoError(t, err)
		want, err := eval.Eval(node, bindings, cfg)
		require.NoError(t, err)

		multi, err := multinode.ToMultinode(node)
		require.NoError(t, err)
		back, err := multinode.FromMultinode(multi)
		require.NoError(t, err)
		got, err := eval.Eval(back, bindings, cfg)
		require.NoError(t, err, "round trip of %q", src)
		assert.InDelta(t, want.Num, got.Num, 1e-9, "round trip of %q", src)
	}
}

func TestReverseOrdersNumbersConstantsThenVariables(t *testing.T) {
	cfg := config.New(1000)
	node, _, err := parse.Parse("a*2*E*b", cfg)
	require.NoError(t, err)
	multi, err := multinode.ToMultinode(node)
	require.NoError(t, err)
	back, err := multinode.FromMultinode(multi)
	require.NoError(t, err)

	// Walk the left-leaning × chain and collect the leaf order.
	var order []ast.Node
	var walk func(ast.Node)
	walk = func(n ast.Node) {
		if bin, ok := n.(*ast.BinOp); ok && bin.Op == ast.OpMul {
			walk(bin.Left)
			walk(bin.Right)
			return
		}
		order = append(order, n)
	}
	walk(back)
	require.Len(t, order, 4)
	_, isNum := order[0].(*ast.Number)
	_, isConst := order[1].(*ast.MathConst)
	_, isVarA := order[2].(*ast.Variable)
	_, isVarB := order[3].(*ast.Variable)
	assert.True(t, isNum)
	assert.True(t, isConst)
	assert.True(t, isVarA)
	assert.True(t, isVarB)
}

func TestFromMultinodeOnNilIsAnError(t *testing.T) {
	_, err := multinode.FromMultinode(nil)
	require.Error(t, err)
}

func TestToMultinodeOnNilIsAnError(t *testing.T) {
	_, err := multinode.ToMultinode(nil)
	require.Error(t, err)
}
