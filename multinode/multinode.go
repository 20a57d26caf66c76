// Package multinode converts between the parser's strictly binary AST
// and the "multinode" form that collapses a contiguous chain of
// commutative operators ({+,-} or {*, implicit-*, /}) into one
// variable-arity node (spec.md §4.8). The transform itself has no
// counterpart in the teacher: it is grounded in the spec's own
// recursive definition, expressed with the same recursive type-switch
// dispatch idiom already used by ast.Dump and eval.evalNumeric
// elsewhere in this tree.
package multinode

import (
	"sort"
	"strconv"

	"github.com/anbrusi/nanocas/ast"
	"github.com/anbrusi/nanocas/caserr"
)

// ToMultinode collapses every contiguous additive and multiplicative
// chain in root into ExprMulti/TermMulti nodes.
func ToMultinode(root ast.Node) (ast.Node, error) {
	if root == nil {
		return nil, caserr.New(caserr.NoParseTree, "cannot build a multinode tree from a nil AST")
	}
	return build(root), nil
}

// FromMultinode reconstructs a strictly binary tree from a (possibly
// partially) multinode tree, applying the deterministic child ordering
// of spec.md §4.8 when re-folding a TermMulti.
func FromMultinode(root ast.Node) (ast.Node, error) {
	if root == nil {
		return nil, caserr.New(caserr.EmptyMultinodeTree, "cannot rebuild a binary tree from a nil multinode tree")
	}
	return rebuild(root), nil
}

// build is the general forward-transform dispatcher: an additive or
// multiplicative BinOp triggers chain collection, everything else just
// recurses into its children.
func build(node ast.Node) ast.Node {
	switch n := node.(type) {
	case *ast.BinOp:
		switch {
		case n.Op.IsAdditive():
			return buildExpr(node)
		case n.Op.IsMultiplicative():
			return buildTerm(node)
		default: // ast.OpPow: exponent and base recurse independently
			return ast.NewBinOp(n.Pos(), n.Op, build(n.Left), build(n.Right))
		}
	case *ast.UnaryMinus:
		return ast.NewUnaryMinus(n.Pos(), build(n.Child))
	case *ast.Funct:
		return ast.NewFunct(n.Pos(), n.Which, build(n.Child))
	case *ast.CompareOp:
		return ast.NewCompareOp(n.Pos(), n.Op, build(n.Left), build(n.Right))
	case *ast.BoolOp:
		return ast.NewBoolOp(n.Pos(), n.Op, build(n.Left), build(n.Right))
	default: // Number, Variable, MathConst
		return node
	}
}

// buildExpr collapses the additive chain rooted at node into an
// ExprMulti, or returns the single collected term unwrapped if the
// chain only had one leaf (spec.md §4.8).
func buildExpr(node ast.Node) ast.Node {
	holders := collectTerms(node, ast.Plus)
	if len(holders) == 1 {
		h := holders[0]
		if h.HolderSign == ast.Minus {
			return ast.NewUnaryMinus(node.Pos(), h.Child)
		}
		return h.Child
	}
	return ast.NewExprMulti(node.Pos(), holders)
}

// collectTerms walks the contiguous top-level +/- chain, threading sign
// flips across subtraction and unwrapping a leaf UnaryMinus into a
// −-signed holder (spec.md §4.8).
func collectTerms(node ast.Node, sign ast.Sign) []*ast.ExprHolder {
	if bin, ok := node.(*ast.BinOp); ok {
		switch bin.Op {
		case ast.OpAdd:
			return append(collectTerms(bin.Left, sign), collectTerms(bin.Right, sign)...)
		case ast.OpSub:
			return append(collectTerms(bin.Left, sign), collectTerms(bin.Right, sign.Flip())...)
		}
	}
	if um, ok := node.(*ast.UnaryMinus); ok {
		return collectTerms(um.Child, sign.Flip())
	}
	return []*ast.ExprHolder{ast.NewExprHolder(node.Pos(), sign, build(node))}
}

// buildTerm collapses the multiplicative chain rooted at node into a
// TermMulti, or returns the single collected factor unwrapped if the
// chain only had one leaf (spec.md §4.8).
func buildTerm(node ast.Node) ast.Node {
	holders := collectFactors(node, ast.Numerator)
	if len(holders) == 1 {
		return holders[0].Child
	}
	return ast.NewTermMulti(node.Pos(), holders)
}

// collectFactors walks the contiguous top-level */÷ chain, flipping the
// numerator/denominator role of everything to the right of a division
// (spec.md §4.8).
func collectFactors(node ast.Node, role ast.Role) []*ast.TermHolder {
	if bin, ok := node.(*ast.BinOp); ok {
		switch bin.Op {
		case ast.OpMul, ast.OpImplicitMul:
			return append(collectFactors(bin.Left, role), collectFactors(bin.Right, role)...)
		case ast.OpDiv:
			return append(collectFactors(bin.Left, role), collectFactors(bin.Right, role.Flip())...)
		}
	}
	return []*ast.TermHolder{ast.NewTermHolder(node.Pos(), role, build(node))}
}

// rebuild is the general reverse-transform dispatcher.
func rebuild(node ast.Node) ast.Node {
	switch n := node.(type) {
	case *ast.ExprMulti:
		return rebuildExpr(n)
	case *ast.TermMulti:
		return rebuildTerm(n)
	case *ast.BinOp:
		return ast.NewBinOp(n.Pos(), n.Op, rebuild(n.Left), rebuild(n.Right))
	case *ast.UnaryMinus:
		return ast.NewUnaryMinus(n.Pos(), rebuild(n.Child))
	case *ast.Funct:
		return ast.NewFunct(n.Pos(), n.Which, rebuild(n.Child))
	case *ast.CompareOp:
		return ast.NewCompareOp(n.Pos(), n.Op, rebuild(n.Left), rebuild(n.Right))
	case *ast.BoolOp:
		return ast.NewBoolOp(n.Pos(), n.Op, rebuild(n.Left), rebuild(n.Right))
	default: // Number, Variable, MathConst
		return node
	}
}

// rebuildExpr folds an ExprMulti's children left-to-right in their
// existing order: a leading unary minus on the first child if it is
// −-signed, then a +/- BinOp per subsequent child (spec.md §4.8).
func rebuildExpr(n *ast.ExprMulti) ast.Node {
	var result ast.Node
	for i, h := range n.Children {
		child := rebuild(h.Child)
		if i == 0 {
			if h.HolderSign == ast.Minus {
				result = ast.NewUnaryMinus(h.Pos(), child)
			} else {
				result = child
			}
			continue
		}
		op := ast.OpAdd
		if h.HolderSign == ast.Minus {
			op = ast.OpSub
		}
		result = ast.NewBinOp(h.Pos(), op, result, child)
	}
	return result
}

// termCategory ranks a TermMulti child for the canonical ordering of
// spec.md §4.8: Numbers, then MathConsts, then Variables, then anything
// else, each group otherwise kept in its original relative order.
func termCategory(n ast.Node) int {
	switch n.(type) {
	case *ast.Number:
		return 0
	case *ast.MathConst:
		return 1
	case *ast.Variable:
		return 2
	default:
		return 3
	}
}

// rebuildTerm sorts a TermMulti's children per spec.md §4.8 (numerator
// before denominator; within a role, Numbers ascending by value, then
// MathConsts, then Variables ascending by first code point, then
// original order), then left-folds each role into its own × chain,
// finally wrapping as ÷ if a denominator exists.
func rebuildTerm(n *ast.TermMulti) ast.Node {
	children := make([]*ast.TermHolder, len(n.Children))
	copy(children, n.Children)

	sort.SliceStable(children, func(i, j int) bool {
		hi, hj := children[i], children[j]
		if hi.HolderRole != hj.HolderRole {
			return hi.HolderRole == ast.Numerator
		}
		ci, cj := termCategory(hi.Child), termCategory(hj.Child)
		if ci != cj {
			return ci < cj
		}
		switch ci {
		case 0:
			vi, _ := strconv.ParseFloat(hi.Child.(*ast.Number).Value, 64)
			vj, _ := strconv.ParseFloat(hj.Child.(*ast.Number).Value, 64)
			return vi < vj
		case 2:
			ni, nj := hi.Child.(*ast.Variable).Name, hj.Child.(*ast.Variable).Name
			if ni == "" || nj == "" {
				return false
			}
			return ni[0] < nj[0]
		default:
			return false
		}
	})

	var numNodes, denNodes []ast.Node
	for _, h := range children {
		child := rebuild(h.Child)
		if h.HolderRole == ast.Numerator {
			numNodes = append(numNodes, child)
		} else {
			denNodes = append(denNodes, child)
		}
	}

	numResult := foldMul(numNodes, n.Pos())
	if numResult == nil {
		numResult = ast.NewNumber(ast.NoPos, "1")
	}
	if len(denNodes) == 0 {
		return numResult
	}
	return ast.NewBinOp(n.Pos(), ast.OpDiv, numResult, foldMul(denNodes, n.Pos()))
}

func foldMul(nodes []ast.Node, pos int) ast.Node {
	if len(nodes) == 0 {
		return nil
	}
	result := nodes[0]
	for _, c := range nodes[1:] {
		result = ast.NewBinOp(pos, ast.OpMul, result, c)
	}
	return result
}
