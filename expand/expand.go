// Package expand implements distributive expansion over a multinode
// tree (spec.md §4.9): products of sums are multiplied out, exponents
// are never touched. Like package multinode, this algorithm has no
// direct teacher counterpart; it follows spec.md's recursive definition
// using the same dispatcher idiom as the rest of this tree.
package expand

import (
	"fmt"

	"github.com/anbrusi/nanocas/ast"
	"github.com/anbrusi/nanocas/config"
)

// Expand expands n (returning a new tree; n is not mutated) per spec.md
// §4.9. Only multiplication distributes over addition; exponents are
// left untouched, e.g. (a+b)^2 is returned unchanged. With cfg's
// "expand" debug flag set it prints the tree before and after, mirroring
// ivy's parse.Debug("parse") trace of the tree it just built.
func Expand(n ast.Node, cfg *config.Config) ast.Node {
	out := expandNode(n)
	if cfg.Debug("expand") {
		fmt.Printf("expand: %s -> %s\n", ast.Dump(n), ast.Dump(out))
	}
	return out
}

func expandNode(n ast.Node) ast.Node {
	switch node := n.(type) {
	case *ast.TermMulti:
		return expandTerm(node)
	case *ast.ExprMulti:
		return expandExprMulti(node)
	case *ast.Funct:
		return ast.NewFunct(node.Pos(), node.Which, expandNode(node.Child))
	default:
		return n
	}
}

// expandTerm expands a TermMulti's numerator and denominator chains
// independently, left-folding each with distributiveProduct, then
// drops the denominator entirely if it reduced to the constant 1.
func expandTerm(node *ast.TermMulti) ast.Node {
	var numFactors, denFactors []ast.Node
	for _, h := range node.Children {
		expanded := expandNode(h.Child)
		if h.HolderRole == ast.Numerator {
			numFactors = append(numFactors, expanded)
		} else {
			denFactors = append(denFactors, expanded)
		}
	}

	num := foldDistributive(numFactors)
	if len(denFactors) == 0 {
		return num
	}
	den := foldDistributive(denFactors)
	if isConstantOne(den) {
		return num
	}
	return ast.NewTermMulti(node.Pos(), []*ast.TermHolder{
		ast.NewTermHolder(ast.NoPos, ast.Numerator, num),
		ast.NewTermHolder(ast.NoPos, ast.Denominator, den),
	})
}

func isConstantOne(n ast.Node) bool {
	num, ok := n.(*ast.Number)
	return ok && num.Value == "1"
}

func foldDistributive(factors []ast.Node) ast.Node {
	if len(factors) == 0 {
		return ast.NewNumber(ast.NoPos, "1")
	}
	result := factors[0]
	for _, f := range factors[1:] {
		result = distributiveProduct(result, f)
	}
	return result
}

// expandExprMulti expands each summand; a summand that expands to
// another ExprMulti is spliced into the parent, flipping the spliced
// children's signs when the parent holder itself was minus-signed
// (spec.md §4.9).
func expandExprMulti(node *ast.ExprMulti) ast.Node {
	var out []*ast.ExprHolder
	for _, h := range node.Children {
		expanded := expandNode(h.Child)
		if inner, ok := expanded.(*ast.ExprMulti); ok {
			for _, innerHolder := range inner.Children {
				sign := innerHolder.HolderSign
				if h.HolderSign == ast.Minus {
					sign = sign.Flip()
				}
				out = append(out, ast.NewExprHolder(innerHolder.Pos(), sign, innerHolder.Child))
			}
			continue
		}
		out = append(out, ast.NewExprHolder(h.Pos(), h.HolderSign, expanded))
	}
	if len(out) == 1 {
		if out[0].HolderSign == ast.Minus {
			return ast.NewUnaryMinus(node.Pos(), out[0].Child)
		}
		return out[0].Child
	}
	return ast.NewExprMulti(node.Pos(), out)
}

// simpleProduct builds a TermMulti concatenating the numerator-sided
// children of n1 and n2, wrapping a non-TermMulti operand as a
// singleton numerator holder. Neither operand may be an ExprMulti
// (spec.md §4.9).
func simpleProduct(n1, n2 ast.Node) ast.Node {
	children := append(numeratorHolders(n1), numeratorHolders(n2)...)
	if len(children) == 1 {
		return children[0].Child
	}
	return ast.NewTermMulti(ast.NoPos, children)
}

func numeratorHolders(n ast.Node) []*ast.TermHolder {
	if tm, ok := n.(*ast.TermMulti); ok {
		out := make([]*ast.TermHolder, len(tm.Children))
		copy(out, tm.Children)
		return out
	}
	return []*ast.TermHolder{ast.NewTermHolder(n.Pos(), ast.Numerator, n)}
}

// distributiveProduct multiplies n1 by n2, distributing over addition
// when either operand is an ExprMulti (spec.md §4.9).
func distributiveProduct(n1, n2 ast.Node) ast.Node {
	e1, ok1 := n1.(*ast.ExprMulti)
	e2, ok2 := n2.(*ast.ExprMulti)

	switch {
	case ok1 && ok2:
		var out []*ast.ExprHolder
		for _, s1 := range e1.Children {
			for _, s2 := range e2.Children {
				sign := ast.Plus
				if s1.HolderSign != s2.HolderSign {
					sign = ast.Minus
				}
				out = append(out, ast.NewExprHolder(ast.NoPos, sign, simpleProduct(s1.Child, s2.Child)))
			}
		}
		return ast.NewExprMulti(ast.NoPos, out)
	case ok1:
		var out []*ast.ExprHolder
		for _, s1 := range e1.Children {
			out = append(out, ast.NewExprHolder(ast.NoPos, s1.HolderSign, simpleProduct(s1.Child, n2)))
		}
		return ast.NewExprMulti(ast.NoPos, out)
	case ok2:
		var out []*ast.ExprHolder
		for _, s2 := range e2.Children {
			out = append(out, ast.NewExprHolder(ast.NoPos, s2.HolderSign, simpleProduct(n1, s2.Child)))
		}
		return ast.NewExprMulti(ast.NoPos, out)
	default:
		return simpleProduct(n1, n2)
	}
}
