// Package latex renders a binary or multinode AST as a LaTeX string
// (spec.md §4.10). Grounded on ivy's per-kind String()/Sprint
// rendering convention (value/*.go each implement their own rendering),
// generalized into one recursive Emit dispatching on ast.Node's
// concrete type, with a family of small "does this child need
// \left(…\right)" predicates standing in for ivy's lack of any
// precedence-aware pretty-printer (ivy never re-parenthesizes; APL has
// no operator precedence to restore).
package latex

import (
	"strings"

	"github.com/anbrusi/nanocas/ast"
)

func wrap(s string) string { return "\\left(" + s + "\\right)" }

// effectiveAdditiveOp reports the top-level +/- operator a node would
// present if folded back to binary form: a BinOp's own Op, or an
// ExprMulti's last child's sign (the outermost operation a left-to-right
// re-fold would apply, per spec.md §4.8).
func effectiveAdditiveOp(n ast.Node) (bool, ast.BinOpKind) {
	switch t := n.(type) {
	case *ast.BinOp:
		if t.Op.IsAdditive() {
			return true, t.Op
		}
	case *ast.ExprMulti:
		if len(t.Children) == 0 {
			return false, 0
		}
		last := t.Children[len(t.Children)-1]
		if last.HolderSign == ast.Minus {
			return true, ast.OpSub
		}
		return true, ast.OpAdd
	}
	return false, 0
}

// effectiveMultiplicativeOp is the */÷ analogue of effectiveAdditiveOp:
// a TermMulti folds to ÷ if it has any denominator holder, else to ×.
func effectiveMultiplicativeOp(n ast.Node) (bool, ast.BinOpKind) {
	switch t := n.(type) {
	case *ast.BinOp:
		if t.Op.IsMultiplicative() {
			return true, t.Op
		}
	case *ast.TermMulti:
		for _, h := range t.Children {
			if h.HolderRole == ast.Denominator {
				return true, ast.OpDiv
			}
		}
		return true, ast.OpMul
	}
	return false, 0
}

func isUnaryMinus(n ast.Node) bool {
	_, ok := n.(*ast.UnaryMinus)
	return ok
}

func isOr(n ast.Node) bool {
	b, ok := n.(*ast.BoolOp)
	return ok && b.Op == ast.BoolOr
}

func isAnd(n ast.Node) bool {
	b, ok := n.(*ast.BoolOp)
	return ok && b.Op == ast.BoolAnd
}

func unaryMinusChildNeedsWrap(n ast.Node) bool {
	if ok, _ := effectiveAdditiveOp(n); ok {
		return true
	}
	return isUnaryMinus(n)
}

func addendNeedsWrap(n ast.Node) bool {
	if ok, op := effectiveAdditiveOp(n); ok && op == ast.OpAdd {
		return true
	}
	return isUnaryMinus(n)
}

func subtrahendNeedsWrap(n ast.Node) bool {
	if ok, _ := effectiveAdditiveOp(n); ok {
		return true
	}
	return isUnaryMinus(n)
}

func multiplicandNeedsWrap(n ast.Node) bool {
	ok, _ := effectiveAdditiveOp(n)
	return ok
}

func multiplicatorNeedsWrap(n ast.Node) bool {
	if ok, _ := effectiveAdditiveOp(n); ok {
		return true
	}
	if isUnaryMinus(n) {
		return true
	}
	if ok, op := effectiveMultiplicativeOp(n); ok && (op == ast.OpMul || op == ast.OpImplicitMul) {
		return true
	}
	return false
}

func powerBaseNeedsWrap(n ast.Node) bool {
	switch n.(type) {
	case *ast.MathConst, *ast.Number, *ast.Variable, *ast.Funct:
		return false
	default:
		return true
	}
}

func functionName(k ast.FunctKind) string {
	switch k {
	case ast.FnSin:
		return "\\sin"
	case ast.FnCos:
		return "\\cos"
	case ast.FnTan:
		return "\\tan"
	case ast.FnAsin:
		return "\\arcsin"
	case ast.FnAcos:
		return "\\arccos"
	case ast.FnAtan:
		return "\\arctan"
	case ast.FnExp:
		return "\\exp"
	case ast.FnLn:
		return "\\ln"
	default: // ast.FnLog10
		return "\\lg"
	}
}

func compareSymbol(k ast.CompareOpKind) string {
	switch k {
	case ast.CmpEq:
		return "="
	case ast.CmpGt:
		return ">"
	case ast.CmpGe:
		return "\\geq "
	case ast.CmpLt:
		return "<"
	case ast.CmpLe:
		return "\\leq "
	default: // ast.CmpNe
		return "\\neq "
	}
}

// Emit renders n, which may be a strictly binary tree, a multinode
// tree, or any mix of the two (a multinode tree still contains plain
// BinOp nodes for ^, Funct, CompareOp and BoolOp — spec.md §4.8 only
// collapses +/-/*/÷ chains).
func Emit(n ast.Node) string {
	switch node := n.(type) {
	case *ast.Number:
		return node.Value
	case *ast.Variable:
		return node.Name
	case *ast.MathConst:
		if node.Which == ast.ConstE {
			return "\\mathrm{e}"
		}
		return "\\pi"
	case *ast.UnaryMinus:
		s := Emit(node.Child)
		if unaryMinusChildNeedsWrap(node.Child) {
			s = wrap(s)
		}
		return "-" + s
	case *ast.BinOp:
		return emitBinOp(node)
	case *ast.Funct:
		return emitFunct(node)
	case *ast.CompareOp:
		return Emit(node.Left) + compareSymbol(node.Op) + Emit(node.Right)
	case *ast.BoolOp:
		return emitBoolOp(node)
	case *ast.ExprMulti:
		return emitExprMulti(node)
	case *ast.TermMulti:
		return emitTermMulti(node)
	default:
		return ""
	}
}

func emitBinOp(node *ast.BinOp) string {
	switch node.Op {
	case ast.OpAdd:
		right := Emit(node.Right)
		if addendNeedsWrap(node.Right) {
			right = wrap(right)
		}
		return Emit(node.Left) + "+" + right
	case ast.OpSub:
		right := Emit(node.Right)
		if subtrahendNeedsWrap(node.Right) {
			right = wrap(right)
		}
		return Emit(node.Left) + "-" + right
	case ast.OpMul, ast.OpImplicitMul:
		left := Emit(node.Left)
		if multiplicandNeedsWrap(node.Left) {
			left = wrap(left)
		}
		right := Emit(node.Right)
		if multiplicatorNeedsWrap(node.Right) {
			right = wrap(right)
		}
		sep := "\\cdot "
		if node.Op == ast.OpImplicitMul {
			sep = ""
		}
		return left + sep + right
	case ast.OpDiv:
		return "\\frac{" + Emit(node.Left) + "}{" + Emit(node.Right) + "}"
	default: // ast.OpPow
		base := Emit(node.Left)
		if powerBaseNeedsWrap(node.Left) {
			base = wrap(base)
		}
		return base + "^{" + Emit(node.Right) + "}"
	}
}

func emitFunct(node *ast.Funct) string {
	arg := Emit(node.Child)
	switch node.Which {
	case ast.FnSqrt:
		return "\\sqrt{" + arg + "}"
	case ast.FnAbs:
		return "\\left|" + arg + "\\right|"
	default:
		return functionName(node.Which) + "\\left(" + arg + "\\right)"
	}
}

func emitBoolOp(node *ast.BoolOp) string {
	if node.Op == ast.BoolAnd {
		left := Emit(node.Left)
		if isOr(node.Left) {
			left = wrap(left)
		}
		right := Emit(node.Right)
		if isOr(node.Right) || isAnd(node.Right) {
			right = wrap(right)
		}
		return left + " \\wedge " + right
	}
	left := Emit(node.Left)
	right := Emit(node.Right)
	if isOr(node.Right) {
		right = wrap(right)
	}
	return left + " \\vee " + right
}

// emitExprMulti wraps the signed summand list in \left[…\right],
// reusing the same addend/subtrahend/unary-minus wrap rules a binary
// +/- chain would apply at each position (spec.md §4.10).
func emitExprMulti(node *ast.ExprMulti) string {
	var sb strings.Builder
	sb.WriteString("\\left[")
	for i, h := range node.Children {
		s := Emit(h.Child)
		switch {
		case i == 0 && h.HolderSign == ast.Minus:
			if unaryMinusChildNeedsWrap(h.Child) {
				s = wrap(s)
			}
			sb.WriteString("-")
		case i == 0:
			// bare, no sign to print
		case h.HolderSign == ast.Plus:
			if addendNeedsWrap(h.Child) {
				s = wrap(s)
			}
			sb.WriteString("+")
		default:
			if subtrahendNeedsWrap(h.Child) {
				s = wrap(s)
			}
			sb.WriteString("-")
		}
		sb.WriteString(s)
	}
	sb.WriteString("\\right]")
	return sb.String()
}

// emitTermMulti renders as \frac{…}{…} with \cdot-joined factor lists,
// or just the numerator list when there is no denominator (spec.md
// §4.10). Each factor that is itself a sum or a unary minus is wrapped,
// as the multiplicator wrap rule does for those two cases.
func emitTermMulti(node *ast.TermMulti) string {
	var numParts, denParts []string
	for _, h := range node.Children {
		s := Emit(h.Child)
		if ok, _ := effectiveAdditiveOp(h.Child); ok || isUnaryMinus(h.Child) {
			s = wrap(s)
		}
		if h.HolderRole == ast.Numerator {
			numParts = append(numParts, s)
		} else {
			denParts = append(denParts, s)
		}
	}
	numStr := strings.Join(numParts, "\\cdot ")
	if len(denParts) == 0 {
		return numStr
	}
	return "\\frac{" + numStr + "}{" + strings.Join(denParts, "\\cdot ") + "}"
}
