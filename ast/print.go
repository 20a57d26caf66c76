package ast

import "fmt"

// Dump renders a human-readable parenthesized form of n, grounded on
// ivy's parse.Tree (parse/parse.go) which serves the same debugging
// purpose for ivy's expression trees. It is not meant to be parsed back;
// see package latex for the user-facing renderer.
func Dump(n Node) string {
	switch t := n.(type) {
	case nil:
		return "<nil>"
	case *Number:
		return t.Value
	case *Variable:
		return t.Name
	case *MathConst:
		return t.Which.String()
	case *UnaryMinus:
		return fmt.Sprintf("(- %s)", Dump(t.Child))
	case *BinOp:
		return fmt.Sprintf("(%s %s %s)", t.Op, Dump(t.Left), Dump(t.Right))
	case *CompareOp:
		return fmt.Sprintf("(%s %s %s)", t.Op, Dump(t.Left), Dump(t.Right))
	case *BoolOp:
		return fmt.Sprintf("(%s %s %s)", t.Op, Dump(t.Left), Dump(t.Right))
	case *Funct:
		return fmt.Sprintf("(%s %s)", t.Which, Dump(t.Child))
	case *ExprHolder:
		return fmt.Sprintf("%s%s", t.HolderSign, Dump(t.Child))
	case *ExprMulti:
		s := "<expr"
		for _, c := range t.Children {
			s += " " + Dump(c)
		}
		return s + ">"
	case *TermHolder:
		return fmt.Sprintf("%s:%s", t.HolderRole, Dump(t.Child))
	case *TermMulti:
		s := "<term"
		for _, c := range t.Children {
			s += " " + Dump(c)
		}
		return s + ">"
	default:
		return fmt.Sprintf("<?%T>", t)
	}
}
