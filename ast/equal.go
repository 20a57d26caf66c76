package ast

// Equal reports whether a and b have the same shape and content,
// ignoring source position. Transforms (MultinodeBuilder, Expander)
// return freshly built trees with synthetic positions, so structural
// comparison in tests has to ignore Pos() — package expand's tests use
// it to check that a tree came back structurally unchanged, while the
// round-trip tests compare numeric values instead.
func Equal(a, b Node) bool {
	switch x := a.(type) {
	case *Number:
		y, ok := b.(*Number)
		return ok && x.Value == y.Value
	case *Variable:
		y, ok := b.(*Variable)
		return ok && x.Name == y.Name
	case *MathConst:
		y, ok := b.(*MathConst)
		return ok && x.Which == y.Which
	case *UnaryMinus:
		y, ok := b.(*UnaryMinus)
		return ok && Equal(x.Child, y.Child)
	case *BinOp:
		y, ok := b.(*BinOp)
		return ok && x.Op == y.Op && Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	case *CompareOp:
		y, ok := b.(*CompareOp)
		return ok && x.Op == y.Op && Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	case *BoolOp:
		y, ok := b.(*BoolOp)
		return ok && x.Op == y.Op && Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	case *Funct:
		y, ok := b.(*Funct)
		return ok && x.Which == y.Which && Equal(x.Child, y.Child)
	case *ExprHolder:
		y, ok := b.(*ExprHolder)
		return ok && x.HolderSign == y.HolderSign && Equal(x.Child, y.Child)
	case *ExprMulti:
		y, ok := b.(*ExprMulti)
		if !ok || len(x.Children) != len(y.Children) {
			return false
		}
		for i := range x.Children {
			if !Equal(x.Children[i], y.Children[i]) {
				return false
			}
		}
		return true
	case *TermHolder:
		y, ok := b.(*TermHolder)
		return ok && x.HolderRole == y.HolderRole && Equal(x.Child, y.Child)
	case *TermMulti:
		y, ok := b.(*TermMulti)
		if !ok || len(x.Children) != len(y.Children) {
			return false
		}
		for i := range x.Children {
			if !Equal(x.Children[i], y.Children[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
