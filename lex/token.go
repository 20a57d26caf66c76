package lex

import (
	"fmt"

	"github.com/anbrusi/nanocas/ast"
)

// Type identifies the category of a Token, spec.md §4.5's token set.
type Type int

const (
	EOF Type = iota
	Or          // |
	And         // &
	Eq          // =
	Gt          // >
	Ge          // >=
	Lt          // <
	Le          // <=
	Ne          // <>
	Plus        // +
	Minus       // -
	Star        // *
	Slash       // /
	Caret       // ^
	LParen      // (
	RParen      // )
	LBracket    // [
	RBracket    // ]
	Number
	Variable
	Const    // e, pi
	Function // abs, sqrt, exp, ln, log, sin, cos, tan, asin, acos, atan
	ImpMul   // implicit multiplication, inserted after the initial scan
)

func (t Type) String() string {
	switch t {
	case EOF:
		return "EOF"
	case Or:
		return "|"
	case And:
		return "&"
	case Eq:
		return "="
	case Gt:
		return ">"
	case Ge:
		return ">="
	case Lt:
		return "<"
	case Le:
		return "<="
	case Ne:
		return "<>"
	case Plus:
		return "+"
	case Minus:
		return "-"
	case Star:
		return "*"
	case Slash:
		return "/"
	case Caret:
		return "^"
	case LParen:
		return "("
	case RParen:
		return ")"
	case LBracket:
		return "["
	case RBracket:
		return "]"
	case Number:
		return "number"
	case Variable:
		return "variable"
	case Const:
		return "const"
	case Function:
		return "function"
	case ImpMul:
		return "impMul"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// Token is one lexeme plus its source byte offset. Const and Function
// tokens additionally carry the resolved ast enum so the parser never has
// to re-parse Text.
type Token struct {
	Type      Type
	Pos       int
	Text      string
	ConstKind ast.MathConstKind // valid when Type == Const
	FunctKind ast.FunctKind     // valid when Type == Function
}

func (t Token) String() string {
	if t.Type == EOF {
		return "EOF"
	}
	return fmt.Sprintf("%s %q@%d", t.Type, t.Text, t.Pos)
}
