// Package parse implements the recursive-descent parser of spec.md §4.6:
// one small function per grammar non-terminal, no left recursion, no
// backtracking. Grounded on the shape of ivy's parse.Parser
// (parse/parse.go: a token-index cursor with peek/next and
// position-carrying errors), generalized from ivy's APL grammar to this
// spec's arithmetic/boolean/compare grammar and to a strictly binary
// ast.Node tree instead of ivy's value.Expr.
package parse

import (
	"sort"

	"github.com/anbrusi/nanocas/ast"
	"github.com/anbrusi/nanocas/caserr"
	"github.com/anbrusi/nanocas/config"
	"github.com/anbrusi/nanocas/lex"
)

type parser struct {
	tokens []lex.Token
	pos    int
	vars   map[string]struct{}
}

// Parse lexes and parses src under cfg, returning the binary AST and the
// sorted list of distinct free variable names (spec.md §4.6).
func Parse(src string, cfg *config.Config) (ast.Node, []string, error) {
	tokens, err := lex.Lex(src, cfg)
	if err != nil {
		return nil, nil, err
	}
	p := &parser{tokens: tokens, vars: make(map[string]struct{})}
	node, err := p.boolExp()
	if err != nil {
		return nil, nil, err
	}
	if p.pos != len(p.tokens) {
		return nil, nil, caserr.At(caserr.ExpectedBoolExp, p.curPos(), "unexpected trailing input")
	}
	return node, p.sortedVars(), nil
}

func (p *parser) sortedVars() []string {
	names := make([]string, 0, len(p.vars))
	for name := range p.vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (p *parser) peek() lex.Token {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos]
	}
	return lex.Token{Type: lex.EOF, Pos: p.curPos()}
}

// curPos is the byte offset of the current token, or of the end of the
// last token seen if the stream ran out (spec.md §4.6).
func (p *parser) curPos() int {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos].Pos
	}
	if len(p.tokens) == 0 {
		return 0
	}
	last := p.tokens[len(p.tokens)-1]
	return last.Pos + len(last.Text)
}

func (p *parser) next() lex.Token {
	t := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return t
}

func (p *parser) expect(typ lex.Type, kind caserr.Kind, what string) (lex.Token, error) {
	if p.peek().Type != typ {
		return lex.Token{}, caserr.At(kind, p.curPos(), "expected %s", what)
	}
	return p.next(), nil
}

// boolExp = boolterm { "|" boolterm }
func (p *parser) boolExp() (ast.Node, error) {
	left, err := p.boolTerm()
	if err != nil {
		return nil, err
	}
	for p.peek().Type == lex.Or {
		tok := p.next()
		right, err := p.boolTerm()
		if err != nil {
			return nil, err
		}
		left = ast.NewBoolOp(tok.Pos, ast.BoolOr, left, right)
	}
	return left, nil
}

// boolterm = boolfactor { "&" boolfactor }
func (p *parser) boolTerm() (ast.Node, error) {
	left, err := p.boolFactor()
	if err != nil {
		return nil, err
	}
	for p.peek().Type == lex.And {
		tok := p.next()
		right, err := p.boolFactor()
		if err != nil {
			return nil, err
		}
		left = ast.NewBoolOp(tok.Pos, ast.BoolAnd, left, right)
	}
	return left, nil
}

// boolfactor = boolatom | "[" boolexp "]"
func (p *parser) boolFactor() (ast.Node, error) {
	if p.peek().Type == lex.LBracket {
		p.next()
		inner, err := p.boolExp()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lex.RBracket, caserr.ExpectedRParen, "']'"); err != nil {
			return nil, err
		}
		return inner, nil
	}
	return p.boolAtom()
}

var cmpKind = map[lex.Type]ast.CompareOpKind{
	lex.Eq: ast.CmpEq,
	lex.Gt: ast.CmpGt,
	lex.Ge: ast.CmpGe,
	lex.Lt: ast.CmpLt,
	lex.Le: ast.CmpLe,
	lex.Ne: ast.CmpNe,
}

func isCmpOp(t lex.Type) bool {
	_, ok := cmpKind[t]
	return ok
}

// boolatom = expression [ cmpop expression ]
func (p *parser) boolAtom() (ast.Node, error) {
	left, err := p.expression()
	if err != nil {
		return nil, err
	}
	if isCmpOp(p.peek().Type) {
		tok := p.next()
		right, err := p.expression()
		if err != nil {
			return nil, err
		}
		return ast.NewCompareOp(tok.Pos, cmpKind[tok.Type], left, right), nil
	}
	return left, nil
}

// expression = [ "-" ] term { ("+"|"-") term }
func (p *parser) expression() (ast.Node, error) {
	var negPos int
	neg := false
	if p.peek().Type == lex.Minus {
		negPos = p.peek().Pos
		p.next()
		neg = true
	}
	left, err := p.term()
	if err != nil {
		return nil, err
	}
	if neg {
		left = ast.NewUnaryMinus(negPos, left)
	}
	for p.peek().Type == lex.Plus || p.peek().Type == lex.Minus {
		tok := p.next()
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		op := ast.OpAdd
		if tok.Type == lex.Minus {
			op = ast.OpSub
		}
		left = ast.NewBinOp(tok.Pos, op, left, right)
	}
	return left, nil
}

// term = factor { ("*"|"/"|impMul) factor }
func (p *parser) term() (ast.Node, error) {
	left, err := p.factor()
	if err != nil {
		return nil, err
	}
	for {
		t := p.peek().Type
		if t != lex.Star && t != lex.Slash && t != lex.ImpMul {
			break
		}
		tok := p.next()
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		var op ast.BinOpKind
		switch tok.Type {
		case lex.Star:
			op = ast.OpMul
		case lex.Slash:
			op = ast.OpDiv
		default:
			op = ast.OpImplicitMul
		}
		left = ast.NewBinOp(tok.Pos, op, left, right)
	}
	return left, nil
}

// factor = ( atom | "(" expression ")" ) [ "^" factor ]
func (p *parser) factor() (ast.Node, error) {
	var node ast.Node
	if p.peek().Type == lex.LParen {
		p.next()
		inner, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lex.RParen, caserr.ExpectedRParen, "')'"); err != nil {
			return nil, err
		}
		node = inner
	} else {
		var err error
		node, err = p.atom()
		if err != nil {
			return nil, err
		}
	}
	if p.peek().Type == lex.Caret {
		tok := p.next()
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		node = ast.NewBinOp(tok.Pos, ast.OpPow, node, right)
	}
	return node, nil
}

// atom = mathconst | number | variable | funct
func (p *parser) atom() (ast.Node, error) {
	tok := p.peek()
	switch tok.Type {
	case lex.Const:
		p.next()
		return ast.NewMathConst(tok.Pos, tok.ConstKind), nil
	case lex.Number:
		p.next()
		return ast.NewNumber(tok.Pos, tok.Text), nil
	case lex.Variable:
		p.next()
		p.vars[tok.Text] = struct{}{}
		return ast.NewVariable(tok.Pos, tok.Text), nil
	case lex.Function:
		return p.funct()
	default:
		return nil, caserr.At(caserr.ExpectedAtom, p.curPos(), "expected a number, variable, constant or function")
	}
}

// funct = functionname "(" expression ")"
func (p *parser) funct() (ast.Node, error) {
	tok := p.next()
	if _, err := p.expect(lex.LParen, caserr.ExpectedLParen, "'(' after function name"); err != nil {
		return nil, err
	}
	inner, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lex.RParen, caserr.ExpectedRParen, "')'"); err != nil {
		return nil, err
	}
	return ast.NewFunct(tok.Pos, tok.FunctKind, inner), nil
}
