// Package eval evaluates a binary AST to a floating-point or boolean
// result (spec.md §4.7). Grounded on ivy's value/eval.go: one recursive
// dispatch function over the node kind, generalized from ivy's
// arbitrary-precision Value union to IEEE-754 doubles plus a boolean
// side channel for compare/bool nodes, since expression evaluation in
// this system is explicitly floating-point (SPEC_FULL.md §1).
package eval

import (
	"math"
	"strconv"

	"github.com/anbrusi/nanocas/ast"
	"github.com/anbrusi/nanocas/caserr"
	"github.com/anbrusi/nanocas/config"
)

// Bindings supplies the numeric value of every free variable the parser
// collected. Values must be float64, float32, int or int64; any other
// type, including the other integer widths, trips VariableNotNumeric.
type Bindings map[string]interface{}

// Value is the result of evaluating a node: either a number or a
// boolean, never both (spec.md §4.7's compare/bool-vs-arithmetic split).
type Value struct {
	IsBool bool
	Bool   bool
	Num    float64
}

func numValue(f float64) Value { return Value{Num: f} }
func boolValue(b bool) Value   { return Value{IsBool: true, Bool: b} }

// Truthy implements spec.md §4.7's mixing rule: a boolean is itself, a
// number is true when nonzero.
func (v Value) Truthy() bool {
	if v.IsBool {
		return v.Bool
	}
	return v.Num != 0
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

// Eval evaluates root under bindings and cfg. The caller must supply
// exactly the variables the parser collected (spec.md §4.7); a missing
// or non-numeric binding is reported positionally.
func Eval(root ast.Node, bindings Bindings, cfg *config.Config) (Value, error) {
	return evalValue(root, bindings, cfg)
}

// evalValue handles nodes whose result may be boolean (compare/bool
// connectives); everything else is forwarded to evalNumeric and wrapped.
func evalValue(n ast.Node, b Bindings, cfg *config.Config) (Value, error) {
	switch node := n.(type) {
	case *ast.CompareOp:
		left, err := evalNumeric(node.Left, b, cfg)
		if err != nil {
			return Value{}, err
		}
		right, err := evalNumeric(node.Right, b, cfg)
		if err != nil {
			return Value{}, err
		}
		return boolValue(compare(node.Op, left, right)), nil
	case *ast.BoolOp:
		left, err := evalValue(node.Left, b, cfg)
		if err != nil {
			return Value{}, err
		}
		// Short-circuit: the right operand is never evaluated once the
		// result is already determined (spec.md §4.7).
		if node.Op == ast.BoolAnd && !left.Truthy() {
			return boolValue(false), nil
		}
		if node.Op == ast.BoolOr && left.Truthy() {
			return boolValue(true), nil
		}
		right, err := evalValue(node.Right, b, cfg)
		if err != nil {
			return Value{}, err
		}
		if node.Op == ast.BoolAnd {
			return boolValue(left.Truthy() && right.Truthy()), nil
		}
		return boolValue(left.Truthy() || right.Truthy()), nil
	default:
		f, err := evalNumeric(n, b, cfg)
		if err != nil {
			return Value{}, err
		}
		return numValue(f), nil
	}
}

func compare(op ast.CompareOpKind, l, r float64) bool {
	switch op {
	case ast.CmpEq:
		return l == r
	case ast.CmpGt:
		return l > r
	case ast.CmpGe:
		return l >= r
	case ast.CmpLt:
		return l < r
	case ast.CmpLe:
		return l <= r
	default: // ast.CmpNe
		return l != r
	}
}

// zeroDenominatorThreshold is the magnitude below which a divisor is
// treated as zero (spec.md §4.7).
const zeroDenominatorThreshold = 1e-30

func evalNumeric(n ast.Node, b Bindings, cfg *config.Config) (float64, error) {
	switch node := n.(type) {
	case *ast.Number:
		f, err := strconv.ParseFloat(node.Value, 64)
		if err != nil {
			return 0, caserr.At(caserr.IllegalChar, node.Pos(), "malformed numeric literal %q", node.Value)
		}
		return f, nil
	case *ast.Variable:
		raw, ok := b[node.Name]
		if !ok {
			return 0, caserr.At(caserr.MissingVariable, node.Pos(), "no binding for variable %q", node.Name)
		}
		if raw == nil {
			return 0, caserr.At(caserr.MissingVariableValue, node.Pos(), "variable %q is bound to no value", node.Name)
		}
		f, ok := toFloat(raw)
		if !ok {
			return 0, caserr.At(caserr.VariableNotNumeric, node.Pos(), "variable %q is bound to a non-numeric value", node.Name)
		}
		return f, nil
	case *ast.MathConst:
		if node.Which == ast.ConstE {
			return math.E, nil
		}
		return math.Pi, nil
	case *ast.UnaryMinus:
		v, err := evalNumeric(node.Child, b, cfg)
		if err != nil {
			return 0, err
		}
		return -v, nil
	case *ast.BinOp:
		return evalBinOp(node, b, cfg)
	case *ast.Funct:
		return evalFunct(node, b, cfg)
	case *ast.CompareOp, *ast.BoolOp:
		// A boolean consumed by an arithmetic operator counts as 1 or 0.
		v, err := evalValue(n, b, cfg)
		if err != nil {
			return 0, err
		}
		if v.Truthy() {
			return 1, nil
		}
		return 0, nil
	default:
		return 0, caserr.At(caserr.UnknownNodeKind, n.Pos(), "node of type %T is not a numeric expression", n)
	}
}

func evalBinOp(node *ast.BinOp, b Bindings, cfg *config.Config) (float64, error) {
	left, err := evalNumeric(node.Left, b, cfg)
	if err != nil {
		return 0, err
	}
	right, err := evalNumeric(node.Right, b, cfg)
	if err != nil {
		return 0, err
	}
	switch node.Op {
	case ast.OpAdd:
		return left + right, nil
	case ast.OpSub:
		return left - right, nil
	case ast.OpMul, ast.OpImplicitMul:
		return left * right, nil
	case ast.OpDiv:
		if math.Abs(right) < zeroDenominatorThreshold {
			return 0, caserr.At(caserr.ZeroDenominator, node.Pos(), "division by a denominator of magnitude < %g", zeroDenominatorThreshold)
		}
		return left / right, nil
	default: // ast.OpPow
		return math.Pow(left, right), nil
	}
}

func evalFunct(node *ast.Funct, b Bindings, cfg *config.Config) (float64, error) {
	arg, err := evalNumeric(node.Child, b, cfg)
	if err != nil {
		return 0, err
	}
	degrees := cfg.AngleUnit() == config.Degrees
	switch node.Which {
	case ast.FnAbs:
		return math.Abs(arg), nil
	case ast.FnSqrt:
		return math.Sqrt(arg), nil
	case ast.FnExp:
		return math.Exp(arg), nil
	case ast.FnLn:
		return math.Log(arg), nil
	case ast.FnLog10:
		return math.Log10(arg), nil
	case ast.FnSin:
		if degrees {
			arg = arg * math.Pi / 180
		}
		return math.Sin(arg), nil
	case ast.FnCos:
		if degrees {
			arg = arg * math.Pi / 180
		}
		return math.Cos(arg), nil
	case ast.FnTan:
		if degrees {
			arg = arg * math.Pi / 180
		}
		return math.Tan(arg), nil
	case ast.FnAsin:
		r := math.Asin(arg)
		if degrees {
			r = r * 180 / math.Pi
		}
		return r, nil
	case ast.FnAcos:
		r := math.Acos(arg)
		if degrees {
			r = r * 180 / math.Pi
		}
		return r, nil
	default: // ast.FnAtan
		r := math.Atan(arg)
		if degrees {
			r = r * 180 / math.Pi
		}
		return r, nil
	}
}
