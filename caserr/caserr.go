// Package caserr defines the single error type shared by every nanocas
// subsystem: lexing, parsing, evaluation, AST transforms and bignum
// arithmetic all surface failures as a *caserr.Error carrying a Kind and,
// where known, the byte offset of the token that triggered it.
package caserr

import "fmt"

// Kind identifies the category of a nanocas error, per spec.md §7.
type Kind int

const (
	// Input shape
	NonAscii Kind = iota
	EmptyInput
	PrematureEnd
	IllegalChar
	MissingDigit

	// Parse
	ExpectedOr
	ExpectedAnd
	ExpectedBoolTerm
	ExpectedBoolFactor
	ExpectedExpression
	ExpectedTerm
	ExpectedFactor
	ExpectedLParen
	ExpectedRParen
	ExpectedAtom
	ExpectedCompareOp
	ExpectedBoolExp
	VariableSortFailure

	// Semantic
	UnknownNodeKind
	UnknownFunction
	UnknownMathConst
	NoParseTree
	EmptyMultinodeTree
	ExpectedTermMultinode

	// Evaluation
	MissingVariable
	MissingVariableValue
	VariableNotNumeric
	ZeroDenominator

	// Bignum
	RationalDenominatorZero
	ReciprocalOfZero
	NegativePowerOfZero
	MalformedRationalLiteral
)

var kindNames = map[Kind]string{
	NonAscii:                 "NonAscii",
	EmptyInput:                "EmptyInput",
	PrematureEnd:              "PrematureEnd",
	IllegalChar:               "IllegalChar",
	MissingDigit:              "MissingDigit",
	ExpectedOr:                "ExpectedOr",
	ExpectedAnd:               "ExpectedAnd",
	ExpectedBoolTerm:          "ExpectedBoolTerm",
	ExpectedBoolFactor:        "ExpectedBoolFactor",
	ExpectedExpression:        "ExpectedExpression",
	ExpectedTerm:              "ExpectedTerm",
	ExpectedFactor:            "ExpectedFactor",
	ExpectedLParen:            "ExpectedLParen",
	ExpectedRParen:            "ExpectedRParen",
	ExpectedAtom:              "ExpectedAtom",
	ExpectedCompareOp:         "ExpectedCompareOp",
	ExpectedBoolExp:           "ExpectedBoolExp",
	VariableSortFailure:       "VariableSortFailure",
	UnknownNodeKind:           "UnknownNodeKind",
	UnknownFunction:           "UnknownFunction",
	UnknownMathConst:          "UnknownMathConst",
	NoParseTree:               "NoParseTree",
	EmptyMultinodeTree:        "EmptyMultinodeTree",
	ExpectedTermMultinode:     "ExpectedTermMultinode",
	MissingVariable:           "MissingVariable",
	MissingVariableValue:      "MissingVariableValue",
	VariableNotNumeric:        "VariableNotNumeric",
	ZeroDenominator:           "ZeroDenominator",
	RationalDenominatorZero:   "RationalDenominatorZero",
	ReciprocalOfZero:          "ReciprocalOfZero",
	NegativePowerOfZero:       "NegativePowerOfZero",
	MalformedRationalLiteral:  "MalformedRationalLiteral",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Error is the single error type nanocas returns from every public entry
// point. Offset is a byte offset into the original source, or -1 when the
// error has no natural source position (bignum errors, and evaluation
// errors raised at a synthetic node).
type Error struct {
	Kind    Kind
	Offset  int
	Message string
}

func (e *Error) Error() string {
	if e.Offset < 0 {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s at %d: %s", e.Kind, e.Offset, e.Message)
}

// New builds an Error with no associated source position.
func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Offset: -1, Message: fmt.Sprintf(format, args...)}
}

// At builds an Error anchored at a byte offset in the source.
func At(kind Kind, offset int, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Offset: offset, Message: fmt.Sprintf(format, args...)}
}

// Is reports whether err is a *Error of the given kind, so callers can
// branch on error category the way spec.md §7 expects ("each surfaces...
// carrying kind + offset").
func Is(err error, kind Kind) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == kind
}
