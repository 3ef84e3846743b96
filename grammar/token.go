package grammar

import "fmt"

// TokenKind classifies a scanned lexeme. Kinds are a closed enumeration;
// category tests go through the predicates below instead of numeric tricks.
type TokenKind int8

// All token kinds produced by the scanner.
const (
	Number TokenKind = iota
	Identifier
	LParen
	RParen
	Plus
	Minus
	Times
	Div
	UnaryPlus
	UnaryMinus
)

func (k TokenKind) String() string {
	switch k {
	case Number:
		return "number"
	case Identifier:
		return "identifier"
	case LParen:
		return "("
	case RParen:
		return ")"
	case Plus:
		return "+"
	case Minus:
		return "-"
	case Times:
		return "*"
	case Div:
		return "/"
	case UnaryPlus:
		return "unary +"
	case UnaryMinus:
		return "unary -"
	}
	return fmt.Sprintf("kind(%d)", int8(k))
}

// IsOperator is a predicate: does the kind denote an arithmetic operator,
// binary or unary? Parentheses are not operators.
func (k TokenKind) IsOperator() bool {
	return k >= Plus && k <= UnaryMinus
}

// Arity returns the number of operands an operator consumes, or 0 for
// non-operator kinds.
func (k TokenKind) Arity() int {
	switch k {
	case Plus, Minus, Times, Div:
		return 2
	case UnaryPlus, UnaryMinus:
		return 1
	}
	return 0
}

// Precedence returns the binding strength of an operator kind; higher binds
// tighter. Value 3 is reserved and currently unused. Non-operators get 0.
func (k TokenKind) Precedence() int {
	switch k {
	case UnaryPlus, UnaryMinus:
		return 4
	case Times, Div:
		return 2
	case Plus, Minus:
		return 1
	}
	return 0
}

// LeftAssociative is a predicate deciding the tie-break for operators of
// equal precedence. The binary operators associate left, the unary signs
// right (relevant for chains like "--3").
func (k TokenKind) LeftAssociative() bool {
	switch k {
	case Plus, Minus, Times, Div:
		return true
	}
	return false
}

// Token is a classified lexeme. Tokens are immutable once the scanner has
// emitted them; Value is only meaningful for kind Number.
type Token struct {
	Kind   TokenKind
	Lexeme string
	Value  float64
}

func (t Token) String() string {
	if t.Kind == Number {
		return fmt.Sprintf("%g", t.Value)
	}
	return t.Lexeme
}
