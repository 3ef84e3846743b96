// Package evalex evaluates arithmetic infix expressions into a single
// numeric result. Expressions consist of numbers, named constants, the
// operators + - * /, unary signs and parentheses. An expression is scanned
// and converted to postfix order once, on construction, and can then be
// evaluated any number of times against different constant contexts.
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
//
package evalex

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/npillmayer/evalex/evaluator"
	"github.com/npillmayer/evalex/grammar"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'evalex'.
func tracer() tracing.Trace {
	return tracing.Select("evalex")
}

// Context resolves constant names during evaluation (see package evaluator).
type Context = evaluator.Context

// Option configures the construction of an Expression.
type Option func(*settings)

type settings struct {
	pattern    string
	syntaxOnly bool
}

// WithPattern replaces the default token-matching pattern of the scanner.
// A custom pattern only delimits tokens; classification of the matched
// lexemes stays content-based.
func WithPattern(pattern string) Option {
	return func(s *settings) {
		s.pattern = pattern
	}
}

// SyntaxOnly switches every evaluation of the expression to validation
// mode, where all operands and operator results are the fixed value 1.0 and
// no constants have to be defined.
func SyntaxOnly() Option {
	return func(s *settings) {
		s.syntaxOnly = true
	}
}

// Expression is a parsed arithmetic expression, held in postfix order and
// ready for evaluation. Expressions are immutable after construction.
type Expression struct {
	source     string
	postfix    []grammar.Token
	idents     *treeset.Set
	syntaxOnly bool
}

// New scans and converts an expression string. Lexical problems surface as
// syntax errors, mismatched parentheses as parse errors; both fail the
// construction immediately.
func New(expression string, opts ...Option) (*Expression, error) {
	s := settings{pattern: grammar.DefaultTokenPattern}
	for _, opt := range opts {
		opt(&s)
	}
	scanner, err := grammar.NewScanner(s.pattern)
	if err != nil {
		return nil, err
	}
	infix, idents, err := scanner.Scan(expression)
	if err != nil {
		return nil, err
	}
	postfix, err := grammar.Convert(infix)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("expression %q converted, %d token(s)", expression, len(postfix))
	return &Expression{
		source:     expression,
		postfix:    postfix,
		idents:     idents,
		syntaxOnly: s.syntaxOnly,
	}, nil
}

// Evaluate reduces the expression to a number. Passing a nil context, or
// having constructed the expression with SyntaxOnly, runs the reduction in
// validation mode. Evaluation never mutates the expression; repeated calls
// with the same context yield the same result.
func (x *Expression) Evaluate(ctx Context) (float64, error) {
	if x.syntaxOnly {
		ctx = nil
	}
	return evaluator.Reduce(x.postfix, ctx)
}

// ReferencedIdentifiers returns the deduplicated constant names the
// expression mentions, in lexical order. Useful for checking which
// constants have to be defined before evaluating.
func (x *Expression) ReferencedIdentifiers() []string {
	names := make([]string, 0, x.idents.Size())
	for _, v := range x.idents.Values() {
		names = append(names, v.(string))
	}
	return names
}

// String returns the original expression text.
func (x *Expression) String() string {
	return x.source
}
