package evaluator

/*
BSD License

Copyright (c) 2019–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.  */

import (
	"fmt"

	"github.com/emirpasic/gods/stacks/linkedliststack"
	"github.com/npillmayer/evalex/grammar"
)

// Context is the collaborator the reducer queries for constant values.
// Implementations report presence; the reducer owns turning a missing name
// into an "undefined constant" error. A context may be shared read-only
// between evaluations; concurrent writers need external synchronization.
type Context interface {
	Resolve(name string) (float64, bool)
}

// RuntimeError flags evaluation-time failures: an undefined constant, an
// operator short of operands, division by zero, or a malformed operand
// count at the end of reduction.
type RuntimeError struct {
	Msg string
}

func (e *RuntimeError) Error() string {
	return "runtime error: " + e.Msg
}

func runtimeErrorf(format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{Msg: fmt.Sprintf(format, args...)}
}

// validated is the fixed substitute for every operand and operator result
// in validation mode.
const validated = 1.0

// Reduce evaluates a postfix token sequence to a single value. With a nil
// context the reducer runs in validation mode: every operand and every
// operator result is the fixed value 1.0 and no constant lookups happen, so
// structural validity can be checked without defining all constants.
//
// Reduce never modifies postfix and keeps no state between calls; reducing
// the same sequence twice yields the same result.
func Reduce(postfix []grammar.Token, ctx Context) (float64, error) {
	operands := linkedliststack.New() // stack of resolved float64 values
	for _, tok := range postfix {
		switch {
		case tok.Kind == grammar.Number:
			push(operands, tok.Value, ctx)
		case tok.Kind == grammar.Identifier:
			if ctx == nil {
				operands.Push(validated)
				continue
			}
			v, ok := ctx.Resolve(tok.Lexeme)
			if !ok {
				return 0, runtimeErrorf("undefined constant %q", tok.Lexeme)
			}
			operands.Push(v)
		case tok.Kind.IsOperator():
			if err := apply(operands, tok, ctx); err != nil {
				return 0, err
			}
		default:
			return 0, runtimeErrorf("unexpected %s in postfix sequence", tok.Kind)
		}
	}
	if n := operands.Size(); n != 1 {
		if n == 0 {
			return 0, runtimeErrorf("malformed expression: too few operands")
		}
		return 0, runtimeErrorf("malformed expression: %d operands left over", n)
	}
	result, _ := operands.Pop()
	tracer().Debugf("reduced to %g", result.(float64))
	return result.(float64), nil
}

func push(operands *linkedliststack.Stack, v float64, ctx Context) {
	if ctx == nil {
		v = validated
	}
	tracer().Debugf("pushing operand %g", v)
	operands.Push(v)
}

// apply pops the operands for an operator token, computes the result and
// pushes it back. Division checks the divisor before dividing.
func apply(operands *linkedliststack.Stack, op grammar.Token, ctx Context) error {
	arity := op.Kind.Arity()
	if operands.Size() < arity {
		return runtimeErrorf("operator %q needs %d operand(s), %d available",
			op.Lexeme, arity, operands.Size())
	}
	r, _ := operands.Pop()
	rhs := r.(float64)
	var lhs float64
	if arity == 2 {
		l, _ := operands.Pop()
		lhs = l.(float64)
	}
	if ctx == nil {
		operands.Push(validated)
		return nil
	}
	var result float64
	switch op.Kind {
	case grammar.Plus:
		result = lhs + rhs
	case grammar.Minus:
		result = lhs - rhs
	case grammar.Times:
		result = lhs * rhs
	case grammar.Div:
		if rhs == 0 {
			return runtimeErrorf("division by zero")
		}
		result = lhs / rhs
	case grammar.UnaryPlus:
		result = rhs
	case grammar.UnaryMinus:
		result = -rhs
	}
	tracer().Debugf("%s: result %g", op.Kind, result)
	operands.Push(result)
	return nil
}
