package grammar

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
	"strconv"
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
	lex "github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// DefaultTokenPattern is the token pattern used when the caller does not
// supply one. It recognizes whitespace runs, parentheses, the four
// arithmetic operators, integer and decimal literals, and bare identifiers.
const DefaultTokenPattern = `( |\t|\n|\r)+|[()\+\-\*/]|[0-9]+(\.[0-9]+)?|[a-zA-Z_][a-zA-Z_0-9]*`

// Scanner converts a raw string into an ordered sequence of classified
// tokens. A scanner is built around a single token-matching pattern;
// classification of the matched lexemes happens by content, so custom
// patterns only have to delimit tokens, not categorize them.
type Scanner struct {
	lexer *lex.Lexer
}

// NewScanner compiles a scanner from a token pattern. A pattern that does
// not compile is reported as a syntax error.
func NewScanner(pattern string) (*Scanner, error) {
	lexer := lex.NewLexer()
	lexer.Add([]byte(pattern), func(s *lex.Scanner, m *machines.Match) (interface{}, error) {
		if len(m.Bytes) == 0 {
			return nil, syntaxErrorf("token pattern matched an empty string")
		}
		lexeme := string(m.Bytes)
		if strings.TrimSpace(lexeme) == "" {
			return nil, nil // whitespace is matched, but never emitted
		}
		return s.Token(0, lexeme, m), nil
	})
	if err := lexer.Compile(); err != nil {
		return nil, syntaxErrorf("cannot compile token pattern: %v", err)
	}
	return &Scanner{lexer: lexer}, nil
}

// Scan runs a single forward pass over input and returns the infix token
// sequence together with the deduplicated set of identifier names referenced
// by the expression. Scanning is not resumable.
func (sc *Scanner) Scan(input string) ([]Token, *treeset.Set, error) {
	s, err := sc.lexer.Scanner([]byte(input))
	if err != nil {
		return nil, nil, syntaxErrorf("cannot scan input: %v", err)
	}
	var infix []Token
	idents := treeset.NewWithStringComparator()
	// Advisory parser state: expecting an operand vs. expecting an operator.
	// It decides unary classification of +/- and nothing else; it does not
	// reject malformed token adjacency.
	expectOperand := true
	for tok, err, eos := s.Next(); !eos; tok, err, eos = s.Next() {
		if err != nil {
			if ui, ok := err.(*machines.UnconsumedInput); ok {
				return nil, nil, syntaxErrorf("unrecognized input at %q", failedPrefix(ui))
			}
			return nil, nil, err
		}
		t := classify(string(tok.(*lex.Token).Lexeme), expectOperand)
		if t.Kind == RParen && len(infix) > 0 && infix[len(infix)-1].Kind == LParen {
			return nil, nil, syntaxErrorf("empty parenthesis group")
		}
		if t.Kind == Identifier {
			idents.Add(t.Lexeme)
		}
		tracer().Debugf("scanner accepting %s %q", t.Kind, t.Lexeme)
		infix = append(infix, t)
		expectOperand = t.Kind.IsOperator() || t.Kind == LParen
	}
	return infix, idents, nil
}

// classify turns a matched lexeme into a token. A +/- while an operand is
// expected becomes its unary variant. Lexemes that are neither an
// operator/paren nor a numeric literal are identifiers.
func classify(lexeme string, expectOperand bool) Token {
	switch lexeme {
	case "(":
		return Token{Kind: LParen, Lexeme: lexeme}
	case ")":
		return Token{Kind: RParen, Lexeme: lexeme}
	case "+":
		if expectOperand {
			return Token{Kind: UnaryPlus, Lexeme: lexeme}
		}
		return Token{Kind: Plus, Lexeme: lexeme}
	case "-":
		if expectOperand {
			return Token{Kind: UnaryMinus, Lexeme: lexeme}
		}
		return Token{Kind: Minus, Lexeme: lexeme}
	case "*":
		return Token{Kind: Times, Lexeme: lexeme}
	case "/":
		return Token{Kind: Div, Lexeme: lexeme}
	}
	if v, err := strconv.ParseFloat(lexeme, 64); err == nil {
		return Token{Kind: Number, Lexeme: lexeme, Value: v}
	}
	return Token{Kind: Identifier, Lexeme: lexeme}
}

// failedPrefix extracts the offending input prefix from a scanner error,
// clipped to 10 characters.
func failedPrefix(ui *machines.UnconsumedInput) string {
	rest := ui.Text[ui.StartTC:]
	if len(rest) > 10 {
		rest = rest[:10]
	}
	return string(rest)
}
