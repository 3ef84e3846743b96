package grammar

import (
	"github.com/emirpasic/gods/stacks/linkedliststack"
)

// Converter holds the two tracks of a single shunting-yard run: the output
// queue collecting tokens in postfix order, and the operator stack. The
// stack only ever holds operator and left-paren tokens, never operands. A
// converter processes exactly one infix sequence and owns its tracks for
// that run only.
type Converter struct {
	out []Token
	ops *linkedliststack.Stack
}

// NewConverter creates an empty converter.
func NewConverter() *Converter {
	return &Converter{
		ops: linkedliststack.New(),
	}
}

// Convert is a convenience wrapper running a one-shot conversion of infix
// to postfix order.
func Convert(infix []Token) ([]Token, error) {
	return NewConverter().Convert(infix)
}

// Convert consumes the infix token sequence and returns the same tokens in
// postfix order, honoring precedence, associativity and parenthesis
// grouping. Mismatched parentheses are reported as parse errors. The infix
// slice is read forward-only and left unmodified.
func (c *Converter) Convert(infix []Token) ([]Token, error) {
	for _, tok := range infix {
		switch {
		case tok.Kind == Number || tok.Kind == Identifier:
			c.emit(tok)
		case tok.Kind.IsOperator():
			c.shuntOperator(tok)
		case tok.Kind == LParen:
			tracer().Debugf("pushing %q", tok.Lexeme)
			c.ops.Push(tok)
		case tok.Kind == RParen:
			if err := c.closeGroup(); err != nil {
				return nil, err
			}
		}
	}
	if err := c.drain(); err != nil {
		return nil, err
	}
	tracer().Debugf("conversion done, %d token(s) in postfix order", len(c.out))
	return c.out, nil
}

func (c *Converter) emit(tok Token) {
	tracer().Debugf("emitting %s", tok)
	c.out = append(c.out, tok)
}

// shuntOperator pops operators of stronger binding (or equal binding for a
// left-associative incoming operator) off the stack before pushing op1.
func (c *Converter) shuntOperator(op1 Token) {
	for {
		top, ok := c.ops.Peek()
		if !ok {
			break
		}
		op2 := top.(Token)
		if !op2.Kind.IsOperator() {
			break // a left paren shields the rest of the stack
		}
		p1, p2 := op1.Kind.Precedence(), op2.Kind.Precedence()
		if (op1.Kind.LeftAssociative() && p1 <= p2) || p1 < p2 {
			c.ops.Pop()
			c.emit(op2)
			continue
		}
		break
	}
	tracer().Debugf("pushing operator %q", op1.Lexeme)
	c.ops.Push(op1)
}

// closeGroup pops operators to the output queue until the matching left
// paren is found and discarded. An empty stack means the right paren has no
// partner.
func (c *Converter) closeGroup() error {
	for {
		top, ok := c.ops.Pop()
		if !ok {
			return parseErrorf("mismatched parentheses: unmatched ')'")
		}
		tok := top.(Token)
		if tok.Kind == LParen {
			return nil // the paren pair is dropped, never emitted
		}
		c.emit(tok)
	}
}

// drain empties the operator stack onto the output queue after the infix
// sequence is exhausted. A surfacing paren token signals an unclosed group.
func (c *Converter) drain() error {
	for {
		top, ok := c.ops.Pop()
		if !ok {
			return nil
		}
		tok := top.(Token)
		if tok.Kind == LParen || tok.Kind == RParen {
			return parseErrorf("mismatched parentheses: unmatched '('")
		}
		c.emit(tok)
	}
}
