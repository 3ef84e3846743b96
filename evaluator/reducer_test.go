package evaluator

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/evalex/grammar"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// testContext is a minimal Context for tests.
type testContext map[string]float64

func (ctx testContext) Resolve(name string) (float64, bool) {
	v, ok := ctx[name]
	return v, ok
}

func rpn(t *testing.T, input string) []grammar.Token {
	t.Helper()
	sc, err := grammar.NewScanner(grammar.DefaultTokenPattern)
	if err != nil {
		t.Fatalf("cannot create scanner: %v", err)
	}
	infix, _, err := sc.Scan(input)
	if err != nil {
		t.Fatalf("cannot scan %q: %v", input, err)
	}
	postfix, err := grammar.Convert(infix)
	if err != nil {
		t.Fatalf("cannot convert %q: %v", input, err)
	}
	return postfix
}

func TestReduceArithmetic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "evalex.eval")
	defer teardown()
	//
	for i, test := range []struct {
		input string
		v     float64
	}{
		{input: "1+2*3", v: 7},
		{input: "(1+2)*3", v: 9},
		{input: "2*3+4*5", v: 26},
		{input: "1-2-3", v: -4},
		{input: "8/4/2", v: 1},
		{input: "-3+4", v: 1},
		{input: "--3", v: 3},
		{input: "+5*-2", v: -10},
		{input: "2/0.5", v: 4},
	} {
		v, err := Reduce(rpn(t, test.input), testContext{})
		if err != nil {
			t.Errorf("test %d: cannot reduce %q: %v", i, test.input, err)
		} else if v != test.v {
			t.Errorf("test %d: %q reduced to %g, expected %g", i, test.input, v, test.v)
		}
	}
}

func TestReduceConstants(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "evalex.eval")
	defer teardown()
	//
	ctx := testContext{"a": 5}
	v, err := Reduce(rpn(t, "a+1"), ctx)
	if err != nil {
		t.Fatalf("cannot reduce: %v", err)
	}
	if v != 6 {
		t.Errorf("expected a+1 = 6, got %g", v)
	}
}

func TestReduceUndefinedConstant(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "evalex.eval")
	defer teardown()
	//
	_, err := Reduce(rpn(t, "a+1"), testContext{})
	var rerr *RuntimeError
	if !errors.As(err, &rerr) {
		t.Fatalf("expected a runtime error, got %v", err)
	}
	if !strings.Contains(rerr.Msg, "undefined constant") {
		t.Errorf("unexpected message %q", rerr.Msg)
	}
}

func TestReduceDivisionByZero(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "evalex.eval")
	defer teardown()
	//
	_, err := Reduce(rpn(t, "2/0"), testContext{})
	var rerr *RuntimeError
	if !errors.As(err, &rerr) {
		t.Fatalf("expected a runtime error, got %v", err)
	}
	if !strings.Contains(rerr.Msg, "division by zero") {
		t.Errorf("unexpected message %q", rerr.Msg)
	}
}

func TestReduceValidationMode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "evalex.eval")
	defer teardown()
	//
	// no context: all operands and results are 1.0, no lookups, no div-zero
	for i, input := range []string{"a+b*c", "2/0", "-(x)/(y-y)"} {
		v, err := Reduce(rpn(t, input), nil)
		if err != nil {
			t.Errorf("test %d: cannot validate %q: %v", i, input, err)
		} else if v != 1.0 {
			t.Errorf("test %d: validation of %q yielded %g, expected 1.0", i, input, v)
		}
	}
}

func TestReduceMalformedSequences(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "evalex.eval")
	defer teardown()
	//
	for i, test := range []struct {
		postfix []grammar.Token
		msg     string
	}{
		{postfix: []grammar.Token{}, msg: "too few"},
		{
			postfix: []grammar.Token{
				{Kind: grammar.Number, Lexeme: "1", Value: 1},
				{Kind: grammar.Number, Lexeme: "2", Value: 2},
			},
			msg: "left over",
		},
		{
			postfix: []grammar.Token{
				{Kind: grammar.Number, Lexeme: "1", Value: 1},
				{Kind: grammar.Plus, Lexeme: "+"},
			},
			msg: "needs 2 operand(s), 1 available",
		},
		{
			postfix: []grammar.Token{{Kind: grammar.UnaryMinus, Lexeme: "-"}},
			msg:     "needs 1 operand(s), 0 available",
		},
	} {
		_, err := Reduce(test.postfix, testContext{})
		var rerr *RuntimeError
		if !errors.As(err, &rerr) {
			t.Errorf("test %d: expected a runtime error, got %v", i, err)
		} else if !strings.Contains(rerr.Msg, test.msg) {
			t.Errorf("test %d: expected message containing %q, got %q", i, test.msg, rerr.Msg)
		}
	}
}
