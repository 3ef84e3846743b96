package evalex_test

import (
	"errors"
	"testing"

	"github.com/npillmayer/evalex"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestEvaluate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "evalex")
	defer teardown()
	//
	consts := evalex.NewConstantRegistry()
	if err := consts.Define("a", 5.0); err != nil {
		t.Fatalf("cannot define constant: %v", err)
	}
	for i, test := range []struct {
		input string
		v     float64
	}{
		{input: "1+2*3", v: 7},
		{input: "(1+2)*3", v: 9},
		{input: "2*3+4*5", v: 26},
		{input: "1-2-3", v: -4},
		{input: "-3+4", v: 1},
		{input: "--3", v: 3},
		{input: "a+1", v: 6},
		{input: "(a-1)/2", v: 2},
	} {
		x, err := evalex.New(test.input)
		if err != nil {
			t.Errorf("test %d: cannot construct %q: %v", i, test.input, err)
			continue
		}
		v, err := x.Evaluate(consts)
		if err != nil {
			t.Errorf("test %d: cannot evaluate %q: %v", i, test.input, err)
		} else if v != test.v {
			t.Errorf("test %d: %q = %g, expected %g", i, test.input, v, test.v)
		}
	}
}

func TestErrorTiers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "evalex")
	defer teardown()
	//
	if _, err := evalex.New("()"); err == nil {
		t.Error("expected empty group to fail construction")
	} else {
		var serr *evalex.SyntaxError
		if !errors.As(err, &serr) {
			t.Errorf("expected a syntax error, got %v", err)
		}
	}
	for _, input := range []string{"(1+2", "1+2)"} {
		_, err := evalex.New(input)
		var perr *evalex.ParseError
		if !errors.As(err, &perr) {
			t.Errorf("expected a parse error for %q, got %v", input, err)
		}
	}
	x, err := evalex.New("2/0")
	if err != nil {
		t.Fatalf("cannot construct expression: %v", err)
	}
	_, err = x.Evaluate(evalex.NewConstantRegistry())
	var rerr *evalex.RuntimeError
	if !errors.As(err, &rerr) {
		t.Errorf("expected a runtime error, got %v", err)
	}
}

func TestUndefinedConstant(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "evalex")
	defer teardown()
	//
	x, err := evalex.New("a+1")
	if err != nil {
		t.Fatalf("cannot construct expression: %v", err)
	}
	_, err = x.Evaluate(evalex.NewConstantRegistry())
	var rerr *evalex.RuntimeError
	if !errors.As(err, &rerr) {
		t.Errorf("expected a runtime error, got %v", err)
	}
}

func TestSyntaxOnly(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "evalex")
	defer teardown()
	//
	x, err := evalex.New("a+b*c", evalex.SyntaxOnly())
	if err != nil {
		t.Fatalf("cannot construct expression: %v", err)
	}
	// constants stay undefined; validation mode must not resolve them
	v, err := x.Evaluate(evalex.NewConstantRegistry())
	if err != nil {
		t.Fatalf("cannot validate expression: %v", err)
	}
	if v != 1.0 {
		t.Errorf("expected validation result 1.0, got %g", v)
	}
}

func TestIdempotentEvaluation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "evalex")
	defer teardown()
	//
	consts := evalex.NewConstantRegistry()
	consts.Define("a", 2)
	x, err := evalex.New("a*(a+1)")
	if err != nil {
		t.Fatalf("cannot construct expression: %v", err)
	}
	v1, err1 := x.Evaluate(consts)
	v2, err2 := x.Evaluate(consts)
	if err1 != nil || err2 != nil {
		t.Fatalf("cannot evaluate expression: %v / %v", err1, err2)
	}
	if v1 != v2 || v1 != 6 {
		t.Errorf("expected 6 from both runs, got %g and %g", v1, v2)
	}
}

func TestReferencedIdentifiers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "evalex")
	defer teardown()
	//
	x, err := evalex.New("b + a*a + 1")
	if err != nil {
		t.Fatalf("cannot construct expression: %v", err)
	}
	names := x.ReferencedIdentifiers()
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Errorf("expected identifiers [a b], got %v", names)
	}
}

func TestCustomTokenPattern(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "evalex")
	defer teardown()
	//
	pattern := `( |\t|\n|\r)+|[()\+\-\*/]|[0-9]+(\.[0-9]+)?|[a-zA-Z_][a-zA-Z_0-9\.]*`
	x, err := evalex.New("alpha.x + 1", evalex.WithPattern(pattern))
	if err != nil {
		t.Fatalf("cannot construct expression: %v", err)
	}
	consts := evalex.NewConstantRegistry()
	consts.Define("alpha.x", 41)
	v, err := x.Evaluate(consts)
	if err != nil {
		t.Fatalf("cannot evaluate expression: %v", err)
	}
	if v != 42 {
		t.Errorf("expected 42, got %g", v)
	}
}

func TestRegistryDefine(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "evalex")
	defer teardown()
	//
	consts := evalex.NewConstantRegistry()
	if err := consts.Define("x", "3.25"); err != nil {
		t.Errorf("expected numeric string to be accepted: %v", err)
	}
	if err := consts.Define("n", 7); err != nil {
		t.Errorf("expected int to be accepted: %v", err)
	}
	if v, ok := consts.Resolve("x"); !ok || v != 3.25 {
		t.Errorf("expected x = 3.25, got %g (%v)", v, ok)
	}
	err := consts.Define("bad", "one")
	var serr *evalex.SyntaxError
	if !errors.As(err, &serr) {
		t.Errorf("expected a syntax error for a non-numeric value, got %v", err)
	}
	if err := consts.Define("worse", []float64{1}); !errors.As(err, &serr) {
		t.Errorf("expected a syntax error for a non-numeric value, got %v", err)
	}
}
