package evalex

import (
	"github.com/npillmayer/evalex/evaluator"
	"github.com/npillmayer/evalex/grammar"
)

// The three error tiers of the library, re-exported so callers can match
// them with errors.As without importing the subpackages.
//
// SyntaxError covers lexical-level failures, ParseError mismatched
// parentheses, RuntimeError evaluation-time failures. All three are
// fail-fast and non-recoverable; there are no partial results.
type (
	SyntaxError  = grammar.SyntaxError
	ParseError   = grammar.ParseError
	RuntimeError = evaluator.RuntimeError
)
