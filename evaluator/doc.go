// Package evaluator reduces postfix token sequences to a single numeric
// value, either against a context of named constants or in validation-only
// mode.
package evaluator

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'evalex.eval'.
func tracer() tracing.Trace {
	return tracing.Select("evalex.eval")
}
