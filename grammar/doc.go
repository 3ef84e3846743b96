// Package grammar scans arithmetic infix expressions and converts them into
// postfix (RPN) order with a shunting-yard pass.
package grammar

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'evalex.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("evalex.grammar")
}
