package evalex

import (
	"github.com/npillmayer/evalex/evaluator"
	"github.com/npillmayer/evalex/grammar"
	"github.com/shopspring/decimal"
)

// ConstantRegistry is a simple name→number store implementing Context.
// Definitions are conceptually write-once per name; re-defining a name just
// overwrites it. A registry may be shared read-only between independent
// evaluations, but concurrent writers must be synchronized externally — the
// registry holds no lock of its own.
type ConstantRegistry struct {
	consts map[string]float64
}

// NewConstantRegistry creates an empty registry.
func NewConstantRegistry() *ConstantRegistry {
	return &ConstantRegistry{
		consts: make(map[string]float64),
	}
}

// Define binds a constant name to a numeric value. Besides the float and
// integer types, numeric strings and decimal.Decimal values are accepted
// and coerced. Any non-numeric value is rejected with a syntax error.
func (r *ConstantRegistry) Define(name string, value interface{}) error {
	var f float64
	switch v := value.(type) {
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int:
		f = float64(v)
	case int32:
		f = float64(v)
	case int64:
		f = float64(v)
	case decimal.Decimal:
		f, _ = v.Float64()
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return &grammar.SyntaxError{Msg: "value must be numeric"}
		}
		f, _ = d.Float64()
	default:
		return &grammar.SyntaxError{Msg: "value must be numeric"}
	}
	tracer().Debugf("defining constant %s = %g", name, f)
	r.consts[name] = f
	return nil
}

// Resolve looks up a constant. Presence is reported with the second return
// value; the reducer turns a missing name into a runtime error.
func (r *ConstantRegistry) Resolve(name string) (float64, bool) {
	v, ok := r.consts[name]
	return v, ok
}

var _ evaluator.Context = &ConstantRegistry{}
