package grammar

import "fmt"

// SyntaxError flags lexical-level failures: an input run matching no token
// pattern, a pattern matching the empty string, or an empty parenthesis
// group.
type SyntaxError struct {
	Msg string
}

func (e *SyntaxError) Error() string {
	return "syntax error: " + e.Msg
}

func syntaxErrorf(format string, args ...interface{}) *SyntaxError {
	return &SyntaxError{Msg: fmt.Sprintf(format, args...)}
}

// ParseError flags structural failures, i.e. mismatched parentheses found
// during conversion to postfix order.
type ParseError struct {
	Msg string
}

func (e *ParseError) Error() string {
	return "parse error: " + e.Msg
}

func parseErrorf(format string, args ...interface{}) *ParseError {
	return &ParseError{Msg: fmt.Sprintf(format, args...)}
}
