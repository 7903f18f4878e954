package helpers

import "fmt"

// PatternError reports a regular expression that failed to compile inside a
// helper invocation. Helper is the template-facing helper name and Pattern
// the offending expression.
type PatternError struct {
	Helper  string
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("helpers: %s: invalid pattern %q: %v", e.Helper, e.Pattern, e.Err)
}

// Unwrap exposes the underlying compile error.
func (e *PatternError) Unwrap() error {
	return e.Err
}
