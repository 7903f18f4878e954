package render

import "fmt"

// UnknownHelperError reports a template that references a helper absent
// from the registry it was compiled against. It is always raised at
// compile time, before any prompting or rendering happens.
type UnknownHelperError struct {
	Template string
	Helper   string
}

func (e *UnknownHelperError) Error() string {
	return fmt.Sprintf("render: template %q references unknown helper %q", e.Template, e.Helper)
}

// CompileError reports template source the engine could not parse. Line is
// zero when the engine did not expose a position.
type CompileError struct {
	Template string
	Line     int
	Err      error
}

func (e *CompileError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("render: compile template %q: line %d: %v", e.Template, e.Line, e.Err)
	}
	return fmt.Sprintf("render: compile template %q: %v", e.Template, e.Err)
}

// Unwrap exposes the engine's parse error.
func (e *CompileError) Unwrap() error {
	return e.Err
}

// RenderError reports a failure while evaluating a compiled template, such
// as a helper rejecting its arguments at runtime.
type RenderError struct {
	Template string
	Err      error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render: render template %q: %v", e.Template, e.Err)
}

// Unwrap exposes the evaluation error.
func (e *RenderError) Unwrap() error {
	return e.Err
}
