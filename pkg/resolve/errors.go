package resolve

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-weave/pkg/data"
	"github.com/goliatone/go-weave/pkg/schema"
)

// ValidationError is fatal: the merged context holds values that contradict
// the schema, and prompting cannot repair a wrong value that is already
// present.
type ValidationError struct {
	Violations []schema.Violation
}

func (e *ValidationError) Error() string {
	if len(e.Violations) == 0 {
		return "resolve: validation failed"
	}
	parts := make([]string, len(e.Violations))
	for i, violation := range e.Violations {
		parts[i] = violation.String()
	}
	return "resolve: validation failed: " + strings.Join(parts, "; ")
}

// UnresolvedError reports the required paths still missing after a prompting
// pass made no progress.
type UnresolvedError struct {
	Paths []data.Path
}

func (e *UnresolvedError) Error() string {
	if len(e.Paths) == 0 {
		return "resolve: required values remain unresolved"
	}
	parts := make([]string, len(e.Paths))
	for i, path := range e.Paths {
		parts[i] = path.String()
	}
	return fmt.Sprintf("resolve: required values remain unresolved: %s", strings.Join(parts, ", "))
}
