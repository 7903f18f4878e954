package resolve

import (
	"fmt"

	"github.com/goliatone/go-weave/pkg/data"
)

// PromptSpec describes one required value the resolver needs from the
// operator: where it lands in the context tree, the kind it must decode to,
// and the schema metadata that shapes the prompt.
type PromptSpec struct {
	Path        data.Path
	Kind        data.Kind
	Description string
	Default     string
	Enum        []string
}

// Message returns the operator-facing prompt line.
func (s PromptSpec) Message() string {
	if s.Description != "" {
		return fmt.Sprintf("%s (%s)", s.Description, s.Path)
	}
	return fmt.Sprintf("Value for %s", s.Path)
}
