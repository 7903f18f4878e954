package resolve

import (
	"context"
	"errors"
	"sync"
)

// Operator supplies values for prompts. Implementations range from an
// interactive terminal session to a scripted stub for tests and automation,
// and the resolver treats them interchangeably.
type Operator interface {
	Ask(ctx context.Context, spec PromptSpec) (string, error)
}

var (
	// ErrDeclined signals the operator has no answer for this prompt. The
	// resolver leaves the value unresolved and carries on with the pass.
	ErrDeclined = errors.New("resolve: prompt declined")
	// ErrAborted signals the operator cancelled the whole session
	// (e.g. Ctrl+C at a prompt).
	ErrAborted = errors.New("resolve: aborted")
)

// OperatorFunc adapts a function to the Operator interface.
type OperatorFunc func(ctx context.Context, spec PromptSpec) (string, error)

// Ask calls f.
func (f OperatorFunc) Ask(ctx context.Context, spec PromptSpec) (string, error) {
	return f(ctx, spec)
}

// ScriptOperator answers prompts from a fixed script keyed by path. Paths
// without an entry are declined, so an empty script is the stub that
// declines everything. The operator records every prompt it receives, which
// callers use to assert prompt order and count.
type ScriptOperator struct {
	mu      sync.Mutex
	answers map[string]string
	asked   []string
}

// NewScriptOperator creates a script operator over the given answers.
func NewScriptOperator(answers map[string]string) *ScriptOperator {
	copied := make(map[string]string, len(answers))
	for path, answer := range answers {
		copied[path] = answer
	}
	return &ScriptOperator{answers: copied}
}

// Ask answers from the script, declining paths it does not know.
func (o *ScriptOperator) Ask(ctx context.Context, spec PromptSpec) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	o.asked = append(o.asked, spec.Path.String())
	answer, ok := o.answers[spec.Path.String()]
	if !ok {
		return "", ErrDeclined
	}
	return answer, nil
}

// Asked returns the prompted paths in the order they were seen.
func (o *ScriptOperator) Asked() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]string(nil), o.asked...)
}

// HeadlessOperator serves non-interactive runs: a prompt resolves to its
// schema default when one exists and is declined otherwise.
type HeadlessOperator struct{}

// Ask returns the prompt default, or ErrDeclined when there is none.
func (HeadlessOperator) Ask(ctx context.Context, spec PromptSpec) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if spec.Default != "" {
		return spec.Default, nil
	}
	return "", ErrDeclined
}
