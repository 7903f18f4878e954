// Package resolve closes the gap between a merged context tree and the
// schema describing it. Values already present are validated; required
// values that are absent are collected from an operator, prompt by prompt,
// until the context is complete or the operator stops making progress.
package resolve

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-weave/pkg/data"
	"github.com/goliatone/go-weave/pkg/schema"
)

// Resolver runs the validate-prompt-merge loop against one schema.
type Resolver struct {
	schema   *schema.Node
	operator Operator
	loose    bool
}

// Option customises resolver construction.
type Option func(*Resolver)

// WithOperator sets the prompt operator. The default is the headless
// operator, which only serves schema defaults.
func WithOperator(operator Operator) Option {
	return func(r *Resolver) {
		if operator != nil {
			r.operator = operator
		}
	}
}

// WithLooseValidation makes missing required values non-fatal: the resolver
// skips prompting and returns the context as-is. Values that contradict the
// schema still fail.
func WithLooseValidation() Option {
	return func(r *Resolver) {
		r.loose = true
	}
}

// New creates a resolver for the given schema. A nil schema accepts every
// context unchanged.
func New(root *schema.Node, options ...Option) *Resolver {
	resolver := &Resolver{
		schema:   root,
		operator: HeadlessOperator{},
	}
	for _, option := range options {
		if option == nil {
			continue
		}
		option(resolver)
	}
	return resolver
}

// Resolve validates the context and prompts for missing required values
// until validation passes. Wrong values present in the context are fatal
// immediately. Prompts are issued in depth-first path order; answers that
// are declined or do not decode as the expected kind leave their path
// unresolved for the pass. A pass that resolves nothing ends the loop with
// UnresolvedError naming the outstanding paths.
func (r *Resolver) Resolve(ctx context.Context, value data.Value) (data.Value, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	current := value
	for {
		if err := ctx.Err(); err != nil {
			return data.Null(), err
		}

		violations := schema.Validate(current, r.schema)
		if fatal := fatalViolations(violations); len(fatal) > 0 {
			return data.Null(), &ValidationError{Violations: fatal}
		}

		missing := missingViolations(violations)
		if len(missing) == 0 || r.loose {
			return current, nil
		}

		overlay := data.Null()
		answered := 0
		for _, violation := range missing {
			answer, err := r.operator.Ask(ctx, promptSpec(violation))
			if err != nil {
				if errors.Is(err, ErrDeclined) {
					continue
				}
				return data.Null(), err
			}

			converted, err := convertAnswer(violation.Expected.Kind, answer)
			if err != nil {
				continue
			}
			overlay = data.SetPath(overlay, violation.Path, converted)
			answered++
		}

		if answered == 0 {
			return data.Null(), &UnresolvedError{Paths: missingPaths(missing)}
		}
		current = data.Merge(current, overlay)
	}
}

func fatalViolations(violations []schema.Violation) []schema.Violation {
	var fatal []schema.Violation
	for _, violation := range violations {
		if violation.Kind == schema.TypeMismatch || violation.Kind == schema.EnumViolation {
			fatal = append(fatal, violation)
		}
	}
	return fatal
}

func missingViolations(violations []schema.Violation) []schema.Violation {
	var missing []schema.Violation
	for _, violation := range violations {
		if violation.Kind == schema.MissingRequired {
			missing = append(missing, violation)
		}
	}
	return missing
}

func missingPaths(violations []schema.Violation) []data.Path {
	paths := make([]data.Path, len(violations))
	for i, violation := range violations {
		paths[i] = violation.Path
	}
	return paths
}

func promptSpec(violation schema.Violation) PromptSpec {
	return PromptSpec{
		Path:        violation.Path,
		Kind:        violation.Expected.Kind,
		Description: violation.Expected.Description,
		Default:     violation.Expected.Default,
		Enum:        append([]string(nil), violation.Expected.Enum...),
	}
}

// convertAnswer decodes an operator answer into the kind the schema expects
// at the prompted path. Container kinds accept a JSON value.
func convertAnswer(kind data.Kind, answer string) (data.Value, error) {
	switch kind {
	case data.KindString, data.Kind(""):
		return data.StringValue(answer), nil

	case data.KindBool:
		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "true", "yes", "y", "1":
			return data.BoolValue(true), nil
		case "false", "no", "n", "0":
			return data.BoolValue(false), nil
		default:
			return data.Null(), fmt.Errorf("resolve: %q is not a boolean", answer)
		}

	case data.KindNumber:
		number, err := strconv.ParseFloat(strings.TrimSpace(answer), 64)
		if err != nil {
			return data.Null(), fmt.Errorf("resolve: %q is not a number", answer)
		}
		return data.NumberValue(number), nil

	case data.KindObject, data.KindSequence:
		value, err := data.Decode(data.FormatJSON, []byte(answer))
		if err != nil {
			return data.Null(), err
		}
		if value.Kind() != kind {
			return data.Null(), fmt.Errorf("resolve: answer decodes to %s, expected %s", value.Kind(), kind)
		}
		return value, nil

	default:
		return data.Null(), fmt.Errorf("resolve: unsupported kind %s", kind)
	}
}
