package schema

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-weave/pkg/data"
)

// ViolationKind classifies a schema-conformance failure.
type ViolationKind string

const (
	// MissingRequired marks a required value that is absent or null. It is
	// the only violation the interactive resolver can recover from.
	MissingRequired ViolationKind = "missing-required"
	// TypeMismatch marks a present value whose runtime kind differs from
	// the declared kind.
	TypeMismatch ViolationKind = "type-mismatch"
	// EnumViolation marks a scalar outside the declared allowed set.
	EnumViolation ViolationKind = "enum-violation"
)

// Expectation is the schema excerpt attached to a violation: enough of the
// node to explain what was expected and to derive a prompt.
type Expectation struct {
	Kind        data.Kind
	Enum        []string
	Description string
	Default     string
}

// Violation reports a single conformance failure at one context path.
// Violations are produced fresh on every validation pass and never
// persisted across merges.
type Violation struct {
	Path     data.Path
	Kind     ViolationKind
	Expected Expectation
}

// String renders a human-readable account of the violation.
func (v Violation) String() string {
	switch v.Kind {
	case MissingRequired:
		return fmt.Sprintf("missing required value at %s (%s)", v.Path, v.Expected.Kind)
	case TypeMismatch:
		return fmt.Sprintf("value at %s is not a %s", v.Path, v.Expected.Kind)
	case EnumViolation:
		return fmt.Sprintf("value at %s must be one of [%s]", v.Path, strings.Join(v.Expected.Enum, ", "))
	default:
		return fmt.Sprintf("violation at %s", v.Path)
	}
}

func expectation(node *Node) Expectation {
	if node == nil {
		return Expectation{}
	}
	out := Expectation{
		Kind:        node.Kind,
		Description: node.Description,
		Default:     node.Default,
	}
	if len(node.Enum) > 0 {
		out.Enum = append([]string(nil), node.Enum...)
	}
	return out
}
