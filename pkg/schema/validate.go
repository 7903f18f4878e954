package schema

import "github.com/goliatone/go-weave/pkg/data"

// Validate checks a context value against a schema tree and returns every
// conformance failure in depth-first path order. It is pure: the same
// inputs always yield the same violations, and neither argument is
// modified. A nil schema accepts anything.
//
// Null values count as absent rather than mismatched, so a null where a
// string is required reports MissingRequired, not TypeMismatch. When a
// value's kind does not match the declared kind the walk stops at that
// subtree: nested violations beneath a mismatch would be noise.
func Validate(value data.Value, root *Node) []Violation {
	if root == nil {
		return nil
	}
	var out []Violation
	walk(value, root, nil, &out)
	return out
}

func walk(value data.Value, node *Node, path data.Path, out *[]Violation) {
	if node == nil {
		return
	}
	if value.IsNull() {
		markAbsent(node, path, out)
		return
	}
	if value.Kind() != node.Kind {
		*out = append(*out, Violation{Path: path, Kind: TypeMismatch, Expected: expectation(node)})
		return
	}

	switch node.Kind {
	case data.KindObject:
		for _, name := range node.PropertyNames() {
			prop := node.Properties[name]
			childPath := path.Child(name)
			child, ok := value.Field(name)
			if !ok || child.IsNull() {
				markAbsent(prop, childPath, out)
				continue
			}
			walk(child, prop, childPath, out)
		}
	case data.KindSequence:
		if node.Items == nil {
			return
		}
		for i, item := range value.Items() {
			walk(item, node.Items, path.Index(i), out)
		}
	default:
		if len(node.Enum) > 0 && !enumContains(node.Enum, value.ScalarString()) {
			*out = append(*out, Violation{Path: path, Kind: EnumViolation, Expected: expectation(node)})
		}
	}
}

// markAbsent handles a location with no usable value. Object nodes that
// contain required descendants are walked as if an empty object were
// present, so requirements surface at the leaves where prompting can
// satisfy them one field at a time.
func markAbsent(node *Node, path data.Path, out *[]Violation) {
	if node == nil {
		return
	}
	if node.Kind == data.KindObject && node.hasRequiredDescendants() {
		for _, name := range node.PropertyNames() {
			markAbsent(node.Properties[name], path.Child(name), out)
		}
		return
	}
	if node.Required {
		*out = append(*out, Violation{Path: path, Kind: MissingRequired, Expected: expectation(node)})
	}
}

func enumContains(allowed []string, candidate string) bool {
	for _, entry := range allowed {
		if entry == candidate {
			return true
		}
	}
	return false
}
