package schema

import (
	"fmt"
	"sort"

	"github.com/goliatone/go-weave/pkg/data"
)

// Node describes the expected shape of one location in a context tree:
// its kind, whether a value is required there, nested expectations for
// object properties and sequence items, and an optional closed set of
// allowed scalar values.
type Node struct {
	Kind        data.Kind
	Required    bool
	Description string
	Default     string
	Enum        []string
	Properties  map[string]*Node
	Items       *Node
}

// PropertyNames returns the object property names in sorted order, which is
// the order validation visits them and therefore the order prompts appear.
func (n *Node) PropertyNames() []string {
	if n == nil || len(n.Properties) == 0 {
		return nil
	}
	names := make([]string, 0, len(n.Properties))
	for name := range n.Properties {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Property returns the named property node, or nil.
func (n *Node) Property(name string) *Node {
	if n == nil {
		return nil
	}
	return n.Properties[name]
}

// Clone creates a deep copy of the node tree.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	out := &Node{
		Kind:        n.Kind,
		Required:    n.Required,
		Description: n.Description,
		Default:     n.Default,
	}
	if len(n.Enum) > 0 {
		out.Enum = append([]string(nil), n.Enum...)
	}
	if len(n.Properties) > 0 {
		out.Properties = make(map[string]*Node, len(n.Properties))
		for name, prop := range n.Properties {
			out.Properties[name] = prop.Clone()
		}
	}
	out.Items = n.Items.Clone()
	return out
}

// Validate performs structural sanity checks on the schema tree itself:
// kinds must be known, enumerations only constrain scalars, and nested
// expectations must sit under the matching container kind.
func (n *Node) Validate() error {
	return n.validateAt(nil)
}

func (n *Node) validateAt(path data.Path) error {
	if n == nil {
		return nil
	}
	if !n.Kind.Valid() {
		return fmt.Errorf("schema: node at %s: unknown kind %q", path, string(n.Kind))
	}
	if len(n.Enum) > 0 && !n.Kind.IsScalar() {
		return fmt.Errorf("schema: node at %s: enum requires a scalar kind, got %s", path, n.Kind)
	}
	if len(n.Properties) > 0 && n.Kind != data.KindObject {
		return fmt.Errorf("schema: node at %s: properties require object kind, got %s", path, n.Kind)
	}
	if n.Items != nil && n.Kind != data.KindSequence {
		return fmt.Errorf("schema: node at %s: items require sequence kind, got %s", path, n.Kind)
	}

	for _, name := range n.PropertyNames() {
		if err := n.Properties[name].validateAt(path.Child(name)); err != nil {
			return err
		}
	}
	if n.Items != nil {
		if err := n.Items.validateAt(path.Index(0)); err != nil {
			return err
		}
	}
	return nil
}

// hasRequiredDescendants reports whether any object property beneath the
// node is required, directly or transitively. It deliberately ignores
// requirements under sequence items: absent sequences have no elements to
// satisfy them.
func (n *Node) hasRequiredDescendants() bool {
	if n == nil {
		return false
	}
	for _, prop := range n.Properties {
		if prop == nil {
			continue
		}
		if prop.Required {
			return true
		}
		if prop.Kind == data.KindObject && prop.hasRequiredDescendants() {
			return true
		}
	}
	return false
}
