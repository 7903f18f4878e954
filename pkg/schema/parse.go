package schema

import (
	"fmt"

	"github.com/goliatone/go-weave/pkg/data"
)

// Parse builds a schema tree from a decoded schema document. The document
// vocabulary mirrors the data encodings: each node is a mapping with
// optional "type", "required", "description", "default", "enum",
// "properties", and "items" keys. When "type" is omitted it is inferred
// from structure (properties imply object, items imply sequence) and
// otherwise defaults to string. Unknown keys are ignored.
func Parse(doc data.Value) (*Node, error) {
	root, err := parseNode(doc, nil)
	if err != nil {
		return nil, err
	}
	if err := root.Validate(); err != nil {
		return nil, err
	}
	return root, nil
}

// ParseBytes decodes raw bytes in the given format and parses the result.
func ParseBytes(format data.Format, raw []byte) (*Node, error) {
	doc, err := data.Decode(format, raw)
	if err != nil {
		return nil, err
	}
	return Parse(doc)
}

func parseNode(value data.Value, path data.Path) (*Node, error) {
	if value.Kind() != data.KindObject {
		return nil, fmt.Errorf("schema: node at %s: expected a mapping, got %s", path, value.Kind())
	}

	node := &Node{}

	if typeField, ok := value.Field("type"); ok {
		if typeField.Kind() != data.KindString {
			return nil, fmt.Errorf("schema: node at %s: type must be a string", path)
		}
		kind, err := data.ParseKind(typeField.Str())
		if err != nil {
			return nil, fmt.Errorf("schema: node at %s: %w", path, err)
		}
		node.Kind = kind
	}

	if requiredField, ok := value.Field("required"); ok {
		if requiredField.Kind() != data.KindBool {
			return nil, fmt.Errorf("schema: node at %s: required must be a boolean", path)
		}
		node.Required = requiredField.Bool()
	}

	if descField, ok := value.Field("description"); ok {
		node.Description = descField.ScalarString()
	}

	if defaultField, ok := value.Field("default"); ok && !defaultField.IsNull() {
		if !defaultField.Kind().IsScalar() {
			return nil, fmt.Errorf("schema: node at %s: default must be a scalar", path)
		}
		node.Default = defaultField.ScalarString()
	}

	if enumField, ok := value.Field("enum"); ok {
		if enumField.Kind() != data.KindSequence {
			return nil, fmt.Errorf("schema: node at %s: enum must be a sequence", path)
		}
		for i, entry := range enumField.Items() {
			if !entry.Kind().IsScalar() {
				return nil, fmt.Errorf("schema: node at %s: enum entry %d must be a scalar", path, i)
			}
			node.Enum = append(node.Enum, entry.ScalarString())
		}
	}

	if propsField, ok := value.Field("properties"); ok {
		if propsField.Kind() != data.KindObject {
			return nil, fmt.Errorf("schema: node at %s: properties must be a mapping", path)
		}
		node.Properties = make(map[string]*Node, propsField.Len())
		for _, name := range propsField.Keys() {
			propValue, _ := propsField.Field(name)
			prop, err := parseNode(propValue, path.Child(name))
			if err != nil {
				return nil, err
			}
			node.Properties[name] = prop
		}
	}

	if itemsField, ok := value.Field("items"); ok {
		items, err := parseNode(itemsField, path.Index(0))
		if err != nil {
			return nil, err
		}
		node.Items = items
	}

	if node.Kind == "" {
		switch {
		case node.Properties != nil:
			node.Kind = data.KindObject
		case node.Items != nil:
			node.Kind = data.KindSequence
		default:
			node.Kind = data.KindString
		}
	}

	return node, nil
}
