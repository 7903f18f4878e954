package schema

import (
	"context"
	"errors"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-weave/pkg/data"
)

// FromOpenAPI extracts a named component schema from an OpenAPI 3 document
// and converts it into a schema tree, so existing API specs can drive
// context validation and prompting without a hand-written schema document.
// OpenAPI required arrays become per-property Required flags.
func FromOpenAPI(ctx context.Context, raw []byte, component string) (*Node, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	loader := &openapi3.Loader{Context: ctx, IsExternalRefsAllowed: true}
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("schema: load openapi document: %w", err)
	}
	if spec.Components == nil || len(spec.Components.Schemas) == 0 {
		return nil, errors.New("schema: openapi document declares no component schemas")
	}

	ref, ok := spec.Components.Schemas[component]
	if !ok {
		return nil, fmt.Errorf("schema: component %q not found in openapi document", component)
	}

	node := convertOpenAPISchema(ref)
	if node == nil {
		return nil, fmt.Errorf("schema: component %q has no usable schema", component)
	}
	if err := node.Validate(); err != nil {
		return nil, err
	}
	return node, nil
}

func convertOpenAPISchema(ref *openapi3.SchemaRef) *Node {
	if ref == nil || ref.Value == nil {
		return nil
	}
	src := ref.Value

	node := &Node{
		Kind:        kindFromTypes(src.Type),
		Description: src.Description,
	}

	if len(src.Properties) > 0 {
		node.Properties = make(map[string]*Node, len(src.Properties))
		for name, property := range src.Properties {
			child := convertOpenAPISchema(property)
			if child == nil {
				continue
			}
			node.Properties[name] = child
		}
		if node.Kind == "" {
			node.Kind = data.KindObject
		}
	}
	for _, name := range src.Required {
		if child, ok := node.Properties[name]; ok {
			child.Required = true
		}
	}

	if src.Items != nil {
		node.Items = convertOpenAPISchema(src.Items)
		if node.Kind == "" {
			node.Kind = data.KindSequence
		}
	}
	if node.Kind == "" {
		node.Kind = data.KindString
	}

	if node.Kind.IsScalar() {
		for _, entry := range src.Enum {
			if text, ok := scalarText(entry); ok {
				node.Enum = append(node.Enum, text)
			}
		}
		if text, ok := scalarText(src.Default); ok {
			node.Default = text
		}
	}

	return node
}

// kindFromTypes maps the first recognised OpenAPI type onto a data kind.
// OpenAPI 3.1 allows several types per schema; any extra entries (usually
// "null") do not change the expected shape.
func kindFromTypes(types *openapi3.Types) data.Kind {
	if types == nil {
		return ""
	}
	for _, name := range types.Slice() {
		if name == "null" {
			continue
		}
		if kind, err := data.ParseKind(name); err == nil {
			return kind
		}
	}
	return ""
}

func scalarText(raw any) (string, bool) {
	if raw == nil {
		return "", false
	}
	value, err := data.FromNative(raw)
	if err != nil || !value.Kind().IsScalar() {
		return "", false
	}
	return value.ScalarString(), true
}
