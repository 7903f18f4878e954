package schema_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-weave/pkg/data"
	"github.com/goliatone/go-weave/pkg/schema"
)

func TestParseInfersKinds(t *testing.T) {
	node := mustParse(t, `
properties:
  name:
    required: true
  tags:
    items:
      type: string
  level:
    type: integer
`)

	if node.Kind != data.KindObject {
		t.Fatalf("root kind = %s, want object", node.Kind)
	}
	name := node.Property("name")
	if name == nil || name.Kind != data.KindString || !name.Required {
		t.Fatalf("name node = %+v", name)
	}
	tags := node.Property("tags")
	if tags == nil || tags.Kind != data.KindSequence || tags.Items == nil {
		t.Fatalf("tags node = %+v", tags)
	}
	level := node.Property("level")
	if level == nil || level.Kind != data.KindNumber {
		t.Fatalf("level node = %+v", level)
	}
}

func TestParseCarriesPromptMetadata(t *testing.T) {
	node := mustParse(t, `
type: object
properties:
  channel:
    type: string
    required: true
    description: Release channel
    default: stable
    enum: [stable, beta, 3]
`)

	channel := node.Property("channel")
	if channel == nil {
		t.Fatal("channel property missing")
	}
	if channel.Description != "Release channel" || channel.Default != "stable" {
		t.Fatalf("metadata = %+v", channel)
	}
	if diff := cmp.Diff([]string{"stable", "beta", "3"}, channel.Enum); diff != "" {
		t.Fatalf("enum (-want +got):\n%s", diff)
	}
}

func TestParseRejectsMalformedSchemas(t *testing.T) {
	cases := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{
			name:    "non-mapping node",
			doc:     `- a`,
			wantErr: "expected a mapping",
		},
		{
			name: "unknown type",
			doc: `
type: object
properties:
  x: {type: widget}
`,
			wantErr: "unknown kind",
		},
		{
			name: "required not boolean",
			doc: `
type: object
properties:
  x: {type: string, required: yup}
`,
			wantErr: "required must be a boolean",
		},
		{
			name: "enum on container",
			doc: `
type: object
properties:
  x:
    type: object
    enum: [a, b]
`,
			wantErr: "enum requires a scalar",
		},
		{
			name: "enum entry not scalar",
			doc: `
type: object
properties:
  x:
    type: string
    enum: [[nested]]
`,
			wantErr: "must be a scalar",
		},
		{
			name: "properties on scalar",
			doc: `
type: string
properties:
  x: {type: string}
`,
			wantErr: "properties require object kind",
		},
		{
			name: "default not scalar",
			doc: `
type: object
properties:
  x:
    type: string
    default: {a: 1}
`,
			wantErr: "default must be a scalar",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := schema.ParseBytes(data.FormatYAML, []byte(tc.doc))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("error %q does not mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestParseErrorNamesThePath(t *testing.T) {
	_, err := schema.ParseBytes(data.FormatYAML, []byte(`
type: object
properties:
  build:
    type: object
    properties:
      tag: {type: widget}
`))
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "build.tag") {
		t.Fatalf("error %q does not name the offending path", err)
	}
}

func TestCloneIsDeep(t *testing.T) {
	node := mustParse(t, releaseSchema)
	clone := node.Clone()

	clone.Property("channel").Enum[0] = "mutated"
	clone.Property("build").Property("number").Required = false

	if node.Property("channel").Enum[0] != "stable" {
		t.Fatal("clone shares enum storage")
	}
	if !node.Property("build").Property("number").Required {
		t.Fatal("clone shares nested nodes")
	}
}
