package schema_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-weave/pkg/data"
	"github.com/goliatone/go-weave/pkg/schema"
)

const releaseAPI = `
openapi: 3.0.3
info:
  title: Release API
  version: 1.0.0
paths: {}
components:
  schemas:
    Release:
      type: object
      required: [title, channel]
      properties:
        title:
          type: string
          description: Release title
        channel:
          type: string
          enum: [stable, beta, nightly]
          default: stable
        build:
          type: object
          required: [number]
          properties:
            number:
              type: integer
            tag:
              type: string
        notes:
          type: array
          items:
            type: string
`

func TestFromOpenAPIConvertsComponentSchema(t *testing.T) {
	node, err := schema.FromOpenAPI(context.Background(), []byte(releaseAPI), "Release")
	if err != nil {
		t.Fatalf("convert: %v", err)
	}

	if node.Kind != data.KindObject {
		t.Fatalf("root kind = %s, want object", node.Kind)
	}

	title := node.Property("title")
	if title == nil || !title.Required || title.Kind != data.KindString {
		t.Fatalf("title node = %+v", title)
	}
	if title.Description != "Release title" {
		t.Fatalf("title description = %q", title.Description)
	}

	channel := node.Property("channel")
	if channel == nil || !channel.Required {
		t.Fatalf("channel node = %+v", channel)
	}
	if diff := cmp.Diff([]string{"stable", "beta", "nightly"}, channel.Enum); diff != "" {
		t.Fatalf("channel enum (-want +got):\n%s", diff)
	}
	if channel.Default != "stable" {
		t.Fatalf("channel default = %q", channel.Default)
	}

	build := node.Property("build")
	if build == nil || build.Required {
		t.Fatalf("build node = %+v", build)
	}
	number := build.Property("number")
	if number == nil || !number.Required || number.Kind != data.KindNumber {
		t.Fatalf("build.number node = %+v", number)
	}

	notes := node.Property("notes")
	if notes == nil || notes.Kind != data.KindSequence {
		t.Fatalf("notes node = %+v", notes)
	}
	if notes.Items == nil || notes.Items.Kind != data.KindString {
		t.Fatalf("notes items = %+v", notes.Items)
	}
}

func TestFromOpenAPIValidatesAgainstContexts(t *testing.T) {
	node, err := schema.FromOpenAPI(context.Background(), []byte(releaseAPI), "Release")
	if err != nil {
		t.Fatalf("convert: %v", err)
	}

	release := data.ObjectValue(map[string]data.Value{
		"title":   data.StringValue("1.4.0"),
		"channel": data.StringValue("weekly"),
		"build": data.ObjectValue(map[string]data.Value{
			"number": data.NumberValue(7),
		}),
	})
	violations := schema.Validate(release, node)
	if len(violations) != 1 {
		t.Fatalf("violations = %v", violations)
	}
	if violations[0].Kind != schema.EnumViolation || violations[0].Path.String() != "channel" {
		t.Fatalf("violation = %v", violations[0])
	}
}

func TestFromOpenAPIUnknownComponent(t *testing.T) {
	_, err := schema.FromOpenAPI(context.Background(), []byte(releaseAPI), "Deploy")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), `component "Deploy" not found`) {
		t.Fatalf("error = %q", err)
	}
}

func TestFromOpenAPIWithoutComponents(t *testing.T) {
	doc := `
openapi: 3.0.3
info:
  title: Empty
  version: 1.0.0
paths: {}
`
	_, err := schema.FromOpenAPI(context.Background(), []byte(doc), "Release")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "no component schemas") {
		t.Fatalf("error = %q", err)
	}
}
