package handlebars_test

import (
	"context"
	"errors"
	"testing"

	"github.com/goliatone/go-weave/pkg/data"
	"github.com/goliatone/go-weave/pkg/helpers"
	"github.com/goliatone/go-weave/pkg/render"
	"github.com/goliatone/go-weave/pkg/render/handlebars"
)

func compile(t *testing.T, source string) render.Template {
	t.Helper()
	tpl, err := handlebars.New().Compile("test", source, helpers.Builtin())
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	return tpl
}

func renderString(t *testing.T, source string, value data.Value) string {
	t.Helper()
	out, err := compile(t, source).Render(context.Background(), value)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return out
}

func TestRenderInterpolatesAndIterates(t *testing.T) {
	source := "{{title}}: {{#each tags}}{{this}} {{/each}}"

	full := data.ObjectValue(map[string]data.Value{
		"title": data.StringValue("Report"),
		"tags":  data.SequenceValue(data.StringValue("ops"), data.StringValue("weekly")),
	})
	if got := renderString(t, source, full); got != "Report: ops weekly " {
		t.Fatalf("render = %q", got)
	}

	// Absent optional values render as empty output, including the
	// sequence backing the each block.
	partial := data.ObjectValue(map[string]data.Value{
		"title": data.StringValue("Report"),
	})
	if got := renderString(t, source, partial); got != "Report: " {
		t.Fatalf("render = %q", got)
	}
}

func TestRenderMissingValueIsEmpty(t *testing.T) {
	if got := renderString(t, "[{{missing}}]", data.ObjectValue(nil)); got != "[]" {
		t.Fatalf("render = %q", got)
	}
}

func TestUnknownHelperFailsAtCompile(t *testing.T) {
	_, err := handlebars.New().Compile("test", "{{snake_case name}}", helpers.Builtin())
	if err == nil {
		t.Fatal("expected compile to fail")
	}

	var unknownErr *render.UnknownHelperError
	if !errors.As(err, &unknownErr) {
		t.Fatalf("error %T is not an UnknownHelperError", err)
	}
	if unknownErr.Helper != "snake_case" || unknownErr.Template != "test" {
		t.Fatalf("unknown helper error = %+v", unknownErr)
	}
}

func TestHelpersRunInsideTemplates(t *testing.T) {
	value := data.ObjectValue(map[string]data.Value{
		"version": data.StringValue("a1b22c333"),
	})
	got := renderString(t, `{{regex_replace "[0-9]+" "#" version}}`, value)
	if got != "a#b#c#" {
		t.Fatalf("render = %q, want %q", got, "a#b#c#")
	}
}

func TestSubexpressionHelpers(t *testing.T) {
	source := `{{#if (regex_match "^v[0-9]" version)}}tagged{{/if}}`

	tagged := data.ObjectValue(map[string]data.Value{"version": data.StringValue("v1.2")})
	if got := renderString(t, source, tagged); got != "tagged" {
		t.Fatalf("render = %q", got)
	}

	plain := data.ObjectValue(map[string]data.Value{"version": data.StringValue("build-7")})
	if got := renderString(t, source, plain); got != "" {
		t.Fatalf("render = %q", got)
	}
}

func TestUnknownHelperInSubexpression(t *testing.T) {
	_, err := handlebars.New().Compile("test", "{{#if (shout name)}}x{{/if}}", helpers.Builtin())

	var unknownErr *render.UnknownHelperError
	if !errors.As(err, &unknownErr) {
		t.Fatalf("error %v is not an UnknownHelperError", err)
	}
	if unknownErr.Helper != "shout" {
		t.Fatalf("helper = %q", unknownErr.Helper)
	}
}

func TestHelperFailureSurfacesAsRenderError(t *testing.T) {
	value := data.ObjectValue(map[string]data.Value{"name": data.StringValue("x")})
	_, err := compile(t, `{{regex_match "[" name}}`).Render(context.Background(), value)
	if err == nil {
		t.Fatal("expected render to fail")
	}

	var renderErr *render.RenderError
	if !errors.As(err, &renderErr) {
		t.Fatalf("error %T is not a RenderError", err)
	}
	var patternErr *helpers.PatternError
	if !errors.As(err, &patternErr) {
		t.Fatalf("cause %v is not a PatternError", err)
	}
	if patternErr.Pattern != "[" {
		t.Fatalf("pattern = %q", patternErr.Pattern)
	}
}

func TestMalformedSourceFailsAtCompile(t *testing.T) {
	_, err := handlebars.New().Compile("test", "{{#each items}}unclosed", helpers.Builtin())
	if err == nil {
		t.Fatal("expected compile to fail")
	}

	var compileErr *render.CompileError
	if !errors.As(err, &compileErr) {
		t.Fatalf("error %T is not a CompileError", err)
	}
}

func TestObjectSectionsNeedNoRegistration(t *testing.T) {
	source := "{{#user}}{{name}}{{/user}}"
	tpl, err := handlebars.New().Compile("test", source, helpers.NewRegistry())
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	value := data.ObjectValue(map[string]data.Value{
		"user": data.ObjectValue(map[string]data.Value{
			"name": data.StringValue("alice"),
		}),
	})
	out, err := tpl.Render(context.Background(), value)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "alice" {
		t.Fatalf("render = %q", out)
	}
}

func TestEscapingFollowsHandlebarsRules(t *testing.T) {
	value := data.ObjectValue(map[string]data.Value{
		"raw": data.StringValue("a & b"),
	})

	if got := renderString(t, "{{raw}}", value); got != "a &amp; b" {
		t.Fatalf("escaped render = %q", got)
	}
	if got := renderString(t, "{{{raw}}}", value); got != "a & b" {
		t.Fatalf("raw render = %q", got)
	}
}

func TestRenderHonoursContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := compile(t, "{{title}}").Render(ctx, data.ObjectValue(nil))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}
