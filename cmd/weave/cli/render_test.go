package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-weave/pkg/config"
	"github.com/goliatone/go-weave/pkg/resolve"
)

const renderTestConfig = `
templates:
  greeting:
    description: Say hello
    template:
      inline: "Hello {{upper name}}"
    schema:
      inline: |
        type: object
        properties:
          name:
            type: string
            required: true
    values:
      name:
        static: ada
  strict:
    template:
      inline: "v{{version}}"
    schema:
      inline: |
        type: object
        properties:
          version:
            type: string
            required: true
  shelly:
    template:
      inline: "{{who}}"
    values:
      who:
        shell: whoami
`

func writeRenderConfig(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(renderTestConfig), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestRunRenderHeadless(t *testing.T) {
	var out bytes.Buffer
	err := runRender(context.Background(), &out, renderOptions{
		configPath: writeRenderConfig(t),
		template:   "greeting",
		backend:    "headless",
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out.String() != "Hello ADA" {
		t.Fatalf("artifact = %q", out.String())
	}
}

func TestRunRenderOverridesWin(t *testing.T) {
	var out bytes.Buffer
	err := runRender(context.Background(), &out, renderOptions{
		configPath: writeRenderConfig(t),
		template:   "greeting",
		overrides:  []string{"name=bob"},
		backend:    "headless",
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out.String() != "Hello BOB" {
		t.Fatalf("artifact = %q", out.String())
	}
}

func TestRunRenderUnresolvedRequired(t *testing.T) {
	var out bytes.Buffer
	err := runRender(context.Background(), &out, renderOptions{
		configPath: writeRenderConfig(t),
		template:   "strict",
		backend:    "headless",
	})

	var unresolved *resolve.UnresolvedError
	if !errors.As(err, &unresolved) {
		t.Fatalf("error %T is not an UnresolvedError: %v", err, err)
	}
	if out.Len() != 0 {
		t.Fatalf("nothing should be written on failure, got %q", out.String())
	}
}

func TestRunRenderLooseSkipsPrompting(t *testing.T) {
	var out bytes.Buffer
	err := runRender(context.Background(), &out, renderOptions{
		configPath: writeRenderConfig(t),
		template:   "strict",
		backend:    "headless",
		loose:      true,
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out.String() != "v" {
		t.Fatalf("artifact = %q", out.String())
	}
}

func TestRunRenderUntrustedShellProvider(t *testing.T) {
	var out bytes.Buffer
	err := runRender(context.Background(), &out, renderOptions{
		configPath: writeRenderConfig(t),
		template:   "shelly",
		backend:    "headless",
	})
	if !errors.Is(err, config.ErrShellNotTrusted) {
		t.Fatalf("error = %v, want shell trust refusal", err)
	}
}

func TestRunRenderUnknownTemplate(t *testing.T) {
	var out bytes.Buffer
	err := runRender(context.Background(), &out, renderOptions{
		configPath: writeRenderConfig(t),
		template:   "missing",
		backend:    "headless",
	})
	if err == nil || !strings.Contains(err.Error(), `template "missing" not found`) {
		t.Fatalf("error = %v", err)
	}
}

func TestRunRenderBadOverride(t *testing.T) {
	var out bytes.Buffer
	err := runRender(context.Background(), &out, renderOptions{
		configPath: writeRenderConfig(t),
		template:   "greeting",
		overrides:  []string{"notapair"},
		backend:    "headless",
	})

	var usage *UsageError
	if !errors.As(err, &usage) {
		t.Fatalf("error %T is not a UsageError: %v", err, err)
	}
}

func TestSelectTemplateSingleEntry(t *testing.T) {
	cfg, err := config.Parse([]byte(`
templates:
  only:
    template: {inline: "x"}
`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	name, err := selectTemplate(cfg, "headless")
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if name != "only" {
		t.Fatalf("name = %q", name)
	}
}

func TestSelectTemplateHeadlessNeedsExplicitChoice(t *testing.T) {
	cfg, err := config.Parse([]byte(renderTestConfig))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	_, err = selectTemplate(cfg, "headless")
	var usage *UsageError
	if !errors.As(err, &usage) {
		t.Fatalf("error %T is not a UsageError: %v", err, err)
	}
	for _, name := range []string{"greeting", "shelly", "strict"} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("error %q does not list %q", err.Error(), name)
		}
	}
}

func TestOperatorForRejectsUnknownBackend(t *testing.T) {
	if _, err := operatorFor("gui"); err == nil {
		t.Fatal("expected error")
	}

	operator, err := operatorFor("headless")
	if err != nil {
		t.Fatalf("headless operator: %v", err)
	}
	if _, ok := operator.(resolve.HeadlessOperator); !ok {
		t.Fatalf("operator = %T, want HeadlessOperator", operator)
	}
}
