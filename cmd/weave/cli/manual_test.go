package cli

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRenderEmbeddedMarkdownManual(t *testing.T) {
	out, err := renderEmbedded(context.Background(), "man_markdown.hbs", Root())
	if err != nil {
		t.Fatalf("render manual: %v", err)
	}

	for _, want := range []string{
		"# weave",
		"### weave render",
		"### weave autocomplete",
		"`--config`",
		"`--trust`",
		"weave render -t release-notes",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("manual missing %q\n\nFull output:\n%s", want, out)
		}
	}
}

func TestRenderEmbeddedManpages(t *testing.T) {
	out, err := renderEmbedded(context.Background(), "man_manpages.hbs", Root())
	if err != nil {
		t.Fatalf("render manual: %v", err)
	}

	for _, want := range []string{
		`.TH "WEAVE" "1"`,
		".SH NAME",
		`weave \- Text templating for CLIs`,
		".SH COMMANDS",
		`\fB\-\-config\fR`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("manual missing %q\n\nFull output:\n%s", want, out)
		}
	}
}

func TestRenderEmbeddedCompletions(t *testing.T) {
	cases := []struct {
		shell string
		wants []string
	}{
		{
			shell: "bash",
			wants: []string{"_weave()", "complete -F _weave weave", "render ", "--template"},
		},
		{
			shell: "zsh",
			wants: []string{"#compdef weave", "'render:Render a configured template'", "--backend"},
		},
		{
			shell: "fish",
			wants: []string{
				"complete -c weave -f",
				"complete -c weave -n __fish_use_subcommand -a render",
				"-l template -s t",
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.shell, func(t *testing.T) {
			out, err := renderEmbedded(context.Background(), "completion_"+tc.shell+".hbs", Root())
			if err != nil {
				t.Fatalf("render completion: %v", err)
			}
			for _, want := range tc.wants {
				if !strings.Contains(out, want) {
					t.Errorf("script missing %q\n\nFull output:\n%s", want, out)
				}
			}
		})
	}
}

func TestRunManWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docs", "weave.1")

	if err := runMan(context.Background(), path, formatManpages); err != nil {
		t.Fatalf("man: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.HasPrefix(string(raw), `.TH "WEAVE"`) {
		t.Fatalf("output starts with %q", string(raw[:40]))
	}
}

func TestRunManRejectsUnknownFormat(t *testing.T) {
	err := runMan(context.Background(), filepath.Join(t.TempDir(), "out"), "pdf")

	var usage *UsageError
	if !errors.As(err, &usage) {
		t.Fatalf("error %T is not a UsageError: %v", err, err)
	}
}

func TestRunAutocompleteWritesScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weave.bash")

	if err := runAutocomplete(context.Background(), path, "bash"); err != nil {
		t.Fatalf("autocomplete: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(raw), "complete -F _weave weave") {
		t.Fatalf("script = %q", string(raw))
	}
}

func TestRunAutocompleteRejectsUnknownShell(t *testing.T) {
	err := runAutocomplete(context.Background(), filepath.Join(t.TempDir(), "out"), "powershell")

	var usage *UsageError
	if !errors.As(err, &usage) {
		t.Fatalf("error %T is not a UsageError: %v", err, err)
	}
}
