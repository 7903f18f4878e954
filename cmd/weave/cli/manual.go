package cli

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"

	"github.com/goliatone/go-weave/pkg/helpers"
	"github.com/goliatone/go-weave/pkg/render/handlebars"
)

//go:embed templates/*.hbs
var templateFS embed.FS

const (
	formatManpages = "manpages"
	formatMarkdown = "markdown"
)

// ManCommand renders the manual from the command tree itself, using the same
// engine the tool ships.
func ManCommand() *Command {
	var (
		out    string
		format string
	)

	flags := func() *pflag.FlagSet {
		fs := pflag.NewFlagSet("man", pflag.ContinueOnError)
		fs.StringVarP(&out, "out", "o", "", "file to write the manual to (required)")
		fs.StringVarP(&format, "format", "f", formatMarkdown, "manual format: manpages or markdown")
		return fs
	}

	return &Command{
		Name:    "man",
		Summary: "Render the manual",
		Usage:   "weave man -o <path> [-f manpages|markdown]",
		Flags:   flags,
		Run: func(ctx context.Context, args []string) error {
			if len(args) > 0 {
				return usageErrorf("man takes no positional arguments (got %q)", args[0])
			}
			if out == "" {
				return usageErrorf("man requires -o <path>")
			}
			return runMan(ctx, out, format)
		},
	}
}

func runMan(ctx context.Context, out, format string) error {
	var templateName string
	switch format {
	case formatManpages:
		templateName = "man_manpages.hbs"
	case formatMarkdown:
		templateName = "man_markdown.hbs"
	default:
		return usageErrorf("unknown manual format %q (expected manpages or markdown)", format)
	}

	artifact, err := renderEmbedded(ctx, templateName, Root())
	if err != nil {
		return err
	}
	return writeArtifact(out, artifact)
}

// renderEmbedded compiles one of the embedded templates against the command
// tree model.
func renderEmbedded(ctx context.Context, name string, root *Command) (string, error) {
	source, err := fs.ReadFile(templateFS, "templates/"+name)
	if err != nil {
		return "", fmt.Errorf("read embedded template %s: %w", name, err)
	}

	model, err := commandModel(root)
	if err != nil {
		return "", err
	}

	tpl, err := handlebars.New().Compile(name, string(source), helpers.Builtin())
	if err != nil {
		return "", err
	}
	return tpl.Render(ctx, model)
}

func writeArtifact(path, artifact string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	return os.WriteFile(path, []byte(artifact), 0o644)
}
