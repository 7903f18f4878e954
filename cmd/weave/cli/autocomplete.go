package cli

import (
	"context"

	"github.com/spf13/pflag"
)

// AutocompleteCommand renders a shell completion script for the command tree.
func AutocompleteCommand() *Command {
	var (
		out   string
		shell string
	)

	flags := func() *pflag.FlagSet {
		fs := pflag.NewFlagSet("autocomplete", pflag.ContinueOnError)
		fs.StringVarP(&out, "out", "o", "", "file to write the completion script to (required)")
		fs.StringVarP(&shell, "shell", "s", "", "target shell: bash, zsh, or fish (required)")
		return fs
	}

	return &Command{
		Name:    "autocomplete",
		Summary: "Render a shell completion script",
		Usage:   "weave autocomplete -o <path> -s bash|zsh|fish",
		Flags:   flags,
		Examples: []Example{
			{
				Description: "Install bash completions",
				Command:     "weave autocomplete -s bash -o /etc/bash_completion.d/weave",
			},
		},
		Run: func(ctx context.Context, args []string) error {
			if len(args) > 0 {
				return usageErrorf("autocomplete takes no positional arguments (got %q)", args[0])
			}
			if out == "" {
				return usageErrorf("autocomplete requires -o <path>")
			}
			return runAutocomplete(ctx, out, shell)
		},
	}
}

func runAutocomplete(ctx context.Context, out, shell string) error {
	switch shell {
	case "bash", "zsh", "fish":
	case "":
		return usageErrorf("autocomplete requires -s bash|zsh|fish")
	default:
		return usageErrorf("unknown shell %q (expected bash, zsh, or fish)", shell)
	}

	artifact, err := renderEmbedded(ctx, "completion_"+shell+".hbs", Root())
	if err != nil {
		return err
	}
	return writeArtifact(out, artifact)
}
