package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"

	weave "github.com/goliatone/go-weave"
	"github.com/goliatone/go-weave/pkg/config"
	"github.com/goliatone/go-weave/pkg/data"
	"github.com/goliatone/go-weave/pkg/resolve"
)

type renderOptions struct {
	configPath string
	template   string
	overrides  []string
	trust      bool
	loose      bool
	backend    string
}

// RenderCommand renders a configured template to stdout.
func RenderCommand() *Command {
	opts := &renderOptions{}

	flags := func() *pflag.FlagSet {
		fs := pflag.NewFlagSet("render", pflag.ContinueOnError)
		fs.StringVarP(&opts.configPath, "config", "c", config.DefaultPath, "configuration file to use")
		fs.StringVarP(&opts.template, "template", "t", "", "template to render, skipping selection")
		fs.StringArrayVarP(&opts.overrides, "value", "v", nil, "override a value (key=value, repeatable)")
		fs.BoolVar(&opts.trust, "trust", false, "allow shell value providers to execute")
		fs.BoolVarP(&opts.loose, "loose", "l", false, "tolerate missing required values")
		fs.StringVarP(&opts.backend, "backend", "b", "", "prompt backend: cli or headless (default: cli on a terminal)")
		return fs
	}

	return &Command{
		Name:    "render",
		Summary: "Render a configured template",
		Description: `Render compiles the selected template, merges its data documents left to
right, layers value providers and -v overrides on top, resolves the result
against the template's schema, and prints the artifact to stdout.`,
		Usage: "weave render [-t <template>] [flags]",
		Flags: flags,
		Examples: []Example{
			{
				Description: "Render with an explicit template and override",
				Command:     "weave render -t release-notes -v channel=beta",
			},
			{
				Description: "Non-interactive rendering for scripts",
				Command:     "weave render -t release-notes -b headless",
			},
		},
		Run: func(ctx context.Context, args []string) error {
			if len(args) > 0 {
				return usageErrorf("render takes no positional arguments (got %q)", args[0])
			}
			return runRender(ctx, os.Stdout, *opts)
		},
	}
}

func runRender(ctx context.Context, out io.Writer, opts renderOptions) error {
	logger := NewLogger().With("command", "render")

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	name := opts.template
	if name == "" {
		name, err = selectTemplate(cfg, opts.backend)
		if err != nil {
			return err
		}
	}

	entry, err := cfg.Template(name)
	if err != nil {
		return err
	}

	location, source, err := entry.Template.Resolve(cfg.Dir())
	if err != nil {
		return err
	}
	logger.Debug("template resolved", "template", name, "source", location)

	node, err := entry.Schema.Node(ctx, cfg.Dir())
	if err != nil {
		return err
	}

	values, err := entry.ResolveValues(ctx, opts.trust)
	if err != nil {
		return err
	}
	overrides, err := config.ParseOverrides(opts.overrides)
	if err != nil {
		return &UsageError{Err: err}
	}

	operator, err := operatorFor(opts.backend)
	if err != nil {
		return err
	}

	renderOpts := []weave.Option{weave.WithOperator(operator)}
	if opts.loose {
		renderOpts = append(renderOpts, weave.WithLooseValidation())
	}

	result, err := weave.Render(ctx, weave.Request{
		Name:     name,
		Template: source,
		Engine:   entry.Engine,
		Schema:   node,
		Sources:  entry.DataSources(cfg.Dir()),
		Values:   data.Merge(values, overrides),
	}, renderOpts...)
	if err != nil {
		return err
	}

	logger.Debug("rendered", "template", name, "bytes", len(result.Artifact))
	_, err = io.WriteString(out, result.Artifact)
	return err
}

// selectTemplate picks the template to render when -t is omitted. A single
// configured template is used as is; with several, the cli backend prompts
// for a choice and the headless backend refuses.
func selectTemplate(cfg *config.Config, backend string) (string, error) {
	names := cfg.Names()
	if len(names) == 1 {
		return names[0], nil
	}

	if !interactiveBackend(backend) {
		return "", usageErrorf("template is required with the headless backend (have %s)",
			strings.Join(names, ", "))
	}

	options := make([]string, 0, len(names))
	for _, name := range names {
		entry := cfg.Templates[name]
		if entry.Description != "" {
			options = append(options, fmt.Sprintf("%s (%s)", name, entry.Description))
		} else {
			options = append(options, name)
		}
	}
	sort.Strings(options)

	var choice string
	prompt := &survey.Select{
		Message: "Template:",
		Options: options,
	}
	if err := survey.AskOne(prompt, &choice); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return "", resolve.ErrAborted
		}
		return "", fmt.Errorf("select template: %w", err)
	}

	name, _, _ := strings.Cut(choice, " (")
	return name, nil
}

func operatorFor(backend string) (resolve.Operator, error) {
	switch backend {
	case "cli":
		return resolve.NewSurveyOperator(), nil
	case "headless":
		return resolve.HeadlessOperator{}, nil
	case "":
		if interactiveBackend(backend) {
			return resolve.NewSurveyOperator(), nil
		}
		return resolve.HeadlessOperator{}, nil
	default:
		return nil, usageErrorf("unknown backend %q (expected cli or headless)", backend)
	}
}

// interactiveBackend reports whether prompting is possible: either forced
// with -b cli, or left on auto while stdin and stderr are terminals.
func interactiveBackend(backend string) bool {
	switch backend {
	case "cli":
		return true
	case "headless":
		return false
	default:
		return isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stderr.Fd())
	}
}
