package cli

import (
	"context"
	"fmt"
	"os"
)

// Version is stamped by the release build via -ldflags "-X ...cli.Version=".
var Version = "dev"

// Root builds the complete weave command tree.
func Root() *Command {
	return &Command{
		Name:    "weave",
		Summary: "Text templating for CLIs",
		Description: `weave renders templates against layered data: config-declared documents,
value providers (static, environment, shell), and command-line overrides.
Schemas validate the merged context and drive prompting for anything still
missing.`,
		Subcommands: []*Command{
			RenderCommand(),
			InitCommand(),
			ListCommand(),
			ManCommand(),
			AutocompleteCommand(),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(_ context.Context, _ []string) error {
					fmt.Fprintf(os.Stdout, "weave %s\n", Version)
					return nil
				},
			},
		},
		Examples: []Example{
			{
				Description: "Create a starter configuration in ./.weave/config.yaml",
				Command:     "weave init",
			},
			{
				Description: "Render a template from the default configuration",
				Command:     "weave render -t release-notes",
			},
			{
				Description: "Override values and allow shell providers",
				Command:     "weave render -t release-notes -v channel=beta --trust",
			},
			{
				Description: "Compose a git commit message interactively",
				Command:     "git commit -m \"$(weave render -t commit -b cli)\"",
			},
		},
	}
}
