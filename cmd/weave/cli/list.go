package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/pflag"

	"github.com/goliatone/go-weave/pkg/config"
	"github.com/goliatone/go-weave/pkg/render/handlebars"
)

// ListCommand prints the templates a configuration declares.
func ListCommand() *Command {
	var configPath string

	flags := func() *pflag.FlagSet {
		fs := pflag.NewFlagSet("list", pflag.ContinueOnError)
		fs.StringVarP(&configPath, "config", "c", config.DefaultPath, "configuration file to use")
		return fs
	}

	return &Command{
		Name:    "list",
		Summary: "List configured templates",
		Usage:   "weave list [-c <config>]",
		Flags:   flags,
		Run: func(_ context.Context, args []string) error {
			if len(args) > 0 {
				return usageErrorf("list takes no positional arguments (got %q)", args[0])
			}
			return runList(os.Stdout, configPath)
		},
	}
}

func runList(out io.Writer, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	bold := color.New(color.Bold)
	tw := tabwriter.NewWriter(out, 2, 0, 3, ' ', 0)
	for _, name := range cfg.Names() {
		entry := cfg.Templates[name]
		fmt.Fprintf(tw, "%s\t%s\t%s\n", bold.Sprint(name), engineLabel(entry.Engine), entry.Description)
	}
	return tw.Flush()
}

func engineLabel(engine string) string {
	if engine == "" {
		return handlebars.Name
	}
	return engine
}
