package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/goliatone/go-weave/pkg/config"
)

// InitCommand writes a commented starter configuration.
func InitCommand() *Command {
	var out string

	flags := func() *pflag.FlagSet {
		fs := pflag.NewFlagSet("init", pflag.ContinueOnError)
		fs.StringVarP(&out, "out", "o", config.DefaultPath, "where to write the starter configuration")
		return fs
	}

	return &Command{
		Name:    "init",
		Summary: "Write a starter configuration",
		Description: `Init creates a commented configuration with one working template so a new
project can render something immediately. It refuses to overwrite an
existing file.`,
		Usage: "weave init [-o <path>]",
		Flags: flags,
		Run: func(_ context.Context, args []string) error {
			if len(args) > 0 {
				return usageErrorf("init takes no positional arguments (got %q)", args[0])
			}
			return runInit(os.Stdout, out)
		},
	}
}

func runInit(out io.Writer, path string) error {
	written, err := config.WriteStarter(path)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "wrote %s\n", written)
	return nil
}
