package cli

import (
	"github.com/spf13/pflag"

	"github.com/goliatone/go-weave/pkg/data"
)

// commandModel converts the command tree into a template context for the
// manual and completion generators.
func commandModel(root *Command) (data.Value, error) {
	doc := describeCommand(root, root.Name)
	doc["version"] = Version
	return data.FromNative(doc)
}

func describeCommand(c *Command, path string) map[string]any {
	doc := map[string]any{
		"name":        c.Name,
		"path":        path,
		"summary":     c.Summary,
		"description": c.Description,
		"usage":       usageLine(c, path),
	}

	if len(c.Examples) > 0 {
		examples := make([]any, 0, len(c.Examples))
		for _, example := range c.Examples {
			examples = append(examples, map[string]any{
				"description": example.Description,
				"command":     example.Command,
			})
		}
		doc["examples"] = examples
	}

	if c.Flags != nil {
		flags := make([]any, 0)
		c.Flags().VisitAll(func(f *pflag.Flag) {
			flags = append(flags, map[string]any{
				"name":      f.Name,
				"shorthand": f.Shorthand,
				"usage":     f.Usage,
				"default":   f.DefValue,
			})
		})
		if len(flags) > 0 {
			doc["flags"] = flags
		}
	}

	if len(c.Subcommands) > 0 {
		subs := make([]any, 0, len(c.Subcommands))
		for _, sub := range c.Subcommands {
			subs = append(subs, describeCommand(sub, path+" "+sub.Name))
		}
		doc["commands"] = subs
	}

	return doc
}

func usageLine(c *Command, path string) string {
	if c.Usage != "" {
		return c.Usage
	}
	if len(c.Subcommands) > 0 {
		return path + " <command> [flags]"
	}
	return path + " [flags]"
}
