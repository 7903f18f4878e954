package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const starterConfig = `# weave configuration. Each entry under templates: names an artifact the
# render command can produce.
templates:
  greeting:
    description: Minimal example rendering a greeting
    engine: handlebars
    template:
      inline: |
        Hello {{title name}}!
    schema:
      inline: |
        type: object
        properties:
          name:
            type: string
            required: true
            description: Who to greet
            default: world
    # Data documents merge left to right before prompting:
    # data:
    #   - data/defaults.yaml
    #   - data/local.json
    # Values overlay the merged data. Shell providers need --trust:
    # values:
    #   build.number:
    #     shell: git rev-list --count HEAD
    #   user:
    #     env: USER
`

// WriteStarter writes a starter configuration to path, or DefaultPath when
// path is empty. An existing file is never overwritten.
func WriteStarter(path string) (string, error) {
	if path == "" {
		path = DefaultPath
	}
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("config: %s already exists", path)
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("config: create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, []byte(starterConfig), 0o644); err != nil {
		return "", fmt.Errorf("config: write %s: %w", path, err)
	}
	return path, nil
}
