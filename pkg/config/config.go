// Package config describes the project configuration file: named template
// entries pointing at template bodies, schemas, data documents, and value
// providers. The configuration is the declarative face of the pipeline; the
// CLI resolves an entry into a pipeline request.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-weave/pkg/data"
)

// DefaultPath is where the CLI looks for a configuration file unless told
// otherwise.
const DefaultPath = ".weave/config.yaml"

// Config is a parsed configuration document.
type Config struct {
	Templates map[string]Template `yaml:"templates"`

	dir string
}

// Template is one named render entry.
type Template struct {
	Description string              `yaml:"description,omitempty"`
	Engine      string              `yaml:"engine,omitempty"`
	Template    Document            `yaml:"template"`
	Schema      *SchemaRef          `yaml:"schema,omitempty"`
	Data        []string            `yaml:"data,omitempty"`
	Values      map[string]Provider `yaml:"values,omitempty"`
}

// Document points at a body of text, either on disk or inline.
type Document struct {
	Path   string `yaml:"path,omitempty"`
	Inline string `yaml:"inline,omitempty"`
}

// SchemaRef points at a schema document, inline, on disk, or inside an
// OpenAPI component.
type SchemaRef struct {
	Path    string      `yaml:"path,omitempty"`
	Inline  string      `yaml:"inline,omitempty"`
	OpenAPI *OpenAPIRef `yaml:"openapi,omitempty"`
}

// OpenAPIRef selects a component schema from an OpenAPI document.
type OpenAPIRef struct {
	Path      string `yaml:"path"`
	Component string `yaml:"component"`
}

// Provider configures where one context value comes from. Exactly one
// field must be set.
type Provider struct {
	Env    string `yaml:"env,omitempty"`
	Shell  string `yaml:"shell,omitempty"`
	Static string `yaml:"static,omitempty"`
}

// Load reads and parses the configuration file at path. Relative paths
// inside the configuration resolve against the file's directory.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	cfg.dir = filepath.Dir(path)
	return cfg, nil
}

// Parse decodes and validates a configuration document.
func Parse(raw []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, &data.ParseError{Format: data.FormatYAML, Line: yamlErrorLine(err), Err: err}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Dir is the directory relative configuration paths resolve against. Empty
// when the configuration was parsed from bytes.
func (c *Config) Dir() string {
	return c.dir
}

// Names returns the configured template names in sorted order.
func (c *Config) Names() []string {
	names := make([]string, 0, len(c.Templates))
	for name := range c.Templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Template returns the named entry.
func (c *Config) Template(name string) (Template, error) {
	entry, ok := c.Templates[name]
	if !ok {
		if names := c.Names(); len(names) > 0 {
			return Template{}, fmt.Errorf("config: template %q not found (have %s)", name, strings.Join(names, ", "))
		}
		return Template{}, fmt.Errorf("config: template %q not found", name)
	}
	return entry, nil
}

// Validate checks the structural rules the decoder cannot express: every
// entry needs a template body, pointers must be unambiguous, and value
// providers must name exactly one backing.
func (c *Config) Validate() error {
	if len(c.Templates) == 0 {
		return fmt.Errorf("config: no templates declared")
	}

	for _, name := range c.Names() {
		entry := c.Templates[name]
		if err := entry.Template.validate(); err != nil {
			return fmt.Errorf("config: template %q: template: %w", name, err)
		}
		if entry.Schema != nil {
			if err := entry.Schema.validate(); err != nil {
				return fmt.Errorf("config: template %q: schema: %w", name, err)
			}
		}
		for i, path := range entry.Data {
			if strings.TrimSpace(path) == "" {
				return fmt.Errorf("config: template %q: data entry %d is empty", name, i)
			}
		}
		for _, valuePath := range sortedKeys(entry.Values) {
			if _, err := data.ParsePath(valuePath); err != nil {
				return fmt.Errorf("config: template %q: values: %w", name, err)
			}
			if err := entry.Values[valuePath].validate(); err != nil {
				return fmt.Errorf("config: template %q: values[%s]: %w", name, valuePath, err)
			}
		}
	}
	return nil
}

func (d Document) validate() error {
	switch {
	case d.Path == "" && d.Inline == "":
		return fmt.Errorf("one of path or inline is required")
	case d.Path != "" && d.Inline != "":
		return fmt.Errorf("path and inline are mutually exclusive")
	}
	return nil
}

func (s *SchemaRef) validate() error {
	set := 0
	if s.Path != "" {
		set++
	}
	if s.Inline != "" {
		set++
	}
	if s.OpenAPI != nil {
		set++
	}
	if set != 1 {
		return fmt.Errorf("exactly one of path, inline or openapi is required")
	}
	if s.OpenAPI != nil && (s.OpenAPI.Path == "" || s.OpenAPI.Component == "") {
		return fmt.Errorf("openapi requires both path and component")
	}
	return nil
}

func (p Provider) validate() error {
	set := 0
	if p.Env != "" {
		set++
	}
	if p.Shell != "" {
		set++
	}
	if p.Static != "" {
		set++
	}
	if set != 1 {
		return fmt.Errorf("exactly one of env, shell or static is required")
	}
	return nil
}

func sortedKeys(values map[string]Provider) []string {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

var yamlLineMessage = regexp.MustCompile(`(?:yaml: )?line (\d+):`)

func yamlErrorLine(err error) int {
	if err == nil {
		return 0
	}
	match := yamlLineMessage.FindStringSubmatch(err.Error())
	if match == nil {
		return 0
	}
	line, convErr := strconv.Atoi(match[1])
	if convErr != nil {
		return 0
	}
	return line
}
