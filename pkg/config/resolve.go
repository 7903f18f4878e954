package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goliatone/go-weave/internal/provider"
	"github.com/goliatone/go-weave/pkg/data"
	"github.com/goliatone/go-weave/pkg/schema"
)

// ErrShellNotTrusted is returned when a shell value provider is evaluated
// without the configuration being marked trusted.
var ErrShellNotTrusted = provider.ErrShellNotTrusted

// Resolve returns the document body and a name for diagnostics. Relative
// paths resolve against base.
func (d Document) Resolve(base string) (string, string, error) {
	if d.Inline != "" {
		return "inline", d.Inline, nil
	}
	path := resolvePath(base, d.Path)
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("config: read %s: %w", path, err)
	}
	return path, string(raw), nil
}

// Node loads and parses the referenced schema.
func (s *SchemaRef) Node(ctx context.Context, base string) (*schema.Node, error) {
	switch {
	case s == nil:
		return nil, nil

	case s.Inline != "":
		return schema.ParseBytes(data.FormatYAML, []byte(s.Inline))

	case s.OpenAPI != nil:
		path := resolvePath(base, s.OpenAPI.Path)
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		return schema.FromOpenAPI(ctx, raw, s.OpenAPI.Component)

	default:
		path := resolvePath(base, s.Path)
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		format, ok := data.FormatFromExtension(path)
		if !ok {
			format = data.FormatYAML
		}
		return schema.ParseBytes(format, raw)
	}
}

// DataSources returns the entry's data documents as loader sources, in
// declaration order. Relative paths resolve against base.
func (t Template) DataSources(base string) []data.Source {
	sources := make([]data.Source, 0, len(t.Data))
	for _, path := range t.Data {
		sources = append(sources, data.SourceFromFile(resolvePath(base, path)))
	}
	return sources
}

// ResolveValues evaluates the entry's value providers into an overlay tree.
// Providers run in sorted path order so failures are deterministic. Shell
// providers refuse to run unless trusted is set.
func (t Template) ResolveValues(ctx context.Context, trusted bool) (data.Value, error) {
	overlay := data.Null()
	for _, valuePath := range sortedKeys(t.Values) {
		backing, err := t.Values[valuePath].build(trusted)
		if err != nil {
			return data.Null(), fmt.Errorf("config: values[%s]: %w", valuePath, err)
		}
		out, err := backing.Resolve(ctx)
		if err != nil {
			return data.Null(), fmt.Errorf("config: values[%s] (%s): %w", valuePath, backing.Describe(), err)
		}

		path, err := data.ParsePath(valuePath)
		if err != nil {
			return data.Null(), fmt.Errorf("config: values[%s]: %w", valuePath, err)
		}
		overlay = data.SetPath(overlay, path, scalarFromText(out))
	}
	return overlay, nil
}

func (p Provider) build(trusted bool) (provider.Provider, error) {
	switch {
	case p.Env != "":
		return provider.Env(p.Env), nil
	case p.Shell != "":
		return provider.Shell(p.Shell, trusted), nil
	case p.Static != "":
		return provider.Static(p.Static), nil
	default:
		return nil, fmt.Errorf("value provider is empty")
	}
}

// ParseOverrides converts key=value pairs, typically from repeated -v
// flags, into an overlay tree. Keys are dotted paths; values decode as
// scalars, so numbers and booleans type naturally.
func ParseOverrides(pairs []string) (data.Value, error) {
	overlay := data.Null()
	for _, pair := range pairs {
		key, raw, found := strings.Cut(pair, "=")
		if !found || key == "" {
			return data.Null(), fmt.Errorf("config: override %q must be key=value", pair)
		}
		path, err := data.ParsePath(key)
		if err != nil {
			return data.Null(), fmt.Errorf("config: override %q: %w", pair, err)
		}
		overlay = data.SetPath(overlay, path, scalarFromText(raw))
	}
	return overlay, nil
}

// scalarFromText decodes provider and override output as a YAML scalar so
// "8080" becomes a number and "true" a boolean. Container output stays a
// plain string; values are scalars by contract.
func scalarFromText(raw string) data.Value {
	if strings.TrimSpace(raw) == "" {
		return data.StringValue(raw)
	}
	value, err := data.Decode(data.FormatYAML, []byte(raw))
	if err != nil || !(value.Kind().IsScalar() || value.IsNull()) {
		return data.StringValue(raw)
	}
	return value
}

func resolvePath(base, path string) string {
	if path == "" || filepath.IsAbs(path) || base == "" {
		return path
	}
	return filepath.Join(base, path)
}
