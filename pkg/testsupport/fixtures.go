package testsupport

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-weave/pkg/data"
	"github.com/goliatone/go-weave/pkg/schema"
)

// LoadValue reads a context fixture and decodes it using the format implied
// by its extension. Testing helpers fail the test on error to keep contract
// tests concise.
func LoadValue(t *testing.T, path string) data.Value {
	t.Helper()

	value, err := LoadValueFromPath(path)
	if err != nil {
		t.Fatalf("load context: %v", err)
	}
	return value
}

// LoadValueFromPath returns a decoded context without requiring testing.T,
// allowing callers to wire fixtures in setup functions.
func LoadValueFromPath(path string) (data.Value, error) {
	if path == "" {
		return data.Null(), errors.New("testsupport: context path is required")
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return data.Null(), fmt.Errorf("testsupport: read context: %w", err)
	}
	format, ok := data.FormatFromExtension(path)
	if !ok {
		format = data.FormatYAML
	}
	value, err := data.Decode(format, raw)
	if err != nil {
		return data.Null(), fmt.Errorf("testsupport: decode context: %w", err)
	}
	return value, nil
}

// LoadSchema reads a schema fixture and parses it into a node tree.
func LoadSchema(t *testing.T, path string) *schema.Node {
	t.Helper()

	node, err := LoadSchemaFromPath(path)
	if err != nil {
		t.Fatalf("load schema: %v", err)
	}
	return node
}

// LoadSchemaFromPath returns a parsed schema without requiring testing.T.
func LoadSchemaFromPath(path string) (*schema.Node, error) {
	if path == "" {
		return nil, errors.New("testsupport: schema path is required")
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("testsupport: read schema: %w", err)
	}
	format, ok := data.FormatFromExtension(path)
	if !ok {
		format = data.FormatYAML
	}
	return schema.ParseBytes(format, raw)
}

// MustDecode decodes literal document text, failing the test on error.
func MustDecode(t *testing.T, format data.Format, source string) data.Value {
	t.Helper()

	value, err := data.Decode(format, []byte(source))
	if err != nil {
		t.Fatalf("decode %s: %v", format, err)
	}
	return value
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return raw
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, raw []byte) bool {
	t.Helper()

	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}
