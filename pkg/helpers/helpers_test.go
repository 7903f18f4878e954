package helpers_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/goliatone/go-weave/pkg/helpers"
)

func call(t *testing.T, name string, args ...string) string {
	t.Helper()
	out, err := helpers.Builtin().MustGet(name).Call(args...)
	if err != nil {
		t.Fatalf("%s: %v", name, err)
	}
	return out
}

func TestRegexReplace(t *testing.T) {
	if got := call(t, "regex_replace", "[0-9]+", "#", "a1b22c333"); got != "a#b#c#" {
		t.Fatalf("regex_replace = %q, want %q", got, "a#b#c#")
	}
}

func TestRegexReplaceGroupReferences(t *testing.T) {
	got := call(t, "regex_replace", `(\w+)@example\.com`, "$1@corp.test", "ops@example.com")
	if got != "ops@corp.test" {
		t.Fatalf("regex_replace = %q", got)
	}
}

func TestRegexMatch(t *testing.T) {
	if got := call(t, "regex_match", "^v[0-9]+", "v12-rc1"); got != "v12" {
		t.Fatalf("match = %q, want %q", got, "v12")
	}
	// No match yields the empty string so engines treat it as falsy.
	if got := call(t, "regex_match", "^v[0-9]+", "release-12"); got != "" {
		t.Fatalf("match = %q, want empty", got)
	}
}

func TestInvalidPattern(t *testing.T) {
	for _, name := range []string{"regex_match", "regex_replace"} {
		t.Run(name, func(t *testing.T) {
			helper := helpers.Builtin().MustGet(name)
			args := []string{"[", "x"}
			if name == "regex_replace" {
				args = []string{"[", "x", "y"}
			}

			_, err := helper.Call(args...)
			if err == nil {
				t.Fatal("expected error")
			}

			var patternErr *helpers.PatternError
			if !errors.As(err, &patternErr) {
				t.Fatalf("error %T is not a PatternError", err)
			}
			if patternErr.Helper != name || patternErr.Pattern != "[" {
				t.Fatalf("pattern error = %+v", patternErr)
			}
		})
	}
}

func TestCaseHelpers(t *testing.T) {
	cases := []struct {
		helper string
		in     string
		want   string
	}{
		{"upper", "release notes", "RELEASE NOTES"},
		{"lower", "Release Notes", "release notes"},
		{"camel", "hello_world", "helloWorld"},
		{"snake", "helloWorld", "hello_world"},
		{"snake", "Hello World", "hello_world"},
		{"kebab", "HelloWorld", "hello-world"},
		{"title", "release notes", "Release Notes"},
		{"title", "HELLO world", "Hello World"},
		{"trim", "  padded  ", "padded"},
	}

	for _, tc := range cases {
		if got := call(t, tc.helper, tc.in); got != tc.want {
			t.Errorf("%s(%q) = %q, want %q", tc.helper, tc.in, got, tc.want)
		}
	}
}

func TestHelpersArePure(t *testing.T) {
	first := call(t, "regex_replace", "[0-9]+", "#", "a1b22c333")
	second := call(t, "regex_replace", "[0-9]+", "#", "a1b22c333")
	if first != second {
		t.Fatalf("outputs differ: %q vs %q", first, second)
	}
}

func TestCallValidatesArity(t *testing.T) {
	_, err := helpers.Builtin().MustGet("regex_replace").Call("a", "b")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "expects 3 arguments, got 2") {
		t.Fatalf("error = %q", err)
	}
}
