package helpers

import (
	"regexp"
	"strings"

	"github.com/iancoleman/strcase"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Builtin returns a fresh registry preloaded with the built-in helper set.
// Callers extend the returned registry with their own helpers without
// affecting other registries.
func Builtin() *Registry {
	registry := NewRegistry()
	for _, helper := range builtins() {
		registry.MustRegister(helper)
	}
	return registry
}

// builtins lists the stock helpers. regex_match yields the first matched
// substring, empty when nothing matches; both supported engines treat the
// empty string as falsy, so block constructs can branch on the result.
// regex_replace follows Go replacement syntax, including $1 style group
// references.
func builtins() []Helper {
	return []Helper{
		{
			Name:  "regex_match",
			Arity: 2,
			Fn: func(args []string) (string, error) {
				re, err := compilePattern("regex_match", args[0])
				if err != nil {
					return "", err
				}
				return re.FindString(args[1]), nil
			},
		},
		{
			Name:  "regex_replace",
			Arity: 3,
			Fn: func(args []string) (string, error) {
				re, err := compilePattern("regex_replace", args[0])
				if err != nil {
					return "", err
				}
				return re.ReplaceAllString(args[2], args[1]), nil
			},
		},
		{
			Name:  "upper",
			Arity: 1,
			Fn: func(args []string) (string, error) {
				return strings.ToUpper(args[0]), nil
			},
		},
		{
			Name:  "lower",
			Arity: 1,
			Fn: func(args []string) (string, error) {
				return strings.ToLower(args[0]), nil
			},
		},
		{
			Name:  "camel",
			Arity: 1,
			Fn: func(args []string) (string, error) {
				return strcase.ToLowerCamel(args[0]), nil
			},
		},
		{
			Name:  "snake",
			Arity: 1,
			Fn: func(args []string) (string, error) {
				return strcase.ToSnake(args[0]), nil
			},
		},
		{
			Name:  "kebab",
			Arity: 1,
			Fn: func(args []string) (string, error) {
				return strcase.ToKebab(args[0]), nil
			},
		},
		{
			Name:  "title",
			Arity: 1,
			Fn: func(args []string) (string, error) {
				return cases.Title(language.Und).String(args[0]), nil
			},
		},
		{
			Name:  "trim",
			Arity: 1,
			Fn: func(args []string) (string, error) {
				return strings.TrimSpace(args[0]), nil
			},
		},
	}
}

func compilePattern(helper, pattern string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, &PatternError{Helper: helper, Pattern: pattern, Err: err}
	}
	return re, nil
}
