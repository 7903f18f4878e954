// Package handlebars adapts the raymond Handlebars engine to the render
// contracts. Helper references are resolved at compile time by walking the
// parsed template, so an unknown helper fails before any prompting or
// rendering starts.
package handlebars

import (
	"context"
	"regexp"
	"strconv"

	"github.com/mailgun/raymond/v2"
	"github.com/mailgun/raymond/v2/parser"

	"github.com/goliatone/go-weave/pkg/data"
	"github.com/goliatone/go-weave/pkg/helpers"
	"github.com/goliatone/go-weave/pkg/render"
)

// Name is the engine name used in registries and configuration.
const Name = "handlebars"

type engine struct{}

// New creates the Handlebars engine.
func New() render.Engine {
	return engine{}
}

func (engine) Name() string {
	return Name
}

func (engine) Compile(name, source string, registry *helpers.Registry) (render.Template, error) {
	// raymond keeps its parsed program private, so the helper scan runs on
	// a separate parse of the same source.
	program, err := parser.Parse(source)
	if err != nil {
		return nil, &render.CompileError{Template: name, Line: errorLine(err), Err: err}
	}

	for _, helperName := range helperCalls(program) {
		if _, builtin := builtinHelpers[helperName]; builtin {
			continue
		}
		if registry != nil && registry.Has(helperName) {
			continue
		}
		return nil, &render.UnknownHelperError{Template: name, Helper: helperName}
	}

	tpl, err := raymond.Parse(source)
	if err != nil {
		return nil, &render.CompileError{Template: name, Line: errorLine(err), Err: err}
	}
	if registry != nil {
		for _, helperName := range registry.List() {
			helper, err := registry.Get(helperName)
			if err != nil {
				return nil, err
			}
			tpl.RegisterHelper(helperName, wrapHelper(helper))
		}
	}

	return &template{name: name, tpl: tpl}, nil
}

type template struct {
	name string
	tpl  *raymond.Template
}

func (t *template) Name() string {
	return t.name
}

func (t *template) Render(ctx context.Context, value data.Value) (string, error) {
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return "", err
		}
	}

	out, err := t.tpl.Exec(value.Native())
	if err != nil {
		return "", &render.RenderError{Template: t.name, Err: err}
	}
	return out, nil
}

// wrapHelper adapts a registry helper to raymond's calling convention.
// Helper failures surface by panicking with the error; raymond's exec
// recovery turns that into an error return from Exec.
func wrapHelper(helper helpers.Helper) func(*raymond.Options) string {
	return func(options *raymond.Options) string {
		params := options.Params()
		args := make([]string, len(params))
		for i, param := range params {
			args[i] = raymond.Str(param)
		}
		out, err := helper.Call(args...)
		if err != nil {
			panic(err)
		}
		return out
	}
}

var lineMessage = regexp.MustCompile(`[Ll]ine (\d+)`)

func errorLine(err error) int {
	if err == nil {
		return 0
	}
	match := lineMessage.FindStringSubmatch(err.Error())
	if match == nil {
		return 0
	}
	line, convErr := strconv.Atoi(match[1])
	if convErr != nil {
		return 0
	}
	return line
}
