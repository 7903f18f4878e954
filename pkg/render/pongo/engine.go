// Package pongo adapts the pongo2 engine to the render contracts for
// Django-flavoured templates. Registry helpers surface as filters, with the
// filter input carrying the final helper argument and the filter parameter
// the leading one, so {{ version|regex_match:"^v" }} calls
// regex_match(pattern, subject). Helpers taking more than two arguments have
// no filter form; regex_replace is provided as a tag instead. pongo2
// resolves filters and tags while parsing, which gives the same
// compile-time unknown helper guarantee as the Handlebars engine.
package pongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sync"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-weave/pkg/data"
	"github.com/goliatone/go-weave/pkg/helpers"
	"github.com/goliatone/go-weave/pkg/render"
)

// Name is the engine name used in registries and configuration.
const Name = "pongo"

type engine struct{}

// New creates the pongo2 engine.
func New() render.Engine {
	return engine{}
}

func (engine) Name() string {
	return Name
}

func (engine) Compile(name, source string, registry *helpers.Registry) (render.Template, error) {
	if registry != nil {
		for _, helperName := range registry.List() {
			helper, err := registry.Get(helperName)
			if err != nil {
				return nil, err
			}
			if helper.Arity < 1 || helper.Arity > 2 {
				continue
			}
			if err := ensureFilter(helperName, helper); err != nil {
				return nil, fmt.Errorf("pongo: install filter %q: %w", helperName, err)
			}
		}
	}

	tpl, err := pongo2.FromString(source)
	if err != nil {
		if helperName, ok := unknownFilterName(err); ok {
			return nil, &render.UnknownHelperError{Template: name, Helper: helperName}
		}
		return nil, &render.CompileError{Template: name, Line: errorLine(err), Err: err}
	}

	return &template{name: name, tpl: tpl}, nil
}

type template struct {
	name string
	tpl  *pongo2.Template
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

	execCtx, err := executionContext(value)
	if err != nil {
		return "", &render.RenderError{Template: t.name, Err: err}
	}

	out, err := t.tpl.Execute(execCtx)
	if err != nil {
		return "", &render.RenderError{Template: t.name, Err: err}
	}
	return out, nil
}

func executionContext(value data.Value) (pongo2.Context, error) {
	switch value.Kind() {
	case data.KindNull:
		return pongo2.Context{}, nil
	case data.KindObject:
		native, _ := value.Native().(map[string]interface{})
		return pongo2.Context(native), nil
	default:
		return nil, fmt.Errorf("pongo: template context must be an object, got %s", value.Kind())
	}
}

// pongo2 keeps one process-wide filter table, so installation is serialised
// and re-registration replaces the previous implementation.
var filterMu sync.Mutex

func ensureFilter(name string, helper helpers.Helper) error {
	filterMu.Lock()
	defer filterMu.Unlock()

	fn := filterFor(helper)
	if err := pongo2.RegisterFilter(name, fn); err != nil {
		return pongo2.ReplaceFilter(name, fn)
	}
	return nil
}

func filterFor(helper helpers.Helper) pongo2.FilterFunction {
	return func(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
		args := []string{in.String()}
		if param != nil && !param.IsNil() {
			args = []string{param.String(), in.String()}
		}
		out, err := helper.Call(args...)
		if err != nil {
			return nil, &pongo2.Error{Sender: "filter:" + helper.Name, OrigError: err}
		}
		return pongo2.AsValue(out), nil
	}
}

var unknownFilterMessage = regexp.MustCompile(`(?i)filter (?:with name )?'([^']+)' (?:does not exist|not found)`)

func unknownFilterName(err error) (string, bool) {
	if err == nil {
		return "", false
	}
	match := unknownFilterMessage.FindStringSubmatch(err.Error())
	if match == nil {
		return "", false
	}
	return match[1], true
}

func errorLine(err error) int {
	var pongoErr *pongo2.Error
	if errors.As(err, &pongoErr) {
		return pongoErr.Line
	}
	return 0
}
