package weave

import (
	"context"

	"github.com/goliatone/go-weave/pkg/data"
	"github.com/goliatone/go-weave/pkg/helpers"
	"github.com/goliatone/go-weave/pkg/pipeline"
	"github.com/goliatone/go-weave/pkg/render"
	"github.com/goliatone/go-weave/pkg/resolve"
	"github.com/goliatone/go-weave/pkg/schema"
)

// Request describes the inputs for rendering one artifact; alias exported via
// the root package for convenience.
type Request = pipeline.Request

// Result carries the rendered artifact and the resolved context.
type Result = pipeline.Result

// Option customises pipeline construction.
type Option = pipeline.Option

// Operator answers prompts for missing required values during resolution.
type Operator = resolve.Operator

// PromptSpec describes a single prompt handed to an Operator.
type PromptSpec = resolve.PromptSpec

// Schema aliases the node tree contexts are validated against.
type Schema = schema.Node

// New exposes the pipeline constructor from the top-level module so callers
// can render repeatedly without rebuilding engines and helpers per call.
func New(options ...Option) *pipeline.Pipeline {
	return pipeline.New(options...)
}

// Render compiles the template, loads and merges the request's data sources,
// resolves the context against the schema, and renders. It is the simplest
// entry point for callers that just want one artifact.
func Render(ctx context.Context, req Request, options ...Option) (Result, error) {
	return pipeline.New(options...).Render(ctx, req)
}

// RenderString renders template source against an in-memory context,
// bypassing the loader stage while still delegating to the pipeline.
func RenderString(ctx context.Context, source string, value data.Value, options ...Option) (string, error) {
	result, err := pipeline.New(options...).Render(ctx, Request{
		Template: source,
		Values:   value,
	})
	if err != nil {
		return "", err
	}
	return result.Artifact, nil
}

// NewLoader constructs a document loader using the built-in decoders while
// keeping the option plumbing in one place.
func NewLoader(options ...data.LoaderOption) *data.Loader {
	return data.NewLoader(options...)
}

// Helpers returns a fresh registry preloaded with the built-in helper set,
// ready for callers to extend before handing it to the pipeline.
func Helpers() *helpers.Registry {
	return helpers.Builtin()
}

// WithOperator routes prompts for missing required values to the given
// operator instead of the headless default.
func WithOperator(operator resolve.Operator) Option {
	return pipeline.WithOperator(operator)
}

// WithHelpers replaces the helper registry templates compile against.
func WithHelpers(registry *helpers.Registry) Option {
	return pipeline.WithHelpers(registry)
}

// WithEngines replaces the engine registry used to look up template engines.
func WithEngines(registry *render.Registry) Option {
	return pipeline.WithEngines(registry)
}

// WithDefaultEngine overrides the engine used when a request omits one.
func WithDefaultEngine(name string) Option {
	return pipeline.WithDefaultEngine(name)
}

// WithLooseValidation forgives missing required values during resolution.
func WithLooseValidation() Option {
	return pipeline.WithLooseValidation()
}

// WithLoader injects a custom document loader, typically one reading from an
// fs.FS in tests.
func WithLoader(loader *data.Loader) Option {
	return pipeline.WithLoader(loader)
}
