// Package pipeline wires the full rendering sequence: compile the template,
// load and merge the data sources, resolve the merged context against the
// schema, and render. Compilation runs first so an unknown helper reference
// fails before any source is read or any prompt is issued.
package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-weave/pkg/data"
	"github.com/goliatone/go-weave/pkg/helpers"
	"github.com/goliatone/go-weave/pkg/render"
	"github.com/goliatone/go-weave/pkg/render/handlebars"
	"github.com/goliatone/go-weave/pkg/render/pongo"
	"github.com/goliatone/go-weave/pkg/resolve"
	"github.com/goliatone/go-weave/pkg/schema"
)

const defaultEngineName = handlebars.Name

// Option customises the pipeline configuration.
type Option func(*Pipeline)

// WithLoader injects a custom document loader.
func WithLoader(loader *data.Loader) Option {
	return func(p *Pipeline) {
		p.loader = loader
	}
}

// WithEngines injects an engine registry.
func WithEngines(registry *render.Registry) Option {
	return func(p *Pipeline) {
		p.engines = registry
	}
}

// WithHelpers injects the helper registry templates compile against.
func WithHelpers(registry *helpers.Registry) Option {
	return func(p *Pipeline) {
		p.helpers = registry
	}
}

// WithOperator injects the prompt operator used during context resolution.
func WithOperator(operator resolve.Operator) Option {
	return func(p *Pipeline) {
		p.operator = operator
	}
}

// WithDefaultEngine overrides the engine used when a request omits an
// explicit Engine field.
func WithDefaultEngine(name string) Option {
	return func(p *Pipeline) {
		p.defaultEngine = name
	}
}

// WithLooseValidation forgives missing required values during resolution.
func WithLooseValidation() Option {
	return func(p *Pipeline) {
		p.loose = true
	}
}

// Pipeline coordinates the render sequence. It applies sensible defaults
// (Handlebars engine, built-in helpers, headless operator) while remaining
// open to dependency injection for advanced callers.
type Pipeline struct {
	loader          *data.Loader
	engines         *render.Registry
	helpers         *helpers.Registry
	operator        resolve.Operator
	defaultEngine   string
	loose           bool
	defaultsApplied bool
}

// New constructs a Pipeline applying any provided options. Missing
// dependencies are initialised with the built-in implementations so callers
// can start with a single constructor call.
func New(options ...Option) *Pipeline {
	p := &Pipeline{
		defaultEngine: defaultEngineName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(p)
	}
	p.applyDefaults()
	return p
}

// Request describes the inputs for rendering one artifact.
type Request struct {
	// Name identifies the template in diagnostics. Defaults to "template".
	Name string

	// Template is the template source text.
	Template string

	// Engine names the engine to compile with. If empty, the pipeline falls
	// back to the configured default engine.
	Engine string

	// Schema validates the merged context and drives prompting. Optional;
	// without it every context passes.
	Schema *schema.Node

	// Sources are the data documents merged left to right, later sources
	// taking precedence.
	Sources []data.Source

	// Values is an overlay merged after all sources, typically command-line
	// overrides. A null value is ignored.
	Values data.Value
}

// Result carries the rendered artifact and the context it was rendered from.
type Result struct {
	Artifact string
	Context  data.Value
}

// Render executes the compile → load → merge → resolve → render sequence.
func (p *Pipeline) Render(ctx context.Context, req Request) (Result, error) {
	if ctx == nil {
		return Result{}, errors.New("pipeline: context is required")
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if !p.defaultsApplied {
		p.applyDefaults()
	}

	name := req.Name
	if name == "" {
		name = "template"
	}

	engine, err := p.engineFor(req.Engine)
	if err != nil {
		return Result{}, err
	}

	tpl, err := engine.Compile(name, req.Template, p.helpers)
	if err != nil {
		return Result{}, fmt.Errorf("pipeline: compile template: %w", err)
	}

	merged := data.Null()
	for _, source := range req.Sources {
		value, err := p.loader.LoadValue(ctx, source)
		if err != nil {
			return Result{}, fmt.Errorf("pipeline: load %s: %w", source.Location(), err)
		}
		merged = data.Merge(merged, value)
	}
	if !req.Values.IsNull() {
		merged = data.Merge(merged, req.Values)
	}

	resolverOptions := []resolve.Option{resolve.WithOperator(p.operator)}
	if p.loose {
		resolverOptions = append(resolverOptions, resolve.WithLooseValidation())
	}
	resolved, err := resolve.New(req.Schema, resolverOptions...).Resolve(ctx, merged)
	if err != nil {
		return Result{}, fmt.Errorf("pipeline: resolve context: %w", err)
	}

	artifact, err := tpl.Render(ctx, resolved)
	if err != nil {
		return Result{}, fmt.Errorf("pipeline: render: %w", err)
	}

	return Result{Artifact: artifact, Context: resolved}, nil
}

func (p *Pipeline) engineFor(name string) (render.Engine, error) {
	if p.engines == nil {
		return nil, errors.New("pipeline: engine registry is nil")
	}

	target := name
	if target == "" {
		target = p.defaultEngine
	}

	if target != "" {
		engine, err := p.engines.Get(target)
		if err == nil {
			return engine, nil
		}
		if name != "" {
			return nil, fmt.Errorf("pipeline: engine %q: %w", name, err)
		}
	}

	names := p.engines.List()
	if len(names) == 0 {
		return nil, errors.New("pipeline: no engines registered")
	}
	return p.engines.Get(names[0])
}

func (p *Pipeline) applyDefaults() {
	if p.defaultsApplied {
		return
	}

	if p.loader == nil {
		p.loader = data.NewLoader()
	}
	if p.engines == nil {
		p.engines = render.NewRegistry()
		p.engines.MustRegister(handlebars.New())
		p.engines.MustRegister(pongo.New())
	}
	if p.helpers == nil {
		p.helpers = helpers.Builtin()
	}
	if p.operator == nil {
		p.operator = resolve.HeadlessOperator{}
	}
	if p.defaultEngine == "" {
		p.defaultEngine = defaultEngineName
	}

	p.defaultsApplied = true
}
