// Package render defines the template engine contracts and the registry
// engines are discovered through. Engines compile template source against a
// helper registry, failing fast on unknown helper references, and compiled
// templates render merged context trees into text artifacts.
package render

import (
	"context"

	"github.com/goliatone/go-weave/pkg/data"
	"github.com/goliatone/go-weave/pkg/helpers"
)

// Engine compiles template source into executable templates. Compilation
// must resolve every helper reference against the supplied registry: an
// unknown name fails with UnknownHelperError before any rendering work, and
// malformed source fails with CompileError.
type Engine interface {
	Name() string
	Compile(name, source string, registry *helpers.Registry) (Template, error)
}

// Template is a compiled template bound to the helper set it was compiled
// with. Render evaluates it against a context tree; references to absent
// context values produce empty output rather than errors.
type Template interface {
	Name() string
	Render(ctx context.Context, value data.Value) (string, error)
}
