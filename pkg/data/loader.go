package data

import (
	"context"
	"fmt"
	"io/fs"
	"os"
)

// LoaderOption customises a Loader.
type LoaderOption func(*Loader)

// WithFS supplies the filesystem used to resolve SourceKindFS sources,
// typically an embed.FS or a test fstest.MapFS.
func WithFS(fsys fs.FS) LoaderOption {
	return func(l *Loader) {
		l.fsys = fsys
	}
}

// Loader resolves Sources into Documents. It performs the only file I/O in
// the pipeline; everything downstream operates on in-memory Documents.
type Loader struct {
	fsys fs.FS
}

// NewLoader constructs a Loader applying any provided options.
func NewLoader(options ...LoaderOption) *Loader {
	l := &Loader{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(l)
	}
	return l
}

// Load reads the source's payload and determines its format, preferring an
// explicitly declared format over extension inference.
func (l *Loader) Load(ctx context.Context, src Source) (Document, error) {
	if src == nil {
		return Document{}, fmt.Errorf("data: load: source is required")
	}
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return Document{}, err
		}
	}

	var raw []byte
	switch typed := src.(type) {
	case fileSource:
		payload, err := os.ReadFile(typed.path)
		if err != nil {
			return Document{}, fmt.Errorf("data: read %s: %w", typed.path, err)
		}
		raw = payload
	case fsSource:
		if l == nil || l.fsys == nil {
			return Document{}, fmt.Errorf("data: load %s: loader has no filesystem", typed.name)
		}
		payload, err := fs.ReadFile(l.fsys, typed.name)
		if err != nil {
			return Document{}, fmt.Errorf("data: read %s: %w", typed.name, err)
		}
		raw = payload
	case literalSource:
		raw = append([]byte(nil), typed.raw...)
	default:
		return Document{}, fmt.Errorf("data: load: unsupported source kind %q", src.Kind())
	}

	format := declaredFormat(src)
	if format == "" {
		inferred, ok := FormatFromExtension(src.Location())
		if !ok {
			return Document{}, fmt.Errorf("data: load %s: cannot infer format from extension, declare one explicitly", src.Location())
		}
		format = inferred
	}

	return NewDocument(src, format, raw)
}

// LoadValue is a convenience that loads and decodes a source in one step.
func (l *Loader) LoadValue(ctx context.Context, src Source) (Value, error) {
	doc, err := l.Load(ctx, src)
	if err != nil {
		return Value{}, err
	}
	return doc.Decode()
}
