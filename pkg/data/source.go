package data

import "path/filepath"

// Source identifies where a document originated so loaders can operate on
// files, fs.FS entries, or in-memory literals without leaking
// implementation details into the pipeline.
type Source interface {
	Kind() SourceKind
	Location() string
}

// SourceKind enumerates the loader modalities.
type SourceKind string

const (
	SourceKindFile    SourceKind = "file"
	SourceKindFS      SourceKind = "fs"
	SourceKindLiteral SourceKind = "literal"
)

// fileSource identifies an on-disk document.
type fileSource struct {
	path   string
	format Format
}

func (s fileSource) Kind() SourceKind { return SourceKindFile }

func (s fileSource) Location() string { return s.path }

// SourceFromFile returns a Source pointing at a file path. The format is
// inferred from the extension when the document is loaded.
func SourceFromFile(path string) Source {
	return fileSource{path: filepath.Clean(path)}
}

// SourceFromFileAs returns a file Source with an explicit format,
// overriding extension inference.
func SourceFromFileAs(path string, format Format) Source {
	return fileSource{path: filepath.Clean(path), format: format}
}

// fsSource references a path inside the loader's fs.FS.
type fsSource struct {
	name   string
	format Format
}

func (s fsSource) Kind() SourceKind { return SourceKindFS }

func (s fsSource) Location() string { return s.name }

// SourceFromFS returns a Source identifying a resource inside the fs.FS
// supplied to the Loader.
func SourceFromFS(name string) Source {
	return fsSource{name: name}
}

// SourceFromFSAs is SourceFromFS with an explicit format.
func SourceFromFSAs(name string, format Format) Source {
	return fsSource{name: name, format: format}
}

// literalSource carries an in-memory document.
type literalSource struct {
	name   string
	format Format
	raw    []byte
}

func (s literalSource) Kind() SourceKind { return SourceKindLiteral }

func (s literalSource) Location() string { return s.name }

// SourceFromLiteral wraps raw bytes as a Source. The name only serves
// diagnostics; the format must be explicit since there is no extension to
// infer from.
func SourceFromLiteral(name string, format Format, raw []byte) Source {
	return literalSource{name: name, format: format, raw: append([]byte(nil), raw...)}
}

// declaredFormat returns the format attached to a source, if any.
func declaredFormat(src Source) Format {
	switch typed := src.(type) {
	case fileSource:
		return typed.format
	case fsSource:
		return typed.format
	case literalSource:
		return typed.format
	default:
		return ""
	}
}
