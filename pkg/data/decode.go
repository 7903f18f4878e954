package data

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// Format tags the encoding of a raw document. Decoding never sniffs
// content; the caller always states the format explicitly.
type Format string

const (
	FormatJSON  Format = "json"
	FormatJSONC Format = "jsonc"
	FormatYAML  Format = "yaml"
)

// Valid reports whether the format is one of the supported encodings.
func (f Format) Valid() bool {
	switch f {
	case FormatJSON, FormatJSONC, FormatYAML:
		return true
	default:
		return false
	}
}

// FormatFromExtension maps a file extension to its Format. The second
// return is false when the extension is not recognised.
func FormatFromExtension(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, true
	case ".jsonc":
		return FormatJSONC, true
	case ".yaml", ".yml":
		return FormatYAML, true
	default:
		return "", false
	}
}

// ParseError reports malformed input with its position. Line and Column
// are 1-based; zero means the decoder could not attribute a position.
type ParseError struct {
	Format Format
	Line   int
	Column int
	Err    error
}

// Error renders the position when one is known.
func (e *ParseError) Error() string {
	if e.Line > 0 && e.Column > 0 {
		return fmt.Sprintf("data: parse %s at line %d, column %d: %v", e.Format, e.Line, e.Column, e.Err)
	}
	if e.Line > 0 {
		return fmt.Sprintf("data: parse %s at line %d: %v", e.Format, e.Line, e.Err)
	}
	return fmt.Sprintf("data: parse %s: %v", e.Format, e.Err)
}

// Unwrap exposes the underlying decoder error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Decode parses raw bytes in the declared format into a Value. Empty input
// (including whitespace- or comment-only documents) decodes to null rather
// than failing. Malformed input returns a *ParseError.
func Decode(format Format, raw []byte) (Value, error) {
	switch format {
	case FormatJSON:
		return decodeJSON(format, raw)
	case FormatJSONC:
		// jsonc.ToJSON blanks comments and trailing commas in place, so
		// byte offsets in decoder errors still line up with the input.
		return decodeJSON(format, jsonc.ToJSON(raw))
	case FormatYAML:
		return decodeYAML(raw)
	default:
		return Value{}, fmt.Errorf("data: unsupported format %q", string(format))
	}
}

func decodeJSON(format Format, raw []byte) (Value, error) {
	if strings.TrimSpace(string(raw)) == "" {
		return Null(), nil
	}

	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		parseErr := &ParseError{Format: format, Err: err}
		var syntaxErr *json.SyntaxError
		var typeErr *json.UnmarshalTypeError
		switch {
		case errors.As(err, &syntaxErr):
			parseErr.Line, parseErr.Column = lineColumn(raw, syntaxErr.Offset)
		case errors.As(err, &typeErr):
			parseErr.Line, parseErr.Column = lineColumn(raw, typeErr.Offset)
		}
		return Value{}, parseErr
	}
	value, err := FromNative(decoded)
	if err != nil {
		return Value{}, &ParseError{Format: format, Err: err}
	}
	return value, nil
}

var yamlLinePattern = regexp.MustCompile(`(?:yaml: )?line (\d+):`)

func decodeYAML(raw []byte) (Value, error) {
	if strings.TrimSpace(string(raw)) == "" {
		return Null(), nil
	}

	var decoded any
	if err := yaml.Unmarshal(raw, &decoded); err != nil {
		parseErr := &ParseError{Format: FormatYAML, Err: err}
		if match := yamlLinePattern.FindStringSubmatch(err.Error()); match != nil {
			if line, convErr := strconv.Atoi(match[1]); convErr == nil {
				parseErr.Line = line
			}
		}
		return Value{}, parseErr
	}
	value, err := FromNative(decoded)
	if err != nil {
		return Value{}, &ParseError{Format: FormatYAML, Err: err}
	}
	return value, nil
}

// lineColumn converts a byte offset into 1-based line and column numbers.
func lineColumn(raw []byte, offset int64) (int, int) {
	if offset < 0 {
		return 0, 0
	}
	if offset > int64(len(raw)) {
		offset = int64(len(raw))
	}
	line, column := 1, 1
	for _, b := range raw[:offset] {
		if b == '\n' {
			line++
			column = 1
			continue
		}
		column++
	}
	return line, column
}
