package data

import "errors"

// Document pairs a raw payload with its origin and format. Loaders produce
// Documents; Decode turns them into Values.
type Document struct {
	source Source
	format Format
	raw    []byte
}

// NewDocument constructs a Document wrapper while validating the inputs.
// Empty payloads are legal: they decode to null.
func NewDocument(src Source, format Format, raw []byte) (Document, error) {
	if src == nil {
		return Document{}, errors.New("data: source is required")
	}
	if !format.Valid() {
		return Document{}, errors.New("data: document format is required")
	}

	clone := append([]byte(nil), raw...)
	return Document{source: src, format: format, raw: clone}, nil
}

// MustNewDocument panics if the document cannot be created. Useful for
// fixtures and tests.
func MustNewDocument(src Source, format Format, raw []byte) Document {
	doc, err := NewDocument(src, format, raw)
	if err != nil {
		panic(err)
	}
	return doc
}

// Source returns the origin metadata for the document.
func (d Document) Source() Source {
	return d.source
}

// Format returns the declared encoding.
func (d Document) Format() Format {
	return d.format
}

// Raw returns a defensive copy of the payload.
func (d Document) Raw() []byte {
	return append([]byte(nil), d.raw...)
}

// Location returns the string identifier for the origin.
func (d Document) Location() string {
	if d.source == nil {
		return ""
	}
	return d.source.Location()
}

// Decode parses the payload into a Value.
func (d Document) Decode() (Value, error) {
	return Decode(d.format, d.raw)
}
