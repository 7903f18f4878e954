package data

import (
	"fmt"
	"strconv"
	"strings"
)

// Segment is one step in a Path: either an object key or a sequence index.
type Segment struct {
	key   string
	index int
	isIdx bool
}

// KeySegment builds an object-key segment.
func KeySegment(name string) Segment {
	return Segment{key: name}
}

// IndexSegment builds a sequence-index segment.
func IndexSegment(index int) Segment {
	return Segment{index: index, isIdx: true}
}

// IsIndex reports whether the segment addresses a sequence element.
func (s Segment) IsIndex() bool {
	return s.isIdx
}

// Key returns the object key, or the empty string for index segments.
func (s Segment) Key() string {
	if s.isIdx {
		return ""
	}
	return s.key
}

// Index returns the sequence index, or -1 for key segments.
func (s Segment) Index() int {
	if !s.isIdx {
		return -1
	}
	return s.index
}

// Path addresses a location inside a Value tree as an ordered sequence of
// keys and indices. The empty path addresses the root.
type Path []Segment

// ParsePath reads the dotted/indexed syntax used throughout the pipeline:
// "user.name", "items[2].id". A leading "$" names the root and is optional.
func ParsePath(raw string) (Path, error) {
	trimmed := strings.TrimSpace(raw)
	trimmed = strings.TrimPrefix(trimmed, "$")
	trimmed = strings.TrimPrefix(trimmed, ".")
	if trimmed == "" {
		return nil, nil
	}

	var path Path
	rest := trimmed
	for rest != "" {
		switch {
		case rest[0] == '[':
			end := strings.IndexByte(rest, ']')
			if end < 0 {
				return nil, fmt.Errorf("data: parse path %q: unterminated index", raw)
			}
			index, err := strconv.Atoi(rest[1:end])
			if err != nil || index < 0 {
				return nil, fmt.Errorf("data: parse path %q: invalid index %q", raw, rest[1:end])
			}
			path = append(path, IndexSegment(index))
			rest = strings.TrimPrefix(rest[end+1:], ".")
		default:
			stop := strings.IndexAny(rest, ".[")
			if stop == 0 {
				return nil, fmt.Errorf("data: parse path %q: empty segment", raw)
			}
			if stop < 0 {
				path = append(path, KeySegment(rest))
				rest = ""
				break
			}
			path = append(path, KeySegment(rest[:stop]))
			if rest[stop] == '.' {
				rest = rest[stop+1:]
				if rest == "" {
					return nil, fmt.Errorf("data: parse path %q: empty segment", raw)
				}
			} else {
				rest = rest[stop:]
			}
		}
	}
	return path, nil
}

// MustParsePath panics on malformed input. Useful for fixtures and tests.
func MustParsePath(raw string) Path {
	path, err := ParsePath(raw)
	if err != nil {
		panic(err)
	}
	return path
}

// String renders the path back into the dotted/indexed syntax. The root
// path renders as "$".
func (p Path) String() string {
	if len(p) == 0 {
		return "$"
	}
	var b strings.Builder
	for i, segment := range p {
		if segment.IsIndex() {
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(segment.index))
			b.WriteByte(']')
			continue
		}
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(segment.key)
	}
	return b.String()
}

// Child returns a copy of the path extended with an object key.
func (p Path) Child(name string) Path {
	out := make(Path, len(p)+1)
	copy(out, p)
	out[len(p)] = KeySegment(name)
	return out
}

// Index returns a copy of the path extended with a sequence index.
func (p Path) Index(index int) Path {
	out := make(Path, len(p)+1)
	copy(out, p)
	out[len(p)] = IndexSegment(index)
	return out
}

// Equal reports whether both paths address the same location.
func (p Path) Equal(other Path) bool {
	if len(p) != len(other) {
		return false
	}
	for i, segment := range p {
		if segment != other[i] {
			return false
		}
	}
	return true
}

// Compare orders paths in depth-first document order: prefixes sort before
// their descendants, keys lexicographically, indices numerically, and keys
// ahead of indices when kinds differ.
func (p Path) Compare(other Path) int {
	limit := len(p)
	if len(other) < limit {
		limit = len(other)
	}
	for i := 0; i < limit; i++ {
		a, b := p[i], other[i]
		switch {
		case !a.isIdx && !b.isIdx:
			if c := strings.Compare(a.key, b.key); c != 0 {
				return c
			}
		case a.isIdx && b.isIdx:
			if a.index != b.index {
				if a.index < b.index {
					return -1
				}
				return 1
			}
		case !a.isIdx:
			return -1
		default:
			return 1
		}
	}
	switch {
	case len(p) < len(other):
		return -1
	case len(p) > len(other):
		return 1
	default:
		return 0
	}
}
