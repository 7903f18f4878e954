package data

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Value is the universal in-memory representation for contexts: a tagged
// union over null, booleans, numbers, strings, sequences, and string-keyed
// objects. The zero value is null.
type Value struct {
	kind Kind
	b    bool
	n    float64
	s    string
	seq  []Value
	obj  map[string]Value
}

// Null returns the null value.
func Null() Value {
	return Value{}
}

// BoolValue wraps a boolean.
func BoolValue(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// NumberValue wraps a number. Integral inputs round-trip through String
// without a fractional suffix.
func NumberValue(n float64) Value {
	return Value{kind: KindNumber, n: n}
}

// StringValue wraps a string.
func StringValue(s string) Value {
	return Value{kind: KindString, s: s}
}

// SequenceValue wraps the supplied items in document order. The slice is
// copied.
func SequenceValue(items ...Value) Value {
	out := Value{kind: KindSequence}
	if len(items) > 0 {
		out.seq = append([]Value(nil), items...)
	}
	return out
}

// ObjectValue wraps the supplied fields. The map is copied.
func ObjectValue(fields map[string]Value) Value {
	out := Value{kind: KindObject, obj: make(map[string]Value, len(fields))}
	for key, value := range fields {
		out.obj[key] = value
	}
	return out
}

// Kind reports the value's runtime shape.
func (v Value) Kind() Kind {
	if v.kind == "" {
		return KindNull
	}
	return v.kind
}

// IsNull reports whether the value is null.
func (v Value) IsNull() bool {
	return v.Kind() == KindNull
}

// Bool returns the boolean payload, or false for any other kind.
func (v Value) Bool() bool {
	if v.Kind() != KindBool {
		return false
	}
	return v.b
}

// Number returns the numeric payload, or zero for any other kind.
func (v Value) Number() float64 {
	if v.Kind() != KindNumber {
		return 0
	}
	return v.n
}

// Str returns the string payload, or the empty string for any other kind.
func (v Value) Str() string {
	if v.Kind() != KindString {
		return ""
	}
	return v.s
}

// ScalarString formats a scalar payload as text: booleans as true/false,
// numbers without a trailing fraction when integral, strings verbatim.
// Null and container kinds yield the empty string.
func (v Value) ScalarString() string {
	switch v.Kind() {
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindNumber:
		return strconv.FormatFloat(v.n, 'f', -1, 64)
	case KindString:
		return v.s
	default:
		return ""
	}
}

// Len returns the number of sequence items or object fields, zero otherwise.
func (v Value) Len() int {
	switch v.Kind() {
	case KindSequence:
		return len(v.seq)
	case KindObject:
		return len(v.obj)
	default:
		return 0
	}
}

// Items returns a copy of the sequence items, or nil for other kinds.
func (v Value) Items() []Value {
	if v.Kind() != KindSequence || len(v.seq) == 0 {
		return nil
	}
	return append([]Value(nil), v.seq...)
}

// Keys returns the object's field names in sorted order. Key order carries
// no meaning; sorting keeps iteration deterministic.
func (v Value) Keys() []string {
	if v.Kind() != KindObject || len(v.obj) == 0 {
		return nil
	}
	keys := make([]string, 0, len(v.obj))
	for key := range v.obj {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Field returns the named object field and whether it was present.
func (v Value) Field(name string) (Value, bool) {
	if v.Kind() != KindObject {
		return Value{}, false
	}
	field, ok := v.obj[name]
	return field, ok
}

// At returns the sequence item at the given index and whether it exists.
func (v Value) At(index int) (Value, bool) {
	if v.Kind() != KindSequence || index < 0 || index >= len(v.seq) {
		return Value{}, false
	}
	return v.seq[index], true
}

// Lookup walks the path from this value, returning the addressed value and
// whether every segment resolved.
func (v Value) Lookup(path Path) (Value, bool) {
	current := v
	for _, segment := range path {
		if segment.IsIndex() {
			item, ok := current.At(segment.Index())
			if !ok {
				return Value{}, false
			}
			current = item
			continue
		}
		field, ok := current.Field(segment.Key())
		if !ok {
			return Value{}, false
		}
		current = field
	}
	return current, true
}

// Clone returns a deep copy of the value tree.
func (v Value) Clone() Value {
	switch v.Kind() {
	case KindSequence:
		out := Value{kind: KindSequence}
		if len(v.seq) > 0 {
			out.seq = make([]Value, len(v.seq))
			for i, item := range v.seq {
				out.seq[i] = item.Clone()
			}
		}
		return out
	case KindObject:
		out := Value{kind: KindObject, obj: make(map[string]Value, len(v.obj))}
		for key, field := range v.obj {
			out.obj[key] = field.Clone()
		}
		return out
	default:
		return v
	}
}

// Equal reports deep structural equality.
func (v Value) Equal(other Value) bool {
	if v.Kind() != other.Kind() {
		return false
	}
	switch v.Kind() {
	case KindNull:
		return true
	case KindBool:
		return v.b == other.b
	case KindNumber:
		return v.n == other.n
	case KindString:
		return v.s == other.s
	case KindSequence:
		if len(v.seq) != len(other.seq) {
			return false
		}
		for i, item := range v.seq {
			if !item.Equal(other.seq[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(v.obj) != len(other.obj) {
			return false
		}
		for key, field := range v.obj {
			peer, ok := other.obj[key]
			if !ok || !field.Equal(peer) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Native converts the tree into plain Go values (nil, bool, float64,
// string, []any, map[string]any) for consumption by template engines.
func (v Value) Native() any {
	switch v.Kind() {
	case KindNull:
		return nil
	case KindBool:
		return v.b
	case KindNumber:
		return v.n
	case KindString:
		return v.s
	case KindSequence:
		out := make([]any, len(v.seq))
		for i, item := range v.seq {
			out[i] = item.Native()
		}
		return out
	case KindObject:
		out := make(map[string]any, len(v.obj))
		for key, field := range v.obj {
			out[key] = field.Native()
		}
		return out
	default:
		return nil
	}
}

// FromNative builds a Value from plain Go data as produced by the stdlib
// and yaml decoders. Unsupported types are rejected rather than coerced.
func FromNative(raw any) (Value, error) {
	switch typed := raw.(type) {
	case nil:
		return Null(), nil
	case bool:
		return BoolValue(typed), nil
	case int:
		return NumberValue(float64(typed)), nil
	case int32:
		return NumberValue(float64(typed)), nil
	case int64:
		return NumberValue(float64(typed)), nil
	case uint64:
		return NumberValue(float64(typed)), nil
	case float32:
		return NumberValue(float64(typed)), nil
	case float64:
		return NumberValue(typed), nil
	case string:
		return StringValue(typed), nil
	case time.Time:
		return StringValue(typed.Format(time.RFC3339)), nil
	case []any:
		items := make([]Value, len(typed))
		for i, item := range typed {
			converted, err := FromNative(item)
			if err != nil {
				return Value{}, err
			}
			items[i] = converted
		}
		return SequenceValue(items...), nil
	case map[string]any:
		fields := make(map[string]Value, len(typed))
		for key, item := range typed {
			converted, err := FromNative(item)
			if err != nil {
				return Value{}, err
			}
			fields[key] = converted
		}
		return Value{kind: KindObject, obj: fields}, nil
	default:
		return Value{}, fmt.Errorf("data: unsupported value type %T", raw)
	}
}

// String renders a compact literal form of the value, intended for error
// messages and debug logs rather than machine consumption.
func (v Value) String() string {
	switch v.Kind() {
	case KindNull:
		return "null"
	case KindString:
		return strconv.Quote(v.s)
	case KindBool, KindNumber:
		return v.ScalarString()
	case KindSequence:
		parts := make([]string, len(v.seq))
		for i, item := range v.seq {
			parts[i] = item.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case KindObject:
		keys := v.Keys()
		parts := make([]string, 0, len(keys))
		for _, key := range keys {
			parts = append(parts, key+": "+v.obj[key].String())
		}
		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return string(v.kind)
	}
}
