package data

import "fmt"

// Kind enumerates the runtime shapes a Value can take. The set is closed:
// every Value is exactly one of these, and schema declarations reference the
// same names.
type Kind string

const (
	KindNull     Kind = "null"
	KindBool     Kind = "bool"
	KindNumber   Kind = "number"
	KindString   Kind = "string"
	KindSequence Kind = "sequence"
	KindObject   Kind = "object"
)

// ParseKind normalises a user-supplied kind name, accepting the aliases
// commonly found in schema documents (JSON Schema and YAML vocabulary).
func ParseKind(name string) (Kind, error) {
	switch name {
	case "null", "nil":
		return KindNull, nil
	case "bool", "boolean":
		return KindBool, nil
	case "number", "integer", "int", "float":
		return KindNumber, nil
	case "string", "str", "text":
		return KindString, nil
	case "sequence", "array", "list", "seq":
		return KindSequence, nil
	case "object", "map", "mapping":
		return KindObject, nil
	default:
		return "", fmt.Errorf("data: unknown kind %q", name)
	}
}

// String returns the canonical kind name.
func (k Kind) String() string {
	if k == "" {
		return string(KindNull)
	}
	return string(k)
}

// IsScalar reports whether the kind holds a single primitive payload.
func (k Kind) IsScalar() bool {
	switch k {
	case KindBool, KindNumber, KindString:
		return true
	default:
		return false
	}
}

// Valid reports whether the kind is one of the declared constants.
func (k Kind) Valid() bool {
	switch k {
	case KindNull, KindBool, KindNumber, KindString, KindSequence, KindObject:
		return true
	default:
		return false
	}
}
