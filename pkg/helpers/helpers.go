package helpers

import "fmt"

// Func implements a helper: a pure function from string arguments to a
// replacement value. Implementations must not retain the argument slice
// and must return the same output for the same input.
type Func func(args []string) (string, error)

// Helper pairs a template-facing name with its implementation. Arity is
// the exact argument count the helper accepts; a negative arity disables
// the count check for variadic helpers.
type Helper struct {
	Name  string
	Arity int
	Fn    Func
}

// Call validates the argument count and invokes the helper.
func (h Helper) Call(args ...string) (string, error) {
	if h.Fn == nil {
		return "", fmt.Errorf("helpers: %s has no implementation", h.Name)
	}
	if h.Arity >= 0 && len(args) != h.Arity {
		return "", fmt.Errorf("helpers: %s expects %d arguments, got %d", h.Name, h.Arity, len(args))
	}
	return h.Fn(args)
}
