package cli

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-weave/pkg/data"
	"github.com/goliatone/go-weave/pkg/render"
	"github.com/goliatone/go-weave/pkg/resolve"
)

// Exit codes distinguish failure classes so shell callers and git hooks can
// branch on them.
const (
	ExitUsage      = 2
	ExitParse      = 3
	ExitValidation = 4
	ExitUnresolved = 5
	ExitAborted    = 130
)

// UsageError marks argument and dispatch mistakes so main can exit with the
// usage code instead of the generic failure code.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string {
	return e.Err.Error()
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

func usageErrorf(format string, args ...any) error {
	return &UsageError{Err: fmt.Errorf(format, args...)}
}

// ExitCodeFor maps an error returned by the command tree to a process exit
// code. Parse and compile failures share a code: both mean the inputs never
// reached rendering.
func ExitCodeFor(err error) int {
	if err == nil {
		return 0
	}

	var (
		usage         *UsageError
		parseErr      *data.ParseError
		compileErr    *render.CompileError
		unknownHelper *render.UnknownHelperError
		validation    *resolve.ValidationError
		unresolved    *resolve.UnresolvedError
	)
	switch {
	case errors.Is(err, resolve.ErrAborted):
		return ExitAborted
	case errors.As(err, &usage):
		return ExitUsage
	case errors.As(err, &parseErr), errors.As(err, &compileErr), errors.As(err, &unknownHelper):
		return ExitParse
	case errors.As(err, &validation):
		return ExitValidation
	case errors.As(err, &unresolved):
		return ExitUnresolved
	default:
		return 1
	}
}
