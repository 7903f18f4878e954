package resolve

import (
	"context"
	"errors"
	"strconv"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/goliatone/go-weave/pkg/data"
)

type surveyOperator struct{}

// NewSurveyOperator creates an operator that prompts interactively on the
// attached terminal. Enumerations become select prompts, booleans become
// confirm prompts, and everything else is free-form input; container kinds
// expect a JSON value on one line.
func NewSurveyOperator() Operator {
	return surveyOperator{}
}

func (surveyOperator) Ask(ctx context.Context, spec PromptSpec) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	switch {
	case len(spec.Enum) > 0:
		var out string
		prompt := &survey.Select{
			Message: spec.Message(),
			Options: append([]string(nil), spec.Enum...),
		}
		if spec.Default != "" {
			prompt.Default = spec.Default
		}
		if err := survey.AskOne(prompt, &out); err != nil {
			return "", translateSurveyErr(err)
		}
		return out, nil

	case spec.Kind == data.KindBool:
		var out bool
		prompt := &survey.Confirm{
			Message: spec.Message(),
			Default: spec.Default == "true",
		}
		if err := survey.AskOne(prompt, &out); err != nil {
			return "", translateSurveyErr(err)
		}
		return strconv.FormatBool(out), nil

	default:
		var out string
		prompt := &survey.Input{
			Message: spec.Message(),
			Default: spec.Default,
			Help:    helpFor(spec.Kind),
		}
		if err := survey.AskOne(prompt, &out); err != nil {
			return "", translateSurveyErr(err)
		}
		return out, nil
	}
}

func helpFor(kind data.Kind) string {
	switch kind {
	case data.KindObject:
		return "Enter a JSON object on one line"
	case data.KindSequence:
		return "Enter a JSON array on one line"
	case data.KindNumber:
		return "Enter a number"
	default:
		return ""
	}
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}
