package pongo

import (
	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-weave/pkg/helpers"
)

// replaceHelper backs the regex_replace tag. Filters accept a single
// parameter, so the three-argument helper gets tag syntax instead:
//
//	{% regex_replace "[0-9]+" "#" version %}
var replaceHelper = helpers.Builtin().MustGet("regex_replace")

func init() {
	if err := pongo2.RegisterTag("regex_replace", regexReplaceTagParser); err != nil {
		panic(err)
	}
}

type regexReplaceNode struct {
	position    *pongo2.Token
	pattern     pongo2.IEvaluator
	replacement pongo2.IEvaluator
	subject     pongo2.IEvaluator
}

func regexReplaceTagParser(doc *pongo2.Parser, start *pongo2.Token, arguments *pongo2.Parser) (pongo2.INodeTag, *pongo2.Error) {
	node := &regexReplaceNode{position: start}

	pattern, err := arguments.ParseExpression()
	if err != nil {
		return nil, err
	}
	replacement, err := arguments.ParseExpression()
	if err != nil {
		return nil, err
	}
	subject, err := arguments.ParseExpression()
	if err != nil {
		return nil, err
	}
	node.pattern, node.replacement, node.subject = pattern, replacement, subject

	if arguments.Remaining() > 0 {
		return nil, arguments.Error("regex_replace takes exactly three arguments", nil)
	}
	return node, nil
}

func (node *regexReplaceNode) Execute(ctx *pongo2.ExecutionContext, writer pongo2.TemplateWriter) *pongo2.Error {
	pattern, err := node.pattern.Evaluate(ctx)
	if err != nil {
		return err
	}
	replacement, err := node.replacement.Evaluate(ctx)
	if err != nil {
		return err
	}
	subject, err := node.subject.Evaluate(ctx)
	if err != nil {
		return err
	}

	out, callErr := replaceHelper.Call(pattern.String(), replacement.String(), subject.String())
	if callErr != nil {
		return ctx.Error(callErr.Error(), node.position)
	}
	if _, writeErr := writer.WriteString(out); writeErr != nil {
		return ctx.Error(writeErr.Error(), node.position)
	}
	return nil
}
