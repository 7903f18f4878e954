package handlebars

import "github.com/mailgun/raymond/v2/ast"

// builtinHelpers are the names raymond resolves without registration.
var builtinHelpers = map[string]struct{}{
	"each":   {},
	"if":     {},
	"unless": {},
	"with":   {},
	"lookup": {},
	"log":    {},
	"equal":  {},
}

// helperCalls walks a parsed program and returns, in source order, the names
// used in helper call position: expressions carrying arguments or hash pairs,
// and every subexpression. Bare mustaches stay ambiguous between field
// lookups and zero-argument helpers, so they are not reported; blocks without
// arguments are plain sections.
func helperCalls(program *ast.Program) []string {
	var calls []string
	var walkNode func(node ast.Node)

	var walkExpression func(expr *ast.Expression, callPosition bool)
	walkExpression = func(expr *ast.Expression, callPosition bool) {
		if expr == nil {
			return
		}
		hasArgs := len(expr.Params) > 0 || (expr.Hash != nil && len(expr.Hash.Pairs) > 0)
		if callPosition || hasArgs {
			if name := expr.HelperName(); name != "" {
				calls = append(calls, name)
			}
		}
		for _, param := range expr.Params {
			walkNode(param)
		}
		if expr.Hash != nil {
			for _, pair := range expr.Hash.Pairs {
				walkNode(pair.Val)
			}
		}
	}

	walkNode = func(node ast.Node) {
		switch node := node.(type) {
		case *ast.Program:
			for _, child := range node.Body {
				walkNode(child)
			}
		case *ast.MustacheStatement:
			walkExpression(node.Expression, false)
		case *ast.BlockStatement:
			walkExpression(node.Expression, false)
			if node.Program != nil {
				walkNode(node.Program)
			}
			if node.Inverse != nil {
				walkNode(node.Inverse)
			}
		case *ast.PartialStatement:
			for _, param := range node.Params {
				walkNode(param)
			}
			if node.Hash != nil {
				for _, pair := range node.Hash.Pairs {
					walkNode(pair.Val)
				}
			}
		case *ast.SubExpression:
			walkExpression(node.Expression, true)
		}
	}

	walkNode(program)
	return calls
}
