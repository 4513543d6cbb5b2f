package analyzer

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// Node kinds shared by the JavaScript and TypeScript grammars
const (
	kindImportStatement     = "import_statement"
	kindImportRequireClause = "import_require_clause"
	kindCallExpression      = "call_expression"
	kindMemberExpression    = "member_expression"
	kindArrowFunction       = "arrow_function"
	kindFunctionExpression  = "function_expression"
	kindFunctionLegacy      = "function" // function_expression in grammars before 0.21
	kindGeneratorFunction   = "generator_function"
	kindString              = "string"
	kindIdentifier          = "identifier"
	kindComment             = "comment"
	kindRequiredParameter   = "required_parameter"
	kindOptionalParameter   = "optional_parameter"
	kindAssignmentPattern   = "assignment_pattern"
	kindRestPattern         = "rest_pattern"
)

// walk visits every descendant of root depth-first, in source order.
// root itself is not visited.
func walk(root *sitter.Node, visit func(n *sitter.Node)) {
	cursor := root.Walk()
	defer cursor.Close()

	if !cursor.GotoFirstChild() {
		return
	}
	for {
		visit(cursor.Node())
		if cursor.GotoFirstChild() {
			continue
		}
		for !cursor.GotoNextSibling() {
			if !cursor.GotoParent() {
				return
			}
		}
	}
}

// isInlineFunction reports whether n is an arrow function or function expression
func isInlineFunction(n *sitter.Node) bool {
	if !n.IsNamed() {
		return false
	}
	switch n.Kind() {
	case kindArrowFunction, kindFunctionExpression, kindFunctionLegacy, kindGeneratorFunction:
		return true
	}
	return false
}
