package analyzer

import (
	"log/slog"
	"strings"

	"github.com/jenian/cfgscan/internal/parser"
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// ScanFile records the string-literal arguments of configuration accessor
// calls in file. A call qualifies when its callee text ends in .<accessor>
// and contains no exclusion, or when its callee is exactly <param>.<accessor>
// for a parameter of any inline function in the file.
func (a *Analyzer) ScanFile(file *parser.SourceFile, report *UsageReport) {
	walk(file.Root(), func(n *sitter.Node) {
		switch {
		case n.Kind() == kindCallExpression:
			callee := calleeText(file, n)
			if a.isExcluded(callee) {
				return
			}
			if a.hasAccessorSuffix(callee) {
				a.addLiteralArgs(file, n, callee, report)
			}
		case isInlineFunction(n):
			for _, name := range parameterNames(file, n) {
				a.scanParameterCalls(file, name, report)
			}
		}
	})
}

// scanParameterCalls rescans the whole file for calls on a parameter name.
// The rescan is not limited to the function that declares the parameter.
func (a *Analyzer) scanParameterCalls(file *parser.SourceFile, name string, report *UsageReport) {
	targets := make(map[string]bool, len(a.rules.Accessors))
	for _, accessor := range a.rules.Accessors {
		targets[name+"."+accessor] = true
	}

	walk(file.Root(), func(n *sitter.Node) {
		if n.Kind() != kindCallExpression {
			return
		}
		callee := calleeText(file, n)
		if targets[callee] {
			a.addLiteralArgs(file, n, callee, report)
		}
	})
}

func (a *Analyzer) isExcluded(callee string) bool {
	for _, excluded := range a.rules.Exclusions {
		if excluded != "" && strings.Contains(callee, excluded) {
			return true
		}
	}
	return false
}

func (a *Analyzer) hasAccessorSuffix(callee string) bool {
	for _, accessor := range a.rules.Accessors {
		if strings.HasSuffix(callee, "."+accessor) {
			return true
		}
	}
	return false
}

// addLiteralArgs adds every direct string-literal argument of call
func (a *Analyzer) addLiteralArgs(file *parser.SourceFile, call *sitter.Node, callee string, report *UsageReport) {
	args := call.ChildByFieldName("arguments")
	if args == nil {
		return
	}
	for i := uint(0); i < args.NamedChildCount(); i++ {
		arg := args.NamedChild(i)
		if arg == nil || arg.Kind() != kindString {
			continue
		}
		key := unquoteString(file.Text(arg))
		slog.Debug("config key", "path", file.RelPath, "line", arg.StartPosition().Row+1, "callee", callee, "key", key)
		report.Add(key, file.RelPath)
	}
}

func calleeText(file *parser.SourceFile, call *sitter.Node) string {
	fn := call.ChildByFieldName("function")
	if fn == nil {
		return ""
	}
	return file.Text(fn)
}

// parameterNames returns the names of fn's immediate parameters. Destructured
// parameters yield their pattern text, which never matches a callee.
func parameterNames(file *parser.SourceFile, fn *sitter.Node) []string {
	if single := fn.ChildByFieldName("parameter"); single != nil {
		return []string{bindingName(file, single)}
	}

	params := fn.ChildByFieldName("parameters")
	if params == nil {
		return nil
	}

	var names []string
	for i := uint(0); i < params.NamedChildCount(); i++ {
		param := params.NamedChild(i)
		if param == nil || param.Kind() == kindComment {
			continue
		}
		if name := bindingName(file, param); name != "" {
			names = append(names, name)
		}
	}
	return names
}

func bindingName(file *parser.SourceFile, n *sitter.Node) string {
	switch n.Kind() {
	case kindIdentifier:
		return file.Text(n)
	case kindRequiredParameter, kindOptionalParameter:
		if pattern := n.ChildByFieldName("pattern"); pattern != nil {
			return bindingName(file, pattern)
		}
	case kindAssignmentPattern:
		if left := n.ChildByFieldName("left"); left != nil {
			return bindingName(file, left)
		}
	case kindRestPattern:
		if n.NamedChildCount() > 0 {
			return bindingName(file, n.NamedChild(0))
		}
	}
	return file.Text(n)
}
