package analyzer

import (
	"log/slog"

	"github.com/jenian/cfgscan/internal/parser"
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// ScanProcessEnv records every dot-access property read whose object text is
// exactly the environment root, as <root>.<name> (process.env.<name> by default).
func (a *Analyzer) ScanProcessEnv(file *parser.SourceFile, report *UsageReport) {
	walk(file.Root(), func(n *sitter.Node) {
		if n.Kind() != kindMemberExpression {
			return
		}
		object := n.ChildByFieldName("object")
		property := n.ChildByFieldName("property")
		if object == nil || property == nil {
			return
		}
		if file.Text(object) != a.rules.EnvRoot {
			return
		}

		key := a.rules.EnvRoot + "." + file.Text(property)
		slog.Debug("env read", "path", file.RelPath, "line", n.StartPosition().Row+1, "key", key)
		report.Add(key, file.RelPath)
	})
}
