package analyzer

import (
	"strings"

	"github.com/jenian/cfgscan/internal/parser"
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// UsesService reports whether any top-level import statement of file
// mentions one of the recognised service type names. The match is on raw
// import text, so aliased imports still match and unrelated names sharing
// the substring do too. TypeScript `import x = require(...)` declarations
// are not import declarations and never match.
func (a *Analyzer) UsesService(file *parser.SourceFile) bool {
	root := file.Root()
	for i := uint(0); i < root.NamedChildCount(); i++ {
		stmt := root.NamedChild(i)
		if stmt == nil || stmt.Kind() != kindImportStatement || isRequireImport(stmt) {
			continue
		}
		text := file.Text(stmt)
		for _, service := range a.rules.Services {
			if strings.Contains(text, service) {
				return true
			}
		}
	}
	return false
}

func isRequireImport(stmt *sitter.Node) bool {
	for i := uint(0); i < stmt.NamedChildCount(); i++ {
		if child := stmt.NamedChild(i); child != nil && child.Kind() == kindImportRequireClause {
			return true
		}
	}
	return false
}
