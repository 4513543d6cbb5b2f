package parser

import (
	"fmt"

	"github.com/jenian/cfgscan/internal/scanner"
	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"
	tree_sitter_typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"
)

// LanguageLoader loads tree-sitter grammars
type LanguageLoader interface {
	LoadJavaScript() (*sitter.Language, error)
	LoadTypeScript() (*sitter.Language, error)
}

// DefaultLanguageLoader loads the grammars bundled with the binary
type DefaultLanguageLoader struct{}

func (l *DefaultLanguageLoader) LoadJavaScript() (*sitter.Language, error) {
	langPtr := tree_sitter_javascript.Language()
	if langPtr == nil {
		return nil, fmt.Errorf("failed to load JavaScript language grammar")
	}
	return sitter.NewLanguage(langPtr), nil
}

func (l *DefaultLanguageLoader) LoadTypeScript() (*sitter.Language, error) {
	langPtr := tree_sitter_typescript.LanguageTypescript()
	if langPtr == nil {
		return nil, fmt.Errorf("failed to load TypeScript language grammar")
	}
	return sitter.NewLanguage(langPtr), nil
}

// loadLanguage loads the grammar for lang using loader
func loadLanguage(loader LanguageLoader, lang scanner.Language) (*sitter.Language, error) {
	switch lang {
	case scanner.LanguageJavaScript:
		return loader.LoadJavaScript()
	case scanner.LanguageTypeScript:
		return loader.LoadTypeScript()
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedLanguage, lang)
	}
}
