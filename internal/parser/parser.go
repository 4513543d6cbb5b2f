package parser

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/jenian/cfgscan/internal/scanner"
	sitter "github.com/tree-sitter/go-tree-sitter"
)

var (
	// ErrSyntax is returned when a file does not parse cleanly.
	ErrSyntax = errors.New("syntax error")
	// ErrUnsupportedLanguage is returned for languages without a grammar.
	ErrUnsupportedLanguage = errors.New("unsupported language")
)

// SourceFile is a parsed source file. It owns its syntax tree and must be closed.
type SourceFile struct {
	Path     string
	RelPath  string
	Language scanner.Language
	Content  []byte

	tree *sitter.Tree
}

// Root returns the root node of the syntax tree
func (f *SourceFile) Root() *sitter.Node {
	return f.tree.RootNode()
}

// Text returns the source text spanned by n
func (f *SourceFile) Text(n *sitter.Node) string {
	return n.Utf8Text(f.Content)
}

// Close releases the syntax tree
func (f *SourceFile) Close() {
	if f.tree != nil {
		f.tree.Close()
		f.tree = nil
	}
}

// Parser handles Tree-Sitter parsing of source files
type Parser struct {
	loader    LanguageLoader
	languages map[scanner.Language]*sitter.Language
}

// NewParser creates a new parser instance
func NewParser() *Parser {
	return NewParserWithLoader(&DefaultLanguageLoader{})
}

// NewParserWithLoader creates a parser that loads grammars through loader
func NewParserWithLoader(loader LanguageLoader) *Parser {
	return &Parser{
		loader:    loader,
		languages: make(map[scanner.Language]*sitter.Language),
	}
}

// getLanguage returns the grammar for lang, loading it on first use
func (p *Parser) getLanguage(lang scanner.Language) (*sitter.Language, error) {
	if language, ok := p.languages[lang]; ok {
		return language, nil
	}

	language, err := loadLanguage(p.loader, lang)
	if err != nil {
		return nil, fmt.Errorf("failed to load language %s: %w", lang, err)
	}

	p.languages[lang] = language
	return language, nil
}

// ParseFile reads and parses a single file. A tree containing error or
// missing nodes is rejected with ErrSyntax.
func (p *Parser) ParseFile(info scanner.FileInfo) (*SourceFile, error) {
	content, err := os.ReadFile(info.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", info.Path, err)
	}

	return p.Parse(info, content)
}

// Parse parses content as the file described by info
func (p *Parser) Parse(info scanner.FileInfo, content []byte) (*SourceFile, error) {
	language, err := p.getLanguage(info.Language)
	if err != nil {
		return nil, err
	}

	tsParser := sitter.NewParser()
	defer tsParser.Close()
	if err := tsParser.SetLanguage(language); err != nil {
		return nil, fmt.Errorf("failed to set language %s: %w", info.Language, err)
	}

	tree := tsParser.Parse(content, nil)
	if tree == nil {
		return nil, fmt.Errorf("%w: %s: parser returned no tree", ErrSyntax, info.Path)
	}

	root := tree.RootNode()
	if root.HasError() {
		line := firstErrorLine(root)
		tree.Close()
		return nil, fmt.Errorf("%w: %s:%d", ErrSyntax, info.Path, line)
	}

	slog.Debug("parsed file", "path", info.RelPath, "lang", info.Language, "bytes", len(content))

	return &SourceFile{
		Path:     info.Path,
		RelPath:  info.RelPath,
		Language: info.Language,
		Content:  content,
		tree:     tree,
	}, nil
}

// firstErrorLine returns the 1-indexed line of the first error or missing node
func firstErrorLine(n *sitter.Node) int {
	if n.IsError() || n.IsMissing() {
		return int(n.StartPosition().Row) + 1
	}
	for i := uint(0); i < n.ChildCount(); i++ {
		child := n.Child(i)
		if child != nil && child.HasError() {
			return firstErrorLine(child)
		}
	}
	return int(n.StartPosition().Row) + 1
}
