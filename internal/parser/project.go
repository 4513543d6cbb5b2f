package parser

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/jenian/cfgscan/internal/scanner"
)

// ProjectLoader discovers and parses every source file under a root directory.
// Files are parsed one at a time, in walk order.
type ProjectLoader struct {
	root           string
	scanner        *scanner.Scanner
	parser         *Parser
	skipUnparsable bool
	onDiscovered   func([]scanner.FileInfo)
}

// NewProjectLoader creates a loader for root
func NewProjectLoader(root string, s *scanner.Scanner, p *Parser) *ProjectLoader {
	return &ProjectLoader{root: root, scanner: s, parser: p}
}

// SetSkipUnparsable makes files with syntax errors a warning instead of a failure
func (l *ProjectLoader) SetSkipUnparsable(skip bool) {
	l.skipUnparsable = skip
}

// Root returns the scanned root directory
func (l *ProjectLoader) Root() string {
	return l.root
}

// OnDiscovered registers fn to be called with the candidate files before parsing starts
func (l *ProjectLoader) OnDiscovered(fn func([]scanner.FileInfo)) {
	l.onDiscovered = fn
}

// SourceFiles walks the root and parses every candidate file.
// On failure, files parsed so far are closed.
func (l *ProjectLoader) SourceFiles() ([]*SourceFile, error) {
	infos, err := l.scanner.Scan(l.root)
	if err != nil {
		return nil, fmt.Errorf("failed to scan directory: %w", err)
	}
	if l.onDiscovered != nil {
		l.onDiscovered(infos)
	}

	files := make([]*SourceFile, 0, len(infos))
	for _, info := range infos {
		file, err := l.parser.ParseFile(info)
		if err != nil {
			if l.skipUnparsable && errors.Is(err, ErrSyntax) {
				slog.Warn("skipping unparsable file", "path", info.RelPath, "error", err)
				continue
			}
			CloseAll(files)
			return nil, err
		}
		files = append(files, file)
	}

	return files, nil
}

// CloseAll closes every file in files
func CloseAll(files []*SourceFile) {
	for _, f := range files {
		f.Close()
	}
}
