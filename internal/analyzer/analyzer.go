package analyzer

import (
	"fmt"
	"log/slog"

	"github.com/jenian/cfgscan/internal/parser"
)

// Analyzer finds configuration keys in parsed source files
type Analyzer struct {
	rules Rules
}

// New creates an analyzer using rules
func New(rules Rules) *Analyzer {
	return &Analyzer{rules: rules}
}

// ScanProject loads every file from provider, scans those that import a
// recognised service, and hands the result to reporter exactly once.
// Files are scanned sequentially and closed before returning.
func (a *Analyzer) ScanProject(provider SourceProvider, reporter Reporter) (*UsageReport, error) {
	files, err := provider.SourceFiles()
	if err != nil {
		return nil, err
	}
	defer parser.CloseAll(files)

	report := NewUsageReport()
	inScope := 0
	for _, file := range files {
		if !a.UsesService(file) {
			slog.Debug("skipping file without service import", "path", file.RelPath)
			continue
		}
		inScope++
		a.ScanFile(file, report)
		a.ScanProcessEnv(file, report)
	}

	result := Result{
		Root:         provider.Root(),
		EnvRoot:      a.rules.EnvRoot,
		Keys:         report.Sorted(),
		Usage:        report,
		FilesParsed:  len(files),
		FilesInScope: inScope,
	}
	if err := reporter.Report(result); err != nil {
		return report, fmt.Errorf("failed to report results: %w", err)
	}

	return report, nil
}
