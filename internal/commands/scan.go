package commands

import (
	"fmt"
	"path/filepath"
	"slices"

	"github.com/jenian/cfgscan/internal/analyzer"
	"github.com/jenian/cfgscan/internal/config"
	"github.com/jenian/cfgscan/internal/logging"
	"github.com/jenian/cfgscan/internal/output"
	"github.com/jenian/cfgscan/internal/parser"
	"github.com/jenian/cfgscan/internal/scanner"
	"github.com/spf13/cobra"
)

func runScan(cmd *cobra.Command, opts *scanOptions, version string, args []string) error {
	stdout := cmd.OutOrStdout()
	stderr := cmd.ErrOrStderr()

	logging.Init(stderr, opts.debug)
	output.ConfigureColor(opts.noColor)

	path := "."
	if len(args) > 0 {
		path = args[0]
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("invalid path: %w", err)
	}

	cfg, err := config.Load(absPath, opts.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	fileScanner := scanner.NewScanner()
	if globs := slices.Concat(cfg.Include, opts.includeGlobs); len(globs) > 0 {
		fileScanner.SetIncludeGlobs(globs)
	}
	if globs := slices.Concat(cfg.Exclude, opts.excludeGlobs); len(globs) > 0 {
		fileScanner.SetExcludeGlobs(globs)
	}
	if len(cfg.Ignores.Folders) > 0 {
		fileScanner.AddExcludeDirs(cfg.Ignores.Folders)
	}

	if !opts.noHeader {
		printHeader(stdout, version)
	}

	loader := parser.NewProjectLoader(absPath, fileScanner, parser.NewParser())
	loader.SetSkipUnparsable(cfg.SkipUnparsable)
	loader.OnDiscovered(func(files []scanner.FileInfo) {
		fmt.Fprintln(stderr, output.FileCounts(files))
	})

	reporter := output.NewReporter(stdout)
	reporter.SetShowSources(opts.showSources)

	engine := analyzer.New(analyzer.Rules{
		Services:   cfg.Services,
		Accessors:  cfg.Accessors,
		Exclusions: cfg.Exclusions,
		EnvRoot:    cfg.EnvRoot,
	})

	fmt.Fprintf(stderr, "Scanning %s...\n", absPath)
	if _, err := engine.ScanProject(loader, reporter); err != nil {
		return err
	}

	return nil
}
