package output

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/jenian/cfgscan/internal/analyzer"
	"github.com/jenian/cfgscan/internal/scanner"
	"golang.org/x/term"
)

var (
	headerColor = color.New(color.Bold)
	keyColor    = color.New(color.FgGreen)
	envColor    = color.New(color.FgCyan)
	mutedColor  = color.New(color.FgHiBlack)
)

// ConfigureColor enables colors only when stdout is a terminal and disable is false
func ConfigureColor(disable bool) {
	color.NoColor = disable || !term.IsTerminal(int(os.Stdout.Fd()))
}

// Reporter prints the human-readable report
type Reporter struct {
	w           io.Writer
	showSources bool
}

// NewReporter creates a reporter writing to w
func NewReporter(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// SetShowSources adds a key/files table after the key list
func (r *Reporter) SetShowSources(show bool) {
	r.showSources = show
}

// Report prints the header line, every key in order, and a summary line
func (r *Reporter) Report(result analyzer.Result) error {
	if _, err := headerColor.Fprintf(r.w, "Configuration keys used in %s:\n\n", result.Root); err != nil {
		return err
	}

	if len(result.Keys) == 0 {
		mutedColor.Fprintln(r.w, "  (no configuration keys found)")
	}
	for _, key := range result.Keys {
		c := keyColor
		if isEnvKey(key, result.EnvRoot) {
			c = envColor
		}
		fmt.Fprintf(r.w, "  %s\n", c.Sprint(key))
	}
	fmt.Fprintln(r.w)

	if r.showSources && len(result.Keys) > 0 && result.Usage != nil {
		fmt.Fprintln(r.w, sourcesTable(result))
		fmt.Fprintln(r.w)
	}

	_, err := mutedColor.Fprintf(r.w, "%s in %s of %s\n",
		plural(len(result.Keys), "key"),
		humanize.Comma(int64(result.FilesInScope)),
		plural(result.FilesParsed, "file"))
	return err
}

func isEnvKey(key, envRoot string) bool {
	return envRoot != "" && strings.HasPrefix(key, envRoot+".")
}

func sourcesTable(result analyzer.Result) string {
	style := table.StyleLight
	style.Format.Header = text.FormatDefault
	style.Format.Footer = text.FormatDefault

	tbl := table.NewWriter()
	tbl.SetStyle(style)
	tbl.AppendHeader(table.Row{"Key", "Files"})
	for _, key := range result.Keys {
		tbl.AppendRow(table.Row{key, strings.Join(result.Usage.Sources(key), "\n")})
	}
	tbl.AppendFooter(table.Row{"Total", plural(len(result.Keys), "key")})
	return tbl.Render()
}

// FileCounts summarises discovered files by language, e.g. "Found 3 files (ts: 2, js: 1)"
func FileCounts(files []scanner.FileInfo) string {
	counts := make(map[scanner.Language]int)
	for _, f := range files {
		counts[f.Language]++
	}

	var parts []string
	for _, lang := range []scanner.Language{scanner.LanguageTypeScript, scanner.LanguageJavaScript} {
		if n := counts[lang]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s: %s", shortName(lang), humanize.Comma(int64(n))))
			delete(counts, lang)
		}
	}
	var rest []string
	for lang, n := range counts {
		rest = append(rest, fmt.Sprintf("%s: %s", lang, humanize.Comma(int64(n))))
	}
	sort.Strings(rest)
	parts = append(parts, rest...)

	if len(parts) == 0 {
		return "Found 0 files to parse"
	}
	return fmt.Sprintf("Found %s (%s)", plural(len(files), "file"), strings.Join(parts, ", "))
}

func shortName(lang scanner.Language) string {
	switch lang {
	case scanner.LanguageTypeScript:
		return "ts"
	case scanner.LanguageJavaScript:
		return "js"
	}
	return string(lang)
}

func plural(n int, singular string) string {
	return humanize.Comma(int64(n)) + " " + english.PluralWord(n, singular, "")
}

// FormatError formats an error message
func FormatError(err error) string {
	return fmt.Sprintf("Error: %s\n", err)
}
