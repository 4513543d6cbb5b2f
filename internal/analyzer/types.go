package analyzer

import (
	"sort"

	"github.com/jenian/cfgscan/internal/parser"
)

// UsageReport is the set of configuration keys found during a run.
// Keys are only ever added. It is not safe for concurrent use.
type UsageReport struct {
	keys map[string]map[string]struct{} // key -> relative paths of files using it
}

// NewUsageReport creates an empty report
func NewUsageReport() *UsageReport {
	return &UsageReport{keys: make(map[string]map[string]struct{})}
}

// Add records key as used by source. Adding a known key only records the source.
func (r *UsageReport) Add(key, source string) {
	sources, ok := r.keys[key]
	if !ok {
		sources = make(map[string]struct{})
		r.keys[key] = sources
	}
	if source != "" {
		sources[source] = struct{}{}
	}
}

// Has reports whether key has been recorded
func (r *UsageReport) Has(key string) bool {
	_, ok := r.keys[key]
	return ok
}

// Len returns the number of distinct keys
func (r *UsageReport) Len() int {
	return len(r.keys)
}

// All returns every key in no particular order
func (r *UsageReport) All() []string {
	out := make([]string, 0, len(r.keys))
	for key := range r.keys {
		out = append(out, key)
	}
	return out
}

// Sorted returns every key in lexicographic order
func (r *UsageReport) Sorted() []string {
	out := r.All()
	sort.Strings(out)
	return out
}

// Sources returns the sorted files in which key was seen
func (r *UsageReport) Sources(key string) []string {
	sources := r.keys[key]
	out := make([]string, 0, len(sources))
	for s := range sources {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// SourceProvider supplies the parsed files of a project
type SourceProvider interface {
	Root() string
	SourceFiles() ([]*parser.SourceFile, error)
}

// Result is what a scan hands to the reporter
type Result struct {
	Root         string       // Scanned root directory
	EnvRoot      string       // Object expression environment keys are prefixed with
	Keys         []string     // Sorted, deduplicated configuration keys
	Usage        *UsageReport // Full report, for per-key sources
	FilesParsed  int          // Files supplied by the provider
	FilesInScope int          // Files that passed the import filter
}

// Reporter renders the final result of a scan
type Reporter interface {
	Report(result Result) error
}
