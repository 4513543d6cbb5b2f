package scanner

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// Language represents a source language handled by the parser
type Language string

const (
	LanguageJavaScript Language = "javascript"
	LanguageTypeScript Language = "typescript"
	LanguageUnknown    Language = "unknown"
)

// FileInfo contains information about a file to be parsed
type FileInfo struct {
	Path     string
	RelPath  string // Slash-separated path relative to the scan root
	Language Language
}

// Scanner handles file discovery and filtering
type Scanner struct {
	excludeDirs  map[string]bool // Directory names to exclude (e.g., "node_modules")
	excludePaths []string        // Root-relative path patterns to exclude (e.g., "src/config", "k8s/*")
	excludeGlobs []string
	includeGlobs []string
}

// DefaultExcludeDirs lists the dependency, build output, coverage, framework
// cache and editor/VCS directories that are never walked.
var DefaultExcludeDirs = []string{
	"node_modules",
	"dist",
	"build",
	"coverage",
	".next",
	".nuxt",
	".cache",
	".git",
	".idea",
	".vscode",
}

// NewScanner creates a new scanner with default exclusions
func NewScanner() *Scanner {
	s := &Scanner{excludeDirs: make(map[string]bool)}
	for _, dir := range DefaultExcludeDirs {
		s.excludeDirs[dir] = true
	}
	return s
}

// SetExcludeGlobs sets glob patterns to exclude
func (s *Scanner) SetExcludeGlobs(globs []string) {
	s.excludeGlobs = globs
}

// SetIncludeGlobs sets glob patterns to include (overrides excludes)
func (s *Scanner) SetIncludeGlobs(globs []string) {
	s.includeGlobs = globs
}

// AddExcludeDirs adds additional directories to exclude from scanning.
// Entries can be directory names (e.g., "fixtures") or root-relative paths (e.g., "src/legacy").
func (s *Scanner) AddExcludeDirs(dirs []string) {
	for _, dir := range dirs {
		if strings.Contains(dir, "/") || strings.Contains(dir, "\\") {
			s.excludePaths = append(s.excludePaths, filepath.ToSlash(dir))
		} else {
			s.excludeDirs[dir] = true
		}
	}
}

// DetectLanguage determines the language from the file extension
func DetectLanguage(path string) Language {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".js":
		return LanguageJavaScript
	case ".ts":
		return LanguageTypeScript
	default:
		return LanguageUnknown
	}
}

// matchesGlob checks if a path matches any of the glob patterns
func matchesGlob(path string, globs []string) bool {
	for _, glob := range globs {
		if matched, _ := filepath.Match(glob, filepath.Base(path)); matched {
			return true
		}
		if matched, _ := filepath.Match(glob, path); matched {
			return true
		}
	}
	return false
}

// shouldInclude checks if a file should be included based on include/exclude globs
func (s *Scanner) shouldInclude(relPath string) bool {
	if len(s.includeGlobs) > 0 {
		return matchesGlob(relPath, s.includeGlobs)
	}
	if len(s.excludeGlobs) > 0 {
		return !matchesGlob(relPath, s.excludeGlobs)
	}
	return true
}

// isExcludedPath checks if a root-relative directory matches one of the excluded paths
func (s *Scanner) isExcludedPath(relPath string) bool {
	for _, excluded := range s.excludePaths {
		prefix := strings.TrimSuffix(excluded, "/*")
		if relPath == prefix || strings.HasPrefix(relPath, prefix+"/") {
			return true
		}
	}
	return false
}

// Scan recursively walks rootPath and returns the files to parse in walk order.
// A missing or unreadable root is returned as an error.
func (s *Scanner) Scan(rootPath string) ([]FileInfo, error) {
	var files []FileInfo

	err := filepath.WalkDir(rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, relErr := filepath.Rel(rootPath, path)
		if relErr != nil {
			rel = path
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if path == rootPath {
				return nil
			}
			if s.excludeDirs[d.Name()] || s.isExcludedPath(rel) {
				return filepath.SkipDir
			}
			return nil
		}

		lang := DetectLanguage(path)
		if lang == LanguageUnknown {
			return nil
		}

		if !s.shouldInclude(rel) {
			return nil
		}

		files = append(files, FileInfo{
			Path:     path,
			RelPath:  rel,
			Language: lang,
		})
		return nil
	})

	return files, err
}
