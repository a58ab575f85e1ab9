package jsxlint

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"
	ignore "github.com/sabhiram/go-gitignore"

	"github.com/yacobolo/jsxlint/internal/syntax"
)

// DefaultScanPaths is scanned when no paths are configured.
var DefaultScanPaths = []string{"**/*.{js,jsx,mjs,cjs,ts,tsx,mts,cts}"}

// directoryPattern is appended to scan paths that name a directory.
const directoryPattern = "**/*.{js,jsx,mjs,cjs,ts,tsx,mts,cts}"

// ScanStats tracks file discovery statistics
type ScanStats struct {
	FilesDiscovered int // Total files found by glob patterns
	FilesScanned    int // Files kept for analysis (after filtering)
	FilesSkipped    int // Files skipped due to filtering
}

var (
	gitIgnoreCache *ignore.GitIgnore
	gitIgnoreOnce  sync.Once
)

// isVendoredOrGenerated reports files that are never worth linting:
// dependencies, minified bundles and type declarations.
func isVendoredOrGenerated(path string) bool {
	slashed := filepath.ToSlash(path)
	if slashed == "node_modules" || strings.HasPrefix(slashed, "node_modules/") || strings.Contains(slashed, "/node_modules/") {
		return true
	}
	base := strings.ToLower(filepath.Base(path))
	for _, suffix := range []string{".min.js", ".min.mjs", ".d.ts", ".d.mts", ".d.cts"} {
		if strings.HasSuffix(base, suffix) {
			return true
		}
	}
	return false
}

// loadGitIgnore loads the .gitignore of the working directory once.
// A missing .gitignore is fine.
func loadGitIgnore() *ignore.GitIgnore {
	gitIgnoreOnce.Do(func() {
		gi, err := ignore.CompileIgnoreFile(".gitignore")
		if err != nil {
			return
		}
		gitIgnoreCache = gi
	})
	return gitIgnoreCache
}

// shouldSkipFile determines if a file should be excluded from scanning.
//
// Two-layer filtering:
// 1. Pattern check (fast): node_modules, *.min.js, *.d.ts
// 2. Gitignore check: only for relative paths, since absolute paths may lie
// outside the project
func shouldSkipFile(path string) bool {
	if isVendoredOrGenerated(path) {
		return true
	}
	if !filepath.IsAbs(path) {
		if gi := loadGitIgnore(); gi != nil && gi.MatchesPath(path) {
			return true
		}
	}
	return false
}

// expandPattern turns a directory into a recursive pattern over supported
// extensions; anything else is returned as given.
func expandPattern(pattern string) string {
	if info, err := os.Stat(pattern); err == nil && info.IsDir() {
		return filepath.Join(pattern, directoryPattern)
	}
	return pattern
}

// DiscoverFiles expands glob patterns into the list of files to lint.
// Results are deduplicated and keep pattern order. Only files with a
// supported extension are returned.
func DiscoverFiles(patterns []string) ([]string, ScanStats, error) {
	if len(patterns) == 0 {
		patterns = DefaultScanPaths
	}

	var files []string
	seen := make(map[string]bool)
	stats := ScanStats{}

	for _, pattern := range patterns {
		pattern = expandPattern(pattern)
		if !doublestar.ValidatePathPattern(pattern) {
			return nil, stats, errors.Newf("invalid scan pattern %q", pattern)
		}
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, stats, errors.Wrapf(err, "expanding %q", pattern)
		}

		for _, match := range matches {
			if seen[match] || !syntax.Supported(match) {
				continue
			}
			seen[match] = true
			stats.FilesDiscovered++

			if shouldSkipFile(match) {
				log.Debug("skipping file", "file", match)
				stats.FilesSkipped++
				continue
			}
			files = append(files, match)
			stats.FilesScanned++
		}
	}

	return files, stats, nil
}

// GetRelativePath returns a path relative to the current working directory
// when possible.
func GetRelativePath(path string) string {
	if !filepath.IsAbs(path) {
		return path
	}
	cwd, err := os.Getwd()
	if err != nil {
		return path
	}
	rel, err := filepath.Rel(cwd, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}
