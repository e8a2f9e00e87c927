package diagfmt

import (
	"path/filepath"

	"lexiscope/internal/analysis"
	"lexiscope/internal/diag"
	"lexiscope/internal/source"
)

// PathMode specifies how file paths are displayed.
type PathMode uint8

const (
	// PathModeAuto keeps the path as it was given.
	PathModeAuto PathMode = iota
	// PathModeAbsolute always uses absolute paths.
	PathModeAbsolute
	PathModeRelative
	PathModeBasename
)

// ParsePathMode converts a flag value to a PathMode.
func ParsePathMode(s string) (PathMode, bool) {
	switch s {
	case "", "auto":
		return PathModeAuto, true
	case "absolute":
		return PathModeAbsolute, true
	case "relative":
		return PathModeRelative, true
	case "basename":
		return PathModeBasename, true
	}
	return PathModeAuto, false
}

// PrettyOpts configures pretty-printing of an analysis.
type PrettyOpts struct {
	Color       bool
	PathMode    PathMode
	BaseDir     string
	ShowSource  bool // строка исходника и ^ под колонкой
	ShowPhases  bool
	ShowStats   bool
	ShowTimings bool
	Max         int // обрезка вывода, 0 - без ограничения
}

// JSONOpts configures JSON and CBOR output.
type JSONOpts struct {
	PathMode          PathMode
	BaseDir           string
	Max               int // обрезка вывода, не Bag
	IncludeCharacters bool
	IncludeTokens     bool
	IncludeTimings    bool
}

// SarifRunMeta provides metadata for SARIF output.
type SarifRunMeta struct {
	ToolName       string
	ToolVersion    string
	InvocationArgs []string
}

// Entry is one analysed input as the formatters see it.
type Entry struct {
	Path   string
	File   *source.File     // nil when the file could not be loaded
	Result *analysis.Result // nil when the file could not be loaded
	// Diagnostics is used when Result is nil (load failures).
	Diagnostics []diag.Diagnostic
	Cached      bool
}

// Diags returns the diagnostics of the entry.
func (e *Entry) Diags() []diag.Diagnostic {
	if e.Result != nil {
		return e.Result.Diagnostics
	}
	return e.Diagnostics
}

func formatPath(path string, mode PathMode, baseDir string) string {
	switch mode {
	case PathModeAbsolute:
		if abs, err := filepath.Abs(path); err == nil {
			return filepath.ToSlash(abs)
		}
	case PathModeRelative:
		if baseDir == "" {
			break
		}
		absBase, err1 := filepath.Abs(baseDir)
		absPath, err2 := filepath.Abs(path)
		if err1 != nil || err2 != nil {
			break
		}
		if rel, err := filepath.Rel(absBase, absPath); err == nil {
			return filepath.ToSlash(rel)
		}
	case PathModeBasename:
		return filepath.Base(path)
	}
	return filepath.ToSlash(path)
}

func limit[T any](items []T, max int) ([]T, int) {
	if max > 0 && len(items) > max {
		return items[:max], len(items) - max
	}
	return items, 0
}
