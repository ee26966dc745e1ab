package diagfmt

import (
	"path/filepath"
	"strings"
)

// PathMode specifies how file paths are displayed.
type PathMode uint8

const (
	// PathModeAuto keeps short names and shortens long absolute paths to the basename.
	PathModeAuto PathMode = iota
	// PathModeAbsolute always uses absolute paths.
	PathModeAbsolute
	PathModeBasename
)

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color     bool
	PathMode  PathMode
	ShowNotes bool
}

// JSONOpts configures JSON output of diagnostics.
type JSONOpts struct {
	IncludePositions bool // добавить line/col
	PathMode         PathMode
	Max              int // обрезка вывода, не Bag
	IncludeNotes     bool
}

// TokenOpts configures token listings.
type TokenOpts struct {
	Color bool
	// NameWidth caps the display width of variable names; 0 means no limit.
	NameWidth int
}

const autoPathLimit = 40

func formatPath(name string, mode PathMode) string {
	if strings.HasPrefix(name, "<") {
		return name // <input>, <stdin>
	}
	switch mode {
	case PathModeAbsolute:
		if abs, err := filepath.Abs(name); err == nil {
			return abs
		}
		return name
	case PathModeBasename:
		return filepath.Base(name)
	default:
		if filepath.IsAbs(name) && len(name) > autoPathLimit {
			return filepath.Base(name)
		}
		return name
	}
}
