package watch

import (
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// NameFilter selects the files whose changes should trigger a lint run.
// Patterns are matched against the base name.
type NameFilter struct {
	Include []string
	Exclude []string
}

// NewNameFilter creates a filter. Editor swap and backup files are always excluded.
func NewNameFilter(include ...string) *NameFilter {
	return &NameFilter{
		Include: include,
		Exclude: []string{".*.swp", "*~", ".#*"},
	}
}

// Matches reports whether path passes the filter. An empty include list matches everything.
func (f *NameFilter) Matches(path string) bool {
	base := filepath.Base(path)
	if base == "." || base == string(filepath.Separator) {
		return false
	}

	for _, pattern := range f.Exclude {
		if ok, _ := doublestar.Match(pattern, base); ok {
			return false
		}
	}

	if len(f.Include) == 0 {
		return true
	}
	for _, pattern := range f.Include {
		if ok, _ := doublestar.Match(pattern, base); ok {
			return true
		}
	}
	return false
}
