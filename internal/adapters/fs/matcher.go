package fs

import (
	"path/filepath"
	"strings"

	"go.trai.ch/tfroot/internal/core/ports"
)

var _ ports.PathMatcher = (*Matcher)(nil)

// Matcher implements ports.PathMatcher on canonical paths.
type Matcher struct {
	caseSensitive bool
	separator     string
}

// NewMatcher creates a Matcher using the host path separator.
func NewMatcher(caseSensitive bool) *Matcher {
	return &Matcher{
		caseSensitive: caseSensitive,
		separator:     string(filepath.Separator),
	}
}

// CaseSensitive reports whether path elements are compared byte for byte.
func (m *Matcher) CaseSensitive() bool {
	return m.caseSensitive
}

// IsUnder reports whether candidate equals ancestor or lies below it.
// Containment respects element boundaries: "/repo2" is not under "/repo".
func (m *Matcher) IsUnder(candidate, ancestor string) bool {
	if candidate == "" || ancestor == "" {
		return false
	}
	if !m.caseSensitive {
		candidate = strings.ToLower(candidate)
		ancestor = strings.ToLower(ancestor)
	}
	if candidate == ancestor {
		return true
	}

	prefix := ancestor
	if !strings.HasSuffix(prefix, m.separator) {
		prefix += m.separator
	}
	return strings.HasPrefix(candidate, prefix)
}
