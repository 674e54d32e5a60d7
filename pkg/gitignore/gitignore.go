// Package gitignore matches slash-normalized relative paths against
// .gitignore-style pattern lists. Patterns are translated to anchored
// regular expressions; unrooted patterns also match at any depth, which
// covers the **/pattern fallback form.
package gitignore

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// Pattern is one compiled ignore rule with its source metadata.
type Pattern struct {
	Regexp *regexp.Regexp // compiled translation of the pattern line
	Negate bool           // pattern started with '!'
	Line   string         // original line, trimmed
	LineNo int            // 1-based position in the source
}

// Matcher holds an ordered pattern list. Later patterns override earlier
// ones, so a negation after a match un-ignores the path.
type Matcher struct {
	patterns []*Pattern
	lines    int // source lines seen so far, including blanks and comments
	logger   *zap.Logger
}

// NewMatcher returns an empty Matcher. A nil logger is replaced with a
// no-op one.
func NewMatcher(logger *zap.Logger) *Matcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Matcher{logger: logger}
}

// FromFile loads a pattern file (for example a repository's .gitignore).
// A missing file yields an empty matcher rather than an error.
func FromFile(path string, logger *zap.Logger) (*Matcher, error) {
	m := NewMatcher(logger)
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return m, nil
		}
		return nil, fmt.Errorf("failed to read ignore file %s: %w", path, err)
	}
	m.AddLines(strings.Split(string(content), "\n")...)
	return m, nil
}

// AddLines compiles pattern lines into the matcher. Empty lines, comments,
// and untranslatable patterns are skipped.
func (m *Matcher) AddLines(lines ...string) {
	for _, line := range lines {
		m.lines++
		p := parseLine(line, m.lines, m.logger)
		if p != nil {
			m.patterns = append(m.patterns, p)
		}
	}
}

// Len reports how many patterns are loaded.
func (m *Matcher) Len() int {
	return len(m.patterns)
}

// MatchesPath reports whether the path is ignored. Directory paths may
// carry a trailing slash to engage directory-only patterns.
func (m *Matcher) MatchesPath(path string) bool {
	matched, _ := m.Match(path)
	return matched
}

// Match reports whether the path is ignored and which pattern decided it.
func (m *Matcher) Match(path string) (bool, *Pattern) {
	normalized := filepath.ToSlash(path)

	matched := false
	var deciding *Pattern
	for _, p := range m.patterns {
		if p.Regexp.MatchString(normalized) {
			matched = !p.Negate
			deciding = p
		}
	}
	return matched, deciding
}

// parseLine translates one pattern line, returning nil for blanks and
// comments.
func parseLine(line string, lineNo int, logger *zap.Logger) *Pattern {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return nil
	}

	negate := false
	if strings.HasPrefix(trimmed, "!") {
		negate = true
		trimmed = strings.TrimPrefix(trimmed, "!")
	}
	// Escaped leading '#' or '!' are literals.
	if strings.HasPrefix(trimmed, `\#`) || strings.HasPrefix(trimmed, `\!`) {
		trimmed = trimmed[1:]
	}

	expr := escapeSpecialChars(trimmed)
	expr = expandDoubleStars(expr)
	expr = wildcardsToRegexp(expr)
	expr = resolveDoubleStars(expr)
	expr = anchor(expr, trimmed)

	re, err := regexp.Compile(expr)
	if err != nil {
		logger.Warn("Skipping untranslatable ignore pattern",
			zap.String("pattern", trimmed),
			zap.Int("lineNo", lineNo),
			zap.Error(err))
		return nil
	}
	return &Pattern{Regexp: re, Negate: negate, Line: trimmed, LineNo: lineNo}
}
