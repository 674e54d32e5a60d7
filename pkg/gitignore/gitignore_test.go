package gitignore

import (
	"os"
	"path/filepath"
	"testing"
)

func matcherFrom(lines ...string) *Matcher {
	m := NewMatcher(nil)
	m.AddLines(lines...)
	return m
}

func TestMatcher_BasicPatterns(t *testing.T) {
	cases := []struct {
		pattern string
		path    string
		want    bool
	}{
		{"*.log", "debug.log", true},
		{"*.log", "logs/debug.log", true},
		{"*.log", "debug.logx", false},
		{"build/", "build/", true},
		{"build/", "build/out.txt", true},
		{"build/", "builder/out.txt", false},
		{"/dist", "dist", true},
		{"/dist", "dist/app.js", true},
		{"/dist", "nested/dist", false},
		{"temp?", "temp1", true},
		{"temp?", "temp12", false},
	}
	for _, tc := range cases {
		m := matcherFrom(tc.pattern)
		if got := m.MatchesPath(tc.path); got != tc.want {
			t.Errorf("pattern %q path %q = %v, want %v", tc.pattern, tc.path, got, tc.want)
		}
	}
}

func TestMatcher_DoubleStar(t *testing.T) {
	cases := []struct {
		pattern string
		path    string
		want    bool
	}{
		{"**/cache", "cache", true},
		{"**/cache", "a/b/cache", true},
		{"docs/**", "docs/api/index.md", true},
		{"docs/**", "docs", true},
		{"a/**/b", "a/b", true},
		{"a/**/b", "a/x/y/b", true},
		{"a/**/b", "a/b2", false},
		{"**/cache.tmp", "cache.tmp", true},
		{"**/cache.tmp", "nested/deep/cache.tmp", true},
		{"**/cache.tmp", "cache.tmpx", false},
	}
	for _, tc := range cases {
		m := matcherFrom(tc.pattern)
		if got := m.MatchesPath(tc.path); got != tc.want {
			t.Errorf("pattern %q path %q = %v, want %v", tc.pattern, tc.path, got, tc.want)
		}
	}
}

func TestMatcher_NegationLastMatchWins(t *testing.T) {
	m := matcherFrom("*.log", "!important.log")

	if !m.MatchesPath("debug.log") {
		t.Error("debug.log should be ignored")
	}
	if m.MatchesPath("important.log") {
		t.Error("negation must un-ignore important.log")
	}
}

func TestMatcher_CommentsAndBlanksSkipped(t *testing.T) {
	m := matcherFrom("# a comment", "", "   ", "*.tmp")
	if m.Len() != 1 {
		t.Errorf("loaded %d patterns, want 1", m.Len())
	}
	if !m.MatchesPath("x.tmp") {
		t.Error("surviving pattern must still match")
	}
}

func TestMatcher_LineNumbersCountSkippedLines(t *testing.T) {
	m := matcherFrom("# header", "", "*.log", "!important.log")

	_, p := m.Match("important.log")
	if p == nil {
		t.Fatal("negation pattern should decide the match")
	}
	if p.LineNo != 4 {
		t.Errorf("LineNo = %d, want 4 (blanks and comments still count)", p.LineNo)
	}

	_, p = m.Match("debug.log")
	if p == nil || p.LineNo != 3 {
		t.Errorf("deciding pattern LineNo = %v, want 3", p)
	}
}

func TestFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".gitignore")
	content := "node_modules/\n*.pyc\n# comment\n!keep.pyc\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	m, err := FromFile(path, nil)
	if err != nil {
		t.Fatalf("FromFile() error: %v", err)
	}
	if m.Len() != 3 {
		t.Errorf("loaded %d patterns, want 3", m.Len())
	}
	if !m.MatchesPath("node_modules/left-pad/index.js") {
		t.Error("directory pattern must cover descendants")
	}
	if !m.MatchesPath("src/a.pyc") {
		t.Error("unrooted pattern must match at depth")
	}
	if m.MatchesPath("keep.pyc") {
		t.Error("negated file must not be ignored")
	}
}

func TestFromFile_MissingIsEmptyMatcher(t *testing.T) {
	m, err := FromFile(filepath.Join(t.TempDir(), "nope"), nil)
	if err != nil {
		t.Fatalf("FromFile() on a missing file must not error, got %v", err)
	}
	if m.Len() != 0 {
		t.Errorf("missing file must yield an empty matcher, got %d patterns", m.Len())
	}
	if m.MatchesPath("anything") {
		t.Error("empty matcher must match nothing")
	}
}
