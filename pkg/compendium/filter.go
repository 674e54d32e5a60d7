package compendium

import (
	"fmt"
	"regexp"
	"strings"
)

// CompilePatterns compiles a comma-separated pattern list into regexps.
// Blank items are dropped; an invalid pattern is a hard error because it is
// caller-supplied configuration, not filesystem noise.
func CompilePatterns(csv string) ([]*regexp.Regexp, error) {
	var patterns []*regexp.Regexp
	for _, raw := range strings.Split(csv, ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		re, err := regexp.Compile(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid path pattern %q: %w", raw, err)
		}
		patterns = append(patterns, re)
	}
	return patterns, nil
}

// FilterInventory applies post-scan include/exclude path patterns to the
// inventory. With include patterns present, an entry survives only if some
// include pattern matches its path; an entry matching any exclude pattern
// is dropped regardless. Matching is an unanchored search on the
// slash-normalized relative path.
func FilterInventory(inv Inventory, include, exclude []*regexp.Regexp) Inventory {
	if len(include) == 0 && len(exclude) == 0 {
		return inv
	}
	out := make(Inventory, 0, len(inv))
	for _, e := range inv {
		if len(include) > 0 && !matchesAny(e.Path, include) {
			continue
		}
		if matchesAny(e.Path, exclude) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func matchesAny(path string, patterns []*regexp.Regexp) bool {
	for _, re := range patterns {
		if re.MatchString(path) {
			return true
		}
	}
	return false
}
