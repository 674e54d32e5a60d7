package gitignore

import (
	"regexp"
	"strings"
)

var (
	doubleStarMiddle   = regexp.MustCompile(`/\*\*/`)
	doubleStarTrailing = regexp.MustCompile(`/\*\*$`)
	doubleStarLeading  = regexp.MustCompile(`^\*\*/`)
	singleStar         = regexp.MustCompile(`\*`)
	directoryEnd       = regexp.MustCompile(`/$`)
	rootRelative       = regexp.MustCompile(`^/`)
)

// escapeSpecialChars escapes regexp metacharacters except '*', '?', and '/',
// which carry glob meaning.
func escapeSpecialChars(pattern string) string {
	const special = `.+()|^$[]{}`
	for _, ch := range special {
		pattern = strings.ReplaceAll(pattern, string(ch), `\`+string(ch))
	}
	return pattern
}

// Placeholder tokens stand in for '**' segments until the wildcard
// conversion has run; substituting the regexp fragments directly would let
// wildcardsToRegexp mangle their '*' and '?' characters.
const (
	tokenDoubleStarMiddle   = "\x00dsm\x00"
	tokenDoubleStarTrailing = "\x00dst\x00"
	tokenDoubleStarLeading  = "\x00dsl\x00"
)

// expandDoubleStars replaces '**' segments with placeholder tokens.
func expandDoubleStars(pattern string) string {
	pattern = doubleStarMiddle.ReplaceAllString(pattern, tokenDoubleStarMiddle)
	pattern = doubleStarTrailing.ReplaceAllString(pattern, tokenDoubleStarTrailing)
	pattern = doubleStarLeading.ReplaceAllString(pattern, tokenDoubleStarLeading)
	return pattern
}

// wildcardsToRegexp converts the remaining '*' and '?' glob wildcards.
func wildcardsToRegexp(pattern string) string {
	pattern = singleStar.ReplaceAllString(pattern, `[^/]*`)
	pattern = strings.ReplaceAll(pattern, "?", ".")
	return pattern
}

// resolveDoubleStars substitutes the regexp fragments for the placeholder
// tokens once the wildcard conversion can no longer touch them.
func resolveDoubleStars(pattern string) string {
	pattern = strings.ReplaceAll(pattern, tokenDoubleStarMiddle, `(/|/.+/)`)
	pattern = strings.ReplaceAll(pattern, tokenDoubleStarTrailing, `(/.*)?`)
	pattern = strings.ReplaceAll(pattern, tokenDoubleStarLeading, `(.*/)?`)
	return pattern
}

// anchor pins the pattern to whole paths. Directory patterns (trailing '/')
// match the directory and everything under it; plain patterns also match as
// a prefix of deeper paths. Patterns rooted with a leading '/' match only
// from the top; anything else may match at any depth (the **/pattern
// fallback form).
func anchor(pattern, original string) string {
	if directoryEnd.MatchString(original) {
		pattern = strings.TrimSuffix(pattern, "/") + "(/.*)?$"
	} else {
		pattern = pattern + "(|/.*)?$"
	}

	if rootRelative.MatchString(original) {
		return "^" + strings.TrimPrefix(pattern, `/`)
	}
	return "^(|.*/)" + pattern
}
