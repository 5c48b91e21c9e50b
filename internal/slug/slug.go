// Package slug derives URL-safe identifiers from article titles.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	invalidChars   = regexp.MustCompile(`[^a-z0-9-]+`)
	repeatedHyphen = regexp.MustCompile(`-{2,}`)
)

// Make converts a title into a URL-safe slug: accents are stripped via
// Unicode decomposition, the result is lowercased, whitespace collapses to
// single hyphens, and anything outside [a-z0-9-] is dropped. The result may
// be empty when the title contains no latin letters or digits.
func Make(title string) string {
	// Decompose accented characters and drop the combining marks.
	chain := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	s, _, _ := transform.String(chain, title)

	s = strings.ToLower(s)
	s = strings.Join(strings.Fields(s), "-")
	s = invalidChars.ReplaceAllString(s, "")
	s = repeatedHyphen.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// WithSuffix appends a collision suffix to a base slug.
func WithSuffix(base, suffix string) string {
	if base == "" {
		return suffix
	}
	return base + "-" + suffix
}

// IsValid reports whether s is a well-formed slug: non-empty, only lowercase
// letters, digits and single interior hyphens.
func IsValid(s string) bool {
	if s == "" || s[0] == '-' || s[len(s)-1] == '-' || strings.Contains(s, "--") {
		return false
	}
	for _, r := range s {
		if !((r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-') {
			return false
		}
	}
	return true
}
