// Package slug derives URL-safe identifiers from display labels.
package slug

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const maxFoldedLen = 80

// Make converts a free-text label into a URL-safe slug: lowercase, "&"
// becomes "and", apostrophes are dropped, every other run of characters
// outside [a-z0-9] collapses to a single hyphen, and leading/trailing
// hyphens are stripped.
//
// Make is a pure total function but not injective: distinct labels that
// differ only in punctuation can map to the same slug. Speciality URLs
// depend on this exact algorithm staying stable.
func Make(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "&", "and")
	s = strings.ReplaceAll(s, "'", "")

	var b strings.Builder
	b.Grow(len(s))
	pendingHyphen := false
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		} else {
			pendingHyphen = true
		}
	}
	return b.String()
}

// Fold derives a business slug the way the site-data generator does: NFKD
// decomposition with combining marks and non-ASCII dropped, then the same
// lowercase/hyphen rules as Make (without the "&" and apostrophe handling),
// capped at 80 characters.
func Fold(s string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), runes.Remove(runes.Predicate(func(r rune) bool {
		return r > unicode.MaxASCII
	})))
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}

	folded = strings.ToLower(strings.TrimSpace(folded))

	var b strings.Builder
	b.Grow(len(folded))
	pendingHyphen := false
	for _, r := range folded {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		} else {
			pendingHyphen = true
		}
	}

	out := b.String()
	if len(out) > maxFoldedLen {
		out = strings.TrimRight(out[:maxFoldedLen], "-")
	}
	return out
}

// Unique returns base if unused, otherwise base-2, base-3, ... until a free
// slug is found. The seen set is not modified.
func Unique(base string, seen map[string]bool) string {
	if !seen[base] {
		return base
	}
	for n := 2; ; n++ {
		candidate := fmt.Sprintf("%s-%d", base, n)
		if !seen[candidate] {
			return candidate
		}
	}
}
