package strutil

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold replaces accented characters with their ASCII base form: "café"
// becomes "cafe", "naïve" becomes "naive". Characters with no combining-mark
// decomposition are left as they are. On a transform failure the input is
// returned unchanged.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// Truncate shortens s to at most max runes, with a "…" marker taking the
// final position when anything was cut. A non-positive max yields the empty
// string.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	r := []rune(s)
	if max == 1 {
		return "…"
	}
	return string(r[:max-1]) + "…"
}
