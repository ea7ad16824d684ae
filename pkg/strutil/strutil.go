package strutil

import "strings"

// cutset trimmed by Trim, TrimLeft and TrimRight. Deliberately narrower
// than unicode.IsSpace: carriage returns and vertical whitespace survive.
const cutset = " \t\n"

// Trim removes leading and trailing spaces, tabs and newlines.
func Trim(s string) string {
	return strings.Trim(s, cutset)
}

// TrimLeft removes leading spaces, tabs and newlines.
func TrimLeft(s string) string {
	return strings.TrimLeft(s, cutset)
}

// TrimRight removes trailing spaces, tabs and newlines.
func TrimRight(s string) string {
	return strings.TrimRight(s, cutset)
}

// ToLower lowercases ASCII letters A-Z and leaves every other byte alone.
// It is locale-independent: Unicode letters pass through unchanged.
func ToLower(s string) string {
	return strings.Map(func(r rune) rune {
		if 'A' <= r && r <= 'Z' {
			return r + ('a' - 'A')
		}
		return r
	}, s)
}

// ToUpper uppercases ASCII letters a-z and leaves every other byte alone.
func ToUpper(s string) string {
	return strings.Map(func(r rune) rune {
		if 'a' <= r && r <= 'z' {
			return r - ('a' - 'A')
		}
		return r
	}, s)
}

// Split cuts s at every occurrence of any character in delims. Empty tokens
// are preserved: consecutive delimiters produce empty strings and a trailing
// delimiter produces a trailing empty string. When no delimiter occurs in s,
// including when s is empty, the result is a single-element slice holding s.
func Split(s, delims string) []string {
	tokens := make([]string, 0, 4)
	for {
		i := strings.IndexAny(s, delims)
		if i < 0 {
			return append(tokens, s)
		}
		tokens = append(tokens, s[:i])
		s = s[i+1:]
	}
}

// StartsWith reports whether s begins with prefix. The empty prefix matches
// every string, including the empty one.
func StartsWith(s, prefix string) bool {
	return len(s) >= len(prefix) && s[:len(prefix)] == prefix
}

// EndsWith reports whether s ends with suffix.
func EndsWith(s, suffix string) bool {
	return len(s) >= len(suffix) && s[len(s)-len(suffix):] == suffix
}
