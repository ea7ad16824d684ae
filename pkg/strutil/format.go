package strutil

import (
	"log/slog"

	"github.com/dmitrymomot/strtools/pkg/format"
)

// Formatf renders a printf-style format string of any resulting length and
// returns the text. On a malformed format string it returns the empty string
// and logs a warning; use Renderf when the caller needs the failure itself.
func Formatf(f string, args ...any) string {
	s, err := format.Render(f, args...)
	if err != nil {
		slog.Warn("strutil: formatting failed", "format", f, "error", err)
		return ""
	}
	return s
}

// Renderf renders a printf-style format string of any resulting length,
// reporting malformed input as format.ErrBadFormat.
func Renderf(f string, args ...any) (string, error) {
	return format.Render(f, args...)
}
