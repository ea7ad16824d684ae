package format

import (
	"fmt"
	"strings"
	"unsafe"
)

// ProbeSize is the capacity of the first-pass buffer used by Render. A
// rendering of fewer than ProbeSize bytes completes in a single pass.
const ProbeSize = 512

// nWriter is a fixed-capacity sink that keeps counting past the end of its
// buffer: output is truncated silently while n accumulates the length the
// complete rendering requires.
type nWriter struct {
	buf []byte
	n   int
}

func (w *nWriter) Write(p []byte) (int, error) {
	if w.n < len(w.buf) {
		copy(w.buf[w.n:], p)
	}
	w.n += len(p)
	return len(p), nil
}

// Bprintf renders format into dst, truncating if the result does not fit,
// and returns the byte length of the complete rendering regardless of
// truncation. A negative return means the format string is malformed or does
// not match the argument list; dst contents are unspecified in that case.
func Bprintf(dst []byte, format string, args ...any) int {
	if !verifyFormat(format, len(args)) {
		return -1
	}
	w := nWriter{buf: dst}
	fmt.Fprintf(&w, format, args...)
	return w.n
}

// Render builds the complete formatted string for format and args, however
// long the result is. It probes with a ProbeSize buffer first and re-renders
// into an exactly-sized buffer only when the probe cannot hold the text, so
// at most two buffers are ever allocated. Malformed format strings are
// reported as ErrBadFormat instead of fmt's inline %! diagnostics.
func Render(format string, args ...any) (string, error) {
	probe := make([]byte, ProbeSize)
	n := Bprintf(probe, format, args...)
	if n < 0 {
		return "", fmt.Errorf("%w: %q", ErrBadFormat, format)
	}
	if n < len(probe) {
		// The probe holds the full text; hand it over without copying.
		return unsafe.String(unsafe.SliceData(probe), n), nil
	}
	buf := make([]byte, n)
	if m := Bprintf(buf, format, args...); m != n {
		return "", fmt.Errorf("%w: %q", ErrBadFormat, format)
	}
	return unsafe.String(unsafe.SliceData(buf), n), nil
}

// verbs accepted by fmt for Fprintf-style rendering. %w is excluded: it is
// only meaningful to Errorf.
const verbs = "vTtbcdoOqxXUeEfFgGsp"

// verifyFormat scans format the way fmt's parser does and reports whether
// rendering it against nargs arguments would be clean: every directive uses
// a known verb and the directives consume exactly the arguments provided.
// fmt itself never fails on bad input, it embeds %!-markers in the output,
// so this scan is what gives Bprintf its error return.
func verifyFormat(format string, nargs int) bool {
	next := 0 // index of the next argument to consume, 0-based
	high := 0 // highest argument index consumed, 1-based

	consume := func() bool {
		next++
		if next > high {
			high = next
		}
		return next <= nargs
	}

	i := 0
	for i < len(format) {
		if format[i] != '%' {
			i++
			continue
		}
		i++
		if i < len(format) && format[i] == '%' {
			i++
			continue
		}
		for i < len(format) && strings.IndexByte("+-# 0", format[i]) >= 0 {
			i++
		}
		var ok bool
		if i, ok = scanArgIndex(format, i, &next); !ok {
			return false
		}
		// width
		if i < len(format) && format[i] == '*' {
			i++
			if !consume() {
				return false
			}
		} else {
			i = scanDigits(format, i)
		}
		// precision
		if i < len(format) && format[i] == '.' {
			i++
			if i, ok = scanArgIndex(format, i, &next); !ok {
				return false
			}
			if i < len(format) && format[i] == '*' {
				i++
				if !consume() {
					return false
				}
			} else {
				i = scanDigits(format, i)
			}
		}
		if i, ok = scanArgIndex(format, i, &next); !ok {
			return false
		}
		if i >= len(format) || strings.IndexByte(verbs, format[i]) < 0 {
			return false
		}
		i++
		if !consume() {
			return false
		}
	}
	return high == nargs
}

// scanArgIndex consumes an optional explicit argument index such as [2],
// repositioning the argument cursor. It reports false on a malformed index.
func scanArgIndex(format string, i int, next *int) (int, bool) {
	if i >= len(format) || format[i] != '[' {
		return i, true
	}
	i++
	j := scanDigits(format, i)
	if j == i || j >= len(format) || format[j] != ']' {
		return i, false
	}
	n := 0
	for _, c := range []byte(format[i:j]) {
		n = n*10 + int(c-'0')
	}
	if n < 1 {
		return i, false
	}
	*next = n - 1
	return j + 1, true
}

func scanDigits(format string, i int) int {
	for i < len(format) && format[i] >= '0' && format[i] <= '9' {
		i++
	}
	return i
}
