// Package format provides a two-pass formatted-string builder on top of a
// bounded, length-reporting rendering primitive.
//
// The package exists for call sites that need printf-style rendering with an
// explicit failure outcome: Go's fmt never returns an error for a malformed
// format string, it silently embeds diagnostic markers such as %!z(MISSING)
// into the output. Render validates the format string against its argument
// list up front and reports ErrBadFormat instead of producing garbage.
//
// # Rendering Protocol
//
// Render uses a probe-then-grow strategy. A first pass renders into a fixed
// 512-byte probe buffer through Bprintf, which always reports the length the
// complete rendering requires, independent of truncation. When the text fits
// strictly within the probe buffer, that buffer already holds the full
// result and no second pass happens. Otherwise a buffer of exactly the
// reported length is allocated and the same format and arguments are
// rendered again. At most two allocations occur per call.
//
// Bprintf is exported separately for callers that manage their own buffers:
//
//	buf := make([]byte, 64)
//	n := format.Bprintf(buf, "%s has %d items", "cart", 3)
//	// n == 15, buf[:15] holds the rendered text
//
// A negative return from Bprintf means the format string is malformed (an
// unknown verb, or an argument-count mismatch), never merely "did not fit".
//
// # Usage
//
//	import "github.com/dmitrymomot/strtools/pkg/format"
//
//	s, err := format.Render("%s has %d items", "cart", 3)
//	// s == "cart has 3 items"
//
//	_, err = format.Render("%z", 1)
//	// errors.Is(err, format.ErrBadFormat)
//
// # Thread Safety
//
// All functions are stateless and safe for concurrent use.
package format
