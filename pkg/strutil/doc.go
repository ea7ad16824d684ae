// Package strutil provides small, portable string-manipulation primitives:
// whitespace trimming, ASCII case conversion, delimiter-set splitting,
// prefix/suffix tests, line-oriented stream reading and printf-style
// formatting with an explicit failure outcome.
//
// The helpers intentionally differ from the standard library in a few
// places rather than wrapping it blindly:
//
//   - Trim, TrimLeft and TrimRight cut exactly space, tab and newline, not
//     the full Unicode whitespace class of strings.TrimSpace.
//   - ToLower and ToUpper are locale-independent ASCII transforms; bytes
//     outside A-Z/a-z pass through untouched, where strings.ToLower would
//     apply Unicode case mapping.
//   - Split treats its second argument as a set of single-character
//     delimiters and never collapses empty tokens: "a,,b," split on ","
//     yields ["a", "", "b", ""]. Consumers rely on stable token counts.
//
// Formatf and Renderf delegate to the two-pass builder in pkg/format, so an
// arbitrarily long rendering succeeds and a malformed format string is a
// reportable failure instead of fmt's inline %! diagnostics.
//
// ReadLine supports line-oriented iteration over any *bufio.Reader using a
// caller-supplied reusable buffer; io.EOF is the normal termination signal,
// not an error:
//
//	br := bufio.NewReader(f)
//	var line bytes.Buffer
//	for {
//		n, err := strutil.ReadLine(br, &line)
//		if err != nil {
//			break
//		}
//		process(line.Bytes()[:n])
//	}
//
// All functions are stateless and safe for concurrent use; ReadLine's
// iteration state lives entirely in the reader passed to it.
package strutil
