// Package wordexp performs POSIX shell word expansion on a single input
// string: tilde expansion, variable substitution, quote removal and
// pathname globbing, the same transformations wordexp(3) applies.
//
// The expansion is implemented in pure Go on top of mvdan.cc/sh, so it
// behaves identically on every platform instead of depending on a host
// libc facility.
//
// Expand returns the first resulting word, which is the common case for
// turning a user-supplied path like "~/data/$PROJECT.cfg" into a concrete
// filename. ExpandAll returns every word, which matters when the input
// contains an unquoted glob matching several files.
//
//	path, err := wordexp.Expand("~/logs/app.conf")
//	if err != nil {
//	    // malformed input, or the expansion produced nothing
//	}
//
// A plain word with nothing to expand comes back unchanged with a nil
// error, so callers can tell "no expansion was needed" (success) apart from
// "expansion failed" (non-nil error); failures are never a silent
// passthrough of the input.
package wordexp
