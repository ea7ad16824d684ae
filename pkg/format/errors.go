package format

import "errors"

var (
	// ErrBadFormat reports a malformed format string: an unknown conversion
	// verb or a mismatch between the directives and the argument list.
	ErrBadFormat = errors.New("format: malformed format string")
)
