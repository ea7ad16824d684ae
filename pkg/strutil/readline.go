package strutil

import (
	"bufio"
	"bytes"
	"errors"
	"io"
)

// ReadLine resets line, fills it with the bytes up to but not including the
// next '\n' in r, consumes the newline, and returns the number of bytes
// extracted. An exhausted reader returns (0, io.EOF): end of input is the
// termination signal for line iteration, not a failure. A final line without
// a trailing newline is returned normally; io.EOF follows on the next call.
//
// The function keeps no state of its own; the position lives in r, so a
// caller may interleave ReadLine with other reads of the same reader.
func ReadLine(r *bufio.Reader, line *bytes.Buffer) (int, error) {
	line.Reset()
	for {
		chunk, err := r.ReadSlice('\n')
		switch {
		case err == nil:
			line.Write(chunk[:len(chunk)-1])
			return line.Len(), nil
		case errors.Is(err, bufio.ErrBufferFull):
			// Long line: keep accumulating.
			line.Write(chunk)
		case errors.Is(err, io.EOF):
			line.Write(chunk)
			if line.Len() == 0 {
				return 0, io.EOF
			}
			return line.Len(), nil
		default:
			return 0, err
		}
	}
}
