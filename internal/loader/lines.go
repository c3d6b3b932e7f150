package loader

import (
	"bufio"
	"errors"
	"io"
	"iter"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// LineReader yields the lines of a word source one at a time.
// It is single-use: once All has been consumed the lines are gone.
// Lines have no length limit; an overlong line is yielded whole.
type LineReader struct {
	r   *bufio.Reader
	err error
}

// NewLineReader wraps r. A leading UTF-8 byte order mark is dropped so the
// first word of a file saved by a BOM-writing editor is not rejected.
func NewLineReader(r io.Reader) *LineReader {
	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	return &LineReader{r: bufio.NewReader(decoded)}
}

// All yields 1-based line numbers with the raw line text, without the "\n"
// or "\r\n" terminator. Call Err after the loop to learn whether reading
// stopped early.
func (lr *LineReader) All() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for n := 1; ; n++ {
			line, err := lr.r.ReadString('\n')
			if err != nil && !errors.Is(err, io.EOF) {
				lr.err = err
				return
			}
			if line != "" {
				line = strings.TrimSuffix(line, "\n")
				line = strings.TrimSuffix(line, "\r")
				if !yield(n, line) {
					return
				}
			}
			if err != nil {
				return
			}
		}
	}
}

// Err returns the first read error, if any.
func (lr *LineReader) Err() error {
	return lr.err
}
