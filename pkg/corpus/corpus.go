// Package corpus reads sentence corpora, one sentence per line.
package corpus

import (
	"bufio"
	"io"
	"iter"
)

const maxLineSize = 1024 * 1024

// Reader yields the lines of an underlying reader as sentences.
type Reader struct {
	r   io.Reader
	err error
}

// NewReader creates a sentence reader over r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// Sentences returns a single-use sequence of lines. Scan errors end the
// sequence and are reported by Err.
func (c *Reader) Sentences() iter.Seq[string] {
	return func(yield func(string) bool) {
		scanner := bufio.NewScanner(c.r)
		scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
		for scanner.Scan() {
			if !yield(scanner.Text()) {
				return
			}
		}
		c.err = scanner.Err()
	}
}

// Err returns the error that ended the last Sentences iteration, if any.
func (c *Reader) Err() error {
	return c.err
}
