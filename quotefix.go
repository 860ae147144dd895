package snsclasses

import (
	"bufio"
	"io"
	"strings"
)

// QuoteFixReadCloser transparently replaces the invalid \" escape with ""
// so that encoding/csv can parse summary sheets that passed through
// spreadsheet tools.
type QuoteFixReadCloser struct {
	r        *bufio.Reader
	leftover *strings.Reader
	Close    func() error
}

func NewQuoteFixReadCloser(r io.ReadCloser) *QuoteFixReadCloser {
	return &QuoteFixReadCloser{r: bufio.NewReader(r), leftover: &strings.Reader{}, Close: r.Close}
}

func (q *QuoteFixReadCloser) Read(p []byte) (n int, err error) {
	if q.leftover.Len() == 0 {
		line, rerr := q.r.ReadString('\n')
		line = strings.ReplaceAll(line, "\\\"", "\"\"")
		if line == "" && rerr != nil {
			return 0, rerr
		}
		// A final line without a newline is buffered; its EOF surfaces on
		// the next call.
		q.leftover = strings.NewReader(line)
	}

	n, err = q.leftover.Read(p)

	return
}
