package snsclasses

import (
	"io"

	"github.com/csimplestring/go-csv/detector"
)

// DetermineDelimiter returns the single most likely rune delimiting the
// values in the reader, assuming a CSV-like file. The sns pipeline emits
// both comma- and tab-delimited summary sheets, so callers should not
// assume a comma. Falls back to ',' when detection fails.
func DetermineDelimiter(r io.Reader) rune {
	d := detector.New()

	if delimiters := d.DetectDelimiter(r, '"'); len(delimiters) > 0 {
		return rune(delimiters[0][0])
	}

	return ','
}
