package snsclasses

import (
	"strings"
	"testing"
)

func TestDetermineDelimiterComma(t *testing.T) {
	in := "#SAMPLE,MEAN COVERAGE,READS\nSample1,385.1,12000000\nSample2,402.9,13500000\n"

	if delim := DetermineDelimiter(strings.NewReader(in)); delim != ',' {
		t.Errorf("expected ',', got %q", delim)
	}
}

func TestDetermineDelimiterTab(t *testing.T) {
	in := "#SAMPLE\tMEAN COVERAGE\tREADS\nSample1\t385.1\t12000000\nSample2\t402.9\t13500000\n"

	if delim := DetermineDelimiter(strings.NewReader(in)); delim != '\t' {
		t.Errorf("expected tab, got %q", delim)
	}
}
