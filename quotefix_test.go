package snsclasses

import (
	"encoding/csv"
	"io"
	"strings"
	"testing"
)

func TestQuoteFixReadCloser(t *testing.T) {
	in := io.NopCloser(strings.NewReader("#SAMPLE,NOTE\nSample1,\"say \\\"hi\\\"\"\n"))

	fixed, err := io.ReadAll(NewQuoteFixReadCloser(in))
	if err != nil {
		t.Fatal(err)
	}

	if strings.Contains(string(fixed), "\\\"") {
		t.Errorf("backslash escape survived: %q", string(fixed))
	}

	reader := csv.NewReader(strings.NewReader(string(fixed)))
	records, err := reader.ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if records[1][1] != `say "hi"` {
		t.Errorf("unexpected cell value: %q", records[1][1])
	}
}
