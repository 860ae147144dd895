package snsclasses

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/carbocation/pfx"
	"go.uber.org/zap"
)

// SampleColumn is the header of the sample ID column in the combined
// summary sheet.
const SampleColumn = "#SAMPLE"

// SummaryErrMark is the cell value the pipeline writes for a failed metric.
const SummaryErrMark = "X"

// SummaryRow is one sample's row of the combined summary sheet, keyed by
// column header.
type SummaryRow map[string]string

// SummaryTable holds the combined WES summary sheet, preserving column
// order for reporting.
type SummaryTable struct {
	Columns []string
	Rows    []SummaryRow
}

// SummaryRows parses the summary-combined.wes.csv file. The delimiter is
// detected rather than assumed, and invalid backslash quote escapes are
// repaired before parsing.
func (a *Analysis) SummaryRows() (*SummaryTable, error) {
	path := a.StaticFiles[StaticSummaryCombined]

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("combined summary sheet (%s) not found for analysis %s: %w", summaryCombinedFile, a.ID, ErrItemMissing)
		}
		return nil, pfx.Err(err)
	}

	fixed := NewQuoteFixReadCloser(f)
	defer fixed.Close()

	raw, err := io.ReadAll(fixed)
	if err != nil {
		return nil, pfx.Err(err)
	}

	reader := csv.NewReader(bytes.NewReader(raw))
	reader.Comma = DetermineDelimiter(bytes.NewReader(raw))
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, pfx.Err(err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("combined summary sheet for analysis %s has no header: %w", a.ID, ErrItemMissing)
	}

	table := &SummaryTable{Columns: records[0]}
	for _, record := range records[1:] {
		row := make(SummaryRow, len(table.Columns))
		for i, col := range table.Columns {
			if i < len(record) {
				row[col] = record[i]
			}
		}
		table.Rows = append(table.Rows, row)
	}

	return table, nil
}

// SummaryHasErrors reports whether any non-sample cell of the combined
// summary sheet equals the error mark. A nil table is read from the
// analysis output; an empty mark means SummaryErrMark. Affected samples are
// reported in the log.
func (a *Analysis) SummaryHasErrors(table *SummaryTable, mark string) (bool, error) {
	if table == nil {
		var err error
		table, err = a.SummaryRows()
		if err != nil {
			return false, err
		}
	}
	if mark == "" {
		mark = SummaryErrMark
	}

	var flagged []string
	for _, row := range table.Rows {
		for col, value := range row {
			if col == SampleColumn {
				continue
			}
			if value == mark {
				flagged = append(flagged, row[SampleColumn])
				break
			}
		}
	}

	if len(flagged) > 0 {
		a.logger.Warn("error entries found in the combined summary sheet",
			zap.String("analysis", a.ID),
			zap.Strings("samples", flagged),
		)
		return true, nil
	}

	return false, nil
}
