package main

import (
	"strconv"

	snsclasses "github.com/NYU-Molecular-Pathology/sns-classes"
	"github.com/montanaflynn/stats"
	"github.com/xuri/excelize/v2"
)

// fillStatsSheet summarizes each numeric column of the combined summary
// sheet across samples. Columns without any numeric entries (sample IDs,
// error marks) are skipped.
func fillStatsSheet(f *excelize.File, table *snsclasses.SummaryTable) error {
	if _, err := f.NewSheet(statsSheet); err != nil {
		return err
	}

	rows := [][]interface{}{
		{"metric", "n", "mean", "median", "min", "max"},
	}

	for _, col := range table.Columns {
		if col == snsclasses.SampleColumn {
			continue
		}

		values := numericColumn(table, col)
		if len(values) == 0 {
			continue
		}

		mean, err := stats.Mean(values)
		if err != nil {
			return err
		}
		median, err := stats.Median(values)
		if err != nil {
			return err
		}
		min, err := stats.Min(values)
		if err != nil {
			return err
		}
		max, err := stats.Max(values)
		if err != nil {
			return err
		}

		rows = append(rows, []interface{}{col, len(values), mean, median, min, max})
	}

	return writeRows(f, statsSheet, rows)
}

func numericColumn(table *snsclasses.SummaryTable, col string) []float64 {
	var values []float64
	for _, row := range table.Rows {
		if v, err := strconv.ParseFloat(row[col], 64); err == nil {
			values = append(values, v)
		}
	}

	return values
}
