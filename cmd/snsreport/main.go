// snsreport writes an xlsx report summarizing an sns WES analysis output:
// its validation checks, the combined summary sheet, and per-metric
// statistics across samples
package main

import (
	"flag"
	"log"
	"path/filepath"
	"strings"

	snsclasses "github.com/NYU-Molecular-Pathology/sns-classes"
	"github.com/NYU-Molecular-Pathology/sns-classes/buildinfo"
	_ "github.com/NYU-Molecular-Pathology/sns-classes/buildinfo/printbuildinfo"
	"github.com/xuri/excelize/v2"
)

const (
	checksSheet  = "Validations"
	summarySheet = "Summary"
	statsSheet   = "Summary stats"
)

func main() {
	var dir, id, resultsID, configPath, out string

	flag.StringVar(&dir, "dir", "", "Path to the sns analysis output directory.")
	flag.StringVar(&id, "id", "", "ID for the analysis. Defaults to the directory name.")
	flag.StringVar(&resultsID, "results", "", "Time-stamped results ID for the analysis.")
	flag.StringVar(&configPath, "config", "", "Path to an sns.yml config file. The embedded default index is used if empty.")
	flag.StringVar(&out, "output", "", "Path for the xlsx report to write.")
	flag.Parse()

	if dir == "" {
		log.Fatalln("Please provide -dir")
	}
	if out == "" {
		log.Fatalln("Please provide -output")
	}
	if id == "" {
		id = filepath.Base(dir)
	}

	cfg := snsclasses.DefaultConfig()
	if configPath != "" {
		var err error
		cfg, err = snsclasses.LoadConfig(configPath)
		if err != nil {
			log.Fatalln(err)
		}
	}

	if err := writeReport(dir, id, resultsID, out, cfg); err != nil {
		log.Fatalln(err)
	}

	log.Println("Wrote report to", out)
}

func writeReport(dir, id, resultsID, out string, cfg snsclasses.Config) error {
	analysis, err := snsclasses.NewAnalysis(dir, id, cfg,
		snsclasses.WithResultsID(resultsID),
		snsclasses.SkipValidation(),
	)
	if err != nil {
		return err
	}

	// A failed validation is still worth a report; a validation that cannot
	// run at all is recorded in place of its checks.
	valid, validationErr := analysis.Validate()

	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", checksSheet)
	if err := fillChecksSheet(f, analysis, cfg, valid, validationErr); err != nil {
		return err
	}

	table, err := analysis.SummaryRows()
	if err == nil {
		if err := fillSummarySheets(f, table); err != nil {
			return err
		}
	} else {
		log.Println("Skipping summary sheets:", err)
	}

	return f.SaveAs(out)
}

func fillChecksSheet(f *excelize.File, analysis *snsclasses.Analysis, cfg snsclasses.Config, valid bool, validationErr error) error {
	rows := [][]interface{}{
		{"analysis", analysis.ID},
		{"results", analysis.ResultsID},
		{"directory", analysis.Dir},
		{"recipients", strings.Join(cfg.EmailRecipients, ", ")},
		{"generated by", buildinfo.Read().String()},
		{},
	}

	if validationErr != nil {
		rows = append(rows, []interface{}{"validation error", validationErr.Error()})
	} else {
		rows = append(rows, []interface{}{"valid", valid})
		rows = append(rows, []interface{}{})
		rows = append(rows, []interface{}{"check", "status", "note"})
		for _, check := range analysis.Validations() {
			rows = append(rows, []interface{}{check.Name, check.Status, check.Note})
		}
	}

	return writeRows(f, checksSheet, rows)
}

func fillSummarySheets(f *excelize.File, table *snsclasses.SummaryTable) error {
	if _, err := f.NewSheet(summarySheet); err != nil {
		return err
	}

	rows := make([][]interface{}, 0, len(table.Rows)+1)
	header := make([]interface{}, 0, len(table.Columns))
	for _, col := range table.Columns {
		header = append(header, col)
	}
	rows = append(rows, header)

	for _, row := range table.Rows {
		cells := make([]interface{}, 0, len(table.Columns))
		for _, col := range table.Columns {
			cells = append(cells, row[col])
		}
		rows = append(rows, cells)
	}

	if err := writeRows(f, summarySheet, rows); err != nil {
		return err
	}

	return fillStatsSheet(f, table)
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for r, row := range rows {
		for c, value := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return err
			}
		}
	}

	return nil
}
