package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDiscoverAnalyses(t *testing.T) {
	root := t.TempDir()

	// run dir with a time-stamped results subdir
	resultsDir := filepath.Join(root, "170623_NB501073_0015_AHY5Y3BGX2", "results_2017-06-26_20-11-26")
	if err := os.MkdirAll(resultsDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(resultsDir, "settings.txt"), []byte("GENOME hg19\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	// bare analysis output dir
	bareDir := filepath.Join(root, "sns_analysis1")
	if err := os.MkdirAll(bareDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(bareDir, "summary-combined.wes.csv"), []byte("#SAMPLE\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	// unrelated dir should be skipped
	if err := os.MkdirAll(filepath.Join(root, "scratch"), 0o755); err != nil {
		t.Fatal(err)
	}

	entries, err := DiscoverAnalyses(root)
	if err != nil {
		t.Fatal(err)
	}

	if len(entries) != 2 {
		t.Fatalf("expected 2 analyses, found %d: %+v", len(entries), entries)
	}

	if entries[0].ID != "170623_NB501073_0015_AHY5Y3BGX2" || entries[0].ResultsID != "results_2017-06-26_20-11-26" {
		t.Errorf("unexpected first entry: %+v", entries[0])
	}
	if entries[0].ResultsTime.IsZero() {
		t.Error("results timestamp was not parsed")
	}

	if entries[1].ID != "sns_analysis1" || entries[1].ResultsID != "" {
		t.Errorf("unexpected second entry: %+v", entries[1])
	}
}
