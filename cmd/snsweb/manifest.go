package main

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/carbocation/pfx"
)

// AnalysisEntry is one discovered analysis output directory.
type AnalysisEntry struct {
	ID          string
	ResultsID   string
	Dir         string
	ResultsTime time.Time
}

// DiscoverAnalyses scans root for sns analysis outputs. Both layouts are
// recognized: a run directory holding results_<timestamp> subdirectories,
// and a bare analysis output directory.
func DiscoverAnalyses(root string) ([]AnalysisEntry, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, pfx.Err(err)
	}

	var out []AnalysisEntry
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		dir := filepath.Join(root, entry.Name())
		if isAnalysisDir(dir) {
			out = append(out, newEntry(entry.Name(), "", dir))
			continue
		}

		subEntries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, sub := range subEntries {
			if !sub.IsDir() || !strings.HasPrefix(sub.Name(), "results_") {
				continue
			}

			resultsDir := filepath.Join(dir, sub.Name())
			if isAnalysisDir(resultsDir) {
				out = append(out, newEntry(entry.Name(), sub.Name(), resultsDir))
			}
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].ID != out[j].ID {
			return out[i].ID < out[j].ID
		}
		return out[i].ResultsID < out[j].ResultsID
	})

	return out, nil
}

func newEntry(id, resultsID, dir string) AnalysisEntry {
	return AnalysisEntry{
		ID:          id,
		ResultsID:   resultsID,
		Dir:         dir,
		ResultsTime: parseResultsTime(resultsID),
	}
}

// isAnalysisDir treats any directory carrying the pipeline settings or the
// combined summary sheet as an analysis output.
func isAnalysisDir(dir string) bool {
	for _, name := range []string{"settings.txt", "summary-combined.wes.csv"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
			return true
		}
	}

	return false
}

// parseResultsTime interprets results_2017-06-26_20-11-26 style IDs. The
// zero time is returned when no timestamp can be read.
func parseResultsTime(resultsID string) time.Time {
	id := strings.TrimPrefix(resultsID, "results_")
	if id == "" {
		return time.Time{}
	}

	if t, err := dateparse.ParseAny(id); err == nil {
		return t
	}

	parts := strings.SplitN(id, "_", 2)
	if len(parts) == 2 {
		candidate := parts[0] + " " + strings.ReplaceAll(parts[1], "-", ":")
		if t, err := dateparse.ParseAny(candidate); err == nil {
			return t
		}
	}

	return time.Time{}
}
