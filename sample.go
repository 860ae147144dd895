package snsclasses

import (
	"fmt"
)

// Sample is a container for metadata about a single sample in an sns WES
// analysis output. It inherits the parent analysis' file and directory
// registries, so per-step lookups work without holding the Analysis.
type Sample struct {
	*Item

	AnalysisID    string
	AnalysisDir   string
	ResultsID     string
	AnalysisValid bool

	// StaticFiles is shared from the parent analysis.
	StaticFiles map[string]string

	// SearchPattern is the glob matching this sample's output files.
	SearchPattern string
}

// NewSample builds the sample from its parent analysis, copying the
// analysis registries into the sample's own.
func NewSample(id string, a *Analysis) *Sample {
	s := &Sample{
		Item:          NewItem(id),
		AnalysisID:    a.ID,
		AnalysisDir:   a.Dir,
		ResultsID:     a.ResultsID,
		AnalysisValid: a.Valid,
		StaticFiles:   a.StaticFiles,
		SearchPattern: id + "*",
	}

	for _, name := range a.DirNames() {
		s.SetDirs(name, a.Item.Dirs(name)...)
	}
	for _, name := range a.FileNames() {
		s.SetFiles(name, a.Item.Files(name)...)
	}

	return s
}

// OutputFiles returns this sample's files from the given analysis step
// directory, matching both the given filename pattern and the sample's own
// search pattern.
func (s *Sample) OutputFiles(step, pattern string) ([]string, error) {
	dir, ok := s.FirstDir(step)
	if !ok {
		return nil, fmt.Errorf("no %s directory registered for sample %s: %w", step, s.ID, ErrItemMissing)
	}

	return Find(dir, FindOptions{
		Include: []string{pattern, s.SearchPattern},
		Type:    FindFiles,
		Mode:    MatchAll,
	})
}
