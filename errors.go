package snsclasses

import "errors"

var (
	// ErrItemMissing indicates that a file or directory expected to be part
	// of the analysis output could not be found.
	ErrItemMissing = errors.New("analysis item missing")

	// ErrAnalysisInvalid indicates that the analysis output failed one or
	// more validation checks.
	ErrAnalysisInvalid = errors.New("analysis output is invalid")
)
