package snsclasses

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/carbocation/pfx"
)

// FindType restricts Find to files, directories, or both.
type FindType int

const (
	FindAll FindType = iota
	FindFiles
	FindDirs
)

// MatchMode decides whether one or all inclusion patterns must match.
type MatchMode int

const (
	MatchAny MatchMode = iota
	MatchAll
)

type FindOptions struct {
	// Include holds shell glob patterns matched against the entry's base
	// name. An empty list matches everything.
	Include []string

	// Exclude holds glob patterns; any match removes the entry.
	Exclude []string

	Type FindType
	Mode MatchMode

	// Limit stops the search after this many results. 0 means unlimited.
	Limit int

	// Depth restricts how far below dir the walk descends. 1 visits only
	// the direct children of dir. 0 means unlimited.
	Depth int
}

var errFoundEnough = errors.New("found enough entries")

// Find walks dir and returns the absolute paths of entries that satisfy
// opt. The root itself is never returned.
func Find(dir string, opt FindOptions) ([]string, error) {
	root, err := filepath.Abs(ExpandHome(dir))
	if err != nil {
		return nil, pfx.Err(err)
	}

	// A missing search dir yields no entries rather than an error, so that
	// callers can report absence through their own validation checks.
	if _, err := os.Stat(root); os.IsNotExist(err) {
		return nil, nil
	}

	var found []string

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if path == root {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		depth := strings.Count(rel, string(filepath.Separator)) + 1

		if d.IsDir() && opt.Depth > 0 && depth > opt.Depth {
			return fs.SkipDir
		}
		if opt.Depth > 0 && depth > opt.Depth {
			return nil
		}

		if opt.Type == FindFiles && d.IsDir() {
			return nil
		}
		if opt.Type == FindDirs && !d.IsDir() {
			return nil
		}

		if !matches(d.Name(), opt.Include, opt.Mode) {
			return nil
		}
		for _, pattern := range opt.Exclude {
			if ok, _ := filepath.Match(pattern, d.Name()); ok {
				return nil
			}
		}

		found = append(found, path)
		if opt.Limit > 0 && len(found) >= opt.Limit {
			return errFoundEnough
		}

		return nil
	})
	if err != nil && !errors.Is(err, errFoundEnough) {
		return nil, pfx.Err(err)
	}

	return found, nil
}

func matches(name string, patterns []string, mode MatchMode) bool {
	if len(patterns) == 0 {
		return true
	}

	for _, pattern := range patterns {
		ok, _ := filepath.Match(pattern, name)

		if ok && mode == MatchAny {
			return true
		}
		if !ok && mode == MatchAll {
			return false
		}
	}

	return mode == MatchAll
}
