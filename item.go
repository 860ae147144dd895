package snsclasses

import (
	"path/filepath"
	"sort"
)

// Item is the base for objects associated with an sns sequencing analysis.
// It carries named registries of file and directory paths. All stored paths
// are normalized to absolute paths.
type Item struct {
	ID string

	files map[string][]string
	dirs  map[string][]string
}

func NewItem(id string) *Item {
	return &Item{
		ID:    id,
		files: make(map[string][]string),
		dirs:  make(map[string][]string),
	}
}

// SetFiles replaces the registry entry under name with the given paths.
func (it *Item) SetFiles(name string, paths ...string) {
	it.files[name] = absAll(paths)
}

// AddFile appends a path to the registry entry under name.
func (it *Item) AddFile(name, path string) {
	it.files[name] = append(it.files[name], absPath(path))
}

// Files returns the registered file paths under name. A name that was never
// registered yields an empty list.
func (it *Item) Files(name string) []string {
	return it.files[name]
}

// FirstFile returns the first file registered under name, with ok false
// when the entry is empty.
func (it *Item) FirstFile(name string) (string, bool) {
	return first(it.files[name])
}

// SetDirs replaces the registry entry under name with the given paths.
func (it *Item) SetDirs(name string, paths ...string) {
	it.dirs[name] = absAll(paths)
}

// Dirs returns the registered directory paths under name.
func (it *Item) Dirs(name string) []string {
	return it.dirs[name]
}

// FirstDir returns the first directory registered under name, with ok false
// when the entry is empty.
func (it *Item) FirstDir(name string) (string, bool) {
	return first(it.dirs[name])
}

// FileNames returns the sorted registry keys for files.
func (it *Item) FileNames() []string {
	return sortedKeys(it.files)
}

// DirNames returns the sorted registry keys for directories.
func (it *Item) DirNames() []string {
	return sortedKeys(it.dirs)
}

func first(paths []string) (string, bool) {
	if len(paths) == 0 {
		return "", false
	}

	return paths[0], true
}

func absAll(paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		out = append(out, absPath(p))
	}

	return out
}

func absPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}

	return abs
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
