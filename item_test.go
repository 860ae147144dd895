package snsclasses

import (
	"path/filepath"
	"testing"
)

func TestItemRegistries(t *testing.T) {
	item := NewItem("foo")

	item.SetFiles("targets_bed", "some/relative/targets.bed")
	files := item.Files("targets_bed")
	if len(files) != 1 {
		t.Fatalf("expected 1 file, got %d", len(files))
	}
	if !filepath.IsAbs(files[0]) {
		t.Errorf("registered path was not absolute: %s", files[0])
	}

	item.AddFile("targets_bed", "another.bed")
	if len(item.Files("targets_bed")) != 2 {
		t.Error("AddFile did not append")
	}
}

func TestItemMissingEntries(t *testing.T) {
	item := NewItem("foo")

	if files := item.Files("doesntexist"); len(files) != 0 {
		t.Errorf("missing key returned entries: %v", files)
	}

	if _, ok := item.FirstFile("doesntexist"); ok {
		t.Error("FirstFile reported ok for a missing key")
	}
	if _, ok := item.FirstDir("doesntexist"); ok {
		t.Error("FirstDir reported ok for a missing key")
	}
}

func TestItemNames(t *testing.T) {
	item := NewItem("foo")
	item.SetDirs("logs-qsub", "a")
	item.SetDirs("BAM-DD", "b")

	names := item.DirNames()
	if len(names) != 2 {
		t.Fatalf("expected 2 dir names, got %v", names)
	}
	if names[0] != "BAM-DD" || names[1] != "logs-qsub" {
		t.Errorf("dir names not sorted: %v", names)
	}
}
