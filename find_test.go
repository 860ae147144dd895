package snsclasses

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFindFixture(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()

	for _, sub := range []string{"BAM-DD", "logs-qsub", "logs-qsub/nested"} {
		if err := os.MkdirAll(filepath.Join(dir, sub), 0o755); err != nil {
			t.Fatal(err)
		}
	}

	files := []string{
		"targets.bed",
		"targets.pad10.bed",
		"summary-combined.wes.csv",
		"BAM-DD/Sample1.dd.bam",
		"logs-qsub/sns.wes.o1",
		"logs-qsub/nested/sns.wes.o2",
	}
	for _, f := range files {
		if err := os.WriteFile(filepath.Join(dir, f), []byte("x\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	return dir
}

func TestFindFilesByPattern(t *testing.T) {
	dir := writeFindFixture(t)

	found, err := Find(dir, FindOptions{Include: []string{"*.bed"}, Type: FindFiles, Depth: 1})
	if err != nil {
		t.Fatal(err)
	}

	if len(found) != 2 {
		t.Errorf("expected 2 bed files, found %d: %v", len(found), found)
	}
}

func TestFindExcludes(t *testing.T) {
	dir := writeFindFixture(t)

	found, err := Find(dir, FindOptions{
		Include: []string{"*.bed"},
		Exclude: []string{"*.pad10.bed"},
		Type:    FindFiles,
		Depth:   1,
	})
	if err != nil {
		t.Fatal(err)
	}

	if len(found) != 1 {
		t.Fatalf("expected 1 bed file after exclusion, found %d: %v", len(found), found)
	}
	if filepath.Base(found[0]) != "targets.bed" {
		t.Errorf("wrong file found: %s", found[0])
	}
}

func TestFindDirs(t *testing.T) {
	dir := writeFindFixture(t)

	found, err := Find(dir, FindOptions{Include: []string{"logs-qsub"}, Type: FindDirs, Depth: 1, Limit: 1})
	if err != nil {
		t.Fatal(err)
	}

	if len(found) != 1 {
		t.Fatalf("expected 1 dir, found %d: %v", len(found), found)
	}
	if found[0] != filepath.Join(dir, "logs-qsub") {
		t.Errorf("wrong dir found: %s", found[0])
	}
}

func TestFindDepthLimit(t *testing.T) {
	dir := writeFindFixture(t)

	shallow, err := Find(filepath.Join(dir, "logs-qsub"), FindOptions{Type: FindFiles, Depth: 1})
	if err != nil {
		t.Fatal(err)
	}
	if len(shallow) != 1 {
		t.Errorf("expected 1 file at depth 1, found %d: %v", len(shallow), shallow)
	}

	deep, err := Find(filepath.Join(dir, "logs-qsub"), FindOptions{Type: FindFiles})
	if err != nil {
		t.Fatal(err)
	}
	if len(deep) != 2 {
		t.Errorf("expected 2 files without depth limit, found %d: %v", len(deep), deep)
	}
}

func TestFindMatchAll(t *testing.T) {
	dir := writeFindFixture(t)

	found, err := Find(filepath.Join(dir, "BAM-DD"), FindOptions{
		Include: []string{"*.dd.bam", "Sample1*"},
		Type:    FindFiles,
		Mode:    MatchAll,
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(found) != 1 {
		t.Errorf("expected 1 file matching all patterns, found %d: %v", len(found), found)
	}

	none, err := Find(filepath.Join(dir, "BAM-DD"), FindOptions{
		Include: []string{"*.dd.bam", "Sample2*"},
		Type:    FindFiles,
		Mode:    MatchAll,
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(none) != 0 {
		t.Errorf("expected no files, found %v", none)
	}
}

func TestFindMissingDir(t *testing.T) {
	found, err := Find(filepath.Join(t.TempDir(), "nope"), FindOptions{Type: FindFiles})
	if err != nil {
		t.Fatal(err)
	}

	if len(found) != 0 {
		t.Errorf("expected no results from a missing dir, found %v", found)
	}
}
