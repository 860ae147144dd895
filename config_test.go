package snsclasses

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	for _, step := range []string{"BAM-DD", "BAM-GATK-RA-RC", "logs-qsub"} {
		if _, ok := cfg.AnalysisOutputIndex[step]; !ok {
			t.Errorf("default index is missing the %s step", step)
		}
	}

	for _, name := range cfg.StepNames() {
		if name == "_parent" {
			t.Error("StepNames should skip _parent")
		}
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sns.yml")
	content := `analysis_output_index:
  BAM-DD:
    description: deduplicated alignments
    file-suffixes:
      - .dd.bam
  logs-qsub: {}
email_recipients:
  - results@example.edu
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}

	if got := cfg.AnalysisOutputIndex["BAM-DD"].FileSuffixes; len(got) != 1 || got[0] != ".dd.bam" {
		t.Errorf("unexpected file suffixes: %v", got)
	}
	if len(cfg.EmailRecipients) != 1 || cfg.EmailRecipients[0] != "results@example.edu" {
		t.Errorf("unexpected recipients: %v", cfg.EmailRecipients)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yml")); err == nil {
		t.Error("expected an error for a missing config file")
	}
}
