package snsclasses

import (
	"embed"
	"os"
	"sort"

	"github.com/carbocation/pfx"
	"gopkg.in/yaml.v3"
)

//go:embed config/sns.yml
var embeddedConfig embed.FS

// Step describes one output step directory of the sns WES pipeline.
type Step struct {
	Description  string   `yaml:"description,omitempty"`
	FileSuffixes []string `yaml:"file-suffixes,omitempty"`
}

// Config holds the settings for interpreting an sns analysis output
// directory. AnalysisOutputIndex maps the expected output step directory
// names to the file types each step produces.
type Config struct {
	AnalysisOutputIndex map[string]Step `yaml:"analysis_output_index"`
	EmailRecipients     []string        `yaml:"email_recipients"`
}

// StepNames returns the sorted step directory names from the index,
// skipping the special _parent entry.
func (c Config) StepNames() []string {
	names := make([]string, 0, len(c.AnalysisOutputIndex))
	for name := range c.AnalysisOutputIndex {
		if name == parentStep {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

const parentStep = "_parent"

// LoadConfig reads a Config from a YAML file such as sns.yml.
func LoadConfig(path string) (Config, error) {
	out := Config{}

	raw, err := os.ReadFile(ExpandHome(path))
	if err != nil {
		return out, pfx.Err(err)
	}

	if err := yaml.Unmarshal(raw, &out); err != nil {
		return out, pfx.Err(err)
	}

	return out, nil
}

// DefaultConfig returns the embedded copy of the stock sns output index, so
// that the library works without an external config file.
func DefaultConfig() Config {
	raw, err := embeddedConfig.ReadFile("config/sns.yml")
	if err != nil {
		panic(err)
	}

	out := Config{}
	if err := yaml.Unmarshal(raw, &out); err != nil {
		panic(err)
	}

	return out
}
