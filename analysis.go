// Package snsclasses provides object classes for abstracting and
// interacting with the output of the sns WES targeted exome sequencing
// pipeline.
package snsclasses

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/carbocation/pfx"
	"go.uber.org/zap"
)

// Names of the static files expected at the top level of every sns WES
// analysis output directory, keyed the way downstream tools refer to them.
const (
	StaticPairedSamples   = "paired_samples"
	StaticSamplesFastqRaw = "samples_fastq_raw"
	StaticSettings        = "settings"
	StaticSummaryCombined = "summary_combined_wes"
)

const (
	pairedSamplesFile   = "samples.pairs.csv"
	fastqRawFile        = "samples.fastq-raw.csv"
	settingsFile        = "settings.txt"
	summaryCombinedFile = "summary-combined.wes.csv"

	// TargetsBed is the registry key for the chromosome target regions file.
	TargetsBed = "targets_bed"

	// QsubLogStep is the step directory holding cluster job logs.
	QsubLogStep = "logs-qsub"
)

// DefaultQsubErrPattern is the marker scanned for in qsub log files.
const DefaultQsubErrPattern = "ERROR:"

// Analysis is a container for metadata about one sns WES analysis run
// output. The ID typically matches the NextSeq run ID of the parent output
// directory; the results ID is the time-stamped subdirectory name.
type Analysis struct {
	*Item

	Dir       string
	ResultsID string
	Config    Config

	// StaticFiles maps the static file keys to their expected locations.
	StaticFiles map[string]string

	// Valid records the outcome of validation at construction time. It is
	// false when validation was skipped.
	Valid bool

	checks         []Check
	logger         *zap.Logger
	skipValidation bool
}

type Option func(*Analysis)

// WithResultsID sets the time-stamped results ID for the analysis, e.g.
// results_2017-06-26_20-11-26.
func WithResultsID(id string) Option {
	return func(a *Analysis) { a.ResultsID = id }
}

// WithLogger attaches a logger to the analysis. Without it the analysis
// stays silent.
func WithLogger(logger *zap.Logger) Option {
	return func(a *Analysis) { a.logger = logger }
}

// SkipValidation constructs the analysis without validating it, for
// inspecting incomplete or known-bad output.
func SkipValidation() Option {
	return func(a *Analysis) { a.skipValidation = true }
}

// NewAnalysis models the sns analysis output under dir. Unless
// SkipValidation is given, the analysis validates itself and the
// constructor fails with an ErrItemMissing-wrapped error when files
// required for validation cannot be found.
func NewAnalysis(dir, id string, cfg Config, opts ...Option) (*Analysis, error) {
	a := &Analysis{
		Item:   NewItem(id),
		Dir:    absPath(ExpandHome(dir)),
		Config: cfg,
		logger: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(a)
	}

	if len(a.Config.AnalysisOutputIndex) == 0 {
		a.logger.Debug("analysis_output_index not set in the given config; using the embedded default")
		a.Config = DefaultConfig()
	}

	if err := a.initDirs(); err != nil {
		return nil, err
	}
	if err := a.initFiles(); err != nil {
		return nil, err
	}
	a.StaticFiles = a.ExpectedStaticFiles()

	if !a.skipValidation {
		valid, err := a.Validate()
		if err != nil {
			return nil, err
		}
		a.Valid = valid
	}

	a.logger.Debug("initialized analysis", zap.String("analysis", a.String()))

	return a, nil
}

func (a *Analysis) String() string {
	return fmt.Sprintf("SnsWESAnalysisOutput %s (%s) located at %s", a.ID, a.ResultsID, a.Dir)
}

// initDirs registers one directory per step listed in the analysis output
// index, searching only the top level of the analysis dir.
func (a *Analysis) initDirs() error {
	for _, name := range a.Config.StepNames() {
		found, err := Find(a.Dir, FindOptions{
			Include: []string{name},
			Type:    FindDirs,
			Limit:   1,
			Depth:   1,
		})
		if err != nil {
			return err
		}

		a.SetDirs(name, found...)
	}

	return nil
}

// initFiles registers files whose names vary between runs, currently the
// targets .bed file with the chromosome target regions.
func (a *Analysis) initFiles() error {
	found, err := Find(a.Dir, FindOptions{
		Include: []string{"*.bed"},
		Exclude: []string{"*.pad10.bed"},
		Type:    FindFiles,
		Limit:   1,
		Depth:   1,
	})
	if err != nil {
		return err
	}

	a.SetFiles(TargetsBed, found...)

	return nil
}

// ExpectedStaticFiles returns the files that should always exist in the
// same location for an analysis output directory.
func (a *Analysis) ExpectedStaticFiles() map[string]string {
	return map[string]string{
		// samplesheet with the run's paired samples
		StaticPairedSamples: filepath.Join(a.Dir, pairedSamplesFile),
		// the original starting .fastq file paths and IDs
		StaticSamplesFastqRaw: filepath.Join(a.Dir, fastqRawFile),
		// settings the analysis ran with
		StaticSettings: filepath.Join(a.Dir, settingsFile),
		// summary table produced at the end of the WES pipeline
		StaticSummaryCombined: filepath.Join(a.Dir, summaryCombinedFile),
	}
}

// Validate checks whether the analysis output is usable downstream. The
// individual check results are retained and available via Validations. An
// error is returned when files required for checking cannot be read at all.
func (a *Analysis) Validate() (bool, error) {
	checks := make([]Check, 0, 4)

	checks = append(checks, Check{
		Name:   "dir_exists",
		Status: pathExists(a.Dir),
		Note:   fmt.Sprintf("whether the analysis directory (%s) exists", a.Dir),
	})

	staticNotes := make([]string, 0, len(a.StaticFiles))
	allStatic := true
	for _, key := range sortedMapKeys(a.StaticFiles) {
		path := a.StaticFiles[key]
		exists := pathExists(path)
		if !exists {
			allStatic = false
		}
		staticNotes = append(staticNotes, fmt.Sprintf("%s: %s: %v", key, path, exists))
	}
	checks = append(checks, Check{
		Name:   "expected_static_files_exist",
		Status: allStatic,
		Note:   strings.Join(staticNotes, "\n"),
	})

	qsubErrors, err := a.QsubLogErrors()
	if err != nil {
		return false, err
	}
	checks = append(checks, Check{
		Name:   "no_qsub_log_errors",
		Status: !qsubErrors,
		Note:   "whether errors are present in the qsub logs",
	})

	summaryErrors, err := a.SummaryHasErrors(nil, "")
	if err != nil {
		return false, err
	}
	checks = append(checks, Check{
		Name:   "no_summary_errors",
		Status: !summaryErrors,
		Note:   "whether error entries are present in the combined summary sheet",
	})

	a.checks = checks

	valid := true
	for _, check := range checks {
		if !check.Status {
			valid = false
		}
	}

	a.logger.Debug("analysis validations", zap.Any("checks", checks))
	a.logger.Info("analysis output validated",
		zap.String("analysis", a.ID),
		zap.Bool("valid", valid),
	)

	return valid, nil
}

// Validations returns the check results recorded by the last Validate call.
func (a *Analysis) Validations() []Check {
	return a.checks
}

// QsubLogFiles returns the log files under the qsub log directory. When
// logdir is empty the registered logs-qsub step directory is used.
func (a *Analysis) QsubLogFiles(logdir string) ([]string, error) {
	if logdir == "" {
		logdir, _ = a.FirstDir(QsubLogStep)
	}
	if logdir == "" {
		return nil, fmt.Errorf("qsub log dir not found for analysis %s: %w", a.ID, ErrItemMissing)
	}

	return Find(logdir, FindOptions{Type: FindFiles})
}

// QsubLogErrors scans the qsub log files for the given error markers,
// defaulting to ERROR:. Files containing a marker are reported in the log.
func (a *Analysis) QsubLogErrors(patterns ...string) (bool, error) {
	if len(patterns) == 0 {
		patterns = []string{DefaultQsubErrPattern}
	}

	files, err := a.QsubLogFiles("")
	if err != nil {
		return false, err
	}
	if len(files) == 0 {
		return false, fmt.Errorf("qsub log files not found for analysis %s: %w", a.ID, ErrItemMissing)
	}

	var flagged []string
	for _, file := range files {
		contains, err := fileContainsAny(file, patterns)
		if err != nil {
			return false, err
		}
		if contains {
			flagged = append(flagged, file)
		}
	}

	if len(flagged) > 0 {
		a.logger.Warn("error messages found in qsub logs",
			zap.String("analysis", a.ID),
			zap.Strings("files", flagged),
		)
		return true, nil
	}

	return false, nil
}

// Settings parses the settings.txt file the analysis ran with into
// key/value pairs. Keys and values are separated by whitespace; lines
// starting with # are skipped.
func (a *Analysis) Settings() (map[string]string, error) {
	path := a.StaticFiles[StaticSettings]

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("settings file not found for analysis %s: %w", a.ID, ErrItemMissing)
		}
		return nil, pfx.Err(err)
	}
	defer f.Close()

	out := make(map[string]string)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		out[fields[0]] = strings.Join(fields[1:], " ")
	}
	if err := scanner.Err(); err != nil {
		return nil, pfx.Err(err)
	}

	return out, nil
}

// ResultsTime parses the timestamp out of the results ID. Results IDs look
// like results_2017-06-26_20-11-26.
func (a *Analysis) ResultsTime() (time.Time, error) {
	id := strings.TrimPrefix(a.ResultsID, "results_")
	if id == "" {
		return time.Time{}, fmt.Errorf("no results ID set for analysis %s: %w", a.ID, ErrItemMissing)
	}

	if t, err := dateparse.ParseAny(id); err == nil {
		return t, nil
	}

	// dateparse does not understand the sns timestamp layout directly, so
	// reshape date_HH-MM-SS into something it does.
	parts := strings.SplitN(id, "_", 2)
	if len(parts) == 2 {
		candidate := parts[0] + " " + strings.ReplaceAll(parts[1], "-", ":")
		if t, err := dateparse.ParseAny(candidate); err == nil {
			return t, nil
		}
	}

	return time.Time{}, pfx.Err(fmt.Errorf("cannot parse a timestamp from results ID %q", a.ResultsID))
}

func fileContainsAny(path string, patterns []string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, pfx.Err(err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		for _, pattern := range patterns {
			if strings.Contains(line, pattern) {
				return true, nil
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return false, pfx.Err(err)
	}

	return false, nil
}

func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func sortedMapKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	// deterministic check notes
	sort.Strings(keys)

	return keys
}
