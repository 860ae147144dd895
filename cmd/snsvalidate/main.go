// snsvalidate checks whether an sns WES analysis output directory is valid
// for downstream use
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	snsclasses "github.com/NYU-Molecular-Pathology/sns-classes"
	_ "github.com/NYU-Molecular-Pathology/sns-classes/buildinfo/printbuildinfo"
	"go.uber.org/zap"
)

var (
	BufferSize = 4096
	STDOUT     = bufio.NewWriterSize(os.Stdout, BufferSize)
)

func main() {
	defer STDOUT.Flush()

	var dir, id, resultsID, configPath, errPattern string
	var verbose bool

	flag.StringVar(&dir, "dir", "", "Path to the sns analysis output directory.")
	flag.StringVar(&id, "id", "", "ID for the analysis, typically the NextSeq run ID. Derived from -dir if empty.")
	flag.StringVar(&resultsID, "results", "", "Time-stamped results ID, e.g. results_2017-06-26_20-11-26. Derived from -dir if empty.")
	flag.StringVar(&configPath, "config", "", "Path to an sns.yml config file. The embedded default index is used if empty.")
	flag.StringVar(&errPattern, "errpattern", "", "Additional marker to scan for in the qsub logs, beyond the default "+snsclasses.DefaultQsubErrPattern)
	flag.BoolVar(&verbose, "v", false, "Log at debug level.")
	flag.Parse()

	if dir == "" {
		log.Fatalln("Please provide -dir")
	}

	id, resultsID = deriveIDs(dir, id, resultsID)

	cfg := snsclasses.DefaultConfig()
	if configPath != "" {
		var err error
		cfg, err = snsclasses.LoadConfig(configPath)
		if err != nil {
			log.Fatalln(err)
		}
	}

	logger := buildLogger(verbose)
	defer logger.Sync()

	if err := runValidation(dir, id, resultsID, errPattern, cfg, logger); err != nil {
		log.Fatalln(err)
	}
}

func runValidation(dir, id, resultsID, errPattern string, cfg snsclasses.Config, logger *zap.Logger) error {
	// Constructed without eager validation so that every check gets
	// printed, even when one of them errors out below.
	analysis, err := snsclasses.NewAnalysis(dir, id, cfg,
		snsclasses.WithResultsID(resultsID),
		snsclasses.WithLogger(logger),
		snsclasses.SkipValidation(),
	)
	if err != nil {
		return err
	}

	valid, err := analysis.Validate()
	if err != nil {
		return err
	}

	fmt.Fprintf(STDOUT, "check\tstatus\tnote\n")
	for _, check := range analysis.Validations() {
		fmt.Fprintf(STDOUT, "%s\t%v\t%s\n", check.Name, check.Status, strings.ReplaceAll(check.Note, "\n", "; "))
	}

	if errPattern != "" && errPattern != snsclasses.DefaultQsubErrPattern {
		qsubErrors, err := analysis.QsubLogErrors(snsclasses.DefaultQsubErrPattern, errPattern)
		if err != nil {
			return err
		}
		fmt.Fprintf(STDOUT, "no_qsub_log_errors(%s)\t%v\twhether %q is present in the qsub logs\n", errPattern, !qsubErrors, errPattern)
		valid = valid && !qsubErrors
	}

	if !valid {
		STDOUT.Flush()
		return fmt.Errorf("%s: %w", analysis, snsclasses.ErrAnalysisInvalid)
	}

	return nil
}

// deriveIDs fills in the analysis and results IDs from the directory layout
// (<run-id>/results_<timestamp>) when they are not given explicitly.
func deriveIDs(dir, id, resultsID string) (string, string) {
	abs, err := filepath.Abs(snsclasses.ExpandHome(dir))
	if err != nil {
		return id, resultsID
	}

	base := filepath.Base(abs)
	if strings.HasPrefix(base, "results_") {
		if resultsID == "" {
			resultsID = base
		}
		if id == "" {
			id = filepath.Base(filepath.Dir(abs))
		}
	} else if id == "" {
		id = base
	}

	return id, resultsID
}

func buildLogger(verbose bool) *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}

	logger, err := cfg.Build()
	if err != nil {
		log.Fatalln(err)
	}

	return logger
}
