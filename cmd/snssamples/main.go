// snssamples lists the samples of an sns WES analysis output to stdout
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	snsclasses "github.com/NYU-Molecular-Pathology/sns-classes"
	_ "github.com/NYU-Molecular-Pathology/sns-classes/buildinfo/printbuildinfo"
)

var (
	BufferSize = 4096
	STDOUT     = bufio.NewWriterSize(os.Stdout, BufferSize)
)

func main() {
	defer STDOUT.Flush()

	var dir, id, configPath string
	var pairs bool

	flag.StringVar(&dir, "dir", "", "Path to the sns analysis output directory.")
	flag.StringVar(&id, "id", "", "ID for the analysis. Defaults to the directory name.")
	flag.StringVar(&configPath, "config", "", "Path to an sns.yml config file. The embedded default index is used if empty.")
	flag.BoolVar(&pairs, "pairs", false, "Emit tumor/normal pairs from samples.pairs.csv instead of the raw sample list.")
	flag.Parse()

	if dir == "" {
		log.Fatalln("Please provide -dir")
	}
	if id == "" {
		id = filepath.Base(dir)
	}

	cfg := snsclasses.DefaultConfig()
	if configPath != "" {
		var err error
		cfg, err = snsclasses.LoadConfig(configPath)
		if err != nil {
			log.Fatalln(err)
		}
	}

	analysis, err := snsclasses.NewAnalysis(dir, id, cfg, snsclasses.SkipValidation())
	if err != nil {
		log.Fatalln(err)
	}

	if pairs {
		if err := printPairs(analysis); err != nil {
			log.Fatalln(err)
		}
		return
	}

	if err := printSamples(analysis); err != nil {
		log.Fatalln(err)
	}
}

func printSamples(analysis *snsclasses.Analysis) error {
	ids, err := analysis.SampleIDs()
	if err != nil {
		return err
	}

	fmt.Fprintln(STDOUT, "sample")
	for _, id := range ids {
		fmt.Fprintln(STDOUT, id)
	}

	return nil
}

func printPairs(analysis *snsclasses.Analysis) error {
	pairs, err := analysis.Pairs()
	if err != nil {
		return err
	}

	fmt.Fprintf(STDOUT, "sample_t\tsample_n\n")
	for _, pair := range pairs {
		fmt.Fprintf(STDOUT, "%s\t%s\n", pair.Tumor, pair.Normal)
	}

	return nil
}
