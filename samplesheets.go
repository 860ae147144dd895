package snsclasses

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/carbocation/pfx"
	"github.com/gocarina/gocsv"
)

// Pair is one tumor/normal pairing from the samples.pairs.csv samplesheet.
// Unpaired samples carry NA in the normal column.
type Pair struct {
	Tumor  string `csv:"#SAMPLE-T"`
	Normal string `csv:"#SAMPLE-N"`
}

// Pairs parses the run's paired samples samplesheet.
func (a *Analysis) Pairs() ([]Pair, error) {
	path := a.StaticFiles[StaticPairedSamples]

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("paired samples sheet (%s) not found for analysis %s: %w", pairedSamplesFile, a.ID, ErrItemMissing)
		}
		return nil, pfx.Err(err)
	}
	defer f.Close()

	// The sheet may have passed through spreadsheet tools with loose
	// quoting.
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		r := csv.NewReader(in)
		r.LazyQuotes = true
		return r
	})

	pairs := []Pair{}
	if err := gocsv.UnmarshalFile(f, &pairs); err != nil {
		return nil, pfx.Err(err)
	}

	return pairs, nil
}

// SampleIDs returns the unique sample IDs of the run, taken from the first
// column of the headerless samples.fastq-raw.csv sheet. The IDs are sorted.
func (a *Analysis) SampleIDs() ([]string, error) {
	path := a.StaticFiles[StaticSamplesFastqRaw]

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("raw fastq sheet (%s) not found for analysis %s: %w", fastqRawFile, a.ID, ErrItemMissing)
		}
		return nil, pfx.Err(err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	seen := make(map[string]struct{})
	var ids []string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, pfx.Err(err)
		}
		if len(record) == 0 || record[0] == "" {
			continue
		}

		if _, ok := seen[record[0]]; !ok {
			seen[record[0]] = struct{}{}
			ids = append(ids, record[0])
		}
	}
	sort.Strings(ids)

	return ids, nil
}

// Samples returns one Sample per sample ID in the analysis.
func (a *Analysis) Samples() ([]*Sample, error) {
	ids, err := a.SampleIDs()
	if err != nil {
		return nil, err
	}

	samples := make([]*Sample, 0, len(ids))
	for _, id := range ids {
		samples = append(samples, NewSample(id, a))
	}

	return samples, nil
}
