package main

import (
	"fmt"
	"html/template"
	"net/http"
	"runtime"
	"strconv"

	snsclasses "github.com/NYU-Molecular-Pathology/sns-classes"
	"github.com/gorilla/mux"
)

// handler provides global values that must be safe for concurrent use from
// multiple goroutines to each handler method.
type handler struct {
	*Global

	router *mux.Router
	tpl    *template.Template
}

func (h *handler) Index(w http.ResponseWriter, r *http.Request) {
	output := struct {
		Root     string
		Analyses []AnalysisEntry
	}{
		h.Global.Root,
		h.Global.Analyses(),
	}

	Render(h, w, r, h.Global.Site, "index.html", output)
}

func (h *handler) AnalysisView(w http.ResponseWriter, r *http.Request) {
	analysisIdx := mux.Vars(r)["analysis_index"]
	analysisIndex, err := strconv.Atoi(analysisIdx)
	if err != nil {
		HTTPError(h, w, r, fmt.Errorf("no analysis_index passed"), http.StatusBadRequest)
		return
	}

	entries := h.Global.Analyses()
	if analysisIndex < 0 || analysisIndex >= len(entries) {
		HTTPError(h, w, r, fmt.Errorf("analysis_index %d out of range", analysisIndex), http.StatusNotFound)
		return
	}

	entry := entries[analysisIndex]

	analysis, err := snsclasses.NewAnalysis(entry.Dir, entry.ID, h.Global.Config,
		snsclasses.WithResultsID(entry.ResultsID),
		snsclasses.SkipValidation(),
	)
	if err != nil {
		HTTPError(h, w, r, err)
		return
	}

	valid, validationErr := analysis.Validate()
	validationNote := ""
	if validationErr != nil {
		validationNote = validationErr.Error()
	}

	// An incomplete analysis can still render its page; sheets that cannot
	// be read just come up empty.
	sampleIDs, _ := analysis.SampleIDs()
	pairs, _ := analysis.Pairs()

	output := struct {
		Entry           AnalysisEntry
		Valid           bool
		ValidationError string
		Checks          []snsclasses.Check
		SampleIDs       []string
		Pairs           []snsclasses.Pair
	}{
		entry,
		valid,
		validationNote,
		analysis.Validations(),
		sampleIDs,
		pairs,
	}

	Render(h, w, r, entry.ID, "analysis.html", output)
}

func (h *handler) Rescan(w http.ResponseWriter, r *http.Request) {
	entries, err := DiscoverAnalyses(h.Global.Root)
	if err != nil {
		HTTPError(h, w, r, err)
		return
	}

	h.Global.SetAnalyses(entries)
	h.Global.log.Println("Rescanned", h.Global.Root, "- found", len(entries), "analyses")

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *handler) Goroutines(w http.ResponseWriter, r *http.Request) {
	goroutines := fmt.Sprintf("%d goroutines are currently active\n", runtime.NumGoroutine())

	w.Write([]byte(goroutines))
}
