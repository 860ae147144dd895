package main

import (
	"sync"

	snsclasses "github.com/NYU-Molecular-Pathology/sns-classes"
)

type Global struct {
	log logger

	Site   string
	Root   string
	Config snsclasses.Config

	m        sync.RWMutex
	analyses []AnalysisEntry
}

func (g *Global) Analyses() []AnalysisEntry {
	g.m.RLock()
	defer g.m.RUnlock()

	return g.analyses
}

func (g *Global) SetAnalyses(entries []AnalysisEntry) {
	g.m.Lock()
	defer g.m.Unlock()

	g.analyses = entries
}

type logger interface {
	Print(v ...interface{})
	Printf(format string, v ...interface{})
	Println(v ...interface{})
}
