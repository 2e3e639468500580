package main

import (
	"testing"

	"golang.org/x/tools/go/analysis/analysistest"
)

func TestOsExitAnalyzer(t *testing.T) {
	analysistest.Run(t, analysistest.TestData(), OsExitAnalyzer, "osexit", "notmain")
}

func TestAnalyzers_NoDuplicates(t *testing.T) {
	seen := make(map[string]bool)
	for _, a := range analyzers() {
		if seen[a.Name] {
			t.Fatalf("analyzer %s registered twice", a.Name)
		}
		seen[a.Name] = true
	}
	if !seen["osexitmain"] || !seen["nilerr"] || !seen["bodyclose"] || !seen["SA1000"] {
		t.Fatalf("expected analyzers are missing: %v", seen)
	}
}
