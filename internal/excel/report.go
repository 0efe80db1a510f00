package excel

import "fmt"

// Fact is one structured data point extracted from the workbook.
type Fact struct {
	Concept string
	Value   string
	Unit    string

	// CellRef points back at the source cell, e.g. "Environment!C6".
	CellRef string
}

// Report is the structured output of the extraction stage.
type Report struct {
	facts []Fact
}

// NewReport wraps already-extracted facts into a Report. Mostly useful
// for tests and tools that bypass workbook parsing.
func NewReport(facts []Fact) *Report {
	return &Report{facts: facts}
}

// HasFacts reports whether extraction produced at least one fact.
// Taxonomy validation is pointless without facts and is skipped.
func (r *Report) HasFacts() bool {
	return len(r.facts) > 0
}

// Facts returns the extracted facts in template order.
func (r *Report) Facts() []Fact {
	return r.facts
}

// Package bundles the report for taxonomy validation.
func (r *Report) Package() (*Package, error) {
	if len(r.facts) == 0 {
		return nil, fmt.Errorf("cannot package a report without facts")
	}
	return &Package{Facts: r.facts}, nil
}

// Package is the validation-ready form of a report, handed from the
// extraction stage to the taxonomy validator.
type Package struct {
	Facts []Fact
}
