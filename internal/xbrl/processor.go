// Package xbrl validates a packaged report against the VSME taxonomy.
//
// The ReportProcessor checks every extracted fact for concept
// existence, datatype conformance and unit consistency, and warns when
// recommended concepts are missing. It never mutates the shared
// taxonomy; extensions from taxonomy packages are merged into a
// processor-local copy at construction time.
package xbrl

import (
	"context"
	"fmt"

	"github.com/vsmetools/validator/internal/excel"
	"github.com/vsmetools/validator/internal/logging"
	"github.com/vsmetools/validator/internal/results"
	"github.com/vsmetools/validator/internal/taxonomy"
)

// Options configures a ReportProcessor.
type Options struct {
	// TaxonomyPackages are directories containing taxonomy packages to
	// layer over the embedded concept set.
	TaxonomyPackages []string

	// WorkOffline suppresses any attempt to resolve taxonomy references
	// outside the loaded packages.
	WorkOffline bool
}

// Result is the validator's verdict on one report package.
type Result struct {
	// Valid is the validator's own flag: true iff none of Messages
	// carries ERROR severity. Callers must use it rather than re-derive.
	Valid    bool
	Messages []results.Message
}

// ReportProcessor validates report packages. It is read-only after
// construction and safe for concurrent use.
type ReportProcessor struct {
	tax         *taxonomy.Taxonomy
	workOffline bool
}

// NewReportProcessor builds a processor over the process-wide taxonomy
// plus any configured taxonomy packages. It fails if the reference data
// cannot be loaded or a package is broken.
func NewReportProcessor(opts Options) (*ReportProcessor, error) {
	tax, err := taxonomy.Default()
	if err != nil {
		return nil, fmt.Errorf("taxonomy reference data: %w", err)
	}

	for _, dir := range opts.TaxonomyPackages {
		extra, err := taxonomy.LoadPackage(dir)
		if err != nil {
			return nil, err
		}
		tax = tax.Extend(extra)
	}

	return &ReportProcessor{tax: tax, workOffline: opts.WorkOffline}, nil
}

// ValidateReportPackage checks every fact in pkg and returns the
// collected messages. An empty or nil package is an error: there is
// nothing to validate.
func (p *ReportProcessor) ValidateReportPackage(ctx context.Context, pkg *excel.Package) (*Result, error) {
	if pkg == nil || len(pkg.Facts) == 0 {
		return nil, fmt.Errorf("report package contains no facts")
	}

	var msgs []results.Message
	reported := make(map[string]bool, len(pkg.Facts))

	for _, fact := range pkg.Facts {
		reported[fact.Concept] = true

		concept, ok := p.tax.Concept(fact.Concept)
		if !ok {
			msgs = append(msgs, results.Message{
				Text:     fmt.Sprintf("Concept %s is not defined in the taxonomy", fact.Concept),
				Severity: results.SeverityError,
				Type:     results.MessageXBRL,
				Concept:  fact.Concept,
				CellRef:  fact.CellRef,
			})
			continue
		}

		if err := checkValue(concept.DataType, fact.Value); err != nil {
			msgs = append(msgs, results.Message{
				Text:     fmt.Sprintf("Value %q is not a valid %s: %v", fact.Value, concept.DataType, err),
				Severity: results.SeverityError,
				Type:     results.MessageXBRL,
				Concept:  fact.Concept,
				CellRef:  fact.CellRef,
			})
			continue
		}

		if concept.Unit != "" && fact.Unit != "" && fact.Unit != concept.Unit {
			msgs = append(msgs, results.Message{
				Text:     fmt.Sprintf("Unit %q differs from the taxonomy unit %q", fact.Unit, concept.Unit),
				Severity: results.SeverityWarning,
				Type:     results.MessageXBRL,
				Concept:  fact.Concept,
				CellRef:  fact.CellRef,
			})
		}
	}

	for _, c := range p.tax.Recommended() {
		if !reported[c.QName] {
			msgs = append(msgs, results.Message{
				Text:     fmt.Sprintf("Recommended concept %s (%s) was not reported", c.QName, c.Label),
				Severity: results.SeverityWarning,
				Type:     results.MessageXBRL,
				Concept:  c.QName,
			})
		}
	}

	valid := true
	for _, m := range msgs {
		if m.Severity == results.SeverityError {
			valid = false
			break
		}
	}

	logging.FromContext(ctx).Debug("report package validated",
		"facts", len(pkg.Facts),
		"messages", len(msgs),
		"valid", valid,
	)

	return &Result{Valid: valid, Messages: msgs}, nil
}
