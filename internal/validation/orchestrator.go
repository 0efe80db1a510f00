// Package validation sequences the conversion pipeline: extraction,
// conditional taxonomy validation, and result aggregation.
//
// The Runner owns failure containment. A stage failure never escapes a
// run; it becomes a single ERROR message of type Conversion and the run
// still produces a well-formed ConversionResult. Callers always get a
// result they can inspect and serialize, never a raw error.
package validation

import (
	"context"
	"fmt"

	"github.com/vsmetools/validator/internal/excel"
	"github.com/vsmetools/validator/internal/logging"
	"github.com/vsmetools/validator/internal/results"
	"github.com/vsmetools/validator/internal/xbrl"
)

// Extractor turns workbook bytes into a structured report, recording
// coverage counters and extraction messages into the builder.
type Extractor interface {
	PopulateReport(ctx context.Context, data []byte, b *results.Builder) (*excel.Report, error)
}

// Validator checks a packaged report against the taxonomy.
type Validator interface {
	ValidateReportPackage(ctx context.Context, pkg *excel.Package) (*xbrl.Result, error)
}

// Options control a single run.
type Options struct {
	// SkipXBRL skips taxonomy validation even when the report has facts.
	SkipXBRL bool
}

// Runner drives one validation run at a time. It is stateless and safe
// to share; every run gets its own builder and result.
type Runner struct {
	extractor Extractor
	validator Validator
}

// NewRunner wires the two pipeline stages together.
func NewRunner(extractor Extractor, validator Validator) *Runner {
	return &Runner{extractor: extractor, validator: validator}
}

// Run executes the pipeline on one workbook and always returns a built
// result.
//
// Extraction failure short-circuits: there is nothing valid to
// validate, so the run ends with one Conversion error and xbrl_valid
// null. Validation runs only when the caller did not skip it and the
// report actually has facts. A validator that fails to run (as opposed
// to one that runs and finds problems) also leaves xbrl_valid null;
// false strictly means "attempted and failed".
func (r *Runner) Run(ctx context.Context, data []byte, opts Options) results.ConversionResult {
	logger := logging.FromContext(ctx)
	b := results.NewBuilder()

	report, err := r.extractor.PopulateReport(ctx, data, b)
	if err != nil {
		logger.Warn("extraction failed", "error", err)
		b.AddConversionError(fmt.Sprintf("Exception: %v", err))
		return b.Build()
	}

	if opts.SkipXBRL || !report.HasFacts() {
		return b.Build()
	}

	pkg, err := report.Package()
	if err != nil {
		logger.Warn("report packaging failed", "error", err)
		b.AddConversionError(fmt.Sprintf("Exception: %v", err))
		return b.Build()
	}

	verdict, err := r.validator.ValidateReportPackage(ctx, pkg)
	if err != nil {
		logger.Warn("taxonomy validation failed to run", "error", err)
		b.AddConversionError(fmt.Sprintf("Exception: %v", err))
		return b.Build()
	}

	b.AddMessages(verdict.Messages)
	b.SetXBRLValid(verdict.Valid)
	return b.Build()
}
