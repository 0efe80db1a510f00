package results

// ConversionResult is the finalized outcome of one validation run.
// It is a value snapshot: once built it is never mutated, except that
// transport adapters may stamp Filename before encoding.
type ConversionResult struct {
	ID       string `json:"id"`
	Filename string `json:"filename,omitempty"`

	// Success is true iff no message carries ERROR severity. Stage
	// failures are recorded as ERROR messages, so they are covered.
	Success bool `json:"success"`

	// XBRLValid is nil when taxonomy validation was skipped or could not
	// be attempted, which is distinct from false (attempted and failed).
	XBRLValid *bool `json:"xbrl_valid"`

	OverallSeverity Severity `json:"overall_severity"`

	CellsQueried   int `json:"cells_queried"`
	CellsPopulated int `json:"cells_populated"`

	HasErrors    bool `json:"has_errors"`
	HasWarnings  bool `json:"has_warnings"`
	ErrorCount   int  `json:"error_count"`
	WarningCount int  `json:"warning_count"`

	// Messages in insertion order: extraction messages precede
	// validation messages, matching pipeline order.
	Messages []Message `json:"messages"`
}
