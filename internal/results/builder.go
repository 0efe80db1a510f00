package results

import "github.com/google/uuid"

// Builder accumulates messages and counters for one validation run.
//
// A Builder is not safe for concurrent use; each run gets its own.
// AddMessage never fails and never inspects message content. All
// aggregate fields (id, success, overall severity, counts) are computed
// once, in Build.
type Builder struct {
	messages       []Message
	cellsQueried   int
	cellsPopulated int
	xbrlValid      *bool
	built          bool
}

// NewBuilder returns an empty builder for a new validation run.
func NewBuilder() *Builder {
	return &Builder{}
}

// AddMessage appends one message, preserving insertion order.
func (b *Builder) AddMessage(m Message) {
	b.messages = append(b.messages, m)
}

// AddMessages appends messages preserving their relative order.
func (b *Builder) AddMessages(ms []Message) {
	b.messages = append(b.messages, ms...)
}

// AddConversionError records a stage failure as a single ERROR message
// of type Conversion. The run still completes; the failure is reported
// through the result instead of propagating.
func (b *Builder) AddConversionError(text string) {
	b.AddMessage(Message{
		Text:     text,
		Severity: SeverityError,
		Type:     MessageConversion,
	})
}

// SetCellCounts records extraction coverage. The counters are owned by
// the extractor and passed through to the result unchanged.
func (b *Builder) SetCellCounts(queried, populated int) {
	b.cellsQueried = queried
	b.cellsPopulated = populated
}

// SetXBRLValid records the validator's own verdict. Until this is
// called the result's xbrl_valid stays null, meaning the validation
// stage was skipped or never reached.
func (b *Builder) SetXBRLValid(valid bool) {
	b.xbrlValid = &valid
}

// Build finalizes the run into an immutable ConversionResult and
// assigns it a fresh id. A Builder may be built exactly once; a second
// call panics.
func (b *Builder) Build() ConversionResult {
	if b.built {
		panic("results: Build called twice on the same Builder")
	}
	b.built = true

	var errorCount, warningCount int
	for _, m := range b.messages {
		switch m.Severity {
		case SeverityError:
			errorCount++
		case SeverityWarning:
			warningCount++
		}
	}

	messages := make([]Message, len(b.messages))
	copy(messages, b.messages)

	var xbrlValid *bool
	if b.xbrlValid != nil {
		v := *b.xbrlValid
		xbrlValid = &v
	}

	return ConversionResult{
		ID:              uuid.New().String(),
		Success:         errorCount == 0,
		XBRLValid:       xbrlValid,
		OverallSeverity: Overall(messages),
		CellsQueried:    b.cellsQueried,
		CellsPopulated:  b.cellsPopulated,
		HasErrors:       errorCount > 0,
		HasWarnings:     warningCount > 0,
		ErrorCount:      errorCount,
		WarningCount:    warningCount,
		Messages:        messages,
	}
}
