package results

import "encoding/json"

// MessageType categorizes where a message came from.
type MessageType uint8

const (
	// MessageConversion marks internal pipeline failures: an extraction or
	// validation stage that could not run to completion.
	MessageConversion MessageType = iota
	// MessageExcel marks messages produced while reading the workbook.
	MessageExcel
	// MessageXBRL marks messages produced by taxonomy validation.
	MessageXBRL
)

// String returns the wire representation of the message type.
func (t MessageType) String() string {
	switch t {
	case MessageConversion:
		return "Conversion"
	case MessageExcel:
		return "Excel"
	case MessageXBRL:
		return "XBRL"
	default:
		return "Unknown"
	}
}

// MarshalJSON encodes the message type as its wire string.
func (t MessageType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// Message is a single diagnostic produced during a validation run.
//
// Concept and CellRef are optional back-references: Concept names the
// taxonomy concept the message is about, CellRef points back into the
// workbook (e.g. "Environment!C6"). Either may be empty; both serialize
// as JSON null when absent.
type Message struct {
	Text     string
	Severity Severity
	Type     MessageType
	Concept  string
	CellRef  string
}

// MarshalJSON emits the wire shape, turning empty optional fields into
// explicit nulls.
func (m Message) MarshalJSON() ([]byte, error) {
	type wire struct {
		Text     string      `json:"text"`
		Severity Severity    `json:"severity"`
		Type     MessageType `json:"type"`
		Concept  *string     `json:"concept"`
		CellRef  *string     `json:"excel_ref"`
	}
	w := wire{Text: m.Text, Severity: m.Severity, Type: m.Type}
	if m.Concept != "" {
		w.Concept = &m.Concept
	}
	if m.CellRef != "" {
		w.CellRef = &m.CellRef
	}
	return json.Marshal(w)
}
