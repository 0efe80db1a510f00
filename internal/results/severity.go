// Package results provides the diagnostic model for a validation run:
// severities, message types, the per-run results builder, and the
// immutable ConversionResult snapshot it produces.
//
// A Builder is created once per run, fed messages by the conversion
// pipeline as each stage completes, and consumed exactly once by Build.
package results

import "encoding/json"

// Severity is the importance of a single message. Severities form a
// total order: None < Info < Warning < Error.
type Severity uint8

const (
	// SeverityNone is the sentinel for "no messages at all". It is never
	// attached to a message; it only appears as an overall severity.
	SeverityNone Severity = iota
	SeverityInfo
	SeverityWarning
	SeverityError
)

// String returns the wire representation. The strings are part of the
// JSON contract and must not change when the ordinals do.
func (s Severity) String() string {
	switch s {
	case SeverityNone:
		return "none"
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// MarshalJSON encodes the severity as its wire string.
func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// Overall returns the maximum severity present in messages, or
// SeverityNone when the slice is empty. The result does not depend on
// message order.
func Overall(messages []Message) Severity {
	overall := SeverityNone
	for _, m := range messages {
		if m.Severity > overall {
			overall = m.Severity
		}
	}
	return overall
}
