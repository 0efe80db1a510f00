// Package taxonomy holds the VSME taxonomy reference data: the closed
// set of reportable concepts, their datatypes and expected units.
//
// The base concept set ships embedded in the binary and is loaded once
// per process via EnsureLoaded. Extra concepts can be layered on from
// taxonomy packages on disk (see LoadPackage).
package taxonomy

import "sort"

// DataType names the value space of a concept. The set is closed; the
// validator rejects values that do not parse in the concept's type.
type DataType string

const (
	TypeString   DataType = "string"
	TypeInteger  DataType = "integer"
	TypeDecimal  DataType = "decimal"
	TypeMonetary DataType = "monetary"
	TypeBoolean  DataType = "boolean"
	TypeDate     DataType = "date"
)

// Concept is a single reportable concept from the taxonomy.
type Concept struct {
	// QName is the prefixed concept name, e.g. "vsme:NumberOfEmployees".
	QName string `json:"qname"`

	Label    string   `json:"label"`
	DataType DataType `json:"dataType"`

	// Unit is the expected measurement unit, empty when none applies.
	Unit string `json:"unit,omitempty"`

	// Recommended concepts produce a warning when a report omits them.
	Recommended bool `json:"recommended,omitempty"`
}

// Taxonomy is an immutable concept registry. After construction it is
// read-only and safe to share across concurrent validation runs.
type Taxonomy struct {
	namespace string
	version   string
	concepts  map[string]Concept
}

// Namespace returns the taxonomy namespace URI.
func (t *Taxonomy) Namespace() string { return t.namespace }

// Version returns the taxonomy version string.
func (t *Taxonomy) Version() string { return t.version }

// Len returns the number of known concepts.
func (t *Taxonomy) Len() int { return len(t.concepts) }

// Concept looks up a concept by qname.
func (t *Taxonomy) Concept(qname string) (Concept, bool) {
	c, ok := t.concepts[qname]
	return c, ok
}

// Recommended returns the recommended concepts sorted by qname, so
// callers iterating over them produce deterministic output.
func (t *Taxonomy) Recommended() []Concept {
	var out []Concept
	for _, c := range t.concepts {
		if c.Recommended {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].QName < out[j].QName })
	return out
}

// Extend returns a new Taxonomy containing the receiver's concepts plus
// extra. The receiver is not modified; later entries win on qname
// collisions.
func (t *Taxonomy) Extend(extra []Concept) *Taxonomy {
	merged := make(map[string]Concept, len(t.concepts)+len(extra))
	for q, c := range t.concepts {
		merged[q] = c
	}
	for _, c := range extra {
		merged[c.QName] = c
	}
	return &Taxonomy{namespace: t.namespace, version: t.version, concepts: merged}
}
