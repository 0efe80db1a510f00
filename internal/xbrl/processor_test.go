package xbrl

import (
	"context"
	"testing"

	"github.com/vsmetools/validator/internal/excel"
	"github.com/vsmetools/validator/internal/results"
)

func newProcessor(t *testing.T) *ReportProcessor {
	t.Helper()
	p, err := NewReportProcessor(Options{})
	if err != nil {
		t.Fatalf("NewReportProcessor() error = %v", err)
	}
	return p
}

func pkg(facts ...excel.Fact) *excel.Package {
	return &excel.Package{Facts: facts}
}

func TestValidateReportPackage_CleanReport(t *testing.T) {
	p := newProcessor(t)

	res, err := p.ValidateReportPackage(context.Background(), pkg(
		excel.Fact{Concept: "vsme:EntityLegalName", Value: "Acme GmbH", CellRef: "General Information!C4"},
		excel.Fact{Concept: "vsme:NumberOfEmployees", Value: "42", CellRef: "General Information!C6"},
		excel.Fact{Concept: "vsme:TotalEnergyConsumption", Value: "117.5", Unit: "MWh", CellRef: "Environment!C4"},
	))
	if err != nil {
		t.Fatalf("ValidateReportPackage() error = %v", err)
	}

	if !res.Valid {
		t.Errorf("Valid = false, messages: %+v", res.Messages)
	}
	if len(res.Messages) != 0 {
		t.Errorf("unexpected messages: %+v", res.Messages)
	}
}

func TestValidateReportPackage_UnknownConcept(t *testing.T) {
	p := newProcessor(t)

	res, err := p.ValidateReportPackage(context.Background(), pkg(
		excel.Fact{Concept: "vsme:EntityLegalName", Value: "Acme GmbH"},
		excel.Fact{Concept: "vsme:NoSuchConcept", Value: "1", CellRef: "General Information!C9"},
	))
	if err != nil {
		t.Fatalf("ValidateReportPackage() error = %v", err)
	}

	if res.Valid {
		t.Error("unknown concept must invalidate the report")
	}

	var found bool
	for _, m := range res.Messages {
		if m.Severity == results.SeverityError && m.Concept == "vsme:NoSuchConcept" {
			found = true
			if m.CellRef != "General Information!C9" {
				t.Errorf("CellRef = %q", m.CellRef)
			}
		}
	}
	if !found {
		t.Errorf("missing unknown-concept error, messages: %+v", res.Messages)
	}
}

func TestValidateReportPackage_DatatypeViolation(t *testing.T) {
	p := newProcessor(t)

	res, err := p.ValidateReportPackage(context.Background(), pkg(
		excel.Fact{Concept: "vsme:EntityLegalName", Value: "Acme GmbH"},
		excel.Fact{Concept: "vsme:NumberOfEmployees", Value: "forty-two", CellRef: "General Information!C6"},
	))
	if err != nil {
		t.Fatalf("ValidateReportPackage() error = %v", err)
	}

	if res.Valid {
		t.Error("a non-integer headcount must invalidate the report")
	}
	if len(res.Messages) != 1 {
		t.Fatalf("len(Messages) = %d, want 1: %+v", len(res.Messages), res.Messages)
	}
	m := res.Messages[0]
	if m.Severity != results.SeverityError || m.Type != results.MessageXBRL {
		t.Errorf("message = %+v", m)
	}
}

func TestValidateReportPackage_UnitMismatchWarns(t *testing.T) {
	p := newProcessor(t)

	res, err := p.ValidateReportPackage(context.Background(), pkg(
		excel.Fact{Concept: "vsme:EntityLegalName", Value: "Acme GmbH"},
		excel.Fact{Concept: "vsme:TotalEnergyConsumption", Value: "500", Unit: "kWh", CellRef: "Environment!C4"},
	))
	if err != nil {
		t.Fatalf("ValidateReportPackage() error = %v", err)
	}

	if !res.Valid {
		t.Error("a unit mismatch is a warning, not an error")
	}
	if len(res.Messages) != 1 || res.Messages[0].Severity != results.SeverityWarning {
		t.Errorf("messages = %+v", res.Messages)
	}
}

func TestValidateReportPackage_MissingRecommendedWarns(t *testing.T) {
	p := newProcessor(t)

	// vsme:EntityLegalName is recommended and absent here.
	res, err := p.ValidateReportPackage(context.Background(), pkg(
		excel.Fact{Concept: "vsme:NumberOfEmployees", Value: "42"},
	))
	if err != nil {
		t.Fatalf("ValidateReportPackage() error = %v", err)
	}

	if !res.Valid {
		t.Error("missing recommended concepts warn but do not invalidate")
	}

	var found bool
	for _, m := range res.Messages {
		if m.Severity == results.SeverityWarning && m.Concept == "vsme:EntityLegalName" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a missing-recommended warning, got %+v", res.Messages)
	}
}

func TestValidateReportPackage_EmptyPackage(t *testing.T) {
	p := newProcessor(t)

	if _, err := p.ValidateReportPackage(context.Background(), pkg()); err == nil {
		t.Error("empty package should be an error")
	}
	if _, err := p.ValidateReportPackage(context.Background(), nil); err == nil {
		t.Error("nil package should be an error")
	}
}

func TestValidateReportPackage_Deterministic(t *testing.T) {
	p := newProcessor(t)
	facts := pkg(
		excel.Fact{Concept: "vsme:NoSuchConcept", Value: "1"},
		excel.Fact{Concept: "vsme:NumberOfEmployees", Value: "x"},
	)

	a, err := p.ValidateReportPackage(context.Background(), facts)
	if err != nil {
		t.Fatal(err)
	}
	b, err := p.ValidateReportPackage(context.Background(), facts)
	if err != nil {
		t.Fatal(err)
	}

	if len(a.Messages) != len(b.Messages) {
		t.Fatalf("message counts differ: %d vs %d", len(a.Messages), len(b.Messages))
	}
	for i := range a.Messages {
		if a.Messages[i] != b.Messages[i] {
			t.Errorf("message %d differs: %+v vs %+v", i, a.Messages[i], b.Messages[i])
		}
	}
}
