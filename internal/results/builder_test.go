package results

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestBuilder_EmptyRun(t *testing.T) {
	b := NewBuilder()
	res := b.Build()

	if !res.Success {
		t.Error("empty run should succeed")
	}
	if res.OverallSeverity != SeverityNone {
		t.Errorf("OverallSeverity = %v, want none", res.OverallSeverity)
	}
	if res.XBRLValid != nil {
		t.Errorf("XBRLValid = %v, want nil", *res.XBRLValid)
	}
	if res.ID == "" {
		t.Error("Build must assign an id")
	}
	if res.Messages == nil {
		t.Error("Messages must be an empty slice, not nil, so it encodes as []")
	}
}

func TestBuilder_SuccessDerivation(t *testing.T) {
	tests := []struct {
		name        string
		severities  []Severity
		wantSuccess bool
		wantErrors  int
		wantWarns   int
	}{
		{
			name:        "info only",
			severities:  []Severity{SeverityInfo, SeverityInfo},
			wantSuccess: true,
		},
		{
			name:        "warnings do not fail the run",
			severities:  []Severity{SeverityWarning},
			wantSuccess: true,
			wantWarns:   1,
		},
		{
			name:        "one error fails",
			severities:  []Severity{SeverityInfo, SeverityError, SeverityWarning},
			wantSuccess: false,
			wantErrors:  1,
			wantWarns:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuilder()
			for _, sev := range tt.severities {
				b.AddMessage(Message{Text: "m", Severity: sev, Type: MessageExcel})
			}
			res := b.Build()

			if res.Success != tt.wantSuccess {
				t.Errorf("Success = %v, want %v", res.Success, tt.wantSuccess)
			}
			if res.ErrorCount != tt.wantErrors {
				t.Errorf("ErrorCount = %d, want %d", res.ErrorCount, tt.wantErrors)
			}
			if res.WarningCount != tt.wantWarns {
				t.Errorf("WarningCount = %d, want %d", res.WarningCount, tt.wantWarns)
			}
			if res.HasErrors != (tt.wantErrors > 0) {
				t.Errorf("HasErrors = %v", res.HasErrors)
			}
			if res.HasWarnings != (tt.wantWarns > 0) {
				t.Errorf("HasWarnings = %v", res.HasWarnings)
			}
		})
	}
}

func TestBuilder_ConversionErrorFailsRun(t *testing.T) {
	b := NewBuilder()
	b.AddConversionError("Exception: boom")
	res := b.Build()

	if res.Success {
		t.Error("a conversion error must fail the run")
	}
	if len(res.Messages) != 1 {
		t.Fatalf("len(Messages) = %d, want 1", len(res.Messages))
	}
	m := res.Messages[0]
	if m.Severity != SeverityError || m.Type != MessageConversion {
		t.Errorf("message = %+v, want ERROR/Conversion", m)
	}
}

func TestBuilder_InsertionOrderPreserved(t *testing.T) {
	b := NewBuilder()
	b.AddMessage(Message{Text: "first", Severity: SeverityInfo, Type: MessageExcel})
	b.AddMessages([]Message{
		{Text: "second", Severity: SeverityWarning, Type: MessageXBRL},
		{Text: "third", Severity: SeverityInfo, Type: MessageXBRL},
	})
	res := b.Build()

	want := []string{"first", "second", "third"}
	for i, text := range want {
		if res.Messages[i].Text != text {
			t.Errorf("Messages[%d].Text = %q, want %q", i, res.Messages[i].Text, text)
		}
	}
}

func TestBuilder_XBRLValidTriState(t *testing.T) {
	b := NewBuilder()
	b.SetXBRLValid(false)
	res := b.Build()

	if res.XBRLValid == nil || *res.XBRLValid != false {
		t.Error("XBRLValid should be explicitly false, not unset")
	}

	// false ("attempted and failed") still fails only via messages
	if !res.Success {
		t.Error("xbrl_valid=false without ERROR messages must not flip success")
	}
}

func TestBuilder_CellCountsPassedThrough(t *testing.T) {
	b := NewBuilder()
	b.SetCellCounts(12, 7)
	res := b.Build()

	if res.CellsQueried != 12 || res.CellsPopulated != 7 {
		t.Errorf("counts = %d/%d, want 12/7", res.CellsQueried, res.CellsPopulated)
	}
}

func TestBuilder_SecondBuildPanics(t *testing.T) {
	b := NewBuilder()
	b.Build()

	defer func() {
		if recover() == nil {
			t.Error("second Build should panic")
		}
	}()
	b.Build()
}

func TestBuilder_FreshIDs(t *testing.T) {
	a := NewBuilder().Build()
	b := NewBuilder().Build()
	if a.ID == b.ID {
		t.Error("two runs must get distinct ids")
	}
}

func TestMessageJSON_NullOptionalFields(t *testing.T) {
	raw, err := json.Marshal(Message{Text: "t", Severity: SeverityError, Type: MessageConversion})
	if err != nil {
		t.Fatal(err)
	}
	s := string(raw)
	if !strings.Contains(s, `"concept":null`) || !strings.Contains(s, `"excel_ref":null`) {
		t.Errorf("optional fields must encode as null, got %s", s)
	}
	if !strings.Contains(s, `"severity":"error"`) || !strings.Contains(s, `"type":"Conversion"`) {
		t.Errorf("enum wire strings wrong: %s", s)
	}
}
