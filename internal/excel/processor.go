package excel

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/vsmetools/validator/internal/logging"
	"github.com/vsmetools/validator/internal/results"
)

// Processor reads a VSME workbook and extracts the facts its mapping
// table describes. A Processor is stateless and safe to share across
// concurrent runs; per-run state lives in the results.Builder.
type Processor struct {
	cfg Config
}

// NewProcessor returns a Processor for the given mapping table.
func NewProcessor(cfg Config) *Processor {
	return &Processor{cfg: cfg}
}

// PopulateReport extracts facts from the workbook bytes, recording
// extraction coverage and any extraction messages into b.
//
// Every mapped cell counts as queried; non-empty mapped cells count as
// populated and yield a fact. Mapped sheets missing from the workbook
// produce one warning each. A workbook that cannot be opened at all is
// an error return; the caller converts it into a Conversion message.
func (p *Processor) PopulateReport(ctx context.Context, data []byte, b *results.Builder) (*Report, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	var (
		facts         []Fact
		queried       int
		populated     int
		missingSheets = map[string]bool{}
	)

	for _, m := range p.cfg.Mappings {
		queried++

		if idx, err := f.GetSheetIndex(m.Sheet); err != nil || idx == -1 {
			if !missingSheets[m.Sheet] {
				missingSheets[m.Sheet] = true
				b.AddMessage(results.Message{
					Text:     fmt.Sprintf("Sheet %q not found in workbook", m.Sheet),
					Severity: results.SeverityWarning,
					Type:     results.MessageExcel,
				})
			}
			continue
		}

		value, err := f.GetCellValue(m.Sheet, m.Cell)
		if err != nil {
			b.AddMessage(results.Message{
				Text:     fmt.Sprintf("Cannot read cell %s: %v", cellRef(m), err),
				Severity: results.SeverityWarning,
				Type:     results.MessageExcel,
				Concept:  m.Concept,
				CellRef:  cellRef(m),
			})
			continue
		}

		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}

		populated++
		facts = append(facts, Fact{
			Concept: m.Concept,
			Value:   value,
			Unit:    m.Unit,
			CellRef: cellRef(m),
		})
	}

	b.SetCellCounts(queried, populated)

	logging.FromContext(ctx).Debug("workbook extracted",
		"cells_queried", queried,
		"cells_populated", populated,
		"facts", len(facts),
	)

	return NewReport(facts), nil
}

func cellRef(m CellMapping) string {
	return m.Sheet + "!" + m.Cell
}
