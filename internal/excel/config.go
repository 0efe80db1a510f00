// Package excel extracts structured facts from a VSME report workbook.
//
// The extractor is driven by a cell-mapping table: each mapping names a
// sheet, a cell and the taxonomy concept the cell reports. The default
// table for the VSME template ships embedded in the binary.
package excel

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"
)

// CellMapping binds one workbook cell to one taxonomy concept.
type CellMapping struct {
	Sheet   string `json:"sheet"`
	Cell    string `json:"cell"`
	Concept string `json:"concept"`

	// Unit is the measurement unit the template prescribes for the cell,
	// empty when the concept is unitless.
	Unit string `json:"unit,omitempty"`
}

// Config is the extraction configuration for one template layout.
type Config struct {
	Mappings []CellMapping `json:"mappings"`
}

//go:embed vsme_defaults.json
var defaultsJSON []byte

var (
	defaultsOnce sync.Once
	defaults     Config
	defaultsErr  error
)

// VSMEDefaults returns the embedded mapping table for the standard VSME
// template. The table is parsed once per process.
func VSMEDefaults() (Config, error) {
	defaultsOnce.Do(func() {
		defaultsErr = json.Unmarshal(defaultsJSON, &defaults)
		if defaultsErr == nil && len(defaults.Mappings) == 0 {
			defaultsErr = fmt.Errorf("embedded VSME mapping table is empty")
		}
	})
	return defaults, defaultsErr
}
