package xbrl

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/vsmetools/validator/internal/taxonomy"
)

// dateLayouts are the formats accepted for date concepts. Spreadsheet
// cells typically surface either ISO dates or the template's display
// format.
var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"2 January 2006",
}

// checkValue reports whether value is acceptable for the datatype.
// Numeric values may carry thousands separators; booleans accept the
// yes/no spellings the template uses.
func checkValue(dt taxonomy.DataType, value string) error {
	switch dt {
	case taxonomy.TypeString:
		return nil

	case taxonomy.TypeInteger:
		if _, err := strconv.ParseInt(cleanNumber(value), 10, 64); err != nil {
			return fmt.Errorf("not an integer")
		}
		return nil

	case taxonomy.TypeDecimal, taxonomy.TypeMonetary:
		if _, err := strconv.ParseFloat(cleanNumber(value), 64); err != nil {
			return fmt.Errorf("not a number")
		}
		return nil

	case taxonomy.TypeBoolean:
		switch strings.ToLower(strings.TrimSpace(value)) {
		case "true", "false", "yes", "no":
			return nil
		}
		return fmt.Errorf("not a boolean")

	case taxonomy.TypeDate:
		v := strings.TrimSpace(value)
		for _, layout := range dateLayouts {
			if _, err := time.Parse(layout, v); err == nil {
				return nil
			}
		}
		return fmt.Errorf("not a date")

	default:
		return fmt.Errorf("unsupported datatype %q", dt)
	}
}

func cleanNumber(value string) string {
	value = strings.TrimSpace(value)
	value = strings.ReplaceAll(value, ",", "")
	return strings.ReplaceAll(value, " ", "")
}
