package utils

import (
	"math"
	"strconv"
	"strings"
)

// ParseSheetNumber coerces a spreadsheet cell into a float. The venue sheets
// mix currency symbols, thousands separators and locale markers freely
// ("Rp 1.500.000", "1,500,000", "1500000.5"), so everything except digits,
// separators and a leading minus is stripped before parsing. A cell that does
// not survive coercion counts as zero, not as an error.
func ParseSheetNumber(cell interface{}) float64 {
	switch v := cell.(type) {
	case nil:
		return 0
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0
		}
		return v
	case int:
		return float64(v)
	case string:
		return parseNumericString(v)
	default:
		return 0
	}
}

func parseNumericString(raw string) float64 {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= '0' && r <= '9':
			return r
		case r == '.' || r == ',' || r == '-':
			return r
		default:
			return -1
		}
	}, strings.TrimSpace(raw))

	if cleaned == "" || cleaned == "-" {
		return 0
	}

	// Decide which separator is decimal: the rightmost one wins, the other is
	// treated as a thousands separator. "1.500.000" has repeated dots, so dots
	// are grouping there.
	lastDot := strings.LastIndex(cleaned, ".")
	lastComma := strings.LastIndex(cleaned, ",")
	switch {
	case lastDot >= 0 && lastComma >= 0:
		if lastDot > lastComma {
			cleaned = strings.ReplaceAll(cleaned, ",", "")
		} else {
			cleaned = strings.ReplaceAll(cleaned, ".", "")
			cleaned = strings.Replace(cleaned, ",", ".", 1)
		}
	case lastComma >= 0:
		if strings.Count(cleaned, ",") > 1 || len(cleaned)-lastComma-1 == 3 {
			cleaned = strings.ReplaceAll(cleaned, ",", "")
		} else {
			cleaned = strings.Replace(cleaned, ",", ".", 1)
		}
	case lastDot >= 0:
		if strings.Count(cleaned, ".") > 1 || len(cleaned)-lastDot-1 == 3 {
			cleaned = strings.ReplaceAll(cleaned, ".", "")
		}
	}

	val, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(val) || math.IsInf(val, 0) {
		return 0
	}
	return val
}

// CellString renders a raw sheet cell as a trimmed string.
func CellString(cell interface{}) string {
	switch v := cell.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}
