package helper

import (
	"regexp"
	"strings"

	"resto_manager/model"
	"resto_manager/utils"
)

// SheetVariant describes one spreadsheet layout. Offsets are relative to the
// column the date was actually found in, because some yearly tabs shift the
// whole table right by two blank columns. An offset of -1 means the variant
// has no such column.
type SheetVariant struct {
	Name string
	// DateColumns are tried in order; the first cell that is neither empty nor
	// a bare month-name token wins.
	DateColumns       []int
	RevenueOffset     int
	PaxOffset         int
	AvgSpendOffset    int
	StaffOffset       int
	RatingOffset      int
	ReviewCountOffset int
}

// SheetVariants is consulted once per row; layout differences live here and
// nowhere else.
var SheetVariants = map[string]SheetVariant{
	"layout2025": {
		Name:              "layout2025",
		DateColumns:       []int{0, 2},
		RevenueOffset:     1,
		PaxOffset:         2,
		AvgSpendOffset:    3,
		StaffOffset:       4,
		RatingOffset:      5,
		ReviewCountOffset: 6,
	},
	// The 2026 tabs dropped the avg-spend column and moved the Google review
	// pair left by one.
	"layout2026": {
		Name:              "layout2026",
		DateColumns:       []int{0, 2},
		RevenueOffset:     1,
		PaxOffset:         2,
		AvgSpendOffset:    -1,
		StaffOffset:       3,
		RatingOffset:      4,
		ReviewCountOffset: 5,
	},
}

const DefaultSheetVariant = "layout2025"

func GetSheetVariant(name string) SheetVariant {
	if v, ok := SheetVariants[name]; ok {
		return v
	}
	return SheetVariants[DefaultSheetVariant]
}

// Skip reasons for structural or empty rows.
const (
	SkipEmptyRow        = "empty row"
	SkipHeaderRow       = "header row"
	SkipWeekSummary     = "week summary row"
	SkipUnparseableDate = "unparseable date"
	SkipNoData          = "no meaningful data"
)

type RowSkip struct {
	Reason string
	Detail string
}

var bareWordPattern = regexp.MustCompile(`^[A-Za-zÀ-ÿ]+\.?$`)

// NormalizeRow turns one raw sheet row into a DailyMetric candidate or a skip
// signal. It never returns an error: every malformed row maps to a skip
// reason so a single bad row cannot abort a run.
func NormalizeRow(row []interface{}, variant SheetVariant) (*model.DailyMetric, *RowSkip) {
	dateCol, dateCell := findDateCell(row, variant)
	if dateCol < 0 {
		return nil, &RowSkip{Reason: SkipEmptyRow}
	}

	// Structural rows: "KW 12" weekly totals and bare month-name headers.
	if strings.HasPrefix(strings.ToUpper(dateCell), "KW") {
		return nil, &RowSkip{Reason: SkipWeekSummary, Detail: dateCell}
	}
	if bareWordPattern.MatchString(dateCell) {
		return nil, &RowSkip{Reason: SkipHeaderRow, Detail: dateCell}
	}

	date, err := utils.ParseSheetDate(dateCell)
	if err != nil {
		return nil, &RowSkip{Reason: SkipUnparseableDate, Detail: dateCell}
	}

	revenue := utils.ParseSheetNumber(cellAt(row, dateCol+variant.RevenueOffset))
	pax := utils.ParseSheetNumber(cellAt(row, dateCol+variant.PaxOffset))

	if revenue == 0 && pax == 0 {
		return nil, &RowSkip{Reason: SkipNoData, Detail: dateCell}
	}

	metric := &model.DailyMetric{
		Date:    utils.NewCustomDate(date),
		Revenue: int64(revenue),
		Pax:     int(pax),
	}

	if variant.AvgSpendOffset >= 0 {
		metric.AvgSpend = utils.ParseSheetNumber(cellAt(row, dateCol+variant.AvgSpendOffset))
	} else if metric.Pax > 0 {
		metric.AvgSpend = utils.RoundTo(revenue/pax, 2)
	}

	if variant.StaffOffset >= 0 {
		if staff := int(utils.ParseSheetNumber(cellAt(row, dateCol+variant.StaffOffset))); staff > 0 {
			metric.StaffOnDuty = &staff
		}
	}

	// A zero rating or empty review count means the sheet had no snapshot that
	// day; only strictly positive values may overwrite previously synced ones.
	if variant.RatingOffset >= 0 {
		if rating := utils.ParseSheetNumber(cellAt(row, dateCol+variant.RatingOffset)); rating > 0 && rating <= 5 {
			metric.GoogleRating = &rating
		}
	}
	if variant.ReviewCountOffset >= 0 {
		if count := int(utils.ParseSheetNumber(cellAt(row, dateCol+variant.ReviewCountOffset))); count > 0 {
			metric.GoogleReviewCount = &count
		}
	}

	return metric, nil
}

// findDateCell tries the variant's date columns in order, skipping cells that
// are empty or a bare alphabetic token (a month-name header sitting over a
// shifted table). Returns -1 when no candidate column holds anything usable.
func findDateCell(row []interface{}, variant SheetVariant) (int, string) {
	var lastCol = -1
	var lastCell string
	for _, col := range variant.DateColumns {
		cell := utils.CellString(cellAt(row, col))
		if cell == "" {
			continue
		}
		lastCol, lastCell = col, cell
		if !bareWordPattern.MatchString(cell) {
			return col, cell
		}
	}
	// Only bare-word cells found: report the last one so the caller can file
	// it as a header row rather than an empty one.
	return lastCol, lastCell
}

func cellAt(row []interface{}, idx int) interface{} {
	if idx < 0 || idx >= len(row) {
		return nil
	}
	return row[idx]
}
