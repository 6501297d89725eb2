package helper

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"resto_manager/constants"
	"resto_manager/database"
	"resto_manager/model"
	"resto_manager/utils"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Month values start at this column; columns A-B hold the category label.
const pnlMonthStartCol = 2

// pnlCategoryColumns maps normalized row labels to pnl_monthly columns.
// Labels are matched case- and whitespace-insensitively; anything not in this
// vocabulary is ignored (the sheets carry free-form section headings and
// subtotals we do not track).
var pnlCategoryColumns = map[string]string{
	"food revenue":        "revenue_food",
	"revenue food":        "revenue_food",
	"beverage revenue":    "revenue_beverage",
	"revenue beverage":    "revenue_beverage",
	"other revenue":       "revenue_other",
	"total revenue":       "total_revenue",
	"cogs food":           "cogs_food",
	"food cost":           "cogs_food",
	"cogs beverage":       "cogs_beverage",
	"beverage cost":       "cogs_beverage",
	"total cogs":          "total_cogs",
	"gross profit":        "gross_profit",
	"salaries":            "salaries",
	"casual wages":        "casual_wages",
	"wages":               "casual_wages",
	"employee benefits":   "employee_benefits",
	"total labor":         "total_labor",
	"total labour":        "total_labor",
	"rent":                "rent",
	"utilities":           "utilities",
	"insurance":           "insurance",
	"depreciation":        "depreciation",
	"total fixed costs":   "total_fixed_costs",
	"marketing":           "marketing",
	"maintenance":         "maintenance",
	"repairs maintenance": "maintenance",
	"other opex":          "other_opex",
	"other expenses":      "other_opex",
	"total opex":          "total_opex",
	"ebit":                "ebit",
	"operating profit":    "ebit",
}

// pnlColumnSections groups columns for the section-level change summary shown
// in the sync diagnostics panel.
var pnlColumnSections = map[string]string{
	"revenue_food": "revenue", "revenue_beverage": "revenue", "revenue_other": "revenue", "total_revenue": "revenue",
	"cogs_food": "cogs", "cogs_beverage": "cogs", "total_cogs": "cogs", "gross_profit": "cogs",
	"salaries": "labor", "casual_wages": "labor", "employee_benefits": "labor", "total_labor": "labor",
	"rent": "fixed", "utilities": "fixed", "insurance": "fixed", "depreciation": "fixed", "total_fixed_costs": "fixed",
	"marketing": "opex", "maintenance": "opex", "other_opex": "opex", "total_opex": "opex",
	"ebit": "summary",
}

type pnlMonthColumn struct {
	Col   int
	Month int
	Year  int
	Label string
}

// IngestPnl runs one P&L sync. Rows are category rows, columns are months.
// Month columns are reported even when no category matched so the caller can
// tell a data-shape mismatch apart from an empty sheet.
func IngestPnl(ctx context.Context, input model.PnlSyncInput) (model.PnlSyncResult, error) {
	runId := uuid.NewString()
	log := logrus.WithFields(logrus.Fields{
		"runId":    runId,
		"syncType": "pnl",
		"sheetId":  input.SheetId,
	})

	syncLog := model.SyncLog{
		RunId:     runId,
		SyncType:  "pnl",
		Status:    constants.SyncStatusRunning,
		StartedAt: time.Now(),
	}
	database.DB.Create(&syncLog)

	var rows [][]interface{}
	var err error
	if input.CsvUrl != "" {
		rows, err = FetchCsv(ctx, input.CsvUrl)
	} else {
		rows, err = FetchSheetRange(ctx, input.SheetId, input.SheetName+"!A1:T200")
	}
	if err != nil {
		log.WithError(err).Error("pnl sheet fetch failed")
		finishSyncLog(&syncLog, constants.SyncStatusFailed, 0, 0, err.Error())
		return model.PnlSyncResult{}, err
	}

	dataType := input.DataType
	if dataType == "" {
		dataType = "actual"
	}

	result := model.PnlSyncResult{
		MonthColumns: []string{},
		Debug: model.PnlSyncDebug{
			MatchedCategories:   []string{},
			UnmatchedLabels:     []string{},
			SampleValues:        map[string]string{},
			SectionChanges:      map[string]int{},
			YearOverrideApplied: input.YearOverride != nil,
		},
	}

	monthCols, headerRow := detectMonthColumns(rows, input.YearOverride)
	for _, mc := range monthCols {
		result.MonthColumns = append(result.MonthColumns, mc.Label)
	}
	if len(monthCols) == 0 {
		finishSyncLog(&syncLog, constants.SyncStatusFailed, 0, 0, constants.NO_SHEET_STRUCTURE)
		return result, nil
	}

	// Collect per-month column updates so each (year, month) record is written
	// once, only touching the categories this run actually carried.
	updates := map[[2]int]map[string]interface{}{}

	for i := headerRow + 1; i < len(rows); i++ {
		row := rows[i]
		label := normalizePnlLabel(utils.CellString(cellAt(row, 0)) + " " + utils.CellString(cellAt(row, 1)))
		if label == "" {
			continue
		}

		column, ok := pnlCategoryColumns[label]
		if !ok {
			if len(result.Debug.UnmatchedLabels) < constants.MaxIngestErrorSamples {
				result.Debug.UnmatchedLabels = append(result.Debug.UnmatchedLabels, label)
			}
			continue
		}
		result.Debug.MatchedCategories = append(result.Debug.MatchedCategories, label)

		for _, mc := range monthCols {
			raw := utils.CellString(cellAt(row, mc.Col))
			if raw == "" {
				continue // absent cell, keep the stored value
			}
			key := [2]int{mc.Year, mc.Month}
			if updates[key] == nil {
				updates[key] = map[string]interface{}{}
			}
			updates[key][column] = utils.ParseSheetNumber(raw)
			result.Debug.SectionChanges[pnlColumnSections[column]]++

			if len(result.Debug.SampleValues) < constants.MaxDateParseSamples {
				result.Debug.SampleValues[fmt.Sprintf("%s %s", label, mc.Label)] = raw
			}
		}
	}

	for key, fields := range updates {
		if err := upsertPnlMonth(key[0], key[1], dataType, fields); err != nil {
			log.WithError(err).WithFields(logrus.Fields{"year": key[0], "month": key[1]}).Error("pnl upsert failed")
			continue
		}
		result.Processed++
	}

	status := constants.SyncStatusCompleted
	errMsg := ""
	if result.Processed == 0 {
		// Structure found, nothing matched: a data-shape mismatch, not a
		// transport failure. Needs a label fix, not a retry.
		status = constants.SyncStatusPartial
		errMsg = constants.NO_CATEGORIES_MATCHED
	}
	finishSyncLog(&syncLog, status, result.Processed, 0, errMsg)

	log.WithFields(logrus.Fields{
		"processed":    result.Processed,
		"monthColumns": len(result.MonthColumns),
	}).Info("pnl sync finished")

	return result, nil
}

// upsertPnlMonth writes one (year, month, dataType) record, updating only the
// given category columns so a partial sheet never zeroes the rest.
func upsertPnlMonth(year, month int, dataType string, fields map[string]interface{}) error {
	var rec model.PnlMonthly
	if err := database.DB.
		Where(model.PnlMonthly{Year: year, Month: month, DataType: dataType}).
		FirstOrCreate(&rec).Error; err != nil {
		return err
	}
	return database.DB.Model(&rec).Updates(fields).Error
}

var monthNames = map[string]int{
	"jan": 1, "feb": 2, "mar": 3, "apr": 4, "may": 5, "jun": 6,
	"jul": 7, "aug": 8, "sep": 9, "oct": 10, "nov": 11, "dec": 12,
	"january": 1, "february": 2, "march": 3, "april": 4, "june": 6,
	"july": 7, "august": 8, "september": 9, "october": 10, "november": 11, "december": 12,
}

var numericMonthPattern = regexp.MustCompile(`^(\d{1,2})[./](\d{2,4})$`)

// detectMonthColumns scans for the first row with at least one month-like
// token from pnlMonthStartCol onward. yearOverride forces every derived
// month's year, compensating for tabs whose header years drifted.
func detectMonthColumns(rows [][]interface{}, yearOverride *int) ([]pnlMonthColumn, int) {
	for i, row := range rows {
		var cols []pnlMonthColumn
		for col := pnlMonthStartCol; col < len(row); col++ {
			label := utils.CellString(cellAt(row, col))
			if label == "" {
				continue
			}
			month, year, ok := parseMonthHeader(label)
			if !ok {
				continue
			}
			if yearOverride != nil {
				year = *yearOverride
			} else if year == 0 {
				year = time.Now().Year()
			}
			cols = append(cols, pnlMonthColumn{Col: col, Month: month, Year: year, Label: label})
		}
		if len(cols) > 0 {
			return cols, i
		}
	}
	return nil, -1
}

// parseMonthHeader accepts "Jan", "January 2026", "Jan 26", "01/2026" and
// "1.2026". A missing year parses as 0.
func parseMonthHeader(label string) (int, int, bool) {
	cleaned := strings.ToLower(strings.TrimSpace(label))

	if m := numericMonthPattern.FindStringSubmatch(cleaned); m != nil {
		month, _ := strconv.Atoi(m[1])
		if month < 1 || month > 12 {
			return 0, 0, false
		}
		return month, normalizeYear(m[2]), true
	}

	parts := strings.Fields(cleaned)
	if len(parts) == 0 {
		return 0, 0, false
	}
	month, ok := monthNames[strings.TrimSuffix(parts[0], ".")]
	if !ok {
		return 0, 0, false
	}
	year := 0
	if len(parts) > 1 {
		if y := normalizeYear(parts[1]); y > 0 {
			year = y
		}
	}
	return month, year, true
}

func normalizeYear(raw string) int {
	y, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	if y < 100 {
		y += 2000
	}
	if y < 2000 || y > 2100 {
		return 0
	}
	return y
}

var labelCleanPattern = regexp.MustCompile(`[^a-z0-9 ]+`)

func normalizePnlLabel(raw string) string {
	lower := strings.ToLower(strings.TrimSpace(raw))
	lower = labelCleanPattern.ReplaceAllString(lower, " ")
	return strings.Join(strings.Fields(lower), " ")
}
