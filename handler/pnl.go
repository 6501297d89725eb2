package handler

import (
	"errors"
	"fmt"
	"time"

	"resto_manager/constants"
	"resto_manager/database"
	"resto_manager/helper"
	"resto_manager/model"
	"resto_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

// SyncPnl triggers one P&L ingestion run. A run that found month columns but
// matched no categories returns 200 with a remediation hint: that is a label
// problem on the sheet, not a transport failure.
func SyncPnl(c *fiber.Ctx) error {
	input := c.Locals("inputPnlSync").(model.PnlSyncInput)

	result, err := helper.IngestPnl(c.Context(), input)
	if err != nil {
		if errors.Is(err, helper.ErrSheetsKeyMissing) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.SHEETS_KEY_NOT_SET, err)
		}
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "sheet fetch failed", err)
	}

	InvalidateSummaryCache(c.Context())

	response := fiber.Map{
		"success":      result.Processed > 0,
		"processed":    result.Processed,
		"monthColumns": result.MonthColumns,
		"debug":        result.Debug,
	}
	switch {
	case result.Processed == 0 && len(result.MonthColumns) > 0:
		response["hint"] = constants.NO_CATEGORIES_MATCHED
	case len(result.MonthColumns) == 0:
		response["hint"] = constants.NO_SHEET_STRUCTURE
	}

	return c.Status(fiber.StatusOK).JSON(response)
}

func GetPnl(c *fiber.Ctx) error {
	year := c.QueryInt("year", time.Now().Year())
	dataType := c.Query("type", "actual")

	var records model.PnlMonthlies
	if err := database.DB.Where("year = ? AND data_type = ?", year, dataType).
		Order("month ASC").Find(&records).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, records)
}

type pnlExportRow struct {
	Label string
	Pick  func(r model.PnlMonthly) *float64
}

var pnlExportRows = []pnlExportRow{
	{"Food Revenue", func(r model.PnlMonthly) *float64 { return r.RevenueFood }},
	{"Beverage Revenue", func(r model.PnlMonthly) *float64 { return r.RevenueBeverage }},
	{"Other Revenue", func(r model.PnlMonthly) *float64 { return r.RevenueOther }},
	{"Total Revenue", func(r model.PnlMonthly) *float64 { return r.TotalRevenue }},
	{"COGS Food", func(r model.PnlMonthly) *float64 { return r.CogsFood }},
	{"COGS Beverage", func(r model.PnlMonthly) *float64 { return r.CogsBeverage }},
	{"Total COGS", func(r model.PnlMonthly) *float64 { return r.TotalCogs }},
	{"Gross Profit", func(r model.PnlMonthly) *float64 { return r.GrossProfit }},
	{"Salaries", func(r model.PnlMonthly) *float64 { return r.Salaries }},
	{"Casual Wages", func(r model.PnlMonthly) *float64 { return r.CasualWages }},
	{"Employee Benefits", func(r model.PnlMonthly) *float64 { return r.EmployeeBenefits }},
	{"Total Labor", func(r model.PnlMonthly) *float64 { return r.TotalLabor }},
	{"Rent", func(r model.PnlMonthly) *float64 { return r.Rent }},
	{"Utilities", func(r model.PnlMonthly) *float64 { return r.Utilities }},
	{"Insurance", func(r model.PnlMonthly) *float64 { return r.Insurance }},
	{"Depreciation", func(r model.PnlMonthly) *float64 { return r.Depreciation }},
	{"Total Fixed Costs", func(r model.PnlMonthly) *float64 { return r.TotalFixedCosts }},
	{"Marketing", func(r model.PnlMonthly) *float64 { return r.Marketing }},
	{"Maintenance", func(r model.PnlMonthly) *float64 { return r.Maintenance }},
	{"Other Opex", func(r model.PnlMonthly) *float64 { return r.OtherOpex }},
	{"Total Opex", func(r model.PnlMonthly) *float64 { return r.TotalOpex }},
	{"EBIT", func(r model.PnlMonthly) *float64 { return r.Ebit }},
}

// ExportPnlReport streams one year of actual-vs-budget P&L as an .xlsx
// workbook, one sheet per data type, months across the columns.
func ExportPnlReport(c *fiber.Ctx) error {
	year := c.QueryInt("year", time.Now().Year())

	f := excelize.NewFile()
	defer f.Close()

	for _, dataType := range []string{"actual", "budget"} {
		var records model.PnlMonthlies
		if err := database.DB.Where("year = ? AND data_type = ?", year, dataType).
			Order("month ASC").Find(&records).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}

		sheet := fmt.Sprintf("%s %d", dataType, year)
		if _, err := f.NewSheet(sheet); err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}

		byMonth := map[int]model.PnlMonthly{}
		for _, r := range records {
			byMonth[r.Month] = r
		}

		f.SetCellValue(sheet, "A1", "Category")
		for month := 1; month <= 12; month++ {
			cell, _ := excelize.CoordinatesToCellName(month+1, 1)
			f.SetCellValue(sheet, cell, time.Month(month).String()[:3])
		}

		for i, row := range pnlExportRows {
			labelCell, _ := excelize.CoordinatesToCellName(1, i+2)
			f.SetCellValue(sheet, labelCell, row.Label)
			for month := 1; month <= 12; month++ {
				rec, ok := byMonth[month]
				if !ok {
					continue
				}
				if v := row.Pick(rec); v != nil {
					cell, _ := excelize.CoordinatesToCellName(month+1, i+2)
					f.SetCellValue(sheet, cell, *v)
				}
			}
		}
	}
	f.DeleteSheet("Sheet1")

	buf, err := f.WriteToBuffer()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set("Content-Disposition", fmt.Sprintf(`attachment; filename=pnl-%d.xlsx`, year))
	return c.Send(buf.Bytes())
}
