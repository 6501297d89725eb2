package handler

import (
	"time"

	"resto_manager/constants"
	"resto_manager/database"
	"resto_manager/model"
	"resto_manager/utils"

	"github.com/gofiber/fiber/v2"
)

// GetMetrics lists synced daily rows in a date range, defaulting to the last
// 30 days. Rows are read-only here; only the sheet sync writes them.
func GetMetrics(c *fiber.Ctx) error {
	now := time.Now()
	from := c.Query("from", now.AddDate(0, 0, -30).Format("2006-01-02"))
	to := c.Query("to", now.Format("2006-01-02"))

	var metrics model.DailyMetrics
	if err := database.DB.Where("date >= ? AND date <= ?", from, to).
		Order("date ASC").Find(&metrics).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, metrics)
}
