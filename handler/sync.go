package handler

import (
	"errors"

	"resto_manager/constants"
	"resto_manager/database"
	"resto_manager/helper"
	"resto_manager/model"
	"resto_manager/utils"

	"github.com/gofiber/fiber/v2"
)

// SyncDailyMetrics triggers one daily-metrics ingestion run. Partial success
// (some rows skipped or erroring) still returns 200 with success=true; only
// configuration and upstream transport failures return 400.
func SyncDailyMetrics(c *fiber.Ctx) error {
	input := c.Locals("inputSync").(model.SyncInput)

	result, err := helper.IngestDailyMetrics(c.Context(), input)
	if err != nil {
		if errors.Is(err, helper.ErrSheetsKeyMissing) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.SHEETS_KEY_NOT_SET, err)
		}
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "sheet fetch failed", err)
	}

	InvalidateSummaryCache(c.Context())

	return c.Status(fiber.StatusOK).JSON(result)
}

// GetSyncLogs lists recent runs for the sync panel, newest first.
func GetSyncLogs(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	var logs model.SyncLogs
	if err := database.DB.Order("started_at DESC").Limit(limit).Find(&logs).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, logs)
}
