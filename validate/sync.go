package validate

import (
	"errors"

	"resto_manager/constants"
	"resto_manager/model"
	"resto_manager/utils"

	"github.com/gofiber/fiber/v2"
)

// SyncDailyMetrics validates the ingestion trigger. A missing sheetId is the
// one hard 400 before anything upstream is touched.
func SyncDailyMetrics() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.SyncInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_INVALID, err)
		}

		if input.SheetId == "" {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.SHEET_ID_REQUIRED, errors.New("missing sheetId"))
		}

		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		c.Locals("inputSync", input)
		return c.Next()
	}
}

func SyncPnl() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.PnlSyncInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_INVALID, err)
		}

		if input.SheetId == "" && input.CsvUrl == "" {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.SHEET_ID_REQUIRED, errors.New("missing sheetId"))
		}

		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		c.Locals("inputPnlSync", input)
		return c.Next()
	}
}
