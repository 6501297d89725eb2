package handler

import (
	"errors"
	"time"

	"resto_manager/constants"
	"resto_manager/database"
	"resto_manager/model"
	"resto_manager/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetShifts lists shifts for one date, today when the query param is absent.
func GetShifts(c *fiber.Ctx) error {
	date := c.Query("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	query := database.DB.Where("date = ?", date).Order("start_time ASC")
	if role := c.Query("role"); role != "" {
		query = query.Where("role = ?", role)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var shifts model.Shifts
	if err := query.Find(&shifts).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, shifts)
}

func CreateShift(c *fiber.Ctx) error {
	input := c.Locals("inputShift").(*model.CreateShiftInput)

	shift := model.Shift{
		Date:      input.Date,
		StaffName: input.StaffName,
		Role:      input.Role,
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
		Status:    constants.ShiftScheduled,
	}

	if err := database.DB.Create(&shift).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	InvalidateSummaryCache(c.Context())
	return utils.SuccessResponse(c, fiber.StatusCreated, shift)
}

// UpdateShiftStatus moves a shift through its lifecycle. Moving into
// in_progress clears any manual CountsAsActive override since the status now
// carries that information.
func UpdateShiftStatus(c *fiber.Ctx) error {
	id := c.Locals("inputId").(int)
	input := c.Locals("inputShiftStatus").(*model.UpdateShiftStatusInput)

	var shift model.Shift
	if err := database.DB.First(&shift, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.RECORD_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	updates := map[string]interface{}{"status": input.Status}
	if input.Status == constants.ShiftInProgress {
		updates["counts_as_active"] = nil
	}
	if err := database.DB.Model(&shift).Updates(updates).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	InvalidateSummaryCache(c.Context())
	return utils.SuccessResponse(c, fiber.StatusOK, shift)
}

func DeleteShift(c *fiber.Ctx) error {
	id := c.Locals("inputId").(int)

	result := database.DB.Delete(&model.Shift{}, id)
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.RECORD_NOT_FOUND, errors.New("shift not found"))
	}

	InvalidateSummaryCache(c.Context())
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": id})
}
