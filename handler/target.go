package handler

import (
	"errors"

	"resto_manager/constants"
	"resto_manager/database"
	"resto_manager/model"
	"resto_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

func GetTargets(c *fiber.Ctx) error {
	query := database.DB.Order("period_start ASC")
	if year := c.QueryInt("year", 0); year > 0 {
		query = query.Where("EXTRACT(YEAR FROM period_start) = ?", year)
	}
	if metric := c.Query("metric"); metric != "" {
		query = query.Where("metric = ?", metric)
	}

	var targets model.RevenueTargets
	if err := query.Find(&targets).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, targets)
}

func CreateTarget(c *fiber.Ctx) error {
	input := c.Locals("inputTarget").(*model.CreateTargetInput)

	target := model.RevenueTarget{
		Metric:      input.Metric,
		Period:      input.Period,
		PeriodStart: input.PeriodStart,
		TargetValue: input.TargetValue,
	}
	if target.Metric == "" {
		target.Metric = "revenue"
	}
	if target.Period == "" {
		target.Period = "monthly"
	}

	var existing model.RevenueTarget
	err := database.DB.Where("metric = ? AND period = ? AND period_start = ?",
		target.Metric, target.Period, target.PeriodStart).First(&existing).Error
	if err == nil {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.TARGET_ALREADY_EXISTS, errors.New("target exists for this period"))
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := database.DB.Create(&target).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	InvalidateSummaryCache(c.Context())
	return utils.SuccessResponse(c, fiber.StatusCreated, target)
}

func UpdateTarget(c *fiber.Ctx) error {
	id := c.Locals("inputId").(int)
	input := c.Locals("inputTarget").(*model.UpdateTargetInput)

	var target model.RevenueTarget
	if err := database.DB.First(&target, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.RECORD_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := copier.CopyWithOption(&target, input, copier.Option{IgnoreEmpty: true}); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := database.DB.Save(&target).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	InvalidateSummaryCache(c.Context())
	return utils.SuccessResponse(c, fiber.StatusOK, target)
}

func DeleteTarget(c *fiber.Ctx) error {
	id := c.Locals("inputId").(int)

	result := database.DB.Delete(&model.RevenueTarget{}, id)
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.RECORD_NOT_FOUND, errors.New("target not found"))
	}

	InvalidateSummaryCache(c.Context())
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": id})
}
