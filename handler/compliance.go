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

func GetComplianceItems(c *fiber.Ctx) error {
	query := database.DB.Order("due_date ASC NULLS LAST")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	var items model.ComplianceItems
	if err := query.Find(&items).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, items)
}

func CreateComplianceItem(c *fiber.Ctx) error {
	input := c.Locals("inputCompliance").(*model.CreateComplianceInput)

	item := model.ComplianceItem{
		Name:     input.Name,
		Category: input.Category,
		Status:   input.Status,
		DueDate:  input.DueDate,
		Notes:    input.Notes,
	}
	if item.Status == "" {
		item.Status = "ok"
	}

	if err := database.DB.Create(&item).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	InvalidateSummaryCache(c.Context())
	return utils.SuccessResponse(c, fiber.StatusCreated, item)
}

func UpdateComplianceItem(c *fiber.Ctx) error {
	id := c.Locals("inputId").(int)
	input := c.Locals("inputCompliance").(*model.UpdateComplianceInput)

	var item model.ComplianceItem
	if err := database.DB.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.RECORD_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := copier.CopyWithOption(&item, input, copier.Option{IgnoreEmpty: true}); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := database.DB.Save(&item).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	InvalidateSummaryCache(c.Context())
	return utils.SuccessResponse(c, fiber.StatusOK, item)
}

func DeleteComplianceItem(c *fiber.Ctx) error {
	id := c.Locals("inputId").(int)

	result := database.DB.Delete(&model.ComplianceItem{}, id)
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.RECORD_NOT_FOUND, errors.New("compliance item not found"))
	}

	InvalidateSummaryCache(c.Context())
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": id})
}
