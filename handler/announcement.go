package handler

import (
	"resto_manager/constants"
	"resto_manager/database"
	"resto_manager/helper"
	"resto_manager/model"
	"resto_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func GetAnnouncements(c *fiber.Ctx) error {
	var announcements model.Announcements
	if err := database.DB.Order("pinned DESC, created_at DESC").
		Find(&announcements).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, announcements)
}

func CreateAnnouncement(c *fiber.Ctx) error {
	input := c.Locals("inputAnnouncement").(*model.CreateAnnouncementInput)
	claim, _, _ := helper.GetInfoAccountFromToken(c)

	announcement := model.Announcement{
		Title:  input.Title,
		Body:   input.Body,
		Author: claim.Username,
		Pinned: input.Pinned,
	}

	if err := database.DB.Create(&announcement).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, announcement)
}
