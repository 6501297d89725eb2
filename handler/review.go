package handler

import (
	"resto_manager/constants"
	"resto_manager/database"
	"resto_manager/model"
	"resto_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func GetReviews(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	query := database.DB.Order("review_date DESC").Limit(limit)
	if source := c.Query("source"); source != "" {
		query = query.Where("source = ?", source)
	}

	var reviews model.Reviews
	if err := query.Find(&reviews).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, reviews)
}

func CreateReview(c *fiber.Ctx) error {
	input := c.Locals("inputReview").(*model.CreateReviewInput)

	review := model.Review{
		Source:     input.Source,
		Author:     input.Author,
		Rating:     input.Rating,
		Comment:    input.Comment,
		ReviewDate: input.ReviewDate,
	}
	if review.Source == "" {
		review.Source = "internal"
	}

	if err := database.DB.Create(&review).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	InvalidateSummaryCache(c.Context())
	return utils.SuccessResponse(c, fiber.StatusCreated, review)
}
