package handler

import (
	"errors"

	"tutor_market/constants"
	"tutor_market/database"
	"tutor_market/helper"
	"tutor_market/model"
	"tutor_market/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateFeedback chỉ cho phép đánh giá khi đã mua và thanh toán khóa học
func CreateFeedback(c *fiber.Ctx) error {
	createInput, ok := c.Locals("inputCreateFeedback").(model.CreateFeedbackInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	dataInfo, account, _, _ := helper.GetInfoAccountFromToken(c)
	if account == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.ACCOUNT_NOT_FOUND, errors.New("account not found"))
	}

	db := database.DB

	var course model.Course
	if err := db.First(&course, createInput.CourseId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.COURSE_NOT_FOUND, err)
	}

	// Đã mua khóa học trong một đơn COMPLETED mới được đánh giá
	var purchasedCount int64
	db.Model(&model.OrderDetail{}).
		Joins("JOIN orders ON orders.id = order_details.order_id").
		Where("order_details.course_id = ? AND orders.account_id = ? AND orders.status = ?",
			createInput.CourseId, dataInfo.AccountId, constants.ORDER_COMPLETED).
		Count(&purchasedCount)
	if purchasedCount == 0 {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.FEEDBACK_NOT_ALLOWED, errors.New("course not purchased"))
	}

	// Một tài khoản một đánh giá cho mỗi khóa học, gửi lại thì ghi đè
	var feedback model.Feedback
	err := db.Where("course_id = ? AND account_id = ?", createInput.CourseId, dataInfo.AccountId).
		First(&feedback).Error
	if err == nil {
		feedback.Rating = createInput.Rating
		feedback.Comment = createInput.Comment
		if err := db.Save(&feedback).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
		}
		return utils.SuccessResponse(c, fiber.StatusOK, feedback)
	}

	feedback = model.Feedback{
		CourseId:  createInput.CourseId,
		AccountId: dataInfo.AccountId,
		Rating:    createInput.Rating,
		Comment:   createInput.Comment,
	}
	if err := db.Create(&feedback).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, feedback)
}

func GetFeedbacksByCourse(c *fiber.Ctx) error {
	courseId, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse courseId fail"))
	}

	db := database.DB
	var feedbacks []model.Feedback
	if err := db.Preload("Account").
		Where("course_id = ?", courseId).
		Order("created_at DESC").
		Find(&feedbacks).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, feedbacks)
}
