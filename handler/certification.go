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

// CreateCertification gửi hồ sơ chứng nhận, mỗi tài khoản chỉ một hồ sơ chờ duyệt
func CreateCertification(c *fiber.Ctx) error {
	createInput, ok := c.Locals("inputCreateCertification").(model.CreateCertificationInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	dataInfo, account, _, _ := helper.GetInfoAccountFromToken(c)
	if account == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.ACCOUNT_NOT_FOUND, errors.New("account not found"))
	}

	db := database.DB

	var pendingCount int64
	db.Model(&model.Certification{}).
		Where("account_id = ? AND status = ?", dataInfo.AccountId, constants.CERT_PENDING).
		Count(&pendingCount)
	if pendingCount > 0 {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.CERT_ALREADY_SUBMITTED, errors.New("pending certification exists"))
	}

	certification := model.Certification{
		AccountId: dataInfo.AccountId,
		Name:      createInput.Name,
		Image:     createInput.Image,
		Status:    constants.CERT_PENDING,
	}

	if err := db.Create(&certification).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, certification)
}

func GetCertifications(c *fiber.Ctx) error {
	dataInfo, account, isAdmin, _ := helper.GetInfoAccountFromToken(c)
	if account == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.ACCOUNT_NOT_FOUND, errors.New("account not found"))
	}

	db := database.DB
	condition := db.Model(&model.Certification{}).Preload("Account")

	// Không phải admin thì chỉ xem hồ sơ của mình
	if !isAdmin {
		condition = condition.Where("account_id = ?", dataInfo.AccountId)
	} else if status := c.Query("status"); status != "" {
		condition = condition.Where("status = ?", status)
	}

	var certifications []model.Certification
	if err := condition.Order("created_at DESC").Find(&certifications).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, certifications)
}

// ReviewCertification duyệt hồ sơ, approve thì nâng quyền tài khoản lên TUTOR
func ReviewCertification(c *fiber.Ctx) error {
	certId, ok := c.Locals("inputCertificationId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse certificationId fail"))
	}
	reviewInput, ok := c.Locals("inputReviewCertification").(model.ReviewCertificationInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	db := database.DB
	var certification model.Certification
	if err := db.First(&certification, certId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}

	if certification.Status != constants.CERT_PENDING {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Hồ sơ đã được duyệt trước đó", errors.New("certification already reviewed"))
	}

	if reviewInput.Approve {
		certification.Status = constants.CERT_APPROVED
	} else {
		certification.Status = constants.CERT_REJECTED
	}
	certification.Note = reviewInput.Note

	if err := db.Save(&certification).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}

	// Approve thì nâng quyền để gia sư được tạo khóa học
	if reviewInput.Approve {
		if err := db.Model(&model.Account{}).
			Where("id = ? AND role = ?", certification.AccountId, constants.ROLE_USER).
			Update("role", constants.ROLE_TUTOR).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
		}
	}

	return utils.SuccessResponse(c, fiber.StatusOK, certification)
}
