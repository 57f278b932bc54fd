package handler

import (
	"errors"
	"strings"

	"tutor_market/constants"
	"tutor_market/database"
	"tutor_market/helper"
	"tutor_market/model"
	"tutor_market/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

func GetCourses(c *fiber.Ctx) error {
	filterInput := new(model.FilterCourse)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INPUT, err)
	}

	db := database.DB
	condition := db.Model(&model.Course{})

	// Khách chỉ thấy khóa học đang mở bán, admin xem được tất cả
	_, _, isAdmin, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		condition = condition.Where("active = ?", true)
	} else if filterInput.Active != nil {
		condition = condition.Where("active = ?", filterInput.Active)
	}

	if filterInput.SearchKey != "" {
		searchKey := "%" + strings.ToLower(filterInput.SearchKey) + "%"
		condition = condition.Where("LOWER(name) LIKE ?", searchKey)
	}
	if filterInput.CreatorId != nil {
		condition = condition.Where("creator_id = ?", filterInput.CreatorId)
	}

	var totalCount int64
	condition.Count(&totalCount)

	var courses model.Courses
	query := utils.ApplyPagination(condition, filterInput.Limit, filterInput.Page)
	if err := query.Preload("Creator").Order("created_at DESC").Find(&courses).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	response := model.ResponseCustom{
		Rows:       courses,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	}

	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func GetCourseBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")
	if slug == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("slug empty"))
	}

	db := database.DB
	var course model.Course
	if err := db.Preload("Creator").Where("slug = ?", slug).First(&course).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.COURSE_NOT_FOUND, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, course)
}

func CreateCourse(c *fiber.Ctx) error {
	createInput, ok := c.Locals("inputCreateCourse").(model.CreateCourseInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	dataInfo, account, _, _ := helper.GetInfoAccountFromToken(c)
	if account == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_FOUND_RECORDS, errors.New("account not found"))
	}

	db := database.DB
	course := model.Course{
		Name:        createInput.Name,
		Slug:        helper.GenerateUniqueCourseSlug(db, createInput.Name),
		Description: createInput.Description,
		Image:       createInput.Image,
		Price:       createInput.Price,
		CreatorId:   dataInfo.AccountId,
		Active:      true,
	}

	if err := db.Create(&course).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, course)
}

func UpdateCourse(c *fiber.Ctx) error {
	courseId, ok := c.Locals("inputCourseId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse courseId fail"))
	}
	updateInput, ok := c.Locals("inputEditCourse").(model.UpdateCourseInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	db := database.DB
	var course model.Course
	if err := db.First(&course, courseId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.COURSE_NOT_FOUND, err)
	}

	// Gia sư chỉ sửa được khóa học của mình
	dataInfo, _, isAdmin, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin && course.CreatorId != dataInfo.AccountId {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not owner"))
	}

	oldName := course.Name
	if err := copier.CopyWithOption(&course, &updateInput, copier.Option{IgnoreEmpty: true}); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	// Đổi tên thì sinh lại slug
	if updateInput.Name != nil && *updateInput.Name != oldName {
		course.Slug = helper.GenerateUniqueCourseSlug(db, course.Name)
	}
	if updateInput.Active != nil {
		course.Active = *updateInput.Active
	}

	if err := db.Save(&course).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}

	db.Preload("Creator").First(&course, courseId)

	return utils.SuccessResponse(c, fiber.StatusOK, course)
}

func DeleteCourses(c *fiber.Ctx) error {
	_, _, isAdmin, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	deleteInput, ok := c.Locals("deleteIds").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	db := database.DB

	// Khóa học đã có đơn hàng thì chỉ ngừng mở bán, không xóa
	var orderedCount int64
	db.Model(&model.OrderDetail{}).Where("course_id IN ?", deleteInput.IDs).Count(&orderedCount)
	if orderedCount > 0 {
		if err := db.Model(&model.Course{}).Where("id IN ?", deleteInput.IDs).Update("active", false).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
		}
		return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deactivated": deleteInput.IDs})
	}

	if err := db.Delete(&model.Course{}, deleteInput.IDs).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": deleteInput.IDs})
}
