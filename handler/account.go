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

func Me(c *fiber.Ctx) error {
	dataInfo, _, _, _ := helper.GetInfoAccountFromToken(c)
	accountId := dataInfo.AccountId

	db := database.DB
	var account model.Account
	if err := db.First(&account, accountId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, account)
}

func GetAccounts(c *fiber.Ctx) error {
	_, _, isAdmin, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	filterInput := new(model.FilterAccount)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INPUT, err)
	}
	db := database.DB

	condition := db.Model(&model.Account{})
	if filterInput.SearchKey != "" {
		searchKey := "%" + strings.ToLower(filterInput.SearchKey) + "%"
		condition = condition.Where("LOWER(full_name) LIKE ? OR LOWER(email) LIKE ?", searchKey, searchKey)
	}
	if filterInput.Active != nil {
		condition = condition.Where("active = ?", filterInput.Active)
	}
	if filterInput.Role != nil {
		condition = condition.Where("role = ?", filterInput.Role)
	}

	var totalCount int64
	condition.Count(&totalCount)

	var accounts model.Accounts
	query := utils.ApplyPagination(condition, filterInput.Limit, filterInput.Page)
	if err := query.Order("created_at DESC").Find(&accounts).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	response := model.ResponseCustom{
		Rows:       accounts,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	}

	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func UpdateAccount(c *fiber.Ctx) error {
	accountId, ok := c.Locals("inputAccountId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse accountId fail"))
	}
	updateInput, ok := c.Locals("inputUpdateAccount").(model.UpdateAccountInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	db := database.DB
	var account model.Account
	if err := db.First(&account, accountId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ACCOUNT_NOT_FOUND, err)
	}

	// copier bỏ qua các field nil nên chỉ cập nhật giá trị gửi lên
	if err := copier.CopyWithOption(&account, &updateInput, copier.Option{IgnoreEmpty: true}); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := db.Save(&account).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}

	// Reload để trả về dữ liệu mới nhất
	db.First(&account, accountId)

	return utils.SuccessResponse(c, fiber.StatusOK, account)
}

func ToggleActiveAccount(c *fiber.Ctx) error {
	_, _, isAdmin, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	accountId, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse accountId fail"))
	}

	db := database.DB

	var account model.Account
	if err := db.First(&account, accountId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ACCOUNT_NOT_FOUND, err)
	}

	account.Active = !account.Active
	if err := db.Save(&account).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, account)
}
