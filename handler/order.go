package handler

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"

	"tutor_market/constants"
	"tutor_market/database"
	"tutor_market/helper"
	"tutor_market/model"
	"tutor_market/payment"
	"tutor_market/service"
	"tutor_market/utils"

	"github.com/gofiber/fiber/v2"
)

// OrderHandler nhận service qua constructor thay vì gọi global
type OrderHandler struct {
	orders *service.OrderService
	vnpay  *payment.VNPay
}

func NewOrderHandler(orders *service.OrderService, vnpay *payment.VNPay) *OrderHandler {
	return &OrderHandler{orders: orders, vnpay: vnpay}
}

// orderError đổi lỗi nghiệp vụ sang HTTP status + message tiếng Việt
func orderError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	case errors.Is(err, service.ErrCourseNotFound):
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.COURSE_NOT_FOUND, err)
	case errors.Is(err, service.ErrAccountNotFound):
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ACCOUNT_NOT_FOUND, err)
	case errors.Is(err, service.ErrOrderNotFound):
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
	case errors.Is(err, service.ErrOrderNotPayable):
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ORDER_ALREADY_COMPLETED, err)
	case errors.Is(err, service.ErrDetailNotFound):
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.DETAIL_NOT_FOUND, err)
	case errors.Is(err, service.ErrDetailAlreadyFinished):
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DETAIL_ALREADY_FINISHED, err)
	case errors.Is(err, service.ErrOrderNotCompleted):
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ORDER_NOT_COMPLETED_MESSAGE, err)
	default:
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
}

func (h *OrderHandler) CreateOrder(c *fiber.Ctx) error {
	createInput, ok := c.Locals("inputCreateOrder").(model.CreateOrderInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	dataInfo, account, _, _ := helper.GetInfoAccountFromToken(c)
	if account == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.ACCOUNT_NOT_FOUND, errors.New("account not found"))
	}

	result, err := h.orders.CreateOrder(createInput.CourseId, dataInfo.AccountId, c.IP())
	if err != nil {
		return orderError(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, result)
}

func (h *OrderHandler) PayOrder(c *fiber.Ctx) error {
	orderId, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse orderId fail"))
	}

	dataInfo, account, _, _ := helper.GetInfoAccountFromToken(c)
	if account == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.ACCOUNT_NOT_FOUND, errors.New("account not found"))
	}

	result, err := h.orders.PayOrder(uint(orderId), dataInfo.AccountId)
	if err != nil {
		return orderError(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, result)
}

func (h *OrderHandler) GetMyOrders(c *fiber.Ctx) error {
	dataInfo, account, _, _ := helper.GetInfoAccountFromToken(c)
	if account == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.ACCOUNT_NOT_FOUND, errors.New("account not found"))
	}

	views, err := h.orders.ListOrders(dataInfo.AccountId)
	if err != nil {
		return orderError(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, views)
}

// FinishCourse đánh dấu hoàn thành, sinh QR chứng nhận và gửi mail (async)
func (h *OrderHandler) FinishCourse(c *fiber.Ctx) error {
	detailId, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse detailId fail"))
	}

	dataInfo, account, _, _ := helper.GetInfoAccountFromToken(c)
	if account == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.ACCOUNT_NOT_FOUND, errors.New("account not found"))
	}

	detail, err := h.orders.FinishCourse(uint(detailId), dataInfo.AccountId)
	if err != nil {
		return orderError(c, err)
	}

	var course model.Course
	database.DB.First(&course, detail.CourseId)

	certificateUrl := os.Getenv("APP_URL") + detail.CertificateOfCompletion
	qrPng, qrErr := utils.GenerateQRCode(certificateUrl, 256)
	if qrErr != nil {
		log.Printf("Lỗi sinh QR chứng nhận: %v", qrErr)
	}

	utils.SendCertificateEmail(account.Email, utils.CertificateEmailData{
		FullName:       account.FullName,
		CourseName:     course.Name,
		FinishedAt:     detail.TimeFinishCourse.Format("02/01/2006"),
		CertificateUrl: certificateUrl,
	}, qrPng)

	return utils.SuccessResponse(c, fiber.StatusOK, detail)
}

func (h *OrderHandler) VNPayCallback(c *fiber.Ctx) error {
	originalUrl := c.OriginalURL()
	queryString := originalUrl
	if idx := strings.Index(originalUrl, "?"); idx >= 0 {
		queryString = originalUrl[idx+1:]
	}
	query, _ := url.ParseQuery(queryString)

	result := h.vnpay.VerifyReturnUrl(query)
	if result.IsSuccess {
		if _, err := h.orders.CompleteOrderByCode(result.TxnRef); err != nil {
			return c.Redirect(fmt.Sprintf("%s/payment-failed?reason=%s", os.Getenv("APP_URL"), url.QueryEscape(err.Error())))
		}

		// Redirect success
		return c.Redirect(fmt.Sprintf("%s/success?code=%s", os.Getenv("APP_URL"), result.TxnRef))
	}

	// Failed
	return c.Redirect(fmt.Sprintf("%s/payment-failed?reason=%s", os.Getenv("APP_URL"), url.QueryEscape(result.Message)))
}

func (h *OrderHandler) VNPayIPN(c *fiber.Ctx) error {
	// Parse POST body as query
	body := c.Body()
	query, _ := url.ParseQuery(string(body))
	result := h.vnpay.VerifyIPN(query)

	if result.IsSuccess {
		// idempotent, đơn đã COMPLETED thì không đổi gì
		if _, err := h.orders.CompleteOrderByCode(result.TxnRef); err != nil {
			return c.JSON(fiber.Map{
				"RspCode": "99",
				"Message": "Unknown error",
			})
		}

		// Response cho VNPay
		return c.JSON(fiber.Map{
			"RspCode": "00",
			"Message": "Success",
		})
	}

	return c.JSON(fiber.Map{
		"RspCode": "01",
		"Message": "Failed",
	})
}
