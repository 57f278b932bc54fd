package validate

import (
	"errors"

	"tutor_market/constants"
	"tutor_market/helper"
	"tutor_market/model"
	"tutor_market/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateCertification() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateCertificationInput

		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Dữ liệu không hợp lệ", err)
		}

		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		c.Locals("inputCreateCertification", input)

		return c.Next()
	}
}

func ReviewCertification(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		certId, err := c.ParamsInt(key)
		if err != nil || certId <= 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.ReviewCertificationInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Dữ liệu không hợp lệ", err)
		}

		// Chỉ admin mới được duyệt hồ sơ
		_, _, isAdmin, _ := helper.GetInfoAccountFromToken(c)
		if !isAdmin {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
		}

		c.Locals("inputCertificationId", uint(certId))
		c.Locals("inputReviewCertification", input)

		return c.Next()
	}
}
