package validate

import (
	"errors"
	"fmt"

	"tutor_market/constants"
	"tutor_market/helper"
	"tutor_market/model"
	"tutor_market/utils"

	"github.com/gofiber/fiber/v2"
)

func Register() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.RegisterAccountInput

		// Parse JSON từ request body vào struct
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		// Validate input
		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		if !helper.ValidEmail(input.Email) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.EMAIL_INVALID, errors.New("email invalid"), "email")
		}

		// Save input to context locals
		c.Locals("inputRegister", input)

		// Continue to next handler
		return c.Next()
	}
}

func VerifyOtp() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.VerifyOtpInput

		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Dữ liệu không hợp lệ", err)
		}

		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		c.Locals("inputVerifyOtp", input)

		return c.Next()
	}
}

func UpdateAccount(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accountId, err := c.ParamsInt(key)
		if err != nil || accountId <= 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.UpdateAccountInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Dữ liệu không hợp lệ", err)
		}

		// Chỉ admin mới được sửa tài khoản người khác
		_, _, isAdmin, _ := helper.GetInfoAccountFromToken(c)
		if !isAdmin {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
		}

		if input.Role != nil {
			role := *input.Role
			if role != constants.ROLE_ADMIN && role != constants.ROLE_TUTOR && role != constants.ROLE_USER {
				return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Quyền không hợp lệ", errors.New("role invalid"), "role")
			}
		}

		c.Locals("inputAccountId", uint(accountId))
		c.Locals("inputUpdateAccount", input)

		return c.Next()
	}
}
