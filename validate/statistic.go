package validate

import (
	"errors"

	"tutor_market/constants"
	"tutor_market/helper"
	"tutor_market/utils"

	"github.com/gofiber/fiber/v2"
)

// RequireAdmin chặn mọi request thống kê không phải admin.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		_, _, isAdmin, _ := helper.GetInfoAccountFromToken(c)
		if !isAdmin {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
		}

		return c.Next()
	}
}

func StatisticRevenueByYear(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		year := utils.ParseYear(c.Params(key))
		if year < 2000 || year > 2100 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": constants.YEAR_INVALID,
			})
		}

		// Save input to context locals
		c.Locals("inputYear", year)

		// Continue to next handler
		return c.Next()
	}
}
