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

func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateCourseInput

		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Dữ liệu không hợp lệ", err)
		}

		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		// Chỉ gia sư đã duyệt hoặc admin mới được tạo khóa học
		_, account, isAdmin, isTutor := helper.GetInfoAccountFromToken(c)
		if account == nil {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Vui lòng đăng nhập", nil)
		}
		if !isAdmin && !isTutor {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_TUTOR, errors.New("not tutor"))
		}

		c.Locals("inputCreateCourse", input)

		return c.Next()
	}
}

func EditCourse(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseId, err := c.ParamsInt(key)
		if err != nil || courseId <= 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.UpdateCourseInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Không thể phân tích yêu cầu: %s", err.Error()),
			})
		}

		if input.Price != nil && *input.Price < 0 {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Giá khóa học không được âm", nil, "price")
		}

		c.Locals("inputCourseId", uint(courseId))
		c.Locals("inputEditCourse", input)

		return c.Next()
	}
}
