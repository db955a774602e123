package validate

import (
	"event_manager/constants"
	"event_manager/model"
	"event_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateEvent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateEventInput

		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		c.Locals("input", input)

		return c.Next()
	}
}

func EditEvent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.EditEventInput

		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		c.Locals("input", input)

		return c.Next()
	}
}

func RegisterAttendee() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.RegisterAttendeeInput

		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		c.Locals("input", input)

		return c.Next()
	}
}
