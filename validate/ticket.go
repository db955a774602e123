package validate

import (
	"event_manager/constants"
	"event_manager/model"
	"event_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func FilterTicket() fiber.Handler {
	return func(c *fiber.Ctx) error {
		filterInput := new(model.FilterTicketInput)
		if err := c.QueryParser(filterInput); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		if err := validate.Struct(filterInput); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		c.Locals("filter", *filterInput)

		return c.Next()
	}
}

func UpdatePaymentStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdatePaymentStatusInput

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
