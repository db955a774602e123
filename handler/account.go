package handler

import (
	"errors"
	"event_manager/constants"
	"event_manager/database"
	"event_manager/helper"
	"event_manager/model"
	"event_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

// CreateAccount registers a new organizer account. Admin only.
func CreateAccount(c *fiber.Ctx) error {
	_, isAdmin := helper.GetInfoOrganizerFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	input := c.Locals("input").(model.CreateAccountInput)

	hashed, err := helper.HashPassword(input.Password)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var newAccount model.Account
	copier.Copy(&newAccount, &input)
	newAccount.Password = hashed
	newAccount.Active = true
	if newAccount.Role == "" {
		newAccount.Role = constants.ROLE_ORGANIZER
	}

	if err := database.DB.Create(&newAccount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Username or email already in use", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, newAccount)
}

func ChangePassword(c *fiber.Ctx) error {
	claim, _ := helper.GetInfoOrganizerFromToken(c)
	if claim.AccountId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_PERMISSION, nil)
	}

	input := c.Locals("input").(model.ChangePasswordInput)

	var account model.Account
	if err := database.DB.First(&account, claim.AccountId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if !helper.CheckPasswordHash(input.CurrentPassword, account.Password) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Current password is incorrect", nil)
	}

	hashed, err := helper.HashPassword(input.NewPassword)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := database.DB.Model(&account).Update("password", hashed).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "password changed"})
}
