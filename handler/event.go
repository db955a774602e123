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
	"gorm.io/gorm"
)

func CreateEvent(c *fiber.Ctx) error {
	claim, _ := helper.GetInfoOrganizerFromToken(c)
	if claim.AccountId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_PERMISSION, nil)
	}

	input := c.Locals("input").(model.CreateEventInput)

	var event model.Event
	copier.Copy(&event, &input)
	event.OrganizerId = claim.AccountId
	event.Status = model.EventPending
	event.Slug = helper.GenerateUniqueEventSlug(database.DB, input.Title)

	if err := database.DB.Create(&event).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, event)
}

// GetEvents returns the acting organizer's own events. Admins see all.
func GetEvents(c *fiber.Ctx) error {
	claim, isAdmin := helper.GetInfoOrganizerFromToken(c)
	if claim.AccountId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_PERMISSION, nil)
	}

	condition := database.DB.Model(&model.Event{})
	if !isAdmin {
		condition = condition.Where("organizer_id = ?", claim.AccountId)
	}
	if status := c.Query("status"); status != "" {
		condition = condition.Where("status = ?", status)
	}

	var events []model.Event
	if err := condition.Order("start_datetime desc").Find(&events).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, events)
}

func GetEventById(c *fiber.Ctx) error {
	claim, isAdmin := helper.GetInfoOrganizerFromToken(c)
	if claim.AccountId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_PERMISSION, nil)
	}

	eventId := c.Locals("eventId").(int)

	var event model.Event
	condition := database.DB.Where("id = ?", eventId)
	if !isAdmin {
		condition = condition.Where("organizer_id = ?", claim.AccountId)
	}
	if err := condition.First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.EVENT_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, event)
}

// GetEventBySlug is the public event page used by the registration flow.
func GetEventBySlug(c *fiber.Ctx) error {
	eventSlug := c.Params("slug")

	var event model.Event
	if err := database.DB.
		Where("slug = ? AND status = ?", eventSlug, model.EventApproved).
		First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.EVENT_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, event)
}

func EditEvent(c *fiber.Ctx) error {
	claim, _ := helper.GetInfoOrganizerFromToken(c)
	if claim.AccountId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_PERMISSION, nil)
	}

	eventId := c.Locals("eventId").(int)
	input := c.Locals("input").(model.EditEventInput)

	var event model.Event
	if err := database.DB.
		Where("id = ? AND organizer_id = ?", eventId, claim.AccountId).
		First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.EVENT_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	copier.CopyWithOption(&event, &input, copier.Option{IgnoreEmpty: true})

	if err := database.DB.Save(&event).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, event)
}

// ApproveEvent moves a pending event to APPROVED. Admin only; same
// guarded-update shape as the ticket transitions.
func ApproveEvent(c *fiber.Ctx) error {
	_, isAdmin := helper.GetInfoOrganizerFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	eventId := c.Locals("eventId").(int)

	result := database.DB.Model(&model.Event{}).
		Where("id = ? AND status = ?", eventId, model.EventPending).
		Update("status", model.EventApproved)
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.TRANSITION_NO_EFFECT, nil)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"approved": true})
}

func CancelEvent(c *fiber.Ctx) error {
	claim, _ := helper.GetInfoOrganizerFromToken(c)
	if claim.AccountId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_PERMISSION, nil)
	}

	eventId := c.Locals("eventId").(int)

	result := database.DB.Model(&model.Event{}).
		Where("id = ? AND organizer_id = ? AND status IN ?", eventId, claim.AccountId,
			[]string{model.EventPending, model.EventApproved}).
		Update("status", model.EventCancelled)
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.TRANSITION_NO_EFFECT, nil)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"cancelled": true})
}
