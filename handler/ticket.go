package handler

import (
	"errors"
	"event_manager/constants"
	"event_manager/database"
	"event_manager/helper"
	"event_manager/model"
	"event_manager/utils"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RegisterForEvent creates a PENDING registration for an approved,
// upcoming event. The registrant record is keyed by email.
func RegisterForEvent(c *fiber.Ctx) error {
	eventSlug := c.Params("slug")
	input := c.Locals("input").(model.RegisterAttendeeInput)

	db := database.DB
	tx := db.Begin()

	var event model.Event
	if err := tx.Where("slug = ?", eventSlug).First(&event).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.EVENT_NOT_FOUND, err)
	}
	if event.Status != model.EventApproved || time.Now().After(event.StartDatetime) {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.EVENT_NOT_OPEN, nil)
	}

	var confirmed int64
	tx.Model(&model.Ticket{}).
		Where("event_id = ? AND status = ?", event.ID, model.TicketConfirmed).
		Count(&confirmed)
	if event.MaxAttendees > 0 && confirmed >= int64(event.MaxAttendees) {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.EVENT_FULL, nil)
	}

	user := model.User{
		Email:       input.Email,
		FullName:    input.FullName,
		StudentCode: input.StudentCode,
		Department:  input.Department,
		Phone:       input.Phone,
	}
	if err := tx.Where(model.User{Email: input.Email}).FirstOrCreate(&user).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	ticket := model.Ticket{
		TicketCode:    "TKT-" + uuid.New().String()[:10],
		Status:        model.TicketPending,
		PaymentStatus: model.PaymentPending,
		Price:         event.Price,
		EventId:       event.ID,
		UserId:        user.ID,
	}
	if err := tx.Create(&ticket).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	tx.Commit()

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"ticket":     ticket,
		"ticketCode": ticket.TicketCode,
	})
}

// GetTickets lists registrations visible to the acting organizer,
// filtered and paginated.
func GetTickets(c *fiber.Ctx) error {
	claim, _ := helper.GetInfoOrganizerFromToken(c)
	if claim.AccountId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_PERMISSION, nil)
	}

	filterInput := c.Locals("filter").(model.FilterTicketInput)
	scope := scopeFromFilter(claim.AccountId, filterInput)

	tickets, totalCount, err := utils.ListTickets(database.DB, scope, filterInput.Limit, filterInput.Page)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	response := &model.ResponseCustom{
		Rows:       tickets,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func scopeFromFilter(organizerId uint, filter model.FilterTicketInput) utils.TicketScope {
	scope := utils.TicketScope{
		OrganizerId: organizerId,
		EventId:     filter.EventId,
		Status:      filter.Status,
		CheckedIn:   filter.CheckedIn,
	}
	if filter.StartDate != nil {
		if from, err := time.Parse("2006-01-02", *filter.StartDate); err == nil {
			scope.From = &from
		}
	}
	if filter.EndDate != nil {
		if to, err := time.Parse("2006-01-02", *filter.EndDate); err == nil {
			scope.To = &to
		}
	}
	return scope
}

// The four lifecycle transitions. A zero-row outcome renders as
// TRANSITION_NO_EFFECT; only a store failure becomes a 500.

func transitionHandler(transition string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claim, _ := helper.GetInfoOrganizerFromToken(c)
		if claim.AccountId == 0 {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_PERMISSION, nil)
		}

		ticketId := uint(c.Locals("ticketId").(int))

		applied, err := utils.ApplyTransition(database.DB, ticketId, claim.AccountId, transition)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		if !applied {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.TRANSITION_NO_EFFECT, nil)
		}

		if transition == utils.TransitionCheckIn {
			notifyCheckin(ticketId)
		}

		return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
			"applied":    true,
			"transition": transition,
		})
	}
}

func ApproveTicket(c *fiber.Ctx) error  { return transitionHandler(utils.TransitionApprove)(c) }
func RejectTicket(c *fiber.Ctx) error   { return transitionHandler(utils.TransitionReject)(c) }
func CheckInTicket(c *fiber.Ctx) error  { return transitionHandler(utils.TransitionCheckIn)(c) }
func CheckOutTicket(c *fiber.Ctx) error { return transitionHandler(utils.TransitionCheckOut)(c) }

func notifyCheckin(ticketId uint) {
	var ticket model.Ticket
	if err := database.DB.First(&ticket, ticketId).Error; err != nil {
		log.Printf("checkin feed lookup failed for ticket %d: %v", ticketId, err)
		return
	}
	PublishCheckin(ticket.EventId, ticket)
}

// UpdateTicketPaymentStatus sets the externally maintained payment enum.
func UpdateTicketPaymentStatus(c *fiber.Ctx) error {
	claim, _ := helper.GetInfoOrganizerFromToken(c)
	if claim.AccountId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_PERMISSION, nil)
	}

	ticketId := uint(c.Locals("ticketId").(int))
	input := c.Locals("input").(model.UpdatePaymentStatusInput)

	applied, err := utils.UpdatePaymentStatus(database.DB, ticketId, claim.AccountId, input.PaymentStatus)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if !applied {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.TRANSITION_NO_EFFECT, nil)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"applied": true})
}

func GetTicketQRCode(c *fiber.Ctx) error {
	claim, _ := helper.GetInfoOrganizerFromToken(c)
	if claim.AccountId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_PERMISSION, nil)
	}

	ticketId := c.Locals("ticketId").(int)

	var ticket model.Ticket
	if err := database.DB.
		Joins("JOIN events ON events.id = tickets.event_id").
		Where("tickets.id = ? AND events.organizer_id = ?", ticketId, claim.AccountId).
		First(&ticket).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TICKET_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	qrBytes, err := utils.GenerateQRCode(fmt.Sprintf("event_manager://checkin/%s", ticket.TicketCode), 256)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	c.Set("Content-Type", "image/png")
	return c.Send(qrBytes)
}

// ExpirePendingRegistrations cancels pending registrations for events
// that already started. Called every minute from main.
func ExpirePendingRegistrations() {
	cancelled, err := utils.CancelStalePendingTickets(database.DB, time.Now())
	if err != nil {
		log.Printf("failed to expire pending registrations: %v", err)
		return
	}
	if cancelled > 0 {
		log.Printf("expired %d stale pending registrations", cancelled)
	}
}
