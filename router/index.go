package router

import (
	"event_manager/handler"
	"event_manager/middleware"
	"event_manager/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	auth := v1.Group("/auth")
	auth.Post("/login", handler.Login)
	auth.Post("/refresh-token", handler.RefreshToken)

	account := v1.Group("/account", logger.New())
	account.Get("/me", middleware.Protected(), handler.Me)
	account.Post("/", middleware.Protected(), validate.CreateAccount(), handler.CreateAccount)
	account.Post("/change-password", middleware.Protected(), validate.ChangePassword(), handler.ChangePassword)

	event := v1.Group("/event", logger.New())
	event.Get("/", middleware.Protected(), handler.GetEvents)
	event.Post("/", middleware.Protected(), validate.CreateEvent(), handler.CreateEvent)
	event.Get("/:eventId<int>", middleware.Protected(), validate.GetById("eventId"), handler.GetEventById)
	event.Put("/:eventId", middleware.Protected(), validate.GetById("eventId"), validate.EditEvent(), handler.EditEvent)
	event.Patch("/:eventId/approve", middleware.Protected(), validate.GetById("eventId"), handler.ApproveEvent)
	event.Patch("/:eventId/cancel", middleware.Protected(), validate.GetById("eventId"), handler.CancelEvent)

	// Public registration flow
	event.Get("/slug/:slug", handler.GetEventBySlug)
	event.Post("/slug/:slug/register", validate.RegisterAttendee(), handler.RegisterForEvent)

	ticket := v1.Group("/ticket", logger.New())
	ticket.Get("/", middleware.Protected(), validate.FilterTicket(), handler.GetTickets)
	ticket.Patch("/:ticketId/approve", middleware.Protected(), validate.GetById("ticketId"), handler.ApproveTicket)
	ticket.Patch("/:ticketId/reject", middleware.Protected(), validate.GetById("ticketId"), handler.RejectTicket)
	ticket.Patch("/:ticketId/check-in", middleware.Protected(), validate.GetById("ticketId"), handler.CheckInTicket)
	ticket.Patch("/:ticketId/check-out", middleware.Protected(), validate.GetById("ticketId"), handler.CheckOutTicket)
	ticket.Patch("/:ticketId/payment-status", middleware.Protected(), validate.GetById("ticketId"), validate.UpdatePaymentStatus(), handler.UpdateTicketPaymentStatus)
	ticket.Get("/:ticketId/qrcode", middleware.Protected(), validate.GetById("ticketId"), handler.GetTicketQRCode)

	analytics := v1.Group("/analytics", logger.New())
	analytics.Get("/", middleware.Protected(), validate.FilterTicket(), handler.GetAnalytics)

	v1.Post("/cloudinary-signature", middleware.Protected(), handler.GenerateUploadSignature)

	v1.Get("/ws/event/:id/checkins", websocket.New(handler.CheckinFeed))
}
