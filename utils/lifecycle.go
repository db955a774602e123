package utils

import (
	"event_manager/model"
	"fmt"
	"time"

	"gorm.io/gorm"
)

const (
	TransitionApprove  = "approve"
	TransitionReject   = "reject"
	TransitionCheckIn  = "check-in"
	TransitionCheckOut = "check-out"
)

// Every transition is one guarded UPDATE: the ticket id, the status
// precondition and the ownership check all sit in the WHERE clause, so
// the database decides at most one winner between concurrent calls.
// RowsAffected == 0 means the transition did not apply: wrong state,
// wrong organizer or no such ticket, deliberately indistinguishable.

func ownedEvents(db *gorm.DB, organizerId uint) *gorm.DB {
	return db.Model(&model.Event{}).Select("id").Where("organizer_id = ?", organizerId)
}

// ApproveTicket confirms a pending registration.
func ApproveTicket(db *gorm.DB, ticketId, organizerId uint) (bool, error) {
	result := db.Model(&model.Ticket{}).
		Where("id = ? AND status = ?", ticketId, model.TicketPending).
		Where("event_id IN (?)", ownedEvents(db, organizerId)).
		Update("status", model.TicketConfirmed)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// RejectTicket cancels a registration from any non-terminal status.
// CANCELLED is terminal: the guard excludes it, so a second reject is a
// no-op.
func RejectTicket(db *gorm.DB, ticketId, organizerId uint) (bool, error) {
	result := db.Model(&model.Ticket{}).
		Where("id = ? AND status <> ?", ticketId, model.TicketCancelled).
		Where("event_id IN (?)", ownedEvents(db, organizerId)).
		Update("status", model.TicketCancelled)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// CheckInTicket marks a confirmed registration as attended and stamps
// the check-in time. Only confirmed tickets can be checked in.
func CheckInTicket(db *gorm.DB, ticketId, organizerId uint) (bool, error) {
	now := time.Now()
	result := db.Model(&model.Ticket{}).
		Where("id = ? AND status = ? AND checked_in = ?", ticketId, model.TicketConfirmed, false).
		Where("event_id IN (?)", ownedEvents(db, organizerId)).
		Updates(map[string]any{"checked_in": true, "check_in_time": now})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// CheckOutTicket clears the check-in flag and time. Unlike check-in it
// carries no status guard: a ticket whose status changed after check-in
// can still be checked out.
func CheckOutTicket(db *gorm.DB, ticketId, organizerId uint) (bool, error) {
	result := db.Model(&model.Ticket{}).
		Where("id = ?", ticketId).
		Where("event_id IN (?)", ownedEvents(db, organizerId)).
		Updates(map[string]any{"checked_in": false, "check_in_time": nil})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// ApplyTransition dispatches one of the four lifecycle transitions.
// applied=false with a nil error is the logical no-op outcome; a non-nil
// error means the store itself failed and must be surfaced.
func ApplyTransition(db *gorm.DB, ticketId, organizerId uint, transition string) (bool, error) {
	switch transition {
	case TransitionApprove:
		return ApproveTicket(db, ticketId, organizerId)
	case TransitionReject:
		return RejectTicket(db, ticketId, organizerId)
	case TransitionCheckIn:
		return CheckInTicket(db, ticketId, organizerId)
	case TransitionCheckOut:
		return CheckOutTicket(db, ticketId, organizerId)
	default:
		return false, fmt.Errorf("unknown transition %q", transition)
	}
}

// UpdatePaymentStatus sets the externally maintained payment enum on an
// owned ticket. Same guarded-update shape as the transitions.
func UpdatePaymentStatus(db *gorm.DB, ticketId, organizerId uint, paymentStatus string) (bool, error) {
	result := db.Model(&model.Ticket{}).
		Where("id = ?", ticketId).
		Where("event_id IN (?)", ownedEvents(db, organizerId)).
		Update("payment_status", paymentStatus)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// CancelStalePendingTickets rejects every pending registration whose
// event already started. Run periodically from main.
func CancelStalePendingTickets(db *gorm.DB, now time.Time) (int64, error) {
	started := db.Model(&model.Event{}).Select("id").Where("start_datetime < ?", now)
	result := db.Model(&model.Ticket{}).
		Where("status = ?", model.TicketPending).
		Where("event_id IN (?)", started).
		Update("status", model.TicketCancelled)
	return result.RowsAffected, result.Error
}

// ListTickets is the scoped listing path: newest registrations first,
// with the total row count for pagination.
func ListTickets(db *gorm.DB, scope TicketScope, limit, page *int) ([]model.Ticket, int64, error) {
	condition := scope.Apply(db.Model(&model.Ticket{}), DateColumnTicketCreated)

	var totalCount int64
	if err := condition.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	var tickets []model.Ticket
	condition = ApplyPagination(condition, limit, page)
	if err := condition.Preload("Event").Preload("User").
		Order("tickets.created_at desc").Find(&tickets).Error; err != nil {
		return nil, 0, err
	}

	return tickets, totalCount, nil
}
