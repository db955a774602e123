package utils

import (
	"time"

	"gorm.io/gorm"
)

// Timestamp columns a scope's date range can apply to. Attendee listings
// filter on when the registration was created, analytics on when the
// event was created.
const (
	DateColumnTicketCreated = "tickets.created_at"
	DateColumnEventCreated  = "events.created_at"
)

// TicketScope restricts every read in the system to one organizer's data,
// optionally narrowed by event, registration status, check-in flag and an
// inclusive date range. OrganizerId is mandatory; the ownership clause is
// always emitted first and cannot be omitted by any filter combination.
type TicketScope struct {
	OrganizerId uint
	EventId     uint
	Status      string
	CheckedIn   *bool
	From        *time.Time
	To          *time.Time
}

// Conditions returns the WHERE clauses and bound arguments for a query
// over tickets joined to their owning events. Exactly one argument per
// clause; nothing is ever spliced into the SQL text from caller input.
func (s TicketScope) Conditions(dateColumn string) ([]string, []any) {
	clauses := []string{"events.organizer_id = ?"}
	args := []any{s.OrganizerId}

	if s.EventId > 0 {
		clauses = append(clauses, "tickets.event_id = ?")
		args = append(args, s.EventId)
	}
	if s.Status != "" {
		clauses = append(clauses, "tickets.status = ?")
		args = append(args, s.Status)
	}
	if s.CheckedIn != nil {
		clauses = append(clauses, "tickets.checked_in = ?")
		args = append(args, *s.CheckedIn)
	}
	if s.From != nil {
		clauses = append(clauses, dateColumn+" >= ?")
		args = append(args, DayStart(*s.From))
	}
	if s.To != nil {
		clauses = append(clauses, dateColumn+" <= ?")
		args = append(args, DayEnd(*s.To))
	}

	return clauses, args
}

// EventConditions returns the scope's clauses for a query over events
// alone (no ticket join). Status and check-in filters describe tickets,
// so they do not apply here.
func (s TicketScope) EventConditions() ([]string, []any) {
	clauses := []string{"events.organizer_id = ?"}
	args := []any{s.OrganizerId}

	if s.EventId > 0 {
		clauses = append(clauses, "events.id = ?")
		args = append(args, s.EventId)
	}
	if s.From != nil {
		clauses = append(clauses, "events.created_at >= ?")
		args = append(args, DayStart(*s.From))
	}
	if s.To != nil {
		clauses = append(clauses, "events.created_at <= ?")
		args = append(args, DayEnd(*s.To))
	}

	return clauses, args
}

// Apply attaches the scope to a GORM ticket query, joining events for the
// ownership check.
func (s TicketScope) Apply(query *gorm.DB, dateColumn string) *gorm.DB {
	query = query.Joins("JOIN events ON events.id = tickets.event_id")

	clauses, args := s.Conditions(dateColumn)
	for i, clause := range clauses {
		query = query.Where(clause, args[i])
	}

	return query
}
