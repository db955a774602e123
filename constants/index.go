package constants

const (
	ROLE_ADMIN     = "ADMIN"
	ROLE_ORGANIZER = "ORGANIZER"
)

const (
	NOT_ADMIN            = "NOT_ADMIN"
	NOT_PERMISSION       = "NOT_PERMISSION"
	ERROR_INPUT          = "ERROR_INPUT"
	ERROR_INTERNAL_ERROR = "INTERNAL_ERROR"
	MISSING_LOGIN_INPUT  = "MISSING_LOGIN_INPUT"

	DATA_INPUT_IS_NOT_NUMBER = "DATA_INPUT_IS_NOT_NUMBER"

	EVENT_NOT_FOUND  = "EVENT_NOT_FOUND"
	EVENT_FULL       = "EVENT_FULL"
	EVENT_NOT_OPEN   = "EVENT_NOT_OPEN"
	TICKET_NOT_FOUND = "TICKET_NOT_FOUND"

	// A transition that matched no row: wrong state, wrong owner or no
	// such ticket. Callers get the same message for all three.
	TRANSITION_NO_EFFECT = "TRANSITION_NO_EFFECT"
)
