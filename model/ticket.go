package model

import "time"

const (
	TicketPending   = "PENDING"
	TicketConfirmed = "CONFIRMED"
	TicketCancelled = "CANCELLED"
)

const (
	PaymentPending   = "PENDING"
	PaymentCompleted = "COMPLETED"
	PaymentFailed    = "FAILED"
)

type Ticket struct {
	DTO
	TicketCode    string     `gorm:"size:24;uniqueIndex" json:"ticketCode"`
	Status        string     `gorm:"not null;default:'PENDING';index" json:"status"`
	PaymentStatus string     `gorm:"not null;default:'PENDING'" json:"paymentStatus"`
	Price         float64    `gorm:"not null;default:0" json:"price"`
	CheckedIn     bool       `gorm:"not null;default:false" json:"checkedIn"`
	CheckInTime   *time.Time `json:"checkInTime"`
	EventId       uint       `gorm:"not null;index" json:"eventId"`
	UserId        uint       `gorm:"not null;index" json:"userId"`

	Event Event `gorm:"foreignKey:EventId" json:"-"`
	User  User  `gorm:"foreignKey:UserId" json:"-"`
}

type Tickets []Ticket

type FilterTicketInput struct {
	Pagination
	EventId   uint    `query:"eventId" json:"eventId" validate:"omitempty,gt=0"`
	Status    string  `query:"status" json:"status" validate:"omitempty,oneof=PENDING CONFIRMED CANCELLED"`
	CheckedIn *bool   `query:"checkedIn" json:"checkedIn"`
	StartDate *string `query:"startDate" json:"startDate" validate:"omitempty,datetime=2006-01-02"`
	EndDate   *string `query:"endDate" json:"endDate" validate:"omitempty,datetime=2006-01-02"`
}

type UpdatePaymentStatusInput struct {
	PaymentStatus string `validate:"required,oneof=PENDING COMPLETED FAILED" json:"paymentStatus"`
}
