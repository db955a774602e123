package model

import "time"

const (
	EventPending   = "PENDING"
	EventApproved  = "APPROVED"
	EventCancelled = "CANCELLED"
	EventCompleted = "COMPLETED"
)

type Event struct {
	DTO
	Title         string    `gorm:"not null" validate:"required" json:"title"`
	Slug          string    `gorm:"size:120;uniqueIndex" json:"slug"`
	Description   string    `json:"description"`
	Location      string    `json:"location"`
	StartDatetime time.Time `gorm:"not null" validate:"required" json:"startDatetime"`
	EndDatetime   time.Time `gorm:"not null" validate:"required" json:"endDatetime"`
	MaxAttendees  int       `gorm:"not null;default:0" json:"maxAttendees"`
	Price         float64   `gorm:"not null;default:0" json:"price"`
	Status        string    `gorm:"not null;default:'PENDING'" json:"status"`
	CoverUrl      *string   `json:"coverUrl"`
	OrganizerId   uint      `gorm:"not null;index" json:"organizerId"`

	Organizer Account  `gorm:"foreignKey:OrganizerId" json:"-"`
	Tickets   []Ticket `gorm:"foreignKey:EventId" json:"-"`
}

type Events []Event

type CreateEventInput struct {
	Title         string    `validate:"required,min=3,max=200" json:"title"`
	Description   string    `validate:"omitempty" json:"description"`
	Location      string    `validate:"omitempty" json:"location"`
	StartDatetime time.Time `validate:"required" json:"startDatetime"`
	EndDatetime   time.Time `validate:"required,gtfield=StartDatetime" json:"endDatetime"`
	MaxAttendees  int       `validate:"required,gt=0" json:"maxAttendees"`
	Price         float64   `validate:"omitempty,gte=0" json:"price"`
	CoverUrl      *string   `validate:"omitempty,url" json:"coverUrl"`
}

type EditEventInput struct {
	Title         *string    `validate:"omitempty,min=3,max=200" json:"title"`
	Description   *string    `json:"description"`
	Location      *string    `json:"location"`
	StartDatetime *time.Time `json:"startDatetime"`
	EndDatetime   *time.Time `json:"endDatetime"`
	MaxAttendees  *int       `validate:"omitempty,gt=0" json:"maxAttendees"`
	Price         *float64   `validate:"omitempty,gte=0" json:"price"`
	CoverUrl      *string    `validate:"omitempty,url" json:"coverUrl"`
}
