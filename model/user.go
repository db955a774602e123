package model

// User is a registrant (student/attendee), not an organizer account.
type User struct {
	DTO
	Email       string  `gorm:"uniqueIndex;not null" validate:"required,email" json:"email"`
	FullName    string  `gorm:"not null" validate:"required" json:"fullName"`
	StudentCode *string `json:"studentCode"`
	Department  *string `json:"department"`
	Phone       *string `json:"phone"`

	Tickets []Ticket `gorm:"foreignKey:UserId" json:"-"`
}

type Users []User

type RegisterAttendeeInput struct {
	Email       string  `validate:"required,email" json:"email"`
	FullName    string  `validate:"required" json:"fullName"`
	StudentCode *string `validate:"omitempty" json:"studentCode"`
	Department  *string `validate:"omitempty" json:"department"`
	Phone       *string `validate:"omitempty" json:"phone"`
}
