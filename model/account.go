package model

type Account struct {
	DTO
	Username string `gorm:"uniqueIndex;not null" validate:"required,min=3,max=50" json:"username"`
	Email    string `gorm:"uniqueIndex;not null" validate:"required,email" json:"email"`
	Password string `gorm:"not null" validate:"required,min=6,max=50" json:"-"`
	Active   bool   `gorm:"not null;default:true" json:"active"`
	Role     string `gorm:"not null;default:'ORGANIZER'" json:"role"`

	Events []Event `gorm:"foreignKey:OrganizerId" json:"-"`
}

type Accounts []Account

type CreateAccountInput struct {
	Username string `validate:"required,min=3,max=50" json:"username"`
	Email    string `validate:"required,email" json:"email"`
	Password string `validate:"required,min=6,max=50" json:"password"`
	Role     string `validate:"omitempty,oneof=ADMIN ORGANIZER" json:"role"`
}

type ChangePasswordInput struct {
	CurrentPassword string `validate:"required" json:"currentPassword"`
	NewPassword     string `validate:"required,min=6,max=50" json:"newPassword"`
	RepeatPassword  string `validate:"required,eqfield=NewPassword" json:"repeatPassword"`
}
