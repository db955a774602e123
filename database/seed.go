package database

import (
	"event_manager/constants"
	"event_manager/model"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedData(db *gorm.DB) {
	bytes, err := bcrypt.GenerateFromPassword([]byte("changeme123"), 10)
	hashPassword := string(bytes)
	if err != nil {
		log.Println("failed to hash seed password:", err)
		return
	}

	accounts := []model.Account{
		{Username: "administrator", Email: "admin@campus.local", Password: hashPassword, Active: true, Role: constants.ROLE_ADMIN},
	}

	for _, account := range accounts {
		if err := db.Where(model.Account{Username: account.Username}).FirstOrCreate(&account).Error; err != nil {
			log.Println("failed to seed account:", account.Username, "error:", err)
		}
	}

	// Sample registrants so the department analysis view has data on a
	// fresh install.
	users := []model.User{
		{Email: "linh.tran@campus.local", FullName: "Linh Tran", StudentCode: strPtr("SE180001"), Department: strPtr("Software Engineering")},
		{Email: "minh.nguyen@campus.local", FullName: "Minh Nguyen", StudentCode: strPtr("CS180214"), Department: strPtr("Computer Science")},
		{Email: "an.pham@campus.local", FullName: "An Pham", StudentCode: strPtr("BA180112"), Department: strPtr("Business Administration")},
	}

	for _, user := range users {
		if err := db.Where(model.User{Email: user.Email}).FirstOrCreate(&user).Error; err != nil {
			log.Println("failed to seed user:", user.Email, "error:", err)
		}
	}
}

func strPtr(s string) *string {
	return &s
}
