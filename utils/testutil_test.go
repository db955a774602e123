package utils

import (
	"event_manager/database"
	"event_manager/model"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps every query on the same in-memory db.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))

	return db
}

func seedOrganizer(t *testing.T, db *gorm.DB, username string) model.Account {
	t.Helper()
	account := model.Account{
		Username: username,
		Email:    username + "@campus.local",
		Password: "x",
		Active:   true,
		Role:     "ORGANIZER",
	}
	require.NoError(t, db.Create(&account).Error)
	return account
}

func seedEvent(t *testing.T, db *gorm.DB, organizerId uint, title string, start time.Time, maxAttendees int) model.Event {
	t.Helper()
	event := model.Event{
		Title:         title,
		Slug:          title,
		StartDatetime: start,
		EndDatetime:   start.Add(2 * time.Hour),
		MaxAttendees:  maxAttendees,
		Status:        model.EventApproved,
		OrganizerId:   organizerId,
	}
	require.NoError(t, db.Create(&event).Error)
	return event
}

func seedUser(t *testing.T, db *gorm.DB, email string, department *string) model.User {
	t.Helper()
	user := model.User{
		Email:      email,
		FullName:   "Test Registrant",
		Department: department,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedTicket(t *testing.T, db *gorm.DB, eventId, userId uint, status, paymentStatus string, price float64) model.Ticket {
	t.Helper()
	ticket := model.Ticket{
		TicketCode:    "TKT-" + time.Now().Format("150405.000000000"),
		Status:        status,
		PaymentStatus: paymentStatus,
		Price:         price,
		EventId:       eventId,
		UserId:        userId,
	}
	require.NoError(t, db.Create(&ticket).Error)
	return ticket
}

func reloadTicket(t *testing.T, db *gorm.DB, id uint) model.Ticket {
	t.Helper()
	var ticket model.Ticket
	require.NoError(t, db.First(&ticket, id).Error)
	return ticket
}

// checkedIn must always be true exactly when checkInTime is set.
func assertCheckInInvariant(t *testing.T, db *gorm.DB) {
	t.Helper()
	var violations int64
	require.NoError(t, db.Model(&model.Ticket{}).
		Where("(checked_in = ? AND check_in_time IS NULL) OR (checked_in = ? AND check_in_time IS NOT NULL)", true, false).
		Count(&violations).Error)
	require.Zero(t, violations, "checked_in flag and check_in_time out of sync")
}
