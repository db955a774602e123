package helper

import (
	"event_manager/database"
	"event_manager/model"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
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

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func TestGenerateUniqueEventSlug(t *testing.T) {
	db := newTestDB(t)

	assert.Equal(t, "spring-career-fair", GenerateUniqueEventSlug(db, "Spring Career Fair"))

	require.NoError(t, db.Create(&model.Event{
		Title: "Spring Career Fair", Slug: "spring-career-fair",
		StartDatetime: time.Now(), EndDatetime: time.Now().Add(time.Hour),
		MaxAttendees: 10, Status: model.EventPending, OrganizerId: 1,
	}).Error)
	assert.Equal(t, "spring-career-fair-1", GenerateUniqueEventSlug(db, "Spring Career Fair"))

	require.NoError(t, db.Create(&model.Event{
		Title: "Spring Career Fair", Slug: "spring-career-fair-1",
		StartDatetime: time.Now(), EndDatetime: time.Now().Add(time.Hour),
		MaxAttendees: 10, Status: model.EventPending, OrganizerId: 1,
	}).Error)
	assert.Equal(t, "spring-career-fair-2", GenerateUniqueEventSlug(db, "Spring Career Fair"))
}

func TestAutoCompleteEvents(t *testing.T) {
	db := newTestDB(t)
	prev := database.DB
	database.DB = db
	t.Cleanup(func() { database.DB = prev })

	ended := model.Event{
		Title: "ended", Slug: "ended",
		StartDatetime: time.Now().Add(-3 * time.Hour), EndDatetime: time.Now().Add(-time.Hour),
		MaxAttendees: 10, Status: model.EventApproved, OrganizerId: 1,
	}
	running := model.Event{
		Title: "running", Slug: "running",
		StartDatetime: time.Now().Add(-time.Hour), EndDatetime: time.Now().Add(time.Hour),
		MaxAttendees: 10, Status: model.EventApproved, OrganizerId: 1,
	}
	endedButPending := model.Event{
		Title: "ended-pending", Slug: "ended-pending",
		StartDatetime: time.Now().Add(-3 * time.Hour), EndDatetime: time.Now().Add(-time.Hour),
		MaxAttendees: 10, Status: model.EventPending, OrganizerId: 1,
	}
	require.NoError(t, db.Create(&ended).Error)
	require.NoError(t, db.Create(&running).Error)
	require.NoError(t, db.Create(&endedButPending).Error)

	AutoCompleteEvents()

	status := func(id uint) string {
		var event model.Event
		require.NoError(t, db.First(&event, id).Error)
		return event.Status
	}
	assert.Equal(t, model.EventCompleted, status(ended.ID))
	assert.Equal(t, model.EventApproved, status(running.ID))
	assert.Equal(t, model.EventPending, status(endedButPending.ID))
}
