package helper

import (
	"event_manager/database"
	"event_manager/model"
	"fmt"
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

var eventScheduler gocron.Scheduler

func GenerateUniqueEventSlug(tx *gorm.DB, title string) string {
	base := slug.Make(title)
	result := base
	i := 1

	for {
		var count int64
		tx.Model(&model.Event{}).
			Where("slug = ?", result).
			Count(&count)

		if count == 0 {
			break
		}
		result = fmt.Sprintf("%s-%d", base, i)
		i++
	}

	return result
}

// AutoCompleteEvents rolls APPROVED events whose end time passed over to
// COMPLETED. One conditional update, same guard style as the ticket
// transitions.
func AutoCompleteEvents() {
	log.Println("[CRON] AutoCompleteEvents triggered")

	result := database.DB.Model(&model.Event{}).
		Where("status = ? AND end_datetime < ?", model.EventApproved, time.Now()).
		Update("status", model.EventCompleted)
	if result.Error != nil {
		log.Printf("failed to complete finished events: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("marked %d events completed", result.RowsAffected)
	}
}

func StartEventStatusScheduler() {
	s, err := gocron.NewScheduler()
	if err != nil {
		log.Fatal(err)
	}

	eventScheduler = s

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(0, 5, 0),
			),
		),
		gocron.NewTask(AutoCompleteEvents),
	)
	if err != nil {
		log.Fatal(err)
	}

	s.Start()
	log.Println("event status scheduler started (00:05)")
}

func StopEventStatusScheduler() {
	if eventScheduler != nil {
		_ = eventScheduler.Shutdown()
	}
}
