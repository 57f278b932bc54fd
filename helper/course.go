package helper

import (
	"log"
	"time"

	"tutor_market/database"
	"tutor_market/model"

	"github.com/go-co-op/gocron/v2"
)

var courseScheduler gocron.Scheduler

// AutoDeactivateOrphanCourses ẩn các khóa học mà gia sư đã bị khóa tài khoản.
func AutoDeactivateOrphanCourses() {
	log.Println("[CRON] AutoDeactivateOrphanCourses triggered")

	db := database.DB
	result := db.Model(&model.Course{}).
		Where("active = true AND creator_id IN (SELECT id FROM accounts WHERE active = false)").
		Update("active", false)
	if result.Error != nil {
		log.Printf("Lỗi khi quét khóa học: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("Đã ẩn %d khóa học của gia sư bị khóa", result.RowsAffected)
	}
}

func StartCourseStatusScheduler() {
	s, err := gocron.NewScheduler(
		gocron.WithLocation(time.FixedZone("ICT", 7*3600)),
	)
	if err != nil {
		log.Fatal(err)
	}

	courseScheduler = s

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(0, 5, 0),
			),
		),
		gocron.NewTask(AutoDeactivateOrphanCourses),
	)
	if err != nil {
		log.Fatal(err)
	}

	s.Start()
	log.Println("✅ Course status scheduler started (00:05 ICT)")
}

func StopCourseStatusScheduler() {
	if courseScheduler != nil {
		if err := courseScheduler.Shutdown(); err != nil {
			log.Printf("Lỗi dừng course scheduler: %v", err)
		}
	}
}
