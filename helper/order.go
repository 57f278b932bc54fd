package helper

import (
	"log"
	"time"

	"tutor_market/constants"
	"tutor_market/database"
	"tutor_market/model"

	"github.com/robfig/cron/v3"
)

var orderScheduler *cron.Cron

// Đơn PENDING quá 15 phút coi như bỏ thanh toán → CANCELLED
const pendingOrderTTL = 15 * time.Minute

func ExpirePendingOrders() {
	before := time.Now().Add(-pendingOrderTTL)
	result := database.DB.Model(&model.Order{}).
		Where("status = ? AND created_at < ?", constants.ORDER_PENDING, before).
		Updates(map[string]interface{}{
			"status":       constants.ORDER_CANCELLED,
			"cancelled_at": time.Now(),
		})
	if result.Error != nil {
		log.Printf("Lỗi hủy đơn quá hạn: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("Đã hủy %d đơn quá hạn thanh toán", result.RowsAffected)
	}
}

func StartOrderExpiryScheduler() {
	orderScheduler = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	// Chạy mỗi 5 phút
	_, err := orderScheduler.AddFunc("*/5 * * * *", ExpirePendingOrders)
	if err != nil {
		log.Printf("Lỗi khởi tạo scheduler: %v", err)
		return
	}

	orderScheduler.Start()
	log.Println("Scheduler hủy đơn quá hạn đã khởi động (mỗi 5 phút)")
}

func StopOrderExpiryScheduler() {
	if orderScheduler != nil {
		orderScheduler.Stop()
		log.Println("Scheduler hủy đơn quá hạn đã dừng")
	}
}
