package main

import (
	"log"

	"tutor_market/config"
	"tutor_market/database"
	"tutor_market/handler"
	"tutor_market/helper"
	"tutor_market/payment"
	"tutor_market/repository"
	"tutor_market/router"
	"tutor_market/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/redis/go-redis/v9"
)

func main() {
	app := fiber.New(fiber.Config{
		BodyLimit: 20 * 1024 * 1024, // ảnh chứng nhận tối đa 20MB
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://localhost:5173",
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		ExposeHeaders:    "Set-Cookie",
		MaxAge:           600,
	}))

	database.ConnectDB()

	helper.StartOrderExpiryScheduler()
	defer helper.StopOrderExpiryScheduler()
	helper.StartCourseStatusScheduler()
	defer helper.StopCourseStatusScheduler()

	redisAddr := config.Config("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}
	cache := redis.NewClient(&redis.Options{Addr: redisAddr})

	vnpay := payment.NewVNPay()
	orderService := service.NewOrderService(repository.NewOrderRepository(database.DB), vnpay)
	statisticService := service.NewStatisticService(repository.NewStatisticRepository(database.DB))

	orderHandler := handler.NewOrderHandler(orderService, vnpay)
	statisticHandler := handler.NewStatisticHandler(statisticService, cache)

	router.SetupRoutes(app, orderHandler, statisticHandler)

	log.Fatal(app.Listen(":8002"))
}
