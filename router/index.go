package router

import (
	"tutor_market/handler"
	"tutor_market/middleware"
	"tutor_market/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App, orders *handler.OrderHandler, statistics *handler.StatisticHandler) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	auth := v1.Group("/auth")
	auth.Post("/login", handler.Login)
	auth.Post("/register", validate.Register(), handler.Register)
	auth.Post("/verify-otp", validate.VerifyOtp(), handler.VerifyOtp)
	auth.Post("/refresh-token", handler.RefreshToken)
	auth.Post("/logout", handler.Logout)

	account := v1.Group("/account", logger.New())
	account.Get("/", middleware.Protected(), handler.GetAccounts)
	account.Get("/me", middleware.Protected(), handler.Me)
	account.Put("/:accountId", middleware.Protected(), validate.UpdateAccount("accountId"), handler.UpdateAccount)
	account.Patch("/:accountId/active", middleware.Protected(), validate.GetById("accountId"), handler.ToggleActiveAccount)

	course := v1.Group("/course", logger.New())
	course.Get("/", middleware.OptionalJWT(), handler.GetCourses)
	course.Get("/:slug", middleware.OptionalJWT(), handler.GetCourseBySlug)
	course.Post("/", middleware.Protected(), validate.CreateCourse(), handler.CreateCourse)
	course.Put("/:courseId", middleware.Protected(), validate.EditCourse("courseId"), handler.UpdateCourse)
	course.Delete("/", middleware.Protected(), validate.Delete(), handler.DeleteCourses)
	course.Get("/:courseId/feedback", middleware.OptionalJWT(), validate.GetById("courseId"), handler.GetFeedbacksByCourse)

	certification := v1.Group("/certification", logger.New())
	certification.Get("/", middleware.Protected(), handler.GetCertifications)
	certification.Post("/", middleware.Protected(), validate.CreateCertification(), handler.CreateCertification)
	certification.Patch("/:certificationId/review", middleware.Protected(), validate.ReviewCertification("certificationId"), handler.ReviewCertification)

	feedback := v1.Group("/feedback", logger.New())
	feedback.Post("/", middleware.Protected(), validate.CreateFeedback(), handler.CreateFeedback)

	order := v1.Group("/order", logger.New())
	order.Get("/", middleware.Protected(), orders.GetMyOrders)
	order.Post("/", middleware.Protected(), validate.CreateOrder(), orders.CreateOrder)
	order.Patch("/:orderId/pay", middleware.Protected(), validate.GetById("orderId"), orders.PayOrder)
	order.Patch("/detail/:detailId/finish", middleware.Protected(), validate.GetById("detailId"), orders.FinishCourse)

	statistic := v1.Group("/statistic", logger.New())
	statistic.Get("/revenue/:year", middleware.Protected(), validate.RequireAdmin(), validate.StatisticRevenueByYear("year"), statistics.MonthlyRevenue)
	statistic.Get("/accounts/status", middleware.Protected(), validate.RequireAdmin(), statistics.AccountStatus)
	statistic.Get("/courses/status", middleware.Protected(), validate.RequireAdmin(), statistics.CourseStatus)
	statistic.Get("/top-account", middleware.Protected(), validate.RequireAdmin(), statistics.TopAccount)
	statistic.Get("/top-tutor", middleware.Protected(), validate.RequireAdmin(), statistics.TopTutor)
	statistic.Get("/overview", middleware.Protected(), validate.RequireAdmin(), statistics.Overview)

	v1.Post("/cloudinary-signature", middleware.Protected(), handler.GenerateSignature)
	v1.Post("/upload", middleware.Protected(), handler.UploadImage)

	// Public
	app.Get("/vnpay/return", orders.VNPayCallback) // Callback từ VNPay
	app.Post("/vnpay/ipn", orders.VNPayIPN)        // Server-to-Server
}
