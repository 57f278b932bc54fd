package database

import (
	"log"

	"tutor_market/constants"
	"tutor_market/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedData(db *gorm.DB) {
	bytes, err := bcrypt.GenerateFromPassword([]byte("123456tm"), 10)
	HashPassword := string(bytes)
	if err != nil {
		HashPassword = "123456tm"
	}
	accounts := []model.Account{
		{
			FullName: "Administration",
			Email:    "admin@tutormarket.vn",
			Phone:    "0900000000",
			Password: HashPassword,
			Active:   true,
			Role:     constants.ROLE_ADMIN,
		},
	}

	for _, account := range accounts {
		// Tạo mới nếu không tồn tại
		if err := db.Where(model.Account{Email: account.Email}).FirstOrCreate(&account).Error; err != nil {
			log.Println("failed to seed data for account:", account.Email, "error:", err)
		}
	}

	paymentMethods := []model.PaymentMethod{
		{Name: constants.PAYMENT_VNPAY},
		{Name: constants.PAYMENT_MOMO},
	}
	for _, method := range paymentMethods {
		if err := db.Where(model.PaymentMethod{Name: method.Name}).FirstOrCreate(&method).Error; err != nil {
			log.Println("failed to seed payment method:", method.Name, "error:", err)
		}
	}
}
