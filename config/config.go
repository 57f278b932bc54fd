package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config trả về giá trị biến môi trường theo key
func Config(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		fmt.Print("⚠️ Không tìm thấy file .env, dùng biến môi trường hệ thống\n")
	}
	return os.Getenv(key)
}
